package schema

import (
	"errors"
	"testing"
)

func TestTypeGuessString(t *testing.T) {
	tests := []struct {
		name  string
		guess TypeGuess
		want  string
	}{
		{"bool", TypeGuess{Category: CategoryBool}, "BOOLEAN"},
		{"int32", TypeGuess{Category: CategoryInt32}, "INT"},
		{"decimal", TypeGuess{Category: CategoryDecimal, Precision: 10, Scale: 2}, "DECIMAL(10,2)"},
		{"string bounded", TypeGuess{Category: CategoryString, Length: 50}, "TEXT(50)"},
		{"string unbounded", TypeGuess{Category: CategoryString}, "TEXT"},
		{"binary bounded", TypeGuess{Category: CategoryBinary, Length: 16}, "BLOB(16)"},
		{"guid", TypeGuess{Category: CategoryGuid}, "GUID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.guess.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIntegerGuessForRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int64
		want     Category
	}{
		{"byte", 0, 255, CategoryByte},
		{"negative forces int16", -1, 100, CategoryInt16},
		{"int16", -32768, 32767, CategoryInt16},
		{"int32", 0, 100000, CategoryInt32},
		{"int64", 0, 3000000000, CategoryInt64},
		{"full int64", -9223372036854775808, 9223372036854775807, CategoryInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntegerGuessForRange(tt.min, tt.max)
			if got.Category != tt.want {
				t.Errorf("IntegerGuessForRange(%d, %d) = %s, want %s",
					tt.min, tt.max, got.Category, tt.want)
			}
		})
	}
}

func TestPrecisionPadding(t *testing.T) {
	// Запас и его вычитание должны быть взаимно обратны
	for _, p := range []int{1, 2, 5, 18, 38} {
		if got := UnpadPrecision(PadPrecision(p)); got != p {
			t.Errorf("UnpadPrecision(PadPrecision(%d)) = %d, want %d", p, got, p)
		}
	}

	// Нижняя граница
	if got := UnpadPrecision(1); got != 1 {
		t.Errorf("UnpadPrecision(1) = %d, want 1", got)
	}
}

func TestCategoryPredicates(t *testing.T) {
	if !IsIntegerCategory(CategoryByte) || !IsIntegerCategory(CategoryInt64) {
		t.Error("expected byte and bigint to be integer categories")
	}
	if IsIntegerCategory(CategoryDecimal) {
		t.Error("decimal is not an integer category")
	}
	if !IsNumericCategory(CategoryDecimal) || !IsNumericCategory(CategoryFloat) {
		t.Error("expected decimal and float to be numeric categories")
	}
	if IsNumericCategory(CategoryString) {
		t.Error("string is not a numeric category")
	}
	if !IsTemporalCategory(CategoryDate) || !IsTemporalCategory(CategoryDateTime) {
		t.Error("expected date and timestamp to be temporal categories")
	}
	if IsTemporalCategory(CategoryGuid) {
		t.Error("guid is not a temporal category")
	}
}

func TestTypeNotMappedError(t *testing.T) {
	var err error = &TypeNotMappedError{Dialect: "oracle", Guess: "BOOLEAN"}

	var notMapped *TypeNotMappedError
	if !errors.As(err, &notMapped) {
		t.Fatal("errors.As failed for TypeNotMappedError")
	}
	if notMapped.Dialect != "oracle" {
		t.Errorf("Dialect = %q, want oracle", notMapped.Dialect)
	}
}
