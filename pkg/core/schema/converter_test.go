package schema

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestCoerceNulls(t *testing.T) {
	c := NewConverter()
	nullable := Column{Name: "note", Nullable: true}
	required := Column{Name: "note", Nullable: false}
	text := TypeGuess{Category: CategoryString, Length: 50}

	tests := []struct {
		name    string
		value   any
		col     Column
		want    any
		wantErr bool
	}{
		{"nil passes as NULL", nil, required, nil, false},
		{"empty string nullable", "", nullable, nil, false},
		{"whitespace string nullable", "   \t", nullable, nil, false},
		{"empty string not null preserved", "", required, "", false},
		{"regular value unaffected", "abc", nullable, "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Coerce(tt.value, tt.col, text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Coerce() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Coerce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoerceBool(t *testing.T) {
	c := NewConverter()
	col := Column{Name: "active", Nullable: true}
	guess := TypeGuess{Category: CategoryBool}

	tests := []struct {
		value   any
		want    bool
		wantErr bool
	}{
		{true, true, false},
		{false, false, false},
		{"true", true, false},
		{"FALSE", false, false},
		{"1", true, false},
		{"0", false, false},
		{1, true, false},
		{0, false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		got, err := c.Coerce(tt.value, col, guess)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Coerce(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("Coerce(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestCoerceIntegerRange(t *testing.T) {
	c := NewConverter()
	col := Column{Name: "qty", Nullable: true}

	if _, err := c.Coerce("300", col, TypeGuess{Category: CategoryByte}); err == nil {
		t.Error("expected range error for 300 into BYTE")
	}
	got, err := c.Coerce("42", col, TypeGuess{Category: CategoryByte})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != int64(42) {
		t.Errorf("Coerce = %v, want 42", got)
	}
	if _, err := c.Coerce("not a number", col, TypeGuess{Category: CategoryInt32}); err == nil {
		t.Error("expected parse error")
	}
}

func TestCoerceDecimalDigitBudget(t *testing.T) {
	c := NewConverter()
	col := Column{Name: "price", Nullable: true}
	// Объявленный тип DECIMAL(6,2), после вычитания запаса guess = (5,2)
	guess := TypeGuess{Category: CategoryDecimal, Precision: 5, Scale: 2}

	tests := []struct {
		value   string
		wantErr string
	}{
		{"1234.56", ""},
		{"-1234.56", ""},
		{"0.99", ""},
		{"1234567.00", "precision"},
		{"1.234", "scale"},
	}

	for _, tt := range tests {
		_, err := c.Coerce(tt.value, col, guess)
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("Coerce(%q) unexpected error: %v", tt.value, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("Coerce(%q) expected %s error", tt.value, tt.wantErr)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Coerce(%q) error type = %T, want *ValidationError", tt.value, err)
			continue
		}
		if !strings.Contains(verr.Message, tt.wantErr) {
			t.Errorf("Coerce(%q) message = %q, want to contain %q", tt.value, verr.Message, tt.wantErr)
		}
	}
}

func TestCoerceTemporal(t *testing.T) {
	c := NewConverter()
	col := Column{Name: "created", Nullable: true}
	guess := TypeGuess{Category: CategoryDateTime}

	native := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	got, err := c.Coerce(native, col, guess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.(time.Time).Equal(native) {
		t.Errorf("native time.Time altered: %v", got)
	}

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"2024-03-15 10:30:00", false},
		{"2024-03-15T10:30:00", false},
		{"2024-03-15", false},
		{"15/03/2024", true},
		{"yesterday", true},
	}
	for _, tt := range tests {
		_, err := c.Coerce(tt.value, col, guess)
		if (err != nil) != tt.wantErr {
			t.Errorf("Coerce(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestCoerceGuid(t *testing.T) {
	c := NewConverter()
	col := Column{Name: "id", Nullable: true}
	guess := TypeGuess{Category: CategoryGuid}

	// Верхний регистр нормализуется в нижний с дефисами
	got, err := c.Coerce("6B29FC40-CA47-1067-B31D-00DD010662DA", col, guess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "6b29fc40-ca47-1067-b31d-00dd010662da" {
		t.Errorf("Coerce = %v, want lowercase hyphenated form", got)
	}

	if _, err := c.Coerce("not-a-guid", col, guess); err == nil {
		t.Error("expected error for malformed GUID")
	}
}

func TestCoerceBinaryPassthrough(t *testing.T) {
	c := NewConverter()
	col := Column{Name: "payload", Nullable: true}
	guess := TypeGuess{Category: CategoryBinary, Length: 16}

	raw := []byte{0x01, 0x02, 0x03}
	got, err := c.Coerce(raw, col, guess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok := got.([]byte)
	if !ok || len(b) != 3 || b[0] != 0x01 {
		t.Errorf("binary payload altered: %v", got)
	}
}

func TestDisplayValue(t *testing.T) {
	if got := DisplayValue(nil); got != "NULL" {
		t.Errorf("DisplayValue(nil) = %q", got)
	}
	if got := DisplayValue([]byte{1, 2, 3, 4}); got != "<byte[4]>" {
		t.Errorf("DisplayValue(bytes) = %q", got)
	}
	long := strings.Repeat("x", 150)
	got := DisplayValue(long)
	if len(got) != DisplayValueLimit+3 || !strings.HasSuffix(got, "...") {
		t.Errorf("DisplayValue(long) not truncated to %d: len=%d", DisplayValueLimit, len(got))
	}

	// Усечение не рвет многобайтовую руну
	cyrillic := strings.Repeat("я", 150) // 2 байта на символ
	got = DisplayValue(cyrillic)
	if !utf8.ValidString(got) {
		t.Errorf("DisplayValue split a rune: %q", got)
	}
	if len(got) > DisplayValueLimit+3 {
		t.Errorf("DisplayValue(cyrillic) too long: %d bytes", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("DisplayValue(cyrillic) = %q, want truncation marker", got)
	}
}

func TestFormatTemporal(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)

	if got := FormatTemporal(ts, CategoryDate); got != "2024-03-15" {
		t.Errorf("date format = %q", got)
	}
	if got := FormatTemporal(ts, CategoryTime); got != "10:30:45" {
		t.Errorf("time format = %q", got)
	}
	if got := FormatTemporal(ts, CategoryDateTime); got != "2024-03-15 10:30:45" {
		t.Errorf("datetime format = %q", got)
	}
}
