package postgres

import (
	"testing"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

func TestGuessToPostgres(t *testing.T) {
	tests := []struct {
		name  string
		guess schema.TypeGuess
		want  string
	}{
		{"bool", schema.TypeGuess{Category: schema.CategoryBool}, "BOOLEAN"},
		{"byte degrades to smallint", schema.TypeGuess{Category: schema.CategoryByte}, "SMALLINT"},
		{"int32", schema.TypeGuess{Category: schema.CategoryInt32}, "INTEGER"},
		{"int64", schema.TypeGuess{Category: schema.CategoryInt64}, "BIGINT"},
		{"decimal gets headroom", schema.TypeGuess{Category: schema.CategoryDecimal, Precision: 5, Scale: 2}, "NUMERIC(6,2)"},
		{"float", schema.TypeGuess{Category: schema.CategoryFloat}, "DOUBLE PRECISION"},
		{"string bounded", schema.TypeGuess{Category: schema.CategoryString, Length: 50, Unicode: true}, "VARCHAR(50)"},
		{"string fixed", schema.TypeGuess{Category: schema.CategoryString, Length: 2, Unicode: true, Fixed: true}, "CHAR(2)"},
		{"string unbounded", schema.TypeGuess{Category: schema.CategoryString, Unicode: true}, "TEXT"},
		{"timestamp", schema.TypeGuess{Category: schema.CategoryDateTime}, "TIMESTAMP"},
		{"guid native", schema.TypeGuess{Category: schema.CategoryGuid}, "UUID"},
		{"binary", schema.TypeGuess{Category: schema.CategoryBinary, Length: 16}, "BYTEA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GuessToPostgres(tt.guess)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GuessToPostgres() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPostgresRoundTrip(t *testing.T) {
	guesses := []schema.TypeGuess{
		{Category: schema.CategoryBool},
		{Category: schema.CategoryInt16},
		{Category: schema.CategoryInt32},
		{Category: schema.CategoryInt64},
		{Category: schema.CategoryDecimal, Precision: 10, Scale: 3},
		{Category: schema.CategoryFloat},
		{Category: schema.CategoryString, Length: 100, Unicode: true},
		{Category: schema.CategoryString, Length: 2, Unicode: true, Fixed: true},
		{Category: schema.CategoryString, Unicode: true},
		{Category: schema.CategoryDate},
		{Category: schema.CategoryTime},
		{Category: schema.CategoryDateTime},
		{Category: schema.CategoryGuid},
		{Category: schema.CategoryBinary},
	}

	for _, g := range guesses {
		sqlType, err := GuessToPostgres(g)
		if err != nil {
			t.Fatalf("GuessToPostgres(%v): %v", g, err)
		}
		back, err := PostgresToGuess(sqlType)
		if err != nil {
			t.Fatalf("PostgresToGuess(%q): %v", sqlType, err)
		}
		if back != g {
			t.Errorf("round trip %v → %q → %v", g, sqlType, back)
		}
	}
}

func TestPostgresToGuessCatalogNames(t *testing.T) {
	// Имена типов в том виде как их отдает information_schema / pg_catalog
	tests := []struct {
		sqlType string
		want    schema.Category
	}{
		{"character varying(50)", schema.CategoryString},
		{"timestamp without time zone", schema.CategoryDateTime},
		{"int8", schema.CategoryInt64},
		{"bool", schema.CategoryBool},
		{"float8", schema.CategoryFloat},
		{"bigserial", schema.CategoryInt64},
	}
	for _, tt := range tests {
		got, err := PostgresToGuess(tt.sqlType)
		if err != nil {
			t.Errorf("PostgresToGuess(%q): %v", tt.sqlType, err)
			continue
		}
		if got.Category != tt.want {
			t.Errorf("PostgresToGuess(%q) = %s, want %s", tt.sqlType, got.Category, tt.want)
		}
	}

	if _, err := PostgresToGuess("tsvector"); err == nil {
		t.Error("expected error for unknown type")
	}
}
