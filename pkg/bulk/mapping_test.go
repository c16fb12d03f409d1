package bulk

import (
	"errors"
	"testing"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

func TestResolveMapping(t *testing.T) {
	dest := []schema.Column{
		{Name: "Id", SQLType: "INT", PrimaryKey: true},
		{Name: "Name", SQLType: "VARCHAR(50)", Nullable: true},
		{Name: "CreatedAt", SQLType: "DATETIME", Nullable: true},
	}

	t.Run("case insensitive match", func(t *testing.T) {
		src := []SourceColumn{
			{Name: "ID", Ordinal: 0},
			{Name: "name", Ordinal: 1},
		}
		got, err := ResolveMapping(src, dest)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d mappings, want 2", len(got))
		}
		if got[0].Destination.Name != "Id" || got[1].Destination.Name != "Name" {
			t.Errorf("wrong destinations: %v, %v", got[0].Destination.Name, got[1].Destination.Name)
		}
		// Порядок источника сохраняется
		if got[0].Source.Ordinal != 0 || got[1].Source.Ordinal != 1 {
			t.Error("source ordinals lost")
		}
	})

	t.Run("unmatched source column fails", func(t *testing.T) {
		src := []SourceColumn{{Name: "Missing", Ordinal: 0}}
		_, err := ResolveMapping(src, dest)
		var merr *ColumnMappingError
		if !errors.As(err, &merr) {
			t.Fatalf("error type = %T, want *ColumnMappingError", err)
		}
		if merr.Column != "Missing" {
			t.Errorf("Column = %q, want Missing", merr.Column)
		}
	})

	t.Run("ambiguous match fails", func(t *testing.T) {
		ambiguous := []schema.Column{
			{Name: "name", SQLType: "VARCHAR(10)"},
			{Name: "NAME", SQLType: "VARCHAR(20)"},
		}
		src := []SourceColumn{{Name: "Name", Ordinal: 0}}
		_, err := ResolveMapping(src, ambiguous)
		var merr *ColumnMappingError
		if !errors.As(err, &merr) {
			t.Fatalf("error type = %T, want *ColumnMappingError", err)
		}
	})

	t.Run("unmatched destination columns allowed", func(t *testing.T) {
		src := []SourceColumn{{Name: "Id", Ordinal: 0}}
		got, err := ResolveMapping(src, dest)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("got %d mappings, want 1", len(got))
		}
	})
}
