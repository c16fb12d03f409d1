package dialects_test

import (
	"strings"
	"testing"

	"github.com/jas88/FAnsiSql-sub000/pkg/dialects"

	// Регистрация всех диалектов
	_ "github.com/jas88/FAnsiSql-sub000/pkg/dialects/mssql"
	_ "github.com/jas88/FAnsiSql-sub000/pkg/dialects/mysql"
	_ "github.com/jas88/FAnsiSql-sub000/pkg/dialects/oracle"
	_ "github.com/jas88/FAnsiSql-sub000/pkg/dialects/postgres"
	_ "github.com/jas88/FAnsiSql-sub000/pkg/dialects/sqlite"
)

func TestFactoryCreatesAllDialects(t *testing.T) {
	for _, name := range []string{"mssql", "mysql", "postgres", "oracle", "sqlite"} {
		t.Run(name, func(t *testing.T) {
			if !dialects.IsRegistered(name) {
				t.Fatalf("%s not registered", name)
			}
			d, err := dialects.New(name)
			if err != nil {
				t.Fatalf("New(%q): %v", name, err)
			}
			if d.Name() != name {
				t.Errorf("Name() = %q, want %q", d.Name(), name)
			}
			if d.MaxParameters() < 1 {
				t.Errorf("MaxParameters() = %d", d.MaxParameters())
			}
		})
	}
}

func TestFactoryUnknownType(t *testing.T) {
	_, err := dialects.New("db2")
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
	if !strings.Contains(err.Error(), "available types") {
		t.Errorf("error must list available types, got: %v", err)
	}
}
