package mysql

import (
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

func TestBuildInsert(t *testing.T) {
	d := New()
	got := d.BuildInsert("t", []string{"a", "b"}, 2)
	want := "INSERT INTO `t` (`a`, `b`) VALUES (?, ?), (?, ?)"
	if got != want {
		t.Errorf("BuildInsert = %q, want %q", got, want)
	}
}

func TestCoerceValueRepresentations(t *testing.T) {
	d := New()
	col := schema.Column{Name: "c", Nullable: true}

	// bool → 0/1
	v, err := d.CoerceValue(true, col, schema.TypeGuess{Category: schema.CategoryBool})
	if err != nil || v != 1 {
		t.Errorf("CoerceValue(true) = %v, %v, want 1", v, err)
	}

	// time.Time → текст
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	v, err = d.CoerceValue(ts, col, schema.TypeGuess{Category: schema.CategoryDateTime})
	if err != nil || v != "2024-03-15 10:30:00" {
		t.Errorf("CoerceValue(time) = %v, %v", v, err)
	}

	v, err = d.CoerceValue(ts, col, schema.TypeGuess{Category: schema.CategoryDate})
	if err != nil || v != "2024-03-15" {
		t.Errorf("CoerceValue(date) = %v, %v", v, err)
	}

	// NULL не трогается
	v, err = d.CoerceValue(nil, col, schema.TypeGuess{Category: schema.CategoryBool})
	if err != nil || v != nil {
		t.Errorf("CoerceValue(nil) = %v, %v", v, err)
	}
}

func TestIsSchemaValidationError(t *testing.T) {
	d := New()

	if !d.IsSchemaValidationError(&mysql.MySQLError{Number: 1406, Message: "Data too long"}) {
		t.Error("1406 must be recognized")
	}
	if !d.IsSchemaValidationError(&mysql.MySQLError{Number: 1264, Message: "Out of range"}) {
		t.Error("1264 must be recognized")
	}
	if d.IsSchemaValidationError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}) {
		t.Error("duplicate key is not a schema validation error")
	}
	if d.IsSchemaValidationError(errors.New("plain error")) {
		t.Error("plain error must not be recognized")
	}
}
