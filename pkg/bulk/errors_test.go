package bulk

import (
	"errors"
	"strings"
	"testing"
)

func TestDiagnosticErrorRendering(t *testing.T) {
	driver := errors.New("CHECK constraint failed: name_length")

	withColumn := &DiagnosticError{
		Row: 3, Column: "name", Value: "christopher", SQLType: "VARCHAR(5)", Driver: driver,
	}
	msg := withColumn.Error()
	for _, part := range []string{"row 3", "christopher", "name", "VARCHAR(5)"} {
		if !strings.Contains(msg, part) {
			t.Errorf("message %q missing %q", msg, part)
		}
	}
	if !errors.Is(withColumn, driver) {
		t.Error("DiagnosticError must unwrap to the driver error")
	}

	fullRow := &DiagnosticError{
		Row: 1, RowValues: []string{"id=1", "name=NULL"}, Driver: driver,
	}
	if !strings.Contains(fullRow.Error(), "id=1, name=NULL") {
		t.Errorf("full-row message = %q", fullRow.Error())
	}
}

func TestCompositeErrorUnwrapsBoth(t *testing.T) {
	original := errors.New("bulk failed")
	investigation := errors.New("connection refused")
	comp := &CompositeError{Original: original, Investigation: investigation}

	if !errors.Is(comp, original) {
		t.Error("composite must unwrap to the original error")
	}
	if !errors.Is(comp, investigation) {
		t.Error("composite must unwrap to the investigation error")
	}
}

func TestBulkOnlyError(t *testing.T) {
	original := errors.New("deadlock detected")
	err := &BulkOnlyError{Original: original}

	if !errors.Is(err, original) {
		t.Error("BulkOnlyError must unwrap to the original error")
	}
	if !strings.Contains(err.Error(), "bulk mode") {
		t.Errorf("message = %q", err.Error())
	}
}
