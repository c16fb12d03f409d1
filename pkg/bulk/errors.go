package bulk

import (
	"fmt"
	"strings"
)

// ColumnMappingError - колонка источника не сопоставилась с колонкой
// назначения (нет совпадения или несколько совпадений)
type ColumnMappingError struct {
	Column  string
	Message string
}

func (e *ColumnMappingError) Error() string {
	return fmt.Sprintf("column mapping failed for '%s': %s", e.Column, e.Message)
}

// DiagnosticError - результат расследования сбоя загрузки: конкретная
// строка (и при возможности колонка/значение), воспроизводящая ошибку
type DiagnosticError struct {
	// Row - номер строки источника, 1-based
	Row int

	// Column и Value заполнены если виновная колонка определена
	// по тексту ошибки драйвера
	Column string
	Value  string

	// SQLType - объявленный тип виновной колонки
	SQLType string

	// RowValues - отображение всей строки (fallback когда колонку
	// определить не удалось)
	RowValues []string

	// Driver - исходная ошибка драйвера при воспроизведении
	Driver error
}

func (e *DiagnosticError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("bulk insert failed on data row %d: value '%s' is not valid for column '%s' (%s): %v",
			e.Row, e.Value, e.Column, e.SQLType, e.Driver)
	}
	if len(e.RowValues) > 0 {
		return fmt.Sprintf("bulk insert failed on data row %d [%s]: %v",
			e.Row, strings.Join(e.RowValues, ", "), e.Driver)
	}
	return fmt.Sprintf("bulk insert failed on data row %d: %v", e.Row, e.Driver)
}

func (e *DiagnosticError) Unwrap() error {
	return e.Driver
}

// BulkOnlyError - каждая строка по отдельности вставляется успешно,
// ошибка проявляется только при пакетной вставке (блокировка, взаимное
// ограничение между строками, лимит на стороне сервера)
type BulkOnlyError struct {
	Original error
}

func (e *BulkOnlyError) Error() string {
	return fmt.Sprintf("failure occurs only in bulk mode, every row inserts individually: %v", e.Original)
}

func (e *BulkOnlyError) Unwrap() error {
	return e.Original
}

// CompositeError - расследование само завершилось ошибкой.
// Индекс 0 - исходная ошибка загрузки, индекс 1 - ошибка расследования
type CompositeError struct {
	Original      error
	Investigation error
}

func (e *CompositeError) Error() string {
	return fmt.Sprintf("bulk insert failed: %v; investigation also failed: %v",
		e.Original, e.Investigation)
}

// Unwrap возвращает обе ошибки для errors.Is/errors.As
func (e *CompositeError) Unwrap() []error {
	return []error{e.Original, e.Investigation}
}
