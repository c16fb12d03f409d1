package bulk

import (
	"context"
	"fmt"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

// SourceColumn - колонка источника данных с позицией в строке
type SourceColumn struct {
	Name    string
	Ordinal int
}

// RowSet - порция строк для загрузки. Порядок значений в каждой строке
// соответствует порядку Columns
type RowSet struct {
	Columns []SourceColumn
	Rows    [][]any
}

// NewRowSet создает RowSet с автоматической нумерацией колонок
func NewRowSet(columnNames []string) *RowSet {
	cols := make([]SourceColumn, len(columnNames))
	for i, name := range columnNames {
		cols[i] = SourceColumn{Name: name, Ordinal: i}
	}
	return &RowSet{Columns: cols}
}

// Append добавляет строку. Количество значений должно совпадать
// с количеством колонок
func (rs *RowSet) Append(values ...any) error {
	if len(values) != len(rs.Columns) {
		return fmt.Errorf("row has %d values, expected %d", len(values), len(rs.Columns))
	}
	rs.Rows = append(rs.Rows, values)
	return nil
}

// Len возвращает количество строк
func (rs *RowSet) Len() int {
	return len(rs.Rows)
}

// SchemaSource поставляет описание колонок целевой таблицы.
// Обнаружение схемы - задача вызывающей стороны (системный каталог,
// INFORMATION_SCHEMA, кэш), движок загрузки только потребляет результат
type SchemaSource interface {
	DestinationColumns(ctx context.Context, table string) ([]schema.Column, error)
}

// StaticSchema - готовый список колонок как SchemaSource
// (для тестов и случаев когда схема известна заранее)
type StaticSchema []schema.Column

// DestinationColumns возвращает заранее заданные колонки
func (s StaticSchema) DestinationColumns(_ context.Context, table string) ([]schema.Column, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("destination table %q has no discoverable columns", table)
	}
	return s, nil
}
