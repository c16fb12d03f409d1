package bulk

import (
	"fmt"
	"strings"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

// ColumnMapping - результат сопоставления: для каждой колонки источника
// найденная колонка назначения
type ColumnMapping struct {
	Source      SourceColumn
	Destination schema.Column
}

// ResolveMapping сопоставляет колонки источника с колонками назначения
// по имени без учета регистра. Чистая функция: не обращается к БД.
//
// Правила:
//   - колонка источника без совпадения - ошибка
//   - колонка источника с несколькими совпадениями - ошибка
//   - колонки назначения без совпадения допустимы (заполняются DEFAULT/NULL)
func ResolveMapping(source []SourceColumn, dest []schema.Column) ([]ColumnMapping, error) {
	mappings := make([]ColumnMapping, 0, len(source))

	for _, src := range source {
		var matched []schema.Column
		for _, d := range dest {
			if strings.EqualFold(src.Name, d.Name) {
				matched = append(matched, d)
			}
		}

		switch len(matched) {
		case 0:
			return nil, &ColumnMappingError{
				Column:  src.Name,
				Message: "no matching column in destination table",
			}
		case 1:
			mappings = append(mappings, ColumnMapping{Source: src, Destination: matched[0]})
		default:
			names := make([]string, len(matched))
			for i, m := range matched {
				names[i] = m.Name
			}
			return nil, &ColumnMappingError{
				Column:  src.Name,
				Message: fmt.Sprintf("matches multiple destination columns: %s", strings.Join(names, ", ")),
			}
		}
	}

	return mappings, nil
}
