package bulk

import (
	"context"
	"fmt"
	"strings"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

// diagnose расследует сбой пакетной загрузки: в отдельной сессии
// воспроизводит вставку построчно и находит первую строку на которой
// ошибка повторяется. Все вставки расследования откатываются
func (e *Engine) diagnose(ctx context.Context, pl *plan, rs *RowSet, original error) error {
	// Соединение берется из пула. Изоляция от упавшей попытки держится
	// на контракте database/sql: соединение своей транзакции выдается
	// повторно только после отката и ResetSession драйвера, а соединение
	// внешней транзакции занято ею и из пула выдано быть не может -
	// состояние сессии исходного сбоя сюда не наследуется
	conn, err := e.db.Conn(ctx)
	if err != nil {
		return &CompositeError{
			Original:      original,
			Investigation: fmt.Errorf("failed to acquire connection: %w", err),
		}
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, e.dialect.TxOptions())
	if err != nil {
		return &CompositeError{
			Original:      original,
			Investigation: fmt.Errorf("failed to begin transaction: %w", err),
		}
	}
	// Расследование никогда не оставляет данных
	defer tx.Rollback()

	query := e.dialect.BuildInsert(e.table, pl.columns, 1)

	for r, row := range rs.Rows {
		args := make([]any, len(pl.mappings))
		for i, m := range pl.mappings {
			v, cerr := e.dialect.CoerceValue(row[m.Source.Ordinal], m.Destination, pl.guesses[i])
			if cerr != nil {
				return e.attribute(pl, row, r+1, cerr)
			}
			args[i] = v
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			return e.attribute(pl, row, r+1, execErr)
		}
	}

	// Каждая строка по отдельности прошла - проблема только в пакетном режиме
	return &BulkOnlyError{Original: original}
}

// attribute строит диагностику для строки row (номер 1-based):
// ищет имя виновной колонки в тексте ошибки драйвера, при однозначном
// совпадении указывает колонку и значение, иначе отображает всю строку
func (e *Engine) attribute(pl *plan, row []any, rowNum int, driverErr error) error {
	msg := strings.ToLower(driverErr.Error())

	var matched *ColumnMapping
	matches := 0
	for i := range pl.mappings {
		if strings.Contains(msg, strings.ToLower(pl.mappings[i].Destination.Name)) {
			matched = &pl.mappings[i]
			matches++
		}
	}

	if matches == 1 {
		return &DiagnosticError{
			Row:     rowNum,
			Column:  matched.Destination.Name,
			Value:   schema.DisplayValue(row[matched.Source.Ordinal]),
			SQLType: matched.Destination.SQLType,
			Driver:  driverErr,
		}
	}

	values := make([]string, len(pl.mappings))
	for i, m := range pl.mappings {
		values[i] = fmt.Sprintf("%s=%s", m.Destination.Name, schema.DisplayValue(row[m.Source.Ordinal]))
	}
	return &DiagnosticError{
		Row:       rowNum,
		RowValues: values,
		Driver:    driverErr,
	}
}
