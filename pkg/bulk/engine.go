package bulk

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

// Engine выполняет пакетную загрузку RowSet в целевую таблицу.
// Семантика "все или ничего": либо фиксируются все строки, либо ни одной
type Engine struct {
	db       *sql.DB
	tx       *sql.Tx // внешняя транзакция, nil = движок открывает свою
	dialect  Dialect
	table    string
	source   SchemaSource
	settings Settings
}

// NewEngine создает движок загрузки для таблицы table
func NewEngine(db *sql.DB, dialect Dialect, table string, source SchemaSource, settings Settings) *Engine {
	return &Engine{
		db:       db,
		dialect:  dialect,
		table:    table,
		source:   source,
		settings: settings.Normalize(),
	}
}

// WithTransaction привязывает загрузку к внешней транзакции.
// Движок не фиксирует и не откатывает её - жизненным циклом управляет
// вызывающая сторона
func (e *Engine) WithTransaction(tx *sql.Tx) *Engine {
	e.tx = tx
	return e
}

// plan - разрешенное сопоставление плюс разобранные типы назначения
type plan struct {
	mappings []ColumnMapping
	guesses  []schema.TypeGuess
	columns  []string
}

// Upload загружает rs в целевую таблицу. Возвращает число загруженных
// строк. nil отклоняется; пустой RowSet - ноль строк и ни одного
// обращения к БД
func (e *Engine) Upload(ctx context.Context, rs *RowSet) (int64, error) {
	if rs == nil {
		return 0, fmt.Errorf("row set must not be nil")
	}
	if rs.Len() == 0 {
		return 0, nil
	}

	pl, err := e.prepare(ctx, rs)
	if err != nil {
		return 0, err
	}

	tx := e.tx
	owned := false
	if tx == nil {
		tx, err = e.db.BeginTx(ctx, e.dialect.TxOptions())
		if err != nil {
			return 0, fmt.Errorf("failed to begin transaction: %w", err)
		}
		owned = true
	}

	total, execErr := e.uploadBatches(ctx, tx, pl, rs)
	if execErr == nil {
		if owned {
			if err := tx.Commit(); err != nil {
				return 0, fmt.Errorf("failed to commit transaction: %w", err)
			}
		}
		return total, nil
	}

	var rollbackErr error
	if owned {
		rollbackErr = tx.Rollback()
	}

	return 0, withRollbackFailure(e.classify(ctx, pl, rs, execErr), rollbackErr)
}

// classify решает судьбу ошибки выполнения: проброс, уже атрибутированная
// ошибка приведения или построчное расследование
func (e *Engine) classify(ctx context.Context, pl *plan, rs *RowSet, execErr error) error {
	// Точные ошибки валидации СУБД пробрасываются как есть -
	// расследование не добавит информации
	if e.dialect.IsSchemaValidationError(execErr) {
		return execErr
	}

	// Ошибки приведения значений уже атрибутированы к строке
	var diag *DiagnosticError
	if errors.As(execErr, &diag) {
		return execErr
	}

	return e.diagnose(ctx, pl, rs, execErr)
}

// withRollbackFailure дополняет основную ошибку сбоем отката.
// Основная ошибка сохраняет приоритет в отчете
func withRollbackFailure(primary, rollbackErr error) error {
	if rollbackErr == nil {
		return primary
	}
	return fmt.Errorf("%w (rollback also failed: %v)", primary, rollbackErr)
}

// prepare выполняет обнаружение схемы, сопоставление колонок и разбор
// типов назначения. Любая ошибка здесь фатальна и происходит до первой
// команды записи
func (e *Engine) prepare(ctx context.Context, rs *RowSet) (*plan, error) {
	dest, err := e.source.DestinationColumns(ctx, e.table)
	if err != nil {
		return nil, fmt.Errorf("failed to discover destination schema: %w", err)
	}
	if len(dest) == 0 {
		return nil, fmt.Errorf("destination table %q has no discoverable columns", e.table)
	}

	mappings, err := ResolveMapping(rs.Columns, dest)
	if err != nil {
		return nil, err
	}

	guesses := make([]schema.TypeGuess, len(mappings))
	columns := make([]string, len(mappings))
	for i, m := range mappings {
		g, err := e.dialect.ParseSQLType(m.Destination.SQLType)
		if err != nil {
			return nil, fmt.Errorf("failed to parse type of column '%s': %w", m.Destination.Name, err)
		}
		guesses[i] = g
		columns[i] = m.Destination.Name
	}

	return &plan{mappings: mappings, guesses: guesses, columns: columns}, nil
}

func (e *Engine) uploadBatches(ctx context.Context, tx *sql.Tx, pl *plan, rs *RowSet) (int64, error) {
	planner := NewPlanner(e.settings.BatchSize, e.dialect.MaxParameters(), len(pl.columns))
	seq := planner.Plan(rs)

	var total int64
	for batch := seq.Next(); batch != nil; batch = seq.Next() {
		args, err := e.coerceBatch(pl, batch)
		if err != nil {
			return total, err
		}

		query := e.dialect.BuildInsert(e.table, pl.columns, len(batch.Rows))

		res, err := e.execBatch(ctx, tx, query, args)
		if err != nil {
			return total, err
		}

		if n, err := res.RowsAffected(); err == nil && n > 0 {
			total += n
		} else {
			total += int64(len(batch.Rows))
		}
	}

	return total, nil
}

// execBatch выполняет одну команду INSERT с таймаутом из настроек.
// Нулевой таймаут оставляет поведение драйвера
func (e *Engine) execBatch(ctx context.Context, tx *sql.Tx, query string, args []any) (sql.Result, error) {
	if e.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.settings.Timeout)
		defer cancel()
	}
	return tx.ExecContext(ctx, query, args...)
}

// coerceBatch приводит значения пакета к параметрам драйвера.
// Ошибка приведения атрибутируется к исходной строке (1-based)
func (e *Engine) coerceBatch(pl *plan, batch *Batch) ([]any, error) {
	args := make([]any, 0, len(batch.Rows)*len(pl.mappings))
	for r, row := range batch.Rows {
		for i, m := range pl.mappings {
			v, err := e.dialect.CoerceValue(row[m.Source.Ordinal], m.Destination, pl.guesses[i])
			if err != nil {
				return nil, &DiagnosticError{
					Row:     batch.Offset + r + 1,
					Column:  m.Destination.Name,
					Value:   schema.DisplayValue(row[m.Source.Ordinal]),
					SQLType: m.Destination.SQLType,
					Driver:  err,
				}
			}
			args = append(args, v)
		}
	}
	return args, nil
}
