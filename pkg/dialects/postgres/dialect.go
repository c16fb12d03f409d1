package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // драйвер "pgx"

	"github.com/jas88/FAnsiSql-sub000/pkg/bulk"
	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
	"github.com/jas88/FAnsiSql-sub000/pkg/dialects"
)

// Регистрация диалекта в глобальной фабрике
func init() {
	dialects.Register("postgres", func() bulk.Dialect {
		return New()
	})
}

// Dialect реализует bulk.Dialect для PostgreSQL 12+
type Dialect struct {
	converter *schema.Converter
}

// New создает диалект PostgreSQL
func New() *Dialect {
	return &Dialect{converter: schema.NewConverter()}
}

// NewBulkCopy создает движок загрузки для PostgreSQL
func NewBulkCopy(db *sql.DB, table string, source bulk.SchemaSource, settings bulk.Settings) *bulk.Engine {
	return bulk.NewEngine(db, New(), table, source, settings)
}

func (d *Dialect) Name() string {
	return "postgres"
}

func (d *Dialect) DriverName() string {
	return "pgx"
}

// QuoteIdentifier экранирует идентификатор двойными кавычками
func (d *Dialect) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *Dialect) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

// MaxParameters - лимит wire-протокола (int16 в сообщении Bind)
func (d *Dialect) MaxParameters() int {
	return 65535
}

// TxOptions - PostgreSQL принимает Read Uncommitted и трактует его
// как Read Committed, семантика загрузки от этого не меняется
func (d *Dialect) TxOptions() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelReadUncommitted}
}

func (d *Dialect) BuildInsert(table string, columns []string, rowCount int) string {
	return bulk.StandardInsert(d, table, columns, rowCount)
}

func (d *Dialect) ToSQLType(g schema.TypeGuess) (string, error) {
	return GuessToPostgres(g)
}

func (d *Dialect) ParseSQLType(sqlType string) (schema.TypeGuess, error) {
	return PostgresToGuess(sqlType)
}

// CoerceValue - PostgreSQL принимает bool, time.Time, UUID-строку
// и []byte нативно, достаточно базового приведения
func (d *Dialect) CoerceValue(value any, col schema.Column, g schema.TypeGuess) (any, error) {
	return d.converter.Coerce(value, col, g)
}

// Ошибки валидации данных PostgreSQL (SQLSTATE класс 22):
//
//	22001 - string_data_right_truncation
//	22003 - numeric_value_out_of_range
func (d *Dialect) IsSchemaValidationError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "22001", "22003":
		return true
	}
	return false
}
