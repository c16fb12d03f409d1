package mssql

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	mssql "github.com/denisenkom/go-mssqldb"

	"github.com/jas88/FAnsiSql-sub000/pkg/bulk"
	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
	"github.com/jas88/FAnsiSql-sub000/pkg/dialects"
)

// Регистрация диалекта в глобальной фабрике
func init() {
	dialects.Register("mssql", func() bulk.Dialect {
		return New()
	})
}

// Dialect реализует bulk.Dialect для MS SQL Server 2012+
type Dialect struct {
	converter *schema.Converter
}

// New создает диалект SQL Server
func New() *Dialect {
	return &Dialect{converter: schema.NewConverter()}
}

// NewBulkCopy создает движок загрузки для SQL Server
func NewBulkCopy(db *sql.DB, table string, source bulk.SchemaSource, settings bulk.Settings) *bulk.Engine {
	return bulk.NewEngine(db, New(), table, source, settings)
}

func (d *Dialect) Name() string {
	return "mssql"
}

func (d *Dialect) DriverName() string {
	return "sqlserver"
}

// QuoteIdentifier экранирует идентификатор квадратными скобками
func (d *Dialect) QuoteIdentifier(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (d *Dialect) Placeholder(n int) string {
	return fmt.Sprintf("@p%d", n)
}

// MaxParameters - лимит SQL Server на параметры одной команды
func (d *Dialect) MaxParameters() int {
	return 2100
}

// TxOptions - Read Uncommitted: загрузка не должна блокироваться
// чужими незафиксированными транзакциями
func (d *Dialect) TxOptions() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelReadUncommitted}
}

func (d *Dialect) BuildInsert(table string, columns []string, rowCount int) string {
	return bulk.StandardInsert(d, table, columns, rowCount)
}

func (d *Dialect) ToSQLType(g schema.TypeGuess) (string, error) {
	return GuessToMSSQL(g)
}

func (d *Dialect) ParseSQLType(sqlType string) (schema.TypeGuess, error) {
	return MSSQLToGuess(sqlType)
}

// CoerceValue - SQL Server принимает bool, time.Time и GUID-строку
// нативно, достаточно базового приведения
func (d *Dialect) CoerceValue(value any, col schema.Column, g schema.TypeGuess) (any, error) {
	return d.converter.Coerce(value, col, g)
}

// Ошибки валидации данных SQL Server:
//
//	8152 - string or binary data would be truncated (до SQL Server 2019)
//	2628 - string or binary data would be truncated in table (2019+)
//	8115 - arithmetic overflow converting to data type
func (d *Dialect) IsSchemaValidationError(err error) bool {
	var sqlErr mssql.Error
	if !errors.As(err, &sqlErr) {
		return false
	}
	switch sqlErr.Number {
	case 8152, 2628, 8115:
		return true
	}
	return false
}
