package mysql

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/jas88/FAnsiSql-sub000/pkg/bulk"
	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
	"github.com/jas88/FAnsiSql-sub000/pkg/dialects"
)

// Регистрация диалекта в глобальной фабрике
func init() {
	dialects.Register("mysql", func() bulk.Dialect {
		return New()
	})
}

// Dialect реализует bulk.Dialect для MySQL 5.7+ / MariaDB
type Dialect struct {
	converter *schema.Converter
}

// New создает диалект MySQL
func New() *Dialect {
	return &Dialect{converter: schema.NewConverter()}
}

// NewBulkCopy создает движок загрузки для MySQL
func NewBulkCopy(db *sql.DB, table string, source bulk.SchemaSource, settings bulk.Settings) *bulk.Engine {
	return bulk.NewEngine(db, New(), table, source, settings)
}

func (d *Dialect) Name() string {
	return "mysql"
}

func (d *Dialect) DriverName() string {
	return "mysql"
}

// QuoteIdentifier экранирует идентификатор обратными кавычками
func (d *Dialect) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *Dialect) Placeholder(_ int) string {
	return "?"
}

// MaxParameters - лимит протокола MySQL (uint16 в COM_STMT_PREPARE)
func (d *Dialect) MaxParameters() int {
	return 65535
}

// TxOptions - Read Uncommitted, как и для SQL Server
func (d *Dialect) TxOptions() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelReadUncommitted}
}

func (d *Dialect) BuildInsert(table string, columns []string, rowCount int) string {
	return bulk.StandardInsert(d, table, columns, rowCount)
}

func (d *Dialect) ToSQLType(g schema.TypeGuess) (string, error) {
	return GuessToMySQL(g)
}

func (d *Dialect) ParseSQLType(sqlType string) (schema.TypeGuess, error) {
	return MySQLToGuess(sqlType)
}

// CoerceValue - MySQL не имеет нативного BOOLEAN, а временные значения
// передаются текстом в формате понятном серверу без parseTime
func (d *Dialect) CoerceValue(value any, col schema.Column, g schema.TypeGuess) (any, error) {
	v, err := d.converter.Coerce(value, col, g)
	if err != nil || v == nil {
		return v, err
	}

	switch tv := v.(type) {
	case bool:
		return schema.BoolToInt(tv), nil
	case time.Time:
		return schema.FormatTemporal(tv, g.Category), nil
	}
	return v, nil
}

// Ошибки валидации данных MySQL:
//
//	1406 - Data too long for column
//	1264 - Out of range value for column
func (d *Dialect) IsSchemaValidationError(err error) bool {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return false
	}
	switch myErr.Number {
	case 1406, 1264:
		return true
	}
	return false
}
