package sqlite

import (
	"database/sql"
	"strings"
	"time"

	_ "modernc.org/sqlite" // драйвер "sqlite", без cgo

	"github.com/jas88/FAnsiSql-sub000/pkg/bulk"
	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
	"github.com/jas88/FAnsiSql-sub000/pkg/dialects"
)

// Регистрация диалекта в глобальной фабрике
func init() {
	dialects.Register("sqlite", func() bulk.Dialect {
		return New()
	})
}

// Dialect реализует bulk.Dialect для SQLite 3
type Dialect struct {
	converter *schema.Converter
}

// New создает диалект SQLite
func New() *Dialect {
	return &Dialect{converter: schema.NewConverter()}
}

// NewBulkCopy создает движок загрузки для SQLite
func NewBulkCopy(db *sql.DB, table string, source bulk.SchemaSource, settings bulk.Settings) *bulk.Engine {
	return bulk.NewEngine(db, New(), table, source, settings)
}

func (d *Dialect) Name() string {
	return "sqlite"
}

func (d *Dialect) DriverName() string {
	return "sqlite"
}

// QuoteIdentifier экранирует идентификатор двойными кавычками
func (d *Dialect) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *Dialect) Placeholder(_ int) string {
	return "?"
}

// MaxParameters - SQLITE_MAX_VARIABLE_NUMBER по умолчанию
func (d *Dialect) MaxParameters() int {
	return 999
}

// TxOptions - SQLite однописательный, уровень изоляции не настраивается
func (d *Dialect) TxOptions() *sql.TxOptions {
	return nil
}

func (d *Dialect) BuildInsert(table string, columns []string, rowCount int) string {
	return bulk.StandardInsert(d, table, columns, rowCount)
}

func (d *Dialect) ToSQLType(g schema.TypeGuess) (string, error) {
	return GuessToSQLite(g)
}

func (d *Dialect) ParseSQLType(sqlType string) (schema.TypeGuess, error) {
	return SQLiteToGuess(sqlType)
}

// CoerceValue - boolean хранится как 0/1, временные значения текстом
// ISO-8601 (лексикографическое сравнение совпадает с хронологическим)
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

// SQLite не проверяет длину и точность объявленного типа, нарушения
// приходят только от CHECK и NOT NULL ограничений - такие ошибки
// расследуются построчно, точной валидации схемы здесь нет
func (d *Dialect) IsSchemaValidationError(_ error) bool {
	return false
}
