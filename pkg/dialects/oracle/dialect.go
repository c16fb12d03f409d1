package oracle

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/alexbrainman/odbc" // драйвер "odbc"

	"github.com/jas88/FAnsiSql-sub000/pkg/bulk"
	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
	"github.com/jas88/FAnsiSql-sub000/pkg/dialects"
)

// Регистрация диалекта в глобальной фабрике
func init() {
	dialects.Register("oracle", func() bulk.Dialect {
		return New()
	})
}

// Dialect реализует bulk.Dialect для Oracle 12c+ через ODBC
type Dialect struct {
	converter *schema.Converter
}

// New создает диалект Oracle
func New() *Dialect {
	return &Dialect{converter: schema.NewConverter()}
}

// NewBulkCopy создает движок загрузки для Oracle
func NewBulkCopy(db *sql.DB, table string, source bulk.SchemaSource, settings bulk.Settings) *bulk.Engine {
	return bulk.NewEngine(db, New(), table, source, settings)
}

func (d *Dialect) Name() string {
	return "oracle"
}

func (d *Dialect) DriverName() string {
	return "odbc"
}

// QuoteIdentifier экранирует идентификатор двойными кавычками
func (d *Dialect) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *Dialect) Placeholder(_ int) string {
	return "?"
}

// MaxParameters - консервативный лимит для ODBC-моста
func (d *Dialect) MaxParameters() int {
	return 1000
}

// TxOptions - Oracle не поддерживает Read Uncommitted,
// используются опции по умолчанию
func (d *Dialect) TxOptions() *sql.TxOptions {
	return nil
}

// BuildInsert - у Oracle нет многострочного VALUES, многострочная
// вставка выражается через INSERT ALL ... SELECT 1 FROM DUAL
func (d *Dialect) BuildInsert(table string, columns []string, rowCount int) string {
	if rowCount == 1 {
		return bulk.StandardInsert(d, table, columns, 1)
	}

	var sb strings.Builder
	sb.WriteString("INSERT ALL")
	for r := 0; r < rowCount; r++ {
		sb.WriteString(" INTO ")
		sb.WriteString(d.QuoteIdentifier(table))
		sb.WriteString(" (")
		for i, col := range columns {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(d.QuoteIdentifier(col))
		}
		sb.WriteString(") VALUES (")
		for i := range columns {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("?")
		}
		sb.WriteString(")")
	}
	sb.WriteString(" SELECT 1 FROM DUAL")
	return sb.String()
}

func (d *Dialect) ToSQLType(g schema.TypeGuess) (string, error) {
	return GuessToOracle(g)
}

func (d *Dialect) ParseSQLType(sqlType string) (schema.TypeGuess, error) {
	return OracleToGuess(sqlType)
}

// CoerceValue - boolean идет как 0/1 в NUMBER(1), время суток текстом
// в VARCHAR2(8), остальное принимается ODBC-драйвером нативно
func (d *Dialect) CoerceValue(value any, col schema.Column, g schema.TypeGuess) (any, error) {
	v, err := d.converter.Coerce(value, col, g)
	if err != nil || v == nil {
		return v, err
	}

	switch tv := v.(type) {
	case bool:
		return schema.BoolToInt(tv), nil
	case time.Time:
		if g.Category == schema.CategoryTime {
			return schema.FormatTemporal(tv, g.Category), nil
		}
		return tv, nil
	}
	return v, nil
}

// Ошибки валидации данных Oracle:
//
//	ORA-12899 - value too large for column
//	ORA-01438 - value larger than specified precision
//
// ODBC-мост не дает типизированных ошибок, коды ищутся в тексте
func (d *Dialect) IsSchemaValidationError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "ORA-12899") || strings.Contains(msg, "ORA-01438")
}
