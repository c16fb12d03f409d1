package bulk

import (
	"database/sql"
	"strings"
	"time"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

// DefaultBatchSize - размер пакета по умолчанию (строк на INSERT),
// до применения лимита параметров СУБД
const DefaultBatchSize = 5000

// Settings - настройки загрузки
type Settings struct {
	// BatchSize - желаемое число строк на команду INSERT.
	// Эффективный размер дополнительно ограничен лимитом параметров
	BatchSize int

	// Timeout - таймаут одной команды. 0 = таймаут драйвера
	Timeout time.Duration
}

// Normalize подставляет значения по умолчанию
func (s Settings) Normalize() Settings {
	if s.BatchSize < 1 {
		s.BatchSize = DefaultBatchSize
	}
	return s
}

// Dialect инкапсулирует все различия СУБД: синтаксис INSERT, лимит
// параметров, систему типов, приведение значений и распознавание
// ошибок валидации схемы
type Dialect interface {
	// Name - имя движка ("mssql", "mysql", "postgres", "oracle", "sqlite")
	Name() string

	// DriverName - имя зарегистрированного database/sql драйвера
	DriverName() string

	// QuoteIdentifier экранирует имя таблицы или колонки
	QuoteIdentifier(name string) string

	// Placeholder возвращает плейсхолдер параметра с номером n (1-based)
	Placeholder(n int) string

	// MaxParameters - жесткий лимит параметров одной команды
	MaxParameters() int

	// TxOptions - опции собственной транзакции движка.
	// nil = опции по умолчанию (движки без уровня Read Uncommitted)
	TxOptions() *sql.TxOptions

	// BuildInsert строит параметризованный многострочный INSERT
	BuildInsert(table string, columns []string, rowCount int) string

	// ToSQLType рендерит guess в SQL тип движка
	ToSQLType(g schema.TypeGuess) (string, error)

	// ParseSQLType разбирает SQL тип движка обратно в guess
	ParseSQLType(sqlType string) (schema.TypeGuess, error)

	// CoerceValue приводит значение к представлению параметра драйвера
	CoerceValue(value any, col schema.Column, guess schema.TypeGuess) (any, error)

	// IsSchemaValidationError распознает точные ошибки валидации данных
	// на стороне СУБД (усечение, переполнение precision). Такие ошибки
	// пробрасываются как есть, без расследования
	IsSchemaValidationError(err error) bool
}

// StandardInsert строит INSERT INTO t (a, b) VALUES (p1, p2), (p3, p4)...
// Общий строитель для движков со стандартным многострочным синтаксисом
func StandardInsert(d Dialect, table string, columns []string, rowCount int) string {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(d.QuoteIdentifier(table))
	sb.WriteString(" (")
	for i, col := range columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(d.QuoteIdentifier(col))
	}
	sb.WriteString(") VALUES ")

	n := 1
	for r := 0; r < rowCount; r++ {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for c := range columns {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(d.Placeholder(n))
			n++
		}
		sb.WriteString(")")
	}

	return sb.String()
}
