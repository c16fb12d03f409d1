package schema

import (
	"fmt"
)

// Category представляет семантическую категорию типа данных
// (type guess) до рендеринга в конкретный SQL тип СУБД
type Category string

// Поддерживаемые категории типов
const (
	CategoryBool     Category = "BOOLEAN"
	CategoryByte     Category = "BYTE"
	CategoryInt16    Category = "SMALLINT"
	CategoryInt32    Category = "INT"
	CategoryInt64    Category = "BIGINT"
	CategoryDecimal  Category = "DECIMAL"
	CategoryFloat    Category = "FLOAT"
	CategoryString   Category = "TEXT"
	CategoryDate     Category = "DATE"
	CategoryTime     Category = "TIME"
	CategoryDateTime Category = "TIMESTAMP"
	CategoryGuid     Category = "GUID"
	CategoryBinary   Category = "BLOB"
)

// TypeGuess - семантическое описание формы значения
// ("целое в 32 бита", "строка до 50 символов, Unicode")
// до привязки к диалекту конкретной СУБД
type TypeGuess struct {
	Category Category

	// Length - длина для строк и бинарных данных
	// <= 0 означает неограниченную длину (TEXT/MAX/BLOB)
	Length int

	// Precision/Scale - для DECIMAL
	Precision int
	Scale     int

	// Unicode - различие Unicode/не-Unicode для строк
	// (NVARCHAR против VARCHAR, utf8mb4 против latin1)
	Unicode bool

	// Fixed - фиксированная ширина (CHAR против VARCHAR)
	Fixed bool
}

// String возвращает каноническое текстовое представление guess
func (g TypeGuess) String() string {
	switch g.Category {
	case CategoryDecimal:
		return fmt.Sprintf("%s(%d,%d)", g.Category, g.Precision, g.Scale)
	case CategoryString, CategoryBinary:
		if g.Length > 0 {
			return fmt.Sprintf("%s(%d)", g.Category, g.Length)
		}
		return string(g.Category)
	default:
		return string(g.Category)
	}
}

// Column описывает колонку целевой таблицы
// (поставляется внешним механизмом обнаружения схемы)
type Column struct {
	Name          string
	SQLType       string
	Nullable      bool
	PrimaryKey    bool
	AutoIncrement bool
}

// IsIntegerCategory проверяет является ли категория целочисленной
func IsIntegerCategory(c Category) bool {
	switch c {
	case CategoryByte, CategoryInt16, CategoryInt32, CategoryInt64:
		return true
	default:
		return false
	}
}

// IsNumericCategory проверяет является ли категория числовой
func IsNumericCategory(c Category) bool {
	return IsIntegerCategory(c) || c == CategoryDecimal || c == CategoryFloat
}

// IsTemporalCategory проверяет является ли категория временной
func IsTemporalCategory(c Category) bool {
	switch c {
	case CategoryDate, CategoryTime, CategoryDateTime:
		return true
	default:
		return false
	}
}

// IntegerGuessForRange возвращает самую узкую целочисленную категорию,
// вмещающую диапазон [min, max]
func IntegerGuessForRange(min, max int64) TypeGuess {
	switch {
	case min >= 0 && max <= 255:
		return TypeGuess{Category: CategoryByte}
	case min >= -32768 && max <= 32767:
		return TypeGuess{Category: CategoryInt16}
	case min >= -2147483648 && max <= 2147483647:
		return TypeGuess{Category: CategoryInt32}
	default:
		return TypeGuess{Category: CategoryInt64}
	}
}

// DecimalPrecisionHeadroom - запас точности добавляемый при рендеринге
// DECIMAL в SQL тип для защиты от переполнения при округлении.
// Обратный парсинг вычитает этот запас (см. PadPrecision/UnpadPrecision).
const DecimalPrecisionHeadroom = 1

// PadPrecision добавляет запас точности при рендеринге DECIMAL
func PadPrecision(precision int) int {
	return precision + DecimalPrecisionHeadroom
}

// UnpadPrecision вычитает запас точности при обратном парсинге DECIMAL
func UnpadPrecision(precision int) int {
	p := precision - DecimalPrecisionHeadroom
	if p < 1 {
		return 1
	}
	return p
}

// TypeNotMappedError - тип guess не имеет представления в диалекте
// Никогда не подменяется типом по умолчанию
type TypeNotMappedError struct {
	Dialect string
	Guess   string
}

func (e *TypeNotMappedError) Error() string {
	return fmt.Sprintf("type %q has no mapping in dialect %s", e.Guess, e.Dialect)
}

// ValidationError - значение не представимо в объявленном типе колонки
type ValidationError struct {
	Column  string
	Message string
	Value   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for column '%s': %s (value: '%s')",
		e.Column, e.Message, e.Value)
}

// GetDefaultPrecision возвращает точность по умолчанию для DECIMAL
func GetDefaultPrecision() int {
	return 18
}

// GetDefaultScale возвращает масштаб по умолчанию для DECIMAL
func GetDefaultScale() int {
	return 2
}
