package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Converter отвечает за приведение значений к представлению,
// которое ожидает параметр драйвера БД
type Converter struct{}

// NewConverter создает новый конвертер
func NewConverter() *Converter {
	return &Converter{}
}

// Временные форматы ISO-8601 (лексикографический порядок совпадает с хронологическим)
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Coerce приводит значение к каноническому виду для guess целевой колонки.
//
// Базовые правила (диалекты переопределяют представление поверх):
//   - nil → SQL NULL
//   - пустая или пробельная строка для nullable колонки → SQL NULL;
//     для NOT NULL колонки значение передается как есть (ограничение
//     NOT NULL сработает естественным образом на стороне СУБД)
//   - временные значения → time.Time (диалект форматирует в текст при
//     отсутствии нативного временного типа)
//   - boolean → bool (диалект заменяет на 0/1 где нужно)
//   - GUID → lowercase строка с дефисами (через uuid.Parse)
//   - бинарные значения проходят без изменений
func (c *Converter) Coerce(value any, col Column, guess TypeGuess) (any, error) {
	if value == nil {
		return nil, nil
	}

	// Пустая/пробельная строка → NULL только для nullable колонок
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		if col.Nullable {
			return nil, nil
		}
		if guess.Category == CategoryString {
			// NOT NULL текстовая колонка: пустая строка - валидное значение
			return s, nil
		}
	}

	switch guess.Category {
	case CategoryBool:
		return c.coerceBool(value, col)
	case CategoryByte, CategoryInt16, CategoryInt32, CategoryInt64:
		return c.coerceInteger(value, col, guess.Category)
	case CategoryFloat:
		return c.coerceFloat(value, col)
	case CategoryDecimal:
		return c.coerceDecimal(value, col, guess)
	case CategoryString:
		return c.coerceString(value), nil
	case CategoryDate, CategoryTime, CategoryDateTime:
		return c.coerceTemporal(value, col)
	case CategoryGuid:
		return c.coerceGuid(value, col)
	case CategoryBinary:
		return c.coerceBinary(value), nil
	default:
		return nil, &ValidationError{
			Column:  col.Name,
			Message: fmt.Sprintf("unsupported category: %s", guess.Category),
			Value:   DisplayValue(value),
		}
	}
}

func (c *Converter) coerceBool(value any, col Column) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", v) != "0", nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y":
			return true, nil
		case "0", "false", "f", "no", "n":
			return false, nil
		}
	}
	return nil, &ValidationError{
		Column:  col.Name,
		Message: "invalid boolean value",
		Value:   DisplayValue(value),
	}
}

// Диапазоны целочисленных категорий
var integerRanges = map[Category][2]int64{
	CategoryByte:  {0, 255},
	CategoryInt16: {-32768, 32767},
	CategoryInt32: {-2147483648, 2147483647},
	CategoryInt64: {-9223372036854775808, 9223372036854775807},
}

func (c *Converter) coerceInteger(value any, col Column, cat Category) (any, error) {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint, uint8, uint16, uint32, uint64:
		parsed, err := strconv.ParseInt(fmt.Sprintf("%d", v), 10, 64)
		if err != nil {
			return nil, &ValidationError{Column: col.Name, Message: "integer overflow", Value: DisplayValue(value)}
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, &ValidationError{Column: col.Name, Message: "invalid integer value", Value: v}
		}
		n = parsed
	default:
		return nil, &ValidationError{Column: col.Name, Message: "invalid integer value", Value: DisplayValue(value)}
	}

	r := integerRanges[cat]
	if n < r[0] || n > r[1] {
		return nil, &ValidationError{
			Column:  col.Name,
			Message: fmt.Sprintf("value out of range for %s", cat),
			Value:   DisplayValue(value),
		}
	}
	return n, nil
}

func (c *Converter) coerceFloat(value any, col Column) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int, int8, int16, int32, int64:
		f, _ := strconv.ParseFloat(fmt.Sprintf("%d", v), 64)
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, &ValidationError{Column: col.Name, Message: "invalid float value", Value: v}
		}
		return f, nil
	}
	return nil, &ValidationError{Column: col.Name, Message: "invalid float value", Value: DisplayValue(value)}
}

// coerceDecimal парсит DECIMAL с проверкой бюджета цифр колонки.
// Проверка идет против объявленной точности (с учетом запаса headroom),
// значение вне бюджета - восстановимая, атрибутируемая к строке ошибка,
// не тихое усечение
func (c *Converter) coerceDecimal(value any, col Column, guess TypeGuess) (any, error) {
	raw := ""
	switch v := value.(type) {
	case string:
		raw = strings.TrimSpace(v)
	case float64:
		raw = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		raw = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int, int8, int16, int32, int64:
		raw = fmt.Sprintf("%d", v)
	default:
		return nil, &ValidationError{Column: col.Name, Message: "invalid decimal value", Value: DisplayValue(value)}
	}

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ValidationError{Column: col.Name, Message: "invalid decimal value", Value: raw}
	}

	precision := guess.Precision
	if precision == 0 {
		precision = GetDefaultPrecision()
	}
	scale := guess.Scale

	// Бюджет цифр: объявленная точность = guess + запас
	budget := PadPrecision(precision)

	parts := strings.Split(raw, ".")
	intDigits := len(strings.TrimLeft(strings.TrimPrefix(parts[0], "-"), "0"))
	totalDigits := intDigits
	if len(parts) > 1 {
		if len(parts[1]) > scale {
			return nil, &ValidationError{
				Column:  col.Name,
				Message: fmt.Sprintf("decimal scale exceeds %d", scale),
				Value:   raw,
			}
		}
		totalDigits += len(parts[1])
	}

	if totalDigits > budget {
		return nil, &ValidationError{
			Column:  col.Name,
			Message: fmt.Sprintf("decimal precision exceeds %d", budget),
			Value:   raw,
		}
	}

	return val, nil
}

func (c *Converter) coerceString(value any) any {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Форматы принимаемые при парсинге временных значений из строк
var temporalLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	DateTimeLayout,
	"2006-01-02T15:04:05",
	DateLayout,
	TimeLayout,
}

func (c *Converter) coerceTemporal(value any, col Column) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range temporalLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
	}
	return nil, &ValidationError{
		Column:  col.Name,
		Message: "invalid date/time value",
		Value:   DisplayValue(value),
	}
}

func (c *Converter) coerceGuid(value any, col Column) (any, error) {
	switch v := value.(type) {
	case uuid.UUID:
		return strings.ToLower(v.String()), nil
	case [16]byte:
		return strings.ToLower(uuid.UUID(v).String()), nil
	case []byte:
		if u, err := uuid.FromBytes(v); err == nil {
			return strings.ToLower(u.String()), nil
		}
	case string:
		if u, err := uuid.Parse(strings.TrimSpace(v)); err == nil {
			return strings.ToLower(u.String()), nil
		}
	}
	return nil, &ValidationError{
		Column:  col.Name,
		Message: "invalid GUID value",
		Value:   DisplayValue(value),
	}
}

func (c *Converter) coerceBinary(value any) any {
	switch v := value.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return value
	}
}

// FormatTemporal форматирует time.Time в текст ISO-8601 для диалектов
// без нативного временного типа на уровне драйвера
func FormatTemporal(t time.Time, cat Category) string {
	switch cat {
	case CategoryDate:
		return t.Format(DateLayout)
	case CategoryTime:
		return t.Format(TimeLayout)
	default:
		if t.Nanosecond() != 0 {
			return t.Format("2006-01-02 15:04:05.000")
		}
		return t.Format(DateTimeLayout)
	}
}

// BoolToInt конвертирует boolean в 0/1 для диалектов без нативного BOOLEAN
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// DisplayValueLimit - максимальная длина отображаемого значения в диагностике
const DisplayValueLimit = 100

// DisplayValue возвращает усеченное текстовое представление значения
// для диагностических сообщений. Байтовые массивы отображаются как
// <byte[N]>, не как сырые байты
func DisplayValue(value any) string {
	if value == nil {
		return "NULL"
	}
	if b, ok := value.([]byte); ok {
		return fmt.Sprintf("<byte[%d]>", len(b))
	}
	s := fmt.Sprintf("%v", value)
	if len(s) > DisplayValueLimit {
		// Усечение по границе руны, не по байту
		cut := DisplayValueLimit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		return s[:cut] + "..."
	}
	return s
}
