package bulk

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Fingerprint вычисляет 64-битный xxh3 отпечаток содержимого RowSet
// для журнала загрузок. Одинаковые данные дают одинаковый отпечаток,
// перестановка строк или колонок его меняет
func Fingerprint(rs *RowSet) uint64 {
	h := xxh3.New()

	for _, col := range rs.Columns {
		h.WriteString(col.Name)
		h.WriteString("\x1f")
	}
	h.WriteString("\x1e")

	for _, row := range rs.Rows {
		for _, v := range row {
			h.WriteString(canonicalValue(v))
			h.WriteString("\x1f")
		}
		h.WriteString("\x1e")
	}

	return h.Sum64()
}

// FingerprintHex возвращает отпечаток в шестнадцатеричном виде
func FingerprintHex(rs *RowSet) string {
	return fmt.Sprintf("%016x", Fingerprint(rs))
}

func canonicalValue(v any) string {
	if v == nil {
		return "\x00"
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}
