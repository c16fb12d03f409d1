package mysql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

// Type mapping for MySQL 5.7+ / MariaDB
//
// Guess              MySQL Type                        Notes
// ────────────────────────────────────────────────────────────────
// BOOLEAN            TINYINT(1)                        0/1 convention
// BYTE               TINYINT UNSIGNED                  0..255
// SMALLINT           SMALLINT
// INT                INT
// BIGINT             BIGINT
// DECIMAL(p,s)       DECIMAL(p+1,s)                    headroom digit
// FLOAT              DOUBLE
// TEXT(n) unicode    VARCHAR(n) CHARACTER SET utf8mb4
// TEXT(n)            VARCHAR(n) CHARACTER SET latin1
// TEXT unbounded     LONGTEXT
// DATE/TIME          DATE / TIME
// TIMESTAMP          DATETIME                          no TZ conversion
// GUID               CHAR(36)                          no native type
// BLOB(n)            VARBINARY(n), unbounded LONGBLOB
//
// GUID degrades to CHAR(36): parsing it back yields a fixed-width
// string guess, not a GUID guess. Documented one-way mapping.

// GuessToMySQL renders a type guess as a MySQL column type.
func GuessToMySQL(g schema.TypeGuess) (string, error) {
	switch g.Category {
	case schema.CategoryBool:
		return "TINYINT(1)", nil
	case schema.CategoryByte:
		return "TINYINT UNSIGNED", nil
	case schema.CategoryInt16:
		return "SMALLINT", nil
	case schema.CategoryInt32:
		return "INT", nil
	case schema.CategoryInt64:
		return "BIGINT", nil

	case schema.CategoryDecimal:
		precision := g.Precision
		if precision == 0 {
			precision = schema.GetDefaultPrecision()
		}
		return fmt.Sprintf("DECIMAL(%d,%d)", schema.PadPrecision(precision), g.Scale), nil

	case schema.CategoryFloat:
		return "DOUBLE", nil

	case schema.CategoryString:
		charset := "latin1"
		if g.Unicode {
			charset = "utf8mb4"
		}
		if g.Length <= 0 {
			return "LONGTEXT CHARACTER SET " + charset, nil
		}
		kind := "VARCHAR"
		if g.Fixed {
			kind = "CHAR"
		}
		return fmt.Sprintf("%s(%d) CHARACTER SET %s", kind, g.Length, charset), nil

	case schema.CategoryDate:
		return "DATE", nil
	case schema.CategoryTime:
		return "TIME", nil
	case schema.CategoryDateTime:
		return "DATETIME", nil

	case schema.CategoryGuid:
		return "CHAR(36)", nil

	case schema.CategoryBinary:
		if g.Length > 0 && g.Length <= 65535 {
			return fmt.Sprintf("VARBINARY(%d)", g.Length), nil
		}
		return "LONGBLOB", nil
	}

	return "", &schema.TypeNotMappedError{Dialect: "mysql", Guess: g.String()}
}

// MySQLToGuess parses a MySQL column type back into a type guess.
func MySQLToGuess(sqlType string) (schema.TypeGuess, error) {
	baseType, length, precision, scale, unsigned, charset := ParseMySQLType(sqlType)
	unicode := charset != "latin1"

	switch baseType {
	case "TINYINT":
		// TINYINT(1) is the MySQL boolean convention
		if length == 1 && !unsigned {
			return schema.TypeGuess{Category: schema.CategoryBool}, nil
		}
		if unsigned {
			return schema.TypeGuess{Category: schema.CategoryByte}, nil
		}
		return schema.TypeGuess{Category: schema.CategoryInt16}, nil
	case "BOOL", "BOOLEAN":
		return schema.TypeGuess{Category: schema.CategoryBool}, nil
	case "SMALLINT":
		return schema.TypeGuess{Category: schema.CategoryInt16}, nil
	case "MEDIUMINT", "INT", "INTEGER":
		return schema.TypeGuess{Category: schema.CategoryInt32}, nil
	case "BIGINT":
		return schema.TypeGuess{Category: schema.CategoryInt64}, nil

	case "DECIMAL", "NUMERIC":
		if precision == 0 {
			precision = schema.PadPrecision(schema.GetDefaultPrecision())
		}
		return schema.TypeGuess{
			Category:  schema.CategoryDecimal,
			Precision: schema.UnpadPrecision(precision),
			Scale:     scale,
		}, nil

	case "FLOAT", "DOUBLE", "REAL":
		return schema.TypeGuess{Category: schema.CategoryFloat}, nil

	case "VARCHAR":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length, Unicode: unicode}, nil
	case "CHAR":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length, Unicode: unicode, Fixed: true}, nil
	case "TINYTEXT", "TEXT", "MEDIUMTEXT", "LONGTEXT":
		return schema.TypeGuess{Category: schema.CategoryString, Unicode: unicode}, nil

	case "DATE":
		return schema.TypeGuess{Category: schema.CategoryDate}, nil
	case "TIME":
		return schema.TypeGuess{Category: schema.CategoryTime}, nil
	case "DATETIME", "TIMESTAMP":
		return schema.TypeGuess{Category: schema.CategoryDateTime}, nil

	case "VARBINARY", "BINARY":
		return schema.TypeGuess{Category: schema.CategoryBinary, Length: length}, nil
	case "TINYBLOB", "BLOB", "MEDIUMBLOB", "LONGBLOB":
		return schema.TypeGuess{Category: schema.CategoryBinary}, nil
	}

	return schema.TypeGuess{}, fmt.Errorf("unknown MySQL type: %q", sqlType)
}

// ParseMySQLType parses a MySQL type and extracts parameters.
// Examples:
//   - "INT" → ("INT", 0, 0, 0, false, "")
//   - "TINYINT UNSIGNED" → ("TINYINT", 0, 0, 0, true, "")
//   - "VARCHAR(100) CHARACTER SET utf8mb4" → ("VARCHAR", 100, 0, 0, false, "utf8mb4")
//   - "DECIMAL(18,2)" → ("DECIMAL", 0, 18, 2, false, "")
func ParseMySQLType(sqlType string) (baseType string, length, precision, scale int, unsigned bool, charset string) {
	s := strings.TrimSpace(sqlType)
	upper := strings.ToUpper(s)

	if idx := strings.Index(upper, "CHARACTER SET"); idx != -1 {
		charset = strings.ToLower(strings.Fields(s[idx+len("CHARACTER SET"):])[0])
		upper = strings.TrimSpace(upper[:idx])
	}

	unsigned = strings.Contains(upper, "UNSIGNED")
	upper = strings.TrimSpace(strings.ReplaceAll(upper, "UNSIGNED", ""))

	baseType = upper
	if idx := strings.Index(upper, "("); idx != -1 {
		baseType = strings.TrimSpace(upper[:idx])
		paramsStr := strings.TrimSuffix(upper[idx+1:], ")")

		if strings.Contains(paramsStr, ",") {
			parts := strings.Split(paramsStr, ",")
			if len(parts) == 2 {
				precision, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
				scale, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
			}
		} else {
			length, _ = strconv.Atoi(strings.TrimSpace(paramsStr))
		}
	}

	return
}
