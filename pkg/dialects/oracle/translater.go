package oracle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

// Type mapping for Oracle 12c+
//
// Guess              Oracle Type           Notes
// ─────────────────────────────────────────────────────
// BOOLEAN            NUMBER(1)             0/1, no native type
// BYTE               NUMBER(3)
// SMALLINT           NUMBER(5)
// INT                NUMBER(10)
// BIGINT             NUMBER(19)
// DECIMAL(p,s)       NUMBER(p+1,s)         headroom digit
// FLOAT              BINARY_DOUBLE
// TEXT(n) unicode    NVARCHAR2(n)          max 2000
// TEXT(n)            VARCHAR2(n)           max 4000
// TEXT unbounded     CLOB / NCLOB
// DATE               DATE                  date component only used
// TIME               VARCHAR2(8)           no time-only type, "HH:MM:SS"
// TIMESTAMP          TIMESTAMP
// GUID               VARCHAR2(36)          no native type
// BLOB(n)            RAW(n) max 2000, else BLOB
//
// BOOLEAN, TIME and GUID degrade to numeric/text renderings: parsing
// those renderings back yields the storage guess, not the original.
// NUMBER(1) is the exception - it is parsed back as BOOLEAN because
// the 0/1 convention is unambiguous at that width. NUMBER(p) without
// a scale is parsed as the narrowest integer category that fits, so
// scale-0 decimals round-trip as integers.

// GuessToOracle renders a type guess as an Oracle column type.
func GuessToOracle(g schema.TypeGuess) (string, error) {
	switch g.Category {
	case schema.CategoryBool:
		return "NUMBER(1)", nil
	case schema.CategoryByte:
		return "NUMBER(3)", nil
	case schema.CategoryInt16:
		return "NUMBER(5)", nil
	case schema.CategoryInt32:
		return "NUMBER(10)", nil
	case schema.CategoryInt64:
		return "NUMBER(19)", nil

	case schema.CategoryDecimal:
		precision := g.Precision
		if precision == 0 {
			precision = schema.GetDefaultPrecision()
		}
		return fmt.Sprintf("NUMBER(%d,%d)", schema.PadPrecision(precision), g.Scale), nil

	case schema.CategoryFloat:
		return "BINARY_DOUBLE", nil

	case schema.CategoryString:
		if g.Unicode {
			if g.Length > 0 && g.Length <= 2000 {
				if g.Fixed {
					return fmt.Sprintf("NCHAR(%d)", g.Length), nil
				}
				return fmt.Sprintf("NVARCHAR2(%d)", g.Length), nil
			}
			return "NCLOB", nil
		}
		if g.Length > 0 && g.Length <= 4000 {
			if g.Fixed {
				return fmt.Sprintf("CHAR(%d)", g.Length), nil
			}
			return fmt.Sprintf("VARCHAR2(%d)", g.Length), nil
		}
		return "CLOB", nil

	case schema.CategoryDate:
		return "DATE", nil
	case schema.CategoryTime:
		return "VARCHAR2(8)", nil
	case schema.CategoryDateTime:
		return "TIMESTAMP", nil

	case schema.CategoryGuid:
		return "VARCHAR2(36)", nil

	case schema.CategoryBinary:
		if g.Length > 0 && g.Length <= 2000 {
			return fmt.Sprintf("RAW(%d)", g.Length), nil
		}
		return "BLOB", nil
	}

	return "", &schema.TypeNotMappedError{Dialect: "oracle", Guess: g.String()}
}

// OracleToGuess parses an Oracle column type back into a type guess.
func OracleToGuess(sqlType string) (schema.TypeGuess, error) {
	baseType, length, precision, scale := ParseOracleType(sqlType)

	switch baseType {
	case "NUMBER":
		if scale > 0 {
			return schema.TypeGuess{
				Category:  schema.CategoryDecimal,
				Precision: schema.UnpadPrecision(precision),
				Scale:     scale,
			}, nil
		}
		switch {
		case precision == 0:
			return schema.TypeGuess{Category: schema.CategoryDecimal, Precision: schema.GetDefaultPrecision(), Scale: schema.GetDefaultScale()}, nil
		case precision == 1:
			return schema.TypeGuess{Category: schema.CategoryBool}, nil
		case precision <= 3:
			return schema.TypeGuess{Category: schema.CategoryByte}, nil
		case precision <= 5:
			return schema.TypeGuess{Category: schema.CategoryInt16}, nil
		case precision <= 10:
			return schema.TypeGuess{Category: schema.CategoryInt32}, nil
		case precision <= 19:
			return schema.TypeGuess{Category: schema.CategoryInt64}, nil
		default:
			return schema.TypeGuess{Category: schema.CategoryDecimal, Precision: schema.UnpadPrecision(precision)}, nil
		}

	case "BINARY_DOUBLE", "BINARY_FLOAT", "FLOAT":
		return schema.TypeGuess{Category: schema.CategoryFloat}, nil

	case "NVARCHAR2":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length, Unicode: true}, nil
	case "NCHAR":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length, Unicode: true, Fixed: true}, nil
	case "VARCHAR2", "VARCHAR":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length}, nil
	case "CHAR":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length, Fixed: true}, nil
	case "CLOB", "LONG":
		return schema.TypeGuess{Category: schema.CategoryString}, nil
	case "NCLOB":
		return schema.TypeGuess{Category: schema.CategoryString, Unicode: true}, nil

	case "DATE":
		return schema.TypeGuess{Category: schema.CategoryDate}, nil
	case "TIMESTAMP":
		return schema.TypeGuess{Category: schema.CategoryDateTime}, nil

	case "RAW":
		return schema.TypeGuess{Category: schema.CategoryBinary, Length: length}, nil
	case "BLOB", "LONG RAW":
		return schema.TypeGuess{Category: schema.CategoryBinary}, nil
	}

	// TIMESTAMP(6), TIMESTAMP WITH TIME ZONE и подобные
	if strings.HasPrefix(baseType, "TIMESTAMP") {
		return schema.TypeGuess{Category: schema.CategoryDateTime}, nil
	}

	return schema.TypeGuess{}, fmt.Errorf("unknown Oracle type: %q", sqlType)
}

// ParseOracleType parses an Oracle type and extracts parameters.
// Examples:
//   - "NUMBER(10)" → ("NUMBER", 0, 10, 0)
//   - "NUMBER(18,2)" → ("NUMBER", 0, 18, 2)
//   - "VARCHAR2(100)" → ("VARCHAR2", 100, 0, 0)
func ParseOracleType(sqlType string) (baseType string, length, precision, scale int) {
	sqlType = strings.ToUpper(strings.TrimSpace(sqlType))

	baseType = sqlType
	if idx := strings.Index(sqlType, "("); idx != -1 {
		baseType = strings.TrimSpace(sqlType[:idx])
		paramsStr := strings.TrimSuffix(sqlType[idx+1:], ")")

		if strings.Contains(paramsStr, ",") {
			parts := strings.Split(paramsStr, ",")
			if len(parts) == 2 {
				precision, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
				scale, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
			}
		} else if baseType == "NUMBER" || baseType == "FLOAT" {
			precision, _ = strconv.Atoi(strings.TrimSpace(paramsStr))
		} else {
			length, _ = strconv.Atoi(strings.TrimSpace(paramsStr))
		}
	}

	return
}
