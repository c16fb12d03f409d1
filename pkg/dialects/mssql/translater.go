package mssql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

// Type mapping for MS SQL Server 2012+
//
// Guess              SQL Server Type    Notes
// ─────────────────────────────────────────────────
// BOOLEAN            BIT
// BYTE               TINYINT            0..255
// SMALLINT           SMALLINT
// INT                INT
// BIGINT             BIGINT
// DECIMAL(p,s)       DECIMAL(p+1,s)     headroom digit on render
// FLOAT              FLOAT
// TEXT(n) unicode    NVARCHAR(n)        max 4000, else MAX
// TEXT(n)            VARCHAR(n)         max 8000, else MAX
// DATE               DATE
// TIME               TIME
// TIMESTAMP          DATETIME2          high precision
// GUID               UNIQUEIDENTIFIER
// BLOB(n)            VARBINARY(n)       max 8000, else MAX

// GuessToMSSQL renders a type guess as a SQL Server column type.
func GuessToMSSQL(g schema.TypeGuess) (string, error) {
	switch g.Category {
	case schema.CategoryBool:
		return "BIT", nil
	case schema.CategoryByte:
		return "TINYINT", nil
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
		return "FLOAT", nil

	case schema.CategoryString:
		if g.Unicode {
			if g.Fixed && g.Length > 0 && g.Length <= 4000 {
				return fmt.Sprintf("NCHAR(%d)", g.Length), nil
			}
			if g.Length > 0 && g.Length <= 4000 {
				return fmt.Sprintf("NVARCHAR(%d)", g.Length), nil
			}
			return "NVARCHAR(MAX)", nil
		}
		if g.Fixed && g.Length > 0 && g.Length <= 8000 {
			return fmt.Sprintf("CHAR(%d)", g.Length), nil
		}
		if g.Length > 0 && g.Length <= 8000 {
			return fmt.Sprintf("VARCHAR(%d)", g.Length), nil
		}
		return "VARCHAR(MAX)", nil

	case schema.CategoryDate:
		return "DATE", nil
	case schema.CategoryTime:
		return "TIME", nil
	case schema.CategoryDateTime:
		return "DATETIME2", nil

	case schema.CategoryGuid:
		return "UNIQUEIDENTIFIER", nil

	case schema.CategoryBinary:
		if g.Length > 0 && g.Length <= 8000 {
			return fmt.Sprintf("VARBINARY(%d)", g.Length), nil
		}
		return "VARBINARY(MAX)", nil
	}

	return "", &schema.TypeNotMappedError{Dialect: "mssql", Guess: g.String()}
}

// MSSQLToGuess parses a SQL Server column type back into a type guess.
// Inverse of GuessToMSSQL over its entire output range.
func MSSQLToGuess(sqlType string) (schema.TypeGuess, error) {
	baseType, length, precision, scale := ParseMSSQLType(sqlType)

	switch baseType {
	case "BIT":
		return schema.TypeGuess{Category: schema.CategoryBool}, nil
	case "TINYINT":
		return schema.TypeGuess{Category: schema.CategoryByte}, nil
	case "SMALLINT":
		return schema.TypeGuess{Category: schema.CategoryInt16}, nil
	case "INT":
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

	case "MONEY":
		return schema.TypeGuess{Category: schema.CategoryDecimal, Precision: 18, Scale: 4}, nil
	case "SMALLMONEY":
		return schema.TypeGuess{Category: schema.CategoryDecimal, Precision: 9, Scale: 4}, nil

	case "FLOAT", "REAL":
		return schema.TypeGuess{Category: schema.CategoryFloat}, nil

	case "NVARCHAR", "NTEXT":
		return schema.TypeGuess{Category: schema.CategoryString, Length: maxToUnbounded(length), Unicode: true}, nil
	case "NCHAR":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length, Unicode: true, Fixed: true}, nil
	case "VARCHAR", "TEXT":
		return schema.TypeGuess{Category: schema.CategoryString, Length: maxToUnbounded(length)}, nil
	case "CHAR":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length, Fixed: true}, nil

	case "DATE":
		return schema.TypeGuess{Category: schema.CategoryDate}, nil
	case "TIME":
		return schema.TypeGuess{Category: schema.CategoryTime}, nil
	case "DATETIME2", "DATETIME", "SMALLDATETIME", "DATETIMEOFFSET":
		return schema.TypeGuess{Category: schema.CategoryDateTime}, nil

	case "UNIQUEIDENTIFIER":
		return schema.TypeGuess{Category: schema.CategoryGuid}, nil

	case "VARBINARY", "BINARY", "IMAGE":
		return schema.TypeGuess{Category: schema.CategoryBinary, Length: maxToUnbounded(length)}, nil
	}

	return schema.TypeGuess{}, fmt.Errorf("unknown SQL Server type: %q", sqlType)
}

// ParseMSSQLType parses a SQL Server type and extracts parameters.
// Examples:
//   - "INT" → ("INT", 0, 0, 0)
//   - "NVARCHAR(100)" → ("NVARCHAR", 100, 0, 0)
//   - "DECIMAL(18,2)" → ("DECIMAL", 0, 18, 2)
//   - "VARBINARY(MAX)" → ("VARBINARY", -1, 0, 0) // MAX = -1
func ParseMSSQLType(sqlType string) (baseType string, length, precision, scale int) {
	sqlType = strings.ToUpper(strings.TrimSpace(sqlType))

	baseType = sqlType
	if idx := strings.Index(sqlType, "("); idx != -1 {
		baseType = strings.TrimSpace(sqlType[:idx])
		paramsStr := strings.TrimSuffix(sqlType[idx+1:], ")")

		if strings.TrimSpace(paramsStr) == "MAX" {
			length = -1
			return
		}

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

func maxToUnbounded(length int) int {
	if length < 0 {
		return 0
	}
	return length
}
