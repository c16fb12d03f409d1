package sqlite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

// Type mapping for SQLite 3
//
// SQLite stores values with affinity, not strict types, so declared
// column types are free-form. The renderer emits conventional names
// and the parser reads them back, which gives a full round trip for
// every category - the only engine here with that property.
//
// Guess              Declared Type     Affinity
// ──────────────────────────────────────────────
// BOOLEAN            BOOLEAN           NUMERIC (0/1)
// BYTE               TINYINT           INTEGER
// SMALLINT           SMALLINT          INTEGER
// INT                INT               INTEGER
// BIGINT             BIGINT            INTEGER
// DECIMAL(p,s)       DECIMAL(p+1,s)    NUMERIC
// FLOAT              DOUBLE            REAL
// TEXT(n) unicode    NVARCHAR(n)       TEXT
// TEXT(n)            VARCHAR(n)        TEXT
// DATE/TIME          DATE / TIME       TEXT (ISO-8601)
// TIMESTAMP          DATETIME          TEXT (ISO-8601)
// GUID               GUID              TEXT
// BLOB(n)            BLOB              BLOB

// GuessToSQLite renders a type guess as a SQLite declared type.
func GuessToSQLite(g schema.TypeGuess) (string, error) {
	switch g.Category {
	case schema.CategoryBool:
		return "BOOLEAN", nil
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
		return "DOUBLE", nil

	case schema.CategoryString:
		kind := "VARCHAR"
		if g.Unicode {
			kind = "NVARCHAR"
		}
		if g.Fixed {
			kind = "CHAR"
			if g.Unicode {
				kind = "NCHAR"
			}
		}
		if g.Length > 0 {
			return fmt.Sprintf("%s(%d)", kind, g.Length), nil
		}
		if g.Unicode {
			return "NTEXT", nil
		}
		return "TEXT", nil

	case schema.CategoryDate:
		return "DATE", nil
	case schema.CategoryTime:
		return "TIME", nil
	case schema.CategoryDateTime:
		return "DATETIME", nil

	case schema.CategoryGuid:
		return "GUID", nil

	case schema.CategoryBinary:
		if g.Length > 0 {
			return fmt.Sprintf("BLOB(%d)", g.Length), nil
		}
		return "BLOB", nil
	}

	return "", &schema.TypeNotMappedError{Dialect: "sqlite", Guess: g.String()}
}

// SQLiteToGuess parses a SQLite declared type back into a type guess.
func SQLiteToGuess(sqlType string) (schema.TypeGuess, error) {
	baseType, length, precision, scale := ParseSQLiteType(sqlType)

	switch baseType {
	case "BOOLEAN", "BOOL", "BIT":
		return schema.TypeGuess{Category: schema.CategoryBool}, nil
	case "TINYINT":
		return schema.TypeGuess{Category: schema.CategoryByte}, nil
	case "SMALLINT":
		return schema.TypeGuess{Category: schema.CategoryInt16}, nil
	case "INT", "MEDIUMINT":
		return schema.TypeGuess{Category: schema.CategoryInt32}, nil
	case "BIGINT", "INTEGER":
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

	case "DOUBLE", "FLOAT", "REAL":
		return schema.TypeGuess{Category: schema.CategoryFloat}, nil

	case "NVARCHAR":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length, Unicode: true}, nil
	case "NCHAR":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length, Unicode: true, Fixed: true}, nil
	case "VARCHAR":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length}, nil
	case "CHAR", "CHARACTER":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length, Fixed: true}, nil
	case "TEXT", "CLOB":
		return schema.TypeGuess{Category: schema.CategoryString}, nil
	case "NTEXT":
		return schema.TypeGuess{Category: schema.CategoryString, Unicode: true}, nil

	case "DATE":
		return schema.TypeGuess{Category: schema.CategoryDate}, nil
	case "TIME":
		return schema.TypeGuess{Category: schema.CategoryTime}, nil
	case "DATETIME", "TIMESTAMP":
		return schema.TypeGuess{Category: schema.CategoryDateTime}, nil

	case "GUID", "UUID", "UNIQUEIDENTIFIER":
		return schema.TypeGuess{Category: schema.CategoryGuid}, nil

	case "BLOB", "VARBINARY", "BINARY":
		return schema.TypeGuess{Category: schema.CategoryBinary, Length: length}, nil
	}

	return schema.TypeGuess{}, fmt.Errorf("unknown SQLite type: %q", sqlType)
}

// ParseSQLiteType parses a declared type and extracts parameters.
func ParseSQLiteType(sqlType string) (baseType string, length, precision, scale int) {
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
		} else {
			length, _ = strconv.Atoi(strings.TrimSpace(paramsStr))
		}
	}

	return
}
