package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

// Type mapping for PostgreSQL 12+
//
// Guess              PostgreSQL Type       Notes
// ──────────────────────────────────────────────────────
// BOOLEAN            BOOLEAN
// BYTE               SMALLINT              no unsigned 8-bit type
// SMALLINT           SMALLINT
// INT                INTEGER
// BIGINT             BIGINT
// DECIMAL(p,s)       NUMERIC(p+1,s)        headroom digit
// FLOAT              DOUBLE PRECISION
// TEXT(n)            VARCHAR(n)            always Unicode
// TEXT unbounded     TEXT
// DATE/TIME          DATE / TIME
// TIMESTAMP          TIMESTAMP             without time zone
// GUID               UUID
// BLOB               BYTEA                 no length parameter
//
// BYTE degrades to SMALLINT: parsing back yields a SMALLINT guess.
// Documented one-way mapping.

// GuessToPostgres renders a type guess as a PostgreSQL column type.
func GuessToPostgres(g schema.TypeGuess) (string, error) {
	switch g.Category {
	case schema.CategoryBool:
		return "BOOLEAN", nil
	case schema.CategoryByte, schema.CategoryInt16:
		return "SMALLINT", nil
	case schema.CategoryInt32:
		return "INTEGER", nil
	case schema.CategoryInt64:
		return "BIGINT", nil

	case schema.CategoryDecimal:
		precision := g.Precision
		if precision == 0 {
			precision = schema.GetDefaultPrecision()
		}
		return fmt.Sprintf("NUMERIC(%d,%d)", schema.PadPrecision(precision), g.Scale), nil

	case schema.CategoryFloat:
		return "DOUBLE PRECISION", nil

	case schema.CategoryString:
		if g.Length <= 0 {
			return "TEXT", nil
		}
		if g.Fixed {
			return fmt.Sprintf("CHAR(%d)", g.Length), nil
		}
		return fmt.Sprintf("VARCHAR(%d)", g.Length), nil

	case schema.CategoryDate:
		return "DATE", nil
	case schema.CategoryTime:
		return "TIME", nil
	case schema.CategoryDateTime:
		return "TIMESTAMP", nil

	case schema.CategoryGuid:
		return "UUID", nil

	case schema.CategoryBinary:
		return "BYTEA", nil
	}

	return "", &schema.TypeNotMappedError{Dialect: "postgres", Guess: g.String()}
}

// PostgresToGuess parses a PostgreSQL column type back into a type guess.
func PostgresToGuess(sqlType string) (schema.TypeGuess, error) {
	baseType, length, precision, scale := ParsePostgresType(sqlType)

	switch baseType {
	case "BOOLEAN", "BOOL":
		return schema.TypeGuess{Category: schema.CategoryBool}, nil
	case "SMALLINT", "INT2":
		return schema.TypeGuess{Category: schema.CategoryInt16}, nil
	case "INTEGER", "INT", "INT4", "SERIAL":
		return schema.TypeGuess{Category: schema.CategoryInt32}, nil
	case "BIGINT", "INT8", "BIGSERIAL":
		return schema.TypeGuess{Category: schema.CategoryInt64}, nil

	case "NUMERIC", "DECIMAL":
		if precision == 0 {
			precision = schema.PadPrecision(schema.GetDefaultPrecision())
		}
		return schema.TypeGuess{
			Category:  schema.CategoryDecimal,
			Precision: schema.UnpadPrecision(precision),
			Scale:     scale,
		}, nil

	case "DOUBLE PRECISION", "FLOAT8", "REAL", "FLOAT4":
		return schema.TypeGuess{Category: schema.CategoryFloat}, nil

	case "VARCHAR", "CHARACTER VARYING":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length, Unicode: true}, nil
	case "CHAR", "CHARACTER", "BPCHAR":
		return schema.TypeGuess{Category: schema.CategoryString, Length: length, Unicode: true, Fixed: true}, nil
	case "TEXT":
		return schema.TypeGuess{Category: schema.CategoryString, Unicode: true}, nil

	case "DATE":
		return schema.TypeGuess{Category: schema.CategoryDate}, nil
	case "TIME", "TIME WITHOUT TIME ZONE":
		return schema.TypeGuess{Category: schema.CategoryTime}, nil
	case "TIMESTAMP", "TIMESTAMP WITHOUT TIME ZONE", "TIMESTAMPTZ", "TIMESTAMP WITH TIME ZONE":
		return schema.TypeGuess{Category: schema.CategoryDateTime}, nil

	case "UUID":
		return schema.TypeGuess{Category: schema.CategoryGuid}, nil

	case "BYTEA":
		return schema.TypeGuess{Category: schema.CategoryBinary}, nil
	}

	return schema.TypeGuess{}, fmt.Errorf("unknown PostgreSQL type: %q", sqlType)
}

// ParsePostgresType parses a PostgreSQL type and extracts parameters.
// Examples:
//   - "INTEGER" → ("INTEGER", 0, 0, 0)
//   - "VARCHAR(100)" → ("VARCHAR", 100, 0, 0)
//   - "NUMERIC(18,2)" → ("NUMERIC", 0, 18, 2)
func ParsePostgresType(sqlType string) (baseType string, length, precision, scale int) {
	sqlType = strings.ToUpper(strings.TrimSpace(sqlType))

	baseType = sqlType
	if idx := strings.Index(sqlType, "("); idx != -1 {
		baseType = strings.TrimSpace(sqlType[:idx])
		paramsStr := strings.TrimSuffix(sqlType[idx+1:], ")")

		// CHAR(5) и VARCHAR(5) имеют длину, NUMERIC(p,s) - точность
		if strings.Contains(paramsStr, ",") {
			parts := strings.Split(paramsStr, ",")
			if len(parts) == 2 {
				precision, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
				scale, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
			}
		} else if baseType == "NUMERIC" || baseType == "DECIMAL" {
			precision, _ = strconv.Atoi(strings.TrimSpace(paramsStr))
		} else {
			length, _ = strconv.Atoi(strings.TrimSpace(paramsStr))
		}
	}

	return
}
