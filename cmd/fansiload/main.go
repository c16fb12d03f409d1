package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jas88/FAnsiSql-sub000/pkg/bulk"
	"github.com/jas88/FAnsiSql-sub000/pkg/dialects"

	// Регистрация всех диалектов
	_ "github.com/jas88/FAnsiSql-sub000/pkg/dialects/mssql"
	_ "github.com/jas88/FAnsiSql-sub000/pkg/dialects/mysql"
	_ "github.com/jas88/FAnsiSql-sub000/pkg/dialects/oracle"
	_ "github.com/jas88/FAnsiSql-sub000/pkg/dialects/postgres"
	_ "github.com/jas88/FAnsiSql-sub000/pkg/dialects/sqlite"
)

const version = "1.0.0"

func main() {
	ctx := context.Background()

	configPath := flag.String("config", "fansiload.yaml", "Path to YAML config")
	createConfig := flag.Bool("create-config", false, "Write a config template and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("fansiload %s (supported engines: %v)\n", version, dialects.GetRegisteredTypes())
		return
	}

	if *createConfig {
		if err := CreateConfigTemplate(*configPath); err != nil {
			fatal("Failed to create config: %v", err)
		}
		fmt.Printf("✅ Config template written to %s\n", *configPath)
		return
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fatal("Failed to load config: %v", err)
	}

	dialect, err := dialects.New(cfg.Target.Type)
	if err != nil {
		fatal("Unsupported target: %v", err)
	}

	db, err := sql.Open(dialect.DriverName(), cfg.Target.DSN)
	if err != nil {
		fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	rs, err := readCSV(cfg.Source)
	if err != nil {
		fatal("Failed to read source: %v", err)
	}
	fmt.Printf("📄 Read %d rows from %s (fingerprint %s)\n",
		rs.Len(), cfg.Source.Path, bulk.FingerprintHex(rs))

	engine := bulk.NewEngine(db, dialect, cfg.Target.Table, cfg.SchemaSource(), cfg.BulkSettings())

	n, err := engine.Upload(ctx, rs)
	if err != nil {
		fatal("Upload failed: %v", err)
	}
	fmt.Printf("✅ Loaded %d rows into %s.%s\n", n, cfg.Target.Type, cfg.Target.Table)
}

// readCSV читает файл источника в RowSet. Имена колонок берутся из
// заголовка или из конфигурации
func readCSV(src SourceConfig) (*bulk.RowSet, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", src.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if src.Delimiter != "" {
		r.Comma = rune(src.Delimiter[0])
	}

	var rs *bulk.RowSet
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line+1, err)
		}
		line++

		if rs == nil {
			if src.Header {
				rs = bulk.NewRowSet(record)
				continue
			}
			// Без заголовка - синтетические имена col1..colN
			names := make([]string, len(record))
			for i := range record {
				names[i] = fmt.Sprintf("col%d", i+1)
			}
			rs = bulk.NewRowSet(names)
		}

		values := make([]any, len(record))
		for i, v := range record {
			values[i] = v
		}
		if err := rs.Append(values...); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	if rs == nil {
		rs = bulk.NewRowSet(nil)
	}
	return rs, nil
}

// fatal prints error and exits
func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "❌ "+format+"\n", args...)
	os.Exit(1)
}
