package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jas88/FAnsiSql-sub000/pkg/bulk"
	"github.com/jas88/FAnsiSql-sub000/pkg/core/schema"
)

// Config represents the main configuration structure
type Config struct {
	Target   TargetConfig   `yaml:"target"`
	Source   SourceConfig   `yaml:"source"`
	Columns  []ColumnConfig `yaml:"columns"`
	Settings SettingsConfig `yaml:"settings,omitempty"`
}

// TargetConfig contains destination database settings
type TargetConfig struct {
	Type  string `yaml:"type"`  // mssql, mysql, postgres, oracle, sqlite
	DSN   string `yaml:"dsn"`   // Driver connection string
	Table string `yaml:"table"` // Destination table name
}

// SourceConfig contains input file settings
type SourceConfig struct {
	Path      string `yaml:"path"`                // CSV file path
	Delimiter string `yaml:"delimiter,omitempty"` // Field delimiter (default: comma)
	Header    bool   `yaml:"header"`              // First row carries column names
}

// ColumnConfig describes one destination column
type ColumnConfig struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"` // SQL type as declared in the destination
	Nullable bool   `yaml:"nullable"`
}

// SettingsConfig contains upload tuning
type SettingsConfig struct {
	BatchSize      int `yaml:"batch_size,omitempty"`
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// LoadConfig reads and validates a YAML config file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Target.Type == "" {
		return nil, fmt.Errorf("target.type is required")
	}
	if cfg.Target.DSN == "" {
		return nil, fmt.Errorf("target.dsn is required")
	}
	if cfg.Target.Table == "" {
		return nil, fmt.Errorf("target.table is required")
	}
	if cfg.Source.Path == "" {
		return nil, fmt.Errorf("source.path is required")
	}

	return &cfg, nil
}

// SchemaSource builds a static schema from the configured columns
func (c *Config) SchemaSource() bulk.SchemaSource {
	cols := make(bulk.StaticSchema, len(c.Columns))
	for i, cc := range c.Columns {
		cols[i] = schema.Column{
			Name:     cc.Name,
			SQLType:  cc.Type,
			Nullable: cc.Nullable,
		}
	}
	return cols
}

// BulkSettings converts config tuning into engine settings
func (c *Config) BulkSettings() bulk.Settings {
	return bulk.Settings{
		BatchSize: c.Settings.BatchSize,
		Timeout:   time.Duration(c.Settings.TimeoutSeconds) * time.Second,
	}
}

const configTemplate = `# fansiload configuration
target:
  type: sqlite            # mssql, mysql, postgres, oracle, sqlite
  dsn: "file:data.db"
  table: people

source:
  path: people.csv
  delimiter: ","
  header: true

columns:
  - name: id
    type: INT
    nullable: false
  - name: name
    type: VARCHAR(50)
    nullable: false
  - name: score
    type: DECIMAL(6,2)
    nullable: true

settings:
  batch_size: 5000
  timeout_seconds: 30
`

// CreateConfigTemplate writes an annotated config template
func CreateConfigTemplate(path string) error {
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}
