package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	exampleDependencyInversion  = "dip"
	exampleLiskovSubstitution   = "lsp"
	exampleOpenClosed           = "ocp"
	exampleSingleResponsibility = "srp"

	driverSQLite = "sqlite"
	driverPGX    = "pgx"
	driverSQL    = "sql"
	driverSQLX   = "sqlx"

	metricsNone       = "none"
	metricsPrometheus = "prometheus"
	metricsOTel       = "otel"
)

var (
	allExamples    = []string{exampleDependencyInversion, exampleLiskovSubstitution, exampleOpenClosed, exampleSingleResponsibility}
	allDrivers     = []string{driverSQLite, driverPGX, driverSQL, driverSQLX}
	allMetrics     = []string{metricsNone, metricsPrometheus, metricsOTel}
	allLogFormats  = []string{"text", "json"}
	errInvalidConf = errors.New("invalid configuration")
)

// Config is read from SOLID_* environment variables, command line flags take precedence.
type Config struct {
	Examples      []string `env:"SOLID_EXAMPLES" envSeparator:"," envDefault:"dip,lsp,ocp,srp"`
	LogLevel      string   `env:"SOLID_LOG_LEVEL" envDefault:"warn"`
	LogFormat     string   `env:"SOLID_LOG_FORMAT" envDefault:"text"`
	JournalPath   string   `env:"SOLID_JOURNAL_PATH" envDefault:"./my-journal.txt"`
	RedisAddr     string   `env:"SOLID_REDIS_ADDR"`
	CatalogDriver string   `env:"SOLID_CATALOG_DRIVER" envDefault:"sqlite"`
	CatalogDSN    string   `env:"SOLID_CATALOG_DSN" envDefault:":memory:"`
	Metrics       string   `env:"SOLID_METRICS" envDefault:"none"`
	OTel          bool     `env:"SOLID_OTEL" envDefault:"false"`
}

func loadConfig(args []string, output io.Writer) (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("solid", flag.ContinueOnError)
	fs.SetOutput(output)

	examples := fs.String("examples", strings.Join(cfg.Examples, ","), "Comma-separated examples to run: dip,lsp,ocp,srp")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	fs.StringVar(&cfg.JournalPath, "journal-path", cfg.JournalPath, "File the journal is saved to")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address, the journal is also saved there if set")
	fs.StringVar(&cfg.CatalogDriver, "catalog-driver", cfg.CatalogDriver, "Product catalog driver: sqlite, pgx, sql, sqlx")
	fs.StringVar(&cfg.CatalogDSN, "catalog-dsn", cfg.CatalogDSN, "Product catalog DSN")
	fs.StringVar(&cfg.Metrics, "metrics", cfg.Metrics, "Metrics backend: none, prometheus, otel")
	fs.BoolVar(&cfg.OTel, "otel", cfg.OTel, "Enable OpenTelemetry tracing and log bridging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Examples = splitList(*examples)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	for _, example := range c.Examples {
		if !slices.Contains(allExamples, example) {
			return fmt.Errorf("%w: unknown example %q", errInvalidConf, example)
		}
	}

	if !slices.Contains(allDrivers, c.CatalogDriver) {
		return fmt.Errorf("%w: unknown catalog driver %q", errInvalidConf, c.CatalogDriver)
	}

	if !slices.Contains(allMetrics, c.Metrics) {
		return fmt.Errorf("%w: unknown metrics backend %q", errInvalidConf, c.Metrics)
	}

	if !slices.Contains(allLogFormats, c.LogFormat) {
		return fmt.Errorf("%w: unknown log format %q", errInvalidConf, c.LogFormat)
	}

	if _, err := c.slogLevel(); err != nil {
		return fmt.Errorf("%w: %w", errInvalidConf, err)
	}

	return nil
}

func (c Config) slogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))

	return level, err
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
