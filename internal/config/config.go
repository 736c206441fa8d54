// Package config loads the command-line tool's settings from the environment.
//
// Variables use the WORDVARIANT_ prefix and may come from a .env file; values
// already present in the process environment win over the file.
//
//	WORDVARIANT_ALLOWED     allowed candidate characters (empty = unrestricted)
//	WORDVARIANT_TABLE       path to a YAML substitution table (empty = built-in)
//	WORDVARIANT_MAX_LENGTH  longest word accepted, in characters (0 = unbounded)
//	WORDVARIANT_FORMAT      plain | json | table
//	WORDVARIANT_LOG_LEVEL   debug | info | warn | error
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every variable name.
const Prefix = "WORDVARIANT_"

// Output formats.
const (
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatTable = "table"
)

// ErrInvalidConfig indicates a value that parsed but makes no sense.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the resolved settings.
type Config struct {
	Allowed   string     `env:"ALLOWED"`
	TablePath string     `env:"TABLE"`
	MaxLength int        `env:"MAX_LENGTH" envDefault:"12"`
	Format    string     `env:"FORMAT" envDefault:"plain"`
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"warn"`
}

// Load reads the given .env files (default ".env"; missing files are
// skipped) and then parses the environment into a Config.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.MaxLength < 0 {
		return fmt.Errorf("%w: max length %d is negative", ErrInvalidConfig, c.MaxLength)
	}
	switch c.Format {
	case FormatPlain, FormatJSON, FormatTable:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}

	return nil
}

// Logger builds a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
