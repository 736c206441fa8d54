// Package cli wires the wordvariant library into cobra commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/GiGurra/boa/pkg/boa"

	"github.com/katalvlaran/wordvariant/internal/config"
	"github.com/katalvlaran/wordvariant/table"
)

// tableFlags are the --allowed and --table values every command accepts.
type tableFlags struct {
	allowed string
	path    string
}

func defaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// env bundles what a command needs besides its own flags.
type env struct {
	cfg config.Config
	out io.Writer
	log *slog.Logger
}

func loadEnv(out io.Writer) (env, error) {
	cfg, err := config.Load()
	if err != nil {
		return env{}, err
	}

	return env{cfg: cfg, out: out, log: cfg.Logger(os.Stderr)}, nil
}

// buildTable resolves flags over configuration and returns the table.
func (e env) buildTable(f tableFlags) (*table.Table, error) {
	opts := []table.Option{table.WithLogger(e.log)}

	path := firstNonEmpty(f.path, e.cfg.TablePath)
	if path != "" {
		entries, err := table.LoadFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, table.WithEntries(entries))
		e.log.Debug("table loaded", slog.String("path", path), slog.Int("tokens", len(entries)))
	}
	if allowed := firstNonEmpty(f.allowed, e.cfg.Allowed); allowed != "" {
		opts = append(opts, table.WithAllowedCharacters(allowed))
	}

	return table.New(opts...), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// exitOnErr reports err for command name and exits non-zero.
func exitOnErr(name string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}
