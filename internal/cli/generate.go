package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordvariant/variant"
)

type GenerateParams struct {
	Words     []string `pos:"true" help:"Words to expand."`
	MaxLength int      `short:"m" optional:"true" help:"Longest accepted word; 0 keeps WORDVARIANT_MAX_LENGTH, negative disables the bound."`
	Format    string   `short:"f" optional:"true" help:"Output format: plain, json or table (overrides WORDVARIANT_FORMAT)."`
	Allowed   string   `short:"a" optional:"true" help:"Allowed candidate characters (overrides WORDVARIANT_ALLOWED)."`
	Table     string   `short:"t" optional:"true" help:"YAML substitution table (overrides WORDVARIANT_TABLE)."`
}

func GenerateCmd() *cobra.Command {
	return boa.CmdT[GenerateParams]{
		Use:         "generate",
		Short:       "Generate leetspeak variants of words",
		Long:        "Generate leetspeak-style spellings of each word by substituting look-alike characters.",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *GenerateParams, cmd *cobra.Command, args []string) {
			e, err := loadEnv(cmd.OutOrStdout())
			exitOnErr("generate", err)
			exitOnErr("generate", runGenerate(e, params))
		},
	}.ToCobra()
}

func runGenerate(e env, params *GenerateParams) error {
	tbl, err := e.buildTable(tableFlags{allowed: params.Allowed, path: params.Table})
	if err != nil {
		return err
	}

	maxLength := e.cfg.MaxLength
	switch {
	case params.MaxLength > 0:
		maxLength = params.MaxLength
	case params.MaxLength < 0:
		maxLength = 0
	}
	gen := variant.New(tbl, variant.WithMaxLength(maxLength))

	results := make([]wordResult, 0, len(params.Words))
	for _, w := range params.Words {
		if err := gen.Check(w); err != nil {
			return fmt.Errorf("%q: %w", w, err)
		}
		start := time.Now()
		variants := gen.Generate(w)
		e.log.Info("generated",
			slog.String("word", w),
			slog.Int("variants", len(variants)),
			slog.Duration("elapsed", time.Since(start)),
		)
		results = append(results, wordResult{Word: w, Variants: variants})
	}

	return render(e.out, firstNonEmpty(params.Format, e.cfg.Format), results, false)
}
