package cli

import (
	"github.com/GiGurra/boa/pkg/boa"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type GetParams struct {
	Tokens  []string `pos:"true" help:"Tokens to look up, e.g. a or ph."`
	Format  string   `short:"f" optional:"true" help:"Output format: plain, json or table (overrides WORDVARIANT_FORMAT)."`
	Allowed string   `short:"a" optional:"true" help:"Allowed candidate characters (overrides WORDVARIANT_ALLOWED)."`
	Table   string   `short:"t" optional:"true" help:"YAML substitution table (overrides WORDVARIANT_TABLE)."`
}

func GetCmd() *cobra.Command {
	return boa.CmdT[GetParams]{
		Use:         "get",
		Short:       "Show the candidates of tokens",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *GetParams, cmd *cobra.Command, args []string) {
			e, err := loadEnv(cmd.OutOrStdout())
			exitOnErr("get", err)
			exitOnErr("get", runGet(e, params))
		},
	}.ToCobra()
}

func runGet(e env, params *GetParams) error {
	tbl, err := e.buildTable(tableFlags{allowed: params.Allowed, path: params.Table})
	if err != nil {
		return err
	}

	results := lo.Map(params.Tokens, func(tok string, _ int) wordResult {
		return wordResult{Word: tok, Variants: tbl.Get(tok)}
	})

	return render(e.out, firstNonEmpty(params.Format, e.cfg.Format), results, true)
}
