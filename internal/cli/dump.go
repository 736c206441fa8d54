package cli

import (
	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
)

type DumpParams struct {
	Allowed string `short:"a" optional:"true" help:"Allowed candidate characters (overrides WORDVARIANT_ALLOWED)."`
	Table   string `short:"t" optional:"true" help:"YAML substitution table (overrides WORDVARIANT_TABLE)."`
}

func DumpCmd() *cobra.Command {
	return boa.CmdT[DumpParams]{
		Use:         "dump",
		Short:       "Print the effective substitution table as YAML",
		Long:        "Print the substitution table after loading and filtering, in the YAML format accepted by --table.",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *DumpParams, cmd *cobra.Command, args []string) {
			e, err := loadEnv(cmd.OutOrStdout())
			exitOnErr("dump", err)
			exitOnErr("dump", runDump(e, params))
		},
	}.ToCobra()
}

func runDump(e env, params *DumpParams) error {
	tbl, err := e.buildTable(tableFlags{allowed: params.Allowed, path: params.Table})
	if err != nil {
		return err
	}

	return tbl.Encode(e.out)
}
