package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordvariant/internal/cli"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "wordvariant",
		Short:   "Leetspeak variant generator",
		Long:    "Generate obfuscated look-alike spellings of words for fuzzy-match dictionaries.",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			cli.GenerateCmd(),
			cli.GetCmd(),
			cli.DumpCmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}
	if bi.Main.Version == "" {
		return "unknown-(no version)"
	}

	return bi.Main.Version
}
