package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/wordvariant/internal/config"
)

// wordResult pairs an input (word or token) with its outputs.
type wordResult struct {
	Word     string   `json:"word"`
	Variants []string `json:"variants"`
}

// render writes results in format. headed adds a "word:" line before each
// result in plain output, for inputs that do not appear among their outputs.
func render(w io.Writer, format string, results []wordResult, headed bool) error {
	switch format {
	case config.FormatPlain:
		return renderPlain(w, results, headed)
	case config.FormatJSON:
		return renderJSON(w, results)
	case config.FormatTable:
		renderTable(w, results)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// renderPlain prints one variant per line, input order preserved. Headed
// output indents the variants under their input.
func renderPlain(w io.Writer, results []wordResult, headed bool) error {
	var sb strings.Builder
	for _, r := range results {
		if headed {
			sb.WriteString(r.Word)
			sb.WriteString(":\n")
		}
		for _, v := range r.Variants {
			if headed {
				sb.WriteString("  ")
			}
			sb.WriteString(v)
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

func renderJSON(w io.Writer, results []wordResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

func renderTable(w io.Writer, results []wordResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Word", "#", "Variant"})
	for _, r := range results {
		for i, v := range r.Variants {
			t.AppendRow(table.Row{r.Word, i + 1, v})
		}
	}
	t.Render()
}
