package main

import (
	"fmt"
	"io"

	"github.com/phyten/minigrep/internal/colorutil"
	"github.com/phyten/minigrep/internal/config"
	"github.com/phyten/minigrep/internal/engine"
	"github.com/phyten/minigrep/internal/output"
	"github.com/phyten/minigrep/internal/termcolor"
)

// wantsRanges reports whether match offsets are worth computing: they feed
// coloured plain output and are part of the JSON records.
func wantsRanges(format string, color bool) bool {
	switch format {
	case "json", "ndjson":
		return true
	case "plain":
		return color
	default:
		return false
	}
}

func matchStyle(ui config.UISettings, colors termcolor.Settings) termcolor.Style {
	if ui.MatchColor != "" {
		if rgb, err := colorutil.ParseHex(ui.MatchColor); err == nil {
			return termcolor.MatchStyleWith(rgb, colors.Scheme, colors.Profile)
		}
	}
	return termcolor.MatchStyle(colors.Scheme, colors.Profile)
}

func render(w io.Writer, res *engine.Result, ui config.UISettings, showFilename bool, colors termcolor.Settings) error {
	switch ui.Output {
	case "plain":
		return output.WritePlain(w, res.Items, output.PlainOptions{
			WithFilename: showFilename,
			LineNumber:   ui.LineNumber,
			Color:        colors.Enabled,
			MatchStyle:   matchStyle(ui, colors),
		})
	case "json":
		return output.WriteJSON(w, res)
	case "ndjson":
		return output.WriteNDJSON(w, res.Items)
	}

	sel, err := output.ResolveFields(ui.Fields, showFilename, ui.LineNumber)
	if err != nil {
		return err
	}
	switch ui.Output {
	case "table":
		return output.WriteTable(w, res.Items, sel, colors.Enabled)
	case "tsv":
		return output.WriteTSV(w, res.Items, sel)
	case "csv":
		return output.WriteCSV(w, res.Items, sel)
	case "markdown":
		return output.WriteMarkdownTable(w, res.Items, sel)
	default:
		return fmt.Errorf("unsupported output: %s", ui.Output)
	}
}
