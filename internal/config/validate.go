package config

import (
	"fmt"
	"strings"

	"github.com/phyten/minigrep/internal/colorutil"
	engineopts "github.com/phyten/minigrep/internal/engine/opts"
	"github.com/phyten/minigrep/internal/output"
	"github.com/phyten/minigrep/internal/termcolor"
)

func CanonicalizeFilenameMode(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	switch mode {
	case "", "auto":
		return "auto", nil
	case "always", "never":
		return mode, nil
	default:
		return "", fmt.Errorf("invalid filename: %s", raw)
	}
}

// ShowFilename decides whether file names prefix matches. In auto mode they
// do once more than one input is searched, as grep does.
func (s UISettings) ShowFilename(inputs int) bool {
	switch s.Filename {
	case "always":
		return true
	case "never":
		return false
	default:
		return inputs > 1
	}
}

func NormalizeUI(values UISettings) (UISettings, error) {
	var err error
	values.Output, err = engineopts.NormalizeOutput(values.Output)
	if err != nil {
		return values, err
	}
	mode, err := termcolor.ParseMode(values.Color)
	if err != nil {
		return values, err
	}
	values.Color = mode.String()
	values.Filename, err = CanonicalizeFilenameMode(values.Filename)
	if err != nil {
		return values, err
	}
	values.Fields = strings.TrimSpace(values.Fields)
	if values.Fields != "" {
		if _, err := output.ResolveFields(values.Fields, false, false); err != nil {
			return values, err
		}
	}
	values.MatchColor = strings.TrimSpace(values.MatchColor)
	if values.MatchColor != "" {
		rgb, err := colorutil.ParseHex(values.MatchColor)
		if err != nil {
			return values, fmt.Errorf("match_color: %w", err)
		}
		values.MatchColor = rgb.Hex()
	}
	return values, nil
}
