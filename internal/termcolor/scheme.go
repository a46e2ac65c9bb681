package termcolor

import (
	"strconv"
	"strings"
)

// Scheme is the terminal background brightness, used to pick readable
// highlight colours.
type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeDark
	SchemeLight
)

func (s Scheme) String() string {
	switch s {
	case SchemeDark:
		return "dark"
	case SchemeLight:
		return "light"
	default:
		return "unknown"
	}
}

// DetectScheme guesses the background. MINIGREP_SCHEME=light|dark wins,
// then the background slot of COLORFGBG, then a "light" TERM name. Anything
// else is treated as dark.
func DetectScheme(env map[string]string) Scheme {
	if env == nil {
		return SchemeDark
	}
	switch strings.ToLower(strings.TrimSpace(env["MINIGREP_SCHEME"])) {
	case "light":
		return SchemeLight
	case "dark":
		return SchemeDark
	}
	if s, ok := schemeFromColorFGBG(env["COLORFGBG"]); ok {
		return s
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "light") {
		return SchemeLight
	}
	return SchemeDark
}

// schemeFromColorFGBG reads "fg;bg" or "fg;default;bg" as set by rxvt and
// friends. Of the 16 ANSI slots only 7 (white) and 9-15 (bright colours) are
// light backgrounds; 8 is bright black.
func schemeFromColorFGBG(raw string) (Scheme, bool) {
	parts := strings.Split(strings.TrimSpace(raw), ";")
	for i := len(parts) - 1; i >= 0; i-- {
		field := strings.TrimSpace(parts[i])
		if field == "" || field == "default" {
			continue
		}
		bg, err := strconv.Atoi(field)
		if err != nil || bg < 0 {
			return SchemeUnknown, false
		}
		if bg == 7 || (bg >= 9 && bg <= 15) {
			return SchemeLight, true
		}
		return SchemeDark, true
	}
	return SchemeUnknown, false
}
