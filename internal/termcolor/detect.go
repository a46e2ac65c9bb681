// Package termcolor decides whether and how to colour terminal output and
// renders SGR escape sequences.
package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode is the --color setting.
type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

var modeNames = map[ColorMode]string{
	ModeAuto:   "auto",
	ModeAlways: "always",
	ModeNever:  "never",
}

func (m ColorMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "auto"
}

// ParseMode reads auto|always|never, case-insensitively; empty means auto.
func ParseMode(v string) (ColorMode, error) {
	name := strings.ToLower(strings.TrimSpace(v))
	if name == "" {
		return ModeAuto, nil
	}
	for mode, n := range modeNames {
		if n == name {
			return mode, nil
		}
	}
	return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
}

// Profile is how many colours the terminal can show.
type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

// EnvMap turns os.Environ-style KEY=VALUE entries into a map. Entries
// without '=' map to the empty string.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// envRules are checked in order; the first rule that fires decides the mode.
var envRules = []struct {
	key   string
	fires func(string) bool
	mode  ColorMode
}{
	{"TERM", func(v string) bool { return strings.EqualFold(v, "dumb") }, ModeNever},
	{"NO_COLOR", func(v string) bool { return v != "" }, ModeNever},
	{"CLICOLOR", func(v string) bool { return v == "0" }, ModeNever},
	{"CLICOLOR_FORCE", forceColor, ModeAlways},
	{"FORCE_COLOR", forceColor, ModeAlways},
}

// DetectMode resolves auto mode. TERM=dumb, NO_COLOR and CLICOLOR=0 turn
// colour off; a non-zero CLICOLOR_FORCE or FORCE_COLOR turns it on; failing
// those, colour follows whether stdout is a terminal. A nil stdout never
// gets colour.
func DetectMode(stdout *os.File, env map[string]string) ColorMode {
	if stdout == nil {
		return ModeNever
	}
	for _, rule := range envRules {
		if rule.fires(strings.TrimSpace(env[rule.key])) {
			return rule.mode
		}
	}
	if isTerminal(stdout) {
		return ModeAlways
	}
	return ModeNever
}

// Enabled reports whether mode emits colour on stdout. Only auto consults
// the terminal.
func Enabled(mode ColorMode, stdout *os.File) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return isTerminal(stdout)
	}
}

// DetectProfile maps COLORTERM=truecolor/24bit to TrueColor and a *256color
// TERM to ANSI256; everything else is the basic 8 colours.
func DetectProfile(env map[string]string) Profile {
	ct := strings.ToLower(env["COLORTERM"])
	if strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit") || strings.Contains(ct, "24-bit") {
		return ProfileTrueColor
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Settings is the resolved colour configuration for one output stream.
type Settings struct {
	Enabled bool
	Profile Profile
	Scheme  Scheme
}

// Resolve turns a --color value into concrete settings for stdout.
func Resolve(raw string, stdout *os.File, env map[string]string) (Settings, error) {
	mode, err := ParseMode(raw)
	if err != nil {
		return Settings{}, err
	}
	if mode == ModeAuto {
		mode = DetectMode(stdout, env)
	}
	return Settings{
		Enabled: Enabled(mode, stdout),
		Profile: DetectProfile(env),
		Scheme:  DetectScheme(env),
	}, nil
}

func forceColor(v string) bool {
	return v != "" && v != "0"
}
