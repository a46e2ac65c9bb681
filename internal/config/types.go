package config

import (
	"github.com/phyten/minigrep/internal/engine"
)

type SearchConfig struct {
	IgnoreCase   *bool `yaml:"ignore_case" toml:"ignore_case" json:"ignore_case"`
	Jobs         *int  `yaml:"jobs" toml:"jobs" json:"jobs"`
	MaxFileBytes *int  `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
	TruncAll     *int  `yaml:"truncate" toml:"truncate" json:"truncate"`
}

type UIConfig struct {
	Output     *string `yaml:"output" toml:"output" json:"output"`
	Color      *string `yaml:"color" toml:"color" json:"color"`
	Filename   *string `yaml:"filename" toml:"filename" json:"filename"`
	LineNumber *bool   `yaml:"line_number" toml:"line_number" json:"line_number"`
	Fields     *string `yaml:"fields" toml:"fields" json:"fields"`
	MatchColor *string `yaml:"match_color" toml:"match_color" json:"match_color"`
}

type Config struct {
	Search SearchConfig `yaml:"search" toml:"search" json:"search"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
}

type SearchSettings struct {
	IgnoreCase   bool
	Jobs         int
	MaxFileBytes int
	TruncAll     int
}

type UISettings struct {
	Output     string
	Color      string
	Filename   string
	LineNumber bool
	Fields     string
	MatchColor string
}

func SearchSettingsFromOptions(opts engine.Options) SearchSettings {
	return SearchSettings{
		IgnoreCase:   opts.IgnoreCase,
		Jobs:         opts.Jobs,
		MaxFileBytes: opts.MaxFileBytes,
		TruncAll:     opts.TruncAll,
	}
}

func (s SearchSettings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	opts.IgnoreCase = s.IgnoreCase
	opts.Jobs = s.Jobs
	opts.MaxFileBytes = s.MaxFileBytes
	opts.TruncAll = s.TruncAll
}

func DefaultUISettings() UISettings {
	return UISettings{
		Output:     "plain",
		Color:      "auto",
		Filename:   "auto",
		LineNumber: false,
		Fields:     "",
		MatchColor: "",
	}
}
