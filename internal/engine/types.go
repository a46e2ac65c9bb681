package engine

import (
	"io"
	"log/slog"

	"github.com/phyten/minigrep/internal/search"
)

// StdinName labels items read from standard input.
const StdinName = "(standard input)"

// Item は 1 件の一致行を表す
type Item struct {
	File   string         `json:"file"`
	Line   int            `json:"line"`
	Text   string         `json:"text"`
	Ranges []search.Range `json:"ranges,omitempty"`
}

// ItemError は 1 ファイルの読み込みに失敗した際の情報を表す
type ItemError struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Options は実行オプション
type Options struct {
	Query        string
	IgnoreCase   bool
	Paths        []string
	Stdin        io.Reader `json:"-"`
	Jobs         int
	MaxFileBytes int
	TruncAll     int
	WithRanges   bool
	Progress     bool
	Logger       *slog.Logger `json:"-"`
}

// Result は出力
type Result struct {
	Items      []Item      `json:"items"`
	Total      int         `json:"total"`
	Files      int         `json:"files"`
	ElapsedMS  int64       `json:"elapsed_ms"`
	Errors     []ItemError `json:"errors,omitempty"`
	ErrorCount int         `json:"error_count"`
}
