package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/phyten/minigrep/internal/logging"
	"github.com/phyten/minigrep/internal/search"
	"github.com/phyten/minigrep/internal/textutil"
	"github.com/phyten/minigrep/internal/util"
)

const (
	binarySniffBytes = 8000
	ellipsis         = "…"
)

var errBinary = errors.New("binary file")

type source struct {
	name  string
	stdin bool
}

type fileResult struct {
	items   []Item
	err     *ItemError
	scanned bool
}

// Run は指定されたファイル（パスが無ければ標準入力）を読み込み、クエリを含む行を返します。
//
// 読み込みに失敗したファイルは Result.Errors に記録され、走査自体は継続します。
// 結果は入力パスの順序、ファイル内では行番号の順に並びます。
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if opts.Jobs < 0 {
		return nil, fmt.Errorf("jobs must be >= 0")
	}
	if opts.MaxFileBytes < 0 {
		return nil, fmt.Errorf("max_file_bytes must be >= 0")
	}
	if opts.TruncAll < 0 {
		return nil, fmt.Errorf("truncate must be >= 0")
	}
	if opts.Jobs == 0 {
		opts.Jobs = runtime.NumCPU()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	sources := make([]source, 0, len(opts.Paths))
	for _, p := range opts.Paths {
		if p == "-" {
			sources = append(sources, source{name: StdinName, stdin: true})
			continue
		}
		sources = append(sources, source{name: p})
	}
	if len(sources) == 0 {
		sources = append(sources, source{name: StdinName, stdin: true})
	}

	per := make([]fileResult, len(sources))
	prog := util.NewProgress(len(sources), opts.Progress)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i, src := range sources {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			per[i] = scanOne(opts, src, logger)
			prog.Advance()
			return nil
		})
	}
	waitErr := g.Wait()
	prog.Done()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if waitErr != nil {
		return nil, waitErr
	}

	res := &Result{Items: []Item{}}
	for _, fr := range per {
		if fr.err != nil {
			res.Errors = append(res.Errors, *fr.err)
			continue
		}
		if fr.scanned {
			res.Files++
		}
		res.Items = append(res.Items, fr.items...)
	}
	res.Total = len(res.Items)
	res.ErrorCount = len(res.Errors)
	res.ElapsedMS = msSince(start)

	logger.Debug("scan_complete",
		slog.Int("files", res.Files),
		slog.Int("matches", res.Total),
		slog.Int("errors", res.ErrorCount),
		slog.Int64("elapsed_ms", res.ElapsedMS))
	return res, nil
}

func scanOne(opts Options, src source, logger *slog.Logger) fileResult {
	contents, stage, err := readSource(opts, src)
	if errors.Is(err, errBinary) {
		logger.Debug("skip_binary", slog.String("file", src.name))
		return fileResult{}
	}
	if err != nil {
		logger.Debug("read_failed", slog.String("file", src.name), slog.String("stage", stage), slog.String("error", err.Error()))
		ie := newItemError(src.name, stage, err)
		return fileResult{err: &ie}
	}

	matches := search.Find(opts.Query, contents, opts.IgnoreCase)
	items := make([]Item, 0, len(matches))
	for _, m := range matches {
		it := Item{File: src.name, Line: m.Number, Text: m.Text}
		if opts.WithRanges {
			it.Ranges = search.Ranges(m.Text, opts.Query, opts.IgnoreCase)
		}
		if opts.TruncAll > 0 {
			truncateItem(&it, opts)
		}
		items = append(items, it)
	}
	logger.Debug("file_scanned", slog.String("file", src.name), slog.Int("matches", len(items)))
	return fileResult{items: items, scanned: true}
}

func readSource(opts Options, src source) (string, string, error) {
	var data []byte
	if src.stdin {
		r := opts.Stdin
		if r == nil {
			r = os.Stdin
		}
		if opts.MaxFileBytes > 0 {
			r = io.LimitReader(r, int64(opts.MaxFileBytes)+1)
		}
		b, err := io.ReadAll(r)
		if err != nil {
			return "", "read", err
		}
		if opts.MaxFileBytes > 0 && len(b) > opts.MaxFileBytes {
			return "", "read", fmt.Errorf("input exceeds %d bytes", opts.MaxFileBytes)
		}
		data = b
	} else {
		info, err := os.Stat(src.name)
		if err != nil {
			return "", "stat", err
		}
		if info.IsDir() {
			return "", "stat", fmt.Errorf("%s is a directory", src.name)
		}
		if opts.MaxFileBytes > 0 && info.Size() > int64(opts.MaxFileBytes) {
			return "", "stat", fmt.Errorf("file size %d exceeds %d bytes", info.Size(), opts.MaxFileBytes)
		}
		b, err := os.ReadFile(src.name)
		if err != nil {
			return "", "read", err
		}
		data = b
	}
	if isBinary(data) {
		return "", "read", errBinary
	}
	return string(data), "", nil
}

func isBinary(data []byte) bool {
	head := data
	if len(head) > binarySniffBytes {
		head = head[:binarySniffBytes]
	}
	return bytes.IndexByte(head, 0) >= 0
}

// truncateItem shortens the text to opts.TruncAll cells. The cut text has
// its escape sequences stripped, so ranges are recomputed on what was kept
// instead of being filtered from offsets into the original line.
func truncateItem(it *Item, opts Options) {
	cut := textutil.TruncateByWidth(it.Text, opts.TruncAll, ellipsis)
	if cut == it.Text {
		return
	}
	it.Text = cut
	if opts.WithRanges {
		kept := strings.TrimSuffix(cut, ellipsis)
		it.Ranges = search.Ranges(kept, opts.Query, opts.IgnoreCase)
	}
}

func newItemError(file, stage string, err error) ItemError {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	return ItemError{File: file, Stage: stage, Message: msg}
}

func msSince(t time.Time) int64 { return time.Since(t).Milliseconds() }
