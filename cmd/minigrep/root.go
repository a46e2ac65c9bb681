package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phyten/minigrep/internal/config"
	"github.com/phyten/minigrep/internal/engine"
	engineopts "github.com/phyten/minigrep/internal/engine/opts"
	"github.com/phyten/minigrep/internal/logging"
	"github.com/phyten/minigrep/internal/termcolor"
	"github.com/phyten/minigrep/internal/util"
)

// Exit statuses follow grep.
const (
	exitMatched = 0
	exitNoMatch = 1
	exitTrouble = 2
)

var (
	errNoMatch    = errors.New("no lines matched")
	errReadFailed = errors.New("some inputs could not be read")
)

// env is the process surroundings the command reads from. Tests swap in
// buffers and a fake environment.
type env struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	getenv  func(string) string
	environ []string
	getwd   func() (string, error)
}

func newEnv() env {
	return env{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		getenv:  os.Getenv,
		environ: os.Environ(),
		getwd:   os.Getwd,
	}
}

type rootFlags struct {
	ignoreCase   bool
	output       string
	withFilename bool
	noFilename   bool
	lineNumber   bool
	color        string
	fields       string
	matchColor   string
	jobs         int
	maxFileBytes int
	truncate     int
	progress     bool
	noProgress   bool
	configPath   string
	verbose      bool
}

func run(ctx context.Context, args []string, e env) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	return exitCode(cmd.ExecuteContext(ctx), e.stderr)
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return exitMatched
	case errors.Is(err, errNoMatch):
		return exitNoMatch
	case errors.Is(err, errReadFailed):
		return exitTrouble
	default:
		fmt.Fprintf(stderr, "minigrep: %v\n", err)
		return exitTrouble
	}
}

func newRootCmd(e env) *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "minigrep [flags] QUERY [FILE...]",
		Short: "Print lines that contain QUERY",
		Long: `minigrep prints every line of the given files that contains QUERY as a
plain substring. With no FILE, or when FILE is -, standard input is read.

Matching is case-sensitive unless --ignore-case is given or IGNORE_CASE is
set in the environment. Use -- before QUERY to search for a word that is
also a subcommand name.

Exit status is 0 if a line matched, 1 if none did and 2 on error.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), e, f, cmd.Flags().Changed, args)
		},
	}
	cmd.SetIn(e.stdin)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)

	fl := cmd.Flags()
	fl.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "match without regard to letter case")
	fl.StringVarP(&f.output, "output", "o", "plain", "plain|table|tsv|json|ndjson|csv|markdown")
	fl.BoolVarP(&f.withFilename, "with-filename", "H", false, "prefix each match with its file name")
	fl.BoolVar(&f.noFilename, "no-filename", false, "never prefix matches with file names")
	fl.BoolVarP(&f.lineNumber, "line-number", "n", false, "prefix each match with its 1-based line number")
	fl.StringVar(&f.color, "color", "auto", "auto|always|never")
	fl.StringVar(&f.fields, "fields", "", "columns for table/tsv/csv/markdown (file,line,location,text)")
	fl.StringVar(&f.matchColor, "match-color", "", "highlight colour for matches as #rrggbb")
	fl.IntVarP(&f.jobs, "jobs", "j", 0, "max parallel workers (default: number of CPUs)")
	fl.IntVar(&f.maxFileBytes, "max-file-bytes", 0, "skip inputs larger than N bytes (0=unlimited)")
	fl.IntVar(&f.truncate, "truncate", 0, "truncate matched lines to N display cells (0=unlimited)")
	fl.BoolVar(&f.progress, "progress", false, "force progress output even when piped")
	fl.BoolVar(&f.noProgress, "no-progress", false, "disable progress output")
	fl.StringVar(&f.configPath, "config", "", "config file (default: search .minigrep.* upwards)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log diagnostics to stderr")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// flagLayer turns the flags the user actually set into a config layer so
// they override file and environment values without clobbering them with
// defaults.
func (f *rootFlags) flagLayer(changed func(string) bool) config.Config {
	var cfg config.Config
	if changed("ignore-case") {
		cfg.Search.IgnoreCase = &f.ignoreCase
	}
	if changed("jobs") {
		cfg.Search.Jobs = &f.jobs
	}
	if changed("max-file-bytes") {
		cfg.Search.MaxFileBytes = &f.maxFileBytes
	}
	if changed("truncate") {
		cfg.Search.TruncAll = &f.truncate
	}
	if changed("output") {
		cfg.UI.Output = &f.output
	}
	if changed("color") {
		cfg.UI.Color = &f.color
	}
	if changed("with-filename") {
		mode := "never"
		if f.withFilename {
			mode = "always"
		}
		cfg.UI.Filename = &mode
	}
	if changed("no-filename") && f.noFilename {
		mode := "never"
		cfg.UI.Filename = &mode
	}
	if changed("line-number") {
		cfg.UI.LineNumber = &f.lineNumber
	}
	if changed("fields") {
		cfg.UI.Fields = &f.fields
	}
	if changed("match-color") {
		cfg.UI.MatchColor = &f.matchColor
	}
	return cfg
}

type resolved struct {
	opts       engine.Options
	ui         config.UISettings
	configPath string
	configFrom string
}

// resolveSettings layers defaults, the config file, the environment and the
// command line, in that order.
func resolveSettings(e env, f *rootFlags, changed func(string) bool) (resolved, error) {
	var r resolved

	explicit := f.configPath
	if !changed("config") {
		explicit = e.getenv("MINIGREP_CONFIG")
	}
	cwd, err := e.getwd()
	if err != nil {
		return r, err
	}
	path, where, err := config.Find(cwd, explicit, e.getenv("XDG_CONFIG_HOME"), e.getenv("HOME"))
	if err != nil {
		return r, fmt.Errorf("config: %w", err)
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return r, fmt.Errorf("config: %w", err)
	}
	envCfg, err := config.FromEnv(e.getenv)
	if err != nil {
		return r, fmt.Errorf("environment: %w", err)
	}
	flagCfg := f.flagLayer(changed)

	opts := engineopts.Defaults()
	search := config.MergeSearch(config.SearchSettingsFromOptions(opts), fileCfg.Search, envCfg.Search, flagCfg.Search)
	search.ApplyToOptions(&opts)

	ui, err := config.NormalizeUI(config.MergeUI(config.DefaultUISettings(), fileCfg.UI, envCfg.UI, flagCfg.UI))
	if err != nil {
		return r, err
	}

	r.opts = opts
	r.ui = ui
	r.configPath = path
	r.configFrom = where
	return r, nil
}

func runSearch(ctx context.Context, e env, f *rootFlags, changed func(string) bool, args []string) error {
	r, err := resolveSettings(e, f, changed)
	if err != nil {
		return err
	}

	level := "warn"
	if f.verbose {
		level = "debug"
	}
	logger := logging.New(e.stderr, level)
	if r.configPath != "" {
		logger.Debug("config_loaded", slog.String("path", r.configPath), slog.String("source", r.configFrom))
	}

	opts := r.opts
	opts.Query = args[0]
	opts.Paths = args[1:]
	opts.Stdin = e.stdin
	opts.Logger = logger
	opts.Progress = util.ShouldShowProgress(f.progress, f.noProgress)
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		return err
	}

	stdoutFile, _ := e.stdout.(*os.File)
	colors, err := termcolor.Resolve(r.ui.Color, stdoutFile, termcolor.EnvMap(e.environ))
	if err != nil {
		return err
	}
	opts.WithRanges = wantsRanges(r.ui.Output, colors.Enabled)

	res, err := engine.Run(ctx, opts)
	if err != nil {
		return err
	}

	inputs := len(opts.Paths)
	if inputs == 0 {
		inputs = 1
	}
	if err := render(e.stdout, res, r.ui, r.ui.ShowFilename(inputs), colors); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	for _, ie := range res.Errors {
		fmt.Fprintf(e.stderr, "minigrep: %s: %s\n", ie.File, ie.Message)
	}
	switch {
	case res.ErrorCount > 0:
		return errReadFailed
	case res.Total == 0:
		return errNoMatch
	}
	return nil
}
