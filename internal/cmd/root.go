package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/harrison/fsearch/internal/config"
	"github.com/harrison/fsearch/internal/display"
	"github.com/harrison/fsearch/internal/logger"
	"github.com/harrison/fsearch/internal/models"
	"github.com/harrison/fsearch/internal/pattern"
	"github.com/harrison/fsearch/internal/search"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for fsearch.
// The root command is the search itself; init-config is its only subcommand.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fsearch [pattern]",
		Short: "Search a directory tree for files whose text matches a pattern",
		Long: `fsearch walks a directory tree, extracts the printable text of every file
(binary files included) and matches each line against a regular expression
or a wordlist.

In simple mode a table reports, per file, the number of lines, the size and
the number of matches found. With a wordlist the table also reports how many
distinct terms matched. In full mode every matching line is printed with the
matches highlighted.

Defaults are read from .fsearch.yaml in the working directory if present.
CLI flags override configuration file settings.

Examples:
  # Count matches of a regular expression under the current directory
  fsearch 'error|warn'

  # Print matching lines with highlighted matches and line numbers
  fsearch -d ./logs -m full --line-numbers 'timeout after [0-9]+s'

  # Wordlist coverage, two levels deep, skipping .log files
  fsearch -d ./docs -w terms.txt -l 2 -x log

  # Write the default configuration file
  fsearch init-config`,
		Version: Version,
		Args:    patternArgs,
		RunE:    runSearch,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringP("dir", "d", ".", "Root directory (or single file) to search")
	cmd.Flags().StringP("pattern", "p", "", "Regular expression to search for (alternative to the positional argument)")
	cmd.Flags().BoolP("case-sensitive", "i", false, "Match case exactly")
	cmd.Flags().StringSliceP("exclude-ext", "x", nil, "File extensions to exclude (comma separated, with or without the dot)")
	cmd.Flags().IntP("level", "l", models.UnlimitedDepth, "Maximum directory depth (-1 = unlimited, 0 = root only)")
	cmd.Flags().BoolP("hidden", "n", false, "Include hidden files and directories")
	cmd.Flags().StringP("mode", "m", string(search.ModeSummary), "Output mode: simple (summary table) or full (matching lines)")
	cmd.Flags().StringP("wordlist", "w", "", "File of newline-delimited terms to search for instead of a pattern")
	cmd.Flags().String("color", display.ColorAuto, "Highlight matches: auto, always or never")
	cmd.Flags().Bool("line-numbers", false, "Prefix full-mode lines with their line number")
	cmd.Flags().Bool("progress", false, "Report each file on stderr as it is scanned")
	cmd.Flags().String("config", "", "Path to config file (default: ./"+config.FileName+")")
	cmd.Flags().String("log-level", logger.DefaultLevel, "Diagnostic verbosity on stderr: trace, debug, info, warn, error")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return models.NewArgumentError("", err.Error())
	})

	cmd.AddCommand(NewInitConfigCommand())

	return cmd
}

// patternArgs accepts at most one positional pattern.
func patternArgs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return models.NewArgumentError("", fmt.Sprintf("expected at most one pattern, got %d (quote patterns containing spaces)", len(args)))
	}
	return nil
}

// searchRequest is the validated pattern source of one invocation.
type searchRequest struct {
	root     string
	pattern  string
	wordlist string
}

// runSearch implements the search command logic
func runSearch(cmd *cobra.Command, args []string) error {
	req, err := parseSearchRequest(cmd, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	log.LogDebug(fmt.Sprintf("Effective config: mode=%s case_sensitive=%t hidden=%t max_depth=%d exclude=[%s] color=%s",
		cfg.Mode, cfg.CaseSensitive, cfg.IncludeHidden, cfg.MaxDepth, strings.Join(cfg.ExcludeExtensions, ","), cfg.Color))

	theme := display.NewTheme(display.ResolveColor(cfg.Color, asFile(stdout)))
	errTheme := display.NewTheme(display.ResolveColor(cfg.Color, asFile(stderr)))

	opts := pattern.Options{
		CaseSensitive: cfg.CaseSensitive,
		Renderer:      theme.Highlighter(),
	}

	var matcher *pattern.Matcher
	if req.wordlist != "" {
		terms, err := pattern.LoadWordlist(req.wordlist)
		if err != nil {
			return err
		}
		if len(terms) == 0 {
			display.WarnEmptyWordlist(req.wordlist).Display(stderr, errTheme)
		}
		log.LogInfo(fmt.Sprintf("Loaded %d wordlist term(s) from %s", len(terms), req.wordlist))
		matcher, err = pattern.CompileWordlist(terms, opts)
		if err != nil {
			return err
		}
	} else {
		matcher, err = pattern.Compile(req.pattern, opts)
		if err != nil {
			return err
		}
	}

	mode, err := search.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	aggregator := search.NewAggregator(matcher, log)
	if showProgress, _ := cmd.Flags().GetBool("progress"); showProgress {
		aggregator.WithProgress(display.NewProgressIndicator(stderr, errTheme))
	}

	start := time.Now()
	report, err := aggregator.Run(cfg.FilterConfig(req.root), mode)
	if err != nil {
		return err
	}

	if report.Files == 0 {
		display.WarnNoFiles(report.Root).Display(stderr, errTheme)
	}

	withMatches := 0
	switch report.Mode {
	case search.ModeFull:
		withMatches = len(report.Matches)
		err = display.WriteMatches(stdout, report.Matches, display.DumpOptions{LineNumbers: cfg.LineNumbers}, theme)
	default:
		for _, stat := range report.Stats {
			if stat.Found > 0 {
				withMatches++
			}
		}
		err = display.WriteSummary(stdout, report.Stats, report.Wordlist, cfg.TableOptions(), theme)
	}
	if err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	log.LogScanComplete(report.Files, withMatches, time.Since(start))
	return nil
}

// parseSearchRequest resolves the pattern source from the positional argument,
// --pattern and --wordlist. It touches no files.
func parseSearchRequest(cmd *cobra.Command, args []string) (searchRequest, error) {
	flags := cmd.Flags()
	root, _ := flags.GetString("dir")
	flagPattern, _ := flags.GetString("pattern")
	wordlist, _ := flags.GetString("wordlist")

	req := searchRequest{root: root, wordlist: wordlist}

	hasPattern := false
	if len(args) == 1 {
		req.pattern = args[0]
		hasPattern = true
	}
	if flags.Changed("pattern") {
		if hasPattern && flagPattern != req.pattern {
			return req, models.NewArgumentError("pattern", fmt.Sprintf("conflicts with positional pattern %q", req.pattern))
		}
		req.pattern = flagPattern
		hasPattern = true
	}

	hasWordlist := flags.Changed("wordlist")
	switch {
	case hasPattern && hasWordlist:
		return req, models.NewArgumentError("", "a pattern and --wordlist cannot be used together")
	case !hasPattern && !hasWordlist:
		return req, models.NewArgumentError("", "a pattern or --wordlist is required")
	case hasWordlist && wordlist == "":
		return req, models.NewArgumentError("wordlist", "path must not be empty")
	}

	if root == "" {
		return req, models.NewArgumentError("dir", "path must not be empty")
	}

	return req, nil
}

// loadConfig reads the defaults file and applies every flag the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(".")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var o config.Overrides
	if flags.Changed("mode") {
		v, _ := flags.GetString("mode")
		o.Mode = &v
	}
	if flags.Changed("case-sensitive") {
		v, _ := flags.GetBool("case-sensitive")
		o.CaseSensitive = &v
	}
	if flags.Changed("hidden") {
		v, _ := flags.GetBool("hidden")
		o.IncludeHidden = &v
	}
	if flags.Changed("level") {
		v, _ := flags.GetInt("level")
		o.MaxDepth = &v
	}
	if flags.Changed("exclude-ext") {
		v, _ := flags.GetStringSlice("exclude-ext")
		o.ExcludeExtensions = &v
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		o.Color = &v
	}
	if flags.Changed("line-numbers") {
		v, _ := flags.GetBool("line-numbers")
		o.LineNumbers = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		o.LogLevel = &v
	}
	cfg.MergeWithFlags(o)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// asFile returns w as an *os.File when it is one, for terminal detection.
func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
