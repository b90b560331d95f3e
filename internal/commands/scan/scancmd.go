package scan

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/urfave/cli/v3"

	"github.com/falcion/sigscan/internal/config"
	"github.com/falcion/sigscan/internal/console"
	"github.com/falcion/sigscan/internal/core"
	"github.com/falcion/sigscan/internal/scanner"
	"github.com/falcion/sigscan/internal/tui"
)

// Run returns the "scan" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "Walk a directory tree and report signature token matches",
		UsageText: `sigscan scan [options]

Walks the configured root depth-first and matches every line of every
regular file against the signature token set (case-insensitive substring
containment). Excluded directory names are never descended into.

Traversal problems (missing root, unreadable directories, special
entries, unreadable files) are reported as diagnostics; they never fail
the command.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "root",
				Aliases:     []string{"r"},
				Usage:       "Directory to scan",
				Value:       cfg.Root,
				DefaultText: ".",
			},
			&cli.StringFlag{
				Name:    "tokens",
				Aliases: []string{"t"},
				Usage:   "Comma-separated extra tokens appended to the defaults",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, table",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only show summary",
			},
			&cli.BoolFlag{
				Name:  "no-interactive",
				Usage: "Skip interactive prompts",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runScanCmd(ctx, cmd, cfg)
		},
	}
}

// runScanCmd executes the scan command.
func runScanCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	opts := Options{
		Root:          cmd.String("root"),
		ExtraTokens:   scanner.ParseTokenList(cmd.String("tokens")),
		Format:        ParseOutputFormat(cmd.String("format")),
		Quiet:         cmd.Bool("quiet"),
		NoInteractive: cmd.Bool("no-interactive"),
	}

	return Execute(ctx, cfg, opts)
}

// Options carries the resolved scan settings, independent of whether
// they came from flags, configuration, or the root command's default
// action.
type Options struct {
	Root          string
	ExtraTokens   []string
	Format        OutputFormat
	Quiet         bool
	NoInteractive bool
}

// Execute runs the signature scan flow shared by the scan subcommand and
// the root command's default action.
func Execute(ctx context.Context, cfg *config.Config, opts Options) error {
	root := opts.Root
	if root == "" {
		root = cfg.Root
	}
	if root == "" {
		root = "."
	}

	tokens := scanner.MergeTokens(scanner.DefaultTokens, slices.Concat(cfg.Tokens, opts.ExtraTokens))

	interactive := !opts.NoInteractive && !opts.Quiet && opts.Format == FormatText && tui.IsInteractive()
	if interactive {
		merged, err := NewWorkflow(NewPrompter()).CollectTokens(tokens)
		if err != nil {
			return err
		}
		tokens = merged
	}

	var excludes []string
	if len(cfg.Exclude) > 0 {
		excludes = slices.Concat(scanner.DefaultExcludes, cfg.Exclude)
	}

	svc := scanner.New(core.NewOSFileSystem(), scanner.Options{Tokens: tokens, Excludes: excludes})

	console.Debug("starting scan", "root", root, "tokens", strings.Join(tokens, ","))

	var report *scanner.Report
	runScan := func() error {
		var err error
		report, err = svc.Scan(ctx, root)
		return err
	}

	if interactive {
		title := fmt.Sprintf("Scanning %s...", root)
		err := spinner.New().Title(title).ActionWithErr(func(context.Context) error {
			return runScan()
		}).Run()
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
	} else if err := runScan(); err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	for _, d := range report.Diagnostics {
		console.Warn(d.Message, "code", d.Code, "path", d.Path)
	}

	if opts.Quiet {
		printQuietSummary(report)
		return nil
	}

	NewFormatter(opts.Format).PrintReport(report)
	return nil
}
