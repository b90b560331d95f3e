package cli

import (
	"context"
	"fmt"

	"github.com/falcion/sigscan/internal/commands/initialize"
	"github.com/falcion/sigscan/internal/commands/manifestsync"
	"github.com/falcion/sigscan/internal/commands/scan"
	"github.com/falcion/sigscan/internal/config"
	"github.com/falcion/sigscan/internal/console"
	"github.com/falcion/sigscan/internal/manifest"
	"github.com/falcion/sigscan/internal/printer"
	"github.com/falcion/sigscan/internal/tui"
	"github.com/falcion/sigscan/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var (
	noColorFlag bool
	verboseFlag bool
)

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the sigscan cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "sigscan",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Signature token scanner and manifest synchronizer",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:  "config",
				Usage: "Path to the configuration file",
				Value: config.DefaultConfigFile,
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
			&urfavecli.BoolFlag{
				Name:        "verbose",
				Usage:       "Enable debug logging",
				Destination: &verboseFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			console.SetNoColor(noColorFlag)
			printer.SetNoColor(noColorFlag)
			console.SetVerbose(verboseFlag)
			tui.SetTheme(cfg.GetTheme())
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return runDefault(ctx, cfg)
		},
		Commands: []*urfavecli.Command{
			initialize.Run(cfg),
			scan.Run(cfg),
			manifestsync.Run(cfg),
		},
	}
}

// runDefault is the no-subcommand flow: synchronize the manifest first,
// then run the scan with the interactive token workflow. The scan report
// is printed before the process exits.
func runDefault(ctx context.Context, cfg *config.Config) error {
	if err := manifestsync.Execute(ctx, cfg, manifest.Options{}, manifestsync.FormatText); err != nil {
		return err
	}

	return scan.Execute(ctx, cfg, scan.Options{})
}
