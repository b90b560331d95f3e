package manifestsync

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/falcion/sigscan/internal/config"
	"github.com/falcion/sigscan/internal/console"
	"github.com/falcion/sigscan/internal/core"
	"github.com/falcion/sigscan/internal/envfile"
	"github.com/falcion/sigscan/internal/manifest"
	"github.com/falcion/sigscan/internal/printer"
)

// Run returns the "sync" command.
func Run(cfg *config.Config) *cli.Command {
	sync := cfg.GetSync()

	return &cli.Command{
		Name:  "sync",
		Usage: "Align manifest.json with the package descriptor",
		UsageText: `sigscan sync [options]

Ensures .env and manifest.json exist (existing files are left alone),
loads .env into the process environment, reads the first known package
descriptor (package.json, Cargo.toml, pyproject.toml, composer.json) and
compares its identity fields against manifest.json. On any difference
the manifest is backed up to manifest-backup.json and rewritten with
four-space indentation; fields outside the mapped set are preserved.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Directory holding the descriptor, manifest and .env",
				Value:       sync.Dir,
				DefaultText: ".",
			},
			&cli.StringFlag{
				Name:    "package",
				Aliases: []string{"p"},
				Usage:   "Descriptor file to use instead of probing the known ones",
				Value:   sync.Package,
			},
			&cli.StringFlag{
				Name:        "manifest",
				Usage:       "Manifest file name inside the sync directory",
				DefaultText: "manifest.json",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report differences without writing",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, table",
				Value:   "text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runSyncCmd(ctx, cmd, cfg)
		},
	}
}

// runSyncCmd executes the sync command.
func runSyncCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	opts := manifest.Options{
		Dir:      cmd.String("dir"),
		Package:  cmd.String("package"),
		Manifest: cmd.String("manifest"),
		DryRun:   cmd.Bool("dry-run"),
	}

	return Execute(ctx, cfg, opts, ParseOutputFormat(cmd.String("format")))
}

// Execute runs the manifest synchronization shared by the sync
// subcommand and the root command's default action.
func Execute(ctx context.Context, cfg *config.Config, opts manifest.Options, format OutputFormat) error {
	sync := cfg.GetSync()
	if opts.Dir == "" {
		opts.Dir = sync.Dir
	}
	if opts.Package == "" {
		opts.Package = sync.Package
	}

	syncer := manifest.NewSyncer(core.NewOSFileSystem(), loadEnvLogged, opts)

	res, err := syncer.Sync(ctx)
	if err != nil {
		PrintSyncError(err)
		return err
	}

	console.Debug("sync finished",
		"descriptor", res.DescriptorPath,
		"in_sync", res.InSync(),
		"wrote", res.Wrote,
	)

	NewFormatter(format).PrintResult(res)
	return nil
}

// loadEnvLogged loads the env file into the process environment and
// debug-logs the variable names it defines.
func loadEnvLogged(path string) error {
	if err := envfile.Load(path); err != nil {
		return err
	}

	vars, err := envfile.Read(path)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	console.Debug("loaded env file", "path", path, "keys", strings.Join(keys, ","))

	return nil
}

// PrintSyncError prints a formatted sync error to the console using the
// printer package. Descriptor-not-found errors include guidance on which
// files the synchronizer probes for.
func PrintSyncError(err error) {
	var notFound *manifest.DescriptorNotFoundError
	if errors.As(err, &notFound) {
		printer.PrintError(notFound.Error())
		fmt.Println()
		fmt.Print(notFound.Suggestion())
		return
	}

	printer.PrintError(fmt.Sprintf("Error: %v", err))
}
