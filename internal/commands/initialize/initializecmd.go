// Package initialize provides the "sigscan init" command which bootstraps
// a project with the default .env, manifest.json and .sigscan.yaml files.
package initialize

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/falcion/sigscan/internal/config"
	"github.com/falcion/sigscan/internal/core"
	"github.com/falcion/sigscan/internal/manifest"
	"github.com/falcion/sigscan/internal/printer"
)

// Run returns the "init" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create the default .env, manifest.json and .sigscan.yaml",
		UsageText: "sigscan init [--dir path] [--force]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Directory to initialize",
				Value:       cfg.GetSync().Dir,
				DefaultText: ".",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Replace existing files with the defaults",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd, cfg)
		},
	}
}

// runInitCmd executes the init command.
func runInitCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	return Execute(ctx, cfg, cmd.String("dir"), cmd.Bool("force"))
}

// Execute creates the default project files in dir. Existing files are
// left untouched unless force is set, in which case every file is
// replaced with its default content.
func Execute(ctx context.Context, cfg *config.Config, dir string, force bool) error {
	if dir == "" {
		dir = cfg.GetSync().Dir
	}
	if dir == "" {
		dir = "."
	}

	fs := core.NewOSFileSystem()

	if err := fs.MkdirAll(ctx, dir, core.PermDir); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	createdEnv, createdManifest, err := manifest.EnsureDefaults(ctx, fs, dir, force)
	if err != nil {
		return err
	}

	reportFile(manifest.EnvFile, createdEnv, force)
	reportFile(manifest.ManifestFile, createdManifest, force)

	createdConfig, err := ensureConfigFile(ctx, fs, dir, cfg, force)
	if err != nil {
		return err
	}
	reportFile(config.DefaultConfigFile, createdConfig, force)

	return nil
}

// ensureConfigFile writes the starter .sigscan.yaml into dir.
func ensureConfigFile(ctx context.Context, fs core.FileSystem, dir string, cfg *config.Config, force bool) (bool, error) {
	root := "."
	if cfg != nil && cfg.Root != "" {
		root = cfg.Root
	}

	data, err := GenerateConfigWithComments(root)
	if err != nil {
		return false, err
	}

	path := filepath.Join(dir, config.DefaultConfigFile)
	if force {
		if err := manifest.ResetFile(ctx, fs, path, string(data)); err != nil {
			return false, err
		}
		return true, nil
	}

	return manifest.EnsureFile(ctx, fs, path, string(data))
}

// reportFile prints what happened to a single bootstrapped file.
func reportFile(name string, created, force bool) {
	switch {
	case force:
		printer.PrintSuccess(fmt.Sprintf("Reset %s to defaults", name))
	case created:
		printer.PrintSuccess(fmt.Sprintf("Created %s", name))
	default:
		printer.PrintFaint(fmt.Sprintf("%s already exists, left unchanged", name))
	}
}
