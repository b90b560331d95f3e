package main

import (
	"context"
	"os"
	"strings"

	"github.com/falcion/sigscan/internal/cli"
	"github.com/falcion/sigscan/internal/config"
	"github.com/falcion/sigscan/internal/printer"
)

// configPathFromArgs extracts the --config value before the CLI parses
// anything, since the loaded configuration seeds the flag defaults of
// every subcommand.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}

	return config.DefaultConfigFile
}

// runCLI loads the configuration and runs the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFromFn(configPathFromArgs(args))
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	return cli.New(cfg).Run(context.Background(), args)
}

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}
