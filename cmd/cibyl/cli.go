package main

import (
	"github.com/rhos-infra/cibyl/v1/internal/errors"
	"github.com/rhos-infra/cibyl/v1/internal/meta"
	"github.com/urfave/cli/v2"
)

func initCli() *cli.App {
	app := &cli.App{
		Name:                 meta.AppName,
		Usage:                meta.AppDescription,
		Version:              meta.AppVersion,
		Action:               errors.WithPanicHandling(cliContextRunner),
		EnableBashCompletion: true,
		HideHelpCommand:      true,

		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    "config",
				Usage:   "The configuration file describing environments and systems",
				Aliases: []string{"c"},
				EnvVars: []string{meta.EnvVarPrefix + "CONFIG"},
			},

			&cli.StringSliceFlag{
				Name:  "envs",
				Usage: "Only consider the given environments",
			},

			&cli.StringSliceFlag{
				Name:  "systems",
				Usage: "Only consider the given systems, enabling them if disabled in the configuration",
			},

			&cli.StringSliceFlag{
				Name:  "system-type",
				Usage: "Only consider systems of the given types (jenkins, zuul)",
			},

			&cli.StringSliceFlag{
				Name:  "sources",
				Usage: "Only use the given sources, disabling every other one",
			},

			&cli.BoolFlag{
				Name:  "show-disabled",
				Usage: "Also print the sources disabled by --sources",
			},

			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug mode",
				Aliases: []string{"d"},
				EnvVars: []string{meta.EnvVarPrefix + "DEBUG"},
			},

			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Increase log verbosity, may be repeated",
				Count: new(int),
			},

			&cli.BoolFlag{
				Name:    "json",
				Usage:   "Log in JSON format",
				EnvVars: []string{meta.EnvVarPrefix + "JSON"},
			},

			&cli.StringFlag{
				Name:        "color",
				Usage:       "Configure colored output (auto, always, never)",
				EnvVars:     []string{meta.EnvVarPrefix + "COLOR"},
				Value:       "auto",
				DefaultText: "auto",
			},

			&cli.PathFlag{
				Name:    "log-file",
				Usage:   "Also write debug logs as JSON lines to the given file",
				EnvVars: []string{meta.EnvVarPrefix + "LOG_FILE"},
			},

			&cli.StringFlag{
				Name:    "logging.remote.google-cloud.project",
				Usage:   "Ship logs to Google Cloud Logging in the given project",
				EnvVars: []string{meta.EnvVarPrefix + "GOOGLE_CLOUD_PROJECT"},
			},
		},
	}

	return app
}
