package main

import (
	stderrors "errors"
	"os"

	"github.com/rhos-infra/cibyl/v1/internal/args"
	"github.com/rhos-infra/cibyl/v1/internal/config"
	"github.com/rhos-infra/cibyl/v1/internal/errors"
	"github.com/rhos-infra/cibyl/v1/internal/logging"
	"github.com/rhos-infra/cibyl/v1/internal/meta"
	"github.com/rhos-infra/cibyl/v1/internal/printer"
	"github.com/rhos-infra/cibyl/v1/internal/ui"
	"github.com/rhos-infra/cibyl/v1/internal/validator"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

func cliContextRunner(cliCtx *cli.Context) error {
	logCfg := logging.ConfigFromCLI(cliCtx)
	rootLogger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := rootLogger.Close(); err != nil {
			rootLogger.Warnf("failed to flush log sinks: %s", err)
		}
	}()
	logger := rootLogger.Entry(logCfg)
	logger.Debugf("%s (version=%s)", meta.AppName, meta.AppVersion)

	ui.SetColors(ui.ColorsEnabled(cliCtx.String("color"), os.Stdout))

	cwd, err := os.Getwd()
	if err != nil {
		return errors.WithStackTrace(err)
	}
	fs := afero.NewOsFs()
	path, err := config.NewFinder(fs, logger).Find(cliCtx.Path("config"), cwd)
	if err != nil {
		return reportError(cliCtx, err)
	}
	logger.Debugf("using config file %s", path)

	envs, err := config.LoadEnvironments(fs, path, logger)
	if err != nil {
		return reportError(cliCtx, err)
	}

	result, err := validator.New(validator.WithLogger(logger)).Validate(envs, args.FromCLI(cliCtx))
	if err != nil {
		return reportError(cliCtx, err)
	}
	for _, source := range result.DisabledSources {
		logger.Debugf("source %s disabled by user input", source.Name)
	}

	p := printer.New(cliCtx.App.Writer)
	p.ShowDisabled = cliCtx.Bool("show-disabled")
	p.PrintEnvironments(result.Environments)
	return nil
}

// reportError keeps the exit status of err and, in debug mode, replaces its
// message with the stack trace.
func reportError(cliCtx *cli.Context, err error) error {
	if !cliCtx.Bool("debug") {
		return err
	}
	return errors.ErrorWithExitCode{
		Err:      stderrors.New(errors.PrintErrorWithStackTrace(err)),
		ExitCode: errors.ExitCode(err),
	}
}
