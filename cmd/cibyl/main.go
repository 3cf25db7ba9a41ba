package main

import (
	"fmt"
	"os"

	"github.com/rhos-infra/cibyl/v1/internal/errors"
	"github.com/rhos-infra/cibyl/v1/internal/ui"
)

func main() {
	app := initCli()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ui.Red(err.Error()))
		os.Exit(errors.ExitCode(err))
	}
}
