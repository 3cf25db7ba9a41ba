// Package printer renders environment trees for the terminal.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/rhos-infra/cibyl/v1/internal/models"
	"github.com/rhos-infra/cibyl/v1/internal/ui"
)

const indentation = "  "

type Printer struct {
	out io.Writer

	// ShowDisabled includes disabled sources in the output
	ShowDisabled bool
}

func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) line(depth int, format string, args ...interface{}) {
	fmt.Fprintf(p.out, "%s%s\n", strings.Repeat(indentation, depth), fmt.Sprintf(format, args...))
}

func (p *Printer) PrintEnvironments(envs models.Environments) {
	for _, env := range envs {
		p.PrintEnvironment(env)
	}
}

func (p *Printer) PrintEnvironment(env *models.Environment) {
	p.line(0, "%s: %s", ui.Blue("Environment"), ui.Bold(env.Name))
	for _, system := range env.Systems {
		p.printSystem(1, system)
	}
}

func (p *Printer) printSystem(depth int, system *models.System) {
	p.line(depth, "%s: %s %s", ui.HiCyan("System"), ui.Bold(system.Name), ui.Grey("("+system.SystemType+")"))
	p.line(depth+1, "%s: %s", ui.Grey("Enabled"), ui.Bool(system.IsEnabled()))

	sources := system.EnabledSources()
	if p.ShowDisabled {
		sources = system.Sources
	}
	if len(sources) > 0 {
		p.line(depth+1, "%s:", ui.Yellow("Sources"))
		for _, source := range sources {
			p.line(depth+2, "- %s %s", source.Name,
				ui.Grey(fmt.Sprintf("(driver: %s, priority: %d)", source.Driver, source.Priority)))
			if p.ShowDisabled {
				p.line(depth+3, "%s: %s", ui.Grey("Enabled"), ui.Bool(source.IsEnabled()))
			}
		}
	}

	if len(system.Jobs) > 0 {
		p.line(depth+1, "%s:", ui.Yellow("Jobs"))
		for _, job := range system.Jobs {
			p.line(depth+2, "- %s", job.Name)
		}
	}
}
