package args

import (
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	Envs       = "envs"
	Systems    = "systems"
	SystemType = "system_type"
	Sources    = "sources"
)

// Argument is a single user supplied filter and the values given for it.
type Argument struct {
	Name  string
	Value []string
}

func NewArgument(name string, value ...string) *Argument {
	return &Argument{
		Name:  name,
		Value: value,
	}
}

// Arguments maps a filter name to the Argument the user supplied for it.
// A missing key means the user did not constrain that dimension.
type Arguments map[string]*Argument

func (a Arguments) Add(arg *Argument) Arguments {
	a[arg.Name] = arg
	return a
}

// Get returns the argument registered under name, if any. An argument may be
// present with an empty value.
func (a Arguments) Get(name string) (*Argument, bool) {
	arg, ok := a[name]
	if !ok || arg == nil {
		return nil, false
	}
	return arg, true
}

// Values returns the requested values for name, and whether the user
// constrained that dimension with at least one value.
func (a Arguments) Values(name string) ([]string, bool) {
	arg, ok := a.Get(name)
	if !ok || len(arg.Value) == 0 {
		return nil, false
	}
	return arg.Value, true
}

// flags maps the cli flag name to the filter it populates
var flags = map[string]string{
	"envs":        Envs,
	"systems":     Systems,
	"system-type": SystemType,
	"sources":     Sources,
}

// FromCLI builds the filter set from the flags the user explicitly set.
// Comma separated values are split, so `--envs a,b` and `--envs a --envs b`
// are equivalent.
func FromCLI(ctx *cli.Context) Arguments {
	arguments := Arguments{}
	for flag, name := range flags {
		if !ctx.IsSet(flag) {
			continue
		}
		var values []string
		for _, v := range ctx.StringSlice(flag) {
			for _, item := range strings.Split(v, ",") {
				item = strings.TrimSpace(item)
				if item != "" {
					values = append(values, item)
				}
			}
		}
		arguments.Add(NewArgument(name, values...))
	}
	return arguments
}
