package validator

import (
	"github.com/rhos-infra/cibyl/v1/internal/args"
	"github.com/rhos-infra/cibyl/v1/internal/models"
	"github.com/rhos-infra/cibyl/v1/internal/x"
)

// checkInput verifies that every value the user gave for the named argument
// is one of valid. It fails on the first unknown value.
func checkInput(valid []string, arguments args.Arguments, name string, newErr func(name string, valid []string) error) error {
	requested, ok := arguments.Values(name)
	if !ok {
		return nil
	}
	for _, value := range requested {
		if !x.Contains(valid, value) {
			return newErr(value, valid)
		}
	}
	return nil
}

// IsEnvironmentConsistent reports whether env is selected by the envs filter.
func IsEnvironmentConsistent(env *models.Environment, arguments args.Arguments) bool {
	envs, ok := arguments.Values(args.Envs)
	if !ok {
		return true
	}
	return x.Contains(envs, env.Name)
}

// IsSystemConsistent reports whether system is selected by both the
// system_type and the systems filters.
func IsSystemConsistent(system *models.System, arguments args.Arguments) bool {
	if types, ok := arguments.Values(args.SystemType); ok && !x.Contains(types, system.SystemType) {
		return false
	}
	if systems, ok := arguments.Values(args.Systems); ok && !x.Contains(systems, system.Name) {
		return false
	}
	return true
}

func IsSystemEnabled(system *models.System) bool {
	return system.IsEnabled()
}

// SystemHasValidSources reports whether at least one of the requested sources
// exists on system. Every source of system that was not requested is disabled,
// whatever the outcome, and returned.
func SystemHasValidSources(system *models.System, arguments args.Arguments) (bool, models.Sources) {
	requested, ok := arguments.Values(args.Sources)
	if !ok {
		return true, nil
	}

	var unused models.Sources
	for _, source := range system.Sources {
		if !x.Contains(requested, source.Name) {
			unused = append(unused, source)
		}
	}
	for _, source := range unused {
		source.Disable()
	}

	return x.Intersects(requested, system.SourceNames()), unused
}

// enableSystems force enables every system named by the systems filter.
func enableSystems(systems models.Systems, arguments args.Arguments) {
	requested, ok := arguments.Values(args.Systems)
	if !ok {
		return
	}
	for _, system := range systems {
		if x.Contains(requested, system.Name) {
			system.Enable()
		}
	}
}
