package validator

import (
	"github.com/rhos-infra/cibyl/v1/internal/models"
	"github.com/sirupsen/logrus"
)

// Stage is one pass of the environment -> system filter. Checks returning
// false exclude the environment or system, and the matching message is
// logged at debug level with its name. EnvironmentMsg may be empty when
// EnvironmentCheck accepts every environment.
type Stage struct {
	Name string

	EnvironmentCheck func(env *models.Environment) bool
	SystemCheck      func(system *models.System) bool

	EnvironmentMsg string
	SystemMsg      string
}

func anyEnvironment(*models.Environment) bool {
	return true
}

// Filter applies the stage to envs. An environment whose check fails is
// skipped along with all of its systems. Environments left with no systems
// are dropped. The returned environments are new records holding only the
// surviving systems, so envs itself is never narrowed; systems and sources are
// shared with the input.
func (s Stage) Filter(envs models.Environments, logger logrus.Ext1FieldLogger) (models.Environments, models.Systems) {
	logger = logger.WithField("stage", s.Name)

	var filteredEnvs models.Environments
	var filteredSystems models.Systems
	for _, env := range envs {
		if !s.EnvironmentCheck(env) {
			logger.Debugf(s.EnvironmentMsg, env.Name)
			continue
		}

		var survivors models.Systems
		for _, system := range env.Systems {
			if !s.SystemCheck(system) {
				logger.Debugf(s.SystemMsg, system.Name)
				continue
			}
			survivors = append(survivors, system)
		}

		if len(survivors) == 0 {
			logger.Debugf("environment %s has no systems left", env.Name)
			continue
		}
		filteredEnvs = append(filteredEnvs, env.WithSystems(survivors))
		filteredSystems = append(filteredSystems, survivors...)
	}
	return filteredEnvs, filteredSystems
}
