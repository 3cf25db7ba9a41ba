// Package validator narrows the configured environments down to the systems
// and sources selected by the user.
package validator

import (
	"github.com/rhos-infra/cibyl/v1/internal/args"
	"github.com/rhos-infra/cibyl/v1/internal/models"
	"github.com/sirupsen/logrus"
)

type Option func(*Validator)

func WithLogger(logger logrus.Ext1FieldLogger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

type Validator struct {
	logger logrus.Ext1FieldLogger
}

func New(opts ...Option) *Validator {
	v := &Validator{
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Result is the outcome of a successful validation.
type Result struct {
	// Environments holds the selected environments, each with only its
	// selected systems
	Environments models.Environments

	// DisabledSources lists the sources disabled because they were not
	// requested with the sources filter
	DisabledSources models.Sources
}

// Validate filters envs by the user arguments in three passes: name and type
// consistency, enablement, and source availability. Each pass works on the
// survivors of the previous one and an empty pass fails with its own error.
//
// Disabling sources and force enabling systems named by the systems filter
// mutate the shared System and Source objects; the environments in envs are
// not narrowed.
func (v *Validator) Validate(envs models.Environments, arguments args.Arguments) (*Result, error) {
	allSystems := envs.Systems()
	envNames := envs.Names()
	systemNames := allSystems.Names()

	err := checkInput(envNames, arguments, args.Envs, func(name string, valid []string) error {
		return &InvalidEnvironmentError{Name: name, Valid: valid}
	})
	if err != nil {
		return nil, err
	}
	err = checkInput(systemNames, arguments, args.Systems, func(name string, valid []string) error {
		return &InvalidSystemError{Name: name, Valid: valid}
	})
	if err != nil {
		return nil, err
	}

	consistency := Stage{
		Name: "consistency",
		EnvironmentCheck: func(env *models.Environment) bool {
			return IsEnvironmentConsistent(env, arguments)
		},
		SystemCheck: func(system *models.System) bool {
			return IsSystemConsistent(system, arguments)
		},
		EnvironmentMsg: "environment %s is not consistent with user input",
		SystemMsg:      "system %s is not consistent with user input",
	}
	userEnvs, userSystems := consistency.Filter(envs, v.logger)
	if len(userSystems) == 0 {
		return nil, &NoValidSystemError{Systems: systemNames}
	}

	enableSystems(userSystems, arguments)

	enablement := Stage{
		Name:             "enablement",
		EnvironmentCheck: anyEnvironment,
		SystemCheck:      IsSystemEnabled,
		SystemMsg:        "system %s is disabled",
	}
	userEnvs, userSystems = enablement.Filter(userEnvs, v.logger)
	if len(userSystems) == 0 {
		return nil, &NoEnabledSystemError{}
	}

	var disabled models.Sources
	sources := Stage{
		Name:             "sources",
		EnvironmentCheck: anyEnvironment,
		SystemCheck: func(system *models.System) bool {
			ok, unused := SystemHasValidSources(system, arguments)
			disabled = append(disabled, unused...)
			return ok
		},
		SystemMsg: "system %s has no sources consistent with user input",
	}
	userEnvs, userSystems = sources.Filter(userEnvs, v.logger)
	if len(userSystems) == 0 {
		return nil, &NoValidSourcesError{Sources: allSystems.SourceNames()}
	}

	v.logger.Debugf("selected %d systems across %d environments", len(userSystems), len(userEnvs))
	return &Result{
		Environments:    userEnvs,
		DisabledSources: disabled,
	}, nil
}
