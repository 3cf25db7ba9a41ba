package config

import (
	"fmt"

	"github.com/imdario/mergo"
	"github.com/rhos-infra/cibyl/v1/internal/errors"
	"github.com/rhos-infra/cibyl/v1/internal/models"
	"github.com/rhos-infra/cibyl/v1/internal/x"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads and decodes the configuration file at path.
func Load(fs afero.Fs, path string, logger logrus.Ext1FieldLogger) (*Config, error) {
	logger.Debugf("reading config file %s", path)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "reading config file %s", path)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "parsing config file %s", path)
	}
	logger.Tracef("loaded config: %v", cfg)
	return cfg, nil
}

// Build creates the environment tree described by the configuration.
func (c *Config) Build() (models.Environments, error) {
	var envs models.Environments
	for _, envEntry := range c.Environments {
		env := models.NewEnvironment(envEntry.Key)
		for _, systemEntry := range envEntry.Value {
			system, err := c.buildSystem(envEntry.Key, systemEntry.Key, systemEntry.Value)
			if err != nil {
				return nil, err
			}
			env.AddSystem(system)
		}
		envs = append(envs, env)
	}
	return envs, nil
}

func (c *Config) buildSystem(envName string, name string, cfg SystemConfig) (*models.System, error) {
	if cfg.Extends != "" {
		template, ok := c.Templates[cfg.Extends]
		if !ok {
			return nil, errors.Errorf("system %s.%s extends unknown template '%s'", envName, name, cfg.Extends)
		}
		if err := mergo.Merge(&cfg, template); err != nil {
			return nil, errors.WithStackTraceAndPrefix(err, "merging template %s into system %s.%s", cfg.Extends, envName, name)
		}
	}

	if !x.Contains(models.SystemTypes, cfg.SystemType) {
		return nil, errors.Errorf("system %s.%s has invalid system_type '%s', expected one of %v",
			envName, name, cfg.SystemType, models.SystemTypes)
	}

	system := models.NewSystem(name, cfg.SystemType)
	if cfg.Enabled != nil && !*cfg.Enabled {
		system.Disable()
	}
	for _, sourceEntry := range cfg.Sources {
		system.AddSource(buildSource(sourceEntry.Key, sourceEntry.Value))
	}
	for _, job := range cfg.Jobs {
		system.AddJob(&models.Job{Name: job})
	}
	return system, nil
}

func buildSource(name string, cfg SourceConfig) *models.Source {
	source := models.NewSource(name, cfg.Driver)
	if cfg.Priority != nil {
		source.Priority = *cfg.Priority
	}
	if cfg.Enabled != nil && !*cfg.Enabled {
		source.Disable()
	}
	return source
}

// LoadEnvironments loads the configuration at path and builds its environment tree.
func LoadEnvironments(fs afero.Fs, path string, logger logrus.Ext1FieldLogger) (models.Environments, error) {
	cfg, err := Load(fs, path, logger)
	if err != nil {
		return nil, err
	}
	envs, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if len(envs) == 0 {
		return nil, errors.WithStackTrace(fmt.Errorf("config file %s defines no environments", path))
	}
	return envs, nil
}
