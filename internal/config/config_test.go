package config

import (
	"testing"

	"github.com/rhos-infra/cibyl/v1/internal/models"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
environments:
  env:
    system3:
      system_type: jenkins
      sources:
        jenkins:
          driver: jenkins
          priority: 2
      jobs: [job_a, job_b]
    system4:
      system_type: zuul
      enabled: false
  env1:
    system1:
      extends: zuul-base
      sources:
        zuul:
          driver: zuul
        zuul2:
          driver: zuul
          enabled: false
templates:
  zuul-base:
    system_type: zuul
    jobs: [tempest]
`

func newLogger() logrus.Ext1FieldLogger {
	logger, _ := logtest.NewNullLogger()
	return logger
}

func writeConfig(t *testing.T, fs afero.Fs, path string, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestLoadEnvironments(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/work/cibyl.yaml", sampleConfig)

	envs, err := LoadEnvironments(fs, "/work/cibyl.yaml", newLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"env", "env1"}, envs.Names())
	assert.Equal(t, []string{"system3", "system4"}, envs[0].SystemNames())

	system3 := envs[0].Systems[0]
	assert.Equal(t, models.SystemTypeJenkins, system3.SystemType)
	assert.True(t, system3.IsEnabled())
	require.Len(t, system3.Sources, 1)
	assert.Equal(t, "jenkins", system3.Sources[0].Driver)
	assert.Equal(t, 2, system3.Sources[0].Priority)
	require.Len(t, system3.Jobs, 2)
	assert.Equal(t, "job_b", system3.Jobs[1].Name)

	system4 := envs[0].Systems[1]
	assert.False(t, system4.IsEnabled())
	assert.Empty(t, system4.Sources)

	system1 := envs[1].Systems[0]
	assert.Equal(t, models.SystemTypeZuul, system1.SystemType)
	assert.Equal(t, []string{"zuul", "zuul2"}, system1.SourceNames())
	assert.Equal(t, models.DefaultSourcePriority, system1.Sources[0].Priority)
	assert.True(t, system1.Sources[0].IsEnabled())
	assert.False(t, system1.Sources[1].IsEnabled())
	require.Len(t, system1.Jobs, 1)
	assert.Equal(t, "tempest", system1.Jobs[0].Name)
}

func TestLoadEnvironments_PreservesOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/cibyl.yaml", `
environments:
  zeta:
    b: {system_type: zuul}
    a: {system_type: jenkins}
  alpha:
    c: {system_type: zuul}
`)

	envs, err := LoadEnvironments(fs, "/cibyl.yaml", newLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha"}, envs.Names())
	assert.Equal(t, []string{"b", "a", "c"}, envs.Systems().Names())
}

func TestLoadEnvironments_SourceDriverDefaultsToName(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/cibyl.yaml", `
environments:
  env:
    system:
      system_type: jenkins
      sources:
        jenkins: {}
`)

	envs, err := LoadEnvironments(fs, "/cibyl.yaml", newLogger())
	require.NoError(t, err)
	assert.Equal(t, "jenkins", envs[0].Systems[0].Sources[0].Driver)
}

func TestLoadEnvironments_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			name:    "invalid system type",
			content: "environments:\n  env:\n    system:\n      system_type: travis\n",
			message: "invalid system_type 'travis'",
		},
		{
			name:    "unknown template",
			content: "environments:\n  env:\n    system:\n      extends: nope\n",
			message: "extends unknown template 'nope'",
		},
		{
			name:    "no environments",
			content: "templates: {}\n",
			message: "defines no environments",
		},
		{
			name:    "environments not a mapping",
			content: "environments: [env]\n",
			message: "expected a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeConfig(t, fs, "/cibyl.yaml", tt.content)

			_, err := LoadEnvironments(fs, "/cibyl.yaml", newLogger())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/missing.yaml", newLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file /missing.yaml")
}

func newFinder(fs afero.Fs) *Finder {
	f := NewFinder(fs, newLogger())
	f.Home = "/home/user"
	f.IsMountPoint = func(path string) (bool, error) {
		return path == "/mnt", nil
	}
	return f
}

func TestFinder_Find(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		explicit string
		cwd      string
		expected string
	}{
		{
			name:     "explicit",
			files:    []string{"/elsewhere/custom.yaml", "/work/cibyl.yaml"},
			explicit: "/elsewhere/custom.yaml",
			cwd:      "/work",
			expected: "/elsewhere/custom.yaml",
		},
		{
			name:     "working directory",
			files:    []string{"/work/cibyl.yaml"},
			cwd:      "/work",
			expected: "/work/cibyl.yaml",
		},
		{
			name:     "hidden directory",
			files:    []string{"/work/.cibyl/cibyl.yaml"},
			cwd:      "/work",
			expected: "/work/.cibyl/cibyl.yaml",
		},
		{
			name:     "parent directory",
			files:    []string{"/work/cibyl.yaml"},
			cwd:      "/work/a/b",
			expected: "/work/cibyl.yaml",
		},
		{
			name:     "stops at mount point",
			files:    []string{"/cibyl.yaml", "/home/user/.config/cibyl/cibyl.yaml"},
			cwd:      "/mnt/project",
			expected: "/home/user/.config/cibyl/cibyl.yaml",
		},
		{
			name:     "system directory",
			files:    []string{"/etc/cibyl/cibyl.yaml"},
			cwd:      "/mnt",
			expected: "/etc/cibyl/cibyl.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for _, file := range tt.files {
				writeConfig(t, fs, file, "environments: {}\n")
			}

			path, err := newFinder(fs).Find(tt.explicit, tt.cwd)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}
}

func TestFinder_FindErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := newFinder(fs).Find("/missing.yaml", "/work")
	assert.ErrorContains(t, err, "does not exist")

	_, err = newFinder(fs).Find("", "/work")
	assert.ErrorContains(t, err, "couldn't find cibyl.yaml")
}
