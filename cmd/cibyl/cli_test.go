package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rhos-infra/cibyl/v1/internal/meta"
	"github.com/rhos-infra/cibyl/v1/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
environments:
  env:
    system3:
      system_type: jenkins
    system4:
      system_type: zuul
  env1:
    system1:
      system_type: zuul
      sources:
        zuul:
          driver: zuul
        zuul2:
          driver: zuul
`

func runCli(t *testing.T, arguments ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cibyl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	out := &bytes.Buffer{}
	app := initCli()
	app.Writer = out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"cibyl", "--config", path, "--color", "never"}, arguments...))
	return out.String(), err
}

func TestCli_Envs(t *testing.T) {
	out, err := runCli(t, "--envs", "env")
	require.NoError(t, err)

	assert.Contains(t, out, "Environment: env\n")
	assert.Contains(t, out, "System: system3 (jenkins)")
	assert.Contains(t, out, "System: system4 (zuul)")
	assert.NotContains(t, out, "env1")
}

func TestCli_Sources(t *testing.T) {
	out, err := runCli(t, "--sources", "zuul", "--show-disabled")
	require.NoError(t, err)

	assert.Contains(t, out, "Environment: env1\n")
	assert.Contains(t, out, "- zuul (driver: zuul, priority: -1)\n        Enabled: true")
	assert.Contains(t, out, "- zuul2 (driver: zuul, priority: -1)\n        Enabled: false")
	assert.NotContains(t, out, "system3")
}

func TestCli_VerboseAndVersion(t *testing.T) {
	out, err := runCli(t, "--verbose", "--verbose", "--envs", "env1")
	require.NoError(t, err)
	assert.Contains(t, out, "Environment: env1\n")

	out, err = runCli(t, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, meta.AppVersion)
	assert.NotContains(t, out, "Environment:")
}

func TestCli_InvalidEnvironment(t *testing.T) {
	_, err := runCli(t, "--envs", "unknown")

	var target *validator.InvalidEnvironmentError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "unknown", target.Name)
}

func TestCli_NoValidSystem(t *testing.T) {
	_, err := runCli(t, "--system-type", "unk")

	var target *validator.NoValidSystemError
	assert.True(t, errors.As(err, &target))
}

func TestCli_MissingConfig(t *testing.T) {
	app := initCli()
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run([]string{"cibyl", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorContains(t, err, "does not exist")
}
