package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/moby/sys/mountinfo"
	"github.com/rhos-infra/cibyl/v1/internal/errors"
	"github.com/rhos-infra/cibyl/v1/internal/meta"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Finder locates the configuration file to load.
type Finder struct {
	Fs     afero.Fs
	Logger logrus.Ext1FieldLogger

	// Home is the user's home directory, resolved with go-homedir when empty
	Home string

	// IsMountPoint stops the upward search, defaults to mountinfo.Mounted
	IsMountPoint func(path string) (bool, error)
}

func NewFinder(fs afero.Fs, logger logrus.Ext1FieldLogger) *Finder {
	return &Finder{
		Fs:           fs,
		Logger:       logger,
		IsMountPoint: mountinfo.Mounted,
	}
}

// Find returns explicit when set. Otherwise it walks from cwd up to the
// first mount point looking for cibyl.yaml or .cibyl/cibyl.yaml, then falls
// back to the user and system configuration directories.
func (f *Finder) Find(explicit string, cwd string) (string, error) {
	if explicit != "" {
		exists, err := afero.Exists(f.Fs, explicit)
		if err != nil {
			return "", errors.WithStackTrace(err)
		}
		if !exists {
			return "", errors.WithStackTrace(fmt.Errorf("config file %s does not exist", explicit))
		}
		return explicit, nil
	}

	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", errors.WithStackTrace(err)
	}
	for {
		for _, candidate := range []string{
			filepath.Join(dir, meta.ConfigFileName),
			filepath.Join(dir, meta.ConfigDirPrefix, meta.ConfigFileName),
		} {
			f.Logger.Tracef("looking for config in %s", candidate)
			exists, err := afero.Exists(f.Fs, candidate)
			if err != nil {
				return "", errors.WithStackTrace(err)
			}
			if exists {
				return candidate, nil
			}
		}

		mounted, err := f.IsMountPoint(dir)
		if err != nil {
			return "", errors.WithStackTraceAndPrefix(err, "checking mount point %s", dir)
		}
		parent := filepath.Dir(dir)
		if mounted || parent == dir {
			f.Logger.Debugf("stopped config search at %s", dir)
			break
		}
		dir = parent
	}

	home := f.Home
	if home == "" {
		home, err = homedir.Dir()
		if err != nil {
			return "", errors.WithStackTrace(err)
		}
	}
	for _, candidate := range []string{
		filepath.Join(home, meta.UserConfigDir, meta.ConfigFileName),
		filepath.Join(meta.SystemConfigDir, meta.ConfigFileName),
	} {
		exists, err := afero.Exists(f.Fs, candidate)
		if err != nil {
			return "", errors.WithStackTrace(err)
		}
		if exists {
			return candidate, nil
		}
	}
	return "", errors.WithStackTrace(fmt.Errorf("couldn't find %s, searched from %s", meta.ConfigFileName, cwd))
}
