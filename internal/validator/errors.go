package validator

import (
	"fmt"
	"strings"
)

// ExitCodeSelection is the process exit status for errors caused by the
// user's selection of environments, systems or sources.
const ExitCodeSelection = 2

// InvalidEnvironmentError is returned when the user asks for an environment
// that is not present in the configuration.
type InvalidEnvironmentError struct {
	Name  string
	Valid []string
}

func (e *InvalidEnvironmentError) Error() string {
	return fmt.Sprintf("environment '%s' is not present in the configuration, valid environments are: %s",
		e.Name, strings.Join(e.Valid, ", "))
}

func (e *InvalidEnvironmentError) ExitStatus() (int, error) {
	return ExitCodeSelection, nil
}

// InvalidSystemError is returned when the user asks for a system that is not
// present in the configuration.
type InvalidSystemError struct {
	Name  string
	Valid []string
}

func (e *InvalidSystemError) Error() string {
	return fmt.Sprintf("system '%s' is not present in the configuration, valid systems are: %s",
		e.Name, strings.Join(e.Valid, ", "))
}

func (e *InvalidSystemError) ExitStatus() (int, error) {
	return ExitCodeSelection, nil
}

// NoValidSystemError is returned when no system matches the name and type
// filters. Systems holds every configured system name.
type NoValidSystemError struct {
	Systems []string
}

func (e *NoValidSystemError) Error() string {
	return fmt.Sprintf("no system matches the requested filters, configured systems are: %s",
		strings.Join(e.Systems, ", "))
}

func (e *NoValidSystemError) ExitStatus() (int, error) {
	return ExitCodeSelection, nil
}

// NoEnabledSystemError is returned when every selected system is disabled.
type NoEnabledSystemError struct{}

func (e *NoEnabledSystemError) Error() string {
	return "no enabled system found, enable one in the configuration or select it with --systems"
}

func (e *NoEnabledSystemError) ExitStatus() (int, error) {
	return ExitCodeSelection, nil
}

// NoValidSourcesError is returned when none of the selected systems has one of
// the requested sources. Sources holds every configured source name.
type NoValidSourcesError struct {
	Sources []string
}

func (e *NoValidSourcesError) Error() string {
	return fmt.Sprintf("no system has any of the requested sources, configured sources are: %s",
		strings.Join(e.Sources, ", "))
}

func (e *NoValidSourcesError) ExitStatus() (int, error) {
	return ExitCodeSelection, nil
}
