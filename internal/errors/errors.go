// Package errors contains helpers for wrapping errors with stack traces and
// for mapping errors to process exit codes.
package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
	"github.com/urfave/cli/v2"
)

// ExitCodeGeneric is returned for errors that do not carry their own exit status.
const ExitCodeGeneric = 1

// IErrorCode is implemented by errors that know which exit status the process
// should terminate with.
type IErrorCode interface {
	ExitStatus() (int, error)
}

// ErrorWithExitCode is used to specify the process exit code for an error.
type ErrorWithExitCode struct {
	Err      error
	ExitCode int
}

func (err ErrorWithExitCode) Error() string {
	return err.Err.Error()
}

func (err ErrorWithExitCode) Unwrap() error {
	return err.Err
}

func (err ErrorWithExitCode) ExitStatus() (int, error) {
	return err.ExitCode, nil
}

// Errorf creates a new error and wraps it in an Error type that contains the stack trace.
func Errorf(message string, args ...interface{}) error {
	err := fmt.Errorf(message, args...)
	return goerrors.Wrap(err, 1)
}

// WithStackTrace wraps the given error in an Error type that contains the stack trace. If the given error already has
// a stack trace, it is used directly. If the given error is nil, return nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return goerrors.Wrap(err, 1)
}

// WithStackTraceAndPrefix wraps the given error in an Error type that contains the stack trace and has the given
// message prepended as part of the error message.
func WithStackTraceAndPrefix(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	return goerrors.WrapPrefix(err, fmt.Sprintf(message, args...), 1)
}

// PrintErrorWithStackTrace converts the given error to a string, including the stack trace if available.
func PrintErrorWithStackTrace(err error) string {
	if err == nil {
		return ""
	}

	var goError *goerrors.Error
	if errors.As(err, &goError) {
		return goError.ErrorStack()
	}
	return err.Error()
}

// ExitCode returns the exit status carried by err, or ExitCodeGeneric.
func ExitCode(err error) int {
	var coded IErrorCode
	if errors.As(err, &coded) {
		code, e := coded.ExitStatus()
		if e == nil {
			return code
		}
	}
	return ExitCodeGeneric
}

// Recover tries to recover from panics, and if it succeeds, calls the given onPanic function with an error that
// explains the cause of the panic. This function should only be called from a defer statement.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec)
		}

		onPanic(WithStackTrace(err))
	}
}

// WithPanicHandling wraps a cli action so a panic is returned as an error with a stack trace.
func WithPanicHandling(action func(c *cli.Context) error) func(c *cli.Context) error {
	return func(context *cli.Context) (err error) {
		defer Recover(func(cause error) {
			err = cause
		})

		return action(context)
	}
}
