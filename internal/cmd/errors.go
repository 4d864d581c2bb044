package cmd

import (
	"errors"
)

// Exit codes returned by the tailseek binary.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitNotFound = 2
)

// ErrNotFound is reported when a search ends without locating the goal.
var ErrNotFound = errors.New("file not found")

// ExitError carries the process exit code for an error.
// Silent errors have already been reported to the user.
type ExitError struct {
	Code   int
	Err    error
	Silent bool
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsSilent reports whether err was already shown to the user.
func IsSilent(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Silent
}
