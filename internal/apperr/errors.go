package apperr

import "errors"

var (
	// ErrNoSources means the links directory contained no source files.
	ErrNoSources = errors.New("no source files")
	// ErrValidationFailed means at least one error was found in a run;
	// no catalog is written.
	ErrValidationFailed = errors.New("validation failed")
)
