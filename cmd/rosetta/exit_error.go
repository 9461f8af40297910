package main

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-rosetta"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitNoPack   = 3
	exitNoKey    = 4
	exitBadInput = 5
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitError attaches the exit code matching the kind of a library error
func exitError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	return &ExitError{Code: exitCodeFor(err), Err: err}
}

func exitCodeFor(err error) int {
	switch rosetta.ErrorKind(err) {
	case "":
		return exitOK
	case "locale_parse", "not_configured":
		return exitUsage
	case "directory_unavailable", "file_not_found", "file_unreadable":
		return exitNoPack
	case "key_not_found", "invalid_key":
		return exitNoKey
	case "pack_malformed", "invalid_color_spec":
		return exitBadInput
	default:
		return exitFailure
	}
}
