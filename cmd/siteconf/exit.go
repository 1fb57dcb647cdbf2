package main

import (
	"errors"

	"github.com/bayneri/siteconf/internal/export/sitexml"
	"github.com/bayneri/siteconf/internal/hadoop"
	"github.com/bayneri/siteconf/internal/siteconfig"
)

const (
	exitOK             = 0
	exitFailure        = 1
	exitUsage          = 2
	exitInputNotFound  = 3
	exitInvalidInput   = 4
	exitRecordNotFound = 5
	exitInvalidField   = 6
	exitWriteFailure   = 7
)

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error {
	return e.err
}

func (e exitError) ExitCode() int {
	if e.code == 0 {
		return exitFailure
	}
	return e.code
}

func usageError(err error) error {
	return exitError{code: exitUsage, err: err}
}

// exitCode maps an error to the process exit status. Document level kinds
// are checked before selection kinds.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var coded exitError
	switch {
	case errors.As(err, &coded):
		return coded.ExitCode()
	case errors.Is(err, siteconfig.ErrInvalidExecutionID), errors.Is(err, siteconfig.ErrInvalidOverride):
		return exitUsage
	case errors.Is(err, siteconfig.ErrInputNotFound):
		return exitInputNotFound
	case errors.Is(err, siteconfig.ErrParse), errors.Is(err, siteconfig.ErrInvalidDocument):
		return exitInvalidInput
	case errors.Is(err, siteconfig.ErrRecordNotFound), errors.Is(err, siteconfig.ErrDuplicateRecord):
		return exitRecordNotFound
	case errors.Is(err, hadoop.ErrMissingField), errors.Is(err, hadoop.ErrInvalidField):
		return exitInvalidField
	case errors.Is(err, sitexml.ErrWriteFailure):
		return exitWriteFailure
	}
	return exitFailure
}
