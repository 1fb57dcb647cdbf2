package siteconfig

import "errors"

var (
	ErrInputNotFound      = errors.New("site config not readable")
	ErrParse              = errors.New("malformed site config")
	ErrInvalidDocument    = errors.New("invalid site config")
	ErrRecordNotFound     = errors.New("lightweight component not found")
	ErrDuplicateRecord    = errors.New("duplicate execution_id")
	ErrInvalidExecutionID = errors.New("invalid execution id")
	ErrInvalidOverride    = errors.New("invalid override")
)
