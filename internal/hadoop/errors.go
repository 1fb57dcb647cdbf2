package hadoop

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField = errors.New("missing config field")
	ErrInvalidField = errors.New("invalid config field")
)

// MissingFieldError names a config key a site document needs but the
// component does not set.
type MissingFieldError struct {
	Site string
	Key  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: config.%s is required", e.Site, e.Key)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

type InvalidFieldError struct {
	Site   string
	Key    string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: config.%s %s", e.Site, e.Key, e.Reason)
}

func (e *InvalidFieldError) Unwrap() error {
	return ErrInvalidField
}
