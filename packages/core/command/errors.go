package command

import (
	"errors"
	"fmt"
)

var (
	ErrUsage               = errors.New("usage error")
	ErrInvalidURL          = errors.New("invalid URL")
	ErrInvalidKeyValuePair = errors.New("invalid key=value pair")
)

// ArgumentError describes a rejected command line argument. Kind is one of
// the package sentinels and is what errors.Is matches against.
type ArgumentError struct {
	Kind    error
	Arg     string
	Message string
}

func (e *ArgumentError) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("%v %q: %s", e.Kind, e.Arg, e.Message)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

func usageError(format string, args ...any) error {
	return &ArgumentError{Kind: ErrUsage, Message: fmt.Sprintf(format, args...)}
}

// IsArgumentError reports whether err was raised while parsing the command
// line.
func IsArgumentError(err error) bool {
	var argErr *ArgumentError
	return errors.As(err, &argErr)
}
