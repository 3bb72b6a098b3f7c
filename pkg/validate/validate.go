package validate

import "github.com/pkg/errors"

// That returns nil when cond holds and an error wrapping ErrInvalidArgument otherwise.
func That(cond bool, format string, args ...interface{}) error {
	if cond {
		return nil
	}

	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

var (
	ErrInvalidArgument = errors.New("invalid argument")
)
