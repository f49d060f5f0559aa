package errs

import "fmt"

// Wrap chains ext onto base so both remain matchable with errors.Is.
func Wrap(base, ext error) error {
	if ext == nil {
		return base
	}

	return fmt.Errorf("%w: %w", base, ext)
}

// Wrapf annotates base with a formatted detail string.
func Wrapf(base error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...))
}
