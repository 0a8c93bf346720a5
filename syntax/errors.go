package syntax

import (
	"errors"
	"fmt"
)

// Programmer errors, grounded on task/errors.go's typed-error-with-Unwrap
// pattern: each is a fail-fast condition raised via panic so a deferred
// recover can still errors.As/errors.Is against it.
var (
	// ErrWrongNodeVariant is panicked when a token-only or layout-only
	// accessor is called on a node of the other variant.
	ErrWrongNodeVariant = errors.New("syntax: accessor called on wrong node variant")

	// ErrChildIndexOutOfRange is panicked by ReplaceChildAt when cursor is
	// outside [0, len(children)).
	ErrChildIndexOutOfRange = errors.New("syntax: child index out of range")
)

// WrapError wraps an error with a message and cause chain, matching
// errors.Is(result, cause) == true. Mirrors task.WrapError.
func WrapError(message string, cause error) error {
	return fmt.Errorf("%s: %w", message, cause)
}
