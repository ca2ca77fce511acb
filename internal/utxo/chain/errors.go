// Package chain holds the error taxonomy shared by block sources, checkpoint stores and the reporter.
package chain

import (
	"context"
	"errors"
)

var (
	// ErrTransient marks a recoverable fetch failure.
	ErrTransient = errors.New("transient source error")
	// ErrBlockNotFound marks a height the source has not produced yet. It is transient.
	ErrBlockNotFound error = &notFoundError{}
	// ErrFatal marks a source failure retries cannot fix.
	ErrFatal = errors.New("fatal source error")
	// ErrStorageUnavailable marks an unreadable, malformed or unwritable checkpoint.
	ErrStorageUnavailable = errors.New("checkpoint storage unavailable")
)

type notFoundError struct{}

func (*notFoundError) Error() string { return "block not found" }

func (*notFoundError) Is(target error) bool { return target == ErrTransient }

// IsRetryable reports whether a fetch error should be retried after a backoff.
// Everything except cancellation and ErrFatal is retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !errors.Is(err, ErrFatal)
}
