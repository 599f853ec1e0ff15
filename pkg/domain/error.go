package domain

import (
	"errors"
	"fmt"
)

// FailReason classifies why a source call failed
type FailReason string

// source failure reasons
const (
	ReasonUnavailable     FailReason = "unavailable"
	ReasonTimeout         FailReason = "timeout"
	ReasonUnauthenticated FailReason = "unauthenticated"
	ReasonBadResponse     FailReason = "bad-response"
)

// SourceError marks a recoverable source failure. Adapters return it for
// network errors, timeouts, missing credentials and bad responses; the
// aggregation boundary resolves these with fallback data instead of
// surfacing them. Any other error type is treated as genuine and becomes
// the section error in the store.
type SourceError struct {
	Source string
	Reason FailReason
	Err    error
}

func (e *SourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("source %s failed: %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("source %s failed (%s): %v", e.Source, e.Reason, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// NewSourceError creates a recoverable source failure
func NewSourceError(source string, reason FailReason, err error) *SourceError {
	return &SourceError{Source: source, Reason: reason, Err: err}
}

// IsSourceError reports whether err is a recoverable source failure
func IsSourceError(err error) bool {
	var se *SourceError
	return errors.As(err, &se)
}

// ResolveWithFallback substitutes fallback items for recoverable source
// failures. Genuine errors pass through untouched.
func ResolveWithFallback(items []ContentItem, err error, fallback func() []ContentItem) ([]ContentItem, error) {
	if err == nil {
		return items, nil
	}
	if IsSourceError(err) {
		return fallback(), nil
	}
	return nil, err
}
