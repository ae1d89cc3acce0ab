package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUpstream     = errors.New("upstream failure")
)

// ConflictError represents a resource conflict with details about the existing resource
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // Type of resource (project, section, identity)
	ResourceID   string // ID of the existing/conflicting resource
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// UpstreamKind classifies failures of the external LLM / export capabilities.
type UpstreamKind string

const (
	// UpstreamUnavailable covers network failures and timeouts. Retrying is
	// safe: generation is idempotent, so a request that actually succeeded
	// server-side is detected on the next attempt.
	UpstreamUnavailable UpstreamKind = "unavailable"
	// UpstreamRejected covers explicit provider refusals (quota, bad model,
	// content policy). Blind retries are not safe.
	UpstreamRejected UpstreamKind = "rejected"
)

// UpstreamError wraps a failure of an outbound LLM call so callers can decide
// whether a retry is worthwhile.
type UpstreamError struct {
	Op   string // operation that failed ("generate", "refine", "outline")
	Kind UpstreamKind
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream %s: %v", e.Op, e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to match against ErrUpstream
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// Retryable reports whether the caller may safely retry the operation.
func (e *UpstreamError) Retryable() bool {
	return e.Kind == UpstreamUnavailable
}
