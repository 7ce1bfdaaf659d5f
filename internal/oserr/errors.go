// Package oserr provides shared error types for the OSRS data sources.
package oserr

import (
	"errors"
	"fmt"
)

// RemoteAPIError indicates an upstream API answered with a non-success status.
type RemoteAPIError struct {
	Source     string // "wiki", "prices", "wikisync"
	Endpoint   string // request path or URL
	StatusCode int
}

func (e *RemoteAPIError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("%s API returned status %d for %s", e.Source, e.StatusCode, e.Endpoint)
	}
	return fmt.Sprintf("%s API returned status %d", e.Source, e.StatusCode)
}

// NotFoundError indicates an entity could not be resolved.
// This is a normal, user-displayable outcome, never a fault.
type NotFoundError struct {
	Kind string // "item", "page", "player", "skill", "diary region"
	Key  string // the name or identifier that was looked up
}

func (e *NotFoundError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
	}
	return fmt.Sprintf("not found: %s", e.Key)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(kind, key string) *NotFoundError {
	return &NotFoundError{Kind: kind, Key: key}
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// EmptyResultError indicates an upstream API answered successfully but with an
// empty payload. Distinct from RemoteAPIError: the service is up, it just has
// no data for the requested player.
type EmptyResultError struct {
	Username string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no data found for player: %s", e.Username)
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRemoteAPI returns true if the error is a RemoteAPIError.
func IsRemoteAPI(err error) bool {
	var re *RemoteAPIError
	return errors.As(err, &re)
}

// IsEmptyResult returns true if the error is an EmptyResultError.
func IsEmptyResult(err error) bool {
	var ee *EmptyResultError
	return errors.As(err, &ee)
}
