// Package errors defines the typed errors returned by the service layer.
//
// Store-level errors (malformed SQL, constraint violations, connection
// failures) are deliberately not wrapped: they pass through to the caller as
// generic failures. Only conditions the API maps to specific status codes get
// a type here.
package errors

import (
	"errors"
	"fmt"
)

// ValidationError reports a request that failed the minimal field checks.
// Nothing was written to the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ResourceNotFoundError reports a lookup that matched no row.
type ResourceNotFoundError struct {
	Resource string
	ID       int64
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func NewProviderNotFoundError(id int64) error {
	return &ResourceNotFoundError{Resource: "provider", ID: id}
}

func IsResourceNotFoundError(err error) bool {
	var nfe *ResourceNotFoundError
	return errors.As(err, &nfe)
}

// ReportNotFoundError reports a request for a report key that is not in the
// catalog.
type ReportNotFoundError struct {
	Key string
}

func (e *ReportNotFoundError) Error() string {
	return fmt.Sprintf("report %q not found", e.Key)
}

func NewReportNotFoundError(key string) error {
	return &ReportNotFoundError{Key: key}
}

func IsReportNotFoundError(err error) bool {
	var rnf *ReportNotFoundError
	return errors.As(err, &rnf)
}
