package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight offers service.
// Callers match these with errors.Is.
var (
	// ErrInvalidRequest indicates the caller supplied invalid search input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstream indicates the upstream provider call failed.
	ErrUpstream = errors.New("upstream provider error")

	// ErrDataIntegrity indicates a vendor offer carried a field this service
	// consumes but could not interpret (e.g., an unparseable price total).
	// It is distinct from "zero results": silently coercing a bad price to
	// zero would corrupt filtering and sorting.
	ErrDataIntegrity = errors.New("data integrity error")
)

// DataIntegrityError describes one offer field that failed interpretation.
// It wraps ErrDataIntegrity so callers can match the class with errors.Is
// while still reaching the offending offer and field with errors.As.
type DataIntegrityError struct {
	// OfferID is the vendor-assigned ID of the offending offer
	OfferID string

	// Field is the dotted path of the bad field (e.g., "price.total")
	Field string

	// Value is the raw value that failed to parse
	Value string
}

// NewDataIntegrityError creates a DataIntegrityError for the given offer field.
func NewDataIntegrityError(offerID, field, value string) *DataIntegrityError {
	return &DataIntegrityError{
		OfferID: offerID,
		Field:   field,
		Value:   value,
	}
}

// Error implements the error interface.
func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity error: offer %q field %q has unusable value %q", e.OfferID, e.Field, e.Value)
}

// Unwrap returns ErrDataIntegrity for errors.Is matching.
func (e *DataIntegrityError) Unwrap() error {
	return ErrDataIntegrity
}

// UpstreamError describes a failed call to the upstream provider.
type UpstreamError struct {
	// Op names the upstream operation (e.g., "flight-offers", "token")
	Op string

	// StatusCode is the HTTP status returned by the provider; 0 when the
	// request never produced a response
	StatusCode int

	// Err is the underlying transport or decode error, if any
	Err error
}

// NewUpstreamError creates an UpstreamError for the given operation.
func NewUpstreamError(op string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{Op: op, StatusCode: statusCode, Err: err}
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s: status %d", e.Op, e.StatusCode)
}

// Unwrap returns the underlying error chain, always including ErrUpstream.
func (e *UpstreamError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUpstream
}

// Is reports true for ErrUpstream so errors.Is(err, ErrUpstream) matches
// regardless of the wrapped transport error.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// Retryable reports whether the call is worth retrying: transport failures,
// server-side errors and rate limiting qualify; client errors do not.
func (e *UpstreamError) Retryable() bool {
	if e.StatusCode == 0 {
		return true
	}
	return e.StatusCode >= 500 || e.StatusCode == 429
}
