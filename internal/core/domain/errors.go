package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrMalformedInput = errors.New("malformed input")
	ErrDuplicateKey   = errors.New("record already exists")
)

// Resource names one of the record types exposed by the API.
type Resource string

const (
	ResourceUser  Resource = "user"
	ResourceOrder Resource = "order"
	ResourceOffer Resource = "offer"
)

// RecordError carries the resource and id an operation failed on, so callers
// can render a resource-specific message. Err is one of the sentinels above or
// the underlying store error.
type RecordError struct {
	Resource Resource
	ID       int64
	Detail   string
	Err      error
}

func (e *RecordError) Error() string {
	msg := fmt.Sprintf("%s %d: %v", e.Resource, e.ID, e.Err)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *RecordError) Unwrap() error { return e.Err }

// NewRecordError wraps err for the given resource and id.
func NewRecordError(resource Resource, id int64, err error) *RecordError {
	return &RecordError{Resource: resource, ID: id, Err: err}
}

// MalformedInput reports a request body or path that could not be used.
func MalformedInput(resource Resource, detail string) *RecordError {
	return &RecordError{Resource: resource, Detail: detail, Err: ErrMalformedInput}
}
