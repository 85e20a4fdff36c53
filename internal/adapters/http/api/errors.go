package api

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds for API errors.
var (
	ErrServe      = errors.New("serve failed")
	ErrBadRequest = errors.New("bad request")
	ErrTooLarge   = errors.New("request body too large")
	ErrNotFound   = errors.New("not found")
	ErrNotReady   = errors.New("required fields missing")
	ErrConflict   = errors.New("conflict")
	ErrInternal   = errors.New("internal error")
)

// OpError ties an error to the operation that produced it and its kind.
type OpError struct {
	Op   string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	case e.Kind == nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	}
}

// Unwrap exposes both the kind and the cause to errors.Is/As.
func (e *OpError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// Wrap attaches op to err, keeping whatever kind err already carries.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}

// WrapKind attaches op and kind to err.
func WrapKind(op string, kind, err error) error {
	return &OpError{Op: op, Kind: kind, Err: err}
}

// NewKind builds an error of kind for op with no further cause.
func NewKind(op string, kind error) error {
	return &OpError{Op: op, Kind: kind}
}

// ValidationError lists the schema violations of a request body.
type ValidationError struct {
	Schema   string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Schema, strings.Join(e.Problems, "; "))
}

// Is lets a ValidationError match ErrBadRequest.
func (e *ValidationError) Is(target error) bool {
	return target == ErrBadRequest
}

// status maps an error to its HTTP status and response code.
func status(err error) (int, string) {
	switch {
	case errors.Is(err, ErrTooLarge):
		return statusPayloadTooLarge, "payload_too_large"
	case errors.Is(err, ErrBadRequest):
		return statusBadRequest, "bad_request"
	case errors.Is(err, ErrNotFound):
		return statusNotFound, "not_found"
	case errors.Is(err, ErrConflict):
		return statusConflict, "conflict"
	case errors.Is(err, ErrNotReady):
		return statusUnprocessable, "not_ready"
	default:
		return statusInternalError, "internal_error"
	}
}

type missingFieldsError []string

func (e missingFieldsError) Error() string {
	return strings.Join(e, ", ")
}

func errMissing(fields ...string) error {
	return missingFieldsError(fields)
}
