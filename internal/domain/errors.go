package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// UpstreamError marks failures talking to the inventory/booking collaborator.
// The flow stays resumable; retries are user-initiated.
type UpstreamError struct {
	Op  string
	Err error
}

func (e UpstreamError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("upstream %s failed", e.Op)
	}
	return "upstream call failed"
}

func (e UpstreamError) Unwrap() error { return e.Err }

// DataShapeError marks collaborator responses missing required fields.
// Fatal for the affected trip, never for the process.
type DataShapeError struct {
	Resource string
	Msg      string
}

func (e DataShapeError) Error() string {
	if e.Resource != "" && e.Msg != "" {
		return fmt.Sprintf("malformed %s: %s", e.Resource, e.Msg)
	}
	if e.Resource != "" {
		return fmt.Sprintf("malformed %s", e.Resource)
	}
	return "malformed upstream data"
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target UpstreamError
	return errors.As(err, &target)
}

func IsDataShape(err error) bool {
	var target DataShapeError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
