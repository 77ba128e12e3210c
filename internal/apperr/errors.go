package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FieldError is a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError collects every rejected field of one request.
type ValidationError struct {
	Fields []FieldError
}

func Validation(field, code, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, code, message)
	return v
}

func (e *ValidationError) Add(field, code, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Has reports whether any field failed with code.
func (e *ValidationError) Has(code string) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Fields {
		if f.Code == code {
			return true
		}
	}
	return false
}

// OrNil returns nil when nothing was rejected so callers can `return verr.OrNil()`.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type NotFoundError struct {
	Entity string
	ID     string
}

func NotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// PersistenceError wraps a failed read or write against the database.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err unless it is nil or already one of this package's errors.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsTyped(err) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

const (
	ReasonEmpty           = "empty"
	ReasonTooLarge        = "too_large"
	ReasonUnsupportedType = "unsupported_type"
	ReasonFailed          = "failed"
)

type UploadError struct {
	Reason  string
	Message string
	Err     error
}

func Upload(reason, message string, err error) *UploadError {
	return &UploadError{Reason: reason, Message: message, Err: err}
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UploadError) Unwrap() error { return e.Err }

// Status is the HTTP status an upload failure is reported with.
func (e *UploadError) Status() int {
	switch e.Reason {
	case ReasonEmpty:
		return http.StatusBadRequest
	case ReasonTooLarge:
		return http.StatusRequestEntityTooLarge
	case ReasonUnsupportedType:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadGateway
	}
}

// IsTyped reports whether err already carries one of the categories above.
func IsTyped(err error) bool {
	var (
		ve *ValidationError
		nf *NotFoundError
		pe *PersistenceError
		ue *UploadError
	)
	return errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &pe) || errors.As(err, &ue)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
