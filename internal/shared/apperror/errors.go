package apperror

import (
	"errors"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// ERROR KINDS
// =====================================================
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindUpstream     Kind = "upstream"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

// =====================================================
// CUSTOM ERROR TYPE
// =====================================================

// Error is the single error shape handlers translate into HTTP responses.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string]string
	// Status overrides the default status of the kind when non-zero.
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to a status code
func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// WithStatus returns a copy of the error with an explicit status code
func (e *Error) WithStatus(status int) *Error {
	out := *e
	out.Status = status
	return &out
}

// =====================================================
// CONSTRUCTORS
// =====================================================

func Validation(code, message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message, Fields: fields}
}

// ValidationFrom converts an ozzo-validation result into a ValidationError
// with flattened field errors (e.g. "editions.0.price").
func ValidationFrom(code, message string, err error) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    code,
		Message: message,
		Fields:  FieldErrors(err),
		Err:     err,
	}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Upstream(code, message string, err error) *Error {
	return &Error{Kind: KindUpstream, Code: code, Message: message, Err: err}
}

func Unauthorized(code, message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Code: "INTERNAL_ERROR", Message: message, Err: err}
}

// As unwraps err into an *Error
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// =====================================================
// FIELD ERRORS
// =====================================================

// FieldErrors flattens nested validation.Errors into "path": "message" pairs.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}
	flatten("", err, fields)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func flatten(prefix string, err error, out map[string]string) {
	if err == nil {
		return
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		keys := make([]string, 0, len(errs))
		for k := range errs {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			flatten(path, errs[k], out)
		}
		return
	}

	key := prefix
	if key == "" {
		key = "_"
	}
	out[key] = err.Error()
}
