// Package apperr is the shared error model: string-coded errors that map
// onto HTTP statuses at the handler boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNotFound         Code = "NOT_FOUND"
	CodeConflict         Code = "CONFLICT"
	CodeInvalidReference Code = "INVALID_REFERENCE"
	CodeUnauthenticated  Code = "UNAUTHENTICATED"
	CodeInternal         Code = "INTERNAL"
)

type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func Invalid(msg string) *Error          { return &Error{Code: CodeInvalidArgument, Message: msg} }
func NotFound(msg string) *Error         { return &Error{Code: CodeNotFound, Message: msg} }
func Conflict(msg string) *Error         { return &Error{Code: CodeConflict, Message: msg} }
func InvalidReference(msg string) *Error { return &Error{Code: CodeInvalidReference, Message: msg} }
func Unauthenticated(msg string) *Error  { return &Error{Code: CodeUnauthenticated, Message: msg} }
func Internal(msg string) *Error         { return &Error{Code: CodeInternal, Message: msg} }

// CodeOf extracts the code, or CodeInternal for foreign errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

func ToHTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		switch e.Code {
		case CodeInvalidArgument:
			return http.StatusBadRequest
		case CodeNotFound:
			return http.StatusNotFound
		case CodeConflict:
			return http.StatusConflict
		case CodeInvalidReference:
			return http.StatusUnprocessableEntity
		case CodeUnauthenticated:
			return http.StatusUnauthorized
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// Body is the JSON error payload handlers return.
func Body(err error) any {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: CodeInternal, Message: err.Error()}
}
