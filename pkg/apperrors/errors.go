package apperrors

import (
	"errors"
	"net/http"
)

// Error codes returned in the {code, message} body
const (
	CodeUnauthorized      = "UNAUTHORIZED_ERROR"
	CodeInvalidParam      = "INVALID_PARAM_ERROR"
	CodeInvalidContent    = "INVALID_CONTENT_ERROR"
	CodeNotfoundData      = "NOTFOUND_DATA_ERROR"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInternal          = "INTERNAL_SERVER_ERROR"
)

// Error is an API error with a stable code and an HTTP status
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

// Unauthorized reports a missing or invalid bearer token
func Unauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message, Status: http.StatusUnauthorized}
}

// InvalidParam reports a malformed path parameter
func InvalidParam(message string) *Error {
	return &Error{Code: CodeInvalidParam, Message: message, Status: http.StatusBadRequest}
}

// InvalidContent reports an invalid body or query value
func InvalidContent(message string) *Error {
	return &Error{Code: CodeInvalidContent, Message: message, Status: http.StatusBadRequest}
}

// NotfoundData reports an absent entity
func NotfoundData(message string) *Error {
	return &Error{Code: CodeNotfoundData, Message: message, Status: http.StatusNotFound}
}

// InsufficientStock reports a stock decrement that would go negative
func InsufficientStock(message string) *Error {
	return &Error{Code: CodeInsufficientStock, Message: message, Status: http.StatusConflict}
}

// Internal reports an unclassified failure; the caller logs the original error
func Internal() *Error {
	return &Error{Code: CodeInternal, Message: "internal server error", Status: http.StatusInternalServerError}
}

// From extracts an *Error from err, or nil if err carries none
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
