// Package errors provides structured error handling with HTTP status mapping.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Conversion errors
	CodeInvalidNumber     Code = "INVALID_NUMBER"
	CodeNumeralOutOfRange Code = "NUMERAL_OUT_OF_RANGE"
	CodeEmptyInput        Code = "EMPTY_INPUT"

	// Transport errors
	CodeUpstreamRejected    Code = "UPSTREAM_REJECTED"
	CodeUpstreamUnavailable Code = "UPSTREAM_UNAVAILABLE"
)

// HTTPStatus maps the code to the status a boundary should respond with.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidNumber, CodeNumeralOutOfRange, CodeEmptyInput:
		return http.StatusBadRequest
	case CodeUpstreamRejected:
		return http.StatusBadGateway
	case CodeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
