// Package apierr defines the wire-level error taxonomy. Every failed request
// maps to exactly one Error kind; the body shape is stable:
//
//	{"error": {"code": 400, "message": "...", "type": "ValidationError", "details": {...}}}
package apierr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	TypeValidation     = "ValidationError"
	TypeAuthentication = "AuthenticationError"
	TypeAuthorization  = "AuthorizationError"
	TypeNotFound       = "NotFoundError"
	TypeConflict       = "ConflictError"
	TypeInternal       = "InternalError"
)

type Error struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Type    string              `json:"type"`
	Details map[string][]string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

type envelope struct {
	Error *Error `json:"error"`
}

func Validation(details map[string][]string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: "validation failed", Type: TypeValidation, Details: details}
}

func Authentication(message string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: message, Type: TypeAuthentication}
}

func Authorization(message string) *Error {
	return &Error{Code: http.StatusForbidden, Message: message, Type: TypeAuthorization}
}

func NotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message, Type: TypeNotFound}
}

// Conflict reports a duplicate unique field. The register contract fixes the
// status at 400; the type label keeps the kind machine-distinguishable.
func Conflict(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message, Type: TypeConflict}
}

func Internal() *Error {
	return &Error{Code: http.StatusInternalServerError, Message: "an unexpected error occurred", Type: TypeInternal}
}

// Write serializes e and aborts the request.
func Write(c *gin.Context, e *Error) {
	c.AbortWithStatusJSON(e.Code, envelope{Error: e})
}

// WriteInternal logs the underlying fault with the request id, then responds
// with an opaque InternalError. No internal detail reaches the caller.
func WriteInternal(c *gin.Context, err error) {
	log.Printf("[%s] internal error: %v", c.GetString("request_id"), err)
	Write(c, Internal())
}
