// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

// ErrorResponse is the error envelope for all error responses.
// The wire format is a single flat field: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Client-facing error messages. These are part of the API contract,
// so the exact wording matters.
const (
	// MessageQuoteNotFound is returned when no quote matches the
	// lookup criteria (unknown id, malformed id, or empty category match).
	MessageQuoteNotFound = "Quote not found"

	// MessageEndpointNotFound is returned for unrecognized paths.
	MessageEndpointNotFound = "Endpoint not found. Try /api/quote or /api/quotes"

	// MessageMethodNotAllowed is returned for any method other than GET or OPTIONS.
	MessageMethodNotAllowed = "Only GET requests are allowed"

	// MessageInternalError is returned when request handling fails unexpectedly.
	MessageInternalError = "Internal server error"
)

// NewErrorResponse creates an error response with the given message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}
