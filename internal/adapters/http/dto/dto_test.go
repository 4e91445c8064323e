package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_WireFormat(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"quote not found", MessageQuoteNotFound, `{"error":"Quote not found"}`},
		{"endpoint not found", MessageEndpointNotFound, `{"error":"Endpoint not found. Try /api/quote or /api/quotes"}`},
		{"method not allowed", MessageMethodNotAllowed, `{"error":"Only GET requests are allowed"}`},
		{"internal error", MessageInternalError, `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(NewErrorResponse(tt.message))
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(body))
		})
	}
}
