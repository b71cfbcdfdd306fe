package backend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error is a response of the backend with status code >= 400.
type Error struct {
	StatusCode int
	// Message is extracted from the JSON body, empty when the body had none.
	Message string
	Body    string
}

func newError(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    extractMessage(body),
		Body:       strings.TrimSpace(string(body)),
	}
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend error %d: %s", e.StatusCode, e.Body)
}

// extractMessage looks for the fields backends commonly use to describe an error.
func extractMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"message", "error", "detail"} {
		if value, ok := payload[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
