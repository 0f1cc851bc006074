package gemini

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	ErrMissingAPIKey = errors.New("gemini: api key is not configured")
	ErrTimeout       = errors.New("gemini: request timed out")
)

// UpstreamError is a non-2xx answer from Gemini.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return "Gemini API Error: " + e.Message
}

// MalformedResponseError means a 2xx answer did not have the expected shape.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed Gemini response: %s: %v", e.Reason, e.Err)
	}
	return "malformed Gemini response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// newUpstreamError prefers error.message from a JSON body and falls back to the raw text.
func newUpstreamError(status int, body []byte) *UpstreamError {
	msg := string(body)
	if gjson.ValidBytes(body) {
		if m := gjson.GetBytes(body, "error.message"); m.Exists() {
			msg = m.String()
		}
	}
	return &UpstreamError{Status: status, Message: msg}
}
