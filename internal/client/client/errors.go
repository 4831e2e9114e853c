package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrMalformedResponse = errors.New("malformed response")
)

// Error is a non-2xx response, or a 2xx response whose body reports an error.
type Error struct {
	StatusCode int
	// ServerMessage is the body's "error" or "message" text; empty when the
	// body did not carry one.
	ServerMessage string
	Body          []byte
}

func (e *Error) Error() string {
	return e.MessageOr(fmt.Sprintf("request failed with status %d", e.StatusCode))
}

// MessageOr returns the server message, or fallback when there is none.
func (e *Error) MessageOr(fallback string) string {
	if e.ServerMessage != "" {
		return e.ServerMessage
	}
	return fallback
}

func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return nil
	}
}

func newError(status int, body []byte) *Error {
	return &Error{StatusCode: status, ServerMessage: ServerMessage(body), Body: body}
}

// ServerMessage extracts a human-readable failure text from a JSON body,
// looking at "error" first and "message" second. Either may be a string or
// an object with its own "message".
func ServerMessage(body []byte) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return ""
	}
	for _, key := range []string{"error", "message"} {
		if msg := TextOf(obj[key]); msg != "" {
			return msg
		}
	}
	return ""
}

// TextOf returns the message held by a JSON string or by an object with a
// "message" member. Other values, null and false included, yield "".
func TextOf(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil {
		return strings.TrimSpace(nested.Message)
	}
	return ""
}
