package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Unwrap returns the "data" member of an enveloped payload such as
// {"success": true, "data": {...}}. Anything else, including an envelope
// whose data is null, is returned unchanged.
func Unwrap(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return raw
	}
	data, ok := env["data"]
	if !ok || isNull(data) {
		return raw
	}
	return data
}

// DecodeData unwraps raw and decodes the payload into out.
func DecodeData(raw json.RawMessage, out any) error {
	body := Unwrap(raw)
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

// ExtractList decodes a list that the backend sends either as a bare array
// or as an object holding the array under field, with or without the
// {success, data} envelope. Elements are decoded one by one and an element
// that does not fit T is skipped. Absent or malformed data yields an empty
// list.
func ExtractList[T any](raw json.RawMessage, field string) []T {
	body := Unwrap(raw)

	if items, ok := rawArray(body); ok {
		return decodeEach[T](items)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		if items, ok := rawArray(obj[field]); ok {
			return decodeEach[T](items)
		}
	}
	return []T{}
}

func rawArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, false
	}
	return items, true
}

func decodeEach[T any](items []json.RawMessage) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
