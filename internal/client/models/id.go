package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexID is an identifier (or short numeric code such as a course level)
// that may arrive as a JSON number or a JSON string. Numeric values are
// marshaled back as numbers.
type FlexID string

func (id *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a number or string: %w", err)
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Int64 parses the identifier as a base-10 integer.
func (id FlexID) Int64() (int64, error) {
	return strconv.ParseInt(string(id), 10, 64)
}

func (id FlexID) String() string { return string(id) }

// IDFromInt formats n as a FlexID.
func IDFromInt(n int64) FlexID {
	return FlexID(strconv.FormatInt(n, 10))
}
