package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// JSON is an alias for any, representing any JSON value.
type JSON = any

// JSONObject is an alias for map[string]any, representing a JSON object.
// Workflow and app inputs are passed this way.
type JSONObject = map[string]any

// Timestamp is a Unix time in seconds as Dify sends it. It also accepts
// fractional seconds, numeric strings and null.
type Timestamp int64

// Time converts the timestamp to a time.Time. Zero stays the zero time.
func (t Timestamp) Time() time.Time {
	if t == 0 {
		return time.Time{}
	}
	return time.Unix(int64(t), 0)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	f, ok, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("types: invalid timestamp %s: %w", data, err)
	}
	if ok {
		*t = Timestamp(int64(f))
	}
	return nil
}

// FlexInt is an integer that Dify sometimes encodes as a string.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	f, ok, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("types: invalid integer %s: %w", data, err)
	}
	if ok {
		*n = FlexInt(int(f))
	}
	return nil
}

// Decimal keeps a price or amount exactly as Dify sent it, whether the
// value arrived as a JSON number or a string.
type Decimal string

// Float parses the decimal. Empty decimals are 0.
func (d Decimal) Float() float64 {
	if d == "" {
		return 0
	}
	f, _ := strconv.ParseFloat(string(d), 64)
	return f
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Decimal(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*d = Decimal(n.String())
	}
	return nil
}

// MarshalJSON writes the decimal as a string, or null when empty.
func (d Decimal) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(d))
}

// parseNumber reads a JSON number, a quoted number or null.
// ok is false for null and empty strings.
func parseNumber(data []byte) (float64, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, false, nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false, err
		}
		if s == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil, err
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return 0, false, err
	}
	return f, true, nil
}

// Result is the {"result": "success"} body many Dify mutations return.
type Result struct {
	Result string `json:"result"`
}

// OK reports a "success" result.
func (r Result) OK() bool {
	return r.Result == "success"
}
