package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// decodeItems extracts the record list from an upstream response body. The
// two catalog APIs are inconsistent: some endpoints wrap records in "data",
// some in "items", some return a bare array. A body that matches none of the
// shapes is coerced to an empty collection.
func decodeItems(body []byte) []json.RawMessage {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return nil
		}
		return items
	}

	var envelope struct {
		Data  []json.RawMessage `json:"data"`
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	if envelope.Data != nil {
		return envelope.Data
	}
	return envelope.Items
}

// flexString accepts a JSON string or number and stores it as a string.
// Upstream ids and dimensions arrive in both forms.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		*s = ""
		return nil
	}
	if raw[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		*s = ""
		return nil
	}
	*s = flexString(n.String())
	return nil
}

// flexFloat accepts a JSON number or a numeric string. Malformed values are
// left at zero rather than failing the whole record.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		return nil
	}
	if raw[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		*f = flexFloat(parsed)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// flexBool accepts true/false, 0/1 and their string forms.
type flexBool bool

func (fb *flexBool) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(b)), `"`)
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		*fb = true
	default:
		*fb = false
	}
	return nil
}

// formatNum renders a float without a trailing ".0" so that 114.3 stays
// "114.3" and 100 stays "100".
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
