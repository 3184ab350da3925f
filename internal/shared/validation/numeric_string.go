package validation

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NumericString carries a numeric field as text. It decodes from either a
// JSON string or a JSON number so clients may send "20000" or 20000.
type NumericString string

func (n *NumericString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NumericString(num.String())
	return nil
}

func (n NumericString) String() string {
	return strings.TrimSpace(string(n))
}

func (n NumericString) Present() bool {
	return n.String() != ""
}
