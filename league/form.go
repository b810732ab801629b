package league

import (
	"bytes"
	"encoding/json"
	"strings"
)

const formLength = 5

// ParseForm reads a team's recent results. The server sends either a JSON
// array or a string holding a JSON-encoded array. Anything else yields nil.
// At most the last five entries are returned, oldest first.
func ParseForm(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil
		}
		encoded = strings.TrimSpace(encoded)
		if encoded == "" {
			return nil
		}
		raw = json.RawMessage(encoded)
	}

	var results []string
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil
	}
	if len(results) > formLength {
		results = results[len(results)-formLength:]
	}
	return results
}
