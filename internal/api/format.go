package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const chainIndent = "    "

// FormatChain renders a chain value as 4-space indented JSON.
func FormatChain(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", chainIndent); err != nil {
		return "", fmt.Errorf("format chain: %w", err)
	}
	return buf.String(), nil
}
