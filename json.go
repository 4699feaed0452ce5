package boxer

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FormatJSON boxes the indented JSON encoding of v, one row per line.
// Encoding errors are returned unrendered.
func FormatJSON(s Style, v any, opts ...Option) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return boxLines(s, strings.TrimSuffix(buf.String(), "\n"), opts...), nil
}
