package boxer

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatYAML boxes the YAML document encoding of v, one row per line.
// Encoding errors are returned unrendered.
func FormatYAML(s Style, v any, opts ...Option) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return boxLines(s, strings.TrimSuffix(buf.String(), "\n"), opts...), nil
}
