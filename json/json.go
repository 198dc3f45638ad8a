// Package json provides a JSON codec for projected records.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/jayakrishnandingit/mongy"
)

// jsonCodec implements mongy.Codec for JSON.
type jsonCodec struct {
	prefix string
	indent string
}

// New returns a compact JSON codec.
//
// HTML characters are written as-is, so projected text such as "<b>" is
// left readable in API responses.
func New() mongy.Codec {
	return &jsonCodec{}
}

// NewIndent returns a JSON codec that indents its output.
func NewIndent(prefix, indent string) mongy.Codec {
	return &jsonCodec{prefix: prefix, indent: indent}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if c.prefix != "" || c.indent != "" {
		enc.SetIndent(c.prefix, c.indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
