// Package yaml provides a YAML codec for projected records.
package yaml

import (
	"bytes"

	"github.com/jayakrishnandingit/mongy"
	"gopkg.in/yaml.v3"
)

// DefaultIndent is the indentation used by New.
const DefaultIndent = 2

// yamlCodec implements mongy.Codec for YAML.
type yamlCodec struct {
	indent int
}

// New returns a YAML codec with two-space indentation.
func New() mongy.Codec {
	return &yamlCodec{indent: DefaultIndent}
}

// NewIndent returns a YAML codec using n spaces of indentation.
func NewIndent(n int) mongy.Codec {
	if n < 1 {
		n = DefaultIndent
	}
	return &yamlCodec{indent: n}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML. Mapping keys are written in sorted order.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
