// Package msgpack provides a MessagePack codec for projected records.
package msgpack

import (
	"bytes"

	"github.com/jayakrishnandingit/mongy"
	"github.com/vmihailenco/msgpack/v5"
)

// msgpackCodec implements mongy.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec. Map keys are encoded in sorted order so
// equal records encode to equal bytes.
func New() mongy.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	enc.UseCompactInts(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
