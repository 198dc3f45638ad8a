// Package bson provides a BSON codec for projected records.
//
// BSON requires a document at the top level, so lists of records are
// written as a document holding the list under ItemsKey.
package bson

import (
	"reflect"

	"github.com/jayakrishnandingit/mongy"
	"go.mongodb.org/mongo-driver/bson"
)

// ItemsKey holds the records when a list is marshaled.
const ItemsKey = "items"

// bsonCodec implements mongy.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() mongy.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	if isList(reflect.ValueOf(v)) {
		return bson.Marshal(bson.D{{Key: ItemsKey, Value: v}})
	}
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v. A pointer to a slice receives the
// list written by Marshal.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && isList(rv.Elem()) {
		raw := bson.Raw(data)
		if err := raw.Validate(); err != nil {
			return err
		}
		items, err := raw.LookupErr(ItemsKey)
		if err != nil {
			return err
		}
		return items.Unmarshal(v)
	}
	return bson.Unmarshal(data, v)
}

func isList(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Slice:
		// bson.D and raw bytes are documents, not lists.
		return rv.Type() != reflect.TypeOf(bson.D{}) && rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	}
	return false
}
