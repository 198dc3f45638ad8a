// Package mongo provides a mongy.Source over a MongoDB query.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jayakrishnandingit/mongy"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoCollection is returned by Count when the source was built from a bare
// cursor.
var ErrNoCollection = errors.New("mongo: source has no collection")

// Source streams the documents matched by a query.
type Source struct {
	coll   *driver.Collection
	filter any
	cursor *driver.Cursor
}

// Find runs filter against coll and returns a Source over the results.
// A nil filter matches every document.
func Find(ctx context.Context, coll *driver.Collection, filter any, opts ...*options.FindOptions) (*Source, error) {
	if filter == nil {
		filter = bson.D{}
	}
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	return NewSource(coll, filter, cursor), nil
}

// NewSource wraps an open cursor. coll and filter are used only to count
// matching documents and may be nil.
func NewSource(coll *driver.Collection, filter any, cursor *driver.Cursor) *Source {
	if filter == nil {
		filter = bson.D{}
	}
	return &Source{coll: coll, filter: filter, cursor: cursor}
}

// Next decodes the next document from the cursor.
func (s *Source) Next(ctx context.Context) (mongy.Record, error) {
	if !s.cursor.Next(ctx) {
		if err := s.cursor.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}

	var doc bson.D
	if err := s.cursor.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToDocument(doc), nil
}

// Count returns the number of documents matching the source's filter.
func (s *Source) Count(ctx context.Context) (int64, error) {
	if s.coll == nil {
		return 0, ErrNoCollection
	}
	return s.coll.CountDocuments(ctx, s.filter)
}

// Close closes the underlying cursor.
func (s *Source) Close(ctx context.Context) error {
	return s.cursor.Close(ctx)
}

// ToDocument converts a decoded BSON document into a record. Nested
// documents stay ordered.
func ToDocument(d bson.D) mongy.Document {
	doc := make(mongy.Document, len(d))
	for _, e := range d {
		doc[e.Key] = e.Value
	}
	return doc
}
