package mongy

import (
	"context"
	"io"
	"iter"
)

// Record is one document as seen by a Projector.
type Record interface {
	// Has reports whether the record carries field.
	Has(field string) bool

	// Get returns the value of field, or Null when absent.
	Get(field string) Value
}

// Source yields records one at a time.
type Source interface {
	// Next returns the next record, or io.EOF once the source is exhausted.
	Next(ctx context.Context) (Record, error)
}

// Counter is implemented by sources that can count their records directly,
// such as a database query.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Lener is implemented by sources that know their length.
type Lener interface {
	Len() int
}

// Closer is implemented by sources that hold resources, such as a cursor.
// A Projector closes the source when a stream ends.
type Closer interface {
	Close(ctx context.Context) error
}

// Document is a record backed by a map, such as a decoded bson.M.
type Document map[string]any

// Has reports whether d carries field.
func (d Document) Has(field string) bool {
	_, ok := d[field]
	return ok
}

// Get returns the value of field.
func (d Document) Get(field string) Value {
	return ValueOf(d[field])
}

// DocumentSource is an in-memory Source over a slice of documents.
// It reports its length and can be rewound.
type DocumentSource struct {
	docs []Document
	pos  int
}

// Documents returns a Source over docs.
func Documents(docs ...Document) *DocumentSource {
	return &DocumentSource{docs: docs}
}

// Next returns the next document.
func (s *DocumentSource) Next(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.docs) {
		return nil, io.EOF
	}
	d := s.docs[s.pos]
	s.pos++
	return d, nil
}

// Len returns the number of documents.
func (s *DocumentSource) Len() int { return len(s.docs) }

// Rewind moves the source back to its first document.
func (s *DocumentSource) Rewind() { s.pos = 0 }

// seqSource pulls records from an iterator. It cannot report its size.
type seqSource struct {
	next func() (Record, bool)
	stop func()
}

// FromSeq returns a one-pass Source over seq.
func FromSeq(seq iter.Seq[Record]) Source {
	next, stop := iter.Pull(seq)
	return &seqSource{next: next, stop: stop}
}

func (s *seqSource) Next(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := s.next()
	if !ok {
		return nil, io.EOF
	}
	return rec, nil
}

func (s *seqSource) Close(context.Context) error {
	s.stop()
	return nil
}
