package mongy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"
)

// Projector serializes the records of a Source through a Schema.
//
// Output is produced lazily: each record is pulled from the source only when
// the consumer asks for the next result. A Projector must be driven by one
// consumer at a time; the Schema it reads may be shared freely.
type Projector struct {
	schema *Schema
	source Source
}

// NewProjector returns a Projector over source.
func NewProjector(schema *Schema, source Source) *Projector {
	emitProjectorCreated(context.Background(), schema.Name(), schema.Len())
	return &Projector{schema: schema, source: source}
}

// Schema returns the schema the projector serializes with.
func (p *Projector) Schema() *Schema { return p.schema }

// Total returns the number of records in the source.
//
// Sources implementing Counter are asked first; if that fails, sources
// implementing Lener are asked for their length. Otherwise Total returns a
// *SourceError wrapping ErrInvalidDataSource.
func (p *Projector) Total(ctx context.Context) (int64, error) {
	var cause error
	if c, ok := p.source.(Counter); ok {
		n, err := c.Count(ctx)
		if err == nil {
			return n, nil
		}
		cause = err
	}
	if l, ok := p.source.(Lener); ok {
		return int64(l.Len()), nil
	}

	err := newSourceError(ErrInvalidDataSource, fmt.Sprintf("%T", p.source), cause)
	emitTotalFailed(ctx, p.schema.Name(), err)
	return 0, err
}

// SerializeOne projects a single record. Fields bound by the schema but
// missing from the record are left out of the result.
func (p *Projector) SerializeOne(rec Record) map[string]any {
	out := make(map[string]any, len(p.schema.bindings))
	for _, b := range p.schema.bindings {
		if !rec.Has(b.Name) {
			continue
		}
		out[b.Name] = b.Strategy.Serialize(rec.Get(b.Name))
	}
	return out
}

// All returns the projected records in source order.
//
// Iteration stops at the end of the source, on a source error, or when ctx is
// done; errors are yielded once as the final element. The source is closed
// when iteration ends, including when the consumer stops early.
func (p *Projector) All(ctx context.Context) iter.Seq2[map[string]any, error] {
	return func(yield func(map[string]any, error) bool) {
		start := time.Now()
		emitStreamStart(ctx, p.schema.Name())

		var count int
		var retErr error
		defer func() {
			if c, ok := p.source.(Closer); ok {
				if err := c.Close(context.WithoutCancel(ctx)); err != nil && retErr == nil {
					retErr = fmt.Errorf("close: %w", err)
				}
			}
			emitStreamComplete(ctx, p.schema.Name(), count, time.Since(start), retErr)
		}()

		for {
			if err := ctx.Err(); err != nil {
				retErr = err
				yield(nil, err)
				return
			}

			rec, err := p.source.Next(ctx)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				retErr = fmt.Errorf("next: %w", err)
				yield(nil, retErr)
				return
			}

			out := p.SerializeOne(rec)
			count++
			emitRecordSerialized(ctx, p.schema.Name(), len(out))

			if !yield(out, nil) {
				return
			}
		}
	}
}

// Encode marshals each projected record with c and passes the bytes to fn,
// one record at a time.
func (p *Projector) Encode(ctx context.Context, c Codec, fn func(data []byte) error) error {
	for out, err := range p.All(ctx) {
		if err != nil {
			return err
		}
		data, err := c.Marshal(out)
		if err != nil {
			return newCodecError(ErrMarshal, err)
		}
		if err := fn(data); err != nil {
			return err
		}
	}
	return nil
}

// MarshalAll projects every record and marshals the list with c.
// Unlike All, it holds the whole result in memory.
func (p *Projector) MarshalAll(ctx context.Context, c Codec) ([]byte, error) {
	results := make([]map[string]any, 0)
	for out, err := range p.All(ctx) {
		if err != nil {
			return nil, err
		}
		results = append(results, out)
	}

	data, err := c.Marshal(results)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}
