package mongy

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"testing"
)

type countingSource struct {
	*DocumentSource
	count    int64
	countErr error
}

func (s *countingSource) Count(context.Context) (int64, error) {
	return s.count, s.countErr
}

// bareSource has neither a count nor a length.
type bareSource struct {
	docs   []Document
	pos    int
	err    error
	closed int
}

func (s *bareSource) Next(context.Context) (Record, error) {
	if s.pos >= len(s.docs) {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	d := s.docs[s.pos]
	s.pos++
	return d, nil
}

func (s *bareSource) Close(context.Context) error {
	s.closed++
	return nil
}

type jsonCodec struct{ fail bool }

func (c jsonCodec) ContentType() string { return "application/json" }

func (c jsonCodec) Marshal(v any) ([]byte, error) {
	if c.fail {
		return nil, errors.New("unsupported")
	}
	return json.Marshal(v)
}

func (c jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func postDocs() []Document {
	return []Document{
		{"_id": "1", "title": "first", "views": "10"},
		{"_id": "2", "title": "second"},
		{"_id": "3", "title": "", "views": 0, "extra": "ignored"},
	}
}

func postProjectorSchema() *Schema {
	return NewSchema("Post",
		Bind("title", String()),
		Bind("views", Integer()),
	)
}

func TestProjector_SerializeOne(t *testing.T) {
	p := NewProjector(postProjectorSchema(), Documents())

	tests := []struct {
		name string
		doc  Document
		want map[string]any
	}{
		{
			name: "all fields",
			doc:  Document{"_id": "1", "title": "first", "views": "10"},
			want: map[string]any{"_id": "1", "title": "first", "views": int64(10)},
		},
		{
			name: "missing field omitted",
			doc:  Document{"_id": "2", "title": "second"},
			want: map[string]any{"_id": "2", "title": "second"},
		},
		{
			name: "unbound field ignored, empty values kept",
			doc:  Document{"_id": "3", "title": "", "views": 0, "extra": "ignored"},
			want: map[string]any{"_id": "3", "title": "", "views": 0},
		},
		{
			name: "explicit null kept",
			doc:  Document{"title": nil},
			want: map[string]any{"title": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.SerializeOne(tt.doc); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SerializeOne() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestProjector_All(t *testing.T) {
	p := NewProjector(postProjectorSchema(), Documents(postDocs()...))

	var titles []any
	for rec, err := range p.All(context.Background()) {
		if err != nil {
			t.Fatalf("All() error: %v", err)
		}
		titles = append(titles, rec["title"])
	}

	if !reflect.DeepEqual(titles, []any{"first", "second", ""}) {
		t.Errorf("titles = %v, want source order", titles)
	}
}

func TestProjector_All_EarlyBreakCloses(t *testing.T) {
	src := &bareSource{docs: postDocs()}
	p := NewProjector(postProjectorSchema(), src)

	for range p.All(context.Background()) {
		break
	}

	if src.pos != 1 {
		t.Errorf("source advanced %d times, want 1", src.pos)
	}
	if src.closed != 1 {
		t.Errorf("Close() called %d times, want 1", src.closed)
	}
}

func TestProjector_All_SourceError(t *testing.T) {
	boom := errors.New("cursor died")
	src := &bareSource{docs: postDocs()[:1], err: boom}
	p := NewProjector(postProjectorSchema(), src)

	var n int
	var last error
	for _, err := range p.All(context.Background()) {
		if err != nil {
			last = err
			continue
		}
		n++
	}

	if n != 1 {
		t.Errorf("got %d records before the error, want 1", n)
	}
	if !errors.Is(last, boom) {
		t.Errorf("All() error = %v, want %v", last, boom)
	}
	if src.closed != 1 {
		t.Errorf("Close() called %d times, want 1", src.closed)
	}
}

func TestProjector_All_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p := NewProjector(postProjectorSchema(), Documents(postDocs()...))

	var n int
	var last error
	for _, err := range p.All(ctx) {
		if err != nil {
			last = err
			break
		}
		n++
		cancel()
	}

	if n != 1 {
		t.Errorf("got %d records, want 1", n)
	}
	if !errors.Is(last, context.Canceled) {
		t.Errorf("All() error = %v, want context.Canceled", last)
	}
}

func TestProjector_Total(t *testing.T) {
	ctx := context.Background()

	t.Run("counter", func(t *testing.T) {
		src := &countingSource{DocumentSource: Documents(postDocs()...), count: 99}
		n, err := NewProjector(postProjectorSchema(), src).Total(ctx)
		if err != nil || n != 99 {
			t.Errorf("Total() = %d, %v, want 99", n, err)
		}
	})

	t.Run("counter fails, length used", func(t *testing.T) {
		src := &countingSource{DocumentSource: Documents(postDocs()...), countErr: errors.New("timeout")}
		n, err := NewProjector(postProjectorSchema(), src).Total(ctx)
		if err != nil || n != 3 {
			t.Errorf("Total() = %d, %v, want 3", n, err)
		}
	})

	t.Run("length", func(t *testing.T) {
		n, err := NewProjector(postProjectorSchema(), Documents(postDocs()...)).Total(ctx)
		if err != nil || n != 3 {
			t.Errorf("Total() = %d, %v, want 3", n, err)
		}
	})

	t.Run("neither", func(t *testing.T) {
		_, err := NewProjector(postProjectorSchema(), &bareSource{}).Total(ctx)
		if !errors.Is(err, ErrInvalidDataSource) {
			t.Fatalf("Total() error = %v, want ErrInvalidDataSource", err)
		}
		var srcErr *SourceError
		if !errors.As(err, &srcErr) || srcErr.Source != "*mongy.bareSource" {
			t.Errorf("SourceError = %+v, want source *mongy.bareSource", srcErr)
		}
	})

	t.Run("sequence", func(t *testing.T) {
		src := FromSeq(func(yield func(Record) bool) {})
		if _, err := NewProjector(postProjectorSchema(), src).Total(ctx); !errors.Is(err, ErrInvalidDataSource) {
			t.Errorf("Total() error = %v, want ErrInvalidDataSource", err)
		}
	})
}

func TestProjector_All_NoTotalNeeded(t *testing.T) {
	// Streaming works for sources that cannot report their size.
	src := &bareSource{docs: postDocs()}
	var n int
	for _, err := range NewProjector(postProjectorSchema(), src).All(context.Background()) {
		if err != nil {
			t.Fatalf("All() error: %v", err)
		}
		n++
	}
	if n != 3 {
		t.Errorf("got %d records, want 3", n)
	}
}

func TestProjector_Encode(t *testing.T) {
	p := NewProjector(postProjectorSchema(), Documents(postDocs()[:2]...))

	var lines []string
	err := p.Encode(context.Background(), jsonCodec{}, func(data []byte) error {
		lines = append(lines, string(data))
		return nil
	})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	want := []string{
		`{"_id":"1","title":"first","views":10}`,
		`{"_id":"2","title":"second"}`,
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Encode() wrote %v, want %v", lines, want)
	}
}

func TestProjector_Encode_CallbackError(t *testing.T) {
	stop := errors.New("stop")
	p := NewProjector(postProjectorSchema(), Documents(postDocs()...))

	var calls int
	err := p.Encode(context.Background(), jsonCodec{}, func([]byte) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Errorf("Encode() = %v after %d calls, want stop after 1", err, calls)
	}
}

func TestProjector_MarshalAll(t *testing.T) {
	p := NewProjector(postProjectorSchema(), Documents(postDocs()[:2]...))

	data, err := p.MarshalAll(context.Background(), jsonCodec{})
	if err != nil {
		t.Fatalf("MarshalAll() error: %v", err)
	}

	want := `[{"_id":"1","title":"first","views":10},{"_id":"2","title":"second"}]`
	if string(data) != want {
		t.Errorf("MarshalAll() = %s, want %s", data, want)
	}
}

func TestProjector_MarshalAll_Empty(t *testing.T) {
	data, err := NewProjector(postProjectorSchema(), Documents()).MarshalAll(context.Background(), jsonCodec{})
	if err != nil {
		t.Fatalf("MarshalAll() error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("MarshalAll() = %s, want []", data)
	}
}

func TestProjector_CodecError(t *testing.T) {
	p := NewProjector(postProjectorSchema(), Documents(postDocs()...))

	_, err := p.MarshalAll(context.Background(), jsonCodec{fail: true})
	if !errors.Is(err, ErrMarshal) {
		t.Errorf("MarshalAll() error = %v, want ErrMarshal", err)
	}

	p = NewProjector(postProjectorSchema(), Documents(postDocs()...))
	err = p.Encode(context.Background(), jsonCodec{fail: true}, func([]byte) error { return nil })
	var codecErr *CodecError
	if !errors.As(err, &codecErr) {
		t.Errorf("Encode() error = %v, want *CodecError", err)
	}
}

func TestProjector_Schema(t *testing.T) {
	s := postProjectorSchema()
	if NewProjector(s, Documents()).Schema() != s {
		t.Error("Schema() should return the projector's schema")
	}
}
