package mongy

import (
	"context"
	"fmt"
)

// IDField is the document identifier bound by every schema.
const IDField = "_id"

// Binding pairs a top-level field name with the strategy that serializes it.
type Binding struct {
	Name     string
	Strategy Strategy
}

// Bind returns a Binding for name.
func Bind(name string, s Strategy) Binding {
	return Binding{Name: name, Strategy: s}
}

// Schema is the resolved, immutable set of field bindings for one record type.
// Names are unique; a later binding of the same name replaces the earlier one
// in place.
type Schema struct {
	name     string
	bindings []Binding
}

// base binds only the document identifier.
var base = &Schema{bindings: []Binding{{Name: IDField, Strategy: ID()}}}

// NewSchema returns a schema holding the identifier binding overlaid with bindings.
func NewSchema(name string, bindings ...Binding) *Schema {
	return base.Extend(name, bindings...)
}

// Extend returns a new schema that starts from s and overlays overrides by name.
// s is left unchanged.
func (s *Schema) Extend(name string, overrides ...Binding) *Schema {
	out := &Schema{
		name:     name,
		bindings: make([]Binding, len(s.bindings), len(s.bindings)+len(overrides)),
	}
	copy(out.bindings, s.bindings)
	for _, b := range overrides {
		if b.Strategy == nil {
			panic(fmt.Sprintf("mongy: nil strategy for field %q", b.Name))
		}
		out.set(b)
	}

	emitSchemaRegistered(context.Background(), name, len(out.bindings))
	return out
}

func (s *Schema) set(b Binding) {
	for i := range s.bindings {
		if s.bindings[i].Name == b.Name {
			s.bindings[i] = b
			return
		}
	}
	s.bindings = append(s.bindings, b)
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of bindings.
func (s *Schema) Len() int { return len(s.bindings) }

// Fields returns the bound field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.bindings))
	for i, b := range s.bindings {
		names[i] = b.Name
	}
	return names
}

// Lookup returns the strategy bound to name.
func (s *Schema) Lookup(name string) (Strategy, bool) {
	for _, b := range s.bindings {
		if b.Name == name {
			return b.Strategy, true
		}
	}
	return nil, false
}

// Bindings returns a copy of the bindings in declaration order.
func (s *Schema) Bindings() []Binding {
	out := make([]Binding, len(s.bindings))
	copy(out, s.bindings)
	return out
}
