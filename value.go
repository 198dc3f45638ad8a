package mongy

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindDate
	KindDateTime
	KindMapping
	KindSequence
	KindOpaque

	// KindTotal is the number of kinds defined.
	KindTotal = int(iota)
)

var kindNames = [KindTotal]string{
	"null", "bool", "int", "float", "string", "date", "datetime", "mapping", "sequence", "opaque",
}

func (k Kind) String() string {
	if int(k) < KindTotal {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Entry is one key/value pair of a mapping Value.
type Entry struct {
	Key   string
	Value Value
}

// Value is a dynamically-typed document value.
//
// The zero Value is Null. Values built by ValueOf remember the native value
// they were normalized from, and Interface returns it unchanged.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	f       float64
	s       string
	date    civil.Date
	t       time.Time
	entries []Entry
	items   []Value
	raw     any
}

// NullValue returns the Null value.
func NullValue() Value { return Value{} }

// BoolValue returns a Bool value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue returns an Int value.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue returns a Float value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// StringValue returns a String value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// DateValue returns a Date value with no time component.
func DateValue(d civil.Date) Value { return Value{kind: KindDate, date: d} }

// DateTimeValue returns a DateTime value.
func DateTimeValue(t time.Time) Value { return Value{kind: KindDateTime, t: t} }

// MappingValue returns a Mapping value holding entries in the given order.
func MappingValue(entries ...Entry) Value {
	return Value{kind: KindMapping, entries: entries}
}

// SequenceValue returns a Sequence value.
func SequenceValue(items ...Value) Value {
	return Value{kind: KindSequence, items: items}
}

// OpaqueValue wraps a value the engine has no variant for.
func OpaqueValue(x any) Value {
	if x == nil {
		return Value{}
	}
	return Value{kind: KindOpaque, raw: x}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Len returns the number of entries or items of a mapping or sequence, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindMapping:
		return len(v.entries)
	case KindSequence:
		return len(v.items)
	}
	return 0
}

// Entries returns the entries of a mapping value.
func (v Value) Entries() []Entry { return v.entries }

// Items returns the items of a sequence value.
func (v Value) Items() []Value { return v.items }

// Interface returns the native Go form of v.
func (v Value) Interface() any {
	if v.raw != nil {
		return v.raw
	}
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindDate:
		return v.date
	case KindDateTime:
		return v.t
	case KindMapping:
		m := make(map[string]any, len(v.entries))
		for _, e := range v.entries {
			m[e.Key] = e.Value.Interface()
		}
		return m
	case KindSequence:
		s := make([]any, len(v.items))
		for i, item := range v.items {
			s[i] = item.Interface()
		}
		return s
	}
	return nil
}

// IsNullOrEmpty reports whether v counts as absent: Null, false, zero numbers,
// the empty string, and empty mappings or sequences.
func IsNullOrEmpty(v Value) bool {
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return !v.b
	case KindInt:
		return v.i == 0
	case KindFloat:
		return v.f == 0
	case KindString:
		return v.s == ""
	case KindMapping:
		return len(v.entries) == 0
	case KindSequence:
		return len(v.items) == 0
	}
	return false
}

// ValueOf normalizes a native Go or BSON value into a Value.
func ValueOf(x any) Value {
	switch t := x.(type) {
	case Value:
		return t
	case Valuer:
		return t.MongyValue()
	}
	v := valueOf(x)
	if v.kind != KindNull && v.raw == nil {
		v.raw = x
	}
	return v
}

func valueOf(x any) Value {
	switch t := x.(type) {
	case nil, primitive.Null, primitive.Undefined:
		return Value{}
	case bool:
		return BoolValue(t)
	case int:
		return IntValue(int64(t))
	case int8:
		return IntValue(int64(t))
	case int16:
		return IntValue(int64(t))
	case int32:
		return IntValue(int64(t))
	case int64:
		return IntValue(t)
	case uint8:
		return IntValue(int64(t))
	case uint16:
		return IntValue(int64(t))
	case uint32:
		return IntValue(int64(t))
	case uint:
		return uintValue(uint64(t), x)
	case uint64:
		return uintValue(t, x)
	case float32:
		return FloatValue(float64(t))
	case float64:
		return FloatValue(t)
	case string:
		return StringValue(t)
	case civil.Date:
		return DateValue(t)
	case civil.DateTime:
		return DateTimeValue(t.In(time.UTC))
	case time.Time:
		return DateTimeValue(t)
	case primitive.DateTime:
		return DateTimeValue(t.Time().UTC())
	case primitive.Timestamp:
		return DateTimeValue(time.Unix(int64(t.T), 0).UTC())
	case primitive.D:
		entries := make([]Entry, len(t))
		for i, e := range t {
			entries[i] = Entry{Key: e.Key, Value: ValueOf(e.Value)}
		}
		return MappingValue(entries...)
	case Document:
		return mappingOf(t)
	case primitive.M:
		return mappingOf(t)
	case map[string]any:
		return mappingOf(t)
	case primitive.A:
		return sequenceOf(t)
	case []any:
		return sequenceOf(t)
	case []byte:
		return OpaqueValue(t)
	case encoding.TextMarshaler, fmt.Stringer, error:
		return OpaqueValue(t)
	}
	return reflectValueOf(x)
}

func uintValue(u uint64, x any) Value {
	if u > math.MaxInt64 {
		return OpaqueValue(x)
	}
	return IntValue(int64(u))
}

func mappingOf[M ~map[string]any](m M) Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Value: ValueOf(m[k])}
	}
	return MappingValue(entries...)
}

func sequenceOf[S ~[]any](s S) Value {
	items := make([]Value, len(s))
	for i, item := range s {
		items[i] = ValueOf(item)
	}
	return SequenceValue(items...)
}

// reflectValueOf handles named scalar types, typed maps and slices, and pointers.
func reflectValueOf(x any) Value {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Value{}
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Bool:
		return BoolValue(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uintValue(rv.Uint(), x)
	case reflect.Float32, reflect.Float64:
		return FloatValue(rv.Float())
	case reflect.String:
		return StringValue(rv.String())
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return OpaqueValue(x)
		}
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		sort.Strings(keys)
		entries := make([]Entry, len(keys))
		for i, k := range keys {
			elem := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			entries[i] = Entry{Key: k, Value: ValueOf(elem.Interface())}
		}
		return MappingValue(entries...)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Value{}
		}
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = ValueOf(rv.Index(i).Interface())
		}
		return SequenceValue(items...)
	}
	return OpaqueValue(x)
}

// isEmptyOutput reports whether a serialized output counts as falsy.
func isEmptyOutput(out any) bool {
	if out == nil {
		return true
	}
	rv := reflect.ValueOf(out)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.String, reflect.Map, reflect.Slice:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
