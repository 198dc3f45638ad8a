package mongy

import (
	"encoding"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Strategy serializes one value into an output-safe form.
//
// Strategies never fail the caller. A value that cannot be coerced is
// returned in its native form, and absent values (see IsNullOrEmpty) are
// returned unchanged.
type Strategy interface {
	Serialize(v Value) any
}

// stringStrategy coerces values to their string form.
type stringStrategy struct {
	cfg Config
}

// String returns a strategy that renders scalars as strings.
// Booleans render as "true" and "false". Mappings and sequences are not
// stringified and pass through unchanged.
func String(opts ...Option) Strategy {
	return &stringStrategy{cfg: NewConfig(opts...)}
}

// ID returns the strategy bound to document identifiers.
// ObjectIDs render as their hex form.
func ID(opts ...Option) Strategy {
	return String(opts...)
}

func (s *stringStrategy) Serialize(v Value) any {
	if IsNullOrEmpty(v) {
		return v.Interface()
	}
	if str, ok := coerceString(v); ok {
		return str
	}
	return v.Interface()
}

func coerceString(v Value) (string, bool) {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b), true
	case KindInt:
		return strconv.FormatInt(v.i, 10), true
	case KindFloat:
		return formatFloat(v.f), true
	case KindString:
		return v.s, true
	case KindDate:
		return v.date.String(), true
	case KindDateTime:
		return formatDateTime(v.t), true
	case KindOpaque:
		switch raw := v.raw.(type) {
		case encoding.TextMarshaler:
			text, err := raw.MarshalText()
			if err != nil {
				return "", false
			}
			return string(text), true
		case fmt.Stringer:
			return raw.String(), true
		case error:
			return raw.Error(), true
		}
	}
	return "", false
}

// formatFloat renders f in its shortest round-trip form. Whole numbers keep
// a ".0" suffix and exponents are used only below 1e-4 or from 1e16 up.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// formatDateTime renders t with six fractional digits, or none when t has no
// microseconds.
func formatDateTime(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format("2006-01-02 15:04:05")
	}
	return t.Format("2006-01-02 15:04:05.000000")
}

// integerStrategy coerces values to int64.
type integerStrategy struct {
	cfg Config
}

// Integer returns a strategy that renders values as integers.
func Integer(opts ...Option) Strategy {
	return &integerStrategy{cfg: NewConfig(opts...)}
}

func (s *integerStrategy) Serialize(v Value) any {
	if IsNullOrEmpty(v) {
		return v.Interface()
	}
	if i, ok := coerceInt(v); ok {
		return i
	}
	return v.Interface()
}

func coerceInt(v Value) (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return 0, false
		}
		f := math.Trunc(v.f)
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	case KindString:
		i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// dateStrategy formats date and datetime values with a strftime pattern.
type dateStrategy struct {
	cfg      Config
	datetime bool
}

// Date returns a strategy that formats values with the date pattern.
func Date(opts ...Option) Strategy {
	return &dateStrategy{cfg: NewConfig(opts...)}
}

// DateTime returns a strategy that formats values with the datetime pattern.
func DateTime(opts ...Option) Strategy {
	return &dateStrategy{cfg: NewConfig(opts...), datetime: true}
}

func (s *dateStrategy) Serialize(v Value) any {
	if IsNullOrEmpty(v) {
		return v.Interface()
	}

	var t time.Time
	switch v.kind {
	case KindDate:
		t = v.date.In(time.UTC)
	case KindDateTime:
		t = v.t
	default:
		return v.Interface()
	}

	pattern := s.cfg.dateFormat
	if s.datetime {
		pattern = s.cfg.dateTimeFormat
	}

	out, err := formatTime(pattern, t)
	if err != nil {
		return v.Interface()
	}
	return out
}
