package mongy

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDispatch(t *testing.T) {
	cfg := NewConfig()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"int", 1, "*mongy.integerStrategy"},
		{"date", civil.Date{Year: 2024, Month: 1, Day: 1}, "*mongy.dateStrategy"},
		{"datetime", time.Now(), "*mongy.dateStrategy"},
		{"mapping", bson.M{"a": 1}, "*mongy.mappingStrategy"},
		{"sequence", bson.A{1}, "*mongy.sequenceStrategy"},
		{"string", "x", "*mongy.stringStrategy"},
		{"bool", true, "*mongy.stringStrategy"},
		{"float", 1.5, "*mongy.stringStrategy"},
		{"null", nil, "*mongy.stringStrategy"},
		{"opaque", primitive.NewObjectID(), "*mongy.stringStrategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := typeName(Dispatch(ValueOf(tt.input), cfg))
			if got != tt.want {
				t.Errorf("Dispatch(%v) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestDispatch_DateTimeNotDate(t *testing.T) {
	cfg := NewConfig(WithDateFormat("date:%Y"), WithDateTimeFormat("datetime:%Y"))
	at := ValueOf(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	s, ok := Dispatch(at, cfg).(*dateStrategy)
	if !ok || !s.datetime {
		t.Fatal("datetime values should dispatch to the datetime strategy")
	}
	if got := s.Serialize(at); got != "datetime:2024" {
		t.Errorf("Serialize() = %v, want %q", got, "datetime:2024")
	}

	day := ValueOf(civil.Date{Year: 2024, Month: 6, Day: 1})
	if got := Dispatch(day, cfg).Serialize(day); got != "date:2024" {
		t.Errorf("Serialize() = %v, want %q", got, "date:2024")
	}
}

func TestDispatch_CarriesConfig(t *testing.T) {
	cfg := NewConfig(WithDepth(3), WithMaxDepth(1))
	if got := Dispatch(ValueOf(bson.M{"a": 1}), cfg).Serialize(ValueOf(bson.M{"a": 1})); got != nil {
		t.Errorf("Serialize() = %#v, want nil past the budget", got)
	}
}

func typeName(s Strategy) string {
	switch s.(type) {
	case *integerStrategy:
		return "*mongy.integerStrategy"
	case *dateStrategy:
		return "*mongy.dateStrategy"
	case *mappingStrategy:
		return "*mongy.mappingStrategy"
	case *sequenceStrategy:
		return "*mongy.sequenceStrategy"
	case *stringStrategy:
		return "*mongy.stringStrategy"
	}
	return "unknown"
}
