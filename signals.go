package mongy

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for projection events.
var (
	SignalSchemaRegistered = capitan.NewSignal("mongy.schema.registered", "Schema bindings resolved")
	SignalProjectorCreated = capitan.NewSignal("mongy.projector.created", "Projector instantiated")
	SignalStreamStart      = capitan.NewSignal("mongy.stream.start", "Record stream beginning")
	SignalStreamComplete   = capitan.NewSignal("mongy.stream.complete", "Record stream finished")
	SignalRecordSerialized = capitan.NewSignal("mongy.record.serialized", "Record projected")
	SignalTotalFailed      = capitan.NewSignal("mongy.total.failed", "Record source could not report its size")
)

// Keys for typed event data.
var (
	KeySchema   = capitan.NewStringKey("schema")
	KeyFields   = capitan.NewIntKey("fields")
	KeyCount    = capitan.NewIntKey("count")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

func emitSchemaRegistered(ctx context.Context, schema string, fields int) {
	capitan.Emit(ctx, SignalSchemaRegistered,
		KeySchema.Field(schema),
		KeyFields.Field(fields),
	)
}

func emitProjectorCreated(ctx context.Context, schema string, fields int) {
	capitan.Emit(ctx, SignalProjectorCreated,
		KeySchema.Field(schema),
		KeyFields.Field(fields),
	)
}

func emitStreamStart(ctx context.Context, schema string) {
	capitan.Emit(ctx, SignalStreamStart,
		KeySchema.Field(schema),
	)
}

// emitStreamComplete reports the number of records produced and the failure, if any.
func emitStreamComplete(ctx context.Context, schema string, count int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeySchema.Field(schema),
		KeyCount.Field(count),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalStreamComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalStreamComplete, fields...)
	}
}

func emitRecordSerialized(ctx context.Context, schema string, fields int) {
	capitan.Emit(ctx, SignalRecordSerialized,
		KeySchema.Field(schema),
		KeyFields.Field(fields),
	)
}

func emitTotalFailed(ctx context.Context, schema string, err error) {
	capitan.Error(ctx, SignalTotalFailed,
		KeySchema.Field(schema),
		KeyError.Field(err),
	)
}
