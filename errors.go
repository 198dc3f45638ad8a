package mongy

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidDataSource indicates a record source exposes neither a count nor a length.
	ErrInvalidDataSource = errors.New("invalid data source")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrMarshal indicates the codec failed to marshal projected output.
	ErrMarshal = errors.New("marshal failed")
)

// SourceError represents a record source that cannot report its size.
type SourceError struct {
	Err    error  // Underlying sentinel error (ErrInvalidDataSource)
	Source string // Type name of the source
	Cause  error  // Count failure, if the source tried and failed
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Err.Error(), e.Source, e.Cause)
	}
	return fmt.Sprintf("%s %s", e.Err.Error(), e.Source)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid schema declaration.
// It wraps a sentinel error with the offending field and tag value.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrInvalidTag)
	Field string // Field name that triggered the error
	Value string // Tag value that was rejected
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Value, e.Field)
	}
	if e.Value != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Value)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func newSourceError(sentinel error, source string, cause error) error {
	return &SourceError{
		Err:    sentinel,
		Source: source,
		Cause:  cause,
	}
}

func newConfigError(sentinel error, field, value string) error {
	return &ConfigError{
		Err:   sentinel,
		Field: field,
		Value: value,
	}
}

func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
