package halfshift

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidShift indicates a shift value is not a well-formed integer.
	ErrInvalidShift = errors.New("invalid shift")

	// ErrInvalidDirection indicates a direction other than encrypt or decrypt.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrMissingEncryptor indicates a required encryptor was not registered.
	ErrMissingEncryptor = errors.New("missing encryptor")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrEncrypt indicates encryption of a field failed.
	ErrEncrypt = errors.New("encrypt failed")

	// ErrDecrypt indicates decryption of a field failed.
	ErrDecrypt = errors.New("decrypt failed")

	// ErrRoundTrip indicates decrypting an encrypted text did not reproduce
	// the original.
	ErrRoundTrip = errors.New("round trip mismatch")
)

// ShiftError reports a shift value that could not be parsed.
type ShiftError struct {
	Err   error  // Underlying sentinel error (ErrInvalidShift)
	Name  string // Which shift was malformed (shift1, shift2)
	Input string // Raw input as supplied by the caller
	Cause error  // Parse error, if any
}

func (e *ShiftError) Error() string {
	reason := "is not an integer"
	if errors.Is(e.Cause, strconv.ErrRange) {
		reason = "is out of range"
	}
	if e.Name != "" {
		return fmt.Sprintf("%s %s: %q %s", e.Err.Error(), e.Name, e.Input, reason)
	}
	return fmt.Sprintf("%s: %q %s", e.Err.Error(), e.Input, reason)
}

// Unwrap exposes both the sentinel and the parse error, so errors.As can
// reach a *strconv.NumError.
func (e *ShiftError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with additional context about the field and algorithm.
type ConfigError struct {
	Err       error  // Underlying sentinel error (ErrMissingEncryptor, ErrInvalidTag)
	Field     string // Field name that triggered the error
	Algorithm string // Algorithm that was missing/invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q (field %s)", e.Err.Error(), e.Algorithm, e.Field)
	}
	if e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q", e.Err.Error(), e.Algorithm)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError represents an error during field transformation.
// It wraps a sentinel error with context about which field and operation failed.
type TransformError struct {
	Err       error  // Underlying sentinel error (ErrEncrypt, ErrDecrypt)
	Field     string // Field name that failed
	Operation string // Operation that failed (encrypt, decrypt)
	Cause     error  // Original error from the encryptor
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s field %s: %v", e.Operation, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s field %s", e.Operation, e.Field)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
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

func newShiftError(name, input string, cause error) error {
	return &ShiftError{
		Err:   ErrInvalidShift,
		Name:  name,
		Input: input,
		Cause: cause,
	}
}

// newConfigError creates a ConfigError for missing or invalid capabilities.
func newConfigError(sentinel error, algorithm, field string) error {
	return &ConfigError{
		Err:       sentinel,
		Algorithm: algorithm,
		Field:     field,
	}
}

// newTransformError creates a TransformError for field transformation failures.
func newTransformError(sentinel error, operation, field string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Field:     field,
		Operation: operation,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
