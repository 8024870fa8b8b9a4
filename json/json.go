// Package json provides a JSON codec implementation.
package json

import (
	"encoding/json"

	"github.com/zoobzio/halfshift"
)

// jsonCodec implements halfshift.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() halfshift.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Sealed returns a processor that stores T as JSON with every
// halfshift-tagged field encrypted under pair.
func Sealed[T halfshift.Cloner[T]](pair halfshift.ShiftPair) (*halfshift.Processor[T], error) {
	proc, err := halfshift.NewProcessor[T](New())
	if err != nil {
		return nil, err
	}
	return proc.SetEncryptor(halfshift.EncryptHalfShift, halfshift.HalfShift(pair)), nil
}
