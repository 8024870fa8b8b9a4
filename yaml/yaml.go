// Package yaml provides a YAML codec implementation.
package yaml

import (
	"github.com/zoobzio/halfshift"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements halfshift.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() halfshift.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// Sealed returns a processor that stores T as YAML with every
// halfshift-tagged field encrypted under pair.
func Sealed[T halfshift.Cloner[T]](pair halfshift.ShiftPair) (*halfshift.Processor[T], error) {
	proc, err := halfshift.NewProcessor[T](New())
	if err != nil {
		return nil, err
	}
	return proc.SetEncryptor(halfshift.EncryptHalfShift, halfshift.HalfShift(pair)), nil
}
