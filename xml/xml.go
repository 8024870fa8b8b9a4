// Package xml provides an XML codec implementation.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/halfshift"
)

// xmlCodec implements halfshift.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() halfshift.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// Sealed returns a processor that stores T as XML with every
// halfshift-tagged field encrypted under pair.
func Sealed[T halfshift.Cloner[T]](pair halfshift.ShiftPair) (*halfshift.Processor[T], error) {
	proc, err := halfshift.NewProcessor[T](New())
	if err != nil {
		return nil, err
	}
	return proc.SetEncryptor(halfshift.EncryptHalfShift, halfshift.HalfShift(pair)), nil
}
