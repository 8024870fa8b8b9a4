// Package bson provides a BSON codec implementation.
package bson

import (
	"github.com/zoobzio/halfshift"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements halfshift.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() halfshift.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}

// Sealed returns a processor that stores T as BSON with every
// halfshift-tagged field encrypted under pair.
func Sealed[T halfshift.Cloner[T]](pair halfshift.ShiftPair) (*halfshift.Processor[T], error) {
	proc, err := halfshift.NewProcessor[T](New())
	if err != nil {
		return nil, err
	}
	return proc.SetEncryptor(halfshift.EncryptHalfShift, halfshift.HalfShift(pair)), nil
}
