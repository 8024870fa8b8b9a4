// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/halfshift"
)

// msgpackCodec implements halfshift.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() halfshift.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// Sealed returns a processor that stores T as MessagePack with every
// halfshift-tagged field encrypted under pair.
func Sealed[T halfshift.Cloner[T]](pair halfshift.ShiftPair) (*halfshift.Processor[T], error) {
	proc, err := halfshift.NewProcessor[T](New())
	if err != nil {
		return nil, err
	}
	return proc.SetEncryptor(halfshift.EncryptHalfShift, halfshift.HalfShift(pair)), nil
}
