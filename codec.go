package halfshift

// Codec turns records into bytes and back. Processor encrypts tagged
// fields before Marshal and decrypts them after Unmarshal, so a codec
// only ever sees ciphertext in those fields.
type Codec interface {
	// ContentType returns the MIME type, e.g. "application/json".
	ContentType() string

	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}
