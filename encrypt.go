package halfshift

// Encryptor handles encryption/decryption operations.
type Encryptor interface {
	// Encrypt encrypts plaintext and returns ciphertext.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext and returns plaintext.
	Decrypt(ciphertext []byte) ([]byte, error)
}

// halfShiftEncryptor implements Encryptor with the half-alphabet cipher.
type halfShiftEncryptor struct {
	pair ShiftPair
}

// HalfShift returns an encryptor for the given shifts.
// Ciphertext has the same length as plaintext and stays printable text.
func HalfShift(pair ShiftPair) Encryptor {
	return &halfShiftEncryptor{pair: pair}
}

func (e *halfShiftEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	return TransformBytes(plaintext, e.pair, Encrypt), nil
}

func (e *halfShiftEncryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	return TransformBytes(ciphertext, e.pair, Decrypt), nil
}
