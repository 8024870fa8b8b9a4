package halfshift

import (
	"context"
	"time"
)

// Transform applies the cipher in the given direction to every letter of
// text. Letters are ASCII, so text is processed byte by byte: every other
// byte, including invalid UTF-8, is copied unchanged and the output has the
// same length as the input.
//
// Any dir other than Decrypt encrypts. Validate untrusted input with
// ParseDirection first.
func Transform(text string, pair ShiftPair, dir Direction) string {
	return string(TransformBytes([]byte(text), pair, dir))
}

// TransformBytes is the byte slice form of Transform.
// The input slice is not modified.
func TransformBytes(data []byte, pair ShiftPair, dir Direction) []byte {
	out := make([]byte, len(data))
	for i, c := range data {
		if l, ok := ClassifyLetter(rune(c)); ok {
			out[i] = byte(TransformLetter(l, pair, dir).Rune())
			continue
		}
		out[i] = c
	}
	return out
}

// EncryptText encrypts text with pair.
func EncryptText(text string, pair ShiftPair) string {
	return Transform(text, pair, Encrypt)
}

// DecryptText decrypts text with pair.
func DecryptText(text string, pair ShiftPair) string {
	return Transform(text, pair, Decrypt)
}

// countLetters returns how many bytes of text the cipher would change.
func countLetters(text string) int {
	n := 0
	for i := 0; i < len(text); i++ {
		if _, ok := ClassifyLetter(rune(text[i])); ok {
			n++
		}
	}
	return n
}

// Cipher binds a ShiftPair and emits capitan signals around each transform.
// The zero value uses shifts (0, 0). Cipher values are safe for concurrent use.
type Cipher struct {
	pair ShiftPair
}

// NewCipher returns a Cipher for pair.
func NewCipher(pair ShiftPair) Cipher {
	emitCipherCreated(context.Background(), pair)
	return Cipher{pair: pair}
}

// Pair returns the shifts the cipher was built with.
func (c Cipher) Pair() ShiftPair {
	return c.pair
}

// Encrypt encrypts text.
func (c Cipher) Encrypt(ctx context.Context, text string) string {
	return c.run(ctx, text, Encrypt)
}

// Decrypt decrypts text.
func (c Cipher) Decrypt(ctx context.Context, text string) string {
	return c.run(ctx, text, Decrypt)
}

func (c Cipher) run(ctx context.Context, text string, dir Direction) string {
	start := time.Now()
	emitTransformStart(ctx, dir, len(text))

	out := Transform(text, c.pair, dir)

	emitTransformComplete(ctx, dir, len(out), countLetters(text), time.Since(start))
	return out
}

// RoundTrip encrypts text, decrypts the result and verifies it against the
// original.
func (c Cipher) RoundTrip(ctx context.Context, text string) Report {
	encrypted := c.Encrypt(ctx, text)
	decrypted := c.Decrypt(ctx, encrypted)
	return newReport(ctx, text, encrypted, decrypted)
}
