package halfshift

import (
	"context"
	"unicode/utf8"
)

// VerificationResult is the outcome of comparing an original text with its
// decrypted form.
type VerificationResult int

const (
	// Success means the decrypted text matches the original exactly.
	Success VerificationResult = iota

	// Mismatch means the texts differ.
	Mismatch
)

// String returns the human-readable status line.
func (r VerificationResult) String() string {
	if r == Success {
		return "encryption and decryption successful"
	}
	return "decryption failed"
}

// OK reports whether the result is Success.
func (r VerificationResult) OK() bool {
	return r == Success
}

// Verify compares original and decrypted character for character.
func Verify(original, decrypted string) VerificationResult {
	if original == decrypted {
		return Success
	}
	return Mismatch
}

// Report describes a full encrypt, decrypt and verify cycle.
type Report struct {
	Original  string
	Encrypted string
	Decrypted string
	Result    VerificationResult

	// FirstMismatch is the character index of the first difference
	// between Original and Decrypted, or -1 when they match. Each invalid
	// UTF-8 byte counts as one character.
	FirstMismatch int
}

// Check builds a Report for an externally produced encrypt/decrypt cycle,
// for example one that round-tripped through files.
func Check(ctx context.Context, original, encrypted, decrypted string) Report {
	return newReport(ctx, original, encrypted, decrypted)
}

func newReport(ctx context.Context, original, encrypted, decrypted string) Report {
	result := Verify(original, decrypted)
	r := Report{
		Original:      original,
		Encrypted:     encrypted,
		Decrypted:     decrypted,
		Result:        result,
		FirstMismatch: -1,
	}
	if !result.OK() {
		r.FirstMismatch = firstDifference(original, decrypted)
	}

	emitVerifyComplete(ctx, result, r.FirstMismatch)
	return r
}

// firstDifference returns the character index at which a and b first
// differ, counting each invalid UTF-8 byte as one character. When one is a
// prefix of the other it returns the length of the shorter.
func firstDifference(a, b string) int {
	idx := 0
	for len(a) > 0 && len(b) > 0 {
		_, na := utf8.DecodeRuneInString(a)
		_, nb := utf8.DecodeRuneInString(b)
		if a[:na] != b[:nb] {
			return idx
		}
		a, b = a[na:], b[nb:]
		idx++
	}
	if len(a) == len(b) {
		return -1
	}
	return idx
}
