package halfshift

import "fmt"

// EncryptAlgo represents a supported encryption algorithm.
// Use these constants in struct tags: `store.encrypt:"halfshift"`
type EncryptAlgo string

const (
	// EncryptHalfShift uses the two-shift half-alphabet substitution cipher.
	EncryptHalfShift EncryptAlgo = "halfshift"
)

// validEncryptAlgos contains all valid encryption algorithms for tag validation.
var validEncryptAlgos = map[EncryptAlgo]bool{
	EncryptHalfShift: true,
}

// validDirections contains both transform directions.
var validDirections = map[Direction]bool{
	Encrypt: true,
	Decrypt: true,
}

// IsValidEncryptAlgo returns true if the algorithm is a known encryption algorithm.
func IsValidEncryptAlgo(algo EncryptAlgo) bool {
	return validEncryptAlgos[algo]
}

// IsValidDirection returns true if dir is Encrypt or Decrypt.
func IsValidDirection(dir Direction) bool {
	return validDirections[dir]
}

// ParseDirection converts a user-supplied name into a Direction.
func ParseDirection(s string) (Direction, error) {
	dir := Direction(s)
	if !IsValidDirection(dir) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return dir, nil
}
