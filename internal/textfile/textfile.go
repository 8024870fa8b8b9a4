// Package textfile reads and writes whole text files for the CLI.
package textfile

import (
	"fmt"
	"os"
)

// filePerm is used for every file the tool writes.
const filePerm = 0o644

// Read returns the full contents of path as text.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the operator
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Write replaces the contents of path with text, creating it if needed.
func Write(path, text string) error {
	if err := os.WriteFile(path, []byte(text), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
