// Package config provides CLI configuration loaded from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix for every setting.
const Prefix = "HALFSHIFT"

// Config holds all environment-based configuration.
// Field names map to environment variables with the HALFSHIFT_ prefix.
type Config struct {
	// Shift1 is the first shift, kept as text so it is validated by
	// halfshift.ParseShiftPair. Empty means prompt.
	// Env: HALFSHIFT_SHIFT1
	Shift1 string `envconfig:"SHIFT1"`

	// Shift2 is the second shift. Empty means prompt.
	// Env: HALFSHIFT_SHIFT2
	Shift2 string `envconfig:"SHIFT2"`

	// RawPath is the plaintext input file.
	// Env: HALFSHIFT_RAW_PATH (default: raw_text.txt)
	RawPath string `envconfig:"RAW_PATH" default:"raw_text.txt"`

	// EncryptedPath is where ciphertext is written and re-read.
	// Env: HALFSHIFT_ENCRYPTED_PATH (default: encrypted_text.txt)
	EncryptedPath string `envconfig:"ENCRYPTED_PATH" default:"encrypted_text.txt"`

	// DecryptedPath is where the decrypted text is written.
	// Env: HALFSHIFT_DECRYPTED_PATH (default: decrypted_text.txt)
	DecryptedPath string `envconfig:"DECRYPTED_PATH" default:"decrypted_text.txt"`

	// LogLevel is the log verbosity level (debug, info, warn, error).
	// Env: HALFSHIFT_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadFromEnv reads configuration from HALFSHIFT_* environment variables.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}

// Load loads an optional .env file and then the environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return LoadFromEnv()
}
