package config

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// Fingerprint is the BLAKE2b-256 of the canonical YAML encoding. Runs with
// the same tuning share a fingerprint.
func (c Deadzone) Fingerprint() (string, error) {
	data, err := yaml.Marshal(c.tuning())
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// tuning drops the fields that do not change gameplay.
func (c Deadzone) tuning() Deadzone {
	c.LogLevel = ""
	c.Duration = 0
	c.SaveApp = ""
	c.Database = DatabaseConfig{}
	return c
}
