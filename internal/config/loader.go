// internal/config/loader.go
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a JSON settings file on top of Default and validates the result.
// Unknown fields and unknown rarity keys are rejected.
func Load(path string) (*Settings, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	s, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes JSON settings over the defaults.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal settings: %w", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
