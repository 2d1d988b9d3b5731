package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// LoadMatchup reads and validates a matchup file.
func LoadMatchup(path string) (*Matchup, error) {
	var m Matchup
	if err := loadYAML(path, &m); err != nil {
		return nil, fmt.Errorf("load matchup %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("matchup %s: %w", path, err)
	}
	return &m, nil
}
