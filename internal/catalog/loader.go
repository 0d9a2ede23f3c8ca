package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/swasthyabot/swasthya/internal/model"
)

// file is the on-disk catalog schema
type file struct {
	Symptoms     []model.Symptom     `yaml:"symptoms"`
	Diseases     []model.Disease     `yaml:"diseases"`
	Associations []model.Association `yaml:"associations"`
}

// LoadFile reads a YAML catalog from path
func LoadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes
func Parse(data []byte) (*Memory, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Symptoms) == 0 {
		return nil, fmt.Errorf("catalog has no symptoms")
	}

	m, err := NewMemory(f.Symptoms, f.Diseases, f.Associations)
	if err != nil {
		return nil, fmt.Errorf("catalog integrity: %w", err)
	}
	return m, nil
}
