package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Features []featureSchema `toml:"features"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported endpoints schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type featureSchema struct {
	Name         string            `toml:"name"`
	Description  string            `toml:"description,omitempty"`
	LastResolved string            `toml:"last_resolved,omitempty"`
	ResolvedAt   string            `toml:"resolved_at,omitempty"`
	Candidates   []candidateSchema `toml:"candidates"`
}

type candidateSchema struct {
	Method  string            `toml:"method"`
	Path    string            `toml:"path"`
	Headers map[string]string `toml:"headers,omitempty"`
}
