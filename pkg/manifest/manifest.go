package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Entry records the last rewrite of one source file.
type Entry struct {
	Source     string `yaml:"source" json:"source"`
	Output     string `yaml:"output,omitempty" json:"output,omitempty"`
	Directives int    `yaml:"directives" json:"directives"`
	Dropped    int    `yaml:"dropped" json:"dropped"`
}

// Manifest tracks the files produced by rewrite passes.
type Manifest struct {
	Semantic string  `yaml:"semantic" json:"semantic"`
	Entries  []Entry `yaml:"entries" json:"entries"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
// Entries are written sorted by source.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	sort.SliceStable(m.Entries, func(i, j int) bool {
		return m.Entries[i].Source < m.Entries[j].Source
	})
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// Record adds an entry, replacing any earlier entry for the same source.
func (m *Manifest) Record(e Entry) {
	for i := range m.Entries {
		if m.Entries[i].Source == e.Source {
			m.Entries[i] = e
			return
		}
	}

	m.Entries = append(m.Entries, e)
}

// Entry returns the entry recorded for source, if present.
func (m *Manifest) Entry(source string) (Entry, bool) {
	for _, e := range m.Entries {
		if e.Source == source {
			return e, true
		}
	}
	return Entry{}, false
}
