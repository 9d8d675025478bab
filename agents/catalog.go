// ABOUTME: Catalog loaders that read agent records from JSON or YAML files on every call.
// ABOUTME: No caching: edits to the file are visible on the next selection.
package agents

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog supplies the enabled agents. Implementations must load fresh on
// every call.
type Catalog interface {
	Load() ([]Agent, error)
}

// CatalogFunc adapts a function to the Catalog interface.
type CatalogFunc func() ([]Agent, error)

// Load calls f.
func (f CatalogFunc) Load() ([]Agent, error) { return f() }

// StaticCatalog serves a fixed list. Useful for tests and previews; disabled
// entries and duplicate ids are filtered the same way as file catalogs.
type StaticCatalog []Agent

// Load returns the enabled agents in the list.
func (c StaticCatalog) Load() ([]Agent, error) {
	return filterEnabled(c), nil
}

// FileCatalog reads the catalog from Path. The format is chosen by extension:
// .yaml/.yml are YAML, anything else is JSON.
type FileCatalog struct {
	Path string
}

// catalogFile mirrors the on-disk layout: {"agents": [{...}, ...]}.
type catalogFile struct {
	Agents []catalogEntry `json:"agents" yaml:"agents"`
}

type catalogEntry struct {
	ID      string `json:"id" yaml:"id"`
	NameJa  string `json:"name_ja" yaml:"name_ja"`
	Role    int    `json:"role" yaml:"role"`
	Enabled *bool  `json:"enabled" yaml:"enabled"`
}

// Load reads and decodes the file, returning only enabled agents.
func (c FileCatalog) Load() ([]Agent, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("reading agent catalog: %w", err)
	}

	var file catalogFile
	if isYAML(c.Path) {
		err = yaml.Unmarshal(data, &file)
	} else {
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding agent catalog %s: %w", c.Path, err)
	}

	records := make([]Agent, 0, len(file.Agents))
	for _, e := range file.Agents {
		enabled := e.Enabled == nil || *e.Enabled
		records = append(records, Agent{
			ID:      e.ID,
			Name:    e.NameJa,
			Role:    Role(e.Role),
			Enabled: enabled,
		})
	}
	return filterEnabled(records), nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// filterEnabled drops disabled records and keeps the first record per id.
func filterEnabled(records []Agent) []Agent {
	out := make([]Agent, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, a := range records {
		if !a.Enabled || seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}
