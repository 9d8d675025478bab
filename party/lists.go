// ABOUTME: Loads auxiliary string lists (maps, punishments) from JSON or YAML files on demand.
// ABOUTME: Any failure degrades to an empty list and a warning; callers decide how to report emptiness.
package party

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Well-known list keys.
const (
	MapsKey        = "maps"
	PunishmentsKey = "punishments"
)

// ListFile names a list stored under Key in the file at Path.
type ListFile struct {
	Path string
	Key  string
}

// Load reads the list fresh. See LoadList.
func (f ListFile) Load(logger *zap.Logger) []string {
	return LoadList(logger, f.Path, f.Key)
}

// LoadList reads path and returns the string items stored under key.
// Non-string items are skipped. A missing file, a decode error, or a missing
// key all yield an empty list.
func LoadList(logger *zap.Logger, path, key string) []string {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("failed to load list", zap.String("path", path), zap.String("key", key), zap.Error(err))
		return []string{}
	}

	var doc map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		logger.Warn("failed to decode list", zap.String("path", path), zap.String("key", key), zap.Error(err))
		return []string{}
	}

	raw, ok := doc[key].([]any)
	if !ok {
		logger.Warn("list key missing", zap.String("path", path), zap.String("key", key))
		return []string{}
	}

	items := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			items = append(items, s)
		}
	}
	return items
}
