package scripts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"OkukujiBackend/internal/model"
)

// ManifestFile is the name of the gallery description inside the gallery
// folder.
const ManifestFile = "gallery.yaml"

type ManifestEntry struct {
	File     string   `yaml:"file"`
	ID       string   `yaml:"id,omitempty"`
	Location string   `yaml:"location"`
	MapLink  string   `yaml:"map_link,omitempty"`
	Seasons  []string `yaml:"seasons"`
	GridSize string   `yaml:"grid_size,omitempty"`
}

type Manifest struct {
	Images []ManifestEntry `yaml:"images"`
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &m, nil
}

// entryID defaults to the file name without extension.
func (e ManifestEntry) entryID() string {
	if e.ID != "" {
		return e.ID
	}
	base := filepath.Base(e.File)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Validate checks the entries and returns an error naming the first bad one.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Images))
	for i, e := range m.Images {
		if e.File == "" {
			return fmt.Errorf("entry %d: file is required", i)
		}
		if strings.Contains(e.File, "..") || filepath.IsAbs(e.File) {
			return fmt.Errorf("entry %d: file %q must stay inside the gallery folder", i, e.File)
		}
		id := e.entryID()
		if seen[id] {
			return fmt.Errorf("entry %d: duplicate id %q", i, id)
		}
		seen[id] = true
		for _, s := range e.Seasons {
			if _, ok := model.ParseSeason(s); !ok {
				return fmt.Errorf("entry %d: unknown season %q", i, s)
			}
		}
		if e.GridSize != "" {
			if _, ok := model.ParseGridSize(e.GridSize); !ok {
				return fmt.Errorf("entry %d: unknown grid size %q", i, e.GridSize)
			}
		}
	}
	return nil
}
