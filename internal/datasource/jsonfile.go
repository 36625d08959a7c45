package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Neeraj-Gupta12/PropBot/internal/model"
)

// File names expected under the data directory, matching the original
// dataset layout.
const (
	basicsFile          = "property_basics.json"
	characteristicsFile = "property_characteristics.json"
	mediaFile           = "property_images.json"
)

// JSONFiles loads the partial record sets from three JSON files in a
// directory.
type JSONFiles struct {
	dir string
}

// NewJSONFiles creates a JSON-file data source rooted at dir.
func NewJSONFiles(dir string) *JSONFiles {
	return &JSONFiles{dir: dir}
}

func (s *JSONFiles) LoadBasics(ctx context.Context) ([]model.Basic, error) {
	var out []model.Basic
	if err := s.loadFile(basicsFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *JSONFiles) LoadCharacteristics(ctx context.Context) ([]model.Characteristic, error) {
	var out []model.Characteristic
	if err := s.loadFile(characteristicsFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *JSONFiles) LoadMedia(ctx context.Context) ([]model.Media, error) {
	var out []model.Media
	if err := s.loadFile(mediaFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *JSONFiles) loadFile(name string, out interface{}) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
