package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creativehubiion/roadforge/internal/model"
)

// FileLoader loads piece templates from JSON files on disk, one file
// per type at <Dir>/<typeID>.json. When a type has no file, the loader
// falls back to the compiled-in set, so a piece directory only needs to
// contain overrides and additions.
type FileLoader struct {
	Dir string
}

// LoadTemplate reads and parses the piece definition for typeID.
func (l FileLoader) LoadTemplate(typeID string) (*model.Template, error) {
	path := filepath.Join(l.Dir, typeID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return builtinLoader{}.LoadTemplate(typeID)
		}
		return nil, err
	}
	var t model.Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if t.TypeID == "" {
		t.TypeID = typeID
	}
	if t.TypeID != typeID {
		return nil, fmt.Errorf("%s declares type %q", path, t.TypeID)
	}
	return &t, nil
}
