// Package catalog manages piece templates: loading them through an
// asset collaborator, caching by type ID, and instantiating independent
// deep clones for placement.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/creativehubiion/roadforge/internal/model"
)

// ErrAssetMissing means a piece type was never loaded or its load
// failed. The engine treats the type as unavailable for the rest of the
// run rather than aborting.
var ErrAssetMissing = errors.New("piece type not available")

// Loader is the asset collaborator: given a type ID, fetch and parse a
// template. Implementations may hit disk or network; the catalog calls
// each type at most once.
type Loader interface {
	LoadTemplate(typeID string) (*model.Template, error)
}

// Catalog caches templates by type ID and produces placed instances.
type Catalog struct {
	loader    Loader
	templates map[string]*model.Template
	failed    map[string]error
}

// New creates a catalog backed by the given loader.
func New(loader Loader) *Catalog {
	return &Catalog{
		loader:    loader,
		templates: make(map[string]*model.Template),
		failed:    make(map[string]error),
	}
}

// NewBuiltin creates a catalog backed by the compiled-in piece set and
// preloads every built-in type.
func NewBuiltin() *Catalog {
	c := New(builtinLoader{})
	for _, id := range BuiltinTypeIDs() {
		_, _ = c.Load(id)
	}
	return c
}

// Load fetches and caches the template for a type ID. It is idempotent:
// a second call returns the cached template without re-fetching, and a
// failed load stays failed for the lifetime of the catalog.
func (c *Catalog) Load(typeID string) (*model.Template, error) {
	if t, ok := c.templates[typeID]; ok {
		return t, nil
	}
	if err, ok := c.failed[typeID]; ok {
		return nil, err
	}
	t, err := c.loader.LoadTemplate(typeID)
	if err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrAssetMissing, typeID, err)
		c.failed[typeID] = err
		return nil, err
	}
	if err := resolveSockets(t); err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrAssetMissing, typeID, err)
		c.failed[typeID] = err
		return nil, err
	}
	c.templates[typeID] = t
	return t, nil
}

// Template returns a cached template without triggering a load.
func (c *Catalog) Template(typeID string) (*model.Template, bool) {
	t, ok := c.templates[typeID]
	return t, ok
}

// Instantiate deep-clones the template for typeID at the given world
// transform so the instance has independent sockets and hierarchy.
func (c *Catalog) Instantiate(typeID string, world model.Transform) (*model.PlacedPiece, error) {
	t, ok := c.templates[typeID]
	if !ok {
		if err, failed := c.failed[typeID]; failed {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: never loaded", ErrAssetMissing, typeID)
	}
	return model.NewPlacedPiece(t, world), nil
}

// Available lists the loaded type IDs in sorted order.
func (c *Catalog) Available() []string {
	ids := make([]string, 0, len(c.templates))
	for id := range c.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
