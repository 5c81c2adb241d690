// Package ground fills a rectangular region of the coarse grid with
// unit tiles, skipping cells already claimed by roads. It runs after
// road generation ("fill after generate") so it sees final occupancy.
package ground

import (
	"github.com/creativehubiion/roadforge/internal/catalog"
	"github.com/creativehubiion/roadforge/internal/grid"
	"github.com/creativehubiion/roadforge/internal/model"
)

// Filler owns the ground tiles and their coarse-grid occupancy entries.
type Filler struct {
	catalog *catalog.Catalog
	index   *grid.Index
	tiles   map[grid.Cell]*model.PlacedPiece
}

// New creates a filler over the shared index.
func New(cat *catalog.Catalog, ix *grid.Index) *Filler {
	return &Filler{
		catalog: cat,
		index:   ix,
		tiles:   make(map[grid.Cell]*model.PlacedPiece),
	}
}

// Fill places one tile per free coarse cell in the centered width x
// depth rectangle. It always clears its previous tiles first, so
// repeated calls are idempotent and never leak geometry. Returns the
// number of tiles placed.
func (f *Filler) Fill(width, depth int) (int, error) {
	f.Clear()

	placed := 0
	for cx := -width / 2; cx < width-width/2; cx++ {
		for cz := -depth / 2; cz < depth-depth/2; cz++ {
			cell := grid.Cell{X: cx, Z: cz}
			if f.index.IsOccupied(cell) {
				continue
			}
			at := model.At(cell.Center(f.index.CoarseSize()), 0)
			tile, err := f.catalog.Instantiate(model.TypeGroundTile, at)
			if err != nil {
				return placed, err
			}
			f.index.Occupy(cell, grid.Entry{Kind: grid.KindGroundTile, Owner: tile.ID})
			f.tiles[cell] = tile
			placed++
		}
	}
	return placed, nil
}

// RemoveAt disposes the tile at the given coarse cell, dropping both
// its occupancy entry and its membership in the tile list. The
// placement engine calls this when a committed road crosses a tile.
func (f *Filler) RemoveAt(cell grid.Cell) bool {
	if _, ok := f.tiles[cell]; !ok {
		return false
	}
	delete(f.tiles, cell)
	if e, ok := f.index.EntryAt(cell); ok && e.Kind == grid.KindGroundTile {
		f.index.Remove(cell)
	}
	return true
}

// Clear removes every tile the filler owns and its occupancy entries.
func (f *Filler) Clear() {
	for cell := range f.tiles {
		if e, ok := f.index.EntryAt(cell); ok && e.Kind == grid.KindGroundTile {
			f.index.Remove(cell)
		}
	}
	f.tiles = make(map[grid.Cell]*model.PlacedPiece)
}

// Count returns the number of tiles currently placed.
func (f *Filler) Count() int { return len(f.tiles) }

// Tiles returns the placed tiles keyed by coarse cell.
func (f *Filler) Tiles() map[grid.Cell]*model.PlacedPiece { return f.tiles }
