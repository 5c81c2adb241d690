// Package grid implements the sparse spatial occupancy index shared by
// the placement engine and the ground filler. Two independent
// resolutions coexist: a fine grid for centerline collision and a
// coarse grid for whole-tile bookkeeping. They are never mixed; a Cell
// is only meaningful at the resolution it was derived with.
package grid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cell is an integer grid coordinate pair on the ground plane.
type Cell struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// CellAt derives the cell containing a world position at the given
// resolution. Rounding makes the mapping stable: equal world positions
// always land in the same cell, and noise below half a cell size never
// moves the key.
func CellAt(p r3.Vec, size float64) Cell {
	return Cell{
		X: int(math.Round(p.X / size)),
		Z: int(math.Round(p.Z / size)),
	}
}

// Center returns the world position at the middle of the cell.
func (c Cell) Center(size float64) r3.Vec {
	return r3.Vec{X: float64(c.X) * size, Z: float64(c.Z) * size}
}

// Kind tags what claims a coarse cell.
type Kind int

const (
	KindRoad Kind = iota
	KindGroundTile
)

func (k Kind) String() string {
	if k == KindGroundTile {
		return "groundTile"
	}
	return "road"
}

// Entry is the occupancy record stored per coarse cell: what kind of
// object claims it and which object. At most one entry exists per cell.
type Entry struct {
	Kind  Kind   `json:"kind"`
	Owner string `json:"owner"`
}

// Index is the single source of truth for "is this space free". It is
// written only by the placement engine and the ground filler, in strict
// sequential order; there is no locking because generation is
// single-threaded by design.
type Index struct {
	fineSize   float64
	coarseSize float64

	// collision holds fine cells claimed by committed road centerlines.
	// Keys are never removed during a run; roads are permanent once
	// committed. ClearRoads resets the whole set between runs.
	collision map[Cell]struct{}

	// occupancy holds one entry per claimed coarse cell.
	occupancy map[Cell]Entry
}

// NewIndex creates an empty index with the given fine and coarse cell
// sizes.
func NewIndex(fineSize, coarseSize float64) *Index {
	return &Index{
		fineSize:   fineSize,
		coarseSize: coarseSize,
		collision:  make(map[Cell]struct{}),
		occupancy:  make(map[Cell]Entry),
	}
}

// FineSize returns the collision grid resolution.
func (ix *Index) FineSize() float64 { return ix.fineSize }

// CoarseSize returns the tile grid resolution.
func (ix *Index) CoarseSize() float64 { return ix.coarseSize }

// FineCell maps a world position onto the collision grid.
func (ix *Index) FineCell(p r3.Vec) Cell { return CellAt(p, ix.fineSize) }

// CoarseCell maps a world position onto the tile grid.
func (ix *Index) CoarseCell(p r3.Vec) Cell { return CellAt(p, ix.coarseSize) }

// Claim marks a fine cell as taken by road geometry.
func (ix *Index) Claim(c Cell) { ix.collision[c] = struct{}{} }

// Claimed reports whether a fine cell is taken.
func (ix *Index) Claimed(c Cell) bool {
	_, ok := ix.collision[c]
	return ok
}

// ClaimedCount returns the number of claimed fine cells.
func (ix *Index) ClaimedCount() int { return len(ix.collision) }

// Occupy stores an entry for a coarse cell, replacing any prior entry.
func (ix *Index) Occupy(c Cell, e Entry) { ix.occupancy[c] = e }

// IsOccupied reports whether any entry exists at the coarse cell.
func (ix *Index) IsOccupied(c Cell) bool {
	_, ok := ix.occupancy[c]
	return ok
}

// EntryAt returns the entry at a coarse cell, if any.
func (ix *Index) EntryAt(c Cell) (Entry, bool) {
	e, ok := ix.occupancy[c]
	return e, ok
}

// Remove deletes the entry at a coarse cell and reports whether one
// was present.
func (ix *Index) Remove(c Cell) bool {
	if _, ok := ix.occupancy[c]; !ok {
		return false
	}
	delete(ix.occupancy, c)
	return true
}

// Clear empties both grids.
func (ix *Index) Clear() {
	ix.collision = make(map[Cell]struct{})
	ix.occupancy = make(map[Cell]Entry)
}

// ClearRoads resets the road subsystem's state: the whole collision set
// and every coarse entry tagged as road. Ground tiles are untouched;
// the filler owns those.
func (ix *Index) ClearRoads() {
	ix.collision = make(map[Cell]struct{})
	for c, e := range ix.occupancy {
		if e.Kind == KindRoad {
			delete(ix.occupancy, c)
		}
	}
}
