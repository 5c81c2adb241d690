package ground

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativehubiion/roadforge/internal/catalog"
	"github.com/creativehubiion/roadforge/internal/grid"
	"github.com/creativehubiion/roadforge/internal/model"
)

func newFiller() (*Filler, *grid.Index) {
	s := model.DefaultSettings()
	ix := grid.NewIndex(s.FineCellSize, s.CoarseCellSize)
	return New(catalog.NewBuiltin(), ix), ix
}

func TestFillCoversCenteredRect(t *testing.T) {
	f, ix := newFiller()

	placed, err := f.Fill(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 16, placed)
	assert.Equal(t, 16, f.Count())

	// A 4x4 fill centers on the origin: cells -2..1 on both axes.
	for cx := -2; cx <= 1; cx++ {
		for cz := -2; cz <= 1; cz++ {
			cell := grid.Cell{X: cx, Z: cz}
			assert.True(t, ix.IsOccupied(cell), "cell %v should hold a tile", cell)
			e, _ := ix.EntryAt(cell)
			assert.Equal(t, grid.KindGroundTile, e.Kind)
		}
	}
	assert.False(t, ix.IsOccupied(grid.Cell{X: 2, Z: 0}), "cell outside the rect")
	assert.False(t, ix.IsOccupied(grid.Cell{X: -3, Z: 0}), "cell outside the rect")
}

func TestFillSkipsOccupiedCells(t *testing.T) {
	f, ix := newFiller()
	ix.Occupy(grid.Cell{X: 0, Z: 0}, grid.Entry{Kind: grid.KindRoad, Owner: "piece-1"})

	placed, err := f.Fill(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 15, placed)

	e, ok := ix.EntryAt(grid.Cell{X: 0, Z: 0})
	require.True(t, ok)
	assert.Equal(t, grid.KindRoad, e.Kind, "road entry must survive the fill")
}

func TestFillIsIdempotent(t *testing.T) {
	f, ix := newFiller()

	first, err := f.Fill(6, 6)
	require.NoError(t, err)
	second, err := f.Fill(6, 6)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, second, f.Count())

	// Exactly one occupancy entry per cell survives the refill.
	occupied := 0
	for cx := -3; cx <= 2; cx++ {
		for cz := -3; cz <= 2; cz++ {
			if ix.IsOccupied(grid.Cell{X: cx, Z: cz}) {
				occupied++
			}
		}
	}
	assert.Equal(t, 36, occupied)
}

func TestTilePlacedAtCellCenter(t *testing.T) {
	f, ix := newFiller()
	_, err := f.Fill(2, 2)
	require.NoError(t, err)

	cell := grid.Cell{X: -1, Z: -1}
	tile, ok := f.Tiles()[cell]
	require.True(t, ok)
	assert.Equal(t, cell.Center(ix.CoarseSize()), tile.World.Position)
	assert.Equal(t, model.TypeGroundTile, tile.TypeID)
}

func TestRemoveAt(t *testing.T) {
	f, ix := newFiller()
	_, err := f.Fill(4, 4)
	require.NoError(t, err)

	cell := grid.Cell{X: 0, Z: 1}
	assert.True(t, f.RemoveAt(cell))
	assert.False(t, ix.IsOccupied(cell))
	assert.Equal(t, 15, f.Count())

	assert.False(t, f.RemoveAt(cell), "second removal finds nothing")
	assert.False(t, f.RemoveAt(grid.Cell{X: 50, Z: 50}), "unknown cell finds nothing")
}

func TestClear(t *testing.T) {
	f, ix := newFiller()
	_, err := f.Fill(4, 4)
	require.NoError(t, err)

	f.Clear()

	assert.Zero(t, f.Count())
	assert.False(t, ix.IsOccupied(grid.Cell{X: 0, Z: 0}))
}
