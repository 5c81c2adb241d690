package grid

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestCellAtRounds(t *testing.T) {
	cases := []struct {
		pos  r3.Vec
		size float64
		want Cell
	}{
		{r3.Vec{}, 2.0, Cell{0, 0}},
		{r3.Vec{X: 1.0, Z: 1.0}, 2.0, Cell{1, 1}},
		{r3.Vec{X: 0.9, Z: -0.9}, 2.0, Cell{0, 0}},
		{r3.Vec{X: 3.0, Z: 5.0}, 2.0, Cell{2, 3}},
		{r3.Vec{X: -10.0, Z: 30.0}, 20.0, Cell{-1, 2}},
	}
	for _, c := range cases {
		if got := CellAt(c.pos, c.size); got != c.want {
			t.Errorf("CellAt(%v, %v) = %v, want %v", c.pos, c.size, got, c.want)
		}
	}
}

func TestCellAtStable(t *testing.T) {
	// Jitter well below half a cell must not move the key.
	base := r3.Vec{X: 8.0, Z: -6.0}
	jittered := r3.Vec{X: 8.4, Z: -6.4}
	if CellAt(base, 2.0) != CellAt(jittered, 2.0) {
		t.Error("sub-half-cell jitter moved the cell key")
	}
}

func TestCellCenterRoundTrips(t *testing.T) {
	c := Cell{X: 3, Z: -2}
	if got := CellAt(c.Center(20.0), 20.0); got != c {
		t.Errorf("center of %v mapped back to %v", c, got)
	}
}

func TestClaim(t *testing.T) {
	ix := NewIndex(2.0, 20.0)
	c := ix.FineCell(r3.Vec{X: 4, Z: 4})

	if ix.Claimed(c) {
		t.Error("fresh index reports a claimed cell")
	}
	ix.Claim(c)
	if !ix.Claimed(c) {
		t.Error("claimed cell not reported")
	}
	ix.Claim(c) // re-claim is a no-op
	if ix.ClaimedCount() != 1 {
		t.Errorf("claimed count: got %d, want 1", ix.ClaimedCount())
	}
}

func TestOccupancyLifecycle(t *testing.T) {
	ix := NewIndex(2.0, 20.0)
	c := Cell{X: 1, Z: 1}

	if ix.IsOccupied(c) {
		t.Error("fresh index reports an occupied cell")
	}
	ix.Occupy(c, Entry{Kind: KindGroundTile, Owner: "tile-a"})
	e, ok := ix.EntryAt(c)
	if !ok || e.Kind != KindGroundTile || e.Owner != "tile-a" {
		t.Errorf("entry after occupy: %v, %v", e, ok)
	}

	// Replacement keeps the one-entry-per-cell invariant.
	ix.Occupy(c, Entry{Kind: KindRoad, Owner: "piece-b"})
	e, _ = ix.EntryAt(c)
	if e.Kind != KindRoad || e.Owner != "piece-b" {
		t.Errorf("entry after replacement: %v", e)
	}

	if !ix.Remove(c) {
		t.Error("remove reported no entry present")
	}
	if ix.Remove(c) {
		t.Error("second remove reported an entry present")
	}
	if ix.IsOccupied(c) {
		t.Error("cell still occupied after remove")
	}
}

func TestClearRoadsKeepsTiles(t *testing.T) {
	ix := NewIndex(2.0, 20.0)
	ix.Claim(Cell{X: 0, Z: 0})
	ix.Claim(Cell{X: 0, Z: 1})
	ix.Occupy(Cell{X: 0, Z: 0}, Entry{Kind: KindRoad, Owner: "piece"})
	ix.Occupy(Cell{X: 5, Z: 5}, Entry{Kind: KindGroundTile, Owner: "tile"})

	ix.ClearRoads()

	if ix.ClaimedCount() != 0 {
		t.Errorf("collision cells after ClearRoads: got %d, want 0", ix.ClaimedCount())
	}
	if ix.IsOccupied(Cell{X: 0, Z: 0}) {
		t.Error("road entry survived ClearRoads")
	}
	if !ix.IsOccupied(Cell{X: 5, Z: 5}) {
		t.Error("ground tile entry did not survive ClearRoads")
	}
}

func TestClear(t *testing.T) {
	ix := NewIndex(2.0, 20.0)
	ix.Claim(Cell{X: 1, Z: 1})
	ix.Occupy(Cell{X: 2, Z: 2}, Entry{Kind: KindGroundTile, Owner: "tile"})

	ix.Clear()

	if ix.ClaimedCount() != 0 || ix.IsOccupied(Cell{X: 2, Z: 2}) {
		t.Error("Clear left residual state")
	}
}
