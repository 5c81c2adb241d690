// Package placement commits piece instances into the world under the
// spatial occupancy rules: centerlines are sampled onto the fine
// collision grid, rejected on overlap, and on acceptance claim their
// cells and evict any ground tiles they cross.
package placement

import (
	"math"

	"github.com/creativehubiion/roadforge/internal/catalog"
	"github.com/creativehubiion/roadforge/internal/grid"
	"github.com/creativehubiion/roadforge/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// TileSink receives tile eviction notices when a committed road crosses
// a coarse cell currently holding a ground tile. The ground filler
// implements it; a nil sink only drops the occupancy entry.
type TileSink interface {
	RemoveAt(c grid.Cell) bool
}

// Engine places pieces against a shared spatial index. All state
// mutation inside one TryPlace call is synchronous; pieces are
// committed in strict sequential order.
type Engine struct {
	catalog  *catalog.Catalog
	index    *grid.Index
	settings model.Settings
	tiles    TileSink

	pieces []*model.PlacedPiece

	// recent holds the fine-cell sets of the last SeamWindow committed
	// pieces. Cells in this window are excluded from the collision
	// check so adjoining pieces can share boundary cells.
	recent []map[grid.Cell]struct{}
}

// New creates an engine over the given catalog and index.
func New(cat *catalog.Catalog, ix *grid.Index, settings model.Settings) *Engine {
	return &Engine{catalog: cat, index: ix, settings: settings}
}

// SetTileSink registers the ground filler (or any tile owner) for
// eviction callbacks.
func (e *Engine) SetTileSink(s TileSink) { e.tiles = s }

// Index exposes the shared spatial index.
func (e *Engine) Index() *grid.Index { return e.index }

// Catalog exposes the piece catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Pieces returns the pieces committed so far, in commit order.
func (e *Engine) Pieces() []*model.PlacedPiece { return e.pieces }

// Reset discards all committed pieces and clears the road state in the
// index. Tiles owned by the ground filler survive; the documented
// policy is fill-after-generate, so the filler re-runs afterwards.
func (e *Engine) Reset() {
	e.pieces = nil
	e.recent = nil
	e.index.ClearRoads()
}

// TryPlace instantiates typeID with its origin snapped to the target
// transform, samples its centerline footprint against the collision
// grid and either commits it or rejects it. A rejection returns
// (nil, nil): the caller tries another candidate. The only error is an
// unavailable piece type. No state is retained from failed trials.
func (e *Engine) TryPlace(typeID string, at model.Transform) (*model.PlacedPiece, error) {
	piece, err := e.catalog.Instantiate(typeID, at)
	if err != nil {
		return nil, err
	}
	samples, segments := e.sample(piece)
	cells := e.fineCells(samples)

	if e.collides(cells) {
		return nil, nil
	}
	e.commit(piece, samples, segments, cells)
	return piece, nil
}

// Place commits typeID at the target transform without a collision
// check. The deterministic spine generator and snapshot restore use it;
// cells are still claimed so later consumers see true occupancy.
func (e *Engine) Place(typeID string, at model.Transform) (*model.PlacedPiece, error) {
	piece, err := e.catalog.Instantiate(typeID, at)
	if err != nil {
		return nil, err
	}
	samples, segments := e.sample(piece)
	e.commit(piece, samples, segments, e.fineCells(samples))
	return piece, nil
}

// sample walks each centerline segment (piece origin to each socket)
// and returns ceil(length/step)+1 evenly spaced points per segment.
func (e *Engine) sample(p *model.PlacedPiece) ([]r3.Vec, [][2]r3.Vec) {
	origin := p.World.Position
	step := e.settings.SampleStep
	if step <= 0 {
		step = 1
	}

	var samples []r3.Vec
	var segments [][2]r3.Vec
	for _, role := range p.SocketRoles() {
		end, _ := p.SocketWorld(role)
		segments = append(segments, [2]r3.Vec{origin, end.Position})
		samples = append(samples, sampleSegment(origin, end.Position, step)...)
	}
	if len(samples) == 0 {
		samples = append(samples, origin)
	}
	return samples, segments
}

func sampleSegment(from, to r3.Vec, step float64) []r3.Vec {
	d := r3.Sub(to, from)
	length := r3.Norm(d)
	n := int(math.Ceil(length/step)) + 1
	pts := make([]r3.Vec, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		if n == 1 {
			t = 0
		}
		pts = append(pts, r3.Add(from, r3.Scale(t, d)))
	}
	return pts
}

func (e *Engine) fineCells(samples []r3.Vec) map[grid.Cell]struct{} {
	cells := make(map[grid.Cell]struct{}, len(samples))
	for _, s := range samples {
		cells[e.index.FineCell(s)] = struct{}{}
	}
	return cells
}

// collides checks candidate cells against the collision set, ignoring
// cells inside the seam-tolerance window.
func (e *Engine) collides(cells map[grid.Cell]struct{}) bool {
	for c := range cells {
		if !e.index.Claimed(c) {
			continue
		}
		if e.inSeamWindow(c) {
			continue
		}
		return true
	}
	return false
}

func (e *Engine) inSeamWindow(c grid.Cell) bool {
	for _, set := range e.recent {
		if _, ok := set[c]; ok {
			return true
		}
	}
	return false
}

func (e *Engine) commit(p *model.PlacedPiece, samples []r3.Vec, segments [][2]r3.Vec, cells map[grid.Cell]struct{}) {
	p.Samples = samples
	p.Segments = segments

	for c := range cells {
		e.index.Claim(c)
	}

	// Roads take priority over ground fill: evict any tile on a coarse
	// cell the centerline crosses, then record the road there.
	seen := make(map[grid.Cell]struct{})
	for _, s := range samples {
		cc := e.index.CoarseCell(s)
		if _, ok := seen[cc]; ok {
			continue
		}
		seen[cc] = struct{}{}
		if entry, ok := e.index.EntryAt(cc); ok && entry.Kind == grid.KindGroundTile {
			e.index.Remove(cc)
			if e.tiles != nil {
				e.tiles.RemoveAt(cc)
			}
		}
		e.index.Occupy(cc, grid.Entry{Kind: grid.KindRoad, Owner: p.ID})
	}

	e.pieces = append(e.pieces, p)

	// A zero window disables seam tolerance entirely.
	if w := e.settings.SeamWindow; w > 0 {
		e.recent = append(e.recent, cells)
		if len(e.recent) > w {
			e.recent = e.recent[len(e.recent)-w:]
		}
	}
}
