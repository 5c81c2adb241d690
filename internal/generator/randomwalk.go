package generator

import (
	"math/rand"
	"time"

	"github.com/creativehubiion/roadforge/internal/model"
	"github.com/creativehubiion/roadforge/internal/placement"
)

// RandomWalk advances a single cursor one accepted piece at a time.
// Local rules keep the path coherent: the opening steps are straight
// only to establish a heading, curves require a minimum straight run
// since the last curve, and the same turn direction is capped so the
// path cannot spiral back onto itself.
type RandomWalk struct {
	settings model.Settings
	rng      *rand.Rand
	state    model.RunState

	// order shuffles the candidate list each step. Swappable so rule
	// behavior can be pinned under a forced candidate preference.
	order func([]string)

	straightRun int // straights placed since the last curve
	lastTurn    int // -1 right, +1 left, 0 none yet
	sameTurnRun int // consecutive curves in lastTurn's direction
}

// NewRandomWalk creates the walk with an unseeded PRNG; two runs are
// intentionally different networks.
func NewRandomWalk(s model.Settings) *RandomWalk {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	w := &RandomWalk{settings: s, rng: rng}
	w.order = func(c []string) {
		rng.Shuffle(len(c), func(i, j int) { c[i], c[j] = c[j], c[i] })
	}
	return w
}

func (w *RandomWalk) Strategy() model.Strategy { return model.StrategyRandomWalk }

func (w *RandomWalk) State() model.RunState { return w.state }

// Generate walks until the requested count is placed or no candidate
// fits at the cursor.
func (w *RandomWalk) Generate(e *placement.Engine) model.RunReport {
	e.Reset()
	w.state = model.RunPlacing
	w.straightRun = 0
	w.lastTurn = 0
	w.sameTurnRun = 0

	report := model.RunReport{
		Strategy:  model.StrategyRandomWalk,
		Requested: w.settings.PieceCount,
	}
	cursor := model.Identity()

	for i := 0; i < w.settings.PieceCount; i++ {
		piece := w.step(e, i, cursor, &report)
		if piece == nil {
			w.state = model.RunStalled
			report.Stalled = true
			return report
		}
		out, ok := piece.SocketWorld(model.SocketOut)
		if !ok {
			w.state = model.RunStalled
			report.Stalled = true
			return report
		}
		cursor = out
	}
	w.state = model.RunDone
	return report
}

// step tries each offered candidate at the cursor in shuffled order and
// returns the first accepted piece, or nil when all are rejected.
func (w *RandomWalk) step(e *placement.Engine, placed int, cursor model.Transform, report *model.RunReport) *model.PlacedPiece {
	candidates := w.candidates(placed)
	w.order(candidates)

	for _, typeID := range candidates {
		report.Attempts++
		piece, err := e.TryPlace(typeID, cursor)
		if err != nil {
			continue // type unavailable for this run
		}
		if piece == nil {
			continue // rejected, try the next candidate
		}
		w.recordPlaced(typeID)
		report.Count(typeID)
		return piece
	}
	return nil
}

// candidates offers all piece types legal at this step, curves in both
// mirrored directions.
func (w *RandomWalk) candidates(placed int) []string {
	c := []string{model.TypeStraight}
	if w.turnAllowed(placed, +1) {
		c = append(c, model.TypeCurveLeft)
	}
	if w.turnAllowed(placed, -1) {
		c = append(c, model.TypeCurveRight)
	}
	return c
}

// turnAllowed applies the direction-balance rule: no curves during the
// straight-only warmup; continuing the current arc is allowed up to the
// consecutive same-direction cap; starting a new curve (first curve, or
// a direction change) requires the minimum straight run first.
func (w *RandomWalk) turnAllowed(placed, dir int) bool {
	if placed < w.settings.WarmupStraights {
		return false
	}
	if dir == w.lastTurn && w.sameTurnRun > 0 {
		return w.sameTurnRun < w.settings.MaxSameTurn
	}
	return w.straightRun >= w.settings.MinStraightRun
}

func (w *RandomWalk) recordPlaced(typeID string) {
	switch typeID {
	case model.TypeCurveLeft:
		w.recordTurn(+1)
	case model.TypeCurveRight:
		w.recordTurn(-1)
	default:
		w.straightRun++
		w.sameTurnRun = 0
	}
}

func (w *RandomWalk) recordTurn(dir int) {
	if dir == w.lastTurn {
		w.sameTurnRun++
	} else {
		w.sameTurnRun = 1
	}
	w.lastTurn = dir
	w.straightRun = 0
}
