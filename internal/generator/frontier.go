package generator

import (
	"math/rand"
	"time"

	"github.com/creativehubiion/roadforge/internal/model"
	"github.com/creativehubiion/roadforge/internal/placement"
)

// openSocket is a frontier entry: a world transform where the network
// can still grow, and the role of the socket that produced it.
type openSocket struct {
	at   model.Transform
	role model.SocketRole
}

// Frontier grows the network from a queue of open sockets. Each
// iteration consumes one socket at random and offers a weighted-random
// piece type there; a success appends the new piece's sockets, a
// rejection turns the socket into a permanent dead end.
type Frontier struct {
	settings model.Settings
	rng      *rand.Rand
	state    model.RunState
}

// NewFrontier creates the frontier generator with an unseeded PRNG.
func NewFrontier(s model.Settings) *Frontier {
	return &Frontier{
		settings: s,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (f *Frontier) Strategy() model.Strategy { return model.StrategyFrontier }

func (f *Frontier) State() model.RunState { return f.state }

// Generate runs until the requested total is placed, the queue empties,
// or the attempt ceiling is hit.
func (f *Frontier) Generate(e *placement.Engine) model.RunReport {
	e.Reset()
	f.state = model.RunPlacing

	report := model.RunReport{
		Strategy:  model.StrategyFrontier,
		Requested: f.settings.PieceCount,
	}

	var queue []openSocket

	// Seed the frontier with the first piece's sockets.
	report.Attempts++
	seed, err := e.TryPlace(model.TypeStraight, model.Identity())
	if err != nil || seed == nil {
		f.state = model.RunStalled
		report.Stalled = true
		return report
	}
	report.Count(seed.TypeID)
	queue = f.appendSockets(queue, seed)

	ceiling := f.settings.AttemptCeiling()
	for report.Placed < f.settings.PieceCount && len(queue) > 0 && report.Attempts < ceiling {
		i := f.rng.Intn(len(queue))
		socket := queue[i]
		queue = append(queue[:i], queue[i+1:]...)

		typeID := model.TypeStraight
		if f.rng.Float64() < f.settings.IntersectionShare {
			typeID = model.TypeIntersection
		}

		report.Attempts++
		piece, err := e.TryPlace(typeID, socket.at)
		if err != nil || piece == nil {
			continue // dead end, socket not replaced
		}
		report.Count(typeID)
		if typeID == model.TypeIntersection {
			report.Branches++
		}
		queue = f.appendSockets(queue, piece)
	}

	if report.Placed >= f.settings.PieceCount {
		f.state = model.RunDone
	} else {
		f.state = model.RunStalled
		report.Stalled = true
	}
	return report
}

func (f *Frontier) appendSockets(queue []openSocket, p *model.PlacedPiece) []openSocket {
	for _, role := range p.SocketRoles() {
		at, _ := p.SocketWorld(role)
		queue = append(queue, openSocket{at: at, role: role})
	}
	return queue
}
