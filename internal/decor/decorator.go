// Package decor places periodic props along a fixed path and strings
// procedurally sagging cables between consecutive props. It is purely
// additive: it never consults or mutates the spatial index.
package decor

import (
	"github.com/creativehubiion/roadforge/internal/catalog"
	"github.com/creativehubiion/roadforge/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// Config tunes pole spacing and cable shape.
type Config struct {
	Spacing      float64 `json:"spacing"`        // distance between poles
	Length       float64 `json:"length"`         // total path length to decorate
	CablesPerGap int     `json:"cables_per_gap"` // cables strung between each pole pair
	CableSamples int     `json:"cable_samples"`  // points per cable polyline
	BaseHeight   float64 `json:"base_height"`    // cable attachment height
	Sag          float64 `json:"sag"`            // droop depth at the midpoint
	CableSpread  float64 `json:"cable_spread"`   // lateral offset between cables on the crossarm
}

// DefaultConfig matches the built-in pole piece.
func DefaultConfig() Config {
	return Config{
		Spacing:      20,
		Length:       80,
		CablesPerGap: 3,
		CableSamples: 9,
		BaseHeight:   8,
		Sag:          1.5,
		CableSpread:  0.8,
	}
}

// Cable is one sagging line between two poles, sampled as a polyline.
type Cable struct {
	Points []r3.Vec
}

// CableGroup holds the cables strung across a single pole gap.
type CableGroup struct {
	Cables []Cable
}

// Line is the decoration result for one path: the poles in order plus
// one cable group per consecutive pole pair.
type Line struct {
	Poles  []*model.PlacedPiece
	Groups []CableGroup
}

// Decorator emits poles and cables using placement primitives only.
type Decorator struct {
	catalog *catalog.Catalog
}

// New creates a decorator over the given catalog.
func New(cat *catalog.Catalog) *Decorator {
	return &Decorator{catalog: cat}
}

// Decorate walks the straight line from start along its heading,
// placing one pole per spacing interval and a cable group between each
// consecutive pair.
func (d *Decorator) Decorate(start model.Transform, cfg Config) (*Line, error) {
	if cfg.Spacing <= 0 {
		return &Line{}, nil
	}
	count := int(cfg.Length / cfg.Spacing)
	if count < 1 {
		return &Line{}, nil
	}

	forward := start.Forward()
	line := &Line{}

	for i := 0; i < count; i++ {
		pos := r3.Add(start.Position, r3.Scale(float64(i)*cfg.Spacing, forward))
		pole, err := d.catalog.Instantiate(model.TypePole, model.At(pos, start.Heading))
		if err != nil {
			return nil, err
		}
		line.Poles = append(line.Poles, pole)
	}

	// Lateral crossarm direction for spreading parallel cables.
	side := r3.Vec{X: forward.Z, Z: -forward.X}

	for i := 0; i+1 < len(line.Poles); i++ {
		from := line.Poles[i].World.Position
		to := line.Poles[i+1].World.Position

		group := CableGroup{}
		for c := 0; c < cfg.CablesPerGap; c++ {
			offset := (float64(c) - float64(cfg.CablesPerGap-1)/2) * cfg.CableSpread
			a := r3.Add(from, r3.Scale(offset, side))
			b := r3.Add(to, r3.Scale(offset, side))
			group.Cables = append(group.Cables, sagCable(a, b, cfg))
		}
		line.Groups = append(line.Groups, group)
	}
	return line, nil
}

// sagCable samples a cable between two pole bases using a parabolic
// droop: height(t) = base - sag*4t(1-t), symmetric and deepest at the
// midpoint.
func sagCable(from, to r3.Vec, cfg Config) Cable {
	n := cfg.CableSamples
	if n < 2 {
		n = 2
	}
	pts := make([]r3.Vec, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		p := r3.Add(from, r3.Scale(t, r3.Sub(to, from)))
		p.Y = cfg.BaseHeight - cfg.Sag*4*t*(1-t)
		pts = append(pts, p)
	}
	return Cable{Points: pts}
}
