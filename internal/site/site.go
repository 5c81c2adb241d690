// Package site wires the generation pipeline together: one spatial
// index, one placement engine, one ground filler and an optional
// decoration line, driven by a strategy picked from the settings. The
// CLI and the viewer both build on it.
package site

import (
	"github.com/creativehubiion/roadforge/internal/catalog"
	"github.com/creativehubiion/roadforge/internal/decor"
	"github.com/creativehubiion/roadforge/internal/export"
	"github.com/creativehubiion/roadforge/internal/generator"
	"github.com/creativehubiion/roadforge/internal/grid"
	"github.com/creativehubiion/roadforge/internal/ground"
	"github.com/creativehubiion/roadforge/internal/model"
	"github.com/creativehubiion/roadforge/internal/placement"
	"github.com/creativehubiion/roadforge/internal/project"
	"gonum.org/v1/gonum/spatial/r3"
)

// poleOffset shifts the decoration line sideways off the road
// centerline so poles stand on the verge.
const poleOffset = 6.0

// Site owns one world's generation state.
type Site struct {
	Settings model.Settings
	Catalog  *catalog.Catalog
	Index    *grid.Index
	Engine   *placement.Engine
	Filler   *ground.Filler

	Report model.RunReport
	Line   *decor.Line
}

// New builds a site over the given catalog with fresh spatial state.
func New(settings model.Settings, cat *catalog.Catalog) *Site {
	ix := grid.NewIndex(settings.FineCellSize, settings.CoarseCellSize)
	engine := placement.New(cat, ix, settings)
	filler := ground.New(cat, ix)
	engine.SetTileSink(filler)

	return &Site{
		Settings: settings,
		Catalog:  cat,
		Index:    ix,
		Engine:   engine,
		Filler:   filler,
	}
}

// Generate runs the configured strategy, then fills the ground. Fill
// always runs after generation so it sees final road occupancy.
func (s *Site) Generate() (model.RunReport, error) {
	gen := generator.ForSettings(s.Settings)
	s.Report = gen.Generate(s.Engine)
	s.Line = nil
	if _, err := s.Filler.Fill(s.Settings.GroundWidth, s.Settings.GroundDepth); err != nil {
		return s.Report, err
	}
	return s.Report, nil
}

// Decorate strings a pole-and-cable line alongside the network's
// starting direction. Decoration is additive and can be re-run freely.
func (s *Site) Decorate(cfg decor.Config) error {
	d := decor.New(s.Catalog)
	start := model.At(r3.Vec{X: -poleOffset}, 0)
	line, err := d.Decorate(start, cfg)
	if err != nil {
		return err
	}
	s.Line = line
	return nil
}

// Restore replaces all generated state with a saved snapshot and
// re-fills the ground around it.
func (s *Site) Restore(snap project.Snapshot) (int, error) {
	restored, err := project.Restore(s.Engine, snap)
	if err != nil {
		return restored, err
	}
	s.Report = model.RunReport{Requested: len(snap.Pieces), Placed: restored}
	s.Line = nil
	if _, err := s.Filler.Fill(s.Settings.GroundWidth, s.Settings.GroundDepth); err != nil {
		return restored, err
	}
	return restored, nil
}

// Plan bundles the current state for the exporters and the viewer.
func (s *Site) Plan() export.Plan {
	return export.Plan{
		Report:   s.Report,
		Settings: s.Settings,
		Pieces:   s.Engine.Pieces(),
		Tiles:    s.Filler.Tiles(),
		Line:     s.Line,
	}
}
