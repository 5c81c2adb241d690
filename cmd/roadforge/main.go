// RoadForge — procedural road network generator
//
// Generates a connected road network and tiled ground surface from a
// settings file or flags, prints the run report, and optionally writes
// DXF / PDF / XLSX deliverables and a transform snapshot.
//
// Build:
//   go build -o roadforge ./cmd/roadforge
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/creativehubiion/roadforge/internal/catalog"
	"github.com/creativehubiion/roadforge/internal/decor"
	"github.com/creativehubiion/roadforge/internal/export"
	"github.com/creativehubiion/roadforge/internal/model"
	"github.com/creativehubiion/roadforge/internal/project"
	"github.com/creativehubiion/roadforge/internal/site"
)

func main() {
	var (
		configPath = flag.String("config", "", "settings JSON (default: user config dir)")
		piecesDir  = flag.String("pieces", "", "directory of piece definition JSON files")
		strategy   = flag.String("strategy", "", "randomwalk | frontier | spinebranch")
		seed       = flag.Uint("seed", 0, "seed for the deterministic strategy")
		count      = flag.Int("count", 0, "pieces to attempt (random strategies)")
		spine      = flag.Int("spine", 0, "spine length (spinebranch)")
		branch     = flag.Int("branch", 0, "pieces per branch (spinebranch)")
		prob       = flag.Float64("prob", -1, "intersection probability (spinebranch)")
		decorate   = flag.Bool("decorate", false, "place a pole-and-cable line along the network")

		dxfOut   = flag.String("dxf", "", "write DXF plan to path")
		pdfOut   = flag.String("pdf", "", "write PDF site plan to path")
		cardOut  = flag.String("card", "", "write QR plan card PDF to path")
		xlsxOut  = flag.String("xlsx", "", "write XLSX piece schedule to path")
		saveSnap = flag.String("save-snapshot", "", "write transform snapshot to path")
		loadSnap = flag.String("restore-snapshot", "", "restore a snapshot instead of generating")
	)
	flag.Parse()

	settings, err := loadSettings(*configPath)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	applyFlags(&settings, *strategy, *seed, *count, *spine, *branch, *prob)

	cat := buildCatalog(*piecesDir)
	s := site.New(settings, cat)

	if *loadSnap != "" {
		snap, err := project.LoadSnapshot(*loadSnap)
		if err != nil {
			log.Fatalf("load snapshot: %v", err)
		}
		restored, err := s.Restore(snap)
		if err != nil {
			log.Printf("restore: %v", err)
		}
		fmt.Printf("Restored %d of %d pieces from %q\n", restored, len(snap.Pieces), snap.Name)
	} else {
		if _, err := s.Generate(); err != nil {
			log.Fatalf("generate: %v", err)
		}
		printReport(s.Report, s.Filler.Count())
	}

	if *decorate {
		cfg := decor.DefaultConfig()
		cfg.Length = float64(settings.SpineLength) * 20
		if err := s.Decorate(cfg); err != nil {
			log.Printf("decorate: %v", err)
		}
	}

	plan := s.Plan()
	writeExports(plan, *dxfOut, *pdfOut, *cardOut, *xlsxOut)

	if *saveSnap != "" {
		snap := project.Capture("generated network", s.Engine.Pieces())
		if err := project.SaveSnapshot(*saveSnap, snap); err != nil {
			log.Fatalf("save snapshot: %v", err)
		}
		fmt.Printf("Snapshot written to %s\n", *saveSnap)
	}
}

func loadSettings(path string) (model.Settings, error) {
	if path != "" {
		return project.LoadSettings(path)
	}
	defaultPath, err := project.DefaultConfigPath()
	if err != nil {
		return model.DefaultSettings(), nil
	}
	return project.LoadSettings(defaultPath)
}

func applyFlags(s *model.Settings, strategy string, seed uint, count, spine, branch int, prob float64) {
	if strategy != "" {
		s.Strategy = model.Strategy(strategy)
	}
	if seed != 0 {
		s.Seed = uint32(seed)
	}
	if count > 0 {
		s.PieceCount = count
	}
	if spine > 0 {
		s.SpineLength = spine
	}
	if branch > 0 {
		s.BranchLength = branch
	}
	if prob >= 0 {
		s.IntersectionProbability = prob
	}
}

func buildCatalog(piecesDir string) *catalog.Catalog {
	if piecesDir == "" {
		return catalog.NewBuiltin()
	}
	cat := catalog.New(catalog.FileLoader{Dir: piecesDir})
	for _, id := range catalog.BuiltinTypeIDs() {
		if _, err := cat.Load(id); err != nil {
			log.Printf("piece type %s unavailable: %v", id, err)
		}
	}
	return cat
}

func printReport(r model.RunReport, tiles int) {
	fmt.Printf("Strategy:  %s\n", r.Strategy)
	fmt.Printf("Placed:    %d of %d requested (%d attempts)\n", r.Placed, r.Requested, r.Attempts)
	if r.Branches > 0 {
		fmt.Printf("Branches:  %d\n", r.Branches)
	}
	if r.Seed != 0 {
		fmt.Printf("Seed:      %d\n", r.Seed)
	}
	fmt.Printf("Tiles:     %d\n", tiles)
	if r.Stalled {
		fmt.Printf("Run stalled: %d pieces short\n", r.Shortfall())
	}
	if len(r.ByType) > 0 {
		types := make([]string, 0, len(r.ByType))
		for t := range r.ByType {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("  %-16s %d\n", t, r.ByType[t])
		}
	}
}

func writeExports(plan export.Plan, dxfOut, pdfOut, cardOut, xlsxOut string) {
	write := func(name, path string, fn func(string, export.Plan) error) {
		if path == "" {
			return
		}
		if err := fn(path, plan); err != nil {
			log.Printf("%s export: %v", name, err)
			return
		}
		fmt.Printf("%s written to %s\n", name, path)
	}
	write("DXF", dxfOut, export.ExportDXF)
	write("PDF", pdfOut, export.ExportPDF)
	write("Plan card", cardOut, export.ExportPlanCard)
	write("XLSX", xlsxOut, export.ExportSchedule)
}
