// Package ui implements the desktop plan viewer: a parameter panel on
// the left, the rendered network on the right.
package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/creativehubiion/roadforge/internal/catalog"
	"github.com/creativehubiion/roadforge/internal/decor"
	"github.com/creativehubiion/roadforge/internal/export"
	"github.com/creativehubiion/roadforge/internal/model"
	"github.com/creativehubiion/roadforge/internal/project"
	"github.com/creativehubiion/roadforge/internal/site"
	"github.com/creativehubiion/roadforge/internal/ui/widgets"
)

// App holds the viewer state and UI references.
type App struct {
	window   fyne.Window
	settings model.Settings
	site     *site.Site

	canvasHolder *fyne.Container
	statusLabel  *widget.Label
	decorate     *widget.Check
}

// NewApp creates the viewer over a fresh built-in catalog.
func NewApp(window fyne.Window) *App {
	settings := model.DefaultSettings()
	return &App{
		window:   window,
		settings: settings,
		site:     site.New(settings, catalog.NewBuiltin()),
	}
}

// Build assembles the whole window content.
func (a *App) Build() fyne.CanvasObject {
	a.statusLabel = widget.NewLabel("Press Generate to build a network.")
	a.canvasHolder = container.NewCenter()

	left := container.NewVBox(
		widget.NewLabelWithStyle("Generation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.buildSettingsForm(),
		widget.NewButton("Generate", a.runGenerate),
		widget.NewButton("Export DXF...", func() { a.export(export.ExportDXF) }),
		widget.NewButton("Export PDF...", func() { a.export(export.ExportPDF) }),
		widget.NewButton("Export schedule...", func() { a.export(export.ExportSchedule) }),
		widget.NewButton("Save snapshot...", a.saveSnapshot),
		a.statusLabel,
	)

	return container.NewBorder(nil, nil, left, nil,
		container.NewScroll(a.canvasHolder))
}

func (a *App) buildSettingsForm() fyne.CanvasObject {
	strategySelect := widget.NewSelect([]string{
		string(model.StrategySpineBranch),
		string(model.StrategyRandomWalk),
		string(model.StrategyFrontier),
	}, func(v string) { a.settings.Strategy = model.Strategy(v) })
	strategySelect.SetSelected(string(a.settings.Strategy))

	seedEntry := widget.NewEntry()
	seedEntry.SetText(strconv.FormatUint(uint64(a.settings.Seed), 10))
	seedEntry.OnChanged = func(v string) {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			a.settings.Seed = uint32(n)
		}
	}

	spineEntry := widget.NewEntry()
	spineEntry.SetText(strconv.Itoa(a.settings.SpineLength))
	spineEntry.OnChanged = func(v string) {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			a.settings.SpineLength = n
			a.settings.PieceCount = n
		}
	}

	probEntry := widget.NewEntry()
	probEntry.SetText(fmt.Sprintf("%.2f", a.settings.IntersectionProbability))
	probEntry.OnChanged = func(v string) {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			a.settings.IntersectionProbability = f
		}
	}

	decorateCheck := widget.NewCheck("Pole line", nil)

	form := widget.NewForm(
		widget.NewFormItem("Strategy", strategySelect),
		widget.NewFormItem("Seed", seedEntry),
		widget.NewFormItem("Pieces", spineEntry),
		widget.NewFormItem("Branch p", probEntry),
		widget.NewFormItem("", decorateCheck),
	)
	a.decorate = decorateCheck
	return form
}

func (a *App) runGenerate() {
	a.site = site.New(a.settings, a.site.Catalog)
	report, err := a.site.Generate()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if a.decorate != nil && a.decorate.Checked {
		cfg := decor.DefaultConfig()
		cfg.Length = float64(a.settings.SpineLength) * 20
		if err := a.site.Decorate(cfg); err != nil {
			dialog.ShowError(err, a.window)
		}
	}

	status := fmt.Sprintf("Placed %d of %d pieces, %d tiles",
		report.Placed, report.Requested, a.site.Filler.Count())
	if report.Stalled {
		status += fmt.Sprintf(" (stalled, %d short)", report.Shortfall())
	}
	a.statusLabel.SetText(status)

	nc := widgets.NewNetworkCanvas(a.site.Plan(), 900, 700)
	a.canvasHolder.Objects = []fyne.CanvasObject{nc}
	a.canvasHolder.Refresh()
}

func (a *App) export(fn func(string, export.Plan) error) {
	if len(a.site.Engine.Pieces()) == 0 {
		dialog.ShowInformation("Nothing to export", "Generate a network first.", a.window)
		return
	}
	dialog.ShowFileSave(func(uri fyne.URIWriteCloser, err error) {
		if err != nil || uri == nil {
			return
		}
		path := uri.URI().Path()
		uri.Close()
		if err := fn(path, a.site.Plan()); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.statusLabel.SetText("Exported " + path)
	}, a.window)
}

func (a *App) saveSnapshot() {
	if len(a.site.Engine.Pieces()) == 0 {
		dialog.ShowInformation("Nothing to save", "Generate a network first.", a.window)
		return
	}
	dialog.ShowFileSave(func(uri fyne.URIWriteCloser, err error) {
		if err != nil || uri == nil {
			return
		}
		path := uri.URI().Path()
		uri.Close()
		snap := project.Capture("viewer export", a.site.Engine.Pieces())
		if err := project.SaveSnapshot(path, snap); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.statusLabel.SetText("Snapshot saved to " + path)
	}, a.window)
}
