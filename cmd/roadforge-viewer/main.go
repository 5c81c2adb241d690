// RoadForge Viewer — desktop plan viewer for generated road networks.
//
// Build:
//   go build -o roadforge-viewer ./cmd/roadforge-viewer
package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/creativehubiion/roadforge/internal/ui"
)

func main() {
	application := app.NewWithID("com.creativehubiion.roadforge")
	window := application.NewWindow("RoadForge — Network Viewer")

	appUI := ui.NewApp(window)
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
