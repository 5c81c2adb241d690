package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/creativehubiion/roadforge/internal/export"
)

// Plan colors.
var (
	tileFill    = color.NRGBA{R: 205, G: 225, B: 180, A: 255}
	tileBorder  = color.NRGBA{R: 170, G: 190, B: 150, A: 255}
	roadStroke  = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	poleFill    = color.NRGBA{R: 120, G: 85, B: 40, A: 255}
	cableStroke = color.NRGBA{R: 90, G: 90, B: 140, A: 255}
	background  = color.NRGBA{R: 245, G: 245, B: 240, A: 255}
)

// NetworkCanvas renders a top-down view of a generated plan.
type NetworkCanvas struct {
	widget.BaseWidget
	plan      export.Plan
	maxWidth  float32
	maxHeight float32
}

// NewNetworkCanvas creates the canvas sized to fit within the given
// bounds.
func NewNetworkCanvas(plan export.Plan, maxW, maxH float32) *NetworkCanvas {
	nc := &NetworkCanvas{plan: plan, maxWidth: maxW, maxHeight: maxH}
	nc.ExtendBaseWidget(nc)
	return nc
}

// SetPlan swaps the rendered plan and refreshes the widget.
func (nc *NetworkCanvas) SetPlan(plan export.Plan) {
	nc.plan = plan
	nc.Refresh()
}

func (nc *NetworkCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &networkCanvasRenderer{nc: nc}
	r.rebuild()
	return r
}

type networkCanvasRenderer struct {
	nc      *NetworkCanvas
	objects []fyne.CanvasObject
	size    fyne.Size
}

func (r *networkCanvasRenderer) rebuild() {
	r.objects = nil
	plan := r.nc.plan

	minX, minZ, maxX, maxZ := plan.Bounds(plan.Settings.CoarseCellSize)
	worldW := float32(maxX - minX)
	worldH := float32(maxZ - minZ)
	if worldW <= 0 || worldH <= 0 {
		return
	}

	scale := r.nc.maxWidth / worldW
	if s := r.nc.maxHeight / worldH; s < scale {
		scale = s
	}
	r.size = fyne.NewSize(worldW*scale, worldH*scale)

	px := func(x float64) float32 { return float32(x-minX) * scale }
	// World Z points up the plan; widget Y grows downward.
	py := func(z float64) float32 { return float32(maxZ-z) * scale }

	bg := canvas.NewRectangle(background)
	bg.Resize(r.size)
	r.objects = append(r.objects, bg)

	// Ground tiles as the backdrop.
	half := plan.Settings.CoarseCellSize / 2
	for cell := range plan.Tiles {
		c := cell.Center(plan.Settings.CoarseCellSize)
		rect := canvas.NewRectangle(tileFill)
		rect.StrokeColor = tileBorder
		rect.StrokeWidth = 1
		rect.Resize(fyne.NewSize(float32(2*half)*scale, float32(2*half)*scale))
		rect.Move(fyne.NewPos(px(c.X-half), py(c.Z+half)))
		r.objects = append(r.objects, rect)
	}

	// Road centerlines.
	for _, piece := range plan.Pieces {
		for _, seg := range piece.Segments {
			line := canvas.NewLine(roadStroke)
			line.StrokeWidth = 3
			line.Position1 = fyne.NewPos(px(seg[0].X), py(seg[0].Z))
			line.Position2 = fyne.NewPos(px(seg[1].X), py(seg[1].Z))
			r.objects = append(r.objects, line)
		}
	}

	if plan.Line != nil {
		for _, group := range plan.Line.Groups {
			for _, cable := range group.Cables {
				for i := 0; i+1 < len(cable.Points); i++ {
					a, b := cable.Points[i], cable.Points[i+1]
					line := canvas.NewLine(cableStroke)
					line.StrokeWidth = 1
					line.Position1 = fyne.NewPos(px(a.X), py(a.Z))
					line.Position2 = fyne.NewPos(px(b.X), py(b.Z))
					r.objects = append(r.objects, line)
				}
			}
		}
		for _, pole := range plan.Line.Poles {
			p := pole.World.Position
			dot := canvas.NewCircle(poleFill)
			dot.Resize(fyne.NewSize(6, 6))
			dot.Move(fyne.NewPos(px(p.X)-3, py(p.Z)-3))
			r.objects = append(r.objects, dot)
		}
	}
}

func (r *networkCanvasRenderer) Layout(fyne.Size) {}

func (r *networkCanvasRenderer) MinSize() fyne.Size { return r.size }

func (r *networkCanvasRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.nc)
}

func (r *networkCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *networkCanvasRenderer) Destroy() {}
