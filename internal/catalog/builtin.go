package catalog

import (
	"fmt"
	"math"

	"github.com/creativehubiion/roadforge/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// Built-in piece geometry. Straight pieces are 20 units long; curves
// turn a quarter circle of radius 10, so their exit lands 10 units
// forward and 10 to the side. The intersection is a straight with two
// branch exits at its midpoint sides.
const (
	straightLength = 20.0
	curveRadius    = 10.0
	poleHeight     = 8.0
)

func socketNode(name string, pos r3.Vec, heading float64) *model.Node {
	return &model.Node{
		Name:  name,
		Local: model.At(pos, heading),
	}
}

// builtinTemplates constructs the compiled-in piece set. Socket role
// tables are resolved by the catalog on load, same as for external
// pieces.
func builtinTemplates() map[string]*model.Template {
	quarter := math.Pi / 2
	arcLength := quarter * curveRadius

	return map[string]*model.Template{
		model.TypeStraight: {
			TypeID: model.TypeStraight,
			Label:  "Road straight",
			Length: straightLength,
			Root: &model.Node{
				Name:  "road_straight",
				Local: model.Identity(),
				Children: []*model.Node{
					socketNode("Socket_Out", r3.Vec{Z: straightLength}, 0),
				},
			},
		},
		model.TypeCurveLeft: {
			TypeID: model.TypeCurveLeft,
			Label:  "Road curve left",
			Length: arcLength,
			Root: &model.Node{
				Name:  "road_curve_left",
				Local: model.Identity(),
				Children: []*model.Node{
					socketNode("Socket_Out", r3.Vec{X: curveRadius, Z: curveRadius}, quarter),
				},
			},
		},
		model.TypeCurveRight: {
			TypeID: model.TypeCurveRight,
			Label:  "Road curve right",
			Length: arcLength,
			Root: &model.Node{
				Name:  "road_curve_right",
				Local: model.Identity(),
				Children: []*model.Node{
					socketNode("Socket_Out", r3.Vec{X: -curveRadius, Z: curveRadius}, -quarter),
				},
			},
		},
		model.TypeIntersection: {
			TypeID: model.TypeIntersection,
			Label:  "Road T-intersection",
			Length: straightLength,
			Root: &model.Node{
				Name:  "road_intersection",
				Local: model.Identity(),
				Children: []*model.Node{
					socketNode("Socket_Out", r3.Vec{Z: straightLength}, 0),
					socketNode("Socket_Left", r3.Vec{X: curveRadius, Z: straightLength / 2}, quarter),
					socketNode("Socket_Right", r3.Vec{X: -curveRadius, Z: straightLength / 2}, -quarter),
				},
			},
		},
		model.TypeGroundTile: {
			TypeID: model.TypeGroundTile,
			Label:  "Ground tile",
			Root: &model.Node{
				Name:  "ground_tile",
				Local: model.Identity(),
				Children: []*model.Node{
					{Name: "surface", Local: model.Identity()},
				},
			},
		},
		model.TypePole: {
			TypeID: model.TypePole,
			Label:  "Utility pole",
			Root: &model.Node{
				Name:  "pole",
				Local: model.Identity(),
				Children: []*model.Node{
					{Name: "crossarm", Local: model.At(r3.Vec{Y: poleHeight}, 0)},
				},
			},
		},
	}
}

// BuiltinTypeIDs lists the compiled-in piece types.
func BuiltinTypeIDs() []string {
	return []string{
		model.TypeStraight,
		model.TypeCurveLeft,
		model.TypeCurveRight,
		model.TypeIntersection,
		model.TypeGroundTile,
		model.TypePole,
	}
}

// builtinLoader serves templates from the compiled-in set.
type builtinLoader struct{}

func (builtinLoader) LoadTemplate(typeID string) (*model.Template, error) {
	t, ok := builtinTemplates()[typeID]
	if !ok {
		return nil, fmt.Errorf("no built-in piece %q", typeID)
	}
	return t, nil
}
