package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/creativehubiion/roadforge/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// countingLoader wraps the built-in set and records how often each type
// is fetched.
type countingLoader struct {
	calls map[string]int
}

func (l *countingLoader) LoadTemplate(typeID string) (*model.Template, error) {
	l.calls[typeID]++
	return builtinLoader{}.LoadTemplate(typeID)
}

func TestLoadIsIdempotent(t *testing.T) {
	loader := &countingLoader{calls: make(map[string]int)}
	c := New(loader)

	first, err := c.Load(model.TypeStraight)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := c.Load(model.TypeStraight)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if first != second {
		t.Error("second load returned a different template instance")
	}
	if loader.calls[model.TypeStraight] != 1 {
		t.Errorf("loader called %d times, want 1", loader.calls[model.TypeStraight])
	}
}

func TestLoadFailureIsCached(t *testing.T) {
	loader := &countingLoader{calls: make(map[string]int)}
	c := New(loader)

	if _, err := c.Load("no-such-piece"); !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("expected ErrAssetMissing, got %v", err)
	}
	if _, err := c.Load("no-such-piece"); !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("expected cached ErrAssetMissing, got %v", err)
	}
	if loader.calls["no-such-piece"] != 1 {
		t.Errorf("failed load retried: loader called %d times", loader.calls["no-such-piece"])
	}
}

func TestInstantiateUnloadedType(t *testing.T) {
	c := New(&countingLoader{calls: make(map[string]int)})
	if _, err := c.Instantiate(model.TypeStraight, model.Identity()); !errors.Is(err, ErrAssetMissing) {
		t.Errorf("expected ErrAssetMissing for never-loaded type, got %v", err)
	}
}

func TestSocketRolesResolved(t *testing.T) {
	c := NewBuiltin()

	straight, _ := c.Template(model.TypeStraight)
	if _, ok := straight.Sockets[model.SocketOut]; !ok {
		t.Error("straight missing exit socket")
	}
	if len(straight.Sockets) != 1 {
		t.Errorf("straight has %d sockets, want 1", len(straight.Sockets))
	}

	// Curve type names contain "left"/"right" but the root node is not
	// a socket; only the exit must resolve.
	curve, _ := c.Template(model.TypeCurveLeft)
	if len(curve.Sockets) != 1 {
		t.Errorf("curve-left has %d sockets, want 1", len(curve.Sockets))
	}

	inter, _ := c.Template(model.TypeIntersection)
	for _, role := range []model.SocketRole{model.SocketOut, model.SocketBranchLeft, model.SocketBranchRight} {
		if _, ok := inter.Sockets[role]; !ok {
			t.Errorf("intersection missing %s socket", role)
		}
	}

	tile, _ := c.Template(model.TypeGroundTile)
	if tile.Chainable() {
		t.Error("ground tile reports an exit socket")
	}
}

func TestSocketPatternPrecedence(t *testing.T) {
	// A name like "out_left" must resolve to the branch role, not the
	// exit role, and one node never fills two roles.
	tmpl := &model.Template{
		TypeID: "custom",
		Root: &model.Node{
			Name:  "custom_piece",
			Local: model.Identity(),
			Children: []*model.Node{
				{Name: "out_left", Local: model.At(r3.Vec{X: 5}, 0)},
				{Name: "Socket_Out", Local: model.At(r3.Vec{Z: 10}, 0)},
			},
		},
	}
	if err := resolveSockets(tmpl); err != nil {
		t.Fatalf("resolveSockets: %v", err)
	}
	left, ok := tmpl.Sockets[model.SocketBranchLeft]
	if !ok {
		t.Fatal("branch-left role not resolved")
	}
	if left.Local.Position.X != 5 {
		t.Errorf("branch-left resolved to wrong node: %+v", left.Local.Position)
	}
	out, ok := tmpl.Sockets[model.SocketOut]
	if !ok {
		t.Fatal("exit role not resolved")
	}
	if out.Local.Position.Z != 10 {
		t.Errorf("exit resolved to wrong node: %+v", out.Local.Position)
	}
}

func TestInstantiateClonesHierarchy(t *testing.T) {
	c := NewBuiltin()

	a, err := c.Instantiate(model.TypeStraight, model.Identity())
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	a.Root.Children[0].Local.Position.Z = 999

	b, err := c.Instantiate(model.TypeStraight, model.Identity())
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	if b.Root.Children[0].Local.Position.Z != straightLength {
		t.Error("mutating one instance leaked into the template")
	}
}

func TestSocketWorldResolution(t *testing.T) {
	c := NewBuiltin()

	p, err := c.Instantiate(model.TypeStraight, model.At(r3.Vec{X: 1, Z: 2}, 0))
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	out, ok := p.SocketWorld(model.SocketOut)
	if !ok {
		t.Fatal("straight lost its exit socket")
	}
	if out.Position.X != 1 || out.Position.Z != 2+straightLength {
		t.Errorf("exit world position: %+v", out.Position)
	}
}

func TestAvailableSorted(t *testing.T) {
	c := NewBuiltin()
	ids := c.Available()
	if len(ids) != len(BuiltinTypeIDs()) {
		t.Fatalf("available: got %d types, want %d", len(ids), len(BuiltinTypeIDs()))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("available not sorted: %q before %q", ids[i-1], ids[i])
		}
	}
}

func TestFileLoaderOverride(t *testing.T) {
	dir := t.TempDir()
	tmpl := model.Template{
		TypeID: model.TypeStraight,
		Label:  "Long straight",
		Length: 40,
		Root: &model.Node{
			Name:  "road_straight_long",
			Local: model.Identity(),
			Children: []*model.Node{
				{Name: "Socket_Out", Local: model.At(r3.Vec{Z: 40}, 0)},
			},
		},
	}
	data, err := json.Marshal(tmpl)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, model.TypeStraight+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	loader := FileLoader{Dir: dir}
	got, err := loader.LoadTemplate(model.TypeStraight)
	if err != nil {
		t.Fatalf("load override: %v", err)
	}
	if got.Length != 40 {
		t.Errorf("override length: got %v, want 40", got.Length)
	}

	// No file for curves: falls back to the compiled-in piece.
	curve, err := loader.LoadTemplate(model.TypeCurveLeft)
	if err != nil {
		t.Fatalf("fallback load: %v", err)
	}
	if curve.TypeID != model.TypeCurveLeft {
		t.Errorf("fallback type: got %q", curve.TypeID)
	}
}

func TestFileLoaderRejectsMismatchedType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "straight.json")
	body := `{"type_id": "curve-left", "root": {"name": "x", "local": {"scale": 1}}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := (FileLoader{Dir: dir}).LoadTemplate("straight"); err == nil {
		t.Error("expected an error for a file declaring a different type")
	}
}
