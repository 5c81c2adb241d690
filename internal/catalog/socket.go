package catalog

import (
	"fmt"
	"strings"

	"github.com/creativehubiion/roadforge/internal/model"
)

// Socket name patterns searched in piece hierarchies. Asset authors
// mark anchors by embedding these substrings in node names
// ("Socket_Out", "exit_left", ...); matching is case-insensitive.
var socketPatterns = []struct {
	role    model.SocketRole
	pattern string
}{
	{model.SocketBranchLeft, "left"},
	{model.SocketBranchRight, "right"},
	{model.SocketOut, "out"},
}

// resolveSockets runs the name-pattern search once per template and
// stores the results as a typed role table, so placement never repeats
// the string traversal. Left/right are matched before "out" so an exit
// name like "out_left" resolves to the branch role; a node claimed by
// an earlier role is skipped and the search continues deeper.
func resolveSockets(t *model.Template) error {
	if t.Root == nil {
		return fmt.Errorf("template %s has no hierarchy", t.TypeID)
	}
	t.Sockets = make(map[model.SocketRole]model.Socket)
	// The root is the piece itself, never an anchor; only descendants
	// are searched. Type names like "road_curve_left" must not match.
	claimed := map[*model.Node]bool{t.Root: true}
	for _, sp := range socketPatterns {
		node, local := findUnclaimed(t.Root, model.Identity(), strings.ToLower(sp.pattern), claimed)
		if node == nil {
			continue
		}
		claimed[node] = true
		t.Sockets[sp.role] = model.Socket{Role: sp.role, Local: local}
	}
	return nil
}

// findUnclaimed is a depth-first name search that passes over nodes
// already bound to a role.
func findUnclaimed(n *model.Node, parent model.Transform, pattern string, claimed map[*model.Node]bool) (*model.Node, model.Transform) {
	world := parent.Compose(n.Local)
	if !claimed[n] && strings.Contains(strings.ToLower(n.Name), pattern) {
		return n, world
	}
	for _, ch := range n.Children {
		if m, tr := findUnclaimed(ch, world, pattern, claimed); m != nil {
			return m, tr
		}
	}
	return nil, model.Transform{}
}
