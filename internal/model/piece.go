package model

import (
	"strings"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Node is one element of a piece's object hierarchy. Sockets are plain
// nodes whose names mark them as attachment anchors; the catalog
// resolves them into typed role tables at load time.
type Node struct {
	Name     string    `json:"name"`
	Local    Transform `json:"local"`
	Children []*Node   `json:"children,omitempty"`
}

// Clone deep-copies the node and all descendants so an instance can be
// re-posed without touching the template.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Name: n.Name, Local: n.Local}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return c
}

// Find searches the subtree depth-first for the first node whose name
// contains the given pattern, case-insensitively. It returns the match
// and its local transform composed from this node down, or nil.
func (n *Node) Find(pattern string) (*Node, Transform) {
	return n.find(strings.ToLower(pattern), Identity())
}

func (n *Node) find(pattern string, parent Transform) (*Node, Transform) {
	if n == nil {
		return nil, Transform{}
	}
	world := parent.Compose(n.Local)
	if strings.Contains(strings.ToLower(n.Name), pattern) {
		return n, world
	}
	for _, ch := range n.Children {
		if m, tr := ch.find(pattern, world); m != nil {
			return m, tr
		}
	}
	return nil, Transform{}
}

// SocketRole identifies an attachment anchor on a piece.
type SocketRole int

const (
	SocketOut SocketRole = iota // exit of a linear piece, continuation of the chain
	SocketBranchLeft
	SocketBranchRight
)

func (r SocketRole) String() string {
	switch r {
	case SocketOut:
		return "out"
	case SocketBranchLeft:
		return "left"
	case SocketBranchRight:
		return "right"
	default:
		return "unknown"
	}
}

// Socket is a resolved anchor: its role and its transform relative to
// the piece root. A piece has no "in" socket; its origin is implicitly
// the entry point.
type Socket struct {
	Role  SocketRole `json:"role"`
	Local Transform  `json:"local"`
}

// Template is a reusable piece blueprint. Sockets is populated once at
// load time so placement never repeats the name search.
type Template struct {
	TypeID  string                `json:"type_id"`
	Label   string                `json:"label"`
	Length  float64               `json:"length"` // centerline length, origin to exit
	Root    *Node                 `json:"root"`
	Sockets map[SocketRole]Socket `json:"-"`
}

// Chainable reports whether the piece can continue a path (has an exit
// socket). Ground tiles and poles are terminal props.
func (t *Template) Chainable() bool {
	_, ok := t.Sockets[SocketOut]
	return ok
}

// PlacedPiece is one committed instance of a template: an independent
// hierarchy clone plus its world transform. Samples and Segments are
// filled at commit time and immutable afterwards.
type PlacedPiece struct {
	ID     string    `json:"id"`
	TypeID string    `json:"type_id"`
	World  Transform `json:"world"`
	Root   *Node     `json:"-"`

	sockets map[SocketRole]Socket

	// Segments are the world-space centerline endpoints (origin to each
	// socket) used for sampling, export and drawing.
	Segments [][2]r3.Vec `json:"-"`
	// Samples are the world-space collision sample points taken at commit.
	Samples []r3.Vec `json:"-"`
}

// NewPlacedPiece instantiates a template at the given world transform.
func NewPlacedPiece(t *Template, world Transform) *PlacedPiece {
	sockets := make(map[SocketRole]Socket, len(t.Sockets))
	for role, s := range t.Sockets {
		sockets[role] = s
	}
	return &PlacedPiece{
		ID:      uuid.New().String()[:8],
		TypeID:  t.TypeID,
		World:   world,
		Root:    t.Root.Clone(),
		sockets: sockets,
	}
}

// SocketWorld resolves a socket's world transform from the piece's
// current placement.
func (p *PlacedPiece) SocketWorld(role SocketRole) (Transform, bool) {
	s, ok := p.sockets[role]
	if !ok {
		return Transform{}, false
	}
	return p.World.Compose(s.Local), true
}

// SocketRoles lists the roles present on this piece in a fixed order.
func (p *PlacedPiece) SocketRoles() []SocketRole {
	var roles []SocketRole
	for _, r := range []SocketRole{SocketOut, SocketBranchLeft, SocketBranchRight} {
		if _, ok := p.sockets[r]; ok {
			roles = append(roles, r)
		}
	}
	return roles
}
