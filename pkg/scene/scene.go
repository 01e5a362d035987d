// Package scene describes one fully resolved frame: what to draw, where, and in which color,
// plus the click regions that map back to navigation actions.
//
// A Scene is produced from scratch on every render pass; renderers never diff scenes.
package scene

import (
	"fmt"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/aretw0/proofview/pkg/layout"
)

// ShapeKind is the primitive a draw command asks for.
type ShapeKind string

const (
	ShapeLine   ShapeKind = "line"
	ShapeCircle ShapeKind = "circle"
	ShapeText   ShapeKind = "text"
	ShapeButton ShapeKind = "button"
)

// Action is what a click region triggers.
type Action string

const (
	ActionPrevious Action = "previous"
	ActionNext     Action = "next"
)

// TextRole tells renderers what a text item means.
type TextRole string

const (
	RoleNodeLabel  TextRole = "node_label"
	RoleTurn       TextRole = "turn"
	RoleStateIndex TextRole = "state_index"
)

// NodeView is one node as it must appear in this frame.
type NodeView struct {
	ID      domain.NodeID `json:"id"`
	At      layout.Point  `json:"at"`
	Radius  float64       `json:"radius"`
	Fill    domain.Color  `json:"fill"`
	Covered bool          `json:"covered"`
	Label   string        `json:"label"`
}

// EdgeView is one edge as it must appear in this frame.
type EdgeView struct {
	Edge   domain.Edge  `json:"edge"`
	From   layout.Point `json:"from"`
	To     layout.Point `json:"to"`
	Stroke domain.Color `json:"stroke"`
}

// Text is a free-standing text item.
type Text struct {
	Role    TextRole     `json:"role"`
	At      layout.Point `json:"at"`
	Size    float64      `json:"size"`
	Content string       `json:"content"`
}

// Region is a rectangular click target bound to a navigation action.
type Region struct {
	Action Action       `json:"action"`
	Min    layout.Point `json:"min"`
	Max    layout.Point `json:"max"`
	Label  string       `json:"label"`
}

// Contains reports whether p falls inside the region (edges inclusive).
func (r Region) Contains(p layout.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Scene is a complete frame.
type Scene struct {
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Cursor  int         `json:"cursor"`
	Total   int         `json:"total"`
	Turn    domain.Turn `json:"-"`
	TurnTag string      `json:"turn"`
	Edges   []EdgeView  `json:"edges"`
	Nodes   []NodeView  `json:"nodes"`
	Texts   []Text      `json:"texts"`
	Regions []Region    `json:"regions"`
}

// Hit returns the action of the first region containing p.
func (s *Scene) Hit(p layout.Point) (Action, bool) {
	for _, r := range s.Regions {
		if r.Contains(p) {
			return r.Action, true
		}
	}
	return "", false
}

// TurnDescription is the status line shown for the turn owner.
func TurnDescription(t domain.Turn) string {
	return fmt.Sprintf("Turn: %s", t)
}

// StateDescription is the status line shown for the cursor.
func StateDescription(cursor, total int) string {
	return fmt.Sprintf("State %d / %d", cursor+1, total)
}

// Command is one flattened draw instruction.
type Command struct {
	Kind   ShapeKind    `json:"kind"`
	At     layout.Point `json:"at"`
	To     layout.Point `json:"to,omitempty"`
	Radius float64      `json:"radius,omitempty"`
	Size   float64      `json:"size,omitempty"`
	Color  domain.Color `json:"color,omitempty"`
	Label  string       `json:"label,omitempty"`
}

// Commands flattens the scene in paint order: edges, node discs, texts, then controls.
func (s *Scene) Commands() []Command {
	out := make([]Command, 0, len(s.Edges)+len(s.Nodes)+len(s.Texts)+len(s.Regions))
	for _, e := range s.Edges {
		out = append(out, Command{Kind: ShapeLine, At: e.From, To: e.To, Color: e.Stroke})
	}
	for _, n := range s.Nodes {
		out = append(out, Command{Kind: ShapeCircle, At: n.At, Radius: n.Radius, Color: n.Fill})
	}
	for _, t := range s.Texts {
		out = append(out, Command{Kind: ShapeText, At: t.At, Size: t.Size, Label: t.Content})
	}
	for _, r := range s.Regions {
		out = append(out, Command{Kind: ShapeButton, At: r.Min, To: r.Max, Label: r.Label})
	}
	return out
}
