// Package layout places nodes on a circle. Positions depend only on the node count
// and are computed once per trace.
package layout

import (
	"math"

	"github.com/aretw0/proofview/pkg/domain"
)

// Defaults used when no configuration overrides them.
const (
	DefaultCenterX = 300.0
	DefaultCenterY = 300.0
	DefaultRadius  = 150.0
)

// Point is a 2-D position in scene coordinates (y grows downward).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout maps every node identity to a fixed position.
type Layout struct {
	Center Point
	Radius float64
	pos    []Point
}

// Circular assigns node i the angle i*(360/n) degrees around center.
func Circular(n int, center Point, radius float64) (*Layout, error) {
	if n <= 0 {
		return nil, domain.ErrEmptyGraph
	}

	step := 2 * math.Pi / float64(n)
	l := &Layout{Center: center, Radius: radius, pos: make([]Point, n)}
	for i := range l.pos {
		theta := float64(i) * step
		l.pos[i] = Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return l, nil
}

// Len returns the number of placed nodes.
func (l *Layout) Len() int {
	return len(l.pos)
}

// Position returns the position of id.
func (l *Layout) Position(id domain.NodeID) (Point, error) {
	if id < 0 || int(id) >= len(l.pos) {
		return Point{}, &domain.UnknownNodeError{Node: id}
	}
	return l.pos[id], nil
}
