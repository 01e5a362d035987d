package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyGraph is returned when a graph has no nodes. Nothing can be laid out or rendered.
var ErrEmptyGraph = errors.New("graph has no nodes")

// ErrEmptyTrace is returned when a trace has no snapshots.
var ErrEmptyTrace = errors.New("trace has no proof states")

// Fact names a per-node fact carried by a snapshot.
type Fact string

const (
	FactColor   Fact = "color"
	FactCovered Fact = "covered"
)

// UnknownNodeError is returned when a node identity outside the fixed node set is requested.
type UnknownNodeError struct {
	Node NodeID
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node %d", e.Node)
}

// MissingFactError is returned when a snapshot lacks an expected fact for a known node.
type MissingFactError struct {
	Node NodeID
	Fact Fact
}

func (e *MissingFactError) Error() string {
	return fmt.Sprintf("node %d: missing %s fact", e.Node, e.Fact)
}

// IsContractViolation reports whether err signals bad data rather than a host failure.
func IsContractViolation(err error) bool {
	var unknown *UnknownNodeError
	var missing *MissingFactError
	return errors.As(err, &unknown) || errors.As(err, &missing) ||
		errors.Is(err, ErrEmptyGraph) || errors.Is(err, ErrEmptyTrace)
}
