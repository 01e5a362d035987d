// Package navigator holds the cursor over a fixed-length sequence of proof states.
package navigator

import "github.com/aretw0/proofview/pkg/domain"

// Navigator is a zero-based cursor clamped to [0, length-1].
// Boundary calls are no-ops, never errors, so controls never need disabling at the edges.
// It is not safe for concurrent use; callers serialize navigation.
type Navigator struct {
	cursor int
	length int
}

// New creates a navigator at index 0 over a sequence of length snapshots.
func New(length int) (*Navigator, error) {
	if length < 1 {
		return nil, domain.ErrEmptyTrace
	}
	return &Navigator{length: length}, nil
}

// Next advances the cursor unless it is already at the last index.
// It reports whether the cursor moved.
func (n *Navigator) Next() bool {
	if n.cursor < n.length-1 {
		n.cursor++
		return true
	}
	return false
}

// Previous moves the cursor back unless it is already at 0.
// It reports whether the cursor moved.
func (n *Navigator) Previous() bool {
	if n.cursor > 0 {
		n.cursor--
		return true
	}
	return false
}

// Seek moves the cursor to i, clamped into range. It reports whether the cursor moved.
func (n *Navigator) Seek(i int) bool {
	if i < 0 {
		i = 0
	}
	if i > n.length-1 {
		i = n.length - 1
	}
	moved := i != n.cursor
	n.cursor = i
	return moved
}

// First moves to index 0.
func (n *Navigator) First() bool {
	return n.Seek(0)
}

// Last moves to the final index.
func (n *Navigator) Last() bool {
	return n.Seek(n.length - 1)
}

// Current returns the cursor.
func (n *Navigator) Current() int {
	return n.cursor
}

// Len returns the fixed sequence length.
func (n *Navigator) Len() int {
	return n.length
}

// AtStart reports whether the cursor is at index 0.
func (n *Navigator) AtStart() bool {
	return n.cursor == 0
}

// AtEnd reports whether the cursor is at the last index.
func (n *Navigator) AtEnd() bool {
	return n.cursor == n.length-1
}
