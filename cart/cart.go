// Package cart tracks which products are selected for an order draft.
// A Selection is plain state owned by its caller; it holds no connections
// and performs no I/O.
package cart

import (
	"strconv"
	"strings"

	"sharee/models"
)

// Line is one selected product plus its quantity.
type Line struct {
	ProductID string
	Quantity  int
}

// Selection holds at most one line per product, in insertion order.
type Selection struct {
	lines []Line
}

func NewSelection() *Selection {
	return &Selection{}
}

// Toggle selects a product, or deselects it if it is already present.
// Re-adding a product starts it back at quantity 1.
func (s *Selection) Toggle(p models.Product) {
	for i, l := range s.lines {
		if l.ProductID == p.ProductID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
	s.lines = append(s.lines, Line{ProductID: p.ProductID, Quantity: 1})
}

// SetQuantity updates the quantity of a selected product. Anything that
// does not parse as a positive integer falls back to 1. Unselected
// products are a silent no-op.
func (s *Selection) SetQuantity(productID, raw string) {
	for i, l := range s.lines {
		if l.ProductID == productID {
			s.lines[i].Quantity = ParseQuantity(raw)
			return
		}
	}
}

// ParseQuantity coerces raw form input to a usable quantity.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Clear empties the selection, used after a successful submission.
func (s *Selection) Clear() {
	s.lines = nil
}

// Lines returns a copy of the current lines.
func (s *Selection) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Selection) Len() int { return len(s.lines) }

func (s *Selection) IsEmpty() bool { return len(s.lines) == 0 }
