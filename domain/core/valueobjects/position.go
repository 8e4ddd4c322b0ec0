package valueobjects

import (
	"math"

	pkgerrors "flowpad/pkg/errors"
)

// Position is a value object representing node coordinates in 2D scene space
type Position struct {
	x float64
	y float64
}

// NewPosition creates a 2D position with validation
func NewPosition(x, y float64) (Position, error) {
	if !isValidCoordinate(x) || !isValidCoordinate(y) {
		return Position{}, pkgerrors.NewValidation("invalid coordinates: must be finite numbers")
	}
	return Position{x: x, y: y}, nil
}

// X returns the X coordinate
func (p Position) X() float64 {
	return p.x
}

// Y returns the Y coordinate
func (p Position) Y() float64 {
	return p.y
}

// Equals checks if two positions are equal
func (p Position) Equals(other Position) bool {
	const epsilon = 1e-9
	return math.Abs(p.x-other.x) < epsilon &&
		math.Abs(p.y-other.y) < epsilon
}

// Translate moves the position by the given offset
func (p Position) Translate(delta Vector) (Position, error) {
	return NewPosition(p.x+delta.DX(), p.y+delta.DY())
}

// VectorTo computes the translation that maps this position onto target
func (p Position) VectorTo(target Position) Vector {
	return Vector{dx: target.x - p.x, dy: target.y - p.y}
}

// DistanceTo calculates the Euclidean distance to another position
func (p Position) DistanceTo(other Position) float64 {
	dx := p.x - other.x
	dy := p.y - other.y
	return math.Sqrt(dx*dx + dy*dy)
}

// Vector is a translation delta between two positions
type Vector struct {
	dx float64
	dy float64
}

// NewVector creates a translation vector with validation
func NewVector(dx, dy float64) (Vector, error) {
	if !isValidCoordinate(dx) || !isValidCoordinate(dy) {
		return Vector{}, pkgerrors.NewValidation("invalid translation: components must be finite numbers")
	}
	return Vector{dx: dx, dy: dy}, nil
}

// DX returns the X component
func (v Vector) DX() float64 {
	return v.dx
}

// DY returns the Y component
func (v Vector) DY() float64 {
	return v.dy
}

// IsZero checks if this vector translates nothing
func (v Vector) IsZero() bool {
	return v.dx == 0 && v.dy == 0
}

// isValidCoordinate checks if a coordinate is a valid finite number
func isValidCoordinate(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
