package valueobjects

import (
	pkgerrors "flowpad/pkg/errors"
)

// Size is a value object representing node dimensions
type Size struct {
	width  float64
	height float64
}

// NewSize creates a size with validation
func NewSize(width, height float64) (Size, error) {
	if !isValidCoordinate(width) || !isValidCoordinate(height) {
		return Size{}, pkgerrors.NewValidation("invalid size: dimensions must be finite numbers")
	}
	if width < 0 || height < 0 {
		return Size{}, pkgerrors.NewValidation("invalid size: dimensions cannot be negative")
	}
	return Size{width: width, height: height}, nil
}

// Width returns the width
func (s Size) Width() float64 {
	return s.width
}

// Height returns the height
func (s Size) Height() float64 {
	return s.height
}

// Rect is an axis-aligned bounding box in scene coordinates
type Rect struct {
	xmin float64
	ymin float64
	xmax float64
	ymax float64
}

// NewRect creates a rect from a top-left position and a size
func NewRect(topLeft Position, size Size) Rect {
	return Rect{
		xmin: topLeft.X(),
		ymin: topLeft.Y(),
		xmax: topLeft.X() + size.Width(),
		ymax: topLeft.Y() + size.Height(),
	}
}

// Union returns the smallest rect covering both rects
func (r Rect) Union(other Rect) Rect {
	out := r
	if other.xmin < out.xmin {
		out.xmin = other.xmin
	}
	if other.ymin < out.ymin {
		out.ymin = other.ymin
	}
	if other.xmax > out.xmax {
		out.xmax = other.xmax
	}
	if other.ymax > out.ymax {
		out.ymax = other.ymax
	}
	return out
}

// Center returns the geometric center of the rect
func (r Rect) Center() Position {
	return Position{
		x: (r.xmin + r.xmax) / 2,
		y: (r.ymin + r.ymax) / 2,
	}
}

// Min returns the top-left corner
func (r Rect) Min() Position {
	return Position{x: r.xmin, y: r.ymin}
}

// Max returns the bottom-right corner
func (r Rect) Max() Position {
	return Position{x: r.xmax, y: r.ymax}
}
