package memory

import (
	"flowpad/domain/core/valueobjects"
)

// ViewPort tracks the last pointer position in scene coordinates
type ViewPort struct {
	pointer valueobjects.Position
}

// NewViewPort creates a viewport with the pointer at the origin
func NewViewPort() *ViewPort {
	return &ViewPort{}
}

// SetPointerPosition records the pointer position
func (v *ViewPort) SetPointerPosition(p valueobjects.Position) {
	v.pointer = p
}

// LastPointerPosition returns the most recent pointer position
func (v *ViewPort) LastPointerPosition() valueobjects.Position {
	return v.pointer
}
