package clipboard

import (
	"flowpad/domain/core/entities"
	"flowpad/domain/core/valueobjects"
	pkgerrors "flowpad/pkg/errors"
)

// PlacementSolver computes the geometric anchor of a payload's blocks and the
// translation needed to re-center them on a target point.
type PlacementSolver struct{}

// NewPlacementSolver creates a placement solver
func NewPlacementSolver() *PlacementSolver {
	return &PlacementSolver{}
}

// BoundingBoxCenter returns the center of the bounding box covering every
// block. The block sequence must be non-empty; callers are covered by the
// payload invariant that stored payloads always carry at least one block.
func (s *PlacementSolver) BoundingBoxCenter(blocks []entities.NodeRecord) (valueobjects.Position, error) {
	if len(blocks) == 0 {
		return valueobjects.Position{}, pkgerrors.NewValidation("cannot compute the bounding box of zero blocks")
	}

	bounds, err := blockBounds(blocks[0])
	if err != nil {
		return valueobjects.Position{}, err
	}
	for _, block := range blocks[1:] {
		rect, err := blockBounds(block)
		if err != nil {
			return valueobjects.Position{}, err
		}
		bounds = bounds.Union(rect)
	}

	return bounds.Center(), nil
}

// TranslationFor returns the offset that moves center onto target. Applying
// the same offset to every block preserves the group's relative layout
// exactly while anchoring its center on the target point.
func (s *PlacementSolver) TranslationFor(center, target valueobjects.Position) valueobjects.Vector {
	return center.VectorTo(target)
}

func blockBounds(block entities.NodeRecord) (valueobjects.Rect, error) {
	position, err := valueobjects.NewPosition(block.Position[0], block.Position[1])
	if err != nil {
		return valueobjects.Rect{}, err
	}
	size, err := valueobjects.NewSize(block.Width, block.Height)
	if err != nil {
		return valueobjects.Rect{}, err
	}
	return valueobjects.NewRect(position, size), nil
}
