// Package ports defines the boundary interfaces the application layer
// consumes. Implementations live in the infrastructure layer.
package ports

import (
	"flowpad/domain/core/entities"
	"flowpad/domain/core/valueobjects"
)

// Scene is the editor collaborator that owns the full node set, link set and
// current selection. The clipboard never owns live scene items; it works on
// detached serialized records only.
type Scene interface {
	// SelectedItems returns the currently selected nodes and links in a
	// stable order (selection insertion order, not a sort).
	SelectedItems() (nodes []*entities.Node, links []*entities.Link)

	// ClearSelection deselects every item.
	ClearSelection()

	// SelectItems marks the given items selected, keeping their order.
	SelectItems(nodes []*entities.Node, links []*entities.Link)

	// CreateNode materializes a node from a serialized record and adds it to
	// the scene. restoreID controls whether the serialized identity is kept
	// or a fresh one is generated; either way the record's identities are
	// bound to the live ones in ids.
	CreateNode(rec entities.NodeRecord, ids entities.IdentityMap, restoreID bool) (*entities.Node, error)

	// CreateLink materializes a link from a serialized record, resolving its
	// endpoints through ids, and adds it to the scene.
	CreateLink(rec entities.LinkRecord, ids entities.IdentityMap, restoreID bool) (*entities.Link, error)

	// RemoveNode removes a node, its ports and any link left dangling by
	// them. Unknown identities are ignored.
	RemoveNode(id valueobjects.NodeID)

	// RemoveLink removes a link. Unknown identities are ignored.
	RemoveLink(id valueobjects.LinkID)

	// DeleteSelectedItems removes every selected item from the scene, along
	// with any link left dangling by a removed node.
	DeleteSelectedItems()

	// HistoryCheckpoint notifies the scene's history collaborator that an
	// operation completed.
	HistoryCheckpoint(label string, modified bool)
}

// ViewPort exposes the pointer location in scene coordinates
type ViewPort interface {
	LastPointerPosition() valueobjects.Position
}
