package clipboard

import (
	"flowpad/domain/core/entities"
	"flowpad/domain/core/valueobjects"
	pkgerrors "flowpad/pkg/errors"
)

// SceneWriter is what the rebinder needs from a scene: creating nodes and
// links from serialized records while keeping the identity map current, and
// removing them again when a rebuild has to unwind.
type SceneWriter interface {
	CreateNode(rec entities.NodeRecord, ids entities.IdentityMap, restoreID bool) (*entities.Node, error)
	CreateLink(rec entities.LinkRecord, ids entities.IdentityMap, restoreID bool) (*entities.Link, error)
	RemoveNode(id valueobjects.NodeID)
	RemoveLink(id valueobjects.LinkID)
}

// Rebinder reconstructs a payload inside a scene with freshly assigned
// identities, resolving link endpoints through the old-to-new rebinding map.
type Rebinder struct{}

// NewRebinder creates a rebinder
func NewRebinder() *Rebinder {
	return &Rebinder{}
}

// Rebuild materializes the payload's blocks and edges in the scene, moved by
// the given translation.
//
// Identities are never reused from the payload, which is what lets a paste
// duplicate content safely into the very scene it was copied from. All nodes
// are created before any link so the rebinding map is fully populated when
// endpoints get resolved. The payload invariant is checked up front, and any
// creation failure partway through (a scene limit, an unresolvable record)
// unwinds everything already materialized, so the scene never ends up holding
// a partially reconstructed graph.
func (r *Rebinder) Rebuild(payload *Payload, scene SceneWriter, translation valueobjects.Vector) ([]*entities.Node, []*entities.Link, error) {
	if err := payload.Validate(); err != nil {
		return nil, nil, err
	}

	ids := entities.NewIdentityMap()
	nodes := make([]*entities.Node, 0, len(payload.Blocks))
	links := make([]*entities.Link, 0, len(payload.Edges))

	unwind := func(err error, message string) ([]*entities.Node, []*entities.Link, error) {
		for _, link := range links {
			scene.RemoveLink(link.ID())
		}
		for _, node := range nodes {
			scene.RemoveNode(node.ID())
		}
		return nil, nil, pkgerrors.Wrap(err, message)
	}

	for _, block := range payload.Blocks {
		node, err := scene.CreateNode(block, ids, false)
		if err != nil {
			return unwind(err, "rebuilding node from clipboard")
		}
		nodes = append(nodes, node)
		if err := node.TranslateBy(translation); err != nil {
			return unwind(err, "placing pasted node")
		}
	}

	for _, edge := range payload.Edges {
		link, err := scene.CreateLink(edge, ids, false)
		if err != nil {
			return unwind(err, "rebuilding link from clipboard")
		}
		links = append(links, link)
	}

	return nodes, links, nil
}
