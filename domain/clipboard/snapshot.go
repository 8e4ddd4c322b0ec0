package clipboard

import (
	"flowpad/domain/core/entities"
)

// SnapshotBuilder turns a selection of nodes and links into a self-consistent
// payload with no dangling references.
type SnapshotBuilder struct{}

// NewSnapshotBuilder creates a snapshot builder
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{}
}

// Snapshot serializes the selected nodes and links into a payload.
//
// Links are kept only when both endpoints belong to a selected node. The
// filter builds a fresh slice rather than removing elements from the input
// while iterating it, which would skip elements and silently admit invalid
// links. Output order follows the selection order of the inputs. Snapshot has
// no side effects; deleting the originals for a cut is the caller's step.
func (b *SnapshotBuilder) Snapshot(selectedNodes []*entities.Node, selectedLinks []*entities.Link) *Payload {
	selectedSockets := make(map[string]struct{})
	for _, node := range selectedNodes {
		for _, port := range node.Ports() {
			selectedSockets[port.ID().String()] = struct{}{}
		}
	}

	payload := &Payload{
		Blocks: make([]entities.NodeRecord, 0, len(selectedNodes)),
		Edges:  make([]entities.LinkRecord, 0, len(selectedLinks)),
	}

	for _, node := range selectedNodes {
		payload.Blocks = append(payload.Blocks, node.Serialize())
	}

	for _, link := range selectedLinks {
		_, sourceSelected := selectedSockets[link.Source().String()]
		_, destinationSelected := selectedSockets[link.Destination().String()]
		if sourceSelected && destinationSelected {
			payload.Edges = append(payload.Edges, link.Serialize())
		}
	}

	return payload
}
