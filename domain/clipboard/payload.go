// Package clipboard implements the scene clipboard pipeline: snapshotting a
// selected subgraph into a detached payload, computing where a pasted copy
// should land, and rebuilding the subgraph with fresh identities.
package clipboard

import (
	"fmt"

	"flowpad/domain/core/entities"
	pkgerrors "flowpad/pkg/errors"
)

// Payload is the serialized, detached representation of a node/link subset.
//
// Invariant: every edge references two sockets that belong to blocks also
// present in the payload. A payload with zero blocks is never stored; it
// collapses to "absent" clipboard content.
type Payload struct {
	Blocks []entities.NodeRecord `json:"blocks"`
	Edges  []entities.LinkRecord `json:"edges"`
}

// IsEmpty checks whether the payload carries no blocks
func (p *Payload) IsEmpty() bool {
	return p == nil || len(p.Blocks) == 0
}

// Validate verifies the payload invariant: every edge endpoint must resolve
// to a socket owned by one of the payload's blocks. A violation means the
// snapshot step admitted a dangling link, which is a programming defect.
func (p *Payload) Validate() error {
	sockets := make(map[string]struct{})
	for _, block := range p.Blocks {
		for _, s := range block.SocketsIn {
			sockets[s] = struct{}{}
		}
		for _, s := range block.SocketsOut {
			sockets[s] = struct{}{}
		}
	}

	for _, edge := range p.Edges {
		if _, ok := sockets[edge.SourceSocket]; !ok {
			return pkgerrors.NewInvariant(
				fmt.Sprintf("edge %s references source socket %s outside the payload", edge.ID, edge.SourceSocket))
		}
		if _, ok := sockets[edge.DestinationSocket]; !ok {
			return pkgerrors.NewInvariant(
				fmt.Sprintf("edge %s references destination socket %s outside the payload", edge.ID, edge.DestinationSocket))
		}
	}
	return nil
}
