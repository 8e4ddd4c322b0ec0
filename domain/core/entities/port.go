package entities

import (
	"flowpad/domain/core/valueobjects"
)

// PortDirection represents which side of a node a port sits on
type PortDirection string

const (
	PortDirectionInput  PortDirection = "input"
	PortDirectionOutput PortDirection = "output"
)

// Port is a node's typed connection point. Ports are owned by their node
// and referenced, never owned, by links.
type Port struct {
	id        valueobjects.PortID
	nodeID    valueobjects.NodeID
	direction PortDirection
	index     int
}

// NewPort creates a port attached to the given owner node
func NewPort(id valueobjects.PortID, nodeID valueobjects.NodeID, direction PortDirection, index int) *Port {
	return &Port{
		id:        id,
		nodeID:    nodeID,
		direction: direction,
		index:     index,
	}
}

// ID returns the port's unique identifier
func (p *Port) ID() valueobjects.PortID {
	return p.id
}

// NodeID returns the identity of the owning node (back-reference)
func (p *Port) NodeID() valueobjects.NodeID {
	return p.nodeID
}

// Direction returns whether this is an input or output port
func (p *Port) Direction() PortDirection {
	return p.direction
}

// Index returns the port's ordinal position on its side of the node
func (p *Port) Index() int {
	return p.index
}

// IsInput checks if this is an input port
func (p *Port) IsInput() bool {
	return p.direction == PortDirectionInput
}

// IsOutput checks if this is an output port
func (p *Port) IsOutput() bool {
	return p.direction == PortDirectionOutput
}
