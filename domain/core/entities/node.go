package entities

import (
	"time"

	"flowpad/domain/core/valueobjects"
	pkgerrors "flowpad/pkg/errors"
)

// Node is the main entity representing a visual-programming block.
// This is a rich domain model with encapsulated state: position, size,
// ordered input/output ports and free-form properties.
type Node struct {
	// Private fields ensure encapsulation
	id         valueobjects.NodeID
	title      string
	position   valueobjects.Position
	size       valueobjects.Size
	inputs     []*Port
	outputs    []*Port
	properties map[string]interface{}
	createdAt  time.Time
	updatedAt  time.Time
}

// NodeRecord is the data-only serialized representation of a node.
// It carries plain attributes and port identities, never live references.
type NodeRecord struct {
	ID         string                 `json:"id"`
	Title      string                 `json:"title"`
	Position   [2]float64             `json:"position"`
	Width      float64                `json:"width"`
	Height     float64                `json:"height"`
	SocketsIn  []string               `json:"sockets_in"`
	SocketsOut []string               `json:"sockets_out"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// NewNode creates a new node with fresh identities for itself and its ports
func NewNode(title string, position valueobjects.Position, size valueobjects.Size, inputCount, outputCount int) (*Node, error) {
	if title == "" {
		return nil, pkgerrors.NewValidation("node title cannot be empty")
	}
	if inputCount < 0 || outputCount < 0 {
		return nil, pkgerrors.NewValidation("port counts cannot be negative")
	}

	now := time.Now()
	node := &Node{
		id:         valueobjects.NewNodeID(),
		title:      title,
		position:   position,
		size:       size,
		properties: make(map[string]interface{}),
		createdAt:  now,
		updatedAt:  now,
	}

	for i := 0; i < inputCount; i++ {
		node.inputs = append(node.inputs, NewPort(valueobjects.NewPortID(), node.id, PortDirectionInput, i))
	}
	for i := 0; i < outputCount; i++ {
		node.outputs = append(node.outputs, NewPort(valueobjects.NewPortID(), node.id, PortDirectionOutput, i))
	}

	return node, nil
}

// ReconstructNode rebuilds a node from its serialized record.
//
// When restoreID is false the node and every one of its ports receive freshly
// generated identities; when true the serialized identities are kept. Either
// way each serialized identity is bound to the live one in ids so that link
// reconstruction can resolve its endpoints afterwards.
func ReconstructNode(rec NodeRecord, ids IdentityMap, restoreID bool) (*Node, error) {
	if rec.Title == "" {
		return nil, pkgerrors.NewValidation("node title cannot be empty")
	}

	position, err := valueobjects.NewPosition(rec.Position[0], rec.Position[1])
	if err != nil {
		return nil, err
	}
	size, err := valueobjects.NewSize(rec.Width, rec.Height)
	if err != nil {
		return nil, err
	}

	var nodeID valueobjects.NodeID
	if restoreID {
		nodeID, err = valueobjects.ParseNodeID(rec.ID)
		if err != nil {
			return nil, err
		}
	} else {
		nodeID = valueobjects.NewNodeID()
	}
	ids.Bind(rec.ID, nodeID.String())

	now := time.Now()
	node := &Node{
		id:         nodeID,
		title:      rec.Title,
		position:   position,
		size:       size,
		properties: make(map[string]interface{}, len(rec.Properties)),
		createdAt:  now,
		updatedAt:  now,
	}
	for k, v := range rec.Properties {
		node.properties[k] = v
	}

	reconstructPorts := func(serialized []string, direction PortDirection) ([]*Port, error) {
		ports := make([]*Port, 0, len(serialized))
		for i, old := range serialized {
			var portID valueobjects.PortID
			if restoreID {
				portID, err = valueobjects.ParsePortID(old)
				if err != nil {
					return nil, err
				}
			} else {
				portID = valueobjects.NewPortID()
			}
			ids.Bind(old, portID.String())
			ports = append(ports, NewPort(portID, nodeID, direction, i))
		}
		return ports, nil
	}

	if node.inputs, err = reconstructPorts(rec.SocketsIn, PortDirectionInput); err != nil {
		return nil, err
	}
	if node.outputs, err = reconstructPorts(rec.SocketsOut, PortDirectionOutput); err != nil {
		return nil, err
	}

	return node, nil
}

// Serialize converts the node into its data-only record
func (n *Node) Serialize() NodeRecord {
	rec := NodeRecord{
		ID:         n.id.String(),
		Title:      n.title,
		Position:   [2]float64{n.position.X(), n.position.Y()},
		Width:      n.size.Width(),
		Height:     n.size.Height(),
		SocketsIn:  make([]string, 0, len(n.inputs)),
		SocketsOut: make([]string, 0, len(n.outputs)),
	}
	for _, p := range n.inputs {
		rec.SocketsIn = append(rec.SocketsIn, p.ID().String())
	}
	for _, p := range n.outputs {
		rec.SocketsOut = append(rec.SocketsOut, p.ID().String())
	}
	if len(n.properties) > 0 {
		rec.Properties = make(map[string]interface{}, len(n.properties))
		for k, v := range n.properties {
			rec.Properties[k] = v
		}
	}
	return rec
}

// ID returns the node's unique identifier
func (n *Node) ID() valueobjects.NodeID {
	return n.id
}

// Title returns the node's display title
func (n *Node) Title() string {
	return n.title
}

// Position returns the node's position
func (n *Node) Position() valueobjects.Position {
	return n.position
}

// Size returns the node's dimensions
func (n *Node) Size() valueobjects.Size {
	return n.size
}

// Bounds returns the node's bounding box in scene coordinates
func (n *Node) Bounds() valueobjects.Rect {
	return valueobjects.NewRect(n.position, n.size)
}

// Inputs returns the ordered input ports
func (n *Node) Inputs() []*Port {
	ports := make([]*Port, len(n.inputs))
	copy(ports, n.inputs)
	return ports
}

// Outputs returns the ordered output ports
func (n *Node) Outputs() []*Port {
	ports := make([]*Port, len(n.outputs))
	copy(ports, n.outputs)
	return ports
}

// Ports returns all ports, inputs first
func (n *Node) Ports() []*Port {
	ports := make([]*Port, 0, len(n.inputs)+len(n.outputs))
	ports = append(ports, n.inputs...)
	ports = append(ports, n.outputs...)
	return ports
}

// HasPort checks if the given port belongs to this node
func (n *Node) HasPort(id valueobjects.PortID) bool {
	for _, p := range n.inputs {
		if p.ID().Equals(id) {
			return true
		}
	}
	for _, p := range n.outputs {
		if p.ID().Equals(id) {
			return true
		}
	}
	return false
}

// MoveTo moves the node to a new position
func (n *Node) MoveTo(position valueobjects.Position) {
	if position.Equals(n.position) {
		return
	}
	n.position = position
	n.updatedAt = time.Now()
}

// TranslateBy moves the node by the given offset
func (n *Node) TranslateBy(delta valueobjects.Vector) error {
	moved, err := n.position.Translate(delta)
	if err != nil {
		return err
	}
	n.MoveTo(moved)
	return nil
}

// SetProperty sets a free-form property on the node
func (n *Node) SetProperty(key string, value interface{}) {
	n.properties[key] = value
	n.updatedAt = time.Now()
}

// Property retrieves a free-form property from the node
func (n *Node) Property(key string) (interface{}, bool) {
	v, ok := n.properties[key]
	return v, ok
}

// CreatedAt returns when the node was created
func (n *Node) CreatedAt() time.Time {
	return n.createdAt
}

// UpdatedAt returns when the node was last updated
func (n *Node) UpdatedAt() time.Time {
	return n.updatedAt
}
