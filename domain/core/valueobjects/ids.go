package valueobjects

import (
	"github.com/google/uuid"

	pkgerrors "flowpad/pkg/errors"
)

// NodeID is a value object that ensures valid node identifiers
type NodeID struct {
	value string
}

// NewNodeID creates a new random NodeID
func NewNodeID() NodeID {
	return NodeID{value: uuid.New().String()}
}

// ParseNodeID creates a NodeID from a string, validating it's a proper UUID
func ParseNodeID(id string) (NodeID, error) {
	if _, err := uuid.Parse(id); err != nil {
		return NodeID{}, pkgerrors.NewValidation("invalid node identifier: must be a UUID")
	}
	return NodeID{value: id}, nil
}

// String returns the string representation of the NodeID
func (id NodeID) String() string {
	return id.value
}

// Equals checks if two NodeIDs are equal
func (id NodeID) Equals(other NodeID) bool {
	return id.value == other.value
}

// IsEmpty checks if the NodeID is empty
func (id NodeID) IsEmpty() bool {
	return id.value == ""
}

// PortID is a value object that ensures valid port identifiers
type PortID struct {
	value string
}

// NewPortID creates a new random PortID
func NewPortID() PortID {
	return PortID{value: uuid.New().String()}
}

// ParsePortID creates a PortID from a string, validating it's a proper UUID
func ParsePortID(id string) (PortID, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PortID{}, pkgerrors.NewValidation("invalid port identifier: must be a UUID")
	}
	return PortID{value: id}, nil
}

// String returns the string representation of the PortID
func (id PortID) String() string {
	return id.value
}

// Equals checks if two PortIDs are equal
func (id PortID) Equals(other PortID) bool {
	return id.value == other.value
}

// IsEmpty checks if the PortID is empty
func (id PortID) IsEmpty() bool {
	return id.value == ""
}

// LinkID is a value object that ensures valid link identifiers
type LinkID struct {
	value string
}

// NewLinkID creates a new random LinkID
func NewLinkID() LinkID {
	return LinkID{value: uuid.New().String()}
}

// ParseLinkID creates a LinkID from a string, validating it's a proper UUID
func ParseLinkID(id string) (LinkID, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LinkID{}, pkgerrors.NewValidation("invalid link identifier: must be a UUID")
	}
	return LinkID{value: id}, nil
}

// String returns the string representation of the LinkID
func (id LinkID) String() string {
	return id.value
}

// Equals checks if two LinkIDs are equal
func (id LinkID) Equals(other LinkID) bool {
	return id.value == other.value
}

// IsEmpty checks if the LinkID is empty
func (id LinkID) IsEmpty() bool {
	return id.value == ""
}
