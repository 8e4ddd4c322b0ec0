package entities

import (
	"fmt"
	"time"

	"flowpad/domain/core/valueobjects"
	pkgerrors "flowpad/pkg/errors"
)

// Link is a directed connection between an output port and an input port.
// Endpoints are referenced by port identity and resolved through the owning
// scene, never held as live pointers.
type Link struct {
	id          valueobjects.LinkID
	source      valueobjects.PortID
	destination valueobjects.PortID
	createdAt   time.Time
}

// LinkRecord is the data-only serialized representation of a link
type LinkRecord struct {
	ID                string `json:"id"`
	SourceSocket      string `json:"source_socket"`
	DestinationSocket string `json:"destination_socket"`
}

// NewLink creates a new link between two ports with validation
func NewLink(source, destination valueobjects.PortID) (*Link, error) {
	if source.IsEmpty() || destination.IsEmpty() {
		return nil, pkgerrors.NewValidation("link endpoints cannot be empty")
	}
	if source.Equals(destination) {
		return nil, pkgerrors.NewValidation("link cannot connect a port to itself")
	}
	return &Link{
		id:          valueobjects.NewLinkID(),
		source:      source,
		destination: destination,
		createdAt:   time.Now(),
	}, nil
}

// ReconstructLink rebuilds a link from its serialized record.
//
// Endpoints are resolved through ids, which must already contain bindings for
// every port the record references; an unresolvable endpoint is an invariant
// violation, not a user-facing condition, since snapshots never admit links
// whose endpoints fall outside the captured node set. When restoreID is true
// an endpoint missing from ids falls back to the serialized identity itself.
func ReconstructLink(rec LinkRecord, ids IdentityMap, restoreID bool) (*Link, error) {
	source, err := resolvePort(rec.SourceSocket, ids, restoreID)
	if err != nil {
		return nil, err
	}
	destination, err := resolvePort(rec.DestinationSocket, ids, restoreID)
	if err != nil {
		return nil, err
	}

	var linkID valueobjects.LinkID
	if restoreID {
		linkID, err = valueobjects.ParseLinkID(rec.ID)
		if err != nil {
			return nil, err
		}
	} else {
		linkID = valueobjects.NewLinkID()
	}
	ids.Bind(rec.ID, linkID.String())

	return &Link{
		id:          linkID,
		source:      source,
		destination: destination,
		createdAt:   time.Now(),
	}, nil
}

func resolvePort(old string, ids IdentityMap, restoreID bool) (valueobjects.PortID, error) {
	if live, ok := ids.Resolve(old); ok {
		return valueobjects.ParsePortID(live)
	}
	if restoreID {
		return valueobjects.ParsePortID(old)
	}
	return valueobjects.PortID{}, pkgerrors.NewInvariant(
		fmt.Sprintf("link endpoint %s cannot be resolved through the rebinding map", old))
}

// Serialize converts the link into its data-only record
func (l *Link) Serialize() LinkRecord {
	return LinkRecord{
		ID:                l.id.String(),
		SourceSocket:      l.source.String(),
		DestinationSocket: l.destination.String(),
	}
}

// ID returns the link's unique identifier
func (l *Link) ID() valueobjects.LinkID {
	return l.id
}

// Source returns the source port identity
func (l *Link) Source() valueobjects.PortID {
	return l.source
}

// Destination returns the destination port identity
func (l *Link) Destination() valueobjects.PortID {
	return l.destination
}

// HasEndpoint checks if this link references the given port
func (l *Link) HasEndpoint(id valueobjects.PortID) bool {
	return l.source.Equals(id) || l.destination.Equals(id)
}

// CreatedAt returns when the link was created
func (l *Link) CreatedAt() time.Time {
	return l.createdAt
}
