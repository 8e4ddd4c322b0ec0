// Package memory provides the in-process implementations of the editor's
// boundary ports: the scene, the viewport, the history log and the clipboard
// store.
package memory

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"flowpad/domain/core/entities"
	"flowpad/domain/core/valueobjects"
	pkgerrors "flowpad/pkg/errors"
)

// Limits bounds scene growth
type Limits struct {
	MaxNodes        int
	MaxLinksPerPort int
}

// DefaultLimits returns the limits used when no configuration is supplied
func DefaultLimits() Limits {
	return Limits{
		MaxNodes:        10000,
		MaxLinksPerPort: 64,
	}
}

// Scene owns the full node set, link set and current selection.
//
// Scene is confined to the editor's single-threaded event dispatch path and
// is not synchronized. Selection order is insertion order, which keeps
// SelectedItems stable across calls.
type Scene struct {
	// limits may be swapped at runtime by a configuration reload, which
	// arrives on the watcher goroutine rather than the dispatch path.
	limitsMu sync.RWMutex
	limits   Limits

	logger  *zap.Logger
	history *HistoryLog

	nodes     map[string]*entities.Node
	nodeOrder []string
	links     map[string]*entities.Link
	linkOrder []string
	ports     map[string]*entities.Port

	selectedNodes []string
	selectedLinks []string
}

// NewScene creates an empty scene
func NewScene(limits Limits, history *HistoryLog, logger *zap.Logger) *Scene {
	return &Scene{
		limits:  limits,
		logger:  logger,
		history: history,
		nodes:   make(map[string]*entities.Node),
		links:   make(map[string]*entities.Link),
		ports:   make(map[string]*entities.Port),
	}
}

// Limits returns the growth bounds currently in force
func (s *Scene) Limits() Limits {
	s.limitsMu.RLock()
	defer s.limitsMu.RUnlock()
	return s.limits
}

// SetLimits replaces the growth bounds. Items already in the scene are kept
// even when a tightened limit would now reject them; the bounds apply to
// additions only.
func (s *Scene) SetLimits(limits Limits) {
	s.limitsMu.Lock()
	s.limits = limits
	s.limitsMu.Unlock()
	s.logger.Info("scene limits updated",
		zap.Int("max_nodes", limits.MaxNodes),
		zap.Int("max_links_per_port", limits.MaxLinksPerPort),
	)
}

// AddNode adds a node to the scene and indexes its ports
func (s *Scene) AddNode(node *entities.Node) error {
	if _, exists := s.nodes[node.ID().String()]; exists {
		return pkgerrors.NewValidation(fmt.Sprintf("node %s already exists in the scene", node.ID()))
	}
	if limits := s.Limits(); len(s.nodes) >= limits.MaxNodes {
		return pkgerrors.NewValidation(fmt.Sprintf("scene node limit reached: %d", limits.MaxNodes))
	}

	s.nodes[node.ID().String()] = node
	s.nodeOrder = append(s.nodeOrder, node.ID().String())
	for _, port := range node.Ports() {
		s.ports[port.ID().String()] = port
	}
	return nil
}

// AddLink adds a link to the scene. A link is valid only if both endpoints
// resolve to existing ports.
func (s *Scene) AddLink(link *entities.Link) error {
	if _, exists := s.links[link.ID().String()]; exists {
		return pkgerrors.NewValidation(fmt.Sprintf("link %s already exists in the scene", link.ID()))
	}
	if _, ok := s.ports[link.Source().String()]; !ok {
		return pkgerrors.NewNotFound(fmt.Sprintf("source port %s", link.Source()))
	}
	if _, ok := s.ports[link.Destination().String()]; !ok {
		return pkgerrors.NewNotFound(fmt.Sprintf("destination port %s", link.Destination()))
	}
	if limits := s.Limits(); s.linkCountAt(link.Source()) >= limits.MaxLinksPerPort ||
		s.linkCountAt(link.Destination()) >= limits.MaxLinksPerPort {
		return pkgerrors.NewValidation(fmt.Sprintf("port link limit reached: %d", limits.MaxLinksPerPort))
	}

	s.links[link.ID().String()] = link
	s.linkOrder = append(s.linkOrder, link.ID().String())
	return nil
}

// CreateNode materializes a node from its serialized record and adds it to
// the scene. See ports.Scene for identity semantics.
func (s *Scene) CreateNode(rec entities.NodeRecord, ids entities.IdentityMap, restoreID bool) (*entities.Node, error) {
	node, err := entities.ReconstructNode(rec, ids, restoreID)
	if err != nil {
		return nil, err
	}
	if err := s.AddNode(node); err != nil {
		return nil, err
	}
	return node, nil
}

// CreateLink materializes a link from its serialized record, resolving its
// endpoints through ids, and adds it to the scene.
func (s *Scene) CreateLink(rec entities.LinkRecord, ids entities.IdentityMap, restoreID bool) (*entities.Link, error) {
	link, err := entities.ReconstructLink(rec, ids, restoreID)
	if err != nil {
		return nil, err
	}
	if err := s.AddLink(link); err != nil {
		return nil, err
	}
	return link, nil
}

// RemoveNode removes a node, its port index entries and any link left
// dangling by them. Removing an unknown identity is a no-op.
func (s *Scene) RemoveNode(id valueobjects.NodeID) {
	node, ok := s.nodes[id.String()]
	if !ok {
		return
	}

	removedPorts := make(map[string]struct{})
	for _, port := range node.Ports() {
		removedPorts[port.ID().String()] = struct{}{}
		delete(s.ports, port.ID().String())
	}
	delete(s.nodes, id.String())
	s.nodeOrder = pruneOrder(s.nodeOrder, s.nodes)
	s.selectedNodes = pruneOrder(s.selectedNodes, s.nodes)

	for linkID, link := range s.links {
		_, sourceGone := removedPorts[link.Source().String()]
		_, destinationGone := removedPorts[link.Destination().String()]
		if sourceGone || destinationGone {
			delete(s.links, linkID)
		}
	}
	s.linkOrder = pruneOrder(s.linkOrder, s.links)
	s.selectedLinks = pruneOrder(s.selectedLinks, s.links)
}

// RemoveLink removes a link. Removing an unknown identity is a no-op.
func (s *Scene) RemoveLink(id valueobjects.LinkID) {
	if _, ok := s.links[id.String()]; !ok {
		return
	}
	delete(s.links, id.String())
	s.linkOrder = pruneOrder(s.linkOrder, s.links)
	s.selectedLinks = pruneOrder(s.selectedLinks, s.links)
}

// Node looks up a node by identity
func (s *Scene) Node(id valueobjects.NodeID) (*entities.Node, bool) {
	node, ok := s.nodes[id.String()]
	return node, ok
}

// Link looks up a link by identity
func (s *Scene) Link(id valueobjects.LinkID) (*entities.Link, bool) {
	link, ok := s.links[id.String()]
	return link, ok
}

// Port looks up a port by identity
func (s *Scene) Port(id valueobjects.PortID) (*entities.Port, bool) {
	port, ok := s.ports[id.String()]
	return port, ok
}

// Nodes returns every node in insertion order
func (s *Scene) Nodes() []*entities.Node {
	nodes := make([]*entities.Node, 0, len(s.nodeOrder))
	for _, id := range s.nodeOrder {
		nodes = append(nodes, s.nodes[id])
	}
	return nodes
}

// Links returns every link in insertion order
func (s *Scene) Links() []*entities.Link {
	links := make([]*entities.Link, 0, len(s.linkOrder))
	for _, id := range s.linkOrder {
		links = append(links, s.links[id])
	}
	return links
}

// NodeCount returns the number of nodes in the scene
func (s *Scene) NodeCount() int {
	return len(s.nodes)
}

// LinkCount returns the number of links in the scene
func (s *Scene) LinkCount() int {
	return len(s.links)
}

// SelectItems marks the given items selected, keeping their order
func (s *Scene) SelectItems(nodes []*entities.Node, links []*entities.Link) {
	for _, node := range nodes {
		id := node.ID().String()
		if _, owned := s.nodes[id]; owned && !contains(s.selectedNodes, id) {
			s.selectedNodes = append(s.selectedNodes, id)
		}
	}
	for _, link := range links {
		id := link.ID().String()
		if _, owned := s.links[id]; owned && !contains(s.selectedLinks, id) {
			s.selectedLinks = append(s.selectedLinks, id)
		}
	}
}

// ClearSelection deselects every item
func (s *Scene) ClearSelection() {
	s.selectedNodes = nil
	s.selectedLinks = nil
}

// SelectedItems returns the current selection in selection order
func (s *Scene) SelectedItems() ([]*entities.Node, []*entities.Link) {
	nodes := make([]*entities.Node, 0, len(s.selectedNodes))
	for _, id := range s.selectedNodes {
		nodes = append(nodes, s.nodes[id])
	}
	links := make([]*entities.Link, 0, len(s.selectedLinks))
	for _, id := range s.selectedLinks {
		links = append(links, s.links[id])
	}
	return nodes, links
}

// DeleteSelectedItems removes every selected item, cascading to any link
// left dangling by a removed node's ports
func (s *Scene) DeleteSelectedItems() {
	removedPorts := make(map[string]struct{})
	for _, id := range s.selectedNodes {
		node, ok := s.nodes[id]
		if !ok {
			continue
		}
		for _, port := range node.Ports() {
			removedPorts[port.ID().String()] = struct{}{}
			delete(s.ports, port.ID().String())
		}
		delete(s.nodes, id)
	}
	s.nodeOrder = pruneOrder(s.nodeOrder, s.nodes)

	doomedLinks := make(map[string]struct{}, len(s.selectedLinks))
	for _, id := range s.selectedLinks {
		doomedLinks[id] = struct{}{}
	}
	for id, link := range s.links {
		_, sourceGone := removedPorts[link.Source().String()]
		_, destinationGone := removedPorts[link.Destination().String()]
		if sourceGone || destinationGone {
			doomedLinks[id] = struct{}{}
		}
	}
	for id := range doomedLinks {
		delete(s.links, id)
	}
	s.linkOrder = pruneOrder(s.linkOrder, s.links)

	s.ClearSelection()
}

// HistoryCheckpoint forwards a change notification to the history collaborator
func (s *Scene) HistoryCheckpoint(label string, modified bool) {
	s.history.Checkpoint(label, modified)
	s.logger.Debug("history checkpoint",
		zap.String("label", label),
		zap.Bool("modified", modified),
	)
}

func (s *Scene) linkCountAt(port valueobjects.PortID) int {
	count := 0
	for _, link := range s.links {
		if link.HasEndpoint(port) {
			count++
		}
	}
	return count
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func pruneOrder[T any](order []string, live map[string]T) []string {
	kept := order[:0]
	for _, id := range order {
		if _, ok := live[id]; ok {
			kept = append(kept, id)
		}
	}
	return kept
}
