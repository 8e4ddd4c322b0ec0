package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flowpad/domain/core/entities"
	"flowpad/domain/core/valueobjects"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	return NewScene(DefaultLimits(), NewHistoryLog(), zap.NewNop())
}

func addTestNode(t *testing.T, scene *Scene, title string, x, y float64) *entities.Node {
	t.Helper()
	position, err := valueobjects.NewPosition(x, y)
	require.NoError(t, err)
	size, err := valueobjects.NewSize(10, 10)
	require.NoError(t, err)
	node, err := entities.NewNode(title, position, size, 1, 1)
	require.NoError(t, err)
	require.NoError(t, scene.AddNode(node))
	return node
}

func addTestLink(t *testing.T, scene *Scene, source, destination *entities.Node) *entities.Link {
	t.Helper()
	link, err := entities.NewLink(source.Outputs()[0].ID(), destination.Inputs()[0].ID())
	require.NoError(t, err)
	require.NoError(t, scene.AddLink(link))
	return link
}

func TestScene_AddNode(t *testing.T) {
	scene := newTestScene(t)
	node := addTestNode(t, scene, "a", 0, 0)

	found, ok := scene.Node(node.ID())
	require.True(t, ok)
	assert.Same(t, node, found)

	// Ports are indexed
	port, ok := scene.Port(node.Inputs()[0].ID())
	require.True(t, ok)
	assert.True(t, port.NodeID().Equals(node.ID()))

	// Duplicate identity is rejected
	assert.Error(t, scene.AddNode(node))
}

func TestScene_AddNode_LimitReached(t *testing.T) {
	scene := NewScene(Limits{MaxNodes: 1, MaxLinksPerPort: 4}, NewHistoryLog(), zap.NewNop())
	addTestNode(t, scene, "a", 0, 0)

	position, err := valueobjects.NewPosition(0, 0)
	require.NoError(t, err)
	size, err := valueobjects.NewSize(10, 10)
	require.NoError(t, err)
	node, err := entities.NewNode("b", position, size, 0, 0)
	require.NoError(t, err)

	assert.Error(t, scene.AddNode(node))
}

func TestScene_AddLink_UnknownEndpoint(t *testing.T) {
	scene := newTestScene(t)
	a := addTestNode(t, scene, "a", 0, 0)

	link, err := entities.NewLink(a.Outputs()[0].ID(), valueobjects.NewPortID())
	require.NoError(t, err)

	assert.Error(t, scene.AddLink(link))
}

func TestScene_SelectionOrderIsStable(t *testing.T) {
	scene := newTestScene(t)
	a := addTestNode(t, scene, "a", 0, 0)
	b := addTestNode(t, scene, "b", 20, 0)
	c := addTestNode(t, scene, "c", 40, 0)

	// Select out of creation order; selection order must be preserved
	scene.SelectItems([]*entities.Node{c, a, b}, nil)

	nodes, links := scene.SelectedItems()
	require.Len(t, nodes, 3)
	assert.Empty(t, links)
	assert.True(t, nodes[0].ID().Equals(c.ID()))
	assert.True(t, nodes[1].ID().Equals(a.ID()))
	assert.True(t, nodes[2].ID().Equals(b.ID()))

	// Re-selecting does not duplicate
	scene.SelectItems([]*entities.Node{a}, nil)
	nodes, _ = scene.SelectedItems()
	assert.Len(t, nodes, 3)
}

func TestScene_ClearSelection(t *testing.T) {
	scene := newTestScene(t)
	a := addTestNode(t, scene, "a", 0, 0)
	scene.SelectItems([]*entities.Node{a}, nil)

	scene.ClearSelection()

	nodes, links := scene.SelectedItems()
	assert.Empty(t, nodes)
	assert.Empty(t, links)
}

func TestScene_DeleteSelectedItems_CascadesToLinks(t *testing.T) {
	scene := newTestScene(t)
	a := addTestNode(t, scene, "a", 0, 0)
	b := addTestNode(t, scene, "b", 20, 0)
	c := addTestNode(t, scene, "c", 40, 0)
	ab := addTestLink(t, scene, a, b)
	bc := addTestLink(t, scene, b, c)

	// Delete b only; both links touch b's ports and must go with it
	scene.SelectItems([]*entities.Node{b}, nil)
	scene.DeleteSelectedItems()

	assert.Equal(t, 2, scene.NodeCount())
	assert.Equal(t, 0, scene.LinkCount())
	_, ok := scene.Link(ab.ID())
	assert.False(t, ok)
	_, ok = scene.Link(bc.ID())
	assert.False(t, ok)
	_, ok = scene.Port(b.Inputs()[0].ID())
	assert.False(t, ok)

	nodes, links := scene.SelectedItems()
	assert.Empty(t, nodes)
	assert.Empty(t, links)
}

func TestScene_RemoveNode_CascadesToLinks(t *testing.T) {
	scene := newTestScene(t)
	a := addTestNode(t, scene, "a", 0, 0)
	b := addTestNode(t, scene, "b", 20, 0)
	ab := addTestLink(t, scene, a, b)
	scene.SelectItems([]*entities.Node{b}, []*entities.Link{ab})

	scene.RemoveNode(b.ID())

	assert.Equal(t, 1, scene.NodeCount())
	assert.Equal(t, 0, scene.LinkCount())
	_, ok := scene.Port(b.Inputs()[0].ID())
	assert.False(t, ok)

	// Removed items drop out of the selection too
	nodes, links := scene.SelectedItems()
	assert.Empty(t, nodes)
	assert.Empty(t, links)

	// Unknown identity is a no-op
	scene.RemoveNode(valueobjects.NewNodeID())
	assert.Equal(t, 1, scene.NodeCount())
}

func TestScene_RemoveLink(t *testing.T) {
	scene := newTestScene(t)
	a := addTestNode(t, scene, "a", 0, 0)
	b := addTestNode(t, scene, "b", 20, 0)
	ab := addTestLink(t, scene, a, b)

	scene.RemoveLink(ab.ID())

	assert.Equal(t, 0, scene.LinkCount())
	assert.Equal(t, 2, scene.NodeCount())
	scene.RemoveLink(ab.ID())
	assert.Equal(t, 0, scene.LinkCount())
}

func TestScene_SetLimits_AppliesToLaterAdditions(t *testing.T) {
	scene := NewScene(Limits{MaxNodes: 1, MaxLinksPerPort: 4}, NewHistoryLog(), zap.NewNop())
	addTestNode(t, scene, "a", 0, 0)

	position, err := valueobjects.NewPosition(20, 0)
	require.NoError(t, err)
	size, err := valueobjects.NewSize(10, 10)
	require.NoError(t, err)
	node, err := entities.NewNode("b", position, size, 1, 1)
	require.NoError(t, err)
	require.Error(t, scene.AddNode(node))

	scene.SetLimits(Limits{MaxNodes: 2, MaxLinksPerPort: 4})

	assert.NoError(t, scene.AddNode(node))
	assert.Equal(t, Limits{MaxNodes: 2, MaxLinksPerPort: 4}, scene.Limits())
}

func TestScene_CreateNode_FreshAndRestoredIdentities(t *testing.T) {
	scene := newTestScene(t)
	source := addTestNode(t, scene, "a", 0, 0)
	rec := source.Serialize()

	// restoreID=false duplicates into the same scene without collision
	ids := entities.NewIdentityMap()
	copy1, err := scene.CreateNode(rec, ids, false)
	require.NoError(t, err)
	assert.False(t, copy1.ID().Equals(source.ID()))
	assert.Equal(t, 2, scene.NodeCount())

	// restoreID=true collides with the original identity
	_, err = scene.CreateNode(rec, entities.NewIdentityMap(), true)
	assert.Error(t, err)
}

func TestScene_CreateLink_ThroughIdentityMap(t *testing.T) {
	scene := newTestScene(t)
	a := addTestNode(t, scene, "a", 0, 0)
	b := addTestNode(t, scene, "b", 20, 0)
	link, err := entities.NewLink(a.Outputs()[0].ID(), b.Inputs()[0].ID())
	require.NoError(t, err)

	ids := entities.NewIdentityMap()
	copyA, err := scene.CreateNode(a.Serialize(), ids, false)
	require.NoError(t, err)
	copyB, err := scene.CreateNode(b.Serialize(), ids, false)
	require.NoError(t, err)

	rebuilt, err := scene.CreateLink(link.Serialize(), ids, false)
	require.NoError(t, err)

	assert.True(t, rebuilt.Source().Equals(copyA.Outputs()[0].ID()))
	assert.True(t, rebuilt.Destination().Equals(copyB.Inputs()[0].ID()))
	assert.Equal(t, 1, scene.LinkCount())
}

func TestScene_HistoryCheckpoint(t *testing.T) {
	history := NewHistoryLog()
	scene := NewScene(DefaultLimits(), history, zap.NewNop())

	scene.HistoryCheckpoint("paste elements into scene", true)

	require.Equal(t, 1, history.Len())
	last, ok := history.Last()
	require.True(t, ok)
	assert.Equal(t, "paste elements into scene", last.Label)
	assert.True(t, last.Modified)
}
