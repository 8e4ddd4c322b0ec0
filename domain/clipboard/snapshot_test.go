package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowpad/domain/core/entities"
	"flowpad/domain/core/valueobjects"
	pkgerrors "flowpad/pkg/errors"
)

func newTestNode(t *testing.T, title string, x, y float64, inputs, outputs int) *entities.Node {
	t.Helper()
	position, err := valueobjects.NewPosition(x, y)
	require.NoError(t, err)
	size, err := valueobjects.NewSize(10, 10)
	require.NoError(t, err)
	node, err := entities.NewNode(title, position, size, inputs, outputs)
	require.NoError(t, err)
	return node
}

func newTestLink(t *testing.T, source, destination *entities.Node) *entities.Link {
	t.Helper()
	link, err := entities.NewLink(source.Outputs()[0].ID(), destination.Inputs()[0].ID())
	require.NoError(t, err)
	return link
}

func TestSnapshot_FilterSoundness(t *testing.T) {
	// Arrange: a -> b -> c, with c left out of the selection
	a := newTestNode(t, "a", 0, 0, 1, 1)
	b := newTestNode(t, "b", 20, 20, 1, 1)
	c := newTestNode(t, "c", 40, 40, 1, 1)
	inside := newTestLink(t, a, b)
	outgoing := newTestLink(t, b, c)

	// Act
	payload := NewSnapshotBuilder().Snapshot(
		[]*entities.Node{a, b},
		[]*entities.Link{inside, outgoing},
	)

	// Assert: only the fully-contained link survives
	require.Len(t, payload.Blocks, 2)
	require.Len(t, payload.Edges, 1)
	assert.Equal(t, inside.ID().String(), payload.Edges[0].ID)
	assert.NoError(t, payload.Validate())
}

func TestSnapshot_DropsEveryPartialLink(t *testing.T) {
	// Several selected links in a row with endpoints outside the selection;
	// all must be dropped, none skipped by the traversal.
	a := newTestNode(t, "a", 0, 0, 1, 1)
	outsiders := []*entities.Node{
		newTestNode(t, "o1", 10, 0, 1, 1),
		newTestNode(t, "o2", 20, 0, 1, 1),
		newTestNode(t, "o3", 30, 0, 1, 1),
	}
	links := make([]*entities.Link, 0, len(outsiders))
	for _, out := range outsiders {
		links = append(links, newTestLink(t, a, out))
	}

	payload := NewSnapshotBuilder().Snapshot([]*entities.Node{a}, links)

	assert.Len(t, payload.Blocks, 1)
	assert.Empty(t, payload.Edges)
}

func TestSnapshot_KeepsSelectionOrder(t *testing.T) {
	nodes := []*entities.Node{
		newTestNode(t, "third", 40, 0, 1, 1),
		newTestNode(t, "first", 0, 0, 1, 1),
		newTestNode(t, "second", 20, 0, 1, 1),
	}

	payload := NewSnapshotBuilder().Snapshot(nodes, nil)

	require.Len(t, payload.Blocks, 3)
	for i, node := range nodes {
		assert.Equal(t, node.ID().String(), payload.Blocks[i].ID)
	}
}

func TestSnapshot_EmptySelection(t *testing.T) {
	payload := NewSnapshotBuilder().Snapshot(nil, nil)

	assert.True(t, payload.IsEmpty())
	assert.Empty(t, payload.Edges)
}

func TestPayload_Validate_DanglingEdge(t *testing.T) {
	a := newTestNode(t, "a", 0, 0, 1, 1)
	b := newTestNode(t, "b", 20, 20, 1, 1)
	link := newTestLink(t, a, b)

	// Handcraft a payload that violates the snapshot invariant
	payload := &Payload{
		Blocks: []entities.NodeRecord{a.Serialize()},
		Edges:  []entities.LinkRecord{link.Serialize()},
	}

	err := payload.Validate()
	require.Error(t, err)
	assert.True(t, pkgerrors.IsInvariant(err))
}
