package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowpad/domain/clipboard"
	"flowpad/domain/core/entities"
)

func TestClipboardStore_EmptyPayloadCollapsesToAbsent(t *testing.T) {
	store := NewClipboardStore()

	accepted := store.Store(&clipboard.Payload{})

	assert.False(t, accepted)
	_, ok := store.Retrieve()
	assert.False(t, ok)
}

func TestClipboardStore_NilPayloadCollapsesToAbsent(t *testing.T) {
	store := NewClipboardStore()

	assert.False(t, store.Store(nil))
	_, ok := store.Retrieve()
	assert.False(t, ok)
}

func TestClipboardStore_StoreAndRetrieve(t *testing.T) {
	store := NewClipboardStore()
	scene := newTestScene(t)
	node := addTestNode(t, scene, "a", 0, 0)
	payload := &clipboard.Payload{Blocks: []entities.NodeRecord{node.Serialize()}}

	accepted := store.Store(payload)
	require.True(t, accepted)

	// Retrieve does not consume; repeated reads return the same payload
	first, ok := store.Retrieve()
	require.True(t, ok)
	second, ok := store.Retrieve()
	require.True(t, ok)
	assert.Same(t, payload, first)
	assert.Same(t, payload, second)
}

func TestClipboardStore_LastWriteWins(t *testing.T) {
	store := NewClipboardStore()
	scene := newTestScene(t)
	a := addTestNode(t, scene, "a", 0, 0)
	b := addTestNode(t, scene, "b", 20, 0)

	require.True(t, store.Store(&clipboard.Payload{Blocks: []entities.NodeRecord{a.Serialize()}}))
	require.True(t, store.Store(&clipboard.Payload{Blocks: []entities.NodeRecord{b.Serialize()}}))

	payload, ok := store.Retrieve()
	require.True(t, ok)
	require.Len(t, payload.Blocks, 1)
	assert.Equal(t, b.ID().String(), payload.Blocks[0].ID)
}

func TestClipboardStore_EmptyOverwriteClearsPrevious(t *testing.T) {
	store := NewClipboardStore()
	scene := newTestScene(t)
	a := addTestNode(t, scene, "a", 0, 0)

	require.True(t, store.Store(&clipboard.Payload{Blocks: []entities.NodeRecord{a.Serialize()}}))
	assert.False(t, store.Store(&clipboard.Payload{}))

	_, ok := store.Retrieve()
	assert.False(t, ok)
}
