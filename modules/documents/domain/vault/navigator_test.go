package vault_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camposys/fieldops/modules/documents/domain/vault"
)

func TestSelectOwnerResetsPath(t *testing.T) {
	clientA := uuid.New()
	clientB := uuid.New()
	schema := vault.DocumentSchema()
	docs := records(doc(1, "2024-03-15", "ART", ""))

	state := vault.Root().SelectOwner(clientA)
	view := vault.ResolveView(docs, state.Path(), schema)
	state, ok := state.Descend(view, "2024")
	require.True(t, ok)
	require.Equal(t, []string{"2024"}, state.Path())

	state = state.SelectOwner(clientB)
	assert.Equal(t, clientB, state.ClientID())
	assert.Empty(t, state.Path())
}

func TestDescendRequiresFolderInView(t *testing.T) {
	client := uuid.New()
	schema := vault.DocumentSchema()
	docs := records(doc(1, "2024-03-15", "ART", ""))

	state := vault.Root().SelectOwner(client)
	view := vault.ResolveView(docs, state.Path(), schema)

	next, ok := state.Descend(view, "2019")
	assert.False(t, ok)
	assert.Equal(t, state.Path(), next.Path(), "illegal descend must leave state unchanged")

	// A file-level view has no folders to descend into.
	state, _ = state.Descend(view, "2024")
	view = vault.ResolveView(docs, state.Path(), schema)
	state, _ = state.Descend(view, "ART")
	view = vault.ResolveView(docs, state.Path(), schema)
	state, _ = state.Descend(view, "Março")
	view = vault.ResolveView(docs, state.Path(), schema)
	require.Len(t, view, 1)
	require.Equal(t, vault.NodeFile, view[0].Type)

	_, ok = state.Descend(view, "anything")
	assert.False(t, ok)
}

func TestDescendFromRootIsIgnored(t *testing.T) {
	view := []vault.ViewNode{{Type: vault.NodeFolder, Value: "2024", Count: 1}}
	next, ok := vault.Root().Descend(view, "2024")
	assert.False(t, ok)
	assert.True(t, next.AtRoot())
}

func TestAscendOneRoundTrip(t *testing.T) {
	client := uuid.New()
	schema := vault.DocumentSchema()
	docs := records(doc(1, "2024-03-15", "ART", ""))

	state := vault.Root().SelectOwner(client)
	view := vault.ResolveView(docs, state.Path(), schema)
	descended, ok := state.Descend(view, "2024")
	require.True(t, ok)

	back := descended.AscendOne()
	assert.Equal(t, state.Path(), back.Path())
	assert.Equal(t, state.ClientID(), back.ClientID())
}

func TestAscendOneAtTopLevelClearsOwner(t *testing.T) {
	state := vault.Root().SelectOwner(uuid.New())
	back := state.AscendOne()
	assert.True(t, back.AtRoot())
	assert.Equal(t, uuid.Nil, back.ClientID())
}

func TestAscendToTruncatesAndRedescendReconstructs(t *testing.T) {
	client := uuid.New()
	schema := vault.DocumentSchema()
	docs := records(doc(1, "2024-03-20", "Laudo", "Elétrico"))

	state := vault.Root().SelectOwner(client)
	segments := []string{"2024", "Laudo", "Elétrico", "Março"}
	for _, segment := range segments {
		view := vault.ResolveView(docs, state.Path(), schema)
		var ok bool
		state, ok = state.Descend(view, segment)
		require.True(t, ok, "descend %q", segment)
	}
	original := state.Path()

	jumped, ok := state.AscendTo(1)
	require.True(t, ok)
	assert.Equal(t, []string{"2024"}, jumped.Path())

	for _, segment := range segments[1:] {
		view := vault.ResolveView(docs, jumped.Path(), schema)
		var ok bool
		jumped, ok = jumped.Descend(view, segment)
		require.True(t, ok)
	}
	assert.Equal(t, original, jumped.Path())
}

func TestAscendToOutOfRangeIsIgnored(t *testing.T) {
	client := uuid.New()
	schema := vault.DocumentSchema()
	docs := records(doc(1, "2024-03-15", "ART", ""))

	state := vault.Root().SelectOwner(client)
	view := vault.ResolveView(docs, state.Path(), schema)
	state, _ = state.Descend(view, "2024")

	for _, depth := range []int{-1, 2, 10} {
		next, ok := state.AscendTo(depth)
		assert.False(t, ok, "depth %d", depth)
		assert.Equal(t, state.Path(), next.Path())
	}

	next, ok := state.AscendTo(0)
	require.True(t, ok)
	assert.Empty(t, next.Path())
	assert.Equal(t, client, next.ClientID())
}
