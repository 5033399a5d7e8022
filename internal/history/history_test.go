package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)

	require.NoError(t, store.Record("/merchant/orders", "deny", "/user/products"))
	require.NoError(t, store.Record("/user/orders", "allow", "/user/orders"))
	require.NoError(t, store.Record("/login", "redirect", "/user/products"))

	entries, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first
	assert.Equal(t, "/login", entries[0].Path)
	assert.Equal(t, "redirect", entries[0].Outcome)
	assert.Equal(t, "/user/orders", entries[1].Path)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestRecentOnEmptyStore(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)

	entries, err := store.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
