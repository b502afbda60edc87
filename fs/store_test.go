package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/diffshot"
	"github.com/fwojciec/diffshot/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "history.json")
	store := fs.NewStore(path)

	list := []diffshot.SavedDiff{
		{ID: "a", Name: "first", SavedAt: 1700000000000, RawText: "diff --git a/x b/x"},
		{ID: "b", Name: "second", SavedAt: 1700000001000, RawText: ""},
	}
	require.NoError(t, store.Save(list))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("missing file is an empty history", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(filepath.Join(t.TempDir(), "history.json"))
		got, err := store.Load()

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "history.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := fs.NewStore(path).Load()
		assert.Error(t, err)
	})
}

func TestStore_Save_ReplacesWholeList(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	store := fs.NewStore(path)

	require.NoError(t, store.Save([]diffshot.SavedDiff{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, store.Save([]diffshot.SavedDiff{{ID: "c"}}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestDefaultDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "diffshot"), fs.DefaultDataDir())
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	assert.Equal(t, filepath.Join("/tmp/xdg-config", "diffshot", "config.toml"), fs.DefaultConfigPath())
}
