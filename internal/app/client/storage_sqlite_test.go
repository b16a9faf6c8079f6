package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_AddListRemove(t *testing.T) {
	storage, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "favorites.db"))
	require.NoError(t, err)
	defer storage.Close()

	require.NoError(t, storage.Add("fra"))
	require.NoError(t, storage.Add("JPN"))
	require.NoError(t, storage.Add("FRA")) // duplicate, keeps original position

	codes, err := storage.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"FRA", "JPN"}, codes)

	has, err := storage.Has("jpn")
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, storage.Remove("FRA"))

	codes, err = storage.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"JPN"}, codes)

	has, err = storage.Has("FRA")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestSQLiteStorage_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.db")

	storage, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, storage.Add("BRA"))
	require.NoError(t, storage.Add("KEN"))
	require.NoError(t, storage.Close())

	// Favorites picked before any session must be there after a restart.
	reopened, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer reopened.Close()

	codes, err := reopened.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"BRA", "KEN"}, codes)
}

func TestSQLiteStorage_Replace(t *testing.T) {
	storage, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "favorites.db"))
	require.NoError(t, err)
	defer storage.Close()

	require.NoError(t, storage.Add("FRA"))
	require.NoError(t, storage.Replace([]string{"ita", "DEU", "ESP"}))

	codes, err := storage.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"ITA", "DEU", "ESP"}, codes)

	require.NoError(t, storage.Replace(nil))

	codes, err = storage.List()
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestMemoryStorage_MatchesContract(t *testing.T) {
	storage := NewMemoryStorage()

	require.NoError(t, storage.Add("fra"))
	require.NoError(t, storage.Add("JPN"))
	require.NoError(t, storage.Add("FRA"))

	codes, err := storage.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"FRA", "JPN"}, codes)

	require.NoError(t, storage.Remove("jpn"))
	has, err := storage.Has("JPN")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, storage.Replace([]string{"bra"}))
	codes, err = storage.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"BRA"}, codes)

	require.NoError(t, storage.Clear())
	codes, err = storage.List()
	require.NoError(t, err)
	assert.Empty(t, codes)
}
