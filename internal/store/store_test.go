package store_test

import (
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/harshthakur02/freelancehub/internal/store"
)

// runContract exercises the Store behavior every implementation must share.
func runContract(t *testing.T, s store.Store) {
	t.Helper()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set("k", `{"a":1}`))
	val, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"a":1}`, val)

	// overwrite
	require.NoError(t, s.Set("k", `[]`))
	val, ok, err = s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[]`, val)

	require.NoError(t, s.Remove("k"))
	_, ok, err = s.Get("k")
	require.NoError(t, err)
	require.False(t, ok)

	// removing an absent key is not an error
	require.NoError(t, s.Remove("k"))
}

func TestMemoryStore(t *testing.T) {
	runContract(t, store.NewMemory())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	s := store.NewRedis(mr.Addr(), "", 0)
	require.NoError(t, s.Ping())
	runContract(t, s)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "freelancehub.db")

	s, err := store.OpenSQLite(path)
	require.NoError(t, err)
	runContract(t, s)

	// values survive reopening the same file
	require.NoError(t, s.Set("persist", `{"x":true}`))

	reopened, err := store.OpenSQLite(path)
	require.NoError(t, err)
	val, ok, err := reopened.Get("persist")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"x":true}`, val)
}
