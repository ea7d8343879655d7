//go:build unit
// +build unit

package kvstore

import (
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v3"
	"github.com/pandamaske/biibii-sub002/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewState struct {
	BabyID string `json:"babyId"`
	Zoom   int    `json:"zoom"`
}

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(dir, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return s
}

func TestStore_SetGetDelete(t *testing.T) {
	s := openTestStore(t, "")
	defer s.Close()

	require.NoError(t, s.Set("view", viewState{BabyID: "b1", Zoom: 2}))

	var got viewState
	require.NoError(t, s.Get("view", &got))
	assert.Equal(t, viewState{BabyID: "b1", Zoom: 2}, got)

	require.NoError(t, s.Delete("view"))
	assert.True(t, errors.Is(s.Get("view", &got), ErrNotFound))

	require.NoError(t, s.Delete("never-set"))
}

func TestStore_LastWriteWins(t *testing.T) {
	s := openTestStore(t, "")
	defer s.Close()

	require.NoError(t, s.Set("active", "b1"))
	require.NoError(t, s.Set("active", "b2"))
	assert.Equal(t, "b2", GetOr(s, "active", ""))
}

func TestGetOr_Fallbacks(t *testing.T) {
	s := openTestStore(t, "")
	defer s.Close()

	assert.Equal(t, 7, GetOr(s, "missing", 7))

	// not JSON: logged and replaced by the fallback
	require.NoError(t, s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("broken"), []byte("{"))
	}))
	assert.Equal(t, "fallback", GetOr(s, "broken", "fallback"))
}

func TestStore_PersistsOnDisk(t *testing.T) {
	dir := t.TempDir()

	s := openTestStore(t, dir)
	require.NoError(t, s.Set("active", "b9"))
	require.NoError(t, s.Close())

	reopened := openTestStore(t, dir)
	defer reopened.Close()
	assert.Equal(t, "b9", GetOr(reopened, "active", ""))
}
