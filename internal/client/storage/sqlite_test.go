package storage

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) (*SQLiteStore, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "rb.db"), logging.New(&buf, "debug"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, &buf
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpen_MigratesSchema(t *testing.T) {
	s, _ := openStore(t)

	assert.True(t, tableExists(t, s.db, "kv"))
	assert.True(t, tableExists(t, s.db, "goose_db_version"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	s, _ := openStore(t)
	require.NoError(t, RunMigrations(context.Background(), s.db))
}

func TestOpen_ReopenKeepsCredentials(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rb.db")

	s, err := Open(ctx, path, logging.Nop())
	require.NoError(t, err)
	s.SetToken(ctx, "tok")
	s.SetUser(ctx, &models.UserProfile{ID: "u1", FavoriteRecipeIDs: []string{"r1"}})
	require.NoError(t, s.Close())

	s2, err := Open(ctx, path, logging.Nop())
	require.NoError(t, err)
	defer s2.Close()

	tok, ok := s2.GetToken(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok", tok)

	u, ok := s2.GetUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, []string{"r1"}, u.FavoriteRecipeIDs)
}

func TestSQLiteStore_TokenLifecycle(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	_, ok := s.GetToken(ctx)
	require.False(t, ok)
	require.False(t, s.IsLoggedIn(ctx))

	s.SetToken(ctx, "abc")
	tok, ok := s.GetToken(ctx)
	require.True(t, ok)
	require.Equal(t, "abc", tok)
	require.True(t, s.IsLoggedIn(ctx))

	s.RemoveToken(ctx)
	_, ok = s.GetToken(ctx)
	require.False(t, ok)
}

func TestSQLiteStore_UserLifecycle(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	_, ok := s.GetUser(ctx)
	require.False(t, ok)

	s.SetUser(ctx, &models.UserProfile{ID: "u1", Email: "e@x"})
	u, ok := s.GetUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "e@x", u.Email)

	s.SetUser(ctx, nil)
	_, ok = s.GetUser(ctx)
	require.False(t, ok)
}

func TestSQLiteStore_ClearAll(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	s.SetToken(ctx, "abc")
	s.SetUser(ctx, &models.UserProfile{ID: "u1"})
	require.NoError(t, s.repo.Set(ctx, "unrelated", []byte("x")))

	s.ClearAll(ctx)

	_, ok := s.GetToken(ctx)
	assert.False(t, ok)
	_, ok = s.GetUser(ctx)
	assert.False(t, ok)

	v, err := s.repo.Get(ctx, "unrelated")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), v)
}

func TestSQLiteStore_CorruptSnapshotReadsAsAbsent(t *testing.T) {
	s, buf := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.repo.Set(ctx, UserKey, []byte("{not json")))

	u, ok := s.GetUser(ctx)
	assert.False(t, ok)
	assert.Nil(t, u)
	assert.Contains(t, buf.String(), "op=decode")
}

func TestSQLiteStore_FailuresAreSwallowed(t *testing.T) {
	s, buf := openStore(t)
	ctx := context.Background()
	require.NoError(t, s.db.Close())

	require.NotPanics(t, func() {
		s.SetToken(ctx, "abc")
		s.SetUser(ctx, &models.UserProfile{ID: "u1"})
		s.RemoveToken(ctx)
		s.RemoveUser(ctx)
		s.ClearAll(ctx)
	})

	_, ok := s.GetToken(ctx)
	assert.False(t, ok)
	_, ok = s.GetUser(ctx)
	assert.False(t, ok)
	assert.False(t, s.IsLoggedIn(ctx))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "credential store failure")
	assert.Contains(t, out, "op=clear")
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := &StorageError{Op: "set", Key: TokenKey, Err: cause}

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage set @recipe_book_token: disk full", err.Error())
	assert.Equal(t, "storage clear: disk full", (&StorageError{Op: "clear", Err: cause}).Error())
}
