package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/recipebook/internal/client/migrations"
	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/repositories/keyvalue"
	"github.com/dmitrijs2005/recipebook/internal/dbx"
	"github.com/dmitrijs2005/recipebook/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// SQLiteStore keeps the credential record in the kv table of a local
// SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	repo keyvalue.Repository
	log  logging.Logger
}

// Open opens (creating if needed) the database at dsn and migrates it.
func Open(ctx context.Context, dsn string, log logging.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// One writer; avoids SQLITE_BUSY between the pool's connections.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLiteStore(db, log), nil
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, repo: keyvalue.NewSQLiteRepository(db), log: log.With("component", "storage")}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) fail(ctx context.Context, op, key string, err error) {
	serr := &StorageError{Op: op, Key: key, Err: err}
	s.log.Warn(ctx, "credential store failure", "op", op, "key", key, "error", serr)
}

func (s *SQLiteStore) GetToken(ctx context.Context) (string, bool) {
	v, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		s.fail(ctx, "get", TokenKey, err)
		return "", false
	}
	if len(v) == 0 {
		return "", false
	}
	return string(v), true
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) {
	if err := s.repo.Set(ctx, TokenKey, []byte(token)); err != nil {
		s.fail(ctx, "set", TokenKey, err)
	}
}

func (s *SQLiteStore) RemoveToken(ctx context.Context) {
	if err := s.repo.Delete(ctx, TokenKey); err != nil {
		s.fail(ctx, "remove", TokenKey, err)
	}
}

// GetUser decodes the cached profile. A corrupt snapshot reads as absent.
func (s *SQLiteStore) GetUser(ctx context.Context) (*models.UserProfile, bool) {
	v, err := s.repo.Get(ctx, UserKey)
	if err != nil {
		s.fail(ctx, "get", UserKey, err)
		return nil, false
	}
	if len(v) == 0 {
		return nil, false
	}

	var u models.UserProfile
	if err := json.Unmarshal(v, &u); err != nil {
		s.fail(ctx, "decode", UserKey, err)
		return nil, false
	}
	return &u, true
}

func (s *SQLiteStore) SetUser(ctx context.Context, user *models.UserProfile) {
	if user == nil {
		s.RemoveUser(ctx)
		return
	}
	b, err := json.Marshal(user)
	if err != nil {
		s.fail(ctx, "encode", UserKey, err)
		return
	}
	if err := s.repo.Set(ctx, UserKey, b); err != nil {
		s.fail(ctx, "set", UserKey, err)
	}
}

func (s *SQLiteStore) RemoveUser(ctx context.Context) {
	if err := s.repo.Delete(ctx, UserKey); err != nil {
		s.fail(ctx, "remove", UserKey, err)
	}
}

func (s *SQLiteStore) ClearAll(ctx context.Context) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return keyvalue.NewSQLiteRepository(tx).Delete(ctx, TokenKey, UserKey)
	})
	if err != nil {
		s.fail(ctx, "clear", "", err)
	}
}

func (s *SQLiteStore) IsLoggedIn(ctx context.Context) bool {
	_, ok := s.GetToken(ctx)
	return ok
}
