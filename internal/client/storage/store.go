// Package storage is the durable home of the auth token and the cached user
// profile. Every failure is logged and degraded to "absent": a broken local
// store forces a new login, it never crashes the client.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

// Fixed, namespaced keys of the two credential entries.
const (
	TokenKey = "@recipe_book_token"
	UserKey  = "@recipe_book_user"
)

var ErrStorage = errors.New("storage error")

// StorageError describes a failed local read or write. It is only ever
// logged; callers see the degraded result instead.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }

// Store holds the credential record. A token is an authorization proof; a
// user snapshot on its own is only a display fallback.
type Store interface {
	GetToken(ctx context.Context) (string, bool)
	SetToken(ctx context.Context, token string)
	RemoveToken(ctx context.Context)
	GetUser(ctx context.Context) (*models.UserProfile, bool)
	SetUser(ctx context.Context, user *models.UserProfile)
	RemoveUser(ctx context.Context)
	// ClearAll removes both entries; readers never observe only one gone.
	ClearAll(ctx context.Context)
	IsLoggedIn(ctx context.Context) bool
}
