// Package session owns the signed-in user. The Manager is the only writer of
// the in-memory profile and of the credential store, so the two never
// diverge.
//
// Flows that talk to the server (Start, Login, ToggleFavorite) read the session epoch when
// they begin and commit only if it is unchanged; every login or logout
// advances it. A slow response therefore
// never overwrites a newer session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/storage"
	"github.com/dmitrijs2005/recipebook/internal/logging"
)

var (
	ErrNotAuthenticated = errors.New("not signed in")
	// ErrSuperseded is returned by a login or favorite toggle whose result
	// was discarded because another login or logout committed first.
	ErrSuperseded = errors.New("session changed while request was in flight")
	ErrNoToken    = errors.New("login failed: server returned no token")
)

// API is the part of the backend the session needs.
type API interface {
	Login(ctx context.Context, email, password string) (*models.LoginData, error)
	Me(ctx context.Context) (*models.UserProfile, error)
	AddFavorite(ctx context.Context, recipeID string) (json.RawMessage, error)
	RemoveFavorite(ctx context.Context, recipeID string) (json.RawMessage, error)
}

// Observer is called after every state or profile change with a copy of the
// current user (nil unless Authenticated).
type Observer func(State, *models.UserProfile)

type Manager struct {
	api   API
	store storage.Store
	log   logging.Logger

	mu        sync.Mutex
	state     State
	user      *models.UserProfile
	epoch     uint64
	observers []Observer
}

func NewManager(api API, store storage.Store, log logging.Logger) *Manager {
	return &Manager{
		api:   api,
		store: store,
		log:   log.With("component", "session"),
		state: Initializing,
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns a copy of the current profile.
func (m *Manager) User() (*models.UserProfile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Authenticated || m.user == nil {
		return nil, false
	}
	return m.user.Clone(), true
}

func (m *Manager) IsFavorite(recipeID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user.IsFavorite(recipeID)
}

func (m *Manager) Subscribe(fn Observer) {
	m.mu.Lock()
	m.observers = append(m.observers, fn)
	m.mu.Unlock()
}

// commit installs a new session under m.mu and returns the notification to
// run once the lock is released.
func (m *Manager) commit(state State, user *models.UserProfile) func() {
	m.state = state
	m.user = user
	return m.snapshot()
}

func (m *Manager) snapshot() func() {
	state, user := m.state, m.user.Clone()
	observers := append([]Observer(nil), m.observers...)
	return func() {
		for _, fn := range observers {
			fn(state, user.Clone())
		}
	}
}

func (m *Manager) currentEpoch() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch
}

// Start resolves the stored credentials into Anonymous or Authenticated.
// It never fails: an unreachable server or a broken store only degrades to
// the cached snapshot or to Anonymous.
func (m *Manager) Start(ctx context.Context) {
	epoch := m.currentEpoch()

	state, user, refreshed := m.resolveStartup(ctx)

	m.mu.Lock()
	if m.epoch != epoch {
		m.mu.Unlock()
		m.log.Debug(ctx, "discarding stale startup result")
		return
	}
	if refreshed {
		m.store.SetUser(ctx, user)
	}
	notify := m.commit(state, user)
	m.mu.Unlock()

	m.log.Info(ctx, "session started", "state", state, "refreshed", refreshed)
	notify()
}

func (m *Manager) resolveStartup(ctx context.Context) (State, *models.UserProfile, bool) {
	if _, ok := m.store.GetToken(ctx); ok {
		u, err := m.api.Me(ctx)
		if err == nil {
			return Authenticated, u, true
		}
		m.log.Warn(ctx, "profile refresh failed, using cached profile", "error", err)
	}

	if u, ok := m.store.GetUser(ctx); ok {
		return Authenticated, u, false
	}
	return Anonymous, nil, false
}

// Login signs in and adopts the full profile from /auth/me, falling back to
// the fields returned by the login call. On failure the session is left
// unchanged and the server's message is returned.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	epoch := m.currentEpoch()

	data, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.log.Info(ctx, "login rejected", "error", err)
		return err
	}
	if data.Token == "" {
		return ErrNoToken
	}

	// The token must be stored before /auth/me: the gateway reads it from
	// the store.
	m.mu.Lock()
	if m.epoch != epoch {
		m.mu.Unlock()
		return ErrSuperseded
	}
	m.epoch++
	epoch = m.epoch
	m.store.SetToken(ctx, data.Token)
	m.mu.Unlock()

	user := data.User.Clone()
	if me, err := m.api.Me(ctx); err == nil {
		user = me
	} else {
		m.log.Warn(ctx, "profile fetch after login failed, using login response", "error", err)
	}

	m.mu.Lock()
	if m.epoch != epoch {
		m.mu.Unlock()
		return ErrSuperseded
	}
	m.store.SetUser(ctx, user)
	notify := m.commit(Authenticated, user)
	m.mu.Unlock()

	m.log.Info(ctx, "signed in", "user", user.ID)
	notify()
	return nil
}

// Logout clears the store and the in-memory profile. Store failures are
// logged by the store and never block the transition.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.epoch++
	m.store.ClearAll(ctx)
	notify := m.commit(Anonymous, nil)
	m.mu.Unlock()

	m.log.Info(ctx, "signed out")
	notify()
}

// UpdateFavorites replaces the favorite set with favorites, which may be any
// array of ids and/or recipe documents (see models.NormalizeFavorites). It
// is a no-op unless a user is signed in.
func (m *Manager) UpdateFavorites(ctx context.Context, favorites any) error {
	ids, err := models.NormalizeFavorites(favorites)
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}

	m.mu.Lock()
	if m.state != Authenticated || m.user == nil {
		m.mu.Unlock()
		return nil
	}
	notify := m.setFavorites(ctx, ids)
	m.mu.Unlock()

	notify()
	return nil
}

// setFavorites must be called with m.mu held and a signed-in user.
func (m *Manager) setFavorites(ctx context.Context, ids []string) func() {
	user := m.user.Clone()
	user.FavoriteRecipeIDs = ids
	m.store.SetUser(ctx, user)
	return m.commit(Authenticated, user)
}

// UpdateProfile adopts the server-confirmed profile wholesale.
func (m *Manager) UpdateProfile(ctx context.Context, user *models.UserProfile) error {
	if user == nil {
		return errors.New("update profile: nil user")
	}

	m.mu.Lock()
	if m.state != Authenticated {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	u := user.Clone()
	m.store.SetUser(ctx, u)
	notify := m.commit(Authenticated, u)
	m.mu.Unlock()

	notify()
	return nil
}

// ToggleFavorite adds or removes recipeID on the server and adopts the list
// the server answers with. It reports whether the recipe is now a favorite.
// If the session changed while the call was in flight the answer is dropped
// and ErrSuperseded returned.
func (m *Manager) ToggleFavorite(ctx context.Context, recipeID string) (bool, error) {
	m.mu.Lock()
	if m.state != Authenticated || m.user == nil {
		m.mu.Unlock()
		return false, ErrNotAuthenticated
	}
	u, epoch := m.user.Clone(), m.epoch
	m.mu.Unlock()

	var (
		raw json.RawMessage
		err error
	)
	wasFavorite := u.IsFavorite(recipeID)
	if wasFavorite {
		raw, err = m.api.RemoveFavorite(ctx, recipeID)
	} else {
		raw, err = m.api.AddFavorite(ctx, recipeID)
	}
	if err != nil {
		return wasFavorite, err
	}

	ids := models.NormalizeFavoriteIDs(raw)
	if ids == nil {
		// No list in the response; apply the toggle locally.
		ids = toggled(u.FavoriteRecipeIDs, recipeID, !wasFavorite)
	}

	m.mu.Lock()
	if m.epoch != epoch || m.state != Authenticated || m.user == nil {
		m.mu.Unlock()
		m.log.Debug(ctx, "discarding stale favorites", "recipe", recipeID)
		return wasFavorite, ErrSuperseded
	}
	notify := m.setFavorites(ctx, ids)
	fav := m.user.IsFavorite(recipeID)
	m.mu.Unlock()

	notify()
	return fav, nil
}

func toggled(ids []string, id string, add bool) []string {
	out := make([]string, 0, len(ids)+1)
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	if add {
		out = append(out, id)
	}
	return out
}
