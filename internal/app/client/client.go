package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"worldexplorer/internal/app/client/config"
	"worldexplorer/internal/domain/country"
	"worldexplorer/internal/domain/favorites"
)

type App struct {
	config      *config.Config
	log         *slog.Logger
	httpClient  *httpClient
	storage     FavoritesStore
	session     *sessionStore
	syncService *SyncService

	mu   gosync.RWMutex
	user *User
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl := newHTTPClient(cfg, log)

	var storage FavoritesStore
	sqlite, err := NewSQLiteStorage(cfg.FavoritesPath)
	if err != nil {
		log.Warn("sqlite unavailable, falling back to in-memory favorites", "error", err)
		storage = NewMemoryStorage()
	} else {
		storage = sqlite
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		storage:    storage,
		session:    newSessionStore(cfg.SessionPath),
	}

	app.syncService = NewSyncService(httpCl, log,
		time.Duration(cfg.SyncQuietMs)*time.Millisecond,
		time.Duration(cfg.SyncTimeoutSec)*time.Second)
	app.syncService.OnSynced(app.rememberServerFavorites)

	return app, nil
}

// Register creates an account and starts a session for it.
func (a *App) Register(ctx context.Context, name, email, password string) (*User, error) {
	u, err := a.httpClient.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}

	if err := a.installSession(u); err != nil {
		return nil, err
	}

	a.log.Info("registered", "email", u.Email)
	return u, nil
}

func (a *App) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := a.httpClient.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := a.installSession(u); err != nil {
		return nil, err
	}

	a.log.Info("logged in", "email", u.Email)
	return u, nil
}

// SetUser installs an externally issued session without talking to the
// backend.
func (a *App) SetUser(u *User) error {
	if !u.Valid() {
		return fmt.Errorf("%w: session needs an id and a token", ErrValidation)
	}
	return a.installSession(u)
}

// installSession persists the session and adopts the account's favorite
// set as the device set. The server is authoritative at session start;
// an empty account set leaves whatever the device already has.
func (a *App) installSession(u *User) error {
	a.httpClient.SetToken(u.Token)

	if err := a.session.Save(u); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if len(u.Favorites) > 0 {
		if err := a.storage.Replace(u.Favorites); err != nil {
			a.log.Warn("favorites store update failed", "error", err)
		}
	}

	a.mu.Lock()
	a.user = u
	a.mu.Unlock()

	return nil
}

// RestoreSession loads the persisted session, if any, and refreshes the
// favorites from the server when it is reachable. An unreachable server
// leaves the local set untouched; a rejected token ends the session.
func (a *App) RestoreSession(ctx context.Context) bool {
	u := a.session.Load()
	if u == nil {
		return false
	}

	// The stored record's favorites take precedence over the device set
	// as soon as the session comes back, reachable server or not.
	if err := a.installSession(u); err != nil {
		a.log.Warn("session restore failed", "error", err)
		return false
	}

	fresh, err := a.httpClient.Profile(ctx)
	switch {
	case err == nil:
		fresh.Token = u.Token
		if err := a.installSession(fresh); err != nil {
			a.log.Warn("session refresh failed", "error", err)
		}
	case errors.Is(err, ErrUnauthorized):
		a.log.Debug("stored session rejected by server")
		if err := a.session.Clear(); err != nil {
			a.log.Warn("session clear failed", "error", err)
		}
		a.clearSession()
		return false
	default:
		a.log.Debug("profile refresh skipped", "error", err)
	}

	return true
}

// Logout ends the session and forgets the device's favorites. Logging
// out without a session is a no-op; it never fails.
func (a *App) Logout() {
	if err := a.session.Clear(); err != nil {
		a.log.Warn("session clear failed", "error", err)
	}
	a.clearSession()

	if err := a.storage.Clear(); err != nil {
		a.log.Warn("favorites store clear failed", "error", err)
	}

	a.log.Info("logged out")
}

func (a *App) clearSession() {
	a.httpClient.SetToken("")
	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()
}

func (a *App) CurrentUser() *User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *App) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user != nil
}

// ToggleFavorite flips a country in the local set and reports whether
// it ended up added. The change commits locally regardless of server
// availability; for an authenticated user a background push is
// scheduled afterwards.
func (a *App) ToggleFavorite(code string) (bool, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !favorites.IsValidCode(code) {
		return false, fmt.Errorf("%w: %q is not a cca3 country code", ErrValidation, code)
	}

	has, err := a.storage.Has(code)
	if err != nil {
		return false, err
	}

	if has {
		err = a.storage.Remove(code)
	} else {
		err = a.storage.Add(code)
	}
	if err != nil {
		return false, err
	}

	if a.IsAuthenticated() {
		if codes, err := a.storage.List(); err == nil {
			a.syncService.Schedule(codes)
		}
	}

	return !has, nil
}

func (a *App) Favorites() ([]string, error) {
	return a.storage.List()
}

func (a *App) IsFavorite(code string) (bool, error) {
	return a.storage.Has(code)
}

// Flush forces any pending favorites push before the process exits.
func (a *App) Flush(ctx context.Context) {
	if a.IsAuthenticated() {
		a.syncService.Flush(ctx)
	}
}

// rememberServerFavorites updates the cached session after a successful
// push so a later restore does not resurrect stale favorites.
func (a *App) rememberServerFavorites(codes []string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.user == nil {
		return
	}
	a.user.Favorites = append([]string(nil), codes...)
	if err := a.session.Save(a.user); err != nil {
		a.log.Debug("session update after push failed", "error", err)
	}
}

// Countries proxies the country catalog through the server.
func (a *App) Countries(ctx context.Context) ([]country.Country, error) {
	return a.httpClient.Countries(ctx)
}

func (a *App) CountriesByName(ctx context.Context, name string) ([]country.Country, error) {
	return a.httpClient.CountriesByName(ctx, name)
}

func (a *App) CountriesByRegion(ctx context.Context, region string) ([]country.Country, error) {
	return a.httpClient.CountriesByRegion(ctx, region)
}

func (a *App) CountryByCode(ctx context.Context, code string) (country.Country, error) {
	return a.httpClient.CountryByCode(ctx, code)
}

func (a *App) Close() error {
	return a.storage.Close()
}
