package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldexplorer/internal/app/client/config"
	"worldexplorer/internal/utils/logger"
)

func newTestApp(t *testing.T, serverURL string) *App {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Env:            "local",
		ServerAddress:  strings.TrimPrefix(serverURL, "http://"),
		ConfigDir:      dir,
		SessionPath:    filepath.Join(dir, "session.json"),
		FavoritesPath:  filepath.Join(dir, "favorites.db"),
		SyncQuietMs:    10,
		SyncTimeoutSec: 1,
	}

	app, err := New(cfg, logger.NewDiscard())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	return app
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestApp_LoginFailureMutatesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid email or password"})
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	require.NoError(t, app.storage.Add("FRA"))

	_, err := app.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.False(t, app.IsAuthenticated())
	assert.Nil(t, app.session.Load())

	codes, err := app.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"FRA"}, codes)
}

func TestApp_RegisterConflictLeavesNoSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"detail": "Email already in use"})
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	_, err := app.Register(context.Background(), "Ada", "ada@example.com", "password123")
	assert.ErrorIs(t, err, ErrEmailTaken)

	assert.False(t, app.IsAuthenticated())
	assert.Nil(t, app.session.Load())
}

func TestApp_LoginAdoptsServerFavorites(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":        "2b8e9f1c-52c4-4c2a-9d3e-0a1b2c3d4e5f",
			"name":      "Ada",
			"email":     "ada@example.com",
			"favorites": []string{"JPN", "BRA"},
			"token":     "tok-123",
		})
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	// Guest favorites on the device give way to the account's set when
	// a session starts.
	require.NoError(t, app.storage.Add("FRA"))

	u, err := app.Login(context.Background(), "ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", u.Token)
	assert.True(t, app.IsAuthenticated())

	codes, err := app.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"JPN", "BRA"}, codes)

	persisted := app.session.Load()
	require.NotNil(t, persisted)
	assert.Equal(t, "tok-123", persisted.Token)
}

func TestApp_RestoreSessionServerWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":        "2b8e9f1c-52c4-4c2a-9d3e-0a1b2c3d4e5f",
			"name":      "Ada",
			"email":     "ada@example.com",
			"favorites": []string{"KEN"},
		})
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	require.NoError(t, app.session.Save(&User{
		ID:        "2b8e9f1c-52c4-4c2a-9d3e-0a1b2c3d4e5f",
		Name:      "Ada",
		Email:     "ada@example.com",
		Favorites: []string{"FRA"},
		Token:     "tok-123",
	}))
	require.NoError(t, app.storage.Replace([]string{"FRA"}))

	require.True(t, app.RestoreSession(context.Background()))

	codes, err := app.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"KEN"}, codes)

	u := app.CurrentUser()
	require.NotNil(t, u)
	assert.Equal(t, "tok-123", u.Token)
}

func TestApp_RestoreSessionOfflineKeepsLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable backend

	app := newTestApp(t, srv.URL)
	require.NoError(t, app.session.Save(&User{ID: "abc", Name: "Ada", Token: "tok-123"}))
	require.NoError(t, app.storage.Replace([]string{"FRA", "JPN"}))

	require.True(t, app.RestoreSession(context.Background()))
	assert.True(t, app.IsAuthenticated())

	codes, err := app.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"FRA", "JPN"}, codes)
}

func TestApp_RestoreSessionStoredFavoritesSupersedeLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable backend

	app := newTestApp(t, srv.URL)
	require.NoError(t, app.session.Save(&User{
		ID:        "abc",
		Token:     "tok-123",
		Favorites: []string{"FRA", "DEU"},
	}))
	require.NoError(t, app.storage.Replace([]string{"ITA"}))

	require.True(t, app.RestoreSession(context.Background()))

	codes, err := app.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"FRA", "DEU"}, codes)
}

func TestApp_RestoreSessionRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not authorized"})
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	require.NoError(t, app.session.Save(&User{ID: "abc", Token: "expired"}))

	assert.False(t, app.RestoreSession(context.Background()))
	assert.False(t, app.IsAuthenticated())
	assert.Nil(t, app.session.Load())
}

func TestApp_ToggleFavoriteOfflineCommitsLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable backend

	app := newTestApp(t, srv.URL)
	require.NoError(t, app.session.Save(&User{ID: "abc", Token: "tok-123"}))
	require.True(t, app.RestoreSession(context.Background()))

	added, err := app.ToggleFavorite("fra")
	require.NoError(t, err)
	assert.True(t, added)

	// The push to the dead server fails silently; the local set holds.
	app.Flush(context.Background())

	codes, err := app.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"FRA"}, codes)

	removed, err := app.ToggleFavorite("FRA")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestApp_ToggleFavoriteRejectsBadCode(t *testing.T) {
	app := newTestApp(t, "http://localhost:1")

	_, err := app.ToggleFavorite("france")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = app.ToggleFavorite("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApp_LogoutIdempotent(t *testing.T) {
	app := newTestApp(t, "http://localhost:1")
	require.NoError(t, app.session.Save(&User{ID: "abc", Token: "tok-123"}))
	require.NoError(t, app.storage.Add("FRA"))

	app.Logout()
	assert.False(t, app.IsAuthenticated())
	assert.Nil(t, app.session.Load())

	codes, err := app.Favorites()
	require.NoError(t, err)
	assert.Empty(t, codes)

	// A second and third logout with no session behave the same.
	app.Logout()
	app.Logout()
	assert.False(t, app.IsAuthenticated())
	assert.Nil(t, app.session.Load())
}

func TestApp_RegisterKeepsGuestFavorites(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"id":        "2b8e9f1c-52c4-4c2a-9d3e-0a1b2c3d4e5f",
			"name":      "Ada",
			"email":     "ada@example.com",
			"favorites": []string{},
			"token":     "tok-123",
		})
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	require.NoError(t, app.storage.Add("FRA"))

	_, err := app.Register(context.Background(), "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	// A fresh account has nothing to impose on the device.
	codes, err := app.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"FRA"}, codes)
}

func TestApp_SetUser(t *testing.T) {
	app := newTestApp(t, "http://localhost:1")

	err := app.SetUser(&User{Name: "Ada"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, app.IsAuthenticated())

	require.NoError(t, app.SetUser(&User{ID: "abc", Name: "Ada", Token: "tok-123"}))
	assert.True(t, app.IsAuthenticated())
	require.NotNil(t, app.session.Load())
}

func TestApp_CountriesProxy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/countries/code/FRA":
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"cca3":   "FRA",
				"name":   map[string]string{"common": "France"},
				"region": "Europe",
			})
		case "/api/v1/countries/name/atlantis":
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "No countries found with that name"})
		default:
			writeJSON(w, http.StatusOK, []map[string]interface{}{
				{"cca3": "FRA", "name": map[string]string{"common": "France"}},
				{"cca3": "JPN", "name": map[string]string{"common": "Japan"}},
			})
		}
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	countries, err := app.Countries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "France", countries[0].Name.Common)

	c, err := app.CountryByCode(context.Background(), "FRA")
	require.NoError(t, err)
	assert.Equal(t, "FRA", c.Code)

	_, err = app.CountriesByName(context.Background(), "atlantis")
	assert.ErrorIs(t, err, ErrNotFound)
}
