package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test User")
	cfg.Profile.Email = "test@example.com"
	cfg.Preferences.Currency = "INR"
	cfg.Git.AutoCommit = true

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Profile.ID, got.Profile.ID)
	assert.Equal(t, "Test User", got.Profile.Name)
	assert.Equal(t, "test@example.com", got.Profile.Email)
	assert.Equal(t, "INR", got.Preferences.Currency)
	assert.Equal(t, "light", got.Preferences.Theme)
	assert.True(t, got.Preferences.Notifications)
	assert.True(t, got.Git.AutoCommit)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Someone")

	assert.NotEmpty(t, cfg.Profile.ID)
	assert.Equal(t, "Someone", cfg.Profile.Name)
	assert.Equal(t, "USD", cfg.Preferences.Currency)
	assert.Equal(t, string(model.ThemeLight), cfg.Preferences.Theme)
	assert.True(t, cfg.Preferences.Notifications)
	assert.False(t, cfg.Git.AutoCommit)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUserMapping(t *testing.T) {
	cfg := Default("Someone")
	cfg.Preferences.Theme = string(model.ThemeDark)

	u := cfg.User()
	assert.Equal(t, cfg.Profile.ID, u.ID)
	assert.Equal(t, model.ThemeDark, u.Preferences.Theme)

	u.Preferences.Currency = "EUR"
	cfg.SetPreferences(u.Preferences)
	assert.Equal(t, "EUR", cfg.Preferences.Currency)
	assert.Equal(t, string(model.ThemeDark), cfg.Preferences.Theme)
}
