package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pocketbook-dev/pocketbook/internal/id"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// FileName is the config file written at the root of a data directory.
const FileName = "pocketbook.yaml"

// Config represents the top-level pocketbook.yaml configuration.
type Config struct {
	Profile     ProfileConfig     `yaml:"profile"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Git         GitConfig         `yaml:"git"`
}

// ProfileConfig identifies the owner of the data directory.
type ProfileConfig struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email,omitempty"`
}

// PreferencesConfig holds display settings. Updates merge field by field.
type PreferencesConfig struct {
	Currency      string `yaml:"currency"`
	Theme         string `yaml:"theme"`
	Notifications bool   `yaml:"notifications"`
}

// GitConfig controls optional auto-commit of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a pocketbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default(name string) *Config {
	return &Config{
		Profile: ProfileConfig{
			ID:   id.NewUserID(),
			Name: name,
		},
		Preferences: PreferencesConfig{
			Currency:      "USD",
			Theme:         string(model.ThemeLight),
			Notifications: true,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Pocketbook",
			AuthorEmail: "pocketbook@localhost",
		},
	}
}

// User builds the domain user carried by every snapshot.
func (c *Config) User() model.User {
	return model.User{
		ID:    c.Profile.ID,
		Email: c.Profile.Email,
		Name:  c.Profile.Name,
		Preferences: model.Preferences{
			Currency:      c.Preferences.Currency,
			Theme:         model.Theme(c.Preferences.Theme),
			Notifications: c.Preferences.Notifications,
		},
	}
}

// SetPreferences copies preferences back from the domain user.
func (c *Config) SetPreferences(p model.Preferences) {
	c.Preferences = PreferencesConfig{
		Currency:      p.Currency,
		Theme:         string(p.Theme),
		Notifications: p.Notifications,
	}
}
