package model

// Theme selects the display theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences holds per-user display settings.
type Preferences struct {
	Currency      string
	Theme         Theme
	Notifications bool
}

// User is the profile the preferences attach to.
type User struct {
	ID          string
	Email       string
	Name        string
	Preferences Preferences
}
