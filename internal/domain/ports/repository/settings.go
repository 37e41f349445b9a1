// File: internal/domain/ports/repository/settings.go
package repository

import "context"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings is the opaque per-owner settings blob the widget persists.
// The engine only consumes the username; theme and font size ride along
// for the presentation layer.
type Settings struct {
	Username string `json:"username"`
	Theme    Theme  `json:"theme"`
	FontSize string `json:"fontSize"`
}

// DefaultSettings are the hard-coded fallbacks used whenever the store is
// empty or unavailable. Never surfaced to the user as an error.
func DefaultSettings() Settings {
	return Settings{Username: "Friend", Theme: ThemeLight, FontSize: "16px"}
}

// SettingsRepository stores one Settings blob per owner. Owner is a stable
// opaque key: the widget's client ID or a telegram chat ID.
type SettingsRepository interface {
	Load(ctx context.Context, ownerID string) (*Settings, error)
	Save(ctx context.Context, ownerID string, s *Settings) error
}
