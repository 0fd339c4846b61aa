package config

import (
	"fyne.io/fyne/v2"
)

// ThemeMode selects the forced color variant for the app
type ThemeMode string

const (
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// Settings keys for Fyne preferences
const (
	KeyTheme          = "theme_preference"
	KeyScriptAPIBase  = "script_api_base_url"
	KeyEmotionAPIBase = "emotion_api_base_url"
	KeyLastGenre      = "last_genre"
)

// Default values
const (
	DefaultScriptAPIBase  = "http://localhost:8000"
	DefaultEmotionAPIBase = "http://localhost:8001"
	DefaultGenre          = "Screenplay"
)

// Upload constraints enforced client-side before any network call
const (
	MaxVideoUploadBytes    = 50 * 1024 * 1024
	MaxDocumentUploadBytes = 10 * 1024 * 1024
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetTheme returns the persisted theme preference. When no preference has
// been stored yet the given system variant decides, defaulting to dark.
func (s *Settings) GetTheme(systemVariant ThemeMode) ThemeMode {
	stored := s.app.Preferences().String(KeyTheme)
	switch ThemeMode(stored) {
	case ThemeDark, ThemeLight:
		return ThemeMode(stored)
	}
	if systemVariant == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// SetTheme persists the theme preference. Written on every change so the
// next startup restores the last choice.
func (s *Settings) SetTheme(mode ThemeMode) {
	s.app.Preferences().SetString(KeyTheme, string(mode))
}

// ToggleTheme flips between dark and light and returns the new mode
func (s *Settings) ToggleTheme(systemVariant ThemeMode) ThemeMode {
	next := ThemeDark
	if s.GetTheme(systemVariant) == ThemeDark {
		next = ThemeLight
	}
	s.SetTheme(next)
	return next
}

// GetScriptAPIBase returns the script generation service base URL
func (s *Settings) GetScriptAPIBase() string {
	base := s.app.Preferences().String(KeyScriptAPIBase)
	if base == "" {
		base = DefaultScriptAPIBase
		s.SetScriptAPIBase(base)
	}
	return base
}

// SetScriptAPIBase sets the script generation service base URL
func (s *Settings) SetScriptAPIBase(base string) {
	s.app.Preferences().SetString(KeyScriptAPIBase, base)
}

// GetEmotionAPIBase returns the emotion analysis service base URL
func (s *Settings) GetEmotionAPIBase() string {
	base := s.app.Preferences().String(KeyEmotionAPIBase)
	if base == "" {
		base = DefaultEmotionAPIBase
		s.SetEmotionAPIBase(base)
	}
	return base
}

// SetEmotionAPIBase sets the emotion analysis service base URL
func (s *Settings) SetEmotionAPIBase(base string) {
	s.app.Preferences().SetString(KeyEmotionAPIBase, base)
}

// GetLastGenre returns the genre used for the previous generation, falling
// back to the fixed default label
func (s *Settings) GetLastGenre() string {
	genre := s.app.Preferences().String(KeyLastGenre)
	if genre == "" {
		return DefaultGenre
	}
	return genre
}

// SetLastGenre remembers the genre for the next session
func (s *Settings) SetLastGenre(genre string) {
	s.app.Preferences().SetString(KeyLastGenre, genre)
}

// GetGenreOptions returns the genre labels offered in the script flow
func (s *Settings) GetGenreOptions() []string {
	return []string{
		DefaultGenre,
		"Drama",
		"Comedy",
		"Noir",
		"Thriller",
		"Romance",
		"Science Fiction",
	}
}
