package theme

import (
	"errors"
	"fmt"
)

var ErrThemeNotFound = errors.New("theme not found")

type Manager struct {
	themes map[string]*Theme
}

func NewManager() *Manager {
	return &Manager{themes: predefined()}
}

func (m *Manager) GetTheme(name string) (*Theme, error) {
	theme, exists := m.themes[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return theme, nil
}

// ListThemes returns theme names in display order.
func (m *Manager) ListThemes() []string {
	return append([]string(nil), themeNames...)
}

func (m *Manager) ThemeExists(name string) bool {
	_, exists := m.themes[name]
	return exists
}

var globalManager = NewManager()

func GetTheme(name string) (*Theme, error) {
	return globalManager.GetTheme(name)
}

func ListThemes() []string {
	return globalManager.ListThemes()
}

func ThemeExists(name string) bool {
	return globalManager.ThemeExists(name)
}

// Resolve returns the named theme, falling back to the default one.
func Resolve(name string) *Theme {
	if t, err := GetTheme(name); err == nil {
		return t
	}
	return DefaultTheme()
}
