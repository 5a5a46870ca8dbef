package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-dashboard/internal/config"
)

func pressSetup(m SetupModel, msgs ...tea.KeyMsg) SetupModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SetupModel)
	}
	return m
}

func TestSetupModel_Navigation(t *testing.T) {
	m := NewSetupModel("dark")
	assert.Equal(t, "dark", m.Selected())

	m = pressSetup(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "light", m.Selected())

	m = pressSetup(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "default", m.Selected(), "cursor wraps")

	m = pressSetup(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "light", m.Selected())

	assert.Contains(t, m.View(), "▶ light")
	assert.Contains(t, m.View(), "Preview")
}

func TestSetupModel_UnknownCurrentStartsAtFirst(t *testing.T) {
	assert.Equal(t, "default", NewSetupModel("neon").Selected())
}

func TestSetupModel_Cancel(t *testing.T) {
	m := pressSetup(NewSetupModel(""), tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.Confirmed())
	assert.Equal(t, "Theme unchanged.\n", m.View())
}

func TestSetupModel_Confirm(t *testing.T) {
	original := config.GetConfigFile()
	config.UseConfigFile(filepath.Join(t.TempDir(), "config.yaml"))
	t.Cleanup(func() { config.UseConfigFile(original) })

	m := pressSetup(NewSetupModel(""),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	require.True(t, m.Confirmed())
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.ThemeName)
}

func TestSetupModel_TooSmall(t *testing.T) {
	next, _ := NewSetupModel("").Update(tea.WindowSizeMsg{Width: 40, Height: 8})

	assert.Contains(t, next.(SetupModel).View(), "Terminal too small")
}
