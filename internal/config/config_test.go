package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) func() {
	origConfigDir := configDir
	origConfigFile := configFile

	tmpDir, err := os.MkdirTemp("", "hrdash_config_test_*")
	require.NoError(t, err)

	configDir = tmpDir
	configFile = filepath.Join(tmpDir, "config.yaml")

	return func() {
		os.RemoveAll(tmpDir)
		configDir = origConfigDir
		configFile = origConfigFile
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "", cfg.ThemeName) // empty until set
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "employees", cfg.DefaultScreen)
}

func TestLoadConfig_Default(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configDir, "hrdash.db"), cfg.DBPath)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
}

func TestSaveAndLoadConfig(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg := &Config{
		DBPath:        filepath.Join(configDir, "test.db"),
		ThemeName:     "dracula",
		Locale:        "sv",
		LogLevel:      "debug",
		LogFormat:     "json",
		ListenAddr:    ":9090",
		DefaultScreen: "tasks",
	}

	require.NoError(t, SaveConfig(cfg))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfig_FillsBlanks(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, os.WriteFile(configFile, []byte("theme_name: nord\n"), 0644))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "nord", loaded.ThemeName)
	assert.Equal(t, "en", loaded.Locale)
	assert.NotEmpty(t, loaded.DBPath)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, SaveConfig(&Config{LogLevel: "info", ListenAddr: ":9090"}))

	t.Setenv("HRDASH_LOG_LEVEL", "debug")
	t.Setenv("HRDASH_DEFAULT_SCREEN", "teams")

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, "teams", loaded.DefaultScreen)
	assert.Equal(t, ":9090", loaded.ListenAddr)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, os.WriteFile(configFile, []byte("theme_name: [unclosed\n"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSaveConfig_CreatesDirectory(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	os.RemoveAll(configDir)

	require.NoError(t, SaveConfig(GetDefaultConfig()))

	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUpdateTheme(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, SaveConfig(GetDefaultConfig()))
	require.NoError(t, UpdateTheme("monokai"))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "monokai", loaded.ThemeName)
}

func TestUseConfigFile(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	path := filepath.Join(GetConfigDir(), "nested", "custom.yaml")
	UseConfigFile(path)

	assert.Equal(t, path, GetConfigFile())
	assert.Equal(t, filepath.Dir(path), GetConfigDir())

	require.NoError(t, SaveConfig(&Config{ThemeName: "dark"}))
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.ThemeName)
}
