package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings.Theme, cfg.Theme)
	assert.Equal(t, DefaultSettings.FontSize, cfg.FontSize)
	assert.Equal(t, DefaultSettings.AutoSaveIntervalSec, cfg.AutoSaveIntervalSec)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	cfg := DefaultSettings
	cfg.Theme = ThemeLight
	cfg.Font = "Fira Code"
	cfg.FontSize = 16
	cfg.TabSize = 2
	cfg.WordWrap = false
	cfg.AutoSaveIntervalSec = 60
	cfg.CloseLastTab = CloseLastAllowEmpty
	cfg.RecentFiles = []string{"/tmp/b.txt", "/tmp/a.txt"}

	require.NoError(t, Save(&cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &cfg, loaded)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.toml")

	require.NoError(t, Save(&DefaultSettings, path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = [not toml"), 0644))

	cfg, err := Load(path)

	assert.ErrorIs(t, err, ErrSettingsCorrupt)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultSettings.Theme, cfg.Theme)
}

func TestLoadClampsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `theme = "solarized"
font_size = 99
tab_size = 3
auto_save_interval_sec = -5
close_last_tab = "whatever"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, DefaultSettings.FontSize, cfg.FontSize)
	assert.Equal(t, DefaultSettings.TabSize, cfg.TabSize)
	assert.Equal(t, DefaultSettings.AutoSaveIntervalSec, cfg.AutoSaveIntervalSec)
	assert.Equal(t, CloseLastSpawnUntitled, cfg.CloseLastTab)
}

func TestLoadKeepsValidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `theme = "light"
font_size = 8
tab_size = 8
word_wrap = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ThemeLight, cfg.Theme)
	assert.Equal(t, 8, cfg.FontSize)
	assert.Equal(t, 8, cfg.TabSize)
	assert.False(t, cfg.WordWrap)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults are valid", func(*Settings) {}, false},
		{"light theme is valid", func(s *Settings) { s.Theme = ThemeLight }, false},
		{"unknown theme", func(s *Settings) { s.Theme = "sepia" }, true},
		{"font size too small", func(s *Settings) { s.FontSize = 7 }, true},
		{"font size too large", func(s *Settings) { s.FontSize = 25 }, true},
		{"font size boundary low", func(s *Settings) { s.FontSize = 8 }, false},
		{"font size boundary high", func(s *Settings) { s.FontSize = 24 }, false},
		{"tab size 3", func(s *Settings) { s.TabSize = 3 }, true},
		{"tab size 2", func(s *Settings) { s.TabSize = 2 }, false},
		{"negative auto-save", func(s *Settings) { s.AutoSaveIntervalSec = -1 }, true},
		{"zero auto-save disables", func(s *Settings) { s.AutoSaveIntervalSec = 0 }, false},
		{"unknown close policy", func(s *Settings) { s.CloseLastTab = "quit_app" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSettings
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultPathIsUnderConfigDir(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "modern-notepad")
	assert.Equal(t, "settings.toml", filepath.Base(path))
}
