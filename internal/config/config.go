package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ErrSettingsCorrupt marks a settings file that could not be parsed.
// Callers receive defaults alongside it and should treat it as a warning.
var ErrSettingsCorrupt = errors.New("settings file is corrupt")

// Theme names recognized in the settings file.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Last-tab close policies.
const (
	CloseLastSpawnUntitled = "spawn_untitled"
	CloseLastAllowEmpty    = "allow_empty"
)

type Settings struct {
	Theme               string   `toml:"theme"`
	Font                string   `toml:"font"`
	FontSize            int      `toml:"font_size"`
	TabSize             int      `toml:"tab_size"`
	WordWrap            bool     `toml:"word_wrap"`
	AutoSaveIntervalSec int      `toml:"auto_save_interval_sec"`
	CloseLastTab        string   `toml:"close_last_tab"`
	RecentFiles         []string `toml:"recent_files"`
}

var DefaultSettings = Settings{
	Theme:               ThemeDark,
	Font:                "",
	FontSize:            12,
	TabSize:             4,
	WordWrap:            true,
	AutoSaveIntervalSec: 120,
	CloseLastTab:        CloseLastSpawnUntitled,
	RecentFiles:         []string{},
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = expandPath("~/.config")
	}
	return filepath.Join(base, "modern-notepad", "settings.toml")
}

// Load reads settings from path. A missing file yields defaults with no
// error. A malformed file yields defaults wrapped with ErrSettingsCorrupt so
// the caller can log and continue.
func Load(path string) (*Settings, error) {
	expandedPath := expandPath(path)

	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		cfg := DefaultSettings
		return &cfg, nil
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		cfg := DefaultSettings
		return &cfg, fmt.Errorf("%w: %v", ErrSettingsCorrupt, err)
	}

	cfg := DefaultSettings
	if err := toml.Unmarshal(data, &cfg); err != nil {
		defaults := DefaultSettings
		return &defaults, fmt.Errorf("%w: %v", ErrSettingsCorrupt, err)
	}

	cfg.normalize()
	return &cfg, nil
}

// Save writes settings to path, creating the parent directory if needed.
func Save(cfg *Settings, path string) error {
	expandedPath := expandPath(path)

	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(expandedPath, data, 0644)
}

// normalize clamps out-of-range values back to defaults so a hand-edited
// file cannot put the editor into an unusable state.
func (c *Settings) normalize() {
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		c.Theme = DefaultSettings.Theme
	}
	if c.FontSize < 8 || c.FontSize > 24 {
		c.FontSize = DefaultSettings.FontSize
	}
	if c.TabSize != 2 && c.TabSize != 4 && c.TabSize != 8 {
		c.TabSize = DefaultSettings.TabSize
	}
	if c.AutoSaveIntervalSec < 0 {
		c.AutoSaveIntervalSec = DefaultSettings.AutoSaveIntervalSec
	}
	if c.CloseLastTab != CloseLastSpawnUntitled && c.CloseLastTab != CloseLastAllowEmpty {
		c.CloseLastTab = DefaultSettings.CloseLastTab
	}
	if c.RecentFiles == nil {
		c.RecentFiles = []string{}
	}
}

// Validate reports the first out-of-range value without repairing it.
func (c *Settings) Validate() error {
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		return fmt.Errorf("theme must be %q or %q, got %q", ThemeDark, ThemeLight, c.Theme)
	}
	if c.FontSize < 8 || c.FontSize > 24 {
		return fmt.Errorf("font_size must be between 8 and 24, got %d", c.FontSize)
	}
	if c.TabSize != 2 && c.TabSize != 4 && c.TabSize != 8 {
		return fmt.Errorf("tab_size must be 2, 4 or 8, got %d", c.TabSize)
	}
	if c.AutoSaveIntervalSec < 0 {
		return fmt.Errorf("auto_save_interval_sec must not be negative, got %d", c.AutoSaveIntervalSec)
	}
	if c.CloseLastTab != CloseLastSpawnUntitled && c.CloseLastTab != CloseLastAllowEmpty {
		return fmt.Errorf("close_last_tab must be %q or %q, got %q", CloseLastSpawnUntitled, CloseLastAllowEmpty, c.CloseLastTab)
	}
	return nil
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		usr, err := user.Current()
		if err == nil {
			return filepath.Join(usr.HomeDir, path[1:])
		}
	}
	return path
}
