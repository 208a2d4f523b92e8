package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds user preferences shared by every document. The modifier and
// new-item schemes are consumed only by the TUI's key dispatch layer; the
// outline engine itself is scheme-agnostic.
type Config struct {
	// ModifierScheme selects which modifier drives structural keys:
	// "alt" (default) or "ctrl".
	ModifierScheme string `json:"modifierScheme,omitempty"`
	// NewItemTrigger selects how a new item is created while navigating:
	// "enter" (default) or "o".
	NewItemTrigger string `json:"newItemTrigger,omitempty"`
	// Glyphs selects the glyph set: "unicode" (default) or "ascii".
	Glyphs string `json:"glyphs,omitempty"`
}

func (c *Config) normalize() {
	switch strings.TrimSpace(c.ModifierScheme) {
	case "ctrl":
		c.ModifierScheme = "ctrl"
	default:
		c.ModifierScheme = "alt"
	}
	switch strings.TrimSpace(c.NewItemTrigger) {
	case "o":
		c.NewItemTrigger = "o"
	default:
		c.NewItemTrigger = "enter"
	}
	switch strings.TrimSpace(c.Glyphs) {
	case "ascii":
		c.Glyphs = "ascii"
	default:
		c.Glyphs = "unicode"
	}
}

func configPath() (string, error) {
	if v := os.Getenv("PLANE_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "config.json"), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "plane", "config.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "plane", "config.json"), nil
}

// LoadConfig reads the global config, falling back to defaults when the
// file is missing or invalid.
func LoadConfig() (*Config, error) {
	c := &Config{}
	path, err := configPath()
	if err != nil {
		c.normalize()
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.normalize()
			return c, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(b, c); err != nil {
		c = &Config{}
	}
	c.normalize()
	return c, nil
}

// SaveConfig writes the global config atomically.
func SaveConfig(c *Config) error {
	if c == nil {
		return nil
	}
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cc := *c
	cc.normalize()
	b, err := json.MarshalIndent(cc, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
