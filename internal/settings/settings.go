// Package settings reads the optional user preferences file.
// Preferences only shape presentation and loading; they never change
// which lines match.
package settings

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/f4ah6o/minigrep-go/internal/diag"
)

const (
	// HomeEnv overrides the settings directory.
	HomeEnv = "MINIGREP_HOME"
	// FileName is the settings file inside the settings directory.
	FileName = "config.toml"

	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Settings represents the structure of config.toml
type Settings struct {
	Output struct {
		Color  bool   `toml:"color"`
		Format string `toml:"format"`
	} `toml:"output"`
	Input struct {
		// HTML is opt-in: by default .html targets are scanned as raw text.
		HTML bool `toml:"html"`
	} `toml:"input"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	var s Settings
	s.Output.Color = true
	s.Output.Format = FormatText
	s.Log.Level = diag.DefaultLevel
	return s
}

// Validate rejects values the rest of the program cannot act on.
func (s Settings) Validate() error {
	if !slices.Contains([]string{FormatText, FormatJSON, FormatYAML}, s.Output.Format) {
		return fmt.Errorf("invalid output format %q: must be %q, %q or %q",
			s.Output.Format, FormatText, FormatJSON, FormatYAML)
	}
	if _, err := diag.ParseLevel(s.Log.Level); err != nil {
		return err
	}
	return nil
}

// Home returns the settings directory.
// It checks the MINIGREP_HOME environment variable first, then falls back to ~/.minigrep
func Home() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}

	return filepath.Join(usr.HomeDir, ".minigrep"), nil
}

// Load reads config.toml from Home.
// Returns: (settings, file existed, err). On error the defaults are returned.
func Load() (Settings, bool, error) {
	home, err := Home()
	if err != nil {
		return Default(), false, err
	}
	return LoadFile(filepath.Join(home, FileName))
}

// LoadFile decodes path over the defaults, so keys absent from the file
// keep their default value.
func LoadFile(path string) (Settings, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}

	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Default(), true, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), true, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return s, true, nil
}
