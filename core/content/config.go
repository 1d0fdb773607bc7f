package content

import "path/filepath"

// Config holds the game content layout.
type Config struct {
	// GameDir is the mod directory the server runs from (e.g. /hlds/cstrike).
	GameDir string `mapstructure:"game_dir" default:"."`
	// FallbackDir is the name of the shared content directory next to GameDir.
	FallbackDir string `mapstructure:"fallback_dir" default:"valve"`
	// Manifest is the manifest location relative to GameDir.
	Manifest string `mapstructure:"manifest" default:"addons/precache/precache.cfg"`
}

// Absolute returns a copy of the config with GameDir made absolute, so the
// fallback root is computed from a real parent directory.
func (c Config) Absolute() (Config, error) {
	abs, err := filepath.Abs(c.GameDir)
	if err != nil {
		return c, err
	}
	c.GameDir = abs
	return c, nil
}
