package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cargograph/pkg/errors"
)

// Config holds defaults read from config.toml. Command-line flags always
// take precedence over these values.
//
//	[convert]
//	direction = "LR"
//	format    = "mermaid"
//	blacklist = ["winapi", "windows-sys"]
//
//	[levels]
//	format = "json"
type Config struct {
	Convert ConvertConfig `toml:"convert"`
	Levels  LevelsConfig  `toml:"levels"`
}

// ConvertConfig holds defaults for cargotree2mermaid.
type ConvertConfig struct {
	Direction string   `toml:"direction"`
	Format    string   `toml:"format"`
	Blacklist []string `toml:"blacklist"`
}

// LevelsConfig holds defaults for mermaidlevels.
type LevelsConfig struct {
	Format string `toml:"format"`
}

// configPath returns the default config file using XDG standard
// (~/.config/cargograph/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file. An explicit path must exist; a missing
// default file yields the zero Config. The returned string is the file that
// was read, or "" if none was.
func loadConfig(explicit string) (Config, string, error) {
	var cfg Config

	path := explicit
	if path == "" {
		p, err := configPath()
		if err != nil {
			return cfg, "", nil
		}
		if _, err := os.Stat(p); err != nil {
			return cfg, "", nil
		}
		path = p
	} else if err := errors.ValidateInputFile(path); err != nil {
		return cfg, "", err
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, "", errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, path, nil
}
