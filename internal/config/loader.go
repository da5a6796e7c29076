package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Supported config file formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// searchExts lists the extensions tried in the user and local config dirs.
var searchExts = []string{".yaml", ".yml", ".toml"}

// gameConfig is implemented by pointers to the per-game config structs.
type gameConfig[C any] interface {
	*C
	Normalize()
	Validate() error
}

// LoadTank loads tank configuration.
// Search order: customPath -> ~/.arcade/configs/tank.{yaml,yml,toml} ->
// ./configs/tank.{yaml,yml,toml} -> embedded default
func LoadTank(customPath string) (TankConfig, error) {
	return load[TankConfig]("tank", customPath, defaultTankYAML, DefaultTankConfig)
}

// LoadFlyer loads flyer configuration. Same search order as LoadTank.
func LoadFlyer(customPath string) (FlyerConfig, error) {
	return load[FlyerConfig]("flyer", customPath, defaultFlyerYAML, DefaultFlyerConfig)
}

// LoadPlatformer loads platformer configuration. Same search order as LoadTank.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	return load[PlatformerConfig]("platformer", customPath, defaultPlatformerYAML, DefaultPlatformerConfig)
}

// load decodes the first config found on top of the hardcoded defaults.
// Only a broken custom path is an error; broken files in the search
// directories are logged and skipped.
func load[C any, P gameConfig[C]](gameID, customPath string, embedded []byte, defaults func() C) (C, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		if err := decodeFile(customPath, P(&cfg)); err != nil {
			return cfg, err
		}
		if err := P(&cfg).Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		P(&cfg).Normalize()
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, dir := range []string{userConfigDir(), "configs"} {
		if dir == "" {
			continue
		}
		for _, ext := range searchExts {
			path := filepath.Join(dir, gameID+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			cfg := defaults()
			if err := decodeFile(path, P(&cfg)); err != nil {
				log.Warn("ignoring config file", "path", path, "err", err)
				continue
			}
			if err := P(&cfg).Validate(); err != nil {
				log.Warn("ignoring invalid config file", "path", path, "err", err)
				continue
			}
			P(&cfg).Normalize()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, P(&cfg)); err != nil {
		log.Warn("embedded config unreadable, using built-in values", "game", gameID, "err", err)
		cfg = defaults() // Fallback to hardcoded if embed fails
	}
	P(&cfg).Normalize()
	return cfg, nil
}

// decodeFile reads path and decodes it into v, choosing the format by extension.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := Decode(data, FormatFromPath(path), v); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return nil
}

// FormatFromPath returns FormatTOML for .toml files and FormatYAML otherwise.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode unmarshals data in the given format into v.
func Decode(data []byte, format string, v any) error {
	switch format {
	case FormatTOML:
		return toml.Unmarshal(data, v)
	case FormatYAML, "":
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("config: unknown format %q", format)
	}
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, format string, v any) error {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return fmt.Errorf("config: encode toml: %w", err)
		}
	case FormatYAML, "":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("config: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("config: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("config: unknown format %q", format)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Load returns the effective configuration for a game ID as an untyped
// value, for tooling that prints or inspects configs.
func Load(gameID, customPath string) (any, error) {
	switch gameID {
	case "tank":
		return LoadTank(customPath)
	case "flyer":
		return LoadFlyer(customPath)
	case "platformer":
		return LoadPlatformer(customPath)
	default:
		return nil, fmt.Errorf("config: no configuration for game %q", gameID)
	}
}

// userConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}
