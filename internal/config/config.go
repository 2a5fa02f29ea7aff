package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type RenderConfig struct {
	CodeLanguage string `mapstructure:"code_language"`
	CardClass    string `mapstructure:"card_class"`
	FrontMatter  bool   `mapstructure:"front_matter"`
}

type OutputConfig struct {
	Verify bool `mapstructure:"verify"`
}

type SnapshotConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level slog.Level `mapstructure:"level"`
}

type Config struct {
	Render   RenderConfig   `mapstructure:"render"`
	Output   OutputConfig   `mapstructure:"output"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	Log      LogConfig      `mapstructure:"log"`
}

// cacheBase returns the base cache directory for doxymd.
// Checks XDG_CACHE_HOME, then ~/.cache, then the temp dir as fallback.
func cacheBase() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "doxymd")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", "doxymd")
	}
	return filepath.Join(os.TempDir(), "doxymd")
}

// SnapshotDir returns the directory holding previous-run snapshots.
func SnapshotDir() string {
	return filepath.Join(cacheBase(), "snapshots")
}

// SnapshotPath returns the snapshot file for an output directory. Paths are
// keyed by the absolute output path so separate sites do not collide.
func SnapshotPath(outDir string) (string, error) {
	abs, err := filepath.Abs(outDir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", outDir, err)
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(SnapshotDir(), hex.EncodeToString(sum[:8])+".json.zst"), nil
}

func InitializeViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "doxymd"))
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "doxymd"))
	}

	viper.SetDefault("render.code_language", "cpp")
	viper.SetDefault("render.card_class", "snapi-api-card")
	viper.SetDefault("render.front_matter", false)
	viper.SetDefault("output.verify", true)
	viper.SetDefault("snapshot.enabled", true)
	viper.SetDefault("log.level", "info")

	viper.SetEnvPrefix("DOXYMD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func stringToLevelHookFunc() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(slog.Level(0)) || f.Kind() != reflect.String {
			return data, nil
		}
		var level slog.Level
		if err := level.UnmarshalText([]byte(data.(string))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", data, err)
		}
		return level, nil
	}
}

func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}
	return decode(viper.AllSettings())
}

func decode(settings map[string]interface{}) (*Config, error) {
	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringToLevelHookFunc(),
		WeaklyTypedInput: true,
		Result:           &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}
