package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/jask/tagmoji/internal/combo"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig    `mapstructure:"ui"`
	Items ItemsConfig `mapstructure:"items"`
	Log   LogConfig   `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Placeholder     string `mapstructure:"placeholder"`
	SimilarDistance int    `mapstructure:"similar_distance"`
}

// ItemsConfig seeds the item catalog. File is a TOML document with a single
// `items` array; its entries follow Initial. With Remember set, the catalog
// as it stands at exit is written back to Initial.
type ItemsConfig struct {
	Initial  []string `mapstructure:"initial"`
	File     string   `mapstructure:"file"`
	Remember bool     `mapstructure:"remember"`
}

// LogConfig holds the debug log destination. Empty disables logging.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

type itemsFile struct {
	Items []string `toml:"items"`
}

// Load reads configuration from file and env. Env var overrides use prefix TAGMOJI_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.placeholder", combo.DefaultPlaceholder)
	v.SetDefault("ui.similar_distance", 2)
	v.SetDefault("items.initial", []string{})
	v.SetDefault("items.file", "")
	v.SetDefault("items.remember", false)
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("TAGMOJI_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tagmoji"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TAGMOJI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.SimilarDistance < 0 {
		return Config{}, fmt.Errorf("ui.similar_distance must not be negative, got %d", c.UI.SimilarDistance)
	}
	return c, nil
}

// InitialItems returns the configured items followed by those from the items
// file. Duplicates are left for the selection store to collapse.
func (c Config) InitialItems() ([]string, error) {
	out := append([]string(nil), c.Items.Initial...)
	if strings.TrimSpace(c.Items.File) == "" {
		return out, nil
	}
	fromFile, err := LoadItemsFile(c.Items.File)
	if err != nil {
		return nil, err
	}
	return append(out, fromFile...), nil
}

// LoadItemsFile decodes a TOML file of the form `items = ["a", "b"]`.
func LoadItemsFile(path string) ([]string, error) {
	var f itemsFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode items file %s: %w", path, err)
	}
	out := make([]string, 0, len(f.Items))
	for _, it := range f.Items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out, nil
}

// RememberItems saves items as items.initial when items.remember is on. It
// reports whether the config was written.
func RememberItems(cfg Config, items []string) (bool, error) {
	if !cfg.Items.Remember {
		return false, nil
	}
	cfg.Items.Initial = append([]string(nil), items...)
	if err := Save(cfg); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("TAGMOJI_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "tagmoji", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.placeholder", cfg.UI.Placeholder)
	v.Set("ui.similar_distance", cfg.UI.SimilarDistance)
	v.Set("items.initial", cfg.Items.Initial)
	v.Set("items.file", cfg.Items.File)
	v.Set("items.remember", cfg.Items.Remember)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
