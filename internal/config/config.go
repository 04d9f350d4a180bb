// Package config provides configuration types, defaults, loading and
// persistence for quill.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/quill/internal/log"
)

// Config holds all quill settings.
type Config struct {
	Theme  ThemeConfig  `mapstructure:"theme" yaml:"theme"`
	Editor EditorConfig `mapstructure:"editor" yaml:"editor"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// ThemeConfig holds colors (any lipgloss color value) per annotation kind.
type ThemeConfig struct {
	Keyword       string `mapstructure:"keyword" yaml:"keyword"`
	Type          string `mapstructure:"type" yaml:"type"`
	KnownValue    string `mapstructure:"known_value" yaml:"known_value"`
	Number        string `mapstructure:"number" yaml:"number"`
	Char          string `mapstructure:"char" yaml:"char"`
	Lifetime      string `mapstructure:"lifetime" yaml:"lifetime"`
	Match         string `mapstructure:"match" yaml:"match"`                   // background
	SelectedMatch string `mapstructure:"selected_match" yaml:"selected_match"` // background
	StatusBar     string `mapstructure:"status_bar" yaml:"status_bar"`         // background
}

// EditorConfig holds view behavior.
type EditorConfig struct {
	ScrollMargin int  `mapstructure:"scroll_margin" yaml:"scroll_margin"` // rows kept between caret and viewport edge
	ShowWelcome  bool `mapstructure:"show_welcome" yaml:"show_welcome"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Debug bool   `mapstructure:"debug" yaml:"debug"`
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn or error
}

// EnvPrefix prefixes environment overrides, e.g. QUILL_LOG_DEBUG=true.
const EnvPrefix = "QUILL"

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Theme: ThemeConfig{
			Keyword:       "#C678DD",
			Type:          "#E5C07B",
			KnownValue:    "#D19A66",
			Number:        "#D19A66",
			Char:          "#98C379",
			Lifetime:      "#56B6C2",
			Match:         "#3E4451",
			SelectedMatch: "#61AFEF",
			StatusBar:     "#3E4451",
		},
		Editor: EditorConfig{
			ScrollMargin: 0,
			ShowWelcome:  true,
		},
		Log: LogConfig{
			File:  "quill-debug.log",
			Level: "debug",
		},
	}
}

// setDefaults registers every default so environment overrides apply even
// for keys absent from the config file.
func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("theme.keyword", d.Theme.Keyword)
	v.SetDefault("theme.type", d.Theme.Type)
	v.SetDefault("theme.known_value", d.Theme.KnownValue)
	v.SetDefault("theme.number", d.Theme.Number)
	v.SetDefault("theme.char", d.Theme.Char)
	v.SetDefault("theme.lifetime", d.Theme.Lifetime)
	v.SetDefault("theme.match", d.Theme.Match)
	v.SetDefault("theme.selected_match", d.Theme.SelectedMatch)
	v.SetDefault("theme.status_bar", d.Theme.StatusBar)
	v.SetDefault("editor.scroll_margin", d.Editor.ScrollMargin)
	v.SetDefault("editor.show_welcome", d.Editor.ShowWelcome)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.level", d.Log.Level)
}

// New returns a viper instance with quill's defaults and env binding.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration into a Config.
//
// Config lookup order:
//  1. path, when non-empty (must exist)
//  2. ./.quill.yaml
//  3. ~/.config/quill/config.yaml
//
// No file at all is not an error; defaults apply. The returned string is the
// file actually used, or "".
func Load(v *viper.Viper, path string) (Config, string, error) {
	if v == nil {
		v = New()
	}

	if path != "" {
		v.SetConfigFile(path)
	} else if _, err := os.Stat(".quill.yaml"); err == nil {
		v.SetConfigFile(".quill.yaml")
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Dir(UserConfigPath(home)))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			log.ErrorErr(log.CatConfig, "Failed to read config", err, "path", path)
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Editor.ScrollMargin < 0 {
		log.Error(log.CatConfig, "Invalid scroll margin", "value", cfg.Editor.ScrollMargin)
		return Config{}, "", fmt.Errorf("editor.scroll_margin must not be negative, got %d", cfg.Editor.ScrollMargin)
	}
	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return Config{}, "", fmt.Errorf("log.level: %w", err)
	}

	used := v.ConfigFileUsed()
	log.Debug(log.CatConfig, "Loaded config", "path", used)
	return cfg, used, nil
}

// UserConfigPath is the per-user config file under home.
func UserConfigPath(home string) string {
	return filepath.Join(home, ".config", "quill", "config.yaml")
}

// WriteDefault creates a config file at path holding the defaults.
// Creates the parent directory if it doesn't exist.
func WriteDefault(path string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", path)

	var buf bytes.Buffer
	buf.WriteString("# quill configuration\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Defaults()); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = enc.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "path", path)
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", path)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", path)
	return nil
}
