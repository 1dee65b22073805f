package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/brewlog/internal/brewtable"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale      string `mapstructure:"locale"`
	DateFormat  string `mapstructure:"date_format"`
	Placeholder string `mapstructure:"placeholder"`
	SortCycle   string `mapstructure:"sort_cycle"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. path overrides BREWLOG_CONFIG,
// which overrides the default $HOME/.config/brewlog/config.toml. Env var
// overrides use prefix BREWLOG_.
func Load(path string) (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("ui.locale", "nl-NL")
	v.SetDefault("ui.date_format", "")
	v.SetDefault("ui.placeholder", brewtable.DefaultPlaceholder)
	v.SetDefault("ui.sort_cycle", "tristate")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "brewlog", "brewlog.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("BREWLOG_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "brewlog"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BREWLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := c.UI.CyclePolicy(); err != nil {
		return Config{}, fmt.Errorf("ui.sort_cycle: %w", err)
	}
	return c, nil
}

// CyclePolicy parses the configured header click cycle.
func (u UIConfig) CyclePolicy() (brewtable.CyclePolicy, error) {
	return brewtable.ParseCyclePolicy(u.SortCycle)
}

// FormatOptions resolves the cell formatting options. An explicit date
// format wins over the locale's layout.
func (u UIConfig) FormatOptions() brewtable.Options {
	layout := strings.TrimSpace(u.DateFormat)
	if layout == "" {
		layout = brewtable.LayoutForLocale(u.Locale)
	}
	return brewtable.Options{Placeholder: u.Placeholder, DateLayout: layout}
}
