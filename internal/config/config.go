package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/week"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ShellConfig holds shell integration configuration.
type ShellConfig struct {
	CacheTTL    string `mapstructure:"cache_ttl"`
	NoTodayIcon string `mapstructure:"no_today_icon"`
	StreakIcon  string `mapstructure:"streak_icon"`
	ShowBackend bool   `mapstructure:"show_backend"`
}

// ThemeConfig holds theme preset and color overrides.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// WeekConfig selects the "this week" window policy.
type WeekConfig struct {
	Window string `mapstructure:"window"`
}

// StatsConfig selects the weekday bucket reduction.
type StatsConfig struct {
	Reduction string `mapstructure:"reduction"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ReminderConfig controls the daily "log your mood" notification.
type ReminderConfig struct {
	Time     string   `mapstructure:"time"`     // "20:00"
	Days     []string `mapstructure:"days"`     // ["Mon", ..., "Sun"]
	Timezone string   `mapstructure:"timezone"` // e.g. "Europe/Berlin" (optional)
}

// Location returns the reminder time zone, falling back to local time.
func (r ReminderConfig) Location() *time.Location {
	if tz := strings.TrimSpace(r.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

// Config holds the application configuration.
type Config struct {
	Storage  string         `mapstructure:"storage"`
	DataDir  string         `mapstructure:"data_dir"`
	Editor   string         `mapstructure:"editor"`
	Week     WeekConfig     `mapstructure:"week"`
	Stats    StatsConfig    `mapstructure:"stats"`
	Log      LogConfig      `mapstructure:"log"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Shell    ShellConfig    `mapstructure:"shell"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

// WeekPolicy returns the configured week window policy.
func (c *Config) WeekPolicy() (week.Policy, error) {
	return week.ParsePolicy(c.Week.Window)
}

// Reduction returns the configured weekday reduction.
func (c *Config) Reduction() (stats.Reduction, error) {
	return stats.ParseReduction(c.Stats.Reduction)
}

// Validate rejects unknown enum values.
func (c *Config) Validate() error {
	switch c.Storage {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q (use file, sqlite or memory)", c.Storage)
	}
	if _, err := c.WeekPolicy(); err != nil {
		return err
	}
	if _, err := c.Reduction(); err != nil {
		return err
	}
	return nil
}

// DefaultDataDir returns the default data directory (~/.moodctl/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".moodctl")
	}
	return filepath.Join(home, ".moodctl")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", BackendFile)
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("editor", "")
	v.SetDefault("week.window", string(week.ISO))
	v.SetDefault("stats.reduction", string(stats.Mean))
	v.SetDefault("log.level", "warn")
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.markdown_style", "")
	v.SetDefault("shell.cache_ttl", "5m")
	v.SetDefault("shell.no_today_icon", "·")
	v.SetDefault("shell.streak_icon", "🔥")
	v.SetDefault("shell.show_backend", false)
	v.SetDefault("reminder.time", "20:00")
	v.SetDefault("reminder.days", []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"})
	v.SetDefault("reminder.timezone", "")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "moodctl"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: MOODCTL_STORAGE, MOODCTL_WEEK_WINDOW, etc.
	v.SetEnvPrefix("MOODCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
