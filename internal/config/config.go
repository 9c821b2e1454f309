// Package config provides configuration management for studytrack.
// Configuration is loaded from (highest to lowest priority):
// 1. Command-line flags
// 2. Environment variables (STUDYTRACK_*), including values from a .env file
// 3. Project config (.studytrack/config.yaml in cwd)
// 4. Home config (~/.studytrack/config.yaml)
// 5. Defaults
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all studytrack configuration.
type Config struct {
	// DataFile is the path of the JSON data file.
	DataFile string `yaml:"data_file" json:"data_file"`

	// MaxTopicsPerDay caps how many due topics are surfaced per day;
	// overflow is rescheduled to tomorrow. Zero disables the cap.
	MaxTopicsPerDay int `yaml:"max_topics_per_day" json:"max_topics_per_day"`

	// Output controls the default output format (table, json).
	Output string `yaml:"output" json:"output"`

	// Verbose enables verbose output.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// LogFile receives diagnostic logs in addition to stderr when set.
	LogFile string `yaml:"log_file" json:"log_file"`

	// Session settings for pomodoro-paced study sessions.
	Session SessionConfig `yaml:"session" json:"session"`

	// Remind settings for the reminder loop.
	Remind RemindConfig `yaml:"remind" json:"remind"`
}

// SessionConfig holds study-session settings.
type SessionConfig struct {
	// WorkMinutes is the length of a focus phase.
	WorkMinutes int `yaml:"work_minutes" json:"work_minutes"`

	// BreakMinutes is the length of a break phase.
	BreakMinutes int `yaml:"break_minutes" json:"break_minutes"`
}

// RemindConfig holds reminder-loop settings.
type RemindConfig struct {
	// Every is how often the due check runs (Go duration, e.g. "1h").
	Every string `yaml:"every" json:"every"`

	// StartHour and EndHour bound the hours (0-23) during which reminders
	// fire. Checks outside the window are skipped, not queued.
	StartHour int `yaml:"start_hour" json:"start_hour"`
	EndHour   int `yaml:"end_hour" json:"end_hour"`
}

// Default config values (used in resolution and validation).
const (
	defaultDataFile        = "studytrack.json"
	defaultMaxTopicsPerDay = 3
	defaultOutput          = "table"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataFile:        defaultDataFile,
		MaxTopicsPerDay: defaultMaxTopicsPerDay,
		Output:          defaultOutput,
		Session: SessionConfig{
			WorkMinutes:  25,
			BreakMinutes: 5,
		},
		Remind: RemindConfig{
			Every:     "1h",
			StartHour: 8,
			EndHour:   22,
		},
	}
}

// Load loads configuration with proper precedence.
// Priority: flags > env > project > home > defaults
func Load(flagOverrides *Config) (*Config, error) {
	// A .env next to the working directory feeds the environment before
	// env overrides are read. Missing files are fine.
	_ = godotenv.Load()

	cfg := Default()

	homeConfig, _ := loadFromPath(homeConfigPath())
	if homeConfig != nil {
		cfg = merge(cfg, homeConfig)
	}

	projectConfig, _ := loadFromPath(projectConfigPath())
	if projectConfig != nil {
		cfg = merge(cfg, projectConfig)
	}

	cfg = applyEnv(cfg)

	if flagOverrides != nil {
		cfg = merge(cfg, flagOverrides)
	}

	return cfg, nil
}

// homeConfigPath returns the home config path.
func homeConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".studytrack", "config.yaml")
}

// projectConfigPath returns the project config path.
func projectConfigPath() string {
	if override := strings.TrimSpace(os.Getenv("STUDYTRACK_CONFIG")); override != "" {
		return override
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".studytrack", "config.yaml")
}

// loadFromPath loads config from a YAML file.
func loadFromPath(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv applies environment variable overrides.
func applyEnv(cfg *Config) *Config {
	if v := os.Getenv("STUDYTRACK_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("STUDYTRACK_MAX_TOPICS_PER_DAY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxTopicsPerDay = n
		}
	}
	if v := os.Getenv("STUDYTRACK_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("STUDYTRACK_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("STUDYTRACK_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("STUDYTRACK_REMIND_EVERY"); v != "" {
		cfg.Remind.Every = v
	}
	return cfg
}

// mergeStr overwrites dst with src when src is non-empty.
func mergeStr(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// mergeInt overwrites dst with src when src is non-zero.
func mergeInt(dst *int, src int) {
	if src != 0 {
		*dst = src
	}
}

// merge merges src into dst, with src values taking precedence.
func merge(dst, src *Config) *Config {
	mergeStr(&dst.DataFile, src.DataFile)
	mergeInt(&dst.MaxTopicsPerDay, src.MaxTopicsPerDay)
	mergeStr(&dst.Output, src.Output)
	if src.Verbose {
		dst.Verbose = true
	}
	mergeStr(&dst.LogFile, src.LogFile)

	mergeInt(&dst.Session.WorkMinutes, src.Session.WorkMinutes)
	mergeInt(&dst.Session.BreakMinutes, src.Session.BreakMinutes)

	mergeStr(&dst.Remind.Every, src.Remind.Every)
	mergeInt(&dst.Remind.StartHour, src.Remind.StartHour)
	mergeInt(&dst.Remind.EndHour, src.Remind.EndHour)

	return dst
}
