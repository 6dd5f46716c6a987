package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"minassist/pkg/core/model"
	"minassist/pkg/notify"
)

const configFileName = "minassist.yaml"

// Arrangement defines a recurring ministry arrangement the planner expands
// into proposed activities.
type Arrangement struct {
	Name        string      `yaml:"name" validate:"required"`
	RRule       string      `yaml:"rrule" validate:"required"`
	Territory   string      `yaml:"territory" validate:"required"`
	Leader      string      `yaml:"leader" validate:"required"`
	Shift       model.Shift `yaml:"shift" validate:"required,oneof=MORNING AFTERNOON"`
	Description string      `yaml:"description,omitempty"`
	// ReminderTime is an optional HH:MM clock time; when set, each proposed
	// activity carries a reminder at that time on its date.
	ReminderTime string `yaml:"reminderTime,omitempty" validate:"omitempty,datetime=15:04"`
}

// Config represents the application configuration.
type Config struct {
	DBPath        string              `yaml:"dbPath" validate:"required"`
	LogDir        string              `yaml:"logDir,omitempty"`
	SweepSchedule string              `yaml:"sweepSchedule,omitempty"`
	Notifier      string              `yaml:"notifier,omitempty" validate:"omitempty,oneof=desktop email none"`
	SMTP          *notify.EmailConfig `yaml:"smtp,omitempty"`
	Arrangements  []Arrangement       `yaml:"arrangements,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DBPath:        filepath.Join(home, ".minassist", "minassist.db"),
		SweepSchedule: "@every 1m",
		Notifier:      "desktop",
	}
}

// Load reads the configuration, layering sources in order: defaults, an
// optional config file, then environment overrides. A `.env` file in the
// working directory is honored if present.
func Load(path string) (*Config, error) {
	// Missing .env is fine; it only exists on hosts that use it.
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("MINASSIST_CONFIG")
	}
	if path == "" {
		path = findConfigFile()
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if dbPath := os.Getenv("MINASSIST_DB"); dbPath != "" {
		cfg.DBPath = dbPath
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax for
// each arrangement.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Notifier == "email" {
		if cfg.SMTP == nil {
			return fmt.Errorf("notifier is %q but no smtp block is configured", cfg.Notifier)
		}
		if err := validate.Struct(cfg.SMTP); err != nil {
			return fmt.Errorf("smtp config validation failed: %w", err)
		}
	}

	for i, arrangement := range cfg.Arrangements {
		if _, err := rrule.StrToRRule(arrangement.RRule); err != nil {
			return fmt.Errorf("invalid rrule in arrangements[%d] (%s): %w", i, arrangement.Name, err)
		}
	}

	return nil
}

// Arrangement looks up a configured arrangement by name.
func (c *Config) Arrangement(name string) (Arrangement, error) {
	for _, arrangement := range c.Arrangements {
		if arrangement.Name == name {
			return arrangement, nil
		}
	}
	return Arrangement{}, fmt.Errorf("no arrangement named %q is configured", name)
}

// findConfigFile searches for minassist.yaml in the current directory and the
// user's home directory. An empty result means run on defaults.
func findConfigFile() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeConfigPath := filepath.Join(homeDir, ".minassist", configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath
	}

	return ""
}
