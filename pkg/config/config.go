// Package config loads remcal settings from .remcal.yaml and REMCAL_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/remcal/pkg/reminder"
)

const (
	KeyLogFile       = "log.file"
	KeyLogLevel      = "log.level"
	KeyReminderColor = "reminder.color"
	KeyMouse         = "ui.mouse"
	KeyTheme         = "ui.theme"
)

// Config is the resolved configuration.
type Config struct {
	LogFile       string `json:"logFile"`
	LogLevel      string `json:"logLevel"`
	ReminderColor string `json:"reminderColor"`
	Mouse         bool   `json:"mouse"`
	Theme         string `json:"theme"`
}

// New returns a viper instance with remcal's defaults, search paths and
// environment binding. Extra paths are searched before the defaults.
func New(paths ...string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyReminderColor, reminder.DefaultColor)
	v.SetDefault(KeyMouse, true)
	v.SetDefault(KeyTheme, "auto")

	v.SetConfigName(".remcal") // .yaml is implicit
	v.SetEnvPrefix("REMCAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, p := range paths {
		if p != "" {
			v.AddConfigPath(p)
		}
	}
	if override := os.Getenv("REMCAL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return v
}

// Load reads the config file, if any, and resolves the settings. A missing
// file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = New()
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	logFile := v.GetString(KeyLogFile)
	if logFile != "" {
		expanded, err := homedir.Expand(logFile)
		if err != nil {
			return nil, fmt.Errorf("config: expanding %s: %w", KeyLogFile, err)
		}
		logFile = expanded
	}
	color := strings.TrimSpace(v.GetString(KeyReminderColor))
	if color == "" {
		color = reminder.DefaultColor
	}
	return &Config{
		LogFile:       logFile,
		LogLevel:      v.GetString(KeyLogLevel),
		ReminderColor: color,
		Mouse:         v.GetBool(KeyMouse),
		Theme:         v.GetString(KeyTheme),
	}, nil
}
