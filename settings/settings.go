// Package settings reads uf's runtime settings from the environment.
//
// Settings are distinct from the rule file parsed by package config: they control where the rule
// file lives, how MIME types are detected, and how much is logged.
//
//	UF_CONFIG        path of the rule file, default $HOME/.config/uf.conf
//	UF_FILE_COMMAND  file(1) executable used for MIME detection, default file
//	UF_LOG_LEVEL     zerolog level, default warn
//	UF_LOG_FILE      also log to $XDG_STATE_HOME/uf/uf.log when true
package settings

import (
	"fmt"
	"github.com/MatthiasKunnen/uf/basedir"
	"github.com/MatthiasKunnen/uf/mimetype"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"strings"
)

const envPrefix = "UF_"

type Settings struct {
	Config      string `koanf:"config"`
	FileCommand string `koanf:"file_command"`
	LogLevel    string `koanf:"log_level"`
	LogFile     bool   `koanf:"log_file"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"config":       "",
		"file_command": mimetype.DefaultFileCommand,
		"log_level":    "warn",
		"log_file":     false,
	}
}

// Load returns the defaults overridden by any UF_ environment variables.
func Load() (Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load default settings: %w", err)
	}

	// Empty variables are skipped so that UF_LOG_LEVEL= keeps the default.
	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key string, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}

		return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
	}), nil)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load settings from environment: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return s, nil
}

// ConfigPath returns the rule file location: $UF_CONFIG if set, $HOME/.config/uf.conf otherwise.
func (s Settings) ConfigPath() (string, error) {
	if s.Config != "" {
		return s.Config, nil
	}

	return basedir.ConfigFile()
}

// Detector returns the MIME detector described by the settings.
func (s Settings) Detector() mimetype.Detector {
	return mimetype.FileCommand{Name: s.FileCommand}
}
