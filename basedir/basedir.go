// Package basedir locates the directories uf reads its configuration from.
//
// Unlike the [XDG Base Directory Specification], the configuration directory is always
// $HOME/.config; $XDG_CONFIG_HOME is not consulted.
//
// [XDG Base Directory Specification]: https://specifications.freedesktop.org/basedir-spec/0.8/
package basedir

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigFileName is the name of uf's configuration file inside [ConfigHome].
const ConfigFileName = "uf.conf"

// ErrNoHomeDirectory is returned when $HOME is unset or empty.
var ErrNoHomeDirectory = errors.New("HOME environment variable not set")

// Home returns the value of $HOME.
func Home() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", ErrNoHomeDirectory
	}

	return home, nil
}

// ConfigHome returns $HOME/.config.
func ConfigHome() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config"), nil
}

// ConfigFile returns the path of uf's configuration file, $HOME/.config/uf.conf.
// Existence of the file is not checked.
func ConfigFile() (string, error) {
	configHome, err := ConfigHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(configHome, ConfigFileName), nil
}
