package xdgicons

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/ini.v1"
)

// GTKProvider reads gtk-icon-theme-name from the [Settings] section of
// the GTK settings.ini.
type GTKProvider struct {
	// Settings file relative to a config dir. Defaults to
	// gtk-3.0/settings.ini
	File string

	// Directories searched for File. Defaults to $XDG_CONFIG_HOME
	// followed by $XDG_CONFIG_DIRS.
	ConfigDirs []string
}

func (p GTKProvider) ThemeName() (string, error) {
	file := p.File
	if file == "" {
		file = filepath.Join("gtk-3.0", "settings.ini")
	}
	return themeFromConfig(p.ConfigDirs, file, "Settings", "gtk-icon-theme-name")
}

func (p GTKProvider) String() string {
	return "gtk"
}

// KDEProvider reads Theme from the [Icons] section of kdeglobals.
type KDEProvider struct {
	// Directories searched for kdeglobals. Defaults to $XDG_CONFIG_HOME
	// followed by $XDG_CONFIG_DIRS.
	ConfigDirs []string
}

func (p KDEProvider) ThemeName() (string, error) {
	return themeFromConfig(p.ConfigDirs, "kdeglobals", "Icons", "Theme")
}

func (p KDEProvider) String() string {
	return "kde"
}

// themeFromConfig returns the first non-empty section/key value found in
// file under configDirs.
func themeFromConfig(configDirs []string, file, section, key string) (string, error) {
	if configDirs == nil {
		configDirs = append([]string{xdg.ConfigHome}, xdg.ConfigDirs...)
	}

	found := false
	for _, dir := range configDirs {
		configPath := filepath.Join(dir, file)
		if !fileExists(configPath) {
			continue
		}
		found = true

		config, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, configPath)
		if err != nil {
			return "", fmt.Errorf("error reading %s: %w", configPath, err)
		}

		sec, err := config.GetSection(section)
		if err != nil || !sec.HasKey(key) {
			continue
		}
		if theme := strings.TrimSpace(sec.Key(key).String()); theme != "" {
			return theme, nil
		}
	}

	if !found {
		return "", fmt.Errorf("%w: %s", ErrConfigNotFound, file)
	}
	return "", ErrConfigMissingThemeName
}

var gnomeIconThemeKey = []string{
	"org",
	"gnome",
	"desktop",
	"interface",
	"icon-theme",
}

// GnomeProvider asks dconf, then gsettings, for the GNOME icon theme.
type GnomeProvider struct {
	// runs a command and returns its stdout, exec.Command when nil
	run func(name string, args ...string) (string, error)
}

func (p GnomeProvider) ThemeName() (string, error) {
	run := p.run
	if run == nil {
		run = runCommand
	}

	output, dconfErr := run("dconf", "read", "/"+strings.Join(gnomeIconThemeKey, "/"))
	if theme := cleanDconfOutput(output); theme != "" {
		return theme, nil
	}

	basenameIndex := len(gnomeIconThemeKey) - 1
	gsettingsSchema := strings.Join(gnomeIconThemeKey[:basenameIndex], ".")
	gsettingsKey := gnomeIconThemeKey[basenameIndex]

	output, gsettingsErr := run("gsettings", "get", gsettingsSchema, gsettingsKey)
	if theme := cleanDconfOutput(output); theme != "" {
		return theme, nil
	}

	if err := errors.Join(dconfErr, gsettingsErr); err != nil {
		return "", err
	}
	return "", ErrConfigMissingThemeName
}

func (p GnomeProvider) String() string {
	return "gnome"
}

func runCommand(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	outputBytes := new(bytes.Buffer)
	cmd.Stdout = outputBytes
	err := cmd.Run()
	return outputBytes.String(), err
}

func cleanDconfOutput(raw string) string {
	return strings.TrimPrefix(strings.TrimSuffix(strings.Trim(raw, "\n "), "'"), "'")
}
