package xdgicons

import (
	"errors"
	"fmt"
)

var (
	// No desktop config file was found.
	ErrConfigNotFound = errors.New("config file not found")

	// Desktop config files exist but none names an icon theme.
	ErrConfigMissingThemeName = errors.New("config file has no icon theme name")
)

// ThemeNameProvider supplies the name of the icon theme to use.
type ThemeNameProvider interface {
	ThemeName() (string, error)
}

// FixedTheme provides itself as the theme name.
type FixedTheme string

func (t FixedTheme) ThemeName() (string, error) {
	if t == "" {
		return "", ErrConfigMissingThemeName
	}
	return string(t), nil
}

func (t FixedTheme) String() string {
	return "fixed"
}

// ThemeNameFunc adapts a function to a ThemeNameProvider.
type ThemeNameFunc func() (string, error)

func (f ThemeNameFunc) ThemeName() (string, error) {
	return f()
}

func (f ThemeNameFunc) String() string {
	return "custom"
}

// themeNameFrom asks provider for a theme name and wraps any failure in
// a ProviderError.
func themeNameFrom(provider ThemeNameProvider) (string, error) {
	name := providerName(provider)
	if provider == nil {
		return "", &ProviderError{Provider: name, Err: errors.New("no provider")}
	}

	theme, err := provider.ThemeName()
	if err != nil {
		return "", &ProviderError{Provider: name, Err: err}
	}
	if theme == "" {
		return "", &ProviderError{Provider: name, Err: ErrConfigMissingThemeName}
	}

	return theme, nil
}

func providerName(provider ThemeNameProvider) string {
	if s, ok := provider.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", provider)
}

// DefaultTheme returns the icon theme configured for the desktop, asking
// GNOME, GTK and KDE in turn, or hicolor if none of them names one.
func DefaultTheme() string {
	providers := []ThemeNameProvider{
		GnomeProvider{},
		GTKProvider{},
		KDEProvider{},
	}

	for _, provider := range providers {
		if theme, err := themeNameFrom(provider); err == nil {
			return theme
		}
	}

	return hicolorTheme
}
