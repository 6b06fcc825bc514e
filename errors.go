package xdgicons

import (
	"errors"
	"fmt"
)

var (
	// Theme content path exists but is not a directory, or does not exist.
	ErrNotADirectory = errors.New("not a directory")

	// Theme directory has no index.theme file.
	ErrIndexNotFound = errors.New("index.theme not found")

	// index.theme could not be parsed.
	ErrMalformedIndex = errors.New("malformed index.theme")

	// index.theme lists no directory with a valid size.
	ErrEmptyIndex = errors.New("index.theme has no valid directories")

	// Theme is not present under any search path.
	ErrThemeNotFound = errors.New("theme not found")

	// Icon is not present in the theme, its parents or the fallback theme.
	ErrIconNotFound = errors.New("icon not found")

	// Theme name provider failed.
	ErrProvider = errors.New("theme name provider failed")
)

// IndexError reports why a theme directory under one search path
// could not be loaded. Err is one of ErrNotADirectory, ErrIndexNotFound,
// ErrMalformedIndex or ErrEmptyIndex.
type IndexError struct {
	Path string
	Err  error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// ProviderError wraps a failure of a ThemeNameProvider.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is makes every ProviderError match ErrProvider.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

func iconNotFound(iconName string) error {
	return fmt.Errorf("%w: %q", ErrIconNotFound, iconName)
}

func themeNotFound(theme string) error {
	return fmt.Errorf("%w: %q", ErrThemeNotFound, theme)
}
