package xdgicons

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// IconLookup finds themed icons. It is safe for concurrent use; every
// call sees one consistent configuration even while setters run.
type IconLookup struct {
	mu            sync.RWMutex
	theme         string
	fallbackTheme string
	cache         *ThemeCache
	logger        *slog.Logger

	searchPaths []string // only used while applying options
}

type Option func(*IconLookup)

// WithTheme sets the primary theme. Defaults to DefaultTheme().
func WithTheme(theme string) Option {
	return func(il *IconLookup) {
		il.theme = theme
	}
}

// WithFallbackTheme sets the theme searched after the primary theme's
// inheritance tree. Defaults to hicolor.
func WithFallbackTheme(theme string) Option {
	return func(il *IconLookup) {
		il.fallbackTheme = theme
	}
}

// WithSearchPaths sets the directories searched for themes, in priority
// order. Defaults to SystemSearchPaths().
func WithSearchPaths(paths ...string) Option {
	return func(il *IconLookup) {
		il.searchPaths = paths
	}
}

// WithLogger sets the logger used to report unreadable themes.
func WithLogger(logger *slog.Logger) Option {
	return func(il *IconLookup) {
		il.logger = logger
	}
}

func NewIconLookup(opts ...Option) *IconLookup {
	il := &IconLookup{
		fallbackTheme: hicolorTheme,
	}

	for _, opt := range opts {
		opt(il)
	}

	if il.logger == nil {
		il.logger = slog.New(slog.DiscardHandler)
	}
	if il.theme == "" {
		il.theme = DefaultTheme()
	}
	if il.searchPaths == nil {
		il.searchPaths = SystemSearchPaths()
	}

	il.cache = NewThemeCache(il.searchPaths, il.logger)
	il.searchPaths = nil

	return il
}

// NewIconLookupFromProvider uses the theme name reported by provider as
// the primary theme.
func NewIconLookupFromProvider(provider ThemeNameProvider, opts ...Option) (*IconLookup, error) {
	theme, err := themeNameFrom(provider)
	if err != nil {
		return nil, err
	}

	return NewIconLookup(append(opts, WithTheme(theme))...), nil
}

func (il *IconLookup) snapshot() (theme, fallbackTheme string, cache *ThemeCache) {
	il.mu.RLock()
	defer il.mu.RUnlock()

	return il.theme, il.fallbackTheme, il.cache
}

// Lookup finds iconName in the current theme, the themes it inherits
// from, then the fallback theme and its parents. The first theme holding
// any file for the icon wins.
func (il *IconLookup) Lookup(iconName string) (*Icon, error) {
	theme, fallbackTheme, cache := il.snapshot()

	if iconName == "" {
		return nil, iconNotFound(iconName)
	}

	queue := []string{theme, fallbackTheme}
	searched := make(map[string]bool)

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		// Inherits may form cycles
		if name == "" || searched[name] {
			continue
		}
		searched[name] = true

		chain := cache.Theme(name)
		if icon, ok := chain.findIcon(iconName); ok {
			il.logger.Debug("found icon", "icon", iconName, "theme", name, "files", len(icon.files))
			return icon, nil
		}

		// a theme's own parents go before anything queued after it
		queue = append(chain.ParentNames(), queue...)
	}

	return nil, iconNotFound(iconName)
}

// Finds a specified icon with required size and scale
func (il *IconLookup) FindIcon(iconName string, size, scale uint16) (IconFile, error) {
	icon, err := il.Lookup(iconName)
	if err != nil {
		return IconFile{}, err
	}

	return icon.FileForSizeScaled(size, scale), nil
}

// Finds the first available icon in iconList with the required size and scale.
// Searches in the order of listing.
func (il *IconLookup) FindBestIcon(iconList []string, size, scale uint16) (IconFile, error) {
	for _, iconName := range iconList {
		file, err := il.FindIcon(iconName, size, scale)
		if err == nil {
			return file, nil
		}
	}

	return IconFile{}, iconNotFound(strings.Join(iconList, ", "))
}

// ThemeExists reports whether theme is present under any search path.
func (il *IconLookup) ThemeExists(theme string) bool {
	if theme == "" {
		return false
	}

	_, _, cache := il.snapshot()
	return !cache.Theme(theme).Empty()
}

// Chain returns the resolved chain of theme, or ErrThemeNotFound if it is
// present under no search path.
func (il *IconLookup) Chain(theme string) (*ThemeChain, error) {
	if theme == "" {
		return nil, themeNotFound(theme)
	}

	_, _, cache := il.snapshot()

	chain := cache.Theme(theme)
	if chain.Empty() {
		return nil, themeNotFound(theme)
	}
	return chain, nil
}

// returns current theme
func (il *IconLookup) Theme() string {
	il.mu.RLock()
	defer il.mu.RUnlock()
	return il.theme
}

// returns fallback theme
func (il *IconLookup) FallbackTheme() string {
	il.mu.RLock()
	defer il.mu.RUnlock()
	return il.fallbackTheme
}

// returns the directories searched for themes
func (il *IconLookup) SearchPaths() []string {
	_, _, cache := il.snapshot()
	return cache.SearchPaths()
}

// SetTheme changes the primary theme. Cached chains stay valid.
func (il *IconLookup) SetTheme(theme string) {
	il.mu.Lock()
	defer il.mu.Unlock()
	il.theme = theme
}

// UpdateTheme sets the primary theme to the name reported by provider.
func (il *IconLookup) UpdateTheme(provider ThemeNameProvider) error {
	theme, err := themeNameFrom(provider)
	if err != nil {
		return err
	}

	il.SetTheme(theme)
	return nil
}

// SetFallbackTheme changes the fallback theme and drops cached chains.
func (il *IconLookup) SetFallbackTheme(theme string) {
	il.mu.Lock()
	defer il.mu.Unlock()

	if il.fallbackTheme == theme {
		return
	}
	il.fallbackTheme = theme
	il.cache.Invalidate()
}

// SetSearchPaths replaces the directories searched for themes. Chains
// cached for the previous paths are discarded.
func (il *IconLookup) SetSearchPaths(paths ...string) {
	il.mu.Lock()
	defer il.mu.Unlock()

	il.cache = NewThemeCache(paths, il.logger)
}

// Invalidate drops every cached chain so the next lookup re-reads themes
// from disk.
func (il *IconLookup) Invalidate() {
	_, _, cache := il.snapshot()
	cache.Invalidate()
}

// Warm resolves the chains of the given themes and of every theme they
// inherit from, one goroutine per theme. With no themes it warms the
// current and fallback themes.
func (il *IconLookup) Warm(ctx context.Context, themes ...string) error {
	theme, fallbackTheme, cache := il.snapshot()
	if len(themes) == 0 {
		themes = []string{theme, fallbackTheme}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range themes {
		g.Go(func() error {
			return warmTheme(ctx, cache, name)
		})
	}

	return g.Wait()
}

func warmTheme(ctx context.Context, cache *ThemeCache, theme string) error {
	queue := []string{theme}
	seen := make(map[string]bool)

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := queue[0]
		queue = queue[1:]
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		queue = append(queue, cache.Theme(name).ParentNames()...)
	}

	return nil
}
