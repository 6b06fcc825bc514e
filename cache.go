package xdgicons

import (
	"log/slog"
	"slices"
	"sync"
)

// ThemeCache lazily builds and keeps one ThemeChain per theme name for a
// fixed list of search paths. It is safe for concurrent use.
//
// Concurrent first requests for the same theme may each build a chain;
// only one is stored and all callers get the stored one.
type ThemeCache struct {
	searchPaths []string
	chains      sync.Map // theme name -> *ThemeChain
	logger      *slog.Logger
}

// NewThemeCache returns an empty cache searching searchPaths in order.
// A nil logger discards log output.
func NewThemeCache(searchPaths []string, logger *slog.Logger) *ThemeCache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ThemeCache{
		searchPaths: slices.Clone(searchPaths),
		logger:      logger,
	}
}

// SearchPaths returns the paths searched for themes.
func (tc *ThemeCache) SearchPaths() []string {
	return slices.Clone(tc.searchPaths)
}

// Theme returns the chain for name, reading the search paths only the
// first time a name is requested.
func (tc *ThemeCache) Theme(name string) *ThemeChain {
	if chain, ok := tc.chains.Load(name); ok {
		return chain.(*ThemeChain)
	}

	chain := findThemeChain(tc, name, tc.searchPaths)

	actual, _ := tc.chains.LoadOrStore(name, chain)
	return actual.(*ThemeChain)
}

// Invalidate drops every cached chain.
func (tc *ThemeCache) Invalidate() {
	tc.chains.Clear()
}

// Len returns the number of cached chains.
func (tc *ThemeCache) Len() int {
	n := 0
	tc.chains.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
