package xdgicons

import (
	"errors"
	"log/slog"
	"path/filepath"
	"slices"
)

const hicolorTheme = "hicolor"

// ThemeChain is every on-disk occurrence of one theme name across the
// search paths, merged, along with the themes it inherits from.
type ThemeChain struct {
	name    string
	indexes []*ThemeIndex
	parents []string
	cache   *ThemeCache
}

// findThemeChain loads name from each search path. Directories that fail
// to load are logged and skipped; a theme split across several search
// paths contributes all of them.
func findThemeChain(cache *ThemeCache, name string, searchPaths []string) *ThemeChain {
	chain := &ThemeChain{
		name:  name,
		cache: cache,
	}

	for _, searchPath := range searchPaths {
		index, parents, err := LoadThemeIndex(filepath.Join(searchPath, name))
		if err != nil {
			if errors.Is(err, ErrNotADirectory) {
				cache.logger.Debug("skipping theme directory", "theme", name, "error", err)
			} else {
				cache.logger.Warn("skipping theme directory", "theme", name, "error", err)
			}
			continue
		}

		chain.indexes = append(chain.indexes, index)
		chain.parents = appendUnique(chain.parents, parents...)
	}

	// hicolor must always be searched, even if not listed in Inherits
	chain.parents = appendUnique(chain.parents, hicolorTheme)

	cache.logger.Debug("resolved theme chain",
		slog.String("theme", name),
		slog.Int("indexes", len(chain.indexes)),
		slog.Any("parents", chain.parents),
	)

	return chain
}

// Name of the theme
func (c *ThemeChain) Name() string {
	return c.name
}

// Empty reports whether the theme was found under no search path.
func (c *ThemeChain) Empty() bool {
	return len(c.indexes) == 0
}

// Indexes returns the loaded index of each search path the theme was
// found under, in search path order.
func (c *ThemeChain) Indexes() []*ThemeIndex {
	return slices.Clone(c.indexes)
}

// ParentNames returns the inherited theme names, always ending
// with hicolor unless it was declared earlier.
func (c *ThemeChain) ParentNames() []string {
	return slices.Clone(c.parents)
}

// Parents resolves the chains of the inherited themes through the cache
// that built this chain.
func (c *ThemeChain) Parents() []*ThemeChain {
	parents := make([]*ThemeChain, 0, len(c.parents))
	for _, name := range c.parents {
		parents = append(parents, c.cache.Theme(name))
	}
	return parents
}

// IconFiles returns the files named iconName across every index of the
// chain, in index order.
func (c *ThemeChain) IconFiles(iconName string) []IconFile {
	var files []IconFile
	for _, index := range c.indexes {
		files = append(files, index.IconFiles(iconName)...)
	}
	return files
}

// findIcon builds an Icon from the chain's files, if there are any.
func (c *ThemeChain) findIcon(iconName string) (*Icon, bool) {
	if c.Empty() {
		return nil, false
	}
	return NewIcon(iconName, c.name, c.IconFiles(iconName))
}
