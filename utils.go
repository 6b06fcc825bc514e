package xdgicons

import (
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
)

const pixmapDir = "/usr/share/pixmaps"

// SystemSearchPaths returns the icon theme base directories in lookup
// order: ~/.icons, $XDG_DATA_HOME/icons, $XDG_DATA_DIRS/icons and
// /usr/share/pixmaps.
func SystemSearchPaths() (baseDirs []string) {
	if xdg.Home != "" {
		baseDirs = append(baseDirs, filepath.Join(xdg.Home, ".icons"))
	}

	for _, dataDir := range append([]string{xdg.DataHome}, xdg.DataDirs...) {
		if dataDir == "" {
			continue
		}
		baseDirs = append(baseDirs, filepath.Join(dataDir, "icons"))
	}

	baseDirs = append(baseDirs, pixmapDir)
	return compactPaths(baseDirs)
}

// compactPaths drops repeated paths, keeping the first occurrence.
func compactPaths(paths []string) []string {
	var out []string
	for _, p := range paths {
		p = filepath.Clean(p)
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}
