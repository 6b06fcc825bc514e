package xdgicons

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	indexFileName    = "index.theme"
	iconThemeSection = "Icon Theme"
)

// One theme's contribution at a single search path.
type ThemeIndex struct {
	// Directory holding index.theme, e.g. /usr/share/icons/Adwaita
	ContentDir string

	// Valid size directories in index.theme order. Never empty.
	Dirs []*DirInfo
}

// LoadThemeIndex reads contentDir/index.theme. It returns the index and
// the parent theme names declared by its Inherits key.
func LoadThemeIndex(contentDir string) (*ThemeIndex, []string, error) {
	stat, err := os.Stat(contentDir)
	if err != nil || !stat.IsDir() {
		return nil, nil, &IndexError{Path: contentDir, Err: ErrNotADirectory}
	}

	indexPath := filepath.Join(contentDir, indexFileName)
	stat, err = os.Stat(indexPath)
	if err != nil || !stat.Mode().IsRegular() {
		return nil, nil, &IndexError{Path: indexPath, Err: ErrIndexNotFound}
	}

	index, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, indexPath)
	if err != nil {
		return nil, nil, &IndexError{Path: indexPath, Err: fmt.Errorf("%w: %w", ErrMalformedIndex, err)}
	}

	theme := &ThemeIndex{ContentDir: contentDir}
	var parents []string

	for _, section := range index.Sections() {
		switch section.Name() {
		case ini.DefaultSection:
			continue
		case iconThemeSection:
			if section.HasKey("Inherits") {
				parents = appendUnique(parents, splitThemeList(section.Key("Inherits").String())...)
			}
		default:
			if dir, ok := parseDirInfo(section.Name(), section); ok {
				theme.Dirs = append(theme.Dirs, dir)
			}
		}
	}

	if len(theme.Dirs) == 0 {
		return nil, nil, &IndexError{Path: indexPath, Err: ErrEmptyIndex}
	}

	return theme, parents, nil
}

// IconFiles returns the files named iconName in every directory of the
// index, probing extensions in PNG, SVG, XPM order.
func (t *ThemeIndex) IconFiles(iconName string) []IconFile {
	if iconName == "" {
		return nil
	}

	var files []IconFile
	for _, dir := range t.Dirs {
		for _, fileType := range fileTypes {
			iconPath := filepath.Join(t.ContentDir, dir.Path, iconName+"."+fileType.Extension())
			if fileExists(iconPath) {
				files = append(files, IconFile{
					Dir:  dir,
					Path: iconPath,
					Type: fileType,
				})
			}
		}
	}

	return files
}

func fileExists(p string) bool {
	stat, err := os.Stat(p)
	if err != nil {
		return false
	}
	return !stat.IsDir()
}

// splitThemeList splits a comma separated theme list, dropping blanks.
func splitThemeList(raw string) []string {
	var names []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func appendUnique(list []string, names ...string) []string {
	for _, name := range names {
		if !slices.Contains(list, name) {
			list = append(list, name)
		}
	}
	return list
}
