package xdgicons

import "slices"

// Type of an icon file, listed in lookup priority order.
type FileType int

const (
	PNG FileType = iota
	SVG
	XPM
)

// fileTypes is the order in which extensions are probed inside a directory.
var fileTypes = [...]FileType{PNG, SVG, XPM}

// Extension returns the file extension without the leading dot.
func (t FileType) Extension() string {
	switch t {
	case PNG:
		return "png"
	case SVG:
		return "svg"
	case XPM:
		return "xpm"
	}
	return ""
}

func (t FileType) String() string {
	switch t {
	case PNG:
		return "PNG"
	case SVG:
		return "SVG"
	case XPM:
		return "XPM"
	}
	return "unknown"
}

// A single icon file on disk
type IconFile struct {
	// Directory the file was found in. Shared by every file
	// found under the same theme directory, never modify it.
	Dir *DirInfo

	// Full path of the icon file
	Path string

	// Format of the file, derived from its extension
	Type FileType
}

// Found Icon
//
// An Icon always holds at least one file. Use SelectFile or the
// FileForSize helpers to pick the one that fits a target size.
type Icon struct {
	name  string
	theme string
	files []IconFile
}

// NewIcon returns an Icon, or false if name, theme or files is empty.
func NewIcon(name, theme string, files []IconFile) (*Icon, bool) {
	if name == "" || theme == "" || len(files) == 0 {
		return nil, false
	}

	return &Icon{
		name:  name,
		theme: theme,
		files: slices.Clone(files),
	}, true
}

// Short name of the icon
func (i *Icon) Name() string {
	return i.name
}

// Name of the theme the icon was found in
func (i *Icon) Theme() string {
	return i.theme
}

// Every file found for the icon in that theme, in lookup order.
func (i *Icon) Files() []IconFile {
	files := make([]IconFile, len(i.files))
	copy(files, i.files)
	return files
}
