package xdgicons

import (
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// The type of icon sizes for the icons in a directory.
type SizeType int

const (
	Threshold SizeType = iota
	Fixed
	Scalable
)

// parseSizeType maps the Type key of a directory section.
// Anything unrecognised is treated as Threshold.
func parseSizeType(s string) SizeType {
	switch s {
	case "Fixed":
		return Fixed
	case "Scalable":
		return Scalable
	}
	return Threshold
}

func (t SizeType) String() string {
	switch t {
	case Fixed:
		return "Fixed"
	case Scalable:
		return "Scalable"
	}
	return "Threshold"
}

// Common properties of icons listed under a sub-directory
//
// Sub-directory here is the inner-most directory, directly
// under which there are icon files
type DirInfo struct {
	// Path of the directory relative to the theme directory,
	// as named by its section in index.theme.
	Path string

	// Nominal (unscaled) size of the icons in this directory.
	Size uint16

	// Target scale of of the icons in this directory.
	// Defaults to the value 1 if not present.
	Scale uint16

	// The type of icon sizes for the icons in this directory.
	//
	// If not specified, the default is Threshold.
	Type SizeType

	// Specifies the maximum (unscaled) size that the icons
	// in this directory can be scaled to.
	//
	// Defaults to the value of Size if not present.
	MaxSize uint16

	// Specifies the minimum (unscaled) size that the icons
	// in this directory can be scaled to.
	//
	// Defaults to the value of Size if not present.
	MinSize uint16

	// The icons in this directory can be used if the size
	// differ at most this much from the desired (unscaled) size.
	//
	// Defaults to 2 if not present.
	Threshold uint16

	// The context the icon is normally used in, e.g. "Actions".
	Context string
}

// parseDirInfo builds the DirInfo described by a directory section.
// Numeric keys that fail to parse keep their default. It reports false
// when the directory has no usable size.
func parseDirInfo(dirPath string, section *ini.Section) (*DirInfo, bool) {
	info := &DirInfo{
		Path:      dirPath,
		Size:      uintKey(section, "Size", 0),
		Scale:     1,
		Type:      Threshold,
		Threshold: 2,
	}
	if info.Size == 0 {
		return nil, false
	}

	info.Scale = uintKey(section, "Scale", info.Scale)
	info.MinSize = uintKey(section, "MinSize", info.Size)
	info.MaxSize = uintKey(section, "MaxSize", info.Size)
	info.Threshold = uintKey(section, "Threshold", info.Threshold)

	if section.HasKey("Type") {
		info.Type = parseSizeType(section.Key("Type").String())
	}
	if section.HasKey("Context") {
		info.Context = section.Key("Context").String()
	}

	return info, true
}

func uintKey(section *ini.Section, name string, def uint16) uint16 {
	if !section.HasKey(name) {
		return def
	}

	// decimal only: leading zeros are not octal and 0x is rejected
	n, err := strconv.ParseUint(strings.TrimSpace(section.Key(name).String()), 10, 16)
	if err != nil {
		return def
	}
	return uint16(n)
}
