package xdgicons

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testIcon builds an Icon with one PNG file per directory.
func testIcon(t *testing.T, dirs ...*DirInfo) *Icon {
	t.Helper()

	var files []IconFile
	for _, dir := range dirs {
		files = append(files, IconFile{
			Dir:  dir,
			Path: fmt.Sprintf("/icons/%dx%d@%d/%s/icon.png", dir.Size, dir.Size, dir.Scale, dir.Type),
			Type: PNG,
		})
	}

	icon, ok := NewIcon("icon", "theme", files)
	require.True(t, ok)
	return icon
}

func fixed(size, scale uint16) *DirInfo {
	return &DirInfo{Size: size, Scale: scale, Type: Fixed, MinSize: size, MaxSize: size, Threshold: 2}
}

func threshold(size, scale, threshold uint16) *DirInfo {
	return &DirInfo{Size: size, Scale: scale, Type: Threshold, MinSize: size, MaxSize: size, Threshold: threshold}
}

func TestFileForSizeScaled(t *testing.T) {
	tests := []struct {
		name      string
		dirs      []*DirInfo
		size      uint16
		scale     uint16
		wantSize  uint16
		wantScale uint16
	}{
		{
			name:     "exact match",
			dirs:     []*DirInfo{fixed(16, 1), fixed(32, 1), fixed(48, 1)},
			size:     32,
			scale:    1,
			wantSize: 32, wantScale: 1,
		},
		{
			name:     "threshold window",
			dirs:     []*DirInfo{fixed(16, 1), threshold(48, 1, 4)},
			size:     46,
			scale:    1,
			wantSize: 48, wantScale: 1,
		},
		{
			name:     "fixed dirs have no window",
			dirs:     []*DirInfo{fixed(16, 1), fixed(48, 1)},
			size:     47,
			scale:    1,
			wantSize: 48, wantScale: 1,
		},
		{
			name:     "prefers upscale source over downscale",
			dirs:     []*DirInfo{fixed(16, 1), fixed(48, 1)},
			size:     32,
			scale:    1,
			wantSize: 48, wantScale: 1,
		},
		{
			name:     "smallest of the bigger sizes",
			dirs:     []*DirInfo{fixed(256, 1), fixed(64, 1), fixed(128, 1), fixed(16, 1)},
			size:     32,
			scale:    1,
			wantSize: 64, wantScale: 1,
		},
		{
			name:     "largest when all are smaller",
			dirs:     []*DirInfo{fixed(16, 1), fixed(32, 1)},
			size:     64,
			scale:    1,
			wantSize: 32, wantScale: 1,
		},
		{
			name:     "requested scale first",
			dirs:     []*DirInfo{fixed(32, 1), fixed(16, 2)},
			size:     16,
			scale:    2,
			wantSize: 16, wantScale: 2,
		},
		{
			name:     "unscaled at size times scale",
			dirs:     []*DirInfo{fixed(16, 1), fixed(32, 1), fixed(48, 1)},
			size:     16,
			scale:    2,
			wantSize: 32, wantScale: 1,
		},
		{
			name:     "unscaled bigger than size times scale",
			dirs:     []*DirInfo{fixed(16, 1), fixed(48, 1)},
			size:     16,
			scale:    2,
			wantSize: 48, wantScale: 1,
		},
		{
			name:     "ignores scale as a last resort",
			dirs:     []*DirInfo{fixed(24, 3), fixed(16, 3)},
			size:     16,
			scale:    2,
			wantSize: 16, wantScale: 3,
		},
		{
			name:     "threshold window does not underflow",
			dirs:     []*DirInfo{threshold(1, 1, 4), fixed(8, 1)},
			size:     2,
			scale:    1,
			wantSize: 1, wantScale: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := testIcon(t, tt.dirs...).FileForSizeScaled(tt.size, tt.scale)
			require.NotNil(t, file.Dir)
			assert.Equal(t, tt.wantSize, file.Dir.Size)
			assert.Equal(t, tt.wantScale, file.Dir.Scale)
		})
	}
}

func TestFileForSizeThresholdPicksFirstInWindow(t *testing.T) {
	first := threshold(20, 1, 4)
	second := threshold(22, 1, 4)

	file := testIcon(t, fixed(64, 1), first, second).FileForSize(18)
	assert.Same(t, first, file.Dir)
}

func TestFileForSizeTies(t *testing.T) {
	a, b := fixed(48, 1), fixed(48, 1)

	// smallest bigger: first wins
	assert.Same(t, a, testIcon(t, a, b).FileForSize(32).Dir)

	// biggest available: last wins
	assert.Same(t, b, testIcon(t, a, b).FileForSize(64).Dir)
}

func TestSelectFileFilter(t *testing.T) {
	dir16, dir32 := fixed(16, 1), fixed(32, 1)
	icon, ok := NewIcon("icon", "theme", []IconFile{
		{Dir: dir32, Path: "/32/icon.png", Type: PNG},
		{Dir: dir16, Path: "/16/icon.svg", Type: SVG},
	})
	require.True(t, ok)

	onlySVG := func(f IconFile) bool { return f.Type == SVG }

	file, ok := icon.SelectFile(32, 1, onlySVG)
	require.True(t, ok)
	assert.Equal(t, "/16/icon.svg", file.Path)

	_, ok = icon.SelectFile(32, 1, func(IconFile) bool { return false })
	assert.False(t, ok)

	file, ok = icon.FileForSizeFiltered(32, onlySVG)
	require.True(t, ok)
	assert.Equal(t, SVG, file.Type)
}

func TestSelectFileNeverFailsWithoutFilter(t *testing.T) {
	icon := testIcon(t, fixed(24, 3))

	for _, size := range []uint16{0, 1, 24, 1000, 65535} {
		for _, scale := range []uint16{0, 1, 2, 3, 65535} {
			_, ok := icon.SelectFile(size, scale, nil)
			assert.True(t, ok, "size %d scale %d", size, scale)
		}
	}
}

func TestNewIconCopiesFiles(t *testing.T) {
	files := []IconFile{{Dir: &DirInfo{Size: 16, Scale: 1}, Path: "/a/16.png"}}

	icon, ok := NewIcon("icon", "theme", files)
	require.True(t, ok)

	files[0].Path = "/changed.png"
	assert.Equal(t, "/a/16.png", icon.Files()[0].Path)
}

func TestNewIconRequiresEverything(t *testing.T) {
	files := []IconFile{{Dir: fixed(16, 1), Path: "/x.png", Type: PNG}}

	_, ok := NewIcon("", "theme", files)
	assert.False(t, ok)
	_, ok = NewIcon("icon", "", files)
	assert.False(t, ok)
	_, ok = NewIcon("icon", "theme", nil)
	assert.False(t, ok)

	icon, ok := NewIcon("icon", "theme", files)
	require.True(t, ok)
	assert.Equal(t, "icon", icon.Name())
	assert.Equal(t, "theme", icon.Theme())
	assert.Equal(t, files, icon.Files())
}
