package xdgicons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func section(t *testing.T, body string) *ini.Section {
	t.Helper()

	file, err := ini.Load([]byte("[dir]\n" + body))
	require.NoError(t, err)
	return file.Section("dir")
}

func TestParseDirInfo(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		want  *DirInfo
		valid bool
	}{
		{
			name: "defaults",
			body: "Size=48",
			want: &DirInfo{
				Path: "dir", Size: 48, Scale: 1, Type: Threshold,
				MinSize: 48, MaxSize: 48, Threshold: 2,
			},
			valid: true,
		},
		{
			name: "all keys",
			body: "Size=16\nScale=2\nType=Scalable\nMinSize=8\nMaxSize=512\nThreshold=4\nContext=Actions",
			want: &DirInfo{
				Path: "dir", Size: 16, Scale: 2, Type: Scalable,
				MinSize: 8, MaxSize: 512, Threshold: 4, Context: "Actions",
			},
			valid: true,
		},
		{
			name: "bad numbers keep defaults",
			body: "Size=32\nScale=two\nMinSize=-1\nMaxSize=99999999\nThreshold=x",
			want: &DirInfo{
				Path: "dir", Size: 32, Scale: 1, Type: Threshold,
				MinSize: 32, MaxSize: 32, Threshold: 2,
			},
			valid: true,
		},
		{
			name: "unknown type is threshold",
			body: "Size=24\nType=Bogus",
			want: &DirInfo{
				Path: "dir", Size: 24, Scale: 1, Type: Threshold,
				MinSize: 24, MaxSize: 24, Threshold: 2,
			},
			valid: true,
		},
		{
			name: "leading zeros are decimal",
			body: "Size=016\nThreshold=010",
			want: &DirInfo{
				Path: "dir", Size: 16, Scale: 1, Type: Threshold,
				MinSize: 16, MaxSize: 16, Threshold: 10,
			},
			valid: true,
		},
		{
			name: "hex threshold keeps default",
			body: "Size=32\nThreshold=0x4",
			want: &DirInfo{
				Path: "dir", Size: 32, Scale: 1, Type: Threshold,
				MinSize: 32, MaxSize: 32, Threshold: 2,
			},
			valid: true,
		},
		{
			name:  "hex size",
			body:  "Size=0x20",
			valid: false,
		},
		{
			name:  "missing size",
			body:  "Type=Fixed",
			valid: false,
		},
		{
			name:  "zero size",
			body:  "Size=0",
			valid: false,
		},
		{
			name:  "unparsable size",
			body:  "Size=big",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDirInfo("dir", section(t, tt.body))
			require.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSizeType(t *testing.T) {
	assert.Equal(t, Fixed, parseSizeType("Fixed"))
	assert.Equal(t, Scalable, parseSizeType("Scalable"))
	assert.Equal(t, Threshold, parseSizeType("Threshold"))
	assert.Equal(t, Threshold, parseSizeType("fixed"))
	assert.Equal(t, "Scalable", Scalable.String())
}
