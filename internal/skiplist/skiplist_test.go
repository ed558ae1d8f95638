package skiplist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/startupkit/pkg/types"
)

func TestDefault_ContainsKnownEntries(t *testing.T) {
	set := Resolve(types.SkipDefault, nil)
	for _, name := range []string{"igfxtray", "hotkeyscmds", "persistence", "AvastUI.exe", "IGFXTRAY", "avastui.EXE"} {
		assert.True(t, set.Contains(name), name)
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	d := Default()
	d[0] = "changed"
	assert.Equal(t, "igfxtray", Default()[0])
}

func TestResolve(t *testing.T) {
	file := []string{"OneDrive", "IGFXTRAY", "  ", "Steam"}

	tests := []struct {
		name    string
		source  types.SkipSource
		want    []string
		wantLen int
	}{
		{name: "none", source: types.SkipNone, wantLen: 0},
		{name: "default", source: types.SkipDefault, want: []string{"igfxtray", "avastui.exe"}, wantLen: 4},
		{name: "file", source: types.SkipFile, want: []string{"onedrive", "igfxtray", "steam"}, wantLen: 3},
		{name: "default plus file deduplicates", source: types.SkipDefaultWithFile, want: []string{"onedrive", "steam", "hotkeyscmds"}, wantLen: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Resolve(tt.source, file)
			assert.Len(t, set, tt.wantLen)
			for _, w := range tt.want {
				assert.Contains(t, set, w)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	entries := map[string]string{
		"IgfxTray": `C:\Windows\igfxtray.exe`,
		"OneDrive": `"C:\OneDrive.exe" /background`,
		"Agent":    `agent.exe`,
	}

	got := Filter(entries, Resolve(types.SkipDefault, nil))
	assert.Equal(t, map[string]string{
		"OneDrive": `"C:\OneDrive.exe" /background`,
		"Agent":    `agent.exe`,
	}, got)
	assert.Len(t, entries, 3, "input must not be modified")

	got = Filter(entries, Resolve(types.SkipNone, nil))
	assert.Equal(t, entries, got)
}

func TestParseLines(t *testing.T) {
	in := "\ufeff# benign entries\nOneDrive\n\n  Steam  \n#Spotify\n"
	names, err := ParseLines(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"OneDrive", "Steam"}, names)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skip.txt")
	require.NoError(t, os.WriteFile(path, []byte("OneDrive\r\nSteam\r\n"), 0o644))

	names, err := FileSource{Path: path}.Entries()
	require.NoError(t, err)
	assert.Equal(t, []string{"OneDrive", "Steam"}, names)
}

func TestFileSource_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	_, err := FileSource{Path: path}.Entries()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.txt")

	names, err := FileSource{Path: path, Optional: true}.Entries()
	require.NoError(t, err)
	assert.Empty(t, names)
}
