package file

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sheetFs(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	for path, text := range map[string]string{
		"songs/b.cho":           "[G]two",
		"songs/a.chordpro":      "[C]one",
		"songs/hymns/c.txt":     "[F]three",
		"songs/cover.png":       "not a sheet",
		"songs/hymns/README.MD": "notes",
		"songs/UPPER.CHO":       "[D]four",
	} {
		require.NoError(t, afero.WriteFile(fs, path, []byte(text), 0644))
	}
	return fs
}

func TestGatherAllSheetPaths(t *testing.T) {
	paths, err := GatherAllSheetPaths(sheetFs(t), "songs", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"songs/UPPER.CHO",
		"songs/a.chordpro",
		"songs/b.cho",
		"songs/hymns/c.txt",
	}, paths)
}

func TestGatherAllSheetPathsLimit(t *testing.T) {
	paths, err := GatherAllSheetPaths(sheetFs(t), "songs", 2)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestGatherMissingDir(t *testing.T) {
	_, err := GatherAllSheetPaths(afero.NewMemMapFs(), "nowhere", 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadWriteSheet(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteSheet(fs, "out/deep/song.cho", "[A]la"))

	text, err := ReadSheet(fs, "out/deep/song.cho")
	require.NoError(t, err)
	assert.Equal(t, "[A]la", text)

	size, err := Size(fs, "out/deep/song.cho")
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = ReadSheet(fs, "missing.cho")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreateFileNumMap(t *testing.T) {
	m := CreateFileNumMap([]string{"a.cho", "b.cho"})
	assert.Equal(t, "a.cho", m[0])
	assert.Equal(t, "b.cho", m[1])
}
