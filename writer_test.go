package docx2md

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestLookupEncoding(t *testing.T) {
	enc, err := LookupEncoding("")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", EncodingName(enc))

	enc, err = LookupEncoding("GBK")
	require.NoError(t, err)
	assert.Equal(t, "gbk", EncodingName(enc))

	_, err = LookupEncoding("klingon")
	assert.Error(t, err)
}

func TestWriteOutputReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.md")

	require.NoError(t, WriteOutput(path, "first", nil))
	require.NoError(t, WriteOutput(path, "# second\n", nil))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# second\n", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteOutputUnencodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")

	err := WriteOutput(path, "示巴星", charmap.ISO8859_1)
	require.Error(t, err)
	assert.True(t, IsWriteError(err))
	assert.NoFileExists(t, path)
}

func TestWriteOutputUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := WriteOutput(filepath.Join(blocker, "out.md"), "x", nil)
	require.Error(t, err)
	assert.True(t, IsWriteError(err))
}

func TestWriteOutputFailureKeepsPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	require.NoError(t, WriteOutput(path, "keep", nil))

	err := WriteOutput(path, "示巴星", charmap.ISO8859_1)
	require.Error(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(got))
}
