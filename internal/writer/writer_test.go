package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_Emit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palram.bin")
	w := &FileWriter{Path: path}

	require.NoError(t, w.Emit([]byte{1, 2, 3}))
	require.NoError(t, w.Emit([]byte{4, 5}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5}, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp file left behind")
}

func TestFileWriter_MissingDir(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "missing", "out.png")}
	assert.Error(t, w.Emit([]byte{1}))
}

func TestMemWriter_Emit(t *testing.T) {
	var w MemWriter
	src := []byte{9, 8, 7}
	require.NoError(t, w.Emit(src))
	src[0] = 0
	assert.Equal(t, []byte{9, 8, 7}, w.Buf)
	assert.Equal(t, 1, w.Emits)
}
