package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	adapter := NewAdapter()
	path := filepath.Join(t.TempDir(), "a.txt")

	require.NoError(t, adapter.Save(path, "X"))

	content, err := adapter.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "X", content)
}

func TestSavePreservesUnicode(t *testing.T) {
	adapter := NewAdapter()
	path := filepath.Join(t.TempDir(), "unicode.txt")
	text := "héllo wörld —日本語\nsecond line\n"

	require.NoError(t, adapter.Save(path, text))

	content, err := adapter.Load(path)
	require.NoError(t, err)
	assert.Equal(t, text, content)
}

func TestLoadMissingFile(t *testing.T) {
	adapter := NewAdapter()

	_, err := adapter.Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "absent.txt")
}

func TestLoadInvalidUTF8(t *testing.T) {
	adapter := NewAdapter()
	path := filepath.Join(t.TempDir(), "binary.dat")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0xc1}, 0644))

	_, err := adapter.Load(path)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestSaveToMissingDirectory(t *testing.T) {
	adapter := NewAdapter()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "a.txt")

	err := adapter.Save(path, "X")
	assert.Error(t, err)
}
