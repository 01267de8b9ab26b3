package ffmpeg

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateZipRoundTrip(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for _, name := range []string{"1200.png", "4800.png", "9600.png"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("fake png "+name), 0o644))
		paths = append(paths, p)
	}

	zipPath := filepath.Join(dir, "out.zip")
	require.NoError(t, NewArchiver().CreateZip(context.Background(), paths, zipPath))

	zr, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	defer zr.Close()

	require.Len(t, zr.File, 3)
	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["1200.png"])
	assert.True(t, names["4800.png"])
	assert.True(t, names["9600.png"])
}

func TestCreateZipEmptyInput(t *testing.T) {
	err := NewArchiver().CreateZip(context.Background(), nil, filepath.Join(t.TempDir(), "out.zip"))
	require.Error(t, err)
}

func TestCreateZipMissingFile(t *testing.T) {
	dir := t.TempDir()
	err := NewArchiver().CreateZip(context.Background(), []string{filepath.Join(dir, "gone.png")}, filepath.Join(dir, "out.zip"))
	require.Error(t, err)
}

func TestCreateZipCancelledContext(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewArchiver().CreateZip(ctx, []string{p}, filepath.Join(dir, "out.zip"))
	assert.ErrorIs(t, err, context.Canceled)
}
