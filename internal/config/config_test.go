package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FRAMESAMPLE_PREFIX", "")
	os.Unsetenv("FRAMESAMPLE_PREFIX")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPrefix, cfg.Prefix)
	assert.Equal(t, DefaultExtension, cfg.Extension)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, ":8080", cfg.DaemonAddr)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FRAMESAMPLE_PREFIX", "shot-")
	t.Setenv("FRAMESAMPLE_EXT", "jpg")
	t.Setenv("FRAMESAMPLE_JPEG_QUALITY", "80")

	cfg, err := Load()
	require.NoError(t, err)

	run := cfg.Defaults()
	assert.Equal(t, "shot-", run.Prefix)
	assert.Equal(t, "jpg", run.Extension)
	assert.Equal(t, 80, run.JPEGQuality)
	assert.Equal(t, MinCount, run.Count)
}

func TestResolveCountBounds(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []int{-1, 0, 101, 285000} {
		_, err := Run{Count: n, OutputDir: dir, Prefix: "img-", Extension: "png"}.Resolve()
		assert.ErrorIs(t, err, ErrCountOutOfRange, "count %d", n)
	}
	for _, n := range []int{1, 32, 100} {
		_, err := Run{Count: n, OutputDir: dir, Prefix: "img-", Extension: "png"}.Resolve()
		assert.NoError(t, err, "count %d", n)
	}
}

func TestResolveChecksCountBeforeDirectory(t *testing.T) {
	_, err := Run{Count: 0, OutputDir: "/does/not/exist"}.Resolve()
	assert.ErrorIs(t, err, ErrCountOutOfRange)
}

func TestResolveNormalizes(t *testing.T) {
	dir := t.TempDir()
	r, err := Run{Count: 2, OutputDir: dir + "/", Prefix: "img-", Extension: ".JPG"}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "JPG", r.Extension)
	assert.Equal(t, filepath.Clean(dir), r.OutputDir)
	assert.Equal(t, DefaultJPEGQuality, r.JPEGQuality)

	r, err = Run{Count: 1, Extension: ""}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, ".", r.OutputDir)
	assert.Equal(t, DefaultExtension, r.Extension)
}

func TestResolveRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := Run{Count: 1, OutputDir: dir, Extension: "%#"}.Resolve()
	assert.ErrorIs(t, err, ErrUnsupportedExtension)

	_, err = Run{Count: 1, OutputDir: dir, Extension: "123"}.Resolve()
	assert.ErrorIs(t, err, ErrUnsupportedExtension)

	_, err = Run{Count: 1, OutputDir: file, Extension: "png"}.Resolve()
	assert.ErrorIs(t, err, ErrNotDirectory)

	_, err = Run{Count: 1, OutputDir: filepath.Join(dir, "missing"), Extension: "png"}.Resolve()
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Run{Count: 1, OutputDir: dir, Prefix: "a/b", Extension: "png"}.Resolve()
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	_, err = Run{Count: 1, OutputDir: dir, Extension: "jpg", JPEGQuality: 101}.Resolve()
	assert.ErrorIs(t, err, ErrQualityOutOfRange)
}
