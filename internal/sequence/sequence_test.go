package sequence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
}

func TestNextInEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "img-extract-", "png")

	path, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "img-extract-0.png"), path)
	assert.Equal(t, -1, s.LastMatch())
}

func TestNextContinuesAfterHighestSuffix(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "prefix-1.png", "prefix-3.png", "prefix-2.png")

	s := New(dir, "prefix-", "png")
	path, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "prefix-4.png"), path)
	assert.Equal(t, 3, s.LastMatch())
}

func TestScanIgnoresNonMatchingEntries(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir,
		"img-7.jpg",
		"other-9.png",
		"img-8.png.bak",
		"ximg-9.png",
		"img-.png",
		"img-x1.png",
		"img-99999999999999999999999.png",
	)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "img-50.png"), 0o755))
	touch(t, dir, "img-2.png")

	s := New(dir, "img-", "png")
	require.NoError(t, s.Scan())
	assert.Equal(t, 2, s.LastMatch())
}

func TestPrefixAndExtensionMatchLiterally(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a+b5.png", "aab6.png", "a+b7xpng")

	s := New(dir, "a+b", "png")
	require.NoError(t, s.Scan())
	assert.Equal(t, 5, s.LastMatch())
}

func TestLastMatchNeverDecreases(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "img-5.png")

	s := New(dir, "img-", "png")
	require.NoError(t, s.Scan())
	require.NoError(t, os.Remove(filepath.Join(dir, "img-5.png")))

	path, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "img-6.png"), path)
}

func TestNextSeesFilesCreatedBetweenCalls(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "img-", "png")

	path, err := s.Next()
	require.NoError(t, err)
	touch(t, dir, filepath.Base(path))
	touch(t, dir, "img-10.png")

	path, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "img-11.png"), path)
}

func TestClaim(t *testing.T) {
	s := New(t.TempDir(), "img-", "png")
	s.Claim(4)
	s.Claim(2)
	assert.Equal(t, 4, s.LastMatch())
	assert.Equal(t, "img-5.png", s.Name(s.LastMatch()+1))
}

func TestScanMissingDirectory(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing"), "img-", "png")
	_, err := s.Next()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
