package sample

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framesample/internal/config"
	"framesample/internal/output"
	"framesample/internal/video/videotest"
)

func runConfig(t *testing.T, n int) config.Run {
	t.Helper()
	return config.Run{Count: n, OutputDir: t.TempDir(), Prefix: "img-", Extension: "png"}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestRunRejectsCountOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 101} {
		cfg := runConfig(t, n)
		src := &videotest.Source{Frames: 100}

		_, err := Run(context.Background(), src, cfg, Options{})
		assert.ErrorIs(t, err, config.ErrCountOutOfRange)
		assert.Empty(t, listDir(t, cfg.OutputDir))
		assert.Empty(t, src.Requested())
	}
}

func TestRunWritesSequentialFiles(t *testing.T) {
	for _, n := range []int{1, 3, 17, 100} {
		cfg := runConfig(t, n)
		src := &videotest.Source{Frames: 50}

		res, err := Run(context.Background(), src, cfg, Options{})
		require.NoError(t, err)
		assert.Equal(t, n, res.Written())
		assert.Equal(t, 50, res.TotalFrames)

		want := make([]string, n)
		for i := range want {
			want[i] = fmt.Sprintf("img-%d.png", i)
			assert.Equal(t, filepath.Join(cfg.OutputDir, want[i]), res.Files[i])
		}
		sort.Strings(want)
		assert.Equal(t, want, listDir(t, cfg.OutputDir))
	}
}

func TestRunContinuesAfterExistingFiles(t *testing.T) {
	cfg := runConfig(t, 2)
	cfg.Prefix = "prefix-"
	for _, name := range []string{"prefix-1.png", "prefix-3.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.OutputDir, name), []byte("old"), 0o600))
	}

	res, err := Run(context.Background(), &videotest.Source{Frames: 10}, cfg, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(cfg.OutputDir, "prefix-4.png"),
		filepath.Join(cfg.OutputDir, "prefix-5.png"),
	}, res.Files)

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "prefix-3.png"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestRunSkipsNamesTakenByDirectories(t *testing.T) {
	cfg := runConfig(t, 1)
	require.NoError(t, os.Mkdir(filepath.Join(cfg.OutputDir, "img-0.png"), 0o755))

	res, err := Run(context.Background(), &videotest.Source{Frames: 10}, cfg, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(cfg.OutputDir, "img-1.png")}, res.Files)
}

func TestRunIndicesStayInRange(t *testing.T) {
	cfg := runConfig(t, 100)
	src := &videotest.Source{Frames: 3}

	res, err := Run(context.Background(), src, cfg, Options{Rand: rand.New(rand.NewPCG(1, 2))})
	require.NoError(t, err)
	require.Len(t, res.Indices, 100)
	for _, idx := range res.Indices {
		assert.GreaterOrEqual(t, idx, 1)
		assert.LessOrEqual(t, idx, 2)
	}
	assert.Equal(t, res.Indices, src.Requested())
}

func TestRunSeedIsReproducible(t *testing.T) {
	seed := uint64(42)
	a := runConfig(t, 10)
	a.Seed = &seed
	b := runConfig(t, 10)
	b.Seed = &seed

	ra, err := Run(context.Background(), &videotest.Source{Frames: 1000}, a, Options{})
	require.NoError(t, err)
	rb, err := Run(context.Background(), &videotest.Source{Frames: 1000}, b, Options{})
	require.NoError(t, err)
	assert.Equal(t, ra.Indices, rb.Indices)
	assert.NotEqual(t, ra.RunID, rb.RunID)
}

func TestRunTooFewFrames(t *testing.T) {
	for _, frames := range []int{0, 1} {
		cfg := runConfig(t, 1)
		_, err := Run(context.Background(), &videotest.Source{Frames: frames}, cfg, Options{})
		assert.ErrorIs(t, err, ErrTooFewFrames)
		assert.Empty(t, listDir(t, cfg.OutputDir))
	}
}

func TestRunStopsOnDecodeFailure(t *testing.T) {
	cfg := runConfig(t, 5)
	boom := errors.New("corrupt frame")
	src := &videotest.Source{Frames: 2, FailAt: map[int]error{1: boom}}

	res, err := Run(context.Background(), src, cfg, Options{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, res.Written())
	assert.Empty(t, listDir(t, cfg.OutputDir))
}

func TestRunStopsWhenCancelled(t *testing.T) {
	cfg := runConfig(t, 5)
	ctx, cancel := context.WithCancel(context.Background())

	var calls int
	res, err := Run(ctx, &videotest.Source{Frames: 10}, cfg, Options{
		OnWrite: func(path string, done, total int) {
			calls++
			assert.Equal(t, 5, total)
			if done == 2 {
				cancel()
			}
		},
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, res.Written())
	assert.Equal(t, 2, calls)
	assert.Len(t, listDir(t, cfg.OutputDir), 2)
}

func TestRunUnsupportedExtension(t *testing.T) {
	cfg := runConfig(t, 1)
	cfg.Extension = "mkv"
	_, err := Run(context.Background(), &videotest.Source{Frames: 10}, cfg, Options{})
	assert.Error(t, err)
	assert.Empty(t, listDir(t, cfg.OutputDir))
}

func TestWriteNextGivesUp(t *testing.T) {
	cfg := runConfig(t, 1)
	for i := 0; i < maxWriteAttempts; i++ {
		require.NoError(t, os.Mkdir(filepath.Join(cfg.OutputDir, fmt.Sprintf("img-%d.png", i)), 0o755))
	}

	_, err := Run(context.Background(), &videotest.Source{Frames: 10}, cfg, Options{})
	assert.ErrorIs(t, err, output.ErrExists)
}

func TestSamplerIndexBounds(t *testing.T) {
	s, err := NewSampler(&videotest.Source{Frames: 2}, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		assert.Equal(t, 1, s.Index())
	}
}
