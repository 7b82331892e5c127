// Package sample draws random frames from a video and writes them as
// sequentially numbered image files.
package sample

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"framesample/internal/config"
	"framesample/internal/output"
	"framesample/internal/sequence"
	"framesample/internal/video"
)

const maxWriteAttempts = 5

var ErrTooFewFrames = errors.New("video has too few frames to sample")

// Sampler draws uniform random frames from a source, skipping frame 0.
type Sampler struct {
	src video.Source
	rng *rand.Rand
}

func NewSampler(src video.Source, rng *rand.Rand) (*Sampler, error) {
	if src.FrameCount() < 2 {
		return nil, fmt.Errorf("%w: %d", ErrTooFewFrames, src.FrameCount())
	}
	return &Sampler{src: src, rng: rng}, nil
}

// Index returns a random frame index in [1, FrameCount-1].
func (s *Sampler) Index() int {
	return 1 + s.rng.IntN(s.src.FrameCount()-1)
}

// Next picks a random index and decodes that frame.
func (s *Sampler) Next(ctx context.Context) (int, image.Image, error) {
	index := s.Index()
	img, err := s.src.Frame(ctx, index)
	if err != nil {
		return index, nil, err
	}
	return index, img, nil
}

// Options tune a run. The zero value is usable.
type Options struct {
	Logger *zap.Logger
	// Rand overrides the generator built from config.Run.Seed.
	Rand *rand.Rand
	// OnWrite is called after every file written.
	OnWrite func(path string, done, total int)
}

// Result reports what a run wrote. It is returned alongside an error when a
// run stops part way.
type Result struct {
	RunID       string   `json:"run_id"`
	TotalFrames int      `json:"total_frames"`
	Indices     []int    `json:"indices"`
	Files       []string `json:"files"`
}

// Written is the number of files written.
func (r *Result) Written() int {
	return len(r.Files)
}

// Run samples cfg.Count frames from src into cfg.OutputDir. cfg should come
// from config.Run.Resolve.
func Run(ctx context.Context, src video.Source, cfg config.Run, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	res := &Result{RunID: "run_" + uuid.NewString()}
	if err := config.ValidateCount(cfg.Count); err != nil {
		return res, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = newRand(cfg.Seed)
	}
	sampler, err := NewSampler(src, rng)
	if err != nil {
		return res, err
	}
	res.TotalFrames = src.FrameCount()

	w, err := output.NewWriter(cfg.Extension, cfg.JPEGQuality)
	if err != nil {
		return res, err
	}
	seq := sequence.New(cfg.OutputDir, cfg.Prefix, cfg.Extension)

	log = log.With(zap.String("run_id", res.RunID))
	log.Debug("now capturing random frames",
		zap.Int("total_frames", res.TotalFrames),
		zap.Int("frames_to_sample", cfg.Count),
		zap.String("target_directory", cfg.OutputDir),
	)

	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		index, img, err := sampler.Next(ctx)
		if err != nil {
			return res, fmt.Errorf("sample %d of %d: frame %d: %w", i+1, cfg.Count, index, err)
		}

		path, err := writeNext(seq, w, img, log)
		if err != nil {
			return res, fmt.Errorf("sample %d of %d: %w", i+1, cfg.Count, err)
		}

		res.Indices = append(res.Indices, index)
		res.Files = append(res.Files, path)
		if opts.OnWrite != nil {
			opts.OnWrite(path, res.Written(), cfg.Count)
		}
	}

	log.Debug(fmt.Sprintf("operation complete: finished saving %d frames", w.Written()))
	return res, nil
}

// writeNext writes img under the next free name, rescanning when another
// writer takes the name first.
func writeNext(seq *sequence.Sequencer, w *output.Writer, img image.Image, log *zap.Logger) (string, error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		path, err := seq.Next()
		if err != nil {
			return "", err
		}
		log.Debug("updated 'last_match'", zap.Int("last_match", seq.LastMatch()))

		err = w.Write(img, path)
		if err == nil {
			seq.Claim(seq.LastMatch() + 1)
			return path, nil
		}
		if !errors.Is(err, output.ErrExists) {
			return "", err
		}
		log.Debug("name taken, rescanning", zap.String("path", path))
		seq.Claim(seq.LastMatch() + 1)
	}
	return "", fmt.Errorf("%w: gave up after %d attempts", output.ErrExists, maxWriteAttempts)
}

func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>1))
}
