// Package videotest provides in-memory video sources for tests.
package videotest

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/disintegration/imaging"

	"framesample/internal/video"
)

// Source is a fake video with a fixed number of solid-colour frames.
type Source struct {
	Frames int
	// FailAt makes Frame return an error for these indices.
	FailAt map[int]error
	// Block makes Frame wait until the context is cancelled.
	Block bool

	mu        sync.Mutex
	requested []int
}

func (s *Source) FrameCount() int {
	return s.Frames
}

func (s *Source) Frame(ctx context.Context, index int) (image.Image, error) {
	s.mu.Lock()
	s.requested = append(s.requested, index)
	s.mu.Unlock()

	if s.Block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if index < 0 || index >= s.Frames {
		return nil, fmt.Errorf("%w: %d of %d", video.ErrFrameOutOfRange, index, s.Frames)
	}
	if err, ok := s.FailAt[index]; ok {
		return nil, err
	}
	shade := uint8(index % 256)
	return imaging.New(4, 4, color.NRGBA{R: shade, G: shade, B: shade, A: 255}), nil
}

// Requested returns the frame indices asked for so far.
func (s *Source) Requested() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.requested...)
}

// Opener hands out Sources by path.
type Opener struct {
	Sources map[string]*Source
}

func (o *Opener) Open(ctx context.Context, path string) (video.Source, error) {
	src, ok := o.Sources[path]
	if !ok {
		return nil, fmt.Errorf("open video source: %w", os.ErrNotExist)
	}
	return src, nil
}
