// Package video exposes decoded video frames by index.
package video

import (
	"context"
	"errors"
	"image"
)

// ErrFrameOutOfRange is returned when a frame index is outside the stream.
var ErrFrameOutOfRange = errors.New("frame index out of range")

// Source is an opened video whose frames can be read by index.
type Source interface {
	// FrameCount is the total number of decodable frames.
	FrameCount() int
	// Frame decodes the frame at index.
	Frame(ctx context.Context, index int) (image.Image, error)
}

// Opener opens video sources by path.
type Opener interface {
	Open(ctx context.Context, path string) (Source, error)
}
