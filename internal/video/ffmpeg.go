package video

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

func init() {
	ffmpeg.LogCompiledCommand = false
}

// FFmpegOpener opens videos through the ffprobe and ffmpeg binaries.
type FFmpegOpener struct {
	logger *zap.Logger
}

func NewFFmpegOpener(logger *zap.Logger) *FFmpegOpener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FFmpegOpener{logger: logger}
}

// Open probes path for its frame count.
func (o *FFmpegOpener) Open(ctx context.Context, path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open video source: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open video source: %s is a directory", path)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	probe, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}
	frames, err := parseFrameCount(probe)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}

	o.logger.Debug("probed video", zap.String("path", path), zap.Int("frames", frames))
	return &ffmpegSource{path: path, frames: frames, logger: o.logger}, nil
}

type ffmpegSource struct {
	path   string
	frames int
	logger *zap.Logger
}

func (s *ffmpegSource) FrameCount() int {
	return s.frames
}

// Frame selects the frame at index and pipes it out of ffmpeg as a single PNG.
func (s *ffmpegSource) Frame(ctx context.Context, index int) (image.Image, error) {
	if index < 0 || index >= s.frames {
		return nil, fmt.Errorf("%w: %d of %d", ErrFrameOutOfRange, index, s.frames)
	}

	var out, stderr bytes.Buffer
	cmd := ffmpeg.Input(s.path).
		Filter("select", ffmpeg.Args{fmt.Sprintf("gte(n,%d)", index)}).
		Output("pipe:", ffmpeg.KwArgs{"vframes": 1, "format": "image2", "vcodec": "png"}).
		Compile()
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := runContext(ctx, cmd); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("read frame %d from %q: %w: %s", index, s.path, err, strings.TrimSpace(stderr.String()))
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("read frame %d from %q: ffmpeg produced no data", index, s.path)
	}

	img, err := imaging.Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("decode frame %d from %q: %w", index, s.path, err)
	}
	return img, nil
}

// runContext runs cmd and kills it if ctx is cancelled first.
func runContext(ctx context.Context, cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		return ctx.Err()
	}
}

type probeOutput struct {
	Streams []struct {
		CodecType    string `json:"codec_type"`
		NbFrames     string `json:"nb_frames"`
		Duration     string `json:"duration"`
		AvgFrameRate string `json:"avg_frame_rate"`
		RFrameRate   string `json:"r_frame_rate"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

var errNoVideoStream = errors.New("no video stream found")

// parseFrameCount reads the frame count of the first video stream from
// ffprobe JSON. Containers that omit nb_frames fall back to
// duration × frame rate.
func parseFrameCount(probe string) (int, error) {
	var p probeOutput
	if err := json.Unmarshal([]byte(probe), &p); err != nil {
		return 0, fmt.Errorf("decode ffprobe output: %w", err)
	}

	for _, st := range p.Streams {
		if st.CodecType != "video" {
			continue
		}
		if n, err := strconv.Atoi(st.NbFrames); err == nil && n > 0 {
			return n, nil
		}

		duration := st.Duration
		if duration == "" || duration == "N/A" {
			duration = p.Format.Duration
		}
		secs, err := strconv.ParseFloat(duration, 64)
		if err != nil {
			return 0, fmt.Errorf("video stream has no frame count or duration")
		}
		rate, err := parseRate(st.AvgFrameRate)
		if err != nil || rate == 0 {
			rate, err = parseRate(st.RFrameRate)
			if err != nil {
				return 0, err
			}
		}
		return int(math.Round(secs * rate)), nil
	}
	return 0, errNoVideoStream
}

// parseRate parses ffprobe rates such as "30000/1001" or "25".
func parseRate(s string) (float64, error) {
	num, den, found := strings.Cut(strings.TrimSpace(s), "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("parse frame rate %q: %w", s, err)
	}
	if !found {
		return n, nil
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, fmt.Errorf("parse frame rate %q: %w", s, err)
	}
	if d == 0 {
		return 0, nil
	}
	return n / d, nil
}
