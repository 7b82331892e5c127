package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"framesample/internal/config"
	"framesample/internal/logger"
	"framesample/internal/sample"
	"framesample/internal/video"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("framesample: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := newApp(env, func(l *zap.Logger) video.Opener {
		return video.NewFFmpegOpener(l)
	})
	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(env *config.Env, openerFor func(*zap.Logger) video.Opener) *cli.Command {
	return &cli.Command{
		Name:      "framesample",
		Usage:     "Save random frames from a video as numbered image files",
		ArgsUsage: "<video_source>",
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   fmt.Sprintf("Number of random frames to save (%d-%d)", config.MinCount, config.MaxCount),
				Value:   config.MinCount,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Directory where images are saved",
				Value:   env.OutputDir,
			},
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "Filename prefix for saved images",
				Value:   env.Prefix,
			},
			&cli.StringFlag{
				Name:    "ext",
				Aliases: []string{"e"},
				Usage:   "Image type/extension (png, jpg, gif, tiff, bmp)",
				Value:   env.Extension,
			},
			&cli.IntFlag{
				Name:    "quality",
				Aliases: []string{"q"},
				Usage:   "JPEG quality (1-100)",
				Value:   env.JPEGQuality,
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "Seed for reproducible frame selection",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Display detailed information during processing",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Show a progress bar while saving frames",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			run := config.Run{
				Count:       cmd.Int("count"),
				OutputDir:   cmd.String("output"),
				Prefix:      cmd.String("prefix"),
				Extension:   cmd.String("ext"),
				JPEGQuality: cmd.Int("quality"),
				Verbose:     cmd.Bool("verbose"),
			}
			if cmd.IsSet("seed") {
				seed := cmd.Uint64("seed")
				run.Seed = &seed
			}

			resolved, err := run.Resolve()
			if err != nil {
				if errors.Is(err, config.ErrCountOutOfRange) {
					return cli.Exit("Error: "+err.Error(), 1)
				}
				return cli.Exit(err.Error(), 1)
			}

			if cmd.NArg() != 1 {
				return cli.Exit("expected exactly one video_source argument", 2)
			}
			source := cmd.Args().First()

			level := env.LogLevel
			if resolved.Verbose {
				level = "debug"
			}
			l, err := logger.NewConsole(level)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer l.Sync()

			return captureFrames(ctx, cmd, openerFor(l), source, resolved, l)
		},
	}
}

// captureFrames opens source and writes the sampled frames.
func captureFrames(ctx context.Context, cmd *cli.Command, opener video.Opener, source string, run config.Run, l *zap.Logger) error {
	src, err := opener.Open(ctx, source)
	if err != nil {
		return err
	}

	fields := []zap.Field{
		zap.String("source", source),
		zap.Int("total_frames", src.FrameCount()),
		zap.Int("frames_to_sample", run.Count),
	}
	if cmd.IsSet("output") {
		fields = append(fields, zap.String("target_directory", run.OutputDir))
	}
	l.Debug("video opened", fields...)

	opts := sample.Options{Logger: l}
	if cmd.Bool("progress") {
		bar := progressbar.NewOptions(run.Count,
			progressbar.OptionSetWriter(cmd.ErrWriter),
			progressbar.OptionSetDescription("Saving frames"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		opts.OnWrite = func(string, int, int) {
			_ = bar.Add(1)
		}
	}

	res, err := sample.Run(ctx, src, run, opts)
	if err != nil {
		if res != nil && res.Written() > 0 {
			l.Warn("run stopped early", zap.Int("frames_saved", res.Written()))
		}
		return err
	}
	return nil
}
