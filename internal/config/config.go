package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"framesample/internal/output"
)

const (
	MinCount = 1
	MaxCount = 100

	DefaultPrefix      = "img-extract-"
	DefaultExtension   = "png"
	DefaultJPEGQuality = 95
)

var (
	ErrCountOutOfRange      = fmt.Errorf("argument 'n' must be between %d and %d (inclusive)", MinCount, MaxCount)
	ErrUnsupportedExtension = errors.New("unsupported image extension")
	ErrNotDirectory         = errors.New("output path is not a directory")
	ErrInvalidPrefix        = errors.New("prefix must not contain a path separator")
	ErrQualityOutOfRange    = errors.New("jpeg quality must be between 1 and 100")
)

// Env holds defaults read from the process environment.
type Env struct {
	OutputDir   string `env:"FRAMESAMPLE_OUTPUT_DIR"   envDefault:"."`
	Prefix      string `env:"FRAMESAMPLE_PREFIX"       envDefault:"img-extract-"`
	Extension   string `env:"FRAMESAMPLE_EXT"          envDefault:"png"`
	JPEGQuality int    `env:"FRAMESAMPLE_JPEG_QUALITY" envDefault:"95"`
	LogLevel    string `env:"LOG_LEVEL"                envDefault:"info"`
	DaemonAddr  string `env:"DAEMON_ADDR"              envDefault:":8080"`
}

func Load() (*Env, error) {
	cfg := &Env{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run is the configuration of a single sampling run.
type Run struct {
	Count       int     `json:"count"`
	OutputDir   string  `json:"output_dir"`
	Prefix      string  `json:"prefix"`
	Extension   string  `json:"ext"`
	JPEGQuality int     `json:"quality"`
	Seed        *uint64 `json:"seed,omitempty"`
	Verbose     bool    `json:"-"`
}

// Defaults returns a Run seeded from the environment defaults.
func (e *Env) Defaults() Run {
	return Run{
		Count:       MinCount,
		OutputDir:   e.OutputDir,
		Prefix:      e.Prefix,
		Extension:   e.Extension,
		JPEGQuality: e.JPEGQuality,
	}
}

// ValidateCount reports whether n is an allowed sample count.
func ValidateCount(n int) error {
	if n < MinCount || n > MaxCount {
		return fmt.Errorf("%w, got %d", ErrCountOutOfRange, n)
	}
	return nil
}

// Resolve validates r and returns a normalized copy. The count is checked
// first and nothing on disk is touched when it is out of range.
func (r Run) Resolve() (Run, error) {
	if err := ValidateCount(r.Count); err != nil {
		return r, err
	}

	r.Extension = strings.TrimPrefix(strings.TrimSpace(r.Extension), ".")
	if r.Extension == "" {
		r.Extension = DefaultExtension
	}
	if _, err := output.FormatFromExtension(r.Extension); err != nil {
		return r, fmt.Errorf("%w: %q", ErrUnsupportedExtension, r.Extension)
	}

	if strings.ContainsAny(r.Prefix, `/\`) {
		return r, fmt.Errorf("%w: %q", ErrInvalidPrefix, r.Prefix)
	}

	if r.JPEGQuality == 0 {
		r.JPEGQuality = DefaultJPEGQuality
	}
	if r.JPEGQuality < 1 || r.JPEGQuality > 100 {
		return r, fmt.Errorf("%w, got %d", ErrQualityOutOfRange, r.JPEGQuality)
	}

	if strings.TrimSpace(r.OutputDir) == "" {
		r.OutputDir = "."
	}
	r.OutputDir = filepath.Clean(r.OutputDir)
	info, err := os.Stat(r.OutputDir)
	if err != nil {
		return r, fmt.Errorf("stat output directory: %w", err)
	}
	if !info.IsDir() {
		return r, fmt.Errorf("%w: %s", ErrNotDirectory, r.OutputDir)
	}

	return r, nil
}
