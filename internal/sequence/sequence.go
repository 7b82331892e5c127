// Package sequence numbers output files so that new frames never collide
// with files already present in the output directory.
package sequence

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// Sequencer tracks the highest suffix seen for prefix<N>.ext in a directory.
type Sequencer struct {
	dir       string
	prefix    string
	ext       string
	pattern   *regexp.Regexp
	lastMatch int
}

func New(dir, prefix, ext string) *Sequencer {
	return &Sequencer{
		dir:       dir,
		prefix:    prefix,
		ext:       ext,
		pattern:   regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d+)\.` + regexp.QuoteMeta(ext) + `$`),
		lastMatch: -1,
	}
}

// LastMatch is the highest suffix observed so far, or -1 if none.
func (s *Sequencer) LastMatch() int {
	return s.lastMatch
}

// Scan lists the directory and raises LastMatch to the highest matching
// suffix found. It never lowers it.
func (s *Sequencer) Scan() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("scan output directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := s.pattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > s.lastMatch {
			s.lastMatch = n
		}
	}
	return nil
}

// Name returns the filename for suffix n.
func (s *Sequencer) Name(n int) string {
	return s.prefix + strconv.Itoa(n) + "." + s.ext
}

// Next rescans the directory and returns the path for the next unused suffix.
func (s *Sequencer) Next() (string, error) {
	if err := s.Scan(); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, s.Name(s.lastMatch+1)), nil
}

// Claim records that suffix n is now in use without rescanning.
func (s *Sequencer) Claim(n int) {
	if n > s.lastMatch {
		s.lastMatch = n
	}
}
