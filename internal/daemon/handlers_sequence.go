package daemon

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"framesample/internal/sequence"
)

// handleSequence godoc
// @Summary Inspect output numbering
// @Description Scans a directory and reports the highest used suffix and the next filename. Missing parameters fall back to the configured defaults.
// @Tags sequence
// @Produce json
// @Param dir query string false "Output directory"
// @Param prefix query string false "Filename prefix"
// @Param ext query string false "File extension"
// @Success 200 {object} SequenceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sequence [get]
func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	cfg := s.config
	s.mu.RUnlock()

	q := r.URL.Query()
	dir := cfg.OutputDir
	if v := strings.TrimSpace(q.Get("dir")); v != "" {
		dir = v
	}
	prefix := cfg.Prefix
	if q.Has("prefix") {
		prefix = q.Get("prefix")
	}
	ext := cfg.Extension
	if v := strings.TrimPrefix(strings.TrimSpace(q.Get("ext")), "."); v != "" {
		ext = v
	}

	seq := sequence.New(dir, prefix, ext)
	next, err := seq.Next()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeError(w, http.StatusNotFound, "directory not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SequenceResponse{
		Dir:       dir,
		LastMatch: seq.LastMatch(),
		NextName:  filepath.Base(next),
	})
}
