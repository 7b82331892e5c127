package daemon

import (
	"net/http"

	"framesample/internal/config"
)

// handleHealth godoc
// @Summary Health check
// @Description Returns service health and version.
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// handleConfig godoc
// @Summary Get or update sampling defaults
// @Description Returns the current defaults on GET and updates selected fields on PUT.
// @Tags config
// @Accept json
// @Produce json
// @Param request body ConfigUpdateRequest false "Fields to update (PUT only)"
// @Success 200 {object} Config
// @Success 200 {object} StatusResponse "Update acknowledgment"
// @Failure 400 {object} ErrorResponse
// @Router /config [get]
// @Router /config [put]
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.RLock()
		cfg := s.config
		s.mu.RUnlock()
		writeJSON(w, http.StatusOK, cfg)
	case http.MethodPut:
		var req ConfigUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json payload")
			return
		}

		s.mu.RLock()
		cfg := s.config
		s.mu.RUnlock()
		if req.Count != nil {
			cfg.Count = *req.Count
		}
		if req.OutputDir != nil {
			cfg.OutputDir = *req.OutputDir
		}
		if req.Prefix != nil {
			cfg.Prefix = *req.Prefix
		}
		if req.Extension != nil {
			cfg.Extension = *req.Extension
		}
		if req.JPEGQuality != nil {
			cfg.JPEGQuality = *req.JPEGQuality
		}

		run, err := config.Run{
			Count:       cfg.Count,
			OutputDir:   cfg.OutputDir,
			Prefix:      cfg.Prefix,
			Extension:   cfg.Extension,
			JPEGQuality: cfg.JPEGQuality,
		}.Resolve()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		s.mu.Lock()
		s.config = Config{
			Count:       run.Count,
			OutputDir:   run.OutputDir,
			Prefix:      run.Prefix,
			Extension:   run.Extension,
			JPEGQuality: run.JPEGQuality,
		}
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	}
}
