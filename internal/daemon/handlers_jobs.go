package daemon

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
)

// handleJobs godoc
// @Summary List jobs
// @Description Returns all sampling jobs with progress, oldest first.
// @Tags jobs
// @Produce json
// @Success 200 {array} Job
// @Router /jobs [get]
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	list := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		list = append(list, copyJob(j))
	}
	s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	writeJSON(w, http.StatusOK, list)
}

// handleGetJob godoc
// @Summary Get job details
// @Description Returns one sampling job, including the files it wrote.
// @Tags jobs
// @Produce json
// @Param jobID path string true "Job ID"
// @Success 200 {object} Job
// @Failure 404 {object} ErrorResponse
// @Router /jobs/{jobID} [get]
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	s.mu.RLock()
	job, ok := s.jobs[jobID]
	var out Job
	if ok {
		out = copyJob(job)
	}
	s.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// copyJob returns a snapshot of j that shares no slices with it.
func copyJob(j *Job) Job {
	out := *j
	out.Files = append([]string{}, j.Files...)
	out.Indices = append([]int{}, j.Indices...)
	return out
}
