package daemon

import (
	"errors"
	"time"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// Config holds the default settings applied to new sampling jobs.
type Config struct {
	Count       int    `json:"count" example:"5"`
	OutputDir   string `json:"output_dir" example:"frames"`
	Prefix      string `json:"prefix" example:"img-extract-"`
	Extension   string `json:"ext" example:"png"`
	JPEGQuality int    `json:"quality" example:"95"`
}

// Video tracks a registered video and its sampling history.
type Video struct {
	ID            string     `json:"video_id" example:"vid_abcd1234"`
	Path          string     `json:"path" example:"/videos/sample.mp4"`
	TotalFrames   int        `json:"total_frames" example:"1440"`
	SampleStatus  string     `json:"sample_status" example:"sampling"`
	FramesWritten int        `json:"frames_written" example:"12"`
	LastSampledAt *time.Time `json:"last_sampled_at" example:"2024-01-01T12:00:00Z"`
	LastError     *string    `json:"last_error" example:"failed to decode frame"`
}

// Job represents one sampling run against a video.
type Job struct {
	ID        string    `json:"job_id" example:"job_abcd1234"`
	VideoID   string    `json:"video_id" example:"vid_abcd1234"`
	Type      string    `json:"type" example:"sample"`
	Status    string    `json:"status" example:"running"`
	Progress  float64   `json:"progress" example:"0.4"`
	RunID     string    `json:"run_id,omitempty" example:"run_abcd1234"`
	Files     []string  `json:"files" example:"frames/img-extract-0.png"`
	Indices   []int     `json:"indices" example:"17"`
	Settings  Config    `json:"settings"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T12:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-01T12:05:00Z"`
}

// ErrorResponse represents a standard error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"description of the error"`
}

// HealthResponse describes the health endpoint payload.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version" example:"0.1.0"`
}

// ConfigUpdateRequest allows partial configuration updates.
type ConfigUpdateRequest struct {
	Count       *int    `json:"count" example:"10"`
	OutputDir   *string `json:"output_dir" example:"frames"`
	Prefix      *string `json:"prefix" example:"shot-"`
	Extension   *string `json:"ext" example:"jpg"`
	JPEGQuality *int    `json:"quality" example:"90"`
}

// StatusResponse is a generic status wrapper.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// AddVideoRequest registers a new video for sampling.
type AddVideoRequest struct {
	Path string `json:"path" example:"/videos/sample.mp4"`
}

// AddVideoResponse returns the created video ID.
type AddVideoResponse struct {
	VideoID string `json:"video_id" example:"vid_abcd1234"`
	Status  string `json:"status" example:"registered"`
}

// SampleRequest overrides the configured defaults for one job.
type SampleRequest struct {
	Count       *int    `json:"count" example:"3"`
	OutputDir   *string `json:"output_dir" example:"frames"`
	Prefix      *string `json:"prefix" example:"img-"`
	Extension   *string `json:"ext" example:"png"`
	JPEGQuality *int    `json:"quality" example:"95"`
	Seed        *uint64 `json:"seed" example:"42"`
}

// StartJobResponse provides the started job ID.
type StartJobResponse struct {
	Status string `json:"status" example:"started"`
	JobID  string `json:"job_id" example:"job_abcd1234"`
}

// CancelJobResponse indicates a cancellation attempt.
type CancelJobResponse struct {
	Status string `json:"status" example:"cancelling"`
}

// SequenceResponse reports the numbering state of an output directory.
type SequenceResponse struct {
	Dir       string `json:"dir" example:"frames"`
	LastMatch int    `json:"last_match" example:"3"`
	NextName  string `json:"next_name" example:"img-extract-4.png"`
}

const (
	statusQueued  = "queued"
	statusRunning = "running"
	statusDone    = "done"
	statusFailed  = "failed"
)

var (
	errNotFound  = errors.New("not found")
	errJobActive = errors.New("video already has an active job")
)
