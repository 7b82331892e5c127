package daemon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"framesample/internal/config"
	"framesample/internal/metrics"
	"framesample/internal/sample"
)

// resolveSettings merges req over the current defaults and validates the result.
func (s *Server) resolveSettings(req SampleRequest) (config.Run, error) {
	s.mu.RLock()
	cfg := s.config
	s.mu.RUnlock()

	run := config.Run{
		Count:       cfg.Count,
		OutputDir:   cfg.OutputDir,
		Prefix:      cfg.Prefix,
		Extension:   cfg.Extension,
		JPEGQuality: cfg.JPEGQuality,
		Seed:        req.Seed,
	}
	if req.Count != nil {
		run.Count = *req.Count
	}
	if req.OutputDir != nil {
		run.OutputDir = *req.OutputDir
	}
	if req.Prefix != nil {
		run.Prefix = *req.Prefix
	}
	if req.Extension != nil {
		run.Extension = *req.Extension
	}
	if req.JPEGQuality != nil {
		run.JPEGQuality = *req.JPEGQuality
	}
	return run.Resolve()
}

// startJob schedules a sampling job for a video.
func (s *Server) startJob(videoID string, req SampleRequest) (*Job, error) {
	s.mu.RLock()
	_, ok := s.videos[videoID]
	s.mu.RUnlock()
	if !ok {
		return nil, errNotFound
	}

	run, err := s.resolveSettings(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	video, ok := s.videos[videoID]
	if !ok {
		s.mu.Unlock()
		return nil, errNotFound
	}
	for _, job := range s.jobs {
		if job.VideoID == videoID && (job.Status == statusQueued || job.Status == statusRunning) {
			s.mu.Unlock()
			return nil, errJobActive
		}
	}
	video.SampleStatus = "sampling"
	video.LastError = nil

	jobID := newID("job_")
	now := time.Now().UTC()
	job := &Job{
		ID:      jobID,
		VideoID: videoID,
		Type:    "sample",
		Status:  statusQueued,
		Files:   []string{},
		Indices: []int{},
		Settings: Config{
			Count:       run.Count,
			OutputDir:   run.OutputDir,
			Prefix:      run.Prefix,
			Extension:   run.Extension,
			JPEGQuality: run.JPEGQuality,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.jobs[jobID] = job
	ctx, cancel := context.WithCancel(context.Background())
	s.jobCancel[jobID] = cancel
	videoPath := video.Path
	snapshot := copyJob(job)
	s.mu.Unlock()

	s.wg.Add(1)
	go s.runJob(ctx, jobID, videoPath, run)
	return &snapshot, nil
}

// cancelJob stops the active job of a video. The job is marked failed once
// its run observes the cancellation.
func (s *Server) cancelJob(videoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, job := range s.jobs {
		if job.VideoID != videoID || (job.Status != statusRunning && job.Status != statusQueued) {
			continue
		}
		if cancel, ok := s.jobCancel[id]; ok {
			cancel()
			return nil
		}
	}
	return errNotFound
}

// runJob samples frames for a job until completion, failure or cancellation.
func (s *Server) runJob(ctx context.Context, jobID, videoPath string, run config.Run) {
	start := time.Now()
	metrics.ActiveJobs.Inc()
	defer func() {
		metrics.ActiveJobs.Dec()
		metrics.SampleJobDuration.Observe(time.Since(start).Seconds())
		s.mu.Lock()
		if cancel, ok := s.jobCancel[jobID]; ok {
			cancel()
			delete(s.jobCancel, jobID)
		}
		s.mu.Unlock()
		s.wg.Done()
	}()

	log := s.logger.With(zap.String("job_id", jobID), zap.String("video", videoPath))

	lock := s.dirLock(run.OutputDir)
	lock.Lock()
	defer lock.Unlock()

	s.updateJob(jobID, func(job *Job, video *Video) {
		job.Status = statusRunning
	})

	src, err := s.opener.Open(ctx, videoPath)
	if err != nil {
		s.finishJob(ctx, jobID, nil, fmt.Errorf("open video: %w", err), log)
		return
	}
	s.updateJob(jobID, func(job *Job, video *Video) {
		video.TotalFrames = src.FrameCount()
	})

	res, err := sample.Run(ctx, src, run, sample.Options{
		Logger: log,
		OnWrite: func(path string, done, total int) {
			metrics.FramesWrittenTotal.Inc()
			s.updateJob(jobID, func(job *Job, video *Video) {
				job.Files = append(job.Files, path)
				job.Progress = float64(done) / float64(total)
				video.FramesWritten++
			})
		},
	})
	s.finishJob(ctx, jobID, res, err, log)
}

// updateJob applies fn to a job and its video under the lock.
func (s *Server) updateJob(jobID string, fn func(job *Job, video *Video)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return
	}
	video, ok := s.videos[job.VideoID]
	if !ok {
		return
	}
	fn(job, video)
	job.UpdatedAt = time.Now().UTC()
}

func (s *Server) finishJob(ctx context.Context, jobID string, res *sample.Result, err error, log *zap.Logger) {
	now := time.Now().UTC()
	s.updateJob(jobID, func(job *Job, video *Video) {
		if res != nil {
			job.RunID = res.RunID
			job.Indices = append([]int{}, res.Indices...)
			job.Files = append([]string{}, res.Files...)
		}
		if err == nil {
			job.Status = statusDone
			job.Progress = 1
			video.SampleStatus = "sampled"
			video.LastSampledAt = &now
			video.LastError = nil
			return
		}

		msg := err.Error()
		if errors.Is(ctx.Err(), context.Canceled) {
			msg = "cancelled"
		}
		job.Status = statusFailed
		video.SampleStatus = "failed"
		video.LastError = &msg
	})

	if err != nil {
		metrics.SampleJobsTotal.WithLabelValues(statusFailed).Inc()
		log.Warn("sampling job failed", zap.Error(err))
		return
	}
	metrics.SampleJobsTotal.WithLabelValues(statusDone).Inc()
	log.Info("sampling job finished", zap.Int("frames", res.Written()))
}
