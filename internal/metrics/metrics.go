package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SampleJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "framesample_jobs_total",
		Help: "Total number of sampling jobs finished, by status",
	}, []string{"status"})

	SampleJobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "framesample_job_duration_seconds",
		Help:    "Duration of sampling jobs",
		Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120, 300},
	})

	FramesWrittenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framesample_frames_written_total",
		Help: "Total number of frames written across all jobs",
	})

	ActiveJobs = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "framesample_active_jobs",
		Help: "Number of sampling jobs currently running",
	})
)
