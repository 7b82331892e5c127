package daemon

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"framesample/internal/config"
	"framesample/internal/video"
)

// Server stores all in-memory state and exposes HTTP handlers.
type Server struct {
	mu          sync.RWMutex
	config      Config
	videos      map[string]*Video
	jobs        map[string]*Job
	jobCancel   map[string]context.CancelFunc
	videoByPath map[string]string
	dirLocks    map[string]*sync.Mutex
	opener      video.Opener
	logger      *zap.Logger
	wg          sync.WaitGroup
}

func NewServer(env *config.Env, opener video.Opener, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := env.Defaults()
	return &Server{
		config: Config{
			Count:       defaults.Count,
			OutputDir:   defaults.OutputDir,
			Prefix:      defaults.Prefix,
			Extension:   defaults.Extension,
			JPEGQuality: defaults.JPEGQuality,
		},
		videos:      make(map[string]*Video),
		jobs:        make(map[string]*Job),
		jobCancel:   make(map[string]context.CancelFunc),
		videoByPath: make(map[string]string),
		dirLocks:    make(map[string]*sync.Mutex),
		opener:      opener,
		logger:      logger,
	}
}

// Routes returns the HTTP handler for all endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Logging
	r.Use(logRequestMiddleware(s.logger))

	// CORS to allow local client
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger docs
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Handle("/metrics", promhttp.Handler())

	// Config and health
	r.Get("/health", s.handleHealth)
	r.MethodFunc(http.MethodGet, "/config", s.handleConfig)
	r.MethodFunc(http.MethodPut, "/config", s.handleConfig)

	// Output numbering
	r.Get("/sequence", s.handleSequence)

	// Videos
	r.MethodFunc(http.MethodGet, "/videos", s.handleVideos)
	r.MethodFunc(http.MethodPost, "/videos", s.handleVideos)
	r.Route("/videos/{videoID}", func(r chi.Router) {
		r.MethodFunc(http.MethodGet, "/", s.handleGetVideo)
		r.MethodFunc(http.MethodPost, "/sample", s.handleSample)
		r.MethodFunc(http.MethodPost, "/cancel", s.handleCancel)
		r.MethodFunc(http.MethodGet, "/file", s.handleVideoFile)
	})

	// Jobs
	r.Get("/jobs", s.handleJobs)
	r.Get("/jobs/{jobID}", s.handleGetJob)

	return r
}

// Shutdown cancels running jobs and waits for them to stop or for ctx to end.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for _, cancel := range s.jobCancel {
		cancel()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// dirLock returns the lock serialising jobs that write to dir.
func (s *Server) dirLock(dir string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.dirLocks[dir]
	if !ok {
		l = &sync.Mutex{}
		s.dirLocks[dir] = l
	}
	return l
}
