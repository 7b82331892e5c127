// @title Frame Sample API
// @version 1.0
// @description API for sampling random video frames into numbered image files.
// @host localhost:8080
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"framesample/internal/config"
	"framesample/internal/daemon"
	_ "framesample/internal/docs"
	"framesample/internal/logger"
	"framesample/internal/video"
)

func main() {
	cfg, err := config.Load()
	fatalOnErr(err, "load config")

	log, err := logger.New(cfg.LogLevel)
	fatalOnErr(err, "init logger")
	defer log.Sync()

	server := daemon.NewServer(cfg, video.NewFFmpegOpener(log), log)
	httpSrv := &http.Server{
		Addr:    cfg.DaemonAddr,
		Handler: server.Routes(),
	}

	stopped := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer close(stopped)
		sig := <-sigCh
		log.Info("received shutdown signal", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Warn("jobs did not stop in time", zap.Error(err))
		}
		if err := httpSrv.Shutdown(ctx); err != nil {
			log.Warn("http shutdown", zap.Error(err))
		}
	}()

	log.Info("starting server", zap.String("addr", cfg.DaemonAddr))
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server failed", zap.Error(err))
	}
	<-stopped
	log.Info("server stopped")
}

func fatalOnErr(err error, msg string) {
	if err != nil {
		panic(msg + ": " + err.Error())
	}
}
