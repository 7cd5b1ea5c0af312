package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/app"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	app.Config
	RestAddr           string        `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`
	WriteTimeout       time.Duration `long:"write-timeout" env:"API_GATEWAY_WRITE_TIMEOUT" description:"response write timeout; covers a full activity scan" default:"15m"`
	AllowedOrigins     []string      `long:"allowed-origin" env:"API_GATEWAY_ALLOWED_ORIGINS" env-delim:"," description:"CORS allowed origin (repeatable)" default:"*"`
	SchedulerAutostart bool          `long:"scheduler-autostart" env:"API_GATEWAY_SCHEDULER_AUTOSTART" description:"start the daily post scheduler on boot"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := app.LoadEnv(); err != nil {
		logger.Fatal("Failed to load .env", zap.Error(err))
	}
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	components, err := app.Build(ctx, cfg.Config, logger)
	if err != nil {
		logger.Fatal("Failed to build components", zap.Error(err))
	}
	defer func() {
		if err := components.Close(); err != nil {
			logger.Warn("Failed to close components", zap.Error(err))
		}
	}()

	handler, err := transport.NewAPIHandler(ctx, components.Service, components.Scheduler, logger)
	if err != nil {
		logger.Fatal("Failed to create api handler", zap.Error(err))
	}
	if cfg.SchedulerAutostart {
		components.Scheduler.Start(ctx)
	}

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           corsHandler.Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		components.Scheduler.Stop()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
