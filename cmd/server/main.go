package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/libertybench/sampleapp/internal/config"
	"github.com/libertybench/sampleapp/internal/counter"
	"github.com/libertybench/sampleapp/internal/middleware"
	"github.com/libertybench/sampleapp/internal/openapi"
	"github.com/libertybench/sampleapp/internal/router"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctr := counter.New()
	appRouter := router.Setup(cfg, ctr)

	generator := openapi.NewGenerator(cfg)
	spec, err := generator.Generate(appRouter)
	if err != nil {
		logger.Error("failed to generate OpenAPI spec", "error", err)
		os.Exit(1)
	}
	jsonSpec, err := generator.GenerateJSON(spec)
	if err != nil {
		logger.Error("failed to render OpenAPI spec", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(jsonSpec)
	})
	mux.Handle("/", appRouter)

	handler := middleware.Apply(mux, middleware.Stack(cfg, logger))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("starting server",
		"addr", cfg.Addr(),
		"debug", cfg.Debug,
		"rate_limit", cfg.RateLimit.Enabled,
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
