// Command bassd serves the circuit simulator as a JSON API with an
// HTML dashboard of the stock setup at /.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/werktisch/bass-circuit/circuit"
	"github.com/werktisch/bass-circuit/internal/api"
	"github.com/werktisch/bass-circuit/internal/config"
	"github.com/werktisch/bass-circuit/internal/dashboard"
	"github.com/werktisch/bass-circuit/measure/sweep"
	"github.com/werktisch/bass-circuit/pkg/models"
	"github.com/werktisch/bass-circuit/stats/response"
	"github.com/werktisch/bass-circuit/waveform"
)

func main() {
	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	sw := sweep.Sweep{
		StartFreq: cfg.Sweep.StartFreq,
		EndFreq:   cfg.Sweep.EndFreq,
		Points:    cfg.Sweep.Points,
	}
	if err := sw.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid sweep configuration")
	}

	// Create Chi router
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(zerologLogger())
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))

	// Create Huma API
	humaConfig := huma.DefaultConfig("Bass Circuit API", "1.0.0")
	humaConfig.DocsPath = "/api/docs"
	humaAPI := humachi.New(router, humaConfig)

	// Register health endpoint
	huma.Register(humaAPI, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = "1.0.0"
		resp.Body.Time = time.Now()
		return resp, nil
	})

	api.RegisterRoutes(humaAPI, sw)

	// Dashboard of the stock setup
	charts, err := stockCharts(sw)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to simulate stock setup")
	}
	router.Get("/", charts.Handler)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting bass-circuit API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// stockCharts runs one simulation of the factory setup for the landing page.
func stockCharts(sw sweep.Sweep) (*dashboard.Charts, error) {
	n, err := circuit.NewNetwork(circuit.DefaultConfig())
	if err != nil {
		return nil, err
	}
	resp, err := sw.Run(n)
	if err != nil {
		return nil, err
	}
	pair, err := waveform.Synthesize(n, 440)
	if err != nil {
		return nil, err
	}
	return &dashboard.Charts{
		Response: resp,
		Stats:    response.AnalyzeResponse(resp),
		Pair:     pair,
	}, nil
}

// zerologLogger returns a Chi middleware that logs HTTP requests using zerolog
func zerologLogger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("remote_ip", r.RemoteAddr).
					Int("status", ww.Status()).
					Dur("latency", time.Since(start)).
					Msg("HTTP request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
