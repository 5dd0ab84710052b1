// Package server exposes the simulation engine over HTTP. It serves a JSON
// API consumed by the bundled web form and any other client.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/1cbyc/mt5-risk-calculator/internal/config"
	"github.com/1cbyc/mt5-risk-calculator/internal/logging"
	"github.com/1cbyc/mt5-risk-calculator/internal/simulation"
)

// Server is the HTTP adapter around the simulation engine.
type Server struct {
	cfg      config.ServerConfig
	defaults simulation.Parameters
	logger   zerolog.Logger
	http     *http.Server
}

// New creates a Server listening on cfg.Server.Addr. Default parameters fill
// in request fields the client omits.
func New(cfg *config.Config, logger zerolog.Logger) *Server {
	s := &Server{
		cfg: cfg.Server,
		defaults: simulation.Parameters{
			StartingBalance: cfg.Simulation.StartingBalance,
			TargetBalance:   cfg.Simulation.TargetBalance,
			RiskPercent:     cfg.Simulation.RiskPercent,
			RewardRatio:     cfg.Simulation.RewardRatio,
		},
		logger: logger,
	}

	s.http = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// Handler returns the full route table. Exposed separately so tests can mount
// it on httptest servers.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.IndexHandler())
	mux.HandleFunc("/api/simulate", s.SimulateHandler())
	mux.HandleFunc("/health", s.HealthHandler())
	return s.withRequestLog(mux)
}

// Run starts the server and blocks until ctx is cancelled or the listener
// fails. Shutdown is graceful within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr).Msg("HTTP server listening")
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogRequest(s.logger, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
