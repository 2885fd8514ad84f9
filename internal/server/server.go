// Package server exposes the beam analysis engine over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/acibeam/internal/config"
)

// Server is the HTTP API server.
type Server struct {
	cfg     config.Server
	limiter *IPRateLimiter
	clock   func() time.Time
}

// New creates a server from its configuration.
func New(cfg config.Server) *Server {
	return &Server{
		cfg:     cfg,
		limiter: NewIPRateLimiter(rate.Limit(cfg.Rate), cfg.Burst),
	}
}

// Limiter entries idle for longer than this are evicted.
const (
	limiterIdle  = 10 * time.Minute
	limiterSweep = time.Minute
)

// Handler returns the router with all API routes behind the rate limiter.
// The limiter wraps the router rather than the subrouter so that method
// mismatches still answer 405.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", s.Health).Methods(http.MethodGet)
	api.HandleFunc("/beam/analyze", s.Analyze).Methods(http.MethodPost)
	api.HandleFunc("/beam/required-steel", s.RequiredSteel).Methods(http.MethodPost)
	api.HandleFunc("/beam/report", s.Report).Methods(http.MethodPost)
	api.HandleFunc("/beam/diagram", s.Diagram).Methods(http.MethodPost)
	api.HandleFunc("/beam/strain", s.Strain).Methods(http.MethodPost)

	return CORS(s.limiter.LimitMiddleware(r))
}

// CORS allows browser clients on any origin and answers preflight requests.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.limiter.Sweep(ctx, limiterSweep, limiterIdle)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("acibeam API listening on %s", s.cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
