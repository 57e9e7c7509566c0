// Package api provides the HTTP REST API server for HomeSim.
//
// It exposes endpoints for running the purchase-price sweep and for
// health checks. Each request recomputes from the posted configuration;
// deterministic (seeded) requests are memoized for a short TTL.
package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/seenimoa/homesim/internal/config"
	"github.com/seenimoa/homesim/internal/infra"
	"github.com/seenimoa/homesim/internal/simulation"
)

// maxBodyBytes caps the size of a sweep request body.
const maxBodyBytes = 1 << 20

// Server is the HTTP API server.
type Server struct {
	cfg    *config.Config
	router chi.Router
	cache  *infra.Cache
}

// NewServer creates the API server from the loaded configuration.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg:   cfg,
		cache: infra.NewCache(time.Duration(cfg.API.CacheTTL) * time.Second),
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", s.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/sweep", s.handleSweep)
	})

	return r
}

// ============================================================
// RESPONSE TYPES
// ============================================================

// APIResponse is the standard response wrapper.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ============================================================
// HANDLERS
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":  "ok",
			"version": "dev",
			"time":    time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// handleSweep runs the Monte Carlo price sweep. The request body is an
// optional JSON simulation config; fields left out keep the server's
// configured defaults. An empty body runs the defaults unchanged.
func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	simCfg := s.cfg.Simulation
	if len(body) > 0 {
		if err := json.Unmarshal(body, &simCfg); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if err := simCfg.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Seeded requests are deterministic, so their tables can be reused.
	// Seed 0 derives from the clock and must always recompute.
	key := sweepCacheKey(body)
	if simCfg.Seed != 0 {
		if cached, ok := s.cache.Get(key); ok {
			writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: cached})
			return
		}
	}

	engine := simulation.NewEngine(simCfg)
	table, err := engine.Sweep(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if simCfg.Seed != 0 {
		s.cache.Set(key, table)
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: table})
}

func sweepCacheKey(body []byte) string {
	sum := sha256.Sum256(body)
	return "sweep:" + hex.EncodeToString(sum[:])
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
