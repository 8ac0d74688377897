// Package server serves recorded sorts over HTTP.
//
// Routes:
//
//	GET /healthz          liveness and build version
//	GET /api/algorithms   the selectable algorithms
//	GET /api/traces       a recorded trace as JSON
//	GET /api/calltree     the recursion of merge or quick sort as JSON
//	GET /frames.svg       one frame as SVG
//	GET /animation.svg    every frame as an animated SVG
//	GET /calltree.svg     the call tree rendered by Graphviz
//
// Every trace route accepts algorithm, size, seed and input query
// parameters; see [Server.traceOptions].
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/sortviz/pkg/config"
	"github.com/matzehuels/sortviz/pkg/pipeline"
)

const (
	// requestTimeout bounds the work done for a single request.
	requestTimeout = 30 * time.Second

	// shutdownTimeout is how long in-flight requests get to finish.
	shutdownTimeout = 5 * time.Second
)

// Server routes HTTP requests to the pipeline.
type Server struct {
	runner *pipeline.Runner
	cfg    config.Config
	logger *log.Logger
	router chi.Router
}

// New creates a server. cfg supplies the defaults for omitted query
// parameters.
func New(runner *pipeline.Runner, cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, cfg: cfg, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(hooksMiddleware)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/algorithms", s.handleAlgorithms)
		r.Get("/traces", s.handleTrace)
		r.Get("/calltree", s.handleCallTree)
	})
	r.Get("/frames.svg", s.handleFrame)
	r.Get("/animation.svg", s.handleAnimation)
	r.Get("/calltree.svg", s.handleCallTreeSVG)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Code: "NOT_FOUND", Error: "no route for " + r.URL.Path})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
