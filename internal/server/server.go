// Package server exposes the layout and compliance engine over HTTP.
//
// The API is a thin layer: all semantics live in the pipeline, store, and
// format packages. Handlers decode the request, call the engine, and map
// engine error codes onto HTTP status codes.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/brandforge/adcanvas/pkg/format"
	"github.com/brandforge/adcanvas/pkg/pipeline"
	"github.com/brandforge/adcanvas/pkg/store"
)

// Config assembles a Server's collaborators. Zero-value fields get
// sensible defaults: an in-memory store, the built-in format catalog, a
// cacheless runner, and the default logger.
type Config struct {
	Runner  *pipeline.Runner
	Store   store.Store
	Catalog *format.Catalog
	Logger  *log.Logger
}

// Server is the HTTP front end.
type Server struct {
	router  chi.Router
	runner  *pipeline.Runner
	store   store.Store
	catalog *format.Catalog
	logger  *log.Logger
}

// New builds a Server and mounts its routes.
func New(cfg Config) *Server {
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = format.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	s := &Server{
		router:  chi.NewRouter(),
		runner:  cfg.Runner,
		store:   cfg.Store,
		catalog: cfg.Catalog,
		logger:  cfg.Logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(requestID)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/formats", s.handleListFormats)
		r.Get("/formats/{formatID}", s.handleGetFormat)

		r.Post("/compliance", s.handleCompliance)
		r.Post("/resize", s.handleResize)

		r.Route("/documents", func(r chi.Router) {
			r.Get("/", s.handleListDocuments)
			r.Post("/", s.handleSaveDocument)
			r.Get("/{documentID}", s.handleGetDocument)
			r.Delete("/{documentID}", s.handleDeleteDocument)
		})
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
