// Package web serves the farm service as a JSON HTTP API.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/vbonduro/verdearido/internal/metrics"
	"github.com/vbonduro/verdearido/internal/service"
)

type Options struct {
	// Metrics, when set, instruments every route and serves GET /metrics.
	Metrics *metrics.Metrics
	// LookupRate and LookupBurst size the token bucket shared by the
	// registry lookup routes. A non-positive rate disables the limit.
	LookupRate  float64
	LookupBurst int
}

type Server struct {
	service *service.FarmService
	router  chi.Router
	metrics *metrics.Metrics
	lookups *rate.Limiter
	logger  *slog.Logger
}

func NewServer(svc *service.FarmService, opts Options, logger *slog.Logger) *Server {
	s := &Server{
		service: svc,
		router:  chi.NewRouter(),
		metrics: opts.Metrics,
		logger:  logger,
	}
	if opts.LookupRate > 0 {
		burst := opts.LookupBurst
		if burst < 1 {
			burst = 1
		}
		s.lookups = rate.NewLimiter(rate.Limit(opts.LookupRate), burst)
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	r := s.router
	r.Use(chimiddleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(securityHeaders)
	if s.metrics != nil {
		r.Use(s.instrument)
	}
	// Recoverer sits inside the logger and instrumentation so a panic is
	// still logged and counted as a 500.
	r.Use(chimiddleware.Recoverer)

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Get("/healthz", s.handleHealth)
	r.Post("/session/login", s.handleLogin)
	r.Post("/session/logout", s.handleLogout)
	r.Get("/partners", s.handlePartners)

	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)

		r.Get("/summary", s.handleSummary)

		r.Get("/producer", s.handleGetProducer)
		r.Put("/producer", s.handlePutProducer)
		r.With(s.limitLookups).Post("/producer/lookup", s.handleLookupProducer)

		r.Route("/terrains", func(r chi.Router) {
			r.Get("/", s.handleListTerrains)
			r.Post("/", s.handleCreateTerrain)
			r.With(s.limitLookups).Post("/car-lookup", s.handleLookupCAR)
			r.Put("/current", s.handleSetCurrentTerrain)
			r.Get("/current", s.handleGetCurrentTerrain)
			r.Get("/{id}", s.handleGetTerrain)
			r.Patch("/{id}", s.handleUpdateTerrain)
			r.Delete("/{id}", s.handleDeleteTerrain)
			r.Get("/{id}/talhoes", s.handleListTerrainTalhoes)
		})

		r.Route("/talhoes", func(r chi.Router) {
			r.Get("/", s.handleListTalhoes)
			r.Post("/", s.handleCreateTalhao)
			r.Get("/{id}", s.handleGetTalhao)
			r.Patch("/{id}", s.handleUpdateTalhao)
			r.Delete("/{id}", s.handleDeleteTalhao)
			r.Post("/{id}/fragments", s.handleCreateFragment)
			r.Patch("/{id}/fragments/{fid}", s.handleUpdateFragment)
			r.Delete("/{id}/fragments/{fid}", s.handleDeleteFragment)
		})

		r.Route("/animal-groups", func(r chi.Router) {
			r.Get("/", s.handleListAnimalGroups)
			r.Post("/", s.handleCreateAnimalGroup)
			r.Get("/{id}", s.handleGetAnimalGroup)
			r.Patch("/{id}", s.handleUpdateAnimalGroup)
			r.Delete("/{id}", s.handleDeleteAnimalGroup)
			r.Get("/{id}/goals", s.handleListGoals)
		})

		r.Route("/calculations", func(r chi.Router) {
			r.Post("/planting", s.handlePlanting)
			r.Post("/diet", s.handleDiet)
			r.Post("/grazing", s.handleGrazing)
		})
	})
}

// securityHeaders sets the response headers of a JSON-only API.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	})
}

// instrument records request counts and latency by route pattern. The
// pattern is only known once chi has routed the request.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		s.metrics.ObserveHTTP(r.Method, route, rec.status, time.Since(start))
	})
}

func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.service.LoggedIn(r.Context()) {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) limitLookups(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.lookups != nil && !s.lookups.Allow() {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "too many lookups, try again shortly")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
