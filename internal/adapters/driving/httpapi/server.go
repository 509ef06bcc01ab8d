package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/farooqu/cooklang-store/internal/core/ports/driving"
	"github.com/farooqu/cooklang-store/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// stop signal.
const shutdownTimeout = 5 * time.Second

// Server serves the recipe API over HTTP.
type Server struct {
	svc  driving.RecipeService
	http *http.Server
}

// NewServer builds a Server listening on addr.
func NewServer(addr string, svc driving.RecipeService) *Server {
	s := &Server{svc: svc}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/v1/status", s.handleStatus)

	mux.HandleFunc("POST /api/v1/recipes", s.handleCreate)
	mux.HandleFunc("GET /api/v1/recipes", s.handleList)
	mux.HandleFunc("GET /api/v1/recipes/search", s.handleSearch)
	mux.HandleFunc("GET /api/v1/recipes/filter", s.handleFilter)
	mux.HandleFunc("GET /api/v1/recipes/{id}", s.handleRead)
	mux.HandleFunc("PUT /api/v1/recipes/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /api/v1/recipes/{id}", s.handleDelete)

	mux.HandleFunc("GET /api/v1/categories", s.handleCategories)
	mux.HandleFunc("GET /api/v1/categories/{name...}", s.handleCategory)

	return s.logRequests(mux)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http: listening on %s", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler { return s.routes() }

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("http: %s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}
