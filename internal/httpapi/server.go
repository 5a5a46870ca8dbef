// Package httpapi serves the list screens and activity feeds as JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/logger"
	"hr-dashboard/internal/metrics"
	"hr-dashboard/internal/query"
	"hr-dashboard/internal/repository"
	"hr-dashboard/internal/screen"
)

const shutdownTimeout = 10 * time.Second

// errorHandler tries to handle an error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

type Server struct {
	store         *repository.Store
	registry      *screen.Registry
	logger        *zap.Logger
	errorHandlers []errorHandler
}

func NewServer(store *repository.Store, registry *screen.Registry, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		store:    store,
		registry: registry,
		logger:   log,
	}
	s.errorHandlers = []errorHandler{
		queryErrorHandler,
		sentinelHandler(screen.ErrUnknownScreen, http.StatusNotFound, "unknown_screen"),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, "not_found"),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, "already_exists"),
		sentinelHandler(domain.ErrInvalid, http.StatusBadRequest, "invalid_request"),
	}
	return s
}

// Router builds the chi router with the middleware chain.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(metrics.Middleware())

	r.Get("/healthz", s.health)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/screens", s.listScreens)
		r.Get("/screens/{screen}", s.deriveScreen)
		r.Get("/screens/{screen}/views", s.listViews)
		r.Get("/users/{id}/feed", s.feed)
		r.Post("/users/{id}/feed/read", s.markAllRead)
		r.Post("/notifications/{id}/read", s.markRead)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Received shutdown signal")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Error during shutdown", zap.Error(err))
		return err
	}
	<-errCh

	s.logger.Info("Server stopped gracefully")
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		resp := errorResponse{Code: code, Message: err.Error()}
		var unknown *screen.UnknownScreenError
		if errors.As(err, &unknown) {
			resp.Suggestions = unknown.Suggestions
		}
		writeJSON(w, status, resp)
		return true
	}
}

// queryErrorHandler reports malformed queries and unknown fields as 400.
func queryErrorHandler(w http.ResponseWriter, err error) bool {
	var unknown *query.UnknownFieldError
	if errors.As(err, &unknown) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:        "unknown_field",
			Message:     err.Error(),
			Suggestions: unknown.Suggestions,
		})
		return true
	}

	var parseErr *query.ParseError
	if errors.As(err, &parseErr) {
		writeError(w, http.StatusBadRequest, "invalid_query", err.Error())
		return true
	}
	return false
}

func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Warn("request rejected", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
