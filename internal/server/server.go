package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/tailor-engine/internal/audit"
	"github.com/jonathan/tailor-engine/internal/config"
	"github.com/jonathan/tailor-engine/internal/fit"
	"github.com/jonathan/tailor-engine/internal/server/middleware"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	drafts     *DraftStore
	sink       audit.Sink
	analyzer   *fit.Analyzer
	validator  *validator.Validate
	actors     *ActorResolver
	tenantID   string
	logger     *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port int
	// Sink receives submission records; nil uses audit.NoopSink
	Sink audit.Sink
	// Analyzer scores fits; nil uses default facets
	Analyzer *fit.Analyzer
	// JWT enables bearer-token actor resolution on draft routes when set
	JWT *config.JWTConfig
	// DefaultActor is used on draft routes when JWT is nil
	DefaultActor string
	TenantID     string
	Logger       *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.JWT == nil && cfg.DefaultActor == "" {
		return nil, fmt.Errorf("either JWT config or a default actor is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sink := cfg.Sink
	if sink == nil {
		sink = audit.NoopSink{}
	}
	analyzer := cfg.Analyzer
	if analyzer == nil {
		analyzer = fit.NewAnalyzer(fit.DefaultFacetDefaults())
	}

	s := &Server{
		drafts:    NewDraftStore(logger),
		sink:      sink,
		analyzer:  analyzer,
		validator: validator.New(),
		tenantID:  cfg.TenantID,
		logger:    logger,
	}

	actor := middleware.DefaultActorMiddleware(cfg.DefaultActor)
	if cfg.JWT != nil {
		s.actors = NewActorResolver(cfg.JWT)
		actor = middleware.AuthMiddleware(s.actors)
	}
	withActor := func(h http.HandlerFunc) http.Handler { return actor(h) }

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.Handle("POST /tailor", withActor(s.handleTailor))

	// Draft session endpoints
	mux.Handle("GET /drafts/{id}", withActor(s.handleGetDraft))
	mux.Handle("DELETE /drafts/{id}", withActor(s.handleDeleteDraft))
	mux.Handle("PUT /drafts/{id}/content", withActor(s.handleEditContent))
	mux.Handle("PUT /drafts/{id}/integration", withActor(s.handleSetIntegration))
	mux.Handle("PUT /drafts/{id}/signature", withActor(s.handleSetSignature))
	mux.Handle("POST /drafts/{id}/suggestions", withActor(s.handleApplySuggestion))
	mux.Handle("POST /drafts/{id}/suggestions/remove", withActor(s.handleRemoveSuggestion))
	mux.Handle("POST /drafts/{id}/suggestions/all", withActor(s.handleApplyAll))
	mux.Handle("DELETE /drafts/{id}/suggestions", withActor(s.handleClearSuggestions))
	mux.Handle("POST /drafts/{id}/reset", withActor(s.handleResetDraft))
	mux.Handle("POST /drafts/{id}/submit", withActor(s.handleSubmitDraft))
	mux.Handle("GET /drafts/{id}/export", withActor(s.handleExportDraft))

	s.handler = s.withLogging(s.withCORS(mux))

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the routed handler with middleware applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and shuts down gracefully on SIGINT/SIGTERM or ctx cancellation
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status and writes it
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.errorResponse(w, status, err.Error())
}

// decodeJSON decodes and validates a request body. An empty body is accepted when allowEmpty is set.
func (s *Server) decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err != nil && !(allowEmpty && errors.Is(err, io.EOF)) {
		return &ErrValidation{Message: "invalid request body: " + err.Error()}
	}
	if err := s.validator.Struct(dst); err != nil {
		return extractValidationErrors(err)
	}
	return nil
}

// extractValidationErrors converts validator errors into an ErrValidation.
func extractValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		// Return first validation error for simplicity
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Message: "invalid request"}
}
