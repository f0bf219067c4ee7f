// Package api - Thin HTTP layer over the estimator
// The API is ONLY responsible for: input decoding, orchestration, output serialization.
// The API NEVER performs pricing logic.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sitegen-cost/core/determinism"
	"sitegen-cost/core/estimator"
	"sitegen-cost/core/packs"
	apperrors "sitegen-cost/internal/errors"
	"sitegen-cost/internal/logging"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// Options configures a Server
type Options struct {
	Version      string
	Estimator    *estimator.Estimator
	Packs        []packs.Pack
	Logger       *zap.Logger
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	version string
	logger  *zap.Logger
	opts    Options
	http    *http.Server
}

// NewServer creates a new API server
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Logger
	}

	s := &Server{
		handler: NewHandler(opts.Estimator, opts.Packs),
		mux:     http.NewServeMux(),
		version: opts.Version,
		logger:  logger,
		opts:    opts,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("POST /balance", s.handleBalance)
	s.mux.HandleFunc("POST /diff", s.handleDiff)

	// Supporting endpoints
	s.mux.HandleFunc("GET /catalog", s.handleCatalog)
	s.mux.HandleFunc("GET /catalog/{name}", s.handleCategory)
	s.mux.HandleFunc("GET /packs", s.handlePacks)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EstimateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	inputHash, err := determinism.HashJSON(&req)
	if err != nil {
		s.writeError(w, r, apperrors.Internal("failed to hash request", err))
		return
	}

	// Execute estimator (NO PRICING LOGIC HERE)
	result, err := s.handler.estimate(r.Context(), requestIDFrom(r.Context()), &req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result.Metadata = &ResponseMetadata{
		InputHash:     inputHash.Hex(),
		EngineVersion: s.version,
		DurationMs:    time.Since(start).Milliseconds(),
	}

	s.writeJSON(w, result, http.StatusOK)
}

// handleBalance handles POST /balance
func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	var req BalanceRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.handler.balance(&req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, result, http.StatusOK)
}

// handleDiff handles POST /diff
func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req DiffRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.handler.diff(&req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	result.DurationMs = time.Since(start).Milliseconds()
	s.writeJSON(w, result, http.StatusOK)
}

// handleCatalog handles GET /catalog
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.handler.catalog(), http.StatusOK)
}

// handleCategory handles GET /catalog/{name}
func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	view, err := s.handler.category(r.PathValue("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, view, http.StatusOK)
}

// handlePacks handles GET /packs
func (s *Server) handlePacks(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.handler.packList(), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "sitegen-cost",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return apperrors.Wrap(apperrors.TypeInput, "invalid JSON body", err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request failed", zap.Error(err))
	}

	message := err.Error()
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	s.writeJSON(w, ErrorResponse{Error: ErrorBody{
		Code:      string(apperrors.TypeOf(err)),
		Message:   message,
		RequestID: requestIDFrom(r.Context()),
	}}, status)
}

// statusFor maps an error type to an HTTP status
func statusFor(err error) int {
	switch apperrors.TypeOf(err) {
	case apperrors.TypeInput, apperrors.TypeParsing:
		return http.StatusBadRequest
	case apperrors.TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, requestID)

	logger := s.logger.With(zap.String("request_id", requestID))
	ctx := logging.WithContext(withRequestID(r.Context(), requestID), logger)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r.WithContext(ctx))

	logger.Info("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)),
	)
}

// ListenAndServe starts the server and blocks until ctx is cancelled or
// the listener fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type requestIDKey struct{}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
