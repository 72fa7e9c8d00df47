// Package server exposes the layout pipeline over HTTP.
//
// The API mirrors the CLI: POST /api/v1/generate runs the full search
// pipeline, POST /api/v1/evaluate re-scores a posted layout, and
// GET /healthz reports liveness. Request and response bodies use the
// same JSON shapes as the pipeline and planfile packages.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/evaluate"
	"github.com/matzehuels/planforge/pkg/pipeline"
	"github.com/matzehuels/planforge/pkg/planfile"
)

// maxBodyBytes caps request bodies. Layouts and run options are small;
// anything past this is a malformed or hostile request.
const maxBodyBytes = 1 << 20

// Server routes pipeline requests. Create one with New and mount it as
// an http.Handler.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by the given runner. A nil logger falls
// back to the default logger.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Post("/evaluate", s.handleEvaluate)
	})
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGenerate runs the search pipeline for the posted options and
// returns the full result: layout, per-dimension scores, and run stats.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := s.decodeBody(w, r, &opts); err != nil {
		s.writeError(w, err)
		return
	}
	opts.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("generate request served",
		"run_id", result.RunID,
		"rooms", result.Stats.RoomsPlaced,
		"cached", result.CacheInfo.RunHit)
	s.writeJSON(w, http.StatusOK, result)
}

// evaluateResponse pairs a layout's scores with its weighted total.
type evaluateResponse struct {
	Scores map[evaluate.Dimension]evaluate.Result `json:"scores"`
	Total  float64                                `json:"total"`
}

// handleEvaluate scores a posted layout without running a search.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	layout, err := planfile.ReadJSON(body)
	if err != nil {
		s.writeError(w, err)
		return
	}

	scores := s.runner.Score(r.Context(), layout, evaluate.Config{})
	s.writeJSON(w, http.StatusOK, evaluateResponse{
		Scores: scores,
		Total:  scores[evaluate.Total].Weighted,
	})
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidFootprint, errors.ErrCodeInvalidRequirement,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  code,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "error", err)
	}
}
