// Package server exposes the layout pipeline over HTTP.
//
// Routes:
//
//	POST /v1/layout            compute a layout, respond with JSON
//	POST /v1/render/{format}   render svg or json
//	GET  /healthz              liveness and build information
//
// Request bodies are JSON:
//
//	{"text": "the cat and the hat.", "config": {"width": 1200}, "selection": {"word": "hat"}}
//
// Omitted config fields keep the server's defaults.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/wordtower/pkg/buildinfo"
	"github.com/matzehuels/wordtower/pkg/errors"
	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/pipeline"
	"github.com/matzehuels/wordtower/pkg/selection"
)

// DefaultMaxBodyBytes bounds request bodies.
const DefaultMaxBodyBytes = 1 << 20

// statusClientClosed is logged when the client went away mid-request.
const statusClientClosed = 499

// Handler serves the API routes.
type Handler struct {
	runner   *pipeline.Runner
	defaults pipeline.Options
	logger   *log.Logger
	maxBody  int64
}

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	// Runner executes the pipeline (required).
	Runner *pipeline.Runner
	// Defaults supplies the layout config, selection and listing range used
	// when a request omits them.
	Defaults pipeline.Options
	// Logger receives one record per request. Defaults to the runner's.
	Logger *log.Logger
	// MaxBodyBytes bounds request bodies. Defaults to DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// NewHandler fills and validates the defaults and returns a handler.
func NewHandler(cfg HandlerConfig) (*Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = cfg.Runner.Logger
	}

	defaults := cfg.Defaults
	if defaults.Logger == nil {
		defaults.Logger = logger
	}
	if err := defaults.ValidateForLayout(); err != nil {
		return nil, err
	}
	if defaults.DefaultSelection == (selection.Selection{}) {
		defaults.DefaultSelection = defaults.Selection
	}
	if err := defaults.ValidateForRender(); err != nil {
		return nil, err
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &Handler{
		runner:   cfg.Runner,
		defaults: defaults,
		logger:   logger,
		maxBody:  maxBody,
	}, nil
}

// Routes returns the router with middleware installed.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", h.Layout)
		r.Post("/render/{format}", h.Render)
	})
	return r
}

// Request is the body of both POST routes.
type Request struct {
	Text      string               `json:"text"`
	Config    *layout.Config       `json:"config,omitempty"`
	Selection *selection.Selection `json:"selection,omitempty"`
	Listing   bool                 `json:"listing,omitempty"`
	Static    bool                 `json:"static,omitempty"`
}

// LayoutResponse is the body returned by POST /v1/layout.
type LayoutResponse struct {
	Layout    *layout.Layout      `json:"layout"`
	Selection selection.Selection `json:"selection"`
	Stats     StatsResponse       `json:"stats"`
	Cached    bool                `json:"cached"`
}

// StatsResponse summarizes the text.
type StatsResponse struct {
	Words      int `json:"words"`
	Characters int `json:"characters"`
	Distinct   int `json:"distinct"`
}

// HealthResponse is the body returned by GET /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// ErrorResponse is the body of every error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Health reports liveness.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Current()})
}

// Layout computes a layout.
// POST /v1/layout
func (h *Handler) Layout(w http.ResponseWriter, r *http.Request) {
	doc, opts, err := h.decode(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	l, _, hit, err := h.runner.ComputeLayoutWithCacheInfo(r.Context(), doc, opts)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, LayoutResponse{
		Layout:    l,
		Selection: opts.ResolveSelection(l),
		Stats: StatsResponse{
			Words:      l.WordCount,
			Characters: l.CharacterCount,
			Distinct:   l.DistinctCount,
		},
		Cached: hit,
	})
}

// Render renders one artifact.
// POST /v1/render/{format}
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		h.writeError(w, err)
		return
	}

	doc, opts, err := h.decode(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	opts.Formats = []string{format}

	result, err := h.runner.Execute(r.Context(), doc, opts)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	if result.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Artifacts[format]); err != nil {
		h.logger.Warn("write response", "err", err)
	}
}

// decode reads a Request over the handler defaults.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (string, pipeline.Options, error) {
	opts := h.defaults
	opts.Config.Punctuation = append(opts.Config.Punctuation[:0:0], opts.Config.Punctuation...)
	opts.Formats = nil

	cfg := opts.Config
	sel := opts.Selection
	req := Request{Config: &cfg, Selection: &sel}

	body := http.MaxBytesReader(w, r.Body, h.maxBody)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return "", opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "request body exceeds %d bytes", h.maxBody)
		}
		return "", opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}

	if req.Config != nil {
		opts.Config = *req.Config
	}
	if req.Selection != nil {
		opts.Selection = *req.Selection
	}
	opts.Listing = req.Listing
	opts.Static = req.Static
	return req.Text, opts, nil
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	resp := ErrorResponse{Error: errors.UserMessage(err), Code: string(code)}
	if cause := stderrors.Unwrap(err); cause != nil && status < http.StatusInternalServerError {
		resp.Details = cause.Error()
	}
	writeJSON(w, h.logger, status, resp)
}

// statusFor maps error codes to HTTP statuses: INVALID_* is a client error,
// everything else is a server error.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, context.Canceled):
		return statusClientClosed
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, logger *log.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("encode response", "err", err)
	}
}

func contentType(format string) string {
	if format == pipeline.FormatSVG {
		return "image/svg+xml"
	}
	return "application/json"
}
