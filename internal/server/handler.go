// Package server exposes the calculators site and JSON API over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/publish"
	"github.com/iwvelando/finance-calculators/internal/site"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Options wires the handler to its collaborators. Registry, Renderer and
// Publisher are required.
type Options struct {
	Logger      *zap.Logger
	Registry    *calculator.Registry
	Renderer    *site.Renderer
	Publisher   *publish.Publisher
	MaxBodySize int64
	RateLimit   float64 // API requests per second; 0 disables limiting
	RateBurst   int
	BatchLimit  int
	Version     string
}

type handler struct {
	logger      *zap.Logger
	registry    *calculator.Registry
	renderer    *site.Renderer
	publisher   *publish.Publisher
	maxBodySize int64
	batchLimit  int
	version     string
}

// NewHandler constructs the HTTP handler that serves the pages, published
// documents and JSON API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	batchLimit := opts.BatchLimit
	if batchLimit <= 0 {
		batchLimit = constants.DefaultBatchLimit
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:      logger,
		registry:    opts.Registry,
		renderer:    opts.Renderer,
		publisher:   opts.Publisher,
		maxBodySize: maxBodySize,
		batchLimit:  batchLimit,
		version:     version,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	// Pages
	r.Get("/", h.handleHome)
	r.Get("/calculators/{id}", h.handleCalculator)
	r.Get("/about", h.handleAbout)
	r.Get("/contact", h.handleContact)

	// Published documents
	r.Get("/"+constants.SitemapFile, h.handleDocument(sitemapDocument))
	r.Get("/"+constants.RSSFile, h.handleDocument(rssDocument))
	r.Get("/"+constants.AtomFile, h.handleDocument(atomDocument))
	r.Get("/"+constants.RobotsFile, h.handleDocument(robotsDocument))

	// Static assets
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(site.Static()))))

	r.Get("/healthz", h.handleHealth)

	r.Route("/api", func(api chi.Router) {
		if opts.RateLimit > 0 {
			burst := opts.RateBurst
			if burst < 1 {
				burst = 1
			}
			api.Use(rateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), burst), h))
		}
		api.Use(h.limitBody)

		api.Get("/calculators", h.handleListCalculators)
		api.Get("/calculators/{id}", h.handleGetCalculator)
		api.Post("/calculators/{id}/evaluate", h.handleEvaluate)
		api.Post("/evaluate", h.handleEvaluateBatch)
		api.Get("/version", h.handleVersion)
		api.NotFound(h.handleAPINotFound)
	})

	r.NotFound(h.handleNotFound)

	return r
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"calculators": h.registry.Len(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.respondErrorBody(w, status, errorResponse{Error: msg}, op)
}

func (h *handler) respondErrorBody(w http.ResponseWriter, status int, body errorResponse, op string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", body.Error),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Debug("request rejected", fields...)
	}

	h.writeJSON(w, status, body)
}

// writeJSON encodes payload before committing the status so that an encoding
// failure is answered with a 500 instead of a truncated success.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Int("status", status),
			zap.Error(err),
		)
		if _, isError := payload.(errorResponse); isError {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		h.respondErrorWithOp(w, http.StatusInternalServerError, "failed to encode response", "server.writeJSON")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Debug("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
