package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/publish"
	"github.com/iwvelando/finance-calculators/internal/site"
	"go.uber.org/zap"
)

func (h *handler) writeHTML(w http.ResponseWriter, status int, page []byte, err error, op string) {
	if err != nil {
		h.logger.Error("failed to render page",
			zap.String("op", op),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(page); err != nil {
		h.logger.Debug("failed to write page",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

func (h *handler) handleHome(w http.ResponseWriter, r *http.Request) {
	page, err := h.renderer.Home()
	h.writeHTML(w, http.StatusOK, page, err, "server.handleHome")
}

func (h *handler) handleAbout(w http.ResponseWriter, r *http.Request) {
	page, err := h.renderer.About()
	h.writeHTML(w, http.StatusOK, page, err, "server.handleAbout")
}

func (h *handler) handleContact(w http.ResponseWriter, r *http.Request) {
	page, err := h.renderer.Contact()
	h.writeHTML(w, http.StatusOK, page, err, "server.handleContact")
}

// handleCalculator renders the calculator form. A query string naming any
// declared variable is treated as a submission and evaluated; a failed
// evaluation is rendered inline with the status evaluationStatus assigns.
func (h *handler) handleCalculator(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculator"

	def, err := h.registry.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		h.handleNotFound(w, r)
		return
	}

	query := r.URL.Query()
	state := site.CalculatorState{Values: query}
	status := http.StatusOK

	if site.Submitted(def, query) {
		state.Submitted = true
		state.Result, state.Err = calculator.Evaluate(def, site.QueryInput(query))
		if state.Err != nil {
			status = evaluationStatus(state.Err)
			h.logger.Debug("calculator input rejected",
				zap.String("op", op),
				zap.String("identifier", def.Identifier),
				zap.Error(state.Err),
			)
		}
	}

	page, err := h.renderer.Calculator(def, state)
	h.writeHTML(w, status, page, err, op)
}

func (h *handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	page, err := h.renderer.NotFound(r.URL.Path)
	h.writeHTML(w, http.StatusNotFound, page, err, "server.handleNotFound")
}

type documentKind int

const (
	sitemapDocument documentKind = iota
	rssDocument
	atomDocument
	robotsDocument
)

func selectDocument(docs *publish.Documents, kind documentKind) ([]byte, string) {
	switch kind {
	case sitemapDocument:
		return docs.Sitemap, "application/xml; charset=utf-8"
	case rssDocument:
		return docs.RSS, "application/rss+xml; charset=utf-8"
	case atomDocument:
		return docs.Atom, "application/atom+xml; charset=utf-8"
	default:
		return docs.Robots, "text/plain; charset=utf-8"
	}
}

// handleDocument serves the publisher's current snapshot of a document.
func (h *handler) handleDocument(kind documentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := h.publisher.Documents()
		if err != nil {
			h.logger.Error("published documents unavailable",
				zap.String("op", "server.handleDocument"),
				zap.Error(err),
			)
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}

		body, contentType := selectDocument(docs, kind)
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Last-Modified", docs.BuiltAt.UTC().Format(http.TimeFormat))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
