package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/seo"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error  string                  `json:"error"`
	Fields []calculator.FieldError `json:"fields,omitempty"`
}

type variableResponse struct {
	Name     string          `json:"name"`
	Label    string          `json:"label"`
	Kind     calculator.Kind `json:"kind"`
	Default  *float64        `json:"default,omitempty"`
	HelpText string          `json:"helpText,omitempty"`
}

type outputResponse struct {
	Name   string                   `json:"name"`
	Label  string                   `json:"label"`
	Format calculator.DisplayFormat `json:"format"`
}

type calculatorResponse struct {
	Identifier      string             `json:"identifier"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	LongDescription string             `json:"longDescription,omitempty"`
	Category        string             `json:"category,omitempty"`
	Formula         string             `json:"formula,omitempty"`
	Keywords        []string           `json:"keywords,omitempty"`
	Path            string             `json:"path"`
	Variables       []variableResponse `json:"variables"`
	Outputs         []outputResponse   `json:"outputs,omitempty"`
}

type listResponse struct {
	Calculators []calculatorResponse `json:"calculators"`
}

type evaluateRequest struct {
	Values map[string]any `json:"values"`
}

type evaluateResponse struct {
	Identifier string            `json:"identifier"`
	Result     calculator.Result `json:"result"`
}

type batchRequest struct {
	Requests []calculator.Request `json:"requests"`
}

type batchItem struct {
	Identifier string                  `json:"identifier"`
	Result     *calculator.Result      `json:"result,omitempty"`
	Error      string                  `json:"error,omitempty"`
	Fields     []calculator.FieldError `json:"fields,omitempty"`
}

type batchResponse struct {
	Results []batchItem `json:"results"`
}

func toCalculatorResponse(def calculator.Definition, detailed bool) calculatorResponse {
	resp := calculatorResponse{
		Identifier:  def.Identifier,
		Name:        def.Name,
		Description: def.Description,
		Category:    def.Category,
		Formula:     def.Formula,
		Keywords:    def.Keywords,
		Path:        seo.CalculatorPath(def.Identifier),
		Variables:   make([]variableResponse, 0, len(def.Variables)),
	}
	if detailed {
		resp.LongDescription = def.LongDescription
	}
	for _, v := range def.Variables {
		resp.Variables = append(resp.Variables, variableResponse{
			Name:     v.Name,
			Label:    v.Label,
			Kind:     v.Kind,
			Default:  v.Default,
			HelpText: v.HelpText,
		})
	}
	for _, o := range def.Outputs {
		resp.Outputs = append(resp.Outputs, outputResponse{Name: o.Name, Label: o.Label, Format: o.Format})
	}
	return resp
}

func (h *handler) handleListCalculators(w http.ResponseWriter, r *http.Request) {
	defs := h.registry.List()
	resp := listResponse{Calculators: make([]calculatorResponse, 0, len(defs))}
	for _, def := range defs {
		resp.Calculators = append(resp.Calculators, toCalculatorResponse(def, false))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleGetCalculator(w http.ResponseWriter, r *http.Request) {
	def, err := h.registry.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), "server.handleGetCalculator")
		return
	}
	h.writeJSON(w, http.StatusOK, toCalculatorResponse(def, true))
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEvaluate"

	def, err := h.registry.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
		return
	}

	var req evaluateRequest
	if status, err := h.decodeJSON(r, &req); err != nil {
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}
	if req.Values == nil {
		req.Values = map[string]any{}
	}

	result, err := calculator.Evaluate(def, req.Values)
	if err != nil {
		status := evaluationStatus(err)
		if status == http.StatusBadRequest {
			h.respondErrorBody(w, status, errorResponse{
				Error:  "invalid input for " + def.Identifier,
				Fields: calculator.FieldErrors(err),
			}, op)
			return
		}
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, evaluateResponse{Identifier: def.Identifier, Result: result})
}

func (h *handler) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEvaluateBatch"

	var req batchRequest
	if status, err := h.decodeJSON(r, &req); err != nil {
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}
	if len(req.Requests) == 0 {
		h.respondErrorWithOp(w, http.StatusBadRequest, "no requests to evaluate", op)
		return
	}
	if len(req.Requests) > h.batchLimit {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("batch of %d exceeds limit of %d", len(req.Requests), h.batchLimit), op)
		return
	}

	outcomes := h.registry.EvaluateAll(req.Requests)
	resp := batchResponse{Results: make([]batchItem, 0, len(outcomes))}
	for _, outcome := range outcomes {
		item := batchItem{Identifier: outcome.Identifier}
		if outcome.Err != nil {
			item.Error = outcome.Err.Error()
			item.Fields = calculator.FieldErrors(outcome.Err)

			var calcErr *calculator.CalculationError
			if errors.As(outcome.Err, &calcErr) {
				h.logger.Error("calculation failed",
					zap.String("op", op),
					zap.String("identifier", outcome.Identifier),
					zap.Error(outcome.Err),
				)
			}
		} else {
			result := outcome.Result
			item.Result = &result
		}
		resp.Results = append(resp.Results, item)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// decodeJSON reads a single JSON object. Numbers are kept as json.Number so
// the evaluator sees the exact submitted text.
func (h *handler) decodeJSON(r *http.Request, v any) (int, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds limit of %d bytes", h.maxBodySize)
		case errors.Is(err, io.EOF):
			return http.StatusBadRequest, errors.New("request body is empty")
		default:
			return http.StatusBadRequest, fmt.Errorf("invalid JSON body: %v", err)
		}
	}
	return http.StatusOK, nil
}

// evaluationStatus maps an evaluation error to its HTTP status: 400 for bad
// input, 422 for a calculation that cannot produce a finite result.
func evaluationStatus(err error) int {
	var calcErr *calculator.CalculationError
	switch {
	case calculator.IsValidationError(err):
		return http.StatusBadRequest
	case errors.As(err, &calcErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	h.respondErrorWithOp(w, http.StatusNotFound, "no such endpoint", "server.handleAPINotFound")
}
