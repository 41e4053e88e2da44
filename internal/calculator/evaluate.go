package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/mathutil"
	"github.com/spf13/cast"
	"go.uber.org/multierr"
)

// Evaluate validates raw against the definition's variables and invokes its
// calculation. Keys in raw that are not declared are ignored. When any
// declared variable is missing or not a number the calculation is not run
// and the returned error combines one MissingVariableError or
// InvalidNumberError per offending variable. A result holding NaN or ±Inf is
// never returned; it is reported as a CalculationError.
func Evaluate(def Definition, raw map[string]any) (Result, error) {
	values, err := Coerce(def, raw)
	if err != nil {
		return Result{}, err
	}

	result := def.Calculate(NewValues(values))
	if name, ok := nonFinite(result); ok {
		return Result{}, &CalculationError{
			Identifier: def.Identifier,
			Cause:      fmt.Sprintf("output %s is not a finite number", name),
		}
	}
	return result, nil
}

// nonFinite returns the name of the first output that is NaN or ±Inf.
func nonFinite(result Result) (string, bool) {
	if !result.IsNamed() {
		return "result", !mathutil.IsFinite(result.Value())
	}
	for _, o := range result.outputs {
		if !mathutil.IsFinite(o.Value) {
			return o.Name, true
		}
	}
	return "", false
}

// Coerce performs the completeness and numeric checks of Evaluate and returns
// the validated inputs.
func Coerce(def Definition, raw map[string]any) (map[string]float64, error) {
	values := make(map[string]float64, len(def.Variables))
	var errs error

	for _, v := range def.Variables {
		rawValue, present := raw[v.Name]
		if !present || isBlank(rawValue) {
			if v.Default != nil {
				values[v.Name] = *v.Default
				continue
			}
			if present && rawValue != nil {
				errs = multierr.Append(errs, &InvalidNumberError{Name: v.Name, Raw: rawValue})
				continue
			}
			errs = multierr.Append(errs, &MissingVariableError{Name: v.Name})
			continue
		}

		number, ok := toNumber(rawValue)
		if !ok {
			errs = multierr.Append(errs, &InvalidNumberError{Name: v.Name, Raw: rawValue})
			continue
		}
		values[v.Name] = number
	}

	if errs != nil {
		return nil, errs
	}
	return values, nil
}

// isBlank treats an absent form field and an empty text box alike so that a
// default can fill either.
func isBlank(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(v) == 0 || strings.TrimSpace(v[0]) == ""
	}
	return false
}

func toNumber(raw any) (float64, bool) {
	var (
		number float64
		err    error
	)

	switch v := raw.(type) {
	case bool:
		return 0, false
	case string:
		number, err = cast.ToFloat64E(strings.TrimSpace(v))
	case []string:
		// url.Values style input: the first submitted value wins.
		return toNumber(v[0])
	case json.Number:
		number, err = v.Float64()
	default:
		number, err = cast.ToFloat64E(v)
	}

	if err != nil || !mathutil.IsFinite(number) {
		return 0, false
	}
	return number, true
}

// Evaluate looks up identifier and evaluates raw against it.
func (r *Registry) Evaluate(identifier string, raw map[string]any) (Result, error) {
	def, err := r.Lookup(identifier)
	if err != nil {
		return Result{}, err
	}
	return Evaluate(def, raw)
}

// Request is one item of a batch evaluation.
type Request struct {
	Identifier string         `json:"identifier"`
	Values     map[string]any `json:"values"`
}

// Outcome pairs a batch request's identifier with its result or error.
type Outcome struct {
	Identifier string
	Result     Result
	Err        error
}

// EvaluateAll evaluates every request independently. A failure in one item,
// including a panicking calculation, is reported in that item's Outcome and
// does not affect the others. Outcomes are returned in request order.
func (r *Registry) EvaluateAll(requests []Request) []Outcome {
	outcomes := make([]Outcome, len(requests))
	for i, req := range requests {
		outcomes[i] = r.evaluateIsolated(req)
	}
	return outcomes
}

func (r *Registry) evaluateIsolated(req Request) (outcome Outcome) {
	outcome.Identifier = req.Identifier
	defer func() {
		if recovered := recover(); recovered != nil {
			outcome.Result = Result{}
			outcome.Err = &CalculationError{Identifier: req.Identifier, Cause: recovered}
		}
	}()

	result, err := r.Evaluate(req.Identifier, req.Values)
	outcome.Result = result
	outcome.Err = err
	return outcome
}

// IsNotFound reports whether err signals an unknown calculator.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
