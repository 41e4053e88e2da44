// Package calculator defines the financial calculator formulas, the registry
// that holds them and the evaluator that turns raw form input into results.
//
// Definitions are immutable once registered. Evaluation is a pure function of
// the definition and the input mapping, so a Registry is safe for concurrent
// use without locking.
package calculator

import (
	"encoding/json"
	"fmt"

	"github.com/iwvelando/finance-calculators/pkg/format"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// Kind classifies an input variable.
type Kind int

const (
	// KindNumber is a plain numeric input (amounts, counts, years).
	KindNumber Kind = iota
	// KindPercentage is a whole-number percent, e.g. 15 meaning 15%.
	KindPercentage
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindPercentage:
		return "percentage"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k != KindNumber && k != KindPercentage {
		return nil, fmt.Errorf("unknown variable kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// Variable declares one input slot of a formula.
type Variable struct {
	Name     string
	Label    string
	Kind     Kind
	Default  *float64
	HelpText string
}

// HasDefault reports whether the variable declares a default value.
func (v Variable) HasDefault() bool {
	return v.Default != nil
}

// DisplayFormat controls how an output is rendered on pages.
type DisplayFormat string

const (
	// FormatCurrency renders dollars with cents, e.g. "$1,234.50".
	FormatCurrency DisplayFormat = "currency"
	// FormatPercent renders a whole-number percent, e.g. "12.5%".
	FormatPercent DisplayFormat = "percent"
	// FormatNumber renders a plain number with at most two decimals.
	FormatNumber DisplayFormat = "number"
)

// Format renders value for display. Unknown formats fall back to a plain
// number.
func (f DisplayFormat) Format(value float64) string {
	switch f {
	case FormatCurrency:
		return format.Currency(value)
	case FormatPercent:
		return format.Percent(value)
	default:
		return format.Number(value)
	}
}

// OutputSpec describes one named result of a formula for display purposes.
type OutputSpec struct {
	Name   string
	Label  string
	Format DisplayFormat
}

// Func is a pure calculation over validated inputs.
type Func func(Values) Result

// Definition describes one calculator: its identity, presentational text,
// declared inputs and calculation.
type Definition struct {
	Identifier      string
	Name            string
	Description     string
	LongDescription string // Markdown
	Category        string
	Formula         string
	Keywords        []string
	Variables       []Variable
	Outputs         []OutputSpec
	Calculate       Func
}

// Variable returns the declared variable with the given name.
func (d Definition) Variable(name string) (Variable, bool) {
	for _, v := range d.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// Output returns the output spec with the given name.
func (d Definition) Output(name string) (OutputSpec, bool) {
	for _, o := range d.Outputs {
		if o.Name == name {
			return o, true
		}
	}
	return OutputSpec{}, false
}

// Defaults returns the declared default values keyed by variable name.
func (d Definition) Defaults() map[string]float64 {
	defaults := make(map[string]float64, len(d.Variables))
	for _, v := range d.Variables {
		if v.Default != nil {
			defaults[v.Name] = *v.Default
		}
	}
	return defaults
}

// Values is the read-only view of coerced inputs handed to a Func.
type Values struct {
	values map[string]float64
	probe  *probe
}

// probe records reads of names that were never declared.
type probe struct {
	undeclared []string
}

// NewValues builds a Values view over a copy of values.
func NewValues(values map[string]float64) Values {
	copied := make(map[string]float64, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Values{values: copied}
}

// Get returns the value of the named input. Unknown names read as 0.
func (v Values) Get(name string) float64 {
	value, ok := v.values[name]
	if !ok && v.probe != nil {
		v.probe.undeclared = append(v.probe.undeclared, name)
	}
	return value
}

// Percent returns a percentage input as a fraction (15 -> 0.15).
func (v Values) Percent(name string) float64 {
	return mathutil.PercentToDecimal(v.Get(name))
}

// Len returns the number of inputs.
func (v Values) Len() int {
	return len(v.values)
}

// Output is one named result value.
type Output struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Result is what a Func produces: either a single value or an ordered set of
// named values.
type Result struct {
	named   bool
	value   float64
	outputs []Output
}

// Single builds a single-valued result.
func Single(value float64) Result {
	return Result{value: value}
}

// Named builds a result from named outputs, preserving their order.
func Named(outputs ...Output) Result {
	return Result{named: true, outputs: append([]Output(nil), outputs...)}
}

// IsNamed reports whether the result is a mapping of named outputs.
func (r Result) IsNamed() bool {
	return r.named
}

// Value returns the single value. For named results it returns 0.
func (r Result) Value() float64 {
	return r.value
}

// Outputs returns a copy of the named outputs in declaration order.
func (r Result) Outputs() []Output {
	return append([]Output(nil), r.outputs...)
}

// Get returns the named output.
func (r Result) Get(name string) (float64, bool) {
	for _, o := range r.outputs {
		if o.Name == name {
			return o.Value, true
		}
	}
	return 0, false
}

// Map returns named outputs keyed by name.
func (r Result) Map() map[string]float64 {
	m := make(map[string]float64, len(r.outputs))
	for _, o := range r.outputs {
		m[o.Name] = o.Value
	}
	return m
}

// MarshalJSON encodes a single result as a number and a named result as an
// object.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.named {
		return json.Marshal(r.value)
	}
	return json.Marshal(r.Map())
}
