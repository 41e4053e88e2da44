package site

import (
	"errors"
	"net/url"
	"strings"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/seo"
	"github.com/iwvelando/finance-calculators/pkg/format"
)

// CalculatorState is what the calculator page knows about a request: the
// submitted query values and, when submitted, the evaluation outcome.
type CalculatorState struct {
	Values    url.Values
	Submitted bool
	Result    calculator.Result
	Err       error
}

// FieldView is one form input.
type FieldView struct {
	ID       string
	Name     string
	Label    string
	HelpText string
	Value    string
	Percent  bool
	Required bool
	Error    string
}

// OutputView is one row of the results table.
type OutputView struct {
	Name  string
	Label string
	Value string
}

type navLink struct {
	Label  string
	Path   string
	Active bool
}

type navGroup struct {
	Category string
	Links    []navLink
}

// Submitted reports whether the query carries a form submission: any
// declared variable name or the submit button.
func Submitted(def calculator.Definition, values url.Values) bool {
	if values.Has("submit") {
		return true
	}
	for _, v := range def.Variables {
		if values.Has(v.Name) {
			return true
		}
	}
	return false
}

// QueryInput converts query values to evaluator input. Only the first value
// of each key is used.
func QueryInput(values url.Values) map[string]any {
	raw := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			raw[key] = vals[0]
		}
	}
	return raw
}

func buildFields(def calculator.Definition, state CalculatorState) []FieldView {
	fieldErrors := make(map[string]string)
	for _, fe := range calculator.FieldErrors(state.Err) {
		fieldErrors[fe.Name] = fe.Message
	}

	fields := make([]FieldView, 0, len(def.Variables))
	for _, v := range def.Variables {
		field := FieldView{
			ID:       "field-" + v.Name,
			Name:     v.Name,
			Label:    v.Label,
			HelpText: v.HelpText,
			Percent:  v.Kind == calculator.KindPercentage,
			Required: !v.HasDefault(),
			Error:    fieldErrors[v.Name],
		}
		if field.Label == "" {
			field.Label = v.Name
		}

		switch {
		case state.Submitted:
			field.Value = state.Values.Get(v.Name)
			if strings.TrimSpace(field.Value) == "" && v.HasDefault() {
				field.Value = format.Input(*v.Default)
			}
		case v.HasDefault():
			field.Value = format.Input(*v.Default)
		}
		fields = append(fields, field)
	}
	return fields
}

func buildOutputs(def calculator.Definition, result calculator.Result) []OutputView {
	if !result.IsNamed() {
		display := calculator.FormatNumber
		label := "Result"
		if len(def.Outputs) == 1 {
			display = def.Outputs[0].Format
			label = def.Outputs[0].Label
		}
		return []OutputView{{Name: "result", Label: label, Value: display.Format(result.Value())}}
	}

	views := make([]OutputView, 0, len(result.Outputs()))
	if len(def.Outputs) > 0 {
		for _, spec := range def.Outputs {
			value, ok := result.Get(spec.Name)
			if !ok {
				continue
			}
			label := spec.Label
			if label == "" {
				label = spec.Name
			}
			views = append(views, OutputView{Name: spec.Name, Label: label, Value: spec.Format.Format(value)})
		}
		return views
	}

	for _, out := range result.Outputs() {
		views = append(views, OutputView{Name: out.Name, Label: out.Name, Value: calculator.FormatNumber.Format(out.Value)})
	}
	return views
}

func buildErrors(def calculator.Definition, err error) []string {
	if err == nil {
		return nil
	}
	fields := calculator.FieldErrors(err)
	if len(fields) == 0 {
		var calcErr *calculator.CalculationError
		if errors.As(err, &calcErr) {
			return []string{"These inputs produce a result outside the range this calculator can handle. Try smaller values."}
		}
		return []string{"The calculation could not be completed. Please check your inputs and try again."}
	}

	messages := make([]string, 0, len(fields))
	for _, fe := range fields {
		label := fe.Name
		if v, ok := def.Variable(fe.Name); ok && v.Label != "" {
			label = v.Label
		}
		messages = append(messages, label+": "+fe.Message)
	}
	return messages
}

func buildNavigation(defs []calculator.Definition, activePath string) []navGroup {
	var groups []navGroup
	index := make(map[string]int)
	for _, def := range defs {
		category := def.Category
		if category == "" {
			category = "Other"
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, navGroup{Category: category})
		}
		path := seo.CalculatorPath(def.Identifier)
		groups[i].Links = append(groups[i].Links, navLink{
			Label:  def.Name,
			Path:   path,
			Active: path == activePath,
		})
	}
	return groups
}
