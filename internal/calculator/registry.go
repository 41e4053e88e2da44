package calculator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// Registry holds an immutable, ordered set of definitions.
type Registry struct {
	order []string
	byID  map[string]Definition
}

// NewRegistry validates defs and returns a registry that lists them in the
// order given.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(defs)),
		byID:  make(map[string]Definition, len(defs)),
	}

	for _, def := range defs {
		if err := validateDefinition(def); err != nil {
			return nil, err
		}
		if _, exists := r.byID[def.Identifier]; exists {
			return nil, fmt.Errorf("duplicate calculator identifier %q", def.Identifier)
		}
		r.order = append(r.order, def.Identifier)
		r.byID[def.Identifier] = cloneDefinition(def)
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on invalid definitions. It
// is meant for statically declared formula sets.
func MustNewRegistry(defs ...Definition) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the definition registered under identifier.
func (r *Registry) Lookup(identifier string) (Definition, error) {
	def, ok := r.byID[identifier]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrNotFound, identifier)
	}
	return cloneDefinition(def), nil
}

// List returns every definition in registration order.
func (r *Registry) List() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, cloneDefinition(r.byID[id]))
	}
	return defs
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.order)
}

// Categories returns the distinct categories in order of first appearance.
func (r *Registry) Categories() []string {
	var categories []string
	seen := make(map[string]struct{})
	for _, id := range r.order {
		category := r.byID[id].Category
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}
	return categories
}

func validateDefinition(def Definition) error {
	if err := validation.ValidateIdentifier(def.Identifier); err != nil {
		return err
	}
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf("calculator %s: name cannot be empty", def.Identifier)
	}
	if strings.TrimSpace(def.Description) == "" {
		return fmt.Errorf("calculator %s: description cannot be empty", def.Identifier)
	}
	if def.Calculate == nil {
		return fmt.Errorf("calculator %s: calculation function cannot be nil", def.Identifier)
	}

	names := make(map[string]struct{}, len(def.Variables))
	for i, v := range def.Variables {
		if v.Name == "" {
			return fmt.Errorf("calculator %s: variable %d has no name", def.Identifier, i)
		}
		if _, dup := names[v.Name]; dup {
			return fmt.Errorf("calculator %s: duplicate variable %q", def.Identifier, v.Name)
		}
		if v.Kind != KindNumber && v.Kind != KindPercentage {
			return fmt.Errorf("calculator %s: variable %q has unknown kind %d", def.Identifier, v.Name, int(v.Kind))
		}
		names[v.Name] = struct{}{}
	}

	outputs := make(map[string]struct{}, len(def.Outputs))
	for _, o := range def.Outputs {
		if _, dup := outputs[o.Name]; dup {
			return fmt.Errorf("calculator %s: duplicate output %q", def.Identifier, o.Name)
		}
		outputs[o.Name] = struct{}{}
	}

	return probeDefinition(def)
}

// probeDefinition runs the calculation with declared inputs only and fails if
// it reads anything else. It probes once with defaults (or 1) and once with
// zeros so both sides of the usual guard branches are exercised.
func probeDefinition(def Definition) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("calculator %s: calculation panicked during registration: %v", def.Identifier, recovered)
		}
	}()

	withDefaults := make(map[string]float64, len(def.Variables))
	zeros := make(map[string]float64, len(def.Variables))
	for _, v := range def.Variables {
		withDefaults[v.Name] = 1
		if v.Default != nil {
			withDefaults[v.Name] = *v.Default
		}
		zeros[v.Name] = 0
	}

	p := &probe{}
	for _, input := range []map[string]float64{withDefaults, zeros} {
		values := NewValues(input)
		values.probe = p
		def.Calculate(values)
	}

	if len(p.undeclared) > 0 {
		undeclared := uniqueSorted(p.undeclared)
		return fmt.Errorf("calculator %s: calculation reads undeclared variables %s",
			def.Identifier, strings.Join(undeclared, ", "))
	}
	return nil
}

func uniqueSorted(names []string) []string {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func cloneDefinition(def Definition) Definition {
	def.Keywords = append([]string(nil), def.Keywords...)
	def.Outputs = append([]OutputSpec(nil), def.Outputs...)
	vars := make([]Variable, len(def.Variables))
	for i, v := range def.Variables {
		if v.Default != nil {
			d := *v.Default
			v.Default = &d
		}
		vars[i] = v
	}
	def.Variables = vars
	return def
}
