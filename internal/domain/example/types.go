// Where: cli/internal/domain/example/types.go
// What: Example definition and registry types.
// Why: Model the static example catalog as plain immutable data.
package example

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrUnknownExample is returned when an identifier is not in the registry.
	ErrUnknownExample = errors.New("unknown example")
	// ErrInvalidDefinition is returned when a definition breaks registry invariants.
	ErrInvalidDefinition = errors.New("invalid example definition")
)

var (
	namePattern         = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	contractNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Definition describes one generated example project.
type Definition struct {
	Name           string `yaml:"name"`
	Category       string `yaml:"category,omitempty"`
	Description    string `yaml:"description,omitempty"`
	ContractName   string `yaml:"contractName"`
	ContractSource string `yaml:"contractSource"`
	TestSource     string `yaml:"testSource"`
}

// Validate checks that the definition can be materialized safely.
func (d Definition) Validate() error {
	if !namePattern.MatchString(d.Name) {
		return fmt.Errorf("%w: name %q must match %s", ErrInvalidDefinition, d.Name, namePattern)
	}
	if !contractNamePattern.MatchString(d.ContractName) {
		return fmt.Errorf("%w: %s: contract name %q must match %s",
			ErrInvalidDefinition, d.Name, d.ContractName, contractNamePattern)
	}
	if strings.TrimSpace(d.ContractSource) == "" {
		return fmt.Errorf("%w: %s: contract source is empty", ErrInvalidDefinition, d.Name)
	}
	if strings.TrimSpace(d.TestSource) == "" {
		return fmt.Errorf("%w: %s: test source is empty", ErrInvalidDefinition, d.Name)
	}
	return nil
}

// Registry is a read-only catalog of example definitions keyed by identifier.
type Registry struct {
	byName map[string]Definition
	names  []string
}

// NewRegistry validates the definitions and builds a registry.
// Duplicate identifiers are rejected.
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{byName: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.byName[def.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidDefinition, def.Name)
		}
		r.byName[def.Name] = def
		r.names = append(r.names, def.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Lookup returns the definition registered under name.
// Matching is exact and case-sensitive.
func (r *Registry) Lookup(name string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	def, ok := r.byName[name]
	return def, ok
}

// Resolve is Lookup with an ErrUnknownExample error listing the valid names.
func (r *Registry) Resolve(name string) (Definition, error) {
	if def, ok := r.Lookup(name); ok {
		return def, nil
	}
	return Definition{}, fmt.Errorf("%w %q (available: %s)",
		ErrUnknownExample, name, strings.Join(r.Names(), ", "))
}

// Names returns the registered identifiers in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.names...)
}

// Definitions returns all definitions ordered by name.
func (r *Registry) Definitions() []Definition {
	if r == nil {
		return nil
	}
	out := make([]Definition, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byName[name])
	}
	return out
}
