// Package adapt is the value-adapter boundary: it converts arbitrary host
// values into boxes through the box contract. Built-in conversions cover
// scalars, sequences and maps; everything else goes through registered
// adapters. A value nothing can box degrades to the canonical empty box and
// raises a non-fatal diagnostic, unless strict mode turns the degradation
// into a failure.
package adapt

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-mustache/pkg/boxing"
)

// AdapterFunc attempts to box a host value. The boolean reports whether the
// adapter recognized the value.
type AdapterFunc func(value any) (boxing.Box, bool)

type rule struct {
	name     string
	priority int
	adapt    AdapterFunc
	order    int
}

// Registry resolves host values to boxes. Registered adapters are consulted
// after the built-in conversions, higher priority first; ties fall back to
// registration order.
type Registry struct {
	mu     sync.RWMutex
	rules  []rule
	strict bool
	sink   DiagnosticSink
}

// RegistryOption configures a registry during construction.
type RegistryOption func(*Registry)

// Strict makes unboxable values fail BoxValue with ErrUnboxable instead of
// degrading to the empty box.
func Strict() RegistryOption {
	return func(r *Registry) {
		r.strict = true
	}
}

// WithDiagnostics routes unboxable-value diagnostics to sink.
func WithDiagnostics(sink DiagnosticSink) RegistryOption {
	return func(r *Registry) {
		r.sink = sink
	}
}

// NewRegistry constructs a registry. Without options it is lenient and
// discards diagnostics.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Register adds an adapter under the given name and priority. Higher priority
// values take precedence over lower ones.
func (r *Registry) Register(name string, priority int, adapt AdapterFunc) {
	if r == nil || adapt == nil || name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{
		name:     name,
		priority: priority,
		adapt:    adapt,
		order:    len(r.rules),
	})
}

// BoxValue converts a host value into a box. Collections are boxed
// recursively, each element individually, before being stored. In lenient
// mode the returned error is always nil.
func (r *Registry) BoxValue(value any) (boxing.Box, error) {
	if box, ok, err := r.boxBuiltin(value); ok {
		return box, err
	}
	if box, ok := r.boxRegistered(value); ok {
		return box, nil
	}

	r.diagnose(Diagnostic{Value: value, Reason: fmt.Sprintf("no adapter for %T", value)})
	if r.strict {
		return boxing.Box{}, &UnboxableError{Value: value}
	}
	return boxing.Empty(), nil
}

// MustBoxValue is BoxValue for lenient registries and call sites that treat
// degradation as acceptable; strict failures also degrade to the empty box
// here.
func (r *Registry) MustBoxValue(value any) boxing.Box {
	box, err := r.BoxValue(value)
	if err != nil {
		return boxing.Empty()
	}
	return box
}

func (r *Registry) boxRegistered(value any) (boxing.Box, bool) {
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return boxing.Box{}, false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if box, ok := entry.adapt(value); ok {
			return box, true
		}
	}
	return boxing.Box{}, false
}

func (r *Registry) diagnose(d Diagnostic) {
	r.mu.RLock()
	sink := r.sink
	r.mu.RUnlock()
	if sink != nil {
		sink.Unboxable(d)
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared lenient registry used by the package-level
// helpers.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// BoxValue converts a host value through the default registry. It never
// fails: unboxable values become the empty box.
func BoxValue(value any) boxing.Box {
	return Default().MustBoxValue(value)
}
