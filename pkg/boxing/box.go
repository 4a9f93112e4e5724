package boxing

// Box is the universal immutable value wrapper the renderer introspects:
// truthiness, key lookup, filtering, custom rendering and render hooks are
// optional capabilities composed over an optional opaque payload. There is no
// subtype hierarchy; every concrete boxing path builds a Box directly from
// the capabilities it needs.
//
// Boxes are never mutated after construction. Derivations such as WithRender
// return a new Box sharing the remaining capabilities by reference, so boxes
// may be freely shared across concurrent render invocations.
type Box struct {
	value    any
	hasValue bool

	boolValue any // nil, or the explicit bool override

	keyLookup  KeyLookupFunc
	render     RenderFunc
	filter     FilterFunc
	willRender WillRenderFunc
	didRender  DidRenderFunc

	empty bool
}

// Option configures a Box during construction.
type Option func(*Box)

// WithValue supplies the opaque payload.
func WithValue(v any) Option {
	return func(b *Box) {
		b.value = v
		b.hasValue = true
	}
}

// WithBool overrides the computed truthiness.
func WithBool(v bool) Option {
	return func(b *Box) {
		b.boolValue = v
	}
}

// WithKeyLookup supplies the key-lookup capability.
func WithKeyLookup(fn KeyLookupFunc) Option {
	return func(b *Box) {
		b.keyLookup = fn
	}
}

// WithRender supplies an explicit render capability, replacing the default
// render that would otherwise be synthesized from the payload.
func WithRender(fn RenderFunc) Option {
	return func(b *Box) {
		b.render = fn
	}
}

// WithFilter supplies the filter capability.
func WithFilter(fn FilterFunc) Option {
	return func(b *Box) {
		b.filter = fn
	}
}

// WithWillRender supplies the before-render hook.
func WithWillRender(fn WillRenderFunc) Option {
	return func(b *Box) {
		b.willRender = fn
	}
}

// WithDidRender supplies the after-render hook.
func WithDidRender(fn DidRenderFunc) Option {
	return func(b *Box) {
		b.didRender = fn
	}
}

// New constructs a Box from the supplied capabilities. Emptiness is computed,
// never passed in: a box is empty iff no value, no key lookup, no explicit
// render, no filter and no hooks were supplied. When no render capability is
// given the default render is synthesized over the payload (see
// default_render.go).
func New(opts ...Option) Box {
	var b Box
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&b)
	}

	b.empty = !b.hasValue &&
		b.keyLookup == nil &&
		b.render == nil &&
		b.filter == nil &&
		b.willRender == nil &&
		b.didRender == nil

	return b
}

// Empty returns the canonical empty box: falsy, value-less, lookup misses
// everywhere, renders as the empty string.
func Empty() Box {
	return New()
}

// IsEmpty reports whether the box was constructed with no value and no
// capabilities at all.
func (b Box) IsEmpty() bool {
	return b.empty
}

// Bool is the truthiness of the box: the explicit override when one was
// supplied, otherwise !IsEmpty.
func (b Box) Bool() bool {
	if v, ok := b.boolValue.(bool); ok {
		return v
	}
	return !b.empty
}

// Value returns the opaque payload, nil when none was supplied.
func (b Box) Value() any {
	if !b.hasValue || isNull(b.value) {
		return nil
	}
	return b.value
}

// Get resolves a key against the box. It never fails: a box without the
// lookup capability, and any lookup miss, yield the canonical empty box.
func (b Box) Get(key string) Box {
	if b.keyLookup == nil {
		return Empty()
	}
	if found, ok := b.keyLookup(key); ok {
		return found
	}
	return Empty()
}

// Render invokes the box's render capability, falling back to the
// synthesized default when none was supplied.
func (b Box) Render(info RenderingInfo) (Rendering, error) {
	if b.render == nil {
		return renderDefault(b, info)
	}
	return b.render(info)
}

// WithRender returns a copy of the box whose render capability is replaced by
// fn; value, truthiness, key lookup, filter and hooks are preserved
// unchanged. Filters and decorators use this to substitute rendering behavior
// without discarding a value's other facets.
func (b Box) WithRender(fn RenderFunc) Box {
	b.render = fn
	return b
}

// Filter returns the filter capability, nil when the box is not a filter.
func (b Box) Filter() FilterFunc {
	return b.filter
}

// WillRenderHook returns the before-render hook, nil when absent.
func (b Box) WillRenderHook() WillRenderFunc {
	return b.willRender
}

// DidRenderHook returns the after-render hook, nil when absent.
func (b Box) DidRenderHook() DidRenderFunc {
	return b.didRender
}
