package boxing

// ContentType marks a rendered fragment as plain text or markup. Escaping
// decisions belong to the layer above; this core only tracks the marker and
// refuses to mix the two inside a single enumeration.
type ContentType int

const (
	// ContentTypeText marks plain text output.
	ContentTypeText ContentType = iota

	// ContentTypeHTML marks markup output that must not be escaped again.
	ContentTypeHTML
)

// String returns the canonical name of the content type.
func (c ContentType) String() string {
	switch c {
	case ContentTypeHTML:
		return "HTML"
	default:
		return "text"
	}
}

// Rendering is the unit of output exchanged on every render call: the
// rendered string together with its content type.
type Rendering struct {
	String      string
	ContentType ContentType
}

// TextRendering wraps a string as a plain-text rendering.
func TextRendering(s string) Rendering {
	return Rendering{String: s, ContentType: ContentTypeText}
}

// HTMLRendering wraps a string as a markup rendering.
func HTMLRendering(s string) Rendering {
	return Rendering{String: s, ContentType: ContentTypeHTML}
}

// TagType distinguishes the two placeholder flavours a box can be asked to
// render for.
type TagType int

const (
	// TagTypeVariable is a value-interpolation placeholder.
	TagTypeVariable TagType = iota

	// TagTypeSection is a placeholder with a body that may be re-rendered
	// against an arbitrary context.
	TagTypeSection
)

// String returns the canonical name of the tag type.
func (t TagType) String() string {
	switch t {
	case TagTypeSection:
		return "section"
	default:
		return "variable"
	}
}

// Tag is the parsed placeholder node handed to this core by the template
// layer. Render renders the tag body against the supplied context; for
// variable tags the body is the tag itself. Description identifies the tag in
// error messages (name plus source location when the parser provides one).
type Tag interface {
	Type() TagType
	Render(ctx Context) (Rendering, error)
	Description() string
}

// Context is an immutable, append-only chain of boxes used for name
// resolution. ExtendedContext returns a new chain with box pushed as the
// innermost scope; the receiver is never modified. Resolve returns the
// innermost box answering the name, or the empty box.
type Context interface {
	ExtendedContext(box Box) Context
	Resolve(name string) Box
}

// RenderingInfo carries the inputs of a single render call.
type RenderingInfo struct {
	Tag     Tag
	Context Context

	// EnumerationItem is set when the rendered box is one element drawn from
	// an enclosing sequence iteration.
	EnumerationItem bool
}

// WithEnumerationItem returns a copy of the info with the enumeration-item
// flag forced true.
func (info RenderingInfo) WithEnumerationItem() RenderingInfo {
	info.EnumerationItem = true
	return info
}

// RenderFunc is the render capability of a box.
type RenderFunc func(info RenderingInfo) (Rendering, error)

// KeyLookupFunc is the key-lookup capability of a box. The boolean reports
// whether the key resolved; misses degrade to the empty box in Box.Get.
type KeyLookupFunc func(key string) (Box, bool)

// FilterFunc is the filter capability of a box. partial is true on every
// application except the final one, letting curried filters distinguish
// "more arguments coming" from "fully applied".
type FilterFunc func(arg Box, partial bool) (Box, error)

// WillRenderFunc runs immediately before a tag renders and may substitute the
// box to be rendered in its place.
type WillRenderFunc func(tag Tag, box Box) Box

// DidRenderFunc runs immediately after a tag rendered, observing the final
// output. On failure rendered is empty and err carries the failure; the
// observer has no further effect on the render result.
type DidRenderFunc func(tag Tag, box Box, rendered string, err error)
