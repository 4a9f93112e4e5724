// Package mustache exposes the value-boxing and rendering core through the
// root module path. The concrete machinery lives under pkg/: boxing holds the
// Box contract and the built-in boxers, rendering the context chain and hook
// orchestration, inherit the template-inheritance resolver, and adapt the
// host-value adapter boundary.
package mustache

import (
	"github.com/goliatone/go-mustache/pkg/adapt"
	"github.com/goliatone/go-mustache/pkg/boxing"
	"github.com/goliatone/go-mustache/pkg/rendering"
)

// Box is the universal immutable value wrapper; alias exported via the root
// package for convenience.
type Box = boxing.Box

// Rendering is the output of a render call: string plus content type.
type Rendering = boxing.Rendering

// RenderingInfo carries the inputs of a render call.
type RenderingInfo = boxing.RenderingInfo

// Tag is the parsed placeholder contract consumed from the template layer.
type Tag = boxing.Tag

// Context is the name-resolution chain contract.
type Context = boxing.Context

// ContentType marks rendered fragments as text or HTML.
type ContentType = boxing.ContentType

// Content type markers re-exported for callers of the root package.
const (
	ContentTypeText = boxing.ContentTypeText
	ContentTypeHTML = boxing.ContentTypeHTML
)

// BoxValue converts a host value into a box through the default adapter
// registry. Unboxable values degrade to the empty box.
func BoxValue(value any) Box {
	return adapt.BoxValue(value)
}

// NewContext builds a resolution chain from the supplied boxes; the last box
// becomes the innermost scope.
func NewContext(boxes ...Box) *rendering.Chain {
	return rendering.NewContext(boxes...)
}

// RenderTag renders box for tag against the chain, applying willRender and
// didRender hooks in scope.
func RenderTag(tag Tag, ctx *rendering.Chain, box Box) (Rendering, error) {
	return rendering.RenderTag(tag, ctx, box)
}
