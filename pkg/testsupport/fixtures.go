// Package testsupport provides scriptable tags and small helpers for
// exercising render behavior without a parser. Tests hand-build the tag
// bodies a parser would normally produce.
package testsupport

import (
	"strings"
	"testing"

	"github.com/goliatone/go-mustache/pkg/boxing"
	"github.com/goliatone/go-mustache/pkg/rendering"
)

// Tag is a scriptable placeholder node. Body renders the tag body against a
// context; when nil the body renders as the empty text rendering.
type Tag struct {
	TagType boxing.TagType
	Desc    string
	Body    func(ctx boxing.Context) (boxing.Rendering, error)
}

// Type implements boxing.Tag.
func (t *Tag) Type() boxing.TagType {
	return t.TagType
}

// Render implements boxing.Tag, rendering the scripted body.
func (t *Tag) Render(ctx boxing.Context) (boxing.Rendering, error) {
	if t.Body == nil {
		return boxing.TextRendering(""), nil
	}
	return t.Body(ctx)
}

// Description implements boxing.Tag.
func (t *Tag) Description() string {
	if t.Desc != "" {
		return t.Desc
	}
	return t.TagType.String() + " tag"
}

// VariableTag builds a variable placeholder.
func VariableTag(desc string) *Tag {
	return &Tag{TagType: boxing.TagTypeVariable, Desc: desc}
}

// SectionTag builds a section placeholder with the given body.
func SectionTag(desc string, body func(ctx boxing.Context) (boxing.Rendering, error)) *Tag {
	return &Tag{TagType: boxing.TagTypeSection, Desc: desc, Body: body}
}

// DotBody is a section body rendering the innermost box as a variable
// followed by the literal suffix, the hand-built equivalent of a
// {{.}}<suffix> body. Content type follows the inner rendering.
func DotBody(suffix string) func(ctx boxing.Context) (boxing.Rendering, error) {
	inner := VariableTag("{{.}}")
	return func(ctx boxing.Context) (boxing.Rendering, error) {
		chain, ok := ctx.(*rendering.Chain)
		if !ok {
			return boxing.TextRendering(""), nil
		}
		r, err := rendering.RenderTag(inner, chain, chain.Resolve("."))
		if err != nil {
			return boxing.Rendering{}, err
		}
		var buf strings.Builder
		buf.WriteString(r.String)
		buf.WriteString(suffix)
		return boxing.Rendering{String: buf.String(), ContentType: r.ContentType}, nil
	}
}

// MustRender renders box for tag and fails the test on error.
func MustRender(t *testing.T, tag boxing.Tag, ctx *rendering.Chain, box boxing.Box) boxing.Rendering {
	t.Helper()
	r, err := rendering.RenderTag(tag, ctx, box)
	if err != nil {
		t.Fatalf("render %s: %v", tag.Description(), err)
	}
	return r
}
