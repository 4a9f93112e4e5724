package boxing_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-mustache/pkg/boxing"
	"github.com/goliatone/go-mustache/pkg/rendering"
	"github.com/goliatone/go-mustache/pkg/testsupport"
)

func listContext(items ...boxing.Box) (*rendering.Chain, boxing.Box) {
	seq := boxing.BoxSequence(items)
	ctx := rendering.NewContext(boxing.BoxMap(map[string]boxing.Box{"list": seq}))
	return ctx, seq
}

func TestSequence_IteratesInOrder(t *testing.T) {
	ctx, seq := listContext(boxing.BoxInt(1), boxing.BoxInt(2), boxing.BoxInt(3))
	tag := testsupport.SectionTag("{{#list}}", testsupport.DotBody(","))

	r := testsupport.MustRender(t, tag, ctx, seq)
	if r.String != "1,2,3," {
		t.Fatalf("section over [1 2 3] = %q, want %q", r.String, "1,2,3,")
	}
	if r.ContentType != boxing.ContentTypeText {
		t.Fatalf("content type = %v, want text", r.ContentType)
	}
}

func TestSequence_EmptyFallbackUsesUnmodifiedContext(t *testing.T) {
	ctx, seq := listContext()
	tag := testsupport.SectionTag("{{#list}}", testsupport.DotBody(","))

	// the body renders once against the unmodified context, so "." resolves
	// to the map at the chain head, not to a sequence item and not to ""
	r := testsupport.MustRender(t, tag, ctx, seq)
	want := "[list:],"
	if r.String != want {
		t.Fatalf("empty-sequence fallback = %q, want %q", r.String, want)
	}
}

func TestSequence_BlankOutputFallbackPolicy(t *testing.T) {
	// items exist but every body rendering is blank; during iteration "."
	// is the blank item, during fallback "." is the map at the chain head
	blankItems := []boxing.Box{boxing.BoxString(""), boxing.BoxString("")}
	tag := testsupport.SectionTag("{{#list}}", testsupport.DotBody(""))
	ctx := rendering.NewContext(boxing.BoxMap(map[string]boxing.Box{"marker": boxing.BoxString("M")}))

	// default policy: the iteration produced renderings, no fallback
	seq := boxing.BoxSequence(blankItems)
	r := testsupport.MustRender(t, tag, ctx, seq)
	if r.String != "" {
		t.Fatalf("zero-length policy fell back on blank output: %q", r.String)
	}

	// blank-output policy: the same input triggers the fallback
	seq = boxing.BoxSequence(blankItems, boxing.WithEmptyFallback(boxing.FallbackBlankOutput))
	r = testsupport.MustRender(t, tag, ctx, seq)
	if r.String != "[marker:M]" {
		t.Fatalf("blank-output policy = %q, want %q", r.String, "[marker:M]")
	}
}

func TestSequence_ContentTypeMismatchFailsWholeRender(t *testing.T) {
	html := boxing.New(
		boxing.WithValue("<i>x</i>"),
		boxing.WithRender(func(info boxing.RenderingInfo) (boxing.Rendering, error) {
			return boxing.HTMLRendering("<i>x</i>"), nil
		}),
	)
	ctx, seq := listContext(boxing.BoxString("a"), html, boxing.BoxString("b"))
	tag := testsupport.SectionTag("{{#list}}", testsupport.DotBody(""))

	_, err := rendering.RenderTag(tag, ctx, seq)
	if !errors.Is(err, boxing.ErrContentTypeMismatch) {
		t.Fatalf("expected content type mismatch, got %v", err)
	}
	var renderErr *boxing.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected *RenderError, got %T", err)
	}
	if renderErr.Tag == nil || renderErr.Tag.Description() != "{{#list}}" {
		t.Fatalf("error must carry the tag location, got %+v", renderErr.Tag)
	}
}

func TestSequence_UniformContentTypeConcatenates(t *testing.T) {
	ctx, seq := listContext(boxing.BoxString("a"), boxing.BoxString("b"), boxing.BoxString("c"))
	tag := testsupport.SectionTag("{{#list}}", testsupport.DotBody("-"))

	r := testsupport.MustRender(t, tag, ctx, seq)
	if r.String != "a-b-c-" {
		t.Fatalf("concatenation = %q, want %q", r.String, "a-b-c-")
	}
}

func TestSequence_EnumerationItemRendersAsOpaqueUnit(t *testing.T) {
	inner := boxing.BoxSequence([]boxing.Box{boxing.BoxInt(1), boxing.BoxInt(2)})
	outer := boxing.BoxSequence([]boxing.Box{inner, inner})
	ctx := rendering.NewContext(boxing.BoxMap(map[string]boxing.Box{"list": outer}))

	// each inner sequence is one enumeration item: its body renders once with
	// the sequence itself in scope, and "count" resolves against it
	tag := testsupport.SectionTag("{{#list}}", func(ctx boxing.Context) (boxing.Rendering, error) {
		count, _ := ctx.Resolve(".").Get("count").StringValue()
		return boxing.TextRendering("(" + count + ")"), nil
	})

	r := testsupport.MustRender(t, tag, ctx, outer)
	if r.String != "(2)(2)" {
		t.Fatalf("nested enumeration = %q, want %q", r.String, "(2)(2)")
	}
}

func TestSequence_KeyLookups(t *testing.T) {
	seq := boxing.BoxSequence([]boxing.Box{boxing.BoxInt(10), boxing.BoxInt(20), boxing.BoxInt(30)})

	if got, _ := seq.Get("count").IntValue(); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}
	if got, _ := seq.Get("firstObject").IntValue(); got != 10 {
		t.Fatalf("firstObject = %d, want 10", got)
	}
	if got, _ := seq.Get("lastObject").IntValue(); got != 30 {
		t.Fatalf("lastObject = %d, want 30", got)
	}
	if !seq.Get("somethingElse").IsEmpty() {
		t.Fatal("unknown key must resolve to the empty box")
	}

	empty := boxing.BoxSequence(nil)
	if got, _ := empty.Get("count").IntValue(); got != 0 {
		t.Fatalf("empty count = %d, want 0", got)
	}
	if !empty.Get("firstObject").IsEmpty() || !empty.Get("lastObject").IsEmpty() {
		t.Fatal("out-of-range first/last on an empty sequence must be the empty box")
	}
}

func TestSequence_VariableRenderConcatenatesItems(t *testing.T) {
	ctx, seq := listContext(boxing.BoxInt(1), boxing.BoxInt(2), boxing.BoxInt(3))
	tag := testsupport.VariableTag("{{list}}")

	r := testsupport.MustRender(t, tag, ctx, seq)
	if r.String != "123" {
		t.Fatalf("variable rendering of sequence = %q, want %q", r.String, "123")
	}
}
