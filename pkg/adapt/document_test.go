package adapt_test

import (
	"testing"

	"github.com/goliatone/go-mustache/pkg/adapt"
	"github.com/goliatone/go-mustache/pkg/boxing"
	"github.com/goliatone/go-mustache/pkg/rendering"
	"github.com/goliatone/go-mustache/pkg/testsupport"
)

func renderList(t *testing.T, doc boxing.Box) string {
	t.Helper()
	ctx := rendering.NewContext(doc)
	tag := testsupport.SectionTag("{{#list}}", testsupport.DotBody(","))
	r := testsupport.MustRender(t, tag, ctx, ctx.Resolve("list"))
	return r.String
}

func TestFromJSON(t *testing.T) {
	doc, err := adapt.FromJSON([]byte(`{"list": [1, 2, 3], "title": "numbers"}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got := renderList(t, doc); got != "1,2,3," {
		t.Fatalf("rendered = %q, want %q", got, "1,2,3,")
	}
	if got, _ := doc.Get("title").StringValue(); got != "numbers" {
		t.Fatalf("title = %q", got)
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	if _, err := adapt.FromJSON([]byte(`{"list": [`)); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestFromYAML(t *testing.T) {
	doc, err := adapt.FromYAML([]byte("list:\n  - 1\n  - 2\n  - 3\nnested:\n  flag: true\n"))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if got := renderList(t, doc); got != "1,2,3," {
		t.Fatalf("rendered = %q, want %q", got, "1,2,3,")
	}
	if !doc.Get("nested").Get("flag").Bool() {
		t.Fatal("nested.flag must box truthy")
	}
}

func TestFromTOML(t *testing.T) {
	doc, err := adapt.FromTOML([]byte("list = [1, 2, 3]\n\n[owner]\nname = \"ada\"\n"))
	if err != nil {
		t.Fatalf("FromTOML: %v", err)
	}
	if got := renderList(t, doc); got != "1,2,3," {
		t.Fatalf("rendered = %q, want %q", got, "1,2,3,")
	}
	if got, _ := doc.Get("owner").Get("name").StringValue(); got != "ada" {
		t.Fatalf("owner.name = %q", got)
	}
}
