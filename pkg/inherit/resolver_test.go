package inherit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// baseTemplate builds: <sec A: "X">|<sec B: "Y">
func baseTemplate() *Tree {
	base := New()
	x := base.AddText("X")
	a := base.AddInheritableSection("A", x)
	sep := base.AddText("|")
	y := base.AddText("Y")
	b := base.AddInheritableSection("B", y)
	base.SetRoots(a, sep, b)
	return base
}

func overrideTemplate(name, body string) *Tree {
	o := New()
	t := o.AddText(body)
	s := o.AddInheritableSection(name, t)
	o.SetRoots(s)
	return o
}

func TestCompose_ReplacesOnlyNamedSection(t *testing.T) {
	base := baseTemplate()
	composed := Compose(base, overrideTemplate("A", "Z"))

	if got := composed.Flatten(); got != "Z|Y" {
		t.Fatalf("composed body = %q, want %q", got, "Z|Y")
	}

	// the base tree is untouched
	if got := base.Flatten(); got != "X|Y" {
		t.Fatalf("base body changed: %q", got)
	}
}

func TestCompose_UnrelatedNodesKeepIdentity(t *testing.T) {
	base := baseTemplate()
	composed := Compose(base, overrideTemplate("A", "Z"))

	if diff := cmp.Diff(base.Roots(), composed.Roots()); diff != "" {
		t.Fatalf("root identity changed (-base +composed):\n%s", diff)
	}
	for _, id := range base.Roots() {
		baseNode := base.Node(id)
		if baseNode.Kind == KindInheritableSection && baseNode.Name == "A" {
			continue
		}
		if diff := cmp.Diff(baseNode, composed.Node(id)); diff != "" {
			t.Fatalf("node %d changed (-base +composed):\n%s", id, diff)
		}
	}
}

func TestCompose_NoMatchingNameIsIdentity(t *testing.T) {
	base := baseTemplate()
	composed := Compose(base, overrideTemplate("C", "Z"))

	if got := composed.Flatten(); got != "X|Y" {
		t.Fatalf("composed body = %q, want %q", got, "X|Y")
	}
}

func TestCompose_NearestOverrideWins(t *testing.T) {
	base := baseTemplate()
	mid := overrideTemplate("A", "mid")
	final := overrideTemplate("A", "final")

	composed := Compose(base, mid, final)
	if got := composed.Flatten(); got != "final|Y" {
		t.Fatalf("composed body = %q, want %q", got, "final|Y")
	}
}

func TestCompose_DeepOverrideBody(t *testing.T) {
	base := baseTemplate()

	o := New()
	greeting := o.AddText("hello ")
	name := o.AddTag("name")
	inner := o.AddInheritableSection("A", greeting, name)
	o.SetRoots(inner)

	composed := Compose(base, o)
	if got := composed.Flatten(); got != "hello {{name}}|Y" {
		t.Fatalf("composed body = %q, want %q", got, "hello {{name}}|Y")
	}
}

func TestFlatten_Base(t *testing.T) {
	if got := baseTemplate().Flatten(); got != "X|Y" {
		t.Fatalf("flatten = %q, want %q", got, "X|Y")
	}
}
