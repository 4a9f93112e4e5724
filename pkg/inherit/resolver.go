package inherit

import "strings"

// Compose applies a chain of extending templates over a base body. Overrides
// are applied in extension order, base-most first, so the override nearest
// the final rendered template wins over any ancestor's default body for the
// same section name. The base tree is not modified.
func Compose(base *Tree, overrides ...*Tree) *Tree {
	out := base.Clone()
	for _, override := range overrides {
		if override == nil {
			continue
		}
		out.apply(override)
	}
	return out
}

// apply is the node-local rewrite: one walk over the receiver's arena,
// replacing every inheritable section whose name an override redefines. The
// replaced node takes the override's name and body together; node indices of
// unrelated nodes are untouched, preserving their identity.
func (t *Tree) apply(override *Tree) {
	sections := override.inheritableSections()
	if len(sections) == 0 {
		return
	}

	// imported subtrees are appended past this point and must not be
	// rewritten by the same pass
	limit := len(t.nodes)
	for id := 0; id < limit; id++ {
		n := t.nodes[id]
		if n.Kind != KindInheritableSection {
			continue
		}
		src, ok := sections[n.Name]
		if !ok {
			continue
		}
		t.nodes[id] = t.importNode(override, src)
	}
}

// inheritableSections indexes the override's section definitions by name.
// When a template redefines the same name twice the last definition wins.
func (t *Tree) inheritableSections() map[string]NodeID {
	sections := make(map[string]NodeID)
	for id, n := range t.nodes {
		if n.Kind == KindInheritableSection {
			sections[n.Name] = NodeID(id)
		}
	}
	return sections
}

// importNode copies the subtree rooted at src from the donor arena into the
// receiver, returning the copied root node. Children are appended to the
// receiver's arena and re-indexed.
func (t *Tree) importNode(donor *Tree, src NodeID) Node {
	n := donor.nodes[src]
	children := make([]NodeID, len(n.Children))
	for i, child := range n.Children {
		imported := t.importNode(donor, child)
		t.nodes = append(t.nodes, imported)
		children[i] = NodeID(len(t.nodes) - 1)
	}
	n.Children = children
	return n
}

// Flatten serializes the body back to template-ish source text: literal runs
// verbatim, placeholders as {{name}}, inheritable sections as their body.
// Intended for inspecting composition results.
func (t *Tree) Flatten() string {
	var buf strings.Builder
	for _, id := range t.roots {
		t.flattenNode(&buf, id)
	}
	return buf.String()
}

func (t *Tree) flattenNode(buf *strings.Builder, id NodeID) {
	n := t.nodes[id]
	switch n.Kind {
	case KindText:
		buf.WriteString(n.Text)
	case KindTag:
		buf.WriteString("{{")
		buf.WriteString(n.Name)
		buf.WriteString("}}")
	case KindInheritableSection:
		for _, child := range n.Children {
			t.flattenNode(buf, child)
		}
	}
}
