// Package inherit resolves template-inheritance overrides: named inheritable
// sections of a base template body are replaced, name and body together, by
// same-named sections contributed by extending templates, while every other
// node keeps its identity.
//
// Bodies are held in an arena of indexed nodes. Child references are indices
// into the owning Tree, never pointers into another template's tree, so
// mutually extending templates cannot form ownership cycles.
package inherit

// NodeID indexes a node within its owning Tree.
type NodeID int

// NodeKind discriminates body nodes.
type NodeKind int

const (
	// KindText is a literal text run.
	KindText NodeKind = iota

	// KindTag is a variable or section placeholder, identified by name.
	KindTag

	// KindInheritableSection is a named, overridable region.
	KindInheritableSection
)

// Node is one body node. Children are indices into the same Tree.
type Node struct {
	Kind     NodeKind
	Name     string // tag or inheritable-section name
	Text     string // literal content for KindText
	Children []NodeID
}

// Tree is an arena-backed template body. The zero value is empty; use New.
type Tree struct {
	nodes []Node
	roots []NodeID
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// AddText appends a literal text node and returns its id.
func (t *Tree) AddText(text string) NodeID {
	return t.add(Node{Kind: KindText, Text: text})
}

// AddTag appends a placeholder node and returns its id.
func (t *Tree) AddTag(name string) NodeID {
	return t.add(Node{Kind: KindTag, Name: name})
}

// AddInheritableSection appends a named overridable section with the given
// body and returns its id.
func (t *Tree) AddInheritableSection(name string, body ...NodeID) NodeID {
	return t.add(Node{
		Kind:     KindInheritableSection,
		Name:     name,
		Children: append([]NodeID(nil), body...),
	})
}

// SetRoots declares the top-level body of the template.
func (t *Tree) SetRoots(ids ...NodeID) {
	t.roots = append([]NodeID(nil), ids...)
}

// Roots returns the top-level body node ids.
func (t *Tree) Roots() []NodeID {
	return append([]NodeID(nil), t.roots...)
}

// Node returns a copy of the node at id.
func (t *Tree) Node(id NodeID) Node {
	n := t.nodes[id]
	n.Children = append([]NodeID(nil), n.Children...)
	return n
}

// Len reports the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Clone returns an independent copy of the tree.
func (t *Tree) Clone() *Tree {
	out := &Tree{
		nodes: make([]Node, len(t.nodes)),
		roots: append([]NodeID(nil), t.roots...),
	}
	for i, n := range t.nodes {
		n.Children = append([]NodeID(nil), n.Children...)
		out.nodes[i] = n
	}
	return out
}

func (t *Tree) add(n Node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}
