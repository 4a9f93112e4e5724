// Package rendering supplies the reference context chain and the hook-aware
// tag rendering entry point over package boxing. The chain is the component
// the box contract calls Context: an immutable, append-only stack of boxes
// used for name resolution, extended (never mutated) when entering a section.
package rendering

import "github.com/goliatone/go-mustache/pkg/boxing"

// Chain is an immutable resolution chain of boxes. Extending a chain
// allocates a new head; existing heads stay valid, so independent render
// invocations may share a tail freely.
type Chain struct {
	box    boxing.Box
	parent *Chain
}

// NewContext builds a chain from the supplied boxes, pushed in order: the
// last box becomes the innermost scope. With no arguments the chain is a
// single empty-box frame.
func NewContext(boxes ...boxing.Box) *Chain {
	head := &Chain{box: boxing.Empty()}
	for _, b := range boxes {
		head = &Chain{box: b, parent: head}
	}
	return head
}

// ExtendedContext returns a new chain with box pushed as the innermost scope.
// The pushed box becomes resolvable as ".".
func (c *Chain) ExtendedContext(box boxing.Box) boxing.Context {
	return &Chain{box: box, parent: c}
}

// TopBox returns the innermost box of the chain.
func (c *Chain) TopBox() boxing.Box {
	if c == nil {
		return boxing.Empty()
	}
	return c.box
}

// Resolve walks the chain innermost-first and returns the first non-empty box
// answering the name. "." resolves to the innermost box itself. Unresolvable
// names yield the empty box; resolution never fails.
func (c *Chain) Resolve(name string) boxing.Box {
	if name == "." {
		return c.TopBox()
	}
	for cur := c; cur != nil; cur = cur.parent {
		if found := cur.box.Get(name); !found.IsEmpty() {
			return found
		}
	}
	return boxing.Empty()
}

// willRenderHooks collects the before-render hooks reachable from the chain
// head, innermost first.
func (c *Chain) willRenderHooks() []boxing.WillRenderFunc {
	var hooks []boxing.WillRenderFunc
	for cur := c; cur != nil; cur = cur.parent {
		if fn := cur.box.WillRenderHook(); fn != nil {
			hooks = append(hooks, fn)
		}
	}
	return hooks
}

// didRenderHooks collects the after-render observers reachable from the chain
// head, innermost first.
func (c *Chain) didRenderHooks() []boxing.DidRenderFunc {
	var hooks []boxing.DidRenderFunc
	for cur := c; cur != nil; cur = cur.parent {
		if fn := cur.box.DidRenderHook(); fn != nil {
			hooks = append(hooks, fn)
		}
	}
	return hooks
}
