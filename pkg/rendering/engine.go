package rendering

import "github.com/goliatone/go-mustache/pkg/boxing"

// RenderTag renders box for tag against the chain, applying the hook
// capabilities in scope.
//
// Before rendering, every willRender hook reachable from the chain plus the
// box's own (box first, then innermost chain frames outward) may substitute
// the box to be rendered. After rendering, every didRender observer in the
// same order sees the outcome: the rendered string on success, the failure
// otherwise. Observers cannot alter the result.
func RenderTag(tag boxing.Tag, ctx *Chain, box boxing.Box) (boxing.Rendering, error) {
	wills := ctx.willRenderHooks()
	if fn := box.WillRenderHook(); fn != nil {
		wills = append([]boxing.WillRenderFunc{fn}, wills...)
	}
	for _, fn := range wills {
		box = fn(tag, box)
	}

	dids := ctx.didRenderHooks()
	if fn := box.DidRenderHook(); fn != nil {
		dids = append([]boxing.DidRenderFunc{fn}, dids...)
	}

	r, err := box.Render(boxing.RenderingInfo{Tag: tag, Context: ctx})
	for _, fn := range dids {
		if err != nil {
			fn(tag, box, "", err)
			continue
		}
		fn(tag, box, r.String, nil)
	}
	if err != nil {
		return boxing.Rendering{}, err
	}
	return r, nil
}

// ResolveAndRender resolves name against the chain and renders the resulting
// box for tag. Unresolvable names render as the empty box, so missing keys
// produce empty output rather than failure.
func ResolveAndRender(tag boxing.Tag, ctx *Chain, name string) (boxing.Rendering, error) {
	return RenderTag(tag, ctx, ctx.Resolve(name))
}
