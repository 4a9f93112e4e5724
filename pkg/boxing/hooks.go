package boxing

// BoxWillRender boxes a standalone before-render hook. Pushed onto a context,
// the hook sees every tag rendered underneath and may substitute the box
// about to be rendered, enabling cross-cutting concerns without mutating the
// original value.
func BoxWillRender(fn WillRenderFunc) Box {
	return New(WithWillRender(fn))
}

// BoxDidRender boxes a standalone after-render observer.
func BoxDidRender(fn DidRenderFunc) Box {
	return New(WithDidRender(fn))
}
