package boxing

// renderDefault is the render behavior synthesized for boxes constructed
// without an explicit render capability. It branches solely on the tag type:
//
//   - Variable tag, box carrying a value: the value's canonical string form,
//     content type text. Markup-aware boxers override this to emit HTML.
//   - Variable tag, pure capability box: the empty string, content type text.
//   - Section tag: the tag body re-rendered against the context extended with
//     the box itself; the body's content type is passed through.
func renderDefault(b Box, info RenderingInfo) (Rendering, error) {
	if info.Tag != nil && info.Tag.Type() == TagTypeSection {
		return info.Tag.Render(info.Context.ExtendedContext(b))
	}
	if s, ok := b.StringValue(); ok {
		return TextRendering(s), nil
	}
	return TextRendering(""), nil
}
