package boxing

import (
	"sort"
	"strings"
)

// BoxMap boxes a mapping from string keys to already-boxed values. Key order
// is irrelevant. A map box is always truthy, even when empty; this is a
// deliberate asymmetry with sequences, where emptiness means falsity.
//
// In variable position the render is a diagnostic stringification of the
// whole map, not intended for production output. In section position the
// context is extended with the map box and the body re-rendered.
func BoxMap(entries map[string]Box) Box {
	boxed := make(map[string]Box, len(entries))
	for key, value := range entries {
		boxed[key] = value
	}

	var self Box
	self = New(
		WithValue(boxed),
		WithBool(true),
		WithKeyLookup(func(key string) (Box, bool) {
			value, ok := boxed[key]
			return value, ok
		}),
		WithRender(func(info RenderingInfo) (Rendering, error) {
			if info.Tag.Type() == TagTypeSection {
				return info.Tag.Render(info.Context.ExtendedContext(self))
			}
			return TextRendering(describeMap(boxed)), nil
		}),
	)
	return self
}

// describeMap produces a deterministic, keys-sorted rendering of the map so
// repeated renders of identical inputs stay byte-identical.
func describeMap(entries map[string]Box) string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf strings.Builder
	buf.WriteByte('[')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(key)
		buf.WriteByte(':')
		if s, ok := entries[key].StringValue(); ok {
			buf.WriteString(s)
		} else {
			buf.WriteString("…")
		}
	}
	buf.WriteByte(']')
	return buf.String()
}
