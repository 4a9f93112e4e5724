package boxing

import "strings"

// EmptyFallback selects when sequence rendering falls back to rendering the
// tag body once against the unmodified context, mirroring inverted-section
// semantics.
type EmptyFallback int

const (
	// FallbackZeroLength falls back only when the sequence has no elements.
	FallbackZeroLength EmptyFallback = iota

	// FallbackBlankOutput additionally falls back when every element's
	// rendering produced no output.
	FallbackBlankOutput
)

// SequenceOption configures a sequence box.
type SequenceOption func(*sequenceConfig)

type sequenceConfig struct {
	fallback EmptyFallback
}

// WithEmptyFallback selects the empty-result fallback policy. The default is
// FallbackZeroLength.
func WithEmptyFallback(mode EmptyFallback) SequenceOption {
	return func(cfg *sequenceConfig) {
		cfg.fallback = mode
	}
}

// BoxSequence boxes an ordered collection of already-boxed items. The raw
// host collection is never stored: every item is a Box, so generic inspection
// code treats any boxed sequence uniformly. Truthiness is nonzero length, and
// the keys count, firstObject and lastObject are exposed for lookup.
func BoxSequence(items []Box, opts ...SequenceOption) Box {
	var cfg sequenceConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	boxed := append([]Box(nil), items...)

	var self Box
	self = New(
		WithValue(boxed),
		WithBool(len(boxed) > 0),
		WithKeyLookup(sequenceLookup(boxed)),
		WithRender(func(info RenderingInfo) (Rendering, error) {
			return renderSequence(self, boxed, cfg, info)
		}),
	)
	return self
}

func sequenceLookup(items []Box) KeyLookupFunc {
	return func(key string) (Box, bool) {
		switch key {
		case "count":
			return BoxInt(int64(len(items))), true
		case "firstObject":
			if len(items) == 0 {
				return Empty(), true
			}
			return items[0], true
		case "lastObject":
			if len(items) == 0 {
				return Empty(), true
			}
			return items[len(items)-1], true
		}
		return Box{}, false
	}
}

// renderSequence implements the enumeration policy.
//
// When the sequence box is itself one item of an enclosing enumeration it is
// treated as an opaque unit: the context is extended with the sequence box
// and the tag body rendered once. Otherwise the items are rendered in order,
// each as an enumeration item, and the resulting strings concatenated.
//
// The first item's rendering fixes the accumulator's content type; any later
// item that differs fails the whole call. No coercion, no partial output.
func renderSequence(self Box, items []Box, cfg sequenceConfig, info RenderingInfo) (Rendering, error) {
	if info.EnumerationItem {
		return info.Tag.Render(info.Context.ExtendedContext(self))
	}

	var (
		buf         strings.Builder
		contentType ContentType
		rendered    int
	)
	for i, item := range items {
		r, err := item.Render(info.WithEnumerationItem())
		if err != nil {
			return Rendering{}, err
		}
		if rendered == 0 {
			contentType = r.ContentType
		} else if r.ContentType != contentType {
			return Rendering{}, newContentTypeError(info.Tag, contentType, r.ContentType, i)
		}
		rendered++
		buf.WriteString(r.String)
	}

	fallback := rendered == 0
	if cfg.fallback == FallbackBlankOutput && rendered > 0 && buf.Len() == 0 {
		fallback = true
	}
	if fallback {
		return info.Tag.Render(info.Context)
	}
	return Rendering{String: buf.String(), ContentType: contentType}, nil
}
