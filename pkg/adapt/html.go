package adapt

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-mustache/pkg/boxing"
)

var (
	htmlPolicyOnce sync.Once
	htmlPolicy     *bluemonday.Policy
)

func htmlSanitizer() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		htmlPolicy = bluemonday.UGCPolicy()
	})
	return htmlPolicy
}

// SafeHTML sanitizes markup and boxes it with HTML content type. This is the
// markup-aware boxer: in variable position it overrides the default
// text-typed render so upstream escaping leaves the fragment alone. The input
// passes through a bluemonday UGC policy first, so the box never carries
// active content.
func SafeHTML(markup string) boxing.Box {
	cleaned := strings.TrimSpace(htmlSanitizer().Sanitize(markup))

	var self boxing.Box
	self = boxing.New(
		boxing.WithValue(cleaned),
		boxing.WithBool(len(cleaned) > 0),
		boxing.WithRender(func(info boxing.RenderingInfo) (boxing.Rendering, error) {
			if info.Tag.Type() == boxing.TagTypeSection {
				return info.Tag.Render(info.Context.ExtendedContext(self))
			}
			return boxing.HTMLRendering(cleaned), nil
		}),
	)
	return self
}
