package boxing

import (
	"fmt"
	"strconv"
	"strings"
)

// nullPayload is the explicit null sentinel. Unlike the absence of a value it
// marks "the host handed us nothing on purpose"; it yields no string view.
type nullPayload struct{}

func isNull(v any) bool {
	_, ok := v.(nullPayload)
	return ok
}

// IntValue returns the payload seen as an integer. Integer payloads convert
// directly, floating payloads truncate; anything else reports false.
func (b Box) IntValue() (int64, bool) {
	if !b.hasValue {
		return 0, false
	}
	switch v := b.value.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	}
	return 0, false
}

// FloatValue returns the payload seen as a floating-point number, converting
// from either numeric payload.
func (b Box) FloatValue() (float64, bool) {
	if !b.hasValue {
		return 0, false
	}
	switch v := b.value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// StringValue returns the canonical string form of the payload. Every payload
// stringifies except the explicit null sentinel, which yields no string.
func (b Box) StringValue() (string, bool) {
	if !b.hasValue || isNull(b.value) {
		return "", false
	}
	switch v := b.value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case []Box:
		// boxed collections stringify out of their items, keeping repeated
		// renders byte-identical
		var buf strings.Builder
		for _, item := range v {
			if s, ok := item.StringValue(); ok {
				buf.WriteString(s)
			}
		}
		return buf.String(), true
	case map[string]Box:
		return describeMap(v), true
	}
	return fmt.Sprintf("%v", b.value), true
}
