package adapt

import "github.com/goliatone/go-mustache/pkg/boxing"

// boxBuiltin handles the conversions every registry supports without
// registration: boxes pass through, Go scalars map onto the scalar boxers,
// and the generic collection shapes produced by the document decoders box
// recursively. No runtime reflection; unknown concrete types fall through to
// the registered adapters. The error is only ever non-nil in strict mode,
// when a nested element turned out unboxable.
func (r *Registry) boxBuiltin(value any) (boxing.Box, bool, error) {
	switch v := value.(type) {
	case nil:
		return boxing.BoxNull(), true, nil
	case boxing.Box:
		return v, true, nil
	case bool:
		return boxing.BoxBool(v), true, nil
	case int:
		return boxing.BoxInt(int64(v)), true, nil
	case int32:
		return boxing.BoxInt(int64(v)), true, nil
	case int64:
		return boxing.BoxInt(v), true, nil
	case uint:
		return boxing.BoxInt(int64(v)), true, nil
	case uint32:
		return boxing.BoxInt(int64(v)), true, nil
	case uint64:
		return boxing.BoxInt(int64(v)), true, nil
	case float32:
		return boxing.BoxFloat(float64(v)), true, nil
	case float64:
		return boxing.BoxFloat(v), true, nil
	case string:
		return boxing.BoxString(v), true, nil
	case []boxing.Box:
		return boxing.BoxSequence(v), true, nil
	case map[string]boxing.Box:
		return boxing.BoxMap(v), true, nil
	case []any:
		box, err := r.boxSlice(v)
		return box, true, err
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		box, err := r.boxSlice(items)
		return box, true, err
	case []int64:
		items := make([]any, len(v))
		for i, n := range v {
			items[i] = n
		}
		box, err := r.boxSlice(items)
		return box, true, err
	case []float64:
		items := make([]any, len(v))
		for i, f := range v {
			items[i] = f
		}
		box, err := r.boxSlice(items)
		return box, true, err
	case []bool:
		items := make([]any, len(v))
		for i, b := range v {
			items[i] = b
		}
		box, err := r.boxSlice(items)
		return box, true, err
	case []map[string]any:
		items := make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
		box, err := r.boxSlice(items)
		return box, true, err
	case map[string]any:
		entries := make(map[string]boxing.Box, len(v))
		for key, elem := range v {
			boxed, err := r.BoxValue(elem)
			if err != nil {
				return boxing.Box{}, true, err
			}
			entries[key] = boxed
		}
		return boxing.BoxMap(entries), true, nil
	}
	return boxing.Box{}, false, nil
}

// boxSlice boxes every element individually before the sequence is stored;
// the raw host collection never reaches the box.
func (r *Registry) boxSlice(items []any) (boxing.Box, error) {
	boxed := make([]boxing.Box, len(items))
	for i, item := range items {
		box, err := r.BoxValue(item)
		if err != nil {
			return boxing.Box{}, err
		}
		boxed[i] = box
	}
	return boxing.BoxSequence(boxed), nil
}
