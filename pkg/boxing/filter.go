package boxing

import "fmt"

// BoxFilter boxes a filter capability. The resulting box is non-empty but
// carries no value: in variable position it renders as the empty string.
func BoxFilter(fn FilterFunc) Box {
	return New(WithFilter(fn))
}

// NAryFilter builds a curried filter of fixed arity. Each application with
// partial=true collects one argument and returns an intermediate filter box;
// the final application (partial=false) must complete the argument list, at
// which point apply runs with the collected arguments in application order.
func NAryFilter(arity int, apply func(args []Box) (Box, error)) Box {
	if arity < 1 {
		panic("boxing: filter arity must be at least 1")
	}
	return BoxFilter(curried(nil, arity, apply))
}

func curried(collected []Box, arity int, apply func(args []Box) (Box, error)) FilterFunc {
	return func(arg Box, partial bool) (Box, error) {
		args := make([]Box, 0, len(collected)+1)
		args = append(args, collected...)
		args = append(args, arg)

		if len(args) < arity {
			if !partial {
				return Box{}, &FilterError{
					Reason: fmt.Sprintf("expected %d arguments, got %d", arity, len(args)),
				}
			}
			return BoxFilter(curried(args, arity, apply)), nil
		}
		if partial {
			return Box{}, &FilterError{
				Reason: fmt.Sprintf("expected %d arguments, got more", arity),
			}
		}
		return apply(args)
	}
}

// ApplyFilter applies one argument to a filter box. A box without the filter
// capability fails with ErrFilter.
func ApplyFilter(filter Box, arg Box, partial bool) (Box, error) {
	fn := filter.Filter()
	if fn == nil {
		return Box{}, &FilterError{Reason: "value is not a filter"}
	}
	return fn(arg, partial)
}
