package boxing

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic handling with errors.Is. A missing key is
// deliberately not represented here: key lookups are total and resolve to the
// empty box instead.
var (
	// ErrContentTypeMismatch indicates an enumeration mixed text and HTML
	// item renderings. Fatal: the whole render call is abandoned.
	ErrContentTypeMismatch = errors.New("content type mismatch")

	// ErrFilter indicates a filter was applied with the wrong arity or to a
	// value that is not a filter. Fatal.
	ErrFilter = errors.New("filter error")

	// ErrUnboxable indicates a host value could not be converted into a box.
	// Non-fatal by default: the adapter boundary degrades to the empty box
	// unless strict mode is enabled.
	ErrUnboxable = errors.New("unboxable value")
)

// RenderError ties a fatal rendering failure to the tag that produced it.
type RenderError struct {
	Err    error  // underlying sentinel (ErrContentTypeMismatch, ErrFilter, ...)
	Tag    Tag    // tag whose rendering failed, may be nil
	Detail string // human-readable specifics
}

func (e *RenderError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Tag != nil {
		return fmt.Sprintf("boxing: %s (%s)", msg, e.Tag.Description())
	}
	return "boxing: " + msg
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// FilterError reports a filter applied with the wrong shape: too few
// arguments on the final application, too many overall, or a non-filter box
// in filter position.
type FilterError struct {
	Reason string
	Cause  error
}

func (e *FilterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("boxing: %s: %s: %v", ErrFilter.Error(), e.Reason, e.Cause)
	}
	return fmt.Sprintf("boxing: %s: %s", ErrFilter.Error(), e.Reason)
}

func (e *FilterError) Unwrap() error {
	return ErrFilter
}

func newContentTypeError(tag Tag, want, got ContentType, index int) error {
	return &RenderError{
		Err:    ErrContentTypeMismatch,
		Tag:    tag,
		Detail: fmt.Sprintf("item %d rendered as %s, enumeration started as %s", index, got, want),
	}
}
