package adapt

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-mustache/pkg/boxing"
)

// Diagnostic records a value the adapter boundary could not box. Diagnostics
// are the non-fatal side channel of degradation: rendering proceeds with the
// empty box while the sink observes what was dropped.
type Diagnostic struct {
	Value  any
	Reason string
}

// DiagnosticSink receives unboxable-value diagnostics.
type DiagnosticSink interface {
	Unboxable(d Diagnostic)
}

// SinkFunc adapts a function into a DiagnosticSink.
type SinkFunc func(Diagnostic)

// Unboxable calls the underlying function.
func (fn SinkFunc) Unboxable(d Diagnostic) {
	fn(d)
}

// NewLogSink returns a sink that logs diagnostics through the supplied
// zerolog logger at warn level.
func NewLogSink(logger zerolog.Logger) DiagnosticSink {
	return SinkFunc(func(d Diagnostic) {
		logger.Warn().
			Str("reason", d.Reason).
			Str("value_type", fmt.Sprintf("%T", d.Value)).
			Msg("unboxable value degraded to empty box")
	})
}

// WithLogger routes diagnostics to a zerolog-backed sink.
func WithLogger(logger zerolog.Logger) RegistryOption {
	return WithDiagnostics(NewLogSink(logger))
}

// UnboxableError is the strict-mode failure for a value no adapter could box.
type UnboxableError struct {
	Value any
}

func (e *UnboxableError) Error() string {
	return fmt.Sprintf("adapt: %s: %T", boxing.ErrUnboxable.Error(), e.Value)
}

func (e *UnboxableError) Unwrap() error {
	return boxing.ErrUnboxable
}
