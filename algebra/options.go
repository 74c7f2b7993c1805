// Package algebra: functional options for the public operations.
// Defaults give silent execution (no recorder) with Auto formatting at the
// standard digit budget; options override per call.

package algebra

import (
	"github.com/katalvlaran/algex/format"
	"github.com/katalvlaran/algex/numeric"
)

// options carries the resolved per-call settings.
type options struct {
	rec    Recorder
	format format.Mode
	places int
}

// Option customizes a single operation call.
type Option func(*options)

// WithRecorder attaches a step recorder to the operation. A nil recorder
// is equivalent to not attaching one.
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.rec = r }
}

// WithFormat selects the output rendering mode (default Auto).
func WithFormat(m format.Mode) Option {
	return func(o *options) { o.format = m }
}

// WithPlaces sets the decimal digit budget for rendered output
// (default numeric.DefaultDecimalPlaces).
func WithPlaces(n int) Option {
	return func(o *options) { o.places = n }
}

// gather applies opts over the defaults.
func gather(opts []Option) options {
	o := options{
		format: format.Auto,
		places: numeric.DefaultDecimalPlaces,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
