package overlay

import "time"

// Options configures how the cutout is computed and rendered.
type Options struct {
	// Padding inflates the target rectangle on all sides before the
	// cutout is cut.
	Padding float64
	// Radius rounds the cutout corners. It is clamped to half of the
	// smaller cutout dimension at render time.
	Radius float64
	// Color fills the dimmed region.
	Color string
	// Opacity is the fill opacity of the dimmed region.
	Opacity float64
	// Animate emits a CSS transition on the rendered path so the
	// cutout glides between targets.
	Animate bool
	// Duration is the transition duration when Animate is set.
	Duration time.Duration
}

// DefaultOptions returns the standard overlay configuration.
func DefaultOptions() Options {
	return Options{
		Padding:  8,
		Radius:   4,
		Color:    "black",
		Opacity:  0.75,
		Animate:  true,
		Duration: 300 * time.Millisecond,
	}
}

// Option overrides a single Options field.
type Option func(*Options)

// WithPadding sets the cutout padding.
func WithPadding(padding float64) Option {
	return func(o *Options) {
		o.Padding = padding
	}
}

// WithRadius sets the cutout corner radius.
func WithRadius(radius float64) Option {
	return func(o *Options) {
		o.Radius = radius
	}
}

// WithColor sets the backdrop fill color.
func WithColor(color string) Option {
	return func(o *Options) {
		o.Color = color
	}
}

// WithOpacity sets the backdrop fill opacity.
func WithOpacity(opacity float64) Option {
	return func(o *Options) {
		o.Opacity = opacity
	}
}

// WithAnimate toggles the rendered transition.
func WithAnimate(animate bool) Option {
	return func(o *Options) {
		o.Animate = animate
	}
}

// WithDuration sets the rendered transition duration.
func WithDuration(d time.Duration) Option {
	return func(o *Options) {
		o.Duration = d
	}
}

func (o Options) apply(opts []Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
