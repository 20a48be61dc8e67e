package kitty

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default in-memory rendering at 800x600
//	eng, err := kitty.New()
//
//	// Custom surface (dependency injection)
//	eng, err := kitty.New(kitty.WithSurface(win))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	surface    Surface
	blockSlots int
	distance   float64
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		surface:    nil, // a 800x600 PixmapSurface is created if nil
		blockSlots: DefaultBlockSlots,
		distance:   DefaultPerspectiveDistance,
	}
}

// WithSurface sets the presentation surface the engine renders to. Use this
// to attach a windowed backend or a custom target. The engine takes
// ownership: Close closes the surface.
func WithSurface(s Surface) Option {
	return func(o *engineOptions) {
		o.surface = s
	}
}

// WithArenaBlock sets the object arena's allocation block size in object
// slots. Smaller blocks make the grow/shrink policy observable with small
// scenes; the default corresponds to the classic 1 MiB block.
func WithArenaBlock(slots int) Option {
	return func(o *engineOptions) {
		o.blockSlots = slots
	}
}

// WithPerspectiveDistance sets the projection distance constant d used in
// the perspective divide x' = x*d/(d+z). Larger values flatten the
// perspective.
func WithPerspectiveDistance(d float64) Option {
	return func(o *engineOptions) {
		o.distance = d
	}
}
