package kitty

// Surface is the presentation target abstraction: the collaborator that
// actually puts pixels somewhere visible. The engine's rasterizer is written
// entirely against this interface, so backends may be an in-memory pixmap,
// a desktop window, or anything else that can plot points.
//
// Drawing operations use a current draw color, set with SetDrawColor, in the
// style of classic immediate-mode renderers. Coordinates outside the surface
// are clipped silently.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Clear fills the entire surface with the given color.
	Clear(c Color)

	// SetDrawColor sets the color used by subsequent draw operations.
	SetDrawColor(c Color)

	// DrawPoint plots a single point in the current draw color.
	DrawPoint(x, y int)

	// DrawLine draws a straight segment in the current draw color.
	DrawLine(x1, y1, x2, y2 int)

	// FillRect fills an axis-aligned rectangle in the current draw color.
	FillRect(x, y, w, h int)

	// DrawRectOutline outlines an axis-aligned rectangle in the current
	// draw color.
	DrawRectOutline(x, y, w, h int)

	// Blit composites a pixmap onto the surface with its top-left corner at
	// (x, y), honoring the pixmap's alpha channel.
	Blit(pm *Pixmap, x, y int)

	// Present makes everything drawn since the last Present visible.
	// For plain in-memory surfaces this is a no-op.
	Present() error

	// Close releases all resources associated with the surface.
	// After Close, the surface must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}
