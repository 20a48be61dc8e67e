package kitty

// PixmapSurface is the built-in software presentation surface. All drawing
// lands in an in-memory Pixmap, which makes it the canonical target for
// headless rendering and tests; the windowed backend reuses it as a staging
// buffer.
type PixmapSurface struct {
	pm   *Pixmap
	draw Color
}

// NewPixmapSurface creates a software surface with a fresh pixmap of the
// given dimensions.
func NewPixmapSurface(width, height int) *PixmapSurface {
	return &PixmapSurface{pm: NewPixmap(width, height), draw: White}
}

// NewPixmapSurfaceFor creates a software surface drawing into pm.
func NewPixmapSurfaceFor(pm *Pixmap) *PixmapSurface {
	return &PixmapSurface{pm: pm, draw: White}
}

// Pixmap returns the surface's backing pixmap.
func (s *PixmapSurface) Pixmap() *Pixmap {
	return s.pm
}

// Size returns the surface dimensions in pixels.
func (s *PixmapSurface) Size() (int, int) {
	return s.pm.Width(), s.pm.Height()
}

// Clear fills the entire surface with the given color.
func (s *PixmapSurface) Clear(c Color) {
	s.pm.Clear(c)
}

// SetDrawColor sets the color used by subsequent draw operations.
func (s *PixmapSurface) SetDrawColor(c Color) {
	s.draw = c
}

// DrawPoint plots a single point in the current draw color.
func (s *PixmapSurface) DrawPoint(x, y int) {
	s.pm.SetPixel(x, y, s.draw)
}

// DrawLine draws a straight segment in the current draw color using
// Bresenham's algorithm.
func (s *PixmapSurface) DrawLine(x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		s.pm.SetPixel(x1, y1, s.draw)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// FillRect fills an axis-aligned rectangle in the current draw color.
func (s *PixmapSurface) FillRect(x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			s.pm.SetPixel(xx, yy, s.draw)
		}
	}
}

// DrawRectOutline outlines an axis-aligned rectangle in the current draw
// color.
func (s *PixmapSurface) DrawRectOutline(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.DrawLine(x, y, x+w-1, y)
	s.DrawLine(x+w-1, y, x+w-1, y+h-1)
	s.DrawLine(x+w-1, y+h-1, x, y+h-1)
	s.DrawLine(x, y+h-1, x, y)
}

// Blit composites pm onto the surface at (x, y), honoring alpha.
func (s *PixmapSurface) Blit(pm *Pixmap, x, y int) {
	for sy := 0; sy < pm.Height(); sy++ {
		for sx := 0; sx < pm.Width(); sx++ {
			s.pm.BlendPixel(x+sx, y+sy, pm.GetPixel(sx, sy))
		}
	}
}

// Present is a no-op for the in-memory surface.
func (s *PixmapSurface) Present() error {
	return nil
}

// Close is a no-op for the in-memory surface; the pixmap stays valid so the
// caller can still snapshot it.
func (s *PixmapSurface) Close() error {
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
