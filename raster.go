package kitty

// 2D rasterization routines. Each takes the presentation surface and one
// object payload; the render dispatch in engine.go routes by variant.

func drawCircle(s Surface, c *Circle) {
	s.SetDrawColor(c.Color)
	r := int(c.Radius)
	if c.Filled {
		// Bounding-box scan: plot every offset within the radius.
		for w := 0; w < r*2; w++ {
			for h := 0; h < r*2; h++ {
				dx := r - w
				dy := r - h
				if dx*dx+dy*dy <= r*r {
					s.DrawPoint(c.Position.X+dx, c.Position.Y+dy)
				}
			}
		}
		return
	}

	// Midpoint circle with 8-way symmetric plotting.
	x := r - 1
	y := 0
	dx := 1
	dy := 1
	err := dx - (r << 1)
	for x >= y {
		s.DrawPoint(c.Position.X+x, c.Position.Y+y)
		s.DrawPoint(c.Position.X+y, c.Position.Y+x)
		s.DrawPoint(c.Position.X-y, c.Position.Y+x)
		s.DrawPoint(c.Position.X-x, c.Position.Y+y)
		s.DrawPoint(c.Position.X-x, c.Position.Y-y)
		s.DrawPoint(c.Position.X-y, c.Position.Y-x)
		s.DrawPoint(c.Position.X+y, c.Position.Y-x)
		s.DrawPoint(c.Position.X+x, c.Position.Y-y)

		if err <= 0 {
			y++
			err += dy
			dy += 2
		}
		if err > 0 {
			x--
			dx += 2
			err += dx - (r << 1)
		}
	}
}

func drawRectangle(s Surface, r *Rectangle) {
	s.SetDrawColor(r.Color)
	if r.Filled {
		s.FillRect(r.Position.X, r.Position.Y, r.Width, r.Height)
	} else {
		s.DrawRectOutline(r.Position.X, r.Position.Y, r.Width, r.Height)
	}
}

func drawLine(s Surface, l *Line) {
	s.SetDrawColor(l.Color)
	s.DrawLine(l.Start.X, l.Start.Y, l.End.X, l.End.Y)
}

func drawTriangle(s Surface, t *Triangle) {
	s.SetDrawColor(t.Color)
	s.DrawLine(t.V1.X, t.V1.Y, t.V2.X, t.V2.Y)
	s.DrawLine(t.V2.X, t.V2.Y, t.V3.X, t.V3.Y)
	s.DrawLine(t.V3.X, t.V3.Y, t.V1.X, t.V1.Y)
	if t.Filled {
		fillTriangle(s, t.V1, t.V2, t.V3)
	}
}

func drawPixel(s Surface, p *Pixel) {
	s.SetDrawColor(p.Color)
	s.DrawPoint(p.Position.X, p.Position.Y)
}

// fillTriangle scanline-fills the triangle in the current draw color. For
// each scanline the edges are intersected by linear interpolation on y and
// the horizontal span between the outermost intersections is drawn.
// Horizontal edges have no y-span and contribute no intersection.
func fillTriangle(s Surface, p1, p2, p3 Point) {
	minY := min3(p1.Y, p2.Y, p3.Y)
	maxY := max3(p1.Y, p2.Y, p3.Y)

	edges := [3][2]Point{{p1, p2}, {p2, p3}, {p3, p1}}
	for y := minY; y <= maxY; y++ {
		xs := make([]int, 0, 3)
		for _, e := range edges {
			if x, ok := edgeIntersect(e[0], e[1], y); ok {
				xs = append(xs, x)
			}
		}
		if len(xs) < 2 {
			continue
		}
		lo, hi := xs[0], xs[0]
		for _, x := range xs[1:] {
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
		}
		s.DrawLine(lo, y, hi, y)
	}
}

// edgeIntersect returns the x coordinate where the edge (a, b) crosses the
// scanline y, interpolated linearly on y. Degenerate (horizontal) edges and
// scanlines outside the edge's y-span report no intersection.
func edgeIntersect(a, b Point, y int) (int, bool) {
	if a.Y == b.Y {
		return 0, false
	}
	if a.Y > b.Y {
		a, b = b, a
	}
	if y < a.Y || y > b.Y {
		return 0, false
	}
	t := float64(y-a.Y) / float64(b.Y-a.Y)
	return a.X + int(t*float64(b.X-a.X)), true
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
