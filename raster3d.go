package kitty

import "math"

// Mesh rasterization: painter-sorted faces, wireframe edges, flat scanline
// fills, and perspective-correct textured fills. There is no z-buffer; depth
// ordering is entirely the per-face painter sort.

// screenVert is a projected vertex carrying perspective-correct attributes:
// u/w and v/w interpolate linearly in screen space, and 1/w recovers the
// true texture coordinate at each pixel.
type screenVert struct {
	x, y     float64
	uOverW   float64
	vOverW   float64
	oneOverW float64
}

func drawMesh(s Surface, m *Mesh, d float64) error {
	sortFacesByDepth(m)

	textured := m.Wrap && m.Texture != nil && len(m.uvs) > 0
	for i := range m.faces {
		f := m.faces[i]
		if textured {
			// Faces added before the mesh carried UVs escape AddFace's UV
			// check, so the indices must be re-verified before sampling.
			if nu := len(m.uvs); f.UVA < 0 || f.UVA >= nu ||
				f.UVB < 0 || f.UVB >= nu || f.UVC < 0 || f.UVC >= nu {
				return errCode(CodeInvalidIndex, ErrInvalidFaceIndex,
					"face %d UV (%d,%d,%d) references missing UV, have %d",
					i, f.UVA, f.UVB, f.UVC, nu)
			}
		}
		pa, oka := projectToScreen(m, m.vertices[f.A], d)
		pb, okb := projectToScreen(m, m.vertices[f.B], d)
		pc, okc := projectToScreen(m, m.vertices[f.C], d)
		if !oka || !okb || !okc {
			// A vertex sits on the projection plane; skip the face rather
			// than divide by zero.
			continue
		}

		s.SetDrawColor(m.faceColors[i])
		ax, ay := int(pa.x), int(pa.y)
		bx, by := int(pb.x), int(pb.y)
		cx, cy := int(pc.x), int(pc.y)
		s.DrawLine(ax, ay, bx, by)
		s.DrawLine(bx, by, cx, cy)
		s.DrawLine(cx, cy, ax, ay)

		if m.Wireframe {
			continue
		}
		if textured {
			pa.setUV(m.uvs[f.UVA])
			pb.setUV(m.uvs[f.UVB])
			pc.setUV(m.uvs[f.UVC])
			textureTriangle(s, m.Texture, pa, pb, pc)
		} else {
			fillTriangle(s, Pt(ax, ay), Pt(bx, by), Pt(cx, cy))
		}
	}
	return nil
}

// projectToScreen applies the perspective divide to a mesh-local vertex and
// places it in screen space using the mesh position and scale. The returned
// screenVert carries 1/w for later attribute correction.
func projectToScreen(m *Mesh, v Vertex3D, d float64) (screenVert, bool) {
	px, py, invW, ok := project(v, d)
	if !ok {
		return screenVert{}, false
	}
	return screenVert{
		x:        float64(m.Position.X) + px*m.Scale,
		y:        float64(m.Position.Y) + py*m.Scale,
		oneOverW: invW,
	}, true
}

// setUV attaches a texture coordinate, pre-divided by w.
func (v *screenVert) setUV(uv UV) {
	v.uOverW = uv.U * v.oneOverW
	v.vOverW = uv.V * v.oneOverW
}

// sortFacesByDepth orders faces farthest-first by the average z of their
// vertices, swapping faces and colors in lockstep. A bubble sort is plenty
// for the small face counts this renderer targets, and keeps equal-depth
// faces in their original order.
func sortFacesByDepth(m *Mesh) {
	n := len(m.faces)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if faceDepth(m, j) < faceDepth(m, j+1) {
				m.faces[j], m.faces[j+1] = m.faces[j+1], m.faces[j]
				m.faceColors[j], m.faceColors[j+1] = m.faceColors[j+1], m.faceColors[j]
			}
		}
	}
}

// faceDepth returns the average z of face i's vertices.
func faceDepth(m *Mesh, i int) float64 {
	f := m.faces[i]
	return (m.vertices[f.A].Z + m.vertices[f.B].Z + m.vertices[f.C].Z) / 3
}

// textureTriangle scanline-fills a projected triangle with
// perspective-correct texture sampling. u/w, v/w, and 1/w interpolate
// linearly across each scanline; dividing out 1/w per pixel recovers the
// true (u, v), which wraps into [0,1) for tiling lookup.
func textureTriangle(s Surface, tex *Pixmap, a, b, c screenVert) {
	minY := int(math.Ceil(math.Min(a.y, math.Min(b.y, c.y))))
	maxY := int(math.Floor(math.Max(a.y, math.Max(b.y, c.y))))

	edges := [3][2]screenVert{{a, b}, {b, c}, {c, a}}
	for y := minY; y <= maxY; y++ {
		var left, right screenVert
		found := 0
		for _, e := range edges {
			v, ok := edgeIntersectVert(e[0], e[1], float64(y))
			if !ok {
				continue
			}
			switch {
			case found == 0:
				left, right = v, v
			case v.x < left.x:
				left = v
			case v.x > right.x:
				right = v
			}
			found++
		}
		if found < 2 {
			continue
		}
		span := right.x - left.x
		x0 := int(math.Ceil(left.x))
		x1 := int(math.Floor(right.x))
		for x := x0; x <= x1; x++ {
			var t float64
			if span > 0 {
				t = (float64(x) - left.x) / span
			}
			w := lerp(left.oneOverW, right.oneOverW, t)
			if math.Abs(w) < perspectiveEpsilon {
				continue
			}
			u := lerp(left.uOverW, right.uOverW, t) / w
			v := lerp(left.vOverW, right.vOverW, t) / w
			s.SetDrawColor(tex.SampleUV(u, v))
			s.DrawPoint(x, y)
		}
	}
}

// edgeIntersectVert intersects the edge (a, b) with a horizontal scanline,
// interpolating position and texture attributes on y. Zero y-span edges
// contribute no intersection.
func edgeIntersectVert(a, b screenVert, y float64) (screenVert, bool) {
	if a.y == b.y {
		return screenVert{}, false
	}
	if a.y > b.y {
		a, b = b, a
	}
	if y < a.y || y > b.y {
		return screenVert{}, false
	}
	t := (y - a.y) / (b.y - a.y)
	return screenVert{
		x:        lerp(a.x, b.x, t),
		y:        y,
		uOverW:   lerp(a.uOverW, b.uOverW, t),
		vOverW:   lerp(a.vOverW, b.vOverW, t),
		oneOverW: lerp(a.oneOverW, b.oneOverW, t),
	}, true
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
