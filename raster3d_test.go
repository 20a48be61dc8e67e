package kitty

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// TestMeshWireframeDrawsThreeEdges runs the reference scenario: a mesh with
// vertices (0,0,0), (1,0,0), (0,1,0) and one face renders exactly 3 line
// segments connecting the projected points.
func TestMeshWireframeDrawsThreeEdges(t *testing.T) {
	m := NewMesh()
	m.Wireframe = true
	m.Position = Pt3(100, 100, 0)
	m.AddVertex(V3(0, 0, 0))
	m.AddVertex(V3(1, 0, 0))
	m.AddVertex(V3(0, 1, 0))
	if err := m.AddFace(Face{A: 0, B: 1, C: 2}, White); err != nil {
		t.Fatalf("AddFace failed: %v", err)
	}

	s := &recordSurface{}
	eng, err := New(WithSurface(s), WithArenaBlock(8))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer eng.Close()
	if _, err := eng.AddObject(m); err != nil {
		t.Fatalf("AddObject failed: %v", err)
	}
	if err := eng.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(s.lines) != 3 {
		t.Fatalf("drew %d lines, want exactly 3", len(s.lines))
	}
	// All z are 0, so the perspective factor is 1 and the projected points
	// are the vertices offset by the mesh position.
	wantPts := map[Point]bool{{100, 100}: true, {101, 100}: true, {100, 101}: true}
	for _, l := range s.lines {
		if !wantPts[Pt(l[0], l[1])] || !wantPts[Pt(l[2], l[3])] {
			t.Errorf("line %v does not connect projected vertices", l)
		}
	}
}

// TestPainterSortFarthestFirst verifies faces are reordered by descending
// average z with their colors in lockstep.
func TestPainterSortFarthestFirst(t *testing.T) {
	m := NewMesh()
	for _, z := range []float64{1, 5, 3} {
		m.AddVertex(V3(0, 0, z))
		m.AddVertex(V3(1, 0, z))
		m.AddVertex(V3(0, 1, z))
	}
	near := Face{A: 0, B: 1, C: 2}  // avg z 1
	far := Face{A: 3, B: 4, C: 5}   // avg z 5
	mid := Face{A: 6, B: 7, C: 8}   // avg z 3
	for _, fc := range []struct {
		f Face
		c Color
	}{{near, Red}, {far, Blue}, {mid, Green}} {
		if err := m.AddFace(fc.f, fc.c); err != nil {
			t.Fatalf("AddFace failed: %v", err)
		}
	}

	sortFacesByDepth(m)

	wantOrder := []Face{far, mid, near}
	wantColor := []Color{Blue, Green, Red}
	for i := range wantOrder {
		if m.Face(i) != wantOrder[i] {
			t.Errorf("face %d = %+v, want %+v", i, m.Face(i), wantOrder[i])
		}
		if m.FaceColor(i) != wantColor[i] {
			t.Errorf("color %d = %v, want %v (colors must move with faces)", i, m.FaceColor(i), wantColor[i])
		}
	}
}

// TestPerspectiveCorrectReducesToAffine verifies that with 1/w = 1 at all
// three vertices (no perspective distortion) the interpolated (u,v) at any
// pixel equals the affine interpolation of the vertex UVs.
func TestPerspectiveCorrectReducesToAffine(t *testing.T) {
	// Probe texture: the texel at (x,y) encodes its own coordinates in the
	// red and green channels.
	const texSize = 256
	tex := NewPixmap(texSize, texSize)
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			tex.SetPixel(x, y, Color{R: uint8(x), G: uint8(y), A: 255})
		}
	}

	// Right triangle spanning 64x64 pixels, UVs (0,0), (1,0), (0,1), w = 1.
	a := screenVert{x: 0, y: 0, oneOverW: 1}
	a.setUV(UV{U: 0, V: 0})
	b := screenVert{x: 64, y: 0, oneOverW: 1}
	b.setUV(UV{U: 1, V: 0})
	c := screenVert{x: 0, y: 64, oneOverW: 1}
	c.setUV(UV{U: 0, V: 1})

	s := &recordSurface{}
	textureTriangle(s, tex, a, b, c)

	if len(s.points) == 0 {
		t.Fatal("textured triangle plotted no pixels")
	}
	for i, p := range s.points {
		wantU := float64(p.X) / 64
		wantV := float64(p.Y) / 64
		if wantU >= 0.999 || wantV >= 0.999 {
			// u or v of exactly 1 wraps to texel 0 by the tiling contract;
			// exclude the boundary from the affine comparison.
			continue
		}
		got := s.colors[i]
		// Nearest-texel sampling quantizes to 1/256; allow one texel.
		if math.Abs(float64(got.R)-wantU*texSize) > 1.5 {
			t.Fatalf("pixel %v sampled u-texel %d, want ~%v", p, got.R, wantU*texSize)
		}
		if math.Abs(float64(got.G)-wantV*texSize) > 1.5 {
			t.Fatalf("pixel %v sampled v-texel %d, want ~%v", p, got.G, wantV*texSize)
		}
	}
}

// TestTextureSampleWrap verifies texture coordinates wrap into [0,1),
// tiling for coordinates beyond the unit square and negative values.
func TestTextureSampleWrap(t *testing.T) {
	tex := NewPixmap(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			tex.SetPixel(x, y, Color{R: uint8(x * 10), G: uint8(y * 10), A: 255})
		}
	}

	cases := []struct {
		u, v         float64
		wantX, wantY uint8
	}{
		{0, 0, 0, 0},
		{0.999, 0.999, 30, 30},
		{1.25, 0, 10, 0},  // wraps to 0.25
		{-0.25, 0, 30, 0}, // wraps to 0.75
		{2.0, 3.5, 0, 20}, // u wraps to 0, v to 0.5
	}
	for _, tc := range cases {
		got := tex.SampleUV(tc.u, tc.v)
		if got.R != tc.wantX || got.G != tc.wantY {
			t.Errorf("SampleUV(%v, %v) = texel (%d,%d), want (%d,%d)",
				tc.u, tc.v, got.R, got.G, tc.wantX, tc.wantY)
		}
	}
}

// TestProjectGuardsNearZeroDivisor verifies vertices on the projection plane
// report not-ok instead of dividing by zero, and that a face touching the
// plane is skipped rather than crashing the render.
func TestProjectGuardsNearZeroDivisor(t *testing.T) {
	if _, _, _, ok := project(V3(1, 1, -DefaultPerspectiveDistance), DefaultPerspectiveDistance); ok {
		t.Error("project accepted a vertex on the projection plane")
	}
	x, y, invW, ok := project(V3(2, 4, 0), 100)
	if !ok || x != 2 || y != 4 || invW != 1 {
		t.Errorf("project(2,4,0) = (%v,%v,%v,%v), want (2,4,1,true)", x, y, invW, ok)
	}

	m := NewMesh()
	m.Position = Pt3(50, 50, 0)
	m.AddVertex(V3(0, 0, -DefaultPerspectiveDistance))
	m.AddVertex(V3(1, 0, 0))
	m.AddVertex(V3(0, 1, 0))
	if err := m.AddFace(Face{A: 0, B: 1, C: 2}, White); err != nil {
		t.Fatalf("AddFace failed: %v", err)
	}
	s := &recordSurface{}
	if err := drawMesh(s, m, DefaultPerspectiveDistance); err != nil {
		t.Fatalf("drawMesh failed: %v", err)
	}
	if len(s.lines) != 0 || len(s.points) != 0 {
		t.Errorf("face with degenerate vertex drew %d lines and %d points, want none",
			len(s.lines), len(s.points))
	}
}

// TestTexturedRenderRejectsStaleUVIndices covers faces that slip past
// AddFace's UV check because they were added before the mesh carried any
// UVs. Mesh files may list f records ahead of vt records, so the textured
// path must fail with a checked error instead of indexing out of range.
func TestTexturedRenderRejectsStaleUVIndices(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1/3/1 2/3/1 3/3/1
vt 0 0
`
	m := NewMesh()
	if err := LoadOBJ(strings.NewReader(src), m); err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	m.Position = Pt3(100, 100, 0)
	m.Wrap = true
	m.Texture = NewPixmap(4, 4)

	s := &recordSurface{}
	err := drawMesh(s, m, DefaultPerspectiveDistance)
	if !errors.Is(err, ErrInvalidFaceIndex) {
		t.Fatalf("drawMesh = %v, want ErrInvalidFaceIndex", err)
	}
}

// TestTexturedRenderAcceptsLateUVs verifies the legal ordering: a face whose
// UV references are satisfied by vt records appearing later in the file
// renders without error.
func TestTexturedRenderAcceptsLateUVs(t *testing.T) {
	src := `v 0 0 0
v 4 0 0
v 0 4 0
f 1/1/1 2/2/1 3/3/1
vt 0 0
vt 1 0
vt 0 1
`
	m := NewMesh()
	if err := LoadOBJ(strings.NewReader(src), m); err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	m.Position = Pt3(100, 100, 0)
	m.Scale = 10
	m.Wrap = true
	m.Texture = NewPixmap(4, 4)

	s := &recordSurface{}
	if err := drawMesh(s, m, DefaultPerspectiveDistance); err != nil {
		t.Fatalf("drawMesh failed: %v", err)
	}
	if len(s.points) == 0 {
		t.Error("textured face plotted no pixels")
	}
}

// TestMeshFlatFillDrawsSpans verifies a non-wireframe untextured mesh fills
// its faces in addition to the edges.
func TestMeshFlatFillDrawsSpans(t *testing.T) {
	m := NewMesh()
	m.Position = Pt3(100, 100, 0)
	m.Scale = 10
	m.AddVertex(V3(0, 0, 0))
	m.AddVertex(V3(4, 0, 0))
	m.AddVertex(V3(0, 4, 0))
	if err := m.AddFace(Face{A: 0, B: 1, C: 2}, Magenta); err != nil {
		t.Fatalf("AddFace failed: %v", err)
	}

	s := &recordSurface{}
	if err := drawMesh(s, m, DefaultPerspectiveDistance); err != nil {
		t.Fatalf("drawMesh failed: %v", err)
	}
	if len(s.lines) <= 3 {
		t.Errorf("flat-filled mesh drew %d lines, want the 3 edges plus fill spans", len(s.lines))
	}
}
