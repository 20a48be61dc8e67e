package kitty

// Mesh is a 3D polygonal object: vertices, triangular faces with one flat
// color per face, and optional UV coordinates plus a texture. Geometry is
// populated incrementally through AddVertex, AddUV, and AddFace, typically by
// the mesh file loader.
//
// Position places the mesh origin on screen, Scale multiplies projected
// coordinates. Wireframe suppresses face fills; Wrap enables textured fills
// with tiling texture lookup when a Texture is attached.
type Mesh struct {
	Position  Point3D
	Scale     float64
	Wireframe bool
	Wrap      bool
	Texture   *Pixmap

	vertices   []Vertex3D
	faces      []Face
	faceColors []Color
	uvs        []UV
}

// NewMesh creates a mesh with empty geometry, unit scale, and no texture.
func NewMesh() *Mesh {
	return &Mesh{Scale: 1}
}

// Kind returns KindMesh.
func (*Mesh) Kind() ObjectKind { return KindMesh }

func (*Mesh) sealedObject() {}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// UVCount returns the number of UV coordinates.
func (m *Mesh) UVCount() int { return len(m.uvs) }

// Vertex returns the vertex at index i.
func (m *Mesh) Vertex(i int) Vertex3D { return m.vertices[i] }

// Face returns the face at index i.
func (m *Mesh) Face(i int) Face { return m.faces[i] }

// FaceColor returns the flat color of the face at index i.
func (m *Mesh) FaceColor(i int) Color { return m.faceColors[i] }

// AddVertex appends one vertex.
func (m *Mesh) AddVertex(v Vertex3D) {
	m.vertices = append(m.vertices, v)
}

// AddUV appends one texture coordinate.
func (m *Mesh) AddUV(uv UV) {
	m.uvs = append(m.uvs, uv)
}

// AddFace appends one face together with its flat color, keeping the face
// and color slices in lockstep. The face's vertex indices must refer to
// vertices already added; once the mesh carries UVs, its UV indices must
// refer to existing UVs as well. On error the mesh is left unmodified.
//
// UV indices on faces added while the mesh has no UVs yet are accepted here
// (flat-shaded meshes carry zero-valued ones) and checked again by the
// textured render path once UVs exist.
func (m *Mesh) AddFace(f Face, c Color) error {
	n := len(m.vertices)
	if f.A < 0 || f.A >= n || f.B < 0 || f.B >= n || f.C < 0 || f.C >= n {
		return errCode(CodeInvalidIndex, ErrInvalidFaceIndex,
			"face (%d,%d,%d) references missing vertex, have %d", f.A, f.B, f.C, n)
	}
	if nu := len(m.uvs); nu > 0 {
		if f.UVA < 0 || f.UVA >= nu || f.UVB < 0 || f.UVB >= nu || f.UVC < 0 || f.UVC >= nu {
			return errCode(CodeInvalidIndex, ErrInvalidFaceIndex,
				"face UV (%d,%d,%d) references missing UV, have %d", f.UVA, f.UVB, f.UVC, nu)
		}
	}
	m.faces = append(m.faces, f)
	m.faceColors = append(m.faceColors, c)
	return nil
}

// Center returns the arithmetic mean of all vertices, or the zero vertex for
// an empty mesh.
func (m *Mesh) Center() Vertex3D {
	if len(m.vertices) == 0 {
		return Vertex3D{}
	}
	var sum Vertex3D
	for _, v := range m.vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1 / float64(len(m.vertices)))
}

// Transform rotates every vertex about the three axes (X, then Y, then Z, in
// radians) and then translates it, in place.
func (m *Mesh) Transform(translate Vertex3D, rx, ry, rz float64) {
	for i, v := range m.vertices {
		m.vertices[i] = v.Rotate(rx, ry, rz).Add(translate)
	}
}
