package kitty

import "math"

// Point represents a 2D point on the integer pixel grid.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Point3D represents a 3D point on the integer grid. It is used for object
// and camera origins, not for mesh geometry (see Vertex3D).
type Point3D struct {
	X, Y, Z int
}

// Pt3 is a convenience function to create a Point3D.
func Pt3(x, y, z int) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Vertex3D represents a 3D float vertex, used for mesh geometry and math.
type Vertex3D struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vertex3D.
func V3(x, y, z float64) Vertex3D {
	return Vertex3D{X: x, Y: y, Z: z}
}

// Add returns the sum of two vertices (vector addition).
func (v Vertex3D) Add(w Vertex3D) Vertex3D {
	return Vertex3D{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the vector from w to v (vector subtraction).
func (v Vertex3D) Sub(w Vertex3D) Vertex3D {
	return Vertex3D{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vertex scaled by a scalar.
func (v Vertex3D) Mul(s float64) Vertex3D {
	return Vertex3D{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vertex3D) Dot(w Vertex3D) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of two vectors.
func (v Vertex3D) Cross(w Vertex3D) Vertex3D {
	return Vertex3D{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of the vector.
func (v Vertex3D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction.
func (v Vertex3D) Normalize() Vertex3D {
	length := v.Length()
	if length == 0 {
		return Vertex3D{}
	}
	return Vertex3D{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// UV is a texture coordinate pair. V is conventionally flipped on load
// (v' = 1 - v) so that (0,0) refers to the top-left of the image.
type UV struct {
	U, V float64
}

// Face is a triangular mesh face: three indices into a mesh's vertex slice
// plus three indices into its UV slice. All indices are 0-based.
type Face struct {
	A, B, C       int
	UVA, UVB, UVC int
}
