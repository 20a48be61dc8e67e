package kitty

import "math"

// RotateX returns the vertex rotated by angle radians about the X axis.
func (v Vertex3D) RotateX(angle float64) Vertex3D {
	sin, cos := math.Sincos(angle)
	return Vertex3D{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY returns the vertex rotated by angle radians about the Y axis.
func (v Vertex3D) RotateY(angle float64) Vertex3D {
	sin, cos := math.Sincos(angle)
	return Vertex3D{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateZ returns the vertex rotated by angle radians about the Z axis.
func (v Vertex3D) RotateZ(angle float64) Vertex3D {
	sin, cos := math.Sincos(angle)
	return Vertex3D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Rotate returns the vertex rotated about all three axes, applied in
// X, Y, Z order.
func (v Vertex3D) Rotate(rx, ry, rz float64) Vertex3D {
	return v.RotateX(rx).RotateY(ry).RotateZ(rz)
}

// DefaultPerspectiveDistance is the projection distance constant d used by
// the perspective divide x' = x*d/(d+z) when no override is configured.
const DefaultPerspectiveDistance = 256.0

// perspectiveEpsilon bounds how close the perspective divisor may come to
// zero before a vertex is considered degenerate and its face skipped.
const perspectiveEpsilon = 1e-6

// project maps a camera-space vertex to screen space with a perspective
// divide of distance d. The returned invW is the scale factor d/(d+z); it is
// also 1/w for perspective-correct attribute interpolation. ok is false when
// the divisor is too close to zero to project.
func project(v Vertex3D, d float64) (x, y, invW float64, ok bool) {
	den := d + v.Z
	if math.Abs(den) < perspectiveEpsilon {
		return 0, 0, 0, false
	}
	invW = d / den
	return v.X * invW, v.Y * invW, invW, true
}
