package geom

import "math"

// Matrix is a 2x3 affine transformation matrix in the layout used
// throughout the pipeline:
//
//	x' = A*x + C*y + Tx
//	y' = B*x + D*y + Ty
//
// Columns (A,B) and (C,D) are the images of the unit x- and y-axes; Tx,Ty
// is the translation: the familiar [a,b,c,d,tx,ty] affine layout.
type Matrix struct {
	A, B, C, D, Tx, Ty float64
}

// IdentityMatrix returns the identity affine transform.
func IdentityMatrix() Matrix {
	return Matrix{A: 1, D: 1}
}

// TransformPoint maps p through the matrix.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.Tx,
		Y: m.B*p.X + m.D*p.Y + m.Ty,
	}
}

// TransformVector maps a direction vector through the matrix, ignoring
// translation.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Multiply composes m and other so that the result applies other first,
// then m: result.TransformPoint(p) == m.TransformPoint(other.TransformPoint(p)).
// Parent-first world-transform composition is Parent.Multiply(Local).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A:  m.A*other.A + m.C*other.B,
		B:  m.B*other.A + m.D*other.B,
		C:  m.A*other.C + m.C*other.D,
		D:  m.B*other.C + m.D*other.D,
		Tx: m.A*other.Tx + m.C*other.Ty + m.Tx,
		Ty: m.B*other.Tx + m.D*other.Ty + m.Ty,
	}
}

// Determinant returns A*D - B*C.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse matrix, or the identity matrix if m is
// numerically singular.
func (m Matrix) Invert() Matrix {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return IdentityMatrix()
	}
	inv := 1.0 / det
	a := m.D * inv
	b := -m.B * inv
	c := -m.C * inv
	d := m.A * inv
	return Matrix{
		A: a, B: b, C: c, D: d,
		Tx: -(a*m.Tx + c*m.Ty),
		Ty: -(b*m.Tx + d*m.Ty),
	}
}

// IsIdentity reports whether m is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1 && m.Tx == 0 && m.Ty == 0
}

// Transform is the scene-graph node transform: a translation, a rotation
// (radians) and independent x/y scale factors.
type Transform struct {
	X, Y           float64
	Rotation       float64 // radians
	ScaleX, ScaleY float64
}

// IdentityTransform returns the neutral transform (no translation,
// rotation, or scaling).
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Matrix expands the transform into its 2x3 affine matrix:
//
//	a = sx*cos(theta), b = sx*sin(theta)
//	c = -sy*sin(theta), d = sy*cos(theta)
func (t Transform) Matrix() Matrix {
	s, c := math.Sincos(t.Rotation)
	return Matrix{
		A: t.ScaleX * c,
		B: t.ScaleX * s,
		C: -t.ScaleY * s,
		D: t.ScaleY * c,
		Tx: t.X,
		Ty: t.Y,
	}
}

// DecomposeTransform recovers a Transform from an affine matrix produced
// by composing Transforms. Scale sign is folded into ScaleY so that the
// recovered rotation matches atan2(B, A).
func DecomposeTransform(m Matrix) Transform {
	sx := math.Hypot(m.A, m.B)
	rotation := math.Atan2(m.B, m.A)
	var sy float64
	if sx != 0 {
		sy = m.Determinant() / sx
	}
	return Transform{
		X:        m.Tx,
		Y:        m.Ty,
		Rotation: rotation,
		ScaleX:   sx,
		ScaleY:   sy,
	}
}
