package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float64 = 3.14159265358979323846
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float64 = K_PI / 180.0
	/** @brief Smallest positive number where 1.0 + K_DOUBLE_EPSILON != 1.0 */
	K_DOUBLE_EPSILON float64 = 2.220446049250313e-16
	/** @brief Smallest positive number where 1.0 + K_FLOAT_EPSILON != 1.0, for float32. */
	K_FLOAT_EPSILON float64 = 1.192092896e-07
)

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 *  Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// MulScalar scales every component of v by s.
func (v Vec2) MulScalar(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec2) Length() float64 {
	return m.Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the supplied vector. The zero vector
 * is returned unchanged.
 */
func (v Vec2) Normalized() Vec2 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec2{v.X / length, v.Y / length}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// MaxAbs returns the largest absolute value of the components of v.
func (v Vec2) MaxAbs() float64 {
	return m.Max(m.Abs(v.X), m.Abs(v.Y))
}

/**
 * @brief Returns true if every component of v and other differs by no more
 * than epsilon.
 *
 * @param other The vector to compare against.
 * @param epsilon The difference tolerance.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Equivalent(other Vec2, epsilon float64) bool {
	if m.Abs(v.X-other.X) > epsilon {
		return false
	}
	if m.Abs(v.Y-other.Y) > epsilon {
		return false
	}
	return true
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

// Component returns X for axis 0 and Y for axis 1.
func (v Vec2) Component(axis int) float64 {
	if axis == 0 {
		return v.X
	}
	return v.Y
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

/**
 * @brief Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

/**
 * @brief Multiplies all elements of v by s and returns a copy of the result.
 */
func (v Vec3) MulScalar(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float64 {
	return m.Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the supplied vector. The zero vector
 * is returned unchanged.
 */
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

/**
 * @brief Returns the dot product between v and other.
 */
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of v and other.
 * The cross product is a new vector which is orthogonal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// MaxAbs returns the largest absolute value of the components of v.
func (v Vec3) MaxAbs() float64 {
	return m.Max(m.Abs(v.X), m.Max(m.Abs(v.Y), m.Abs(v.Z)))
}

/**
 * @brief Returns true if every component of v and other differs by no more
 * than epsilon.
 */
func (v Vec3) Equivalent(other Vec3, epsilon float64) bool {
	if m.Abs(v.X-other.X) > epsilon {
		return false
	}
	if m.Abs(v.Y-other.Y) > epsilon {
		return false
	}
	if m.Abs(v.Z-other.Z) > epsilon {
		return false
	}
	return true
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// HasNaN reports whether any component is NaN.
func (v Vec3) HasNaN() bool {
	return m.IsNaN(v.X) || m.IsNaN(v.Y) || m.IsNaN(v.Z)
}

// Component returns the coordinate along axis 0, 1 or 2.
func (v Vec3) Component(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// Project drops the third axis, keeping the coordinates along axis0 and axis1.
func (v Vec3) Project(axis0, axis1 int) Vec2 {
	return Vec2{v.Component(axis0), v.Component(axis1)}
}

// Lerp returns v + (other - v) * t.
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return v.Add(other.Sub(v).MulScalar(t))
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// MulScalar scales every component of v by s.
func (v Vec4) MulScalar(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product of v and other.
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec4) Length() float64 {
	return m.Sqrt(v.Dot(v))
}

/**
 * @brief Returns true if every component of v and other differs by no more
 * than epsilon.
 */
func (v Vec4) Equivalent(other Vec4, epsilon float64) bool {
	return m.Abs(v.X-other.X) <= epsilon && m.Abs(v.Y-other.Y) <= epsilon &&
		m.Abs(v.Z-other.Z) <= epsilon && m.Abs(v.W-other.W) <= epsilon
}

// ------------------------------------------
// Matrix 3
// ------------------------------------------

/**
 * @brief Creates and returns a 3x3 identity matrix.
 */
func NewMat3Identity() Mat3 {
	out := Mat3{}
	out.Data[0] = 1.0
	out.Data[4] = 1.0
	out.Data[8] = 1.0
	return out
}

/**
 * @brief Returns the result of multiplying mt and other.
 */
func (mt Mat3) Mul(other Mat3) Mat3 {
	out := Mat3{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sum := 0.0
			for i := 0; i < 3; i++ {
				sum += mt.Data[row*3+i] * other.Data[i*3+col]
			}
			out.Data[row*3+col] = sum
		}
	}
	return out
}

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}
	return out_matrix
}

/**
 * @brief Returns a transposed copy of the matrix.
 */
func (mt Mat4) Transposed() Mat4 {
	out_matrix := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out_matrix.Data[col*4+row] = mt.Data[row*4+col]
		}
	}
	return out_matrix
}

/**
 * @brief Creates and returns an inverse of the provided matrix. A singular
 * matrix yields a matrix of infinities.
 */
func (mt Mat4) Inverse() Mat4 {
	a := mt.Data
	var o [16]float64

	o[0] = a[5]*a[10]*a[15] - a[5]*a[11]*a[14] - a[9]*a[6]*a[15] + a[9]*a[7]*a[14] + a[13]*a[6]*a[11] - a[13]*a[7]*a[10]
	o[4] = -a[4]*a[10]*a[15] + a[4]*a[11]*a[14] + a[8]*a[6]*a[15] - a[8]*a[7]*a[14] - a[12]*a[6]*a[11] + a[12]*a[7]*a[10]
	o[8] = a[4]*a[9]*a[15] - a[4]*a[11]*a[13] - a[8]*a[5]*a[15] + a[8]*a[7]*a[13] + a[12]*a[5]*a[11] - a[12]*a[7]*a[9]
	o[12] = -a[4]*a[9]*a[14] + a[4]*a[10]*a[13] + a[8]*a[5]*a[14] - a[8]*a[6]*a[13] - a[12]*a[5]*a[10] + a[12]*a[6]*a[9]
	o[1] = -a[1]*a[10]*a[15] + a[1]*a[11]*a[14] + a[9]*a[2]*a[15] - a[9]*a[3]*a[14] - a[13]*a[2]*a[11] + a[13]*a[3]*a[10]
	o[5] = a[0]*a[10]*a[15] - a[0]*a[11]*a[14] - a[8]*a[2]*a[15] + a[8]*a[3]*a[14] + a[12]*a[2]*a[11] - a[12]*a[3]*a[10]
	o[9] = -a[0]*a[9]*a[15] + a[0]*a[11]*a[13] + a[8]*a[1]*a[15] - a[8]*a[3]*a[13] - a[12]*a[1]*a[11] + a[12]*a[3]*a[9]
	o[13] = a[0]*a[9]*a[14] - a[0]*a[10]*a[13] - a[8]*a[1]*a[14] + a[8]*a[2]*a[13] + a[12]*a[1]*a[10] - a[12]*a[2]*a[9]
	o[2] = a[1]*a[6]*a[15] - a[1]*a[7]*a[14] - a[5]*a[2]*a[15] + a[5]*a[3]*a[14] + a[13]*a[2]*a[7] - a[13]*a[3]*a[6]
	o[6] = -a[0]*a[6]*a[15] + a[0]*a[7]*a[14] + a[4]*a[2]*a[15] - a[4]*a[3]*a[14] - a[12]*a[2]*a[7] + a[12]*a[3]*a[6]
	o[10] = a[0]*a[5]*a[15] - a[0]*a[7]*a[13] - a[4]*a[1]*a[15] + a[4]*a[3]*a[13] + a[12]*a[1]*a[7] - a[12]*a[3]*a[5]
	o[14] = -a[0]*a[5]*a[14] + a[0]*a[6]*a[13] + a[4]*a[1]*a[14] - a[4]*a[2]*a[13] - a[12]*a[1]*a[6] + a[12]*a[2]*a[5]
	o[3] = -a[1]*a[6]*a[11] + a[1]*a[7]*a[10] + a[5]*a[2]*a[11] - a[5]*a[3]*a[10] - a[9]*a[2]*a[7] + a[9]*a[3]*a[6]
	o[7] = a[0]*a[6]*a[11] - a[0]*a[7]*a[10] - a[4]*a[2]*a[11] + a[4]*a[3]*a[10] + a[8]*a[2]*a[7] - a[8]*a[3]*a[6]
	o[11] = -a[0]*a[5]*a[11] + a[0]*a[7]*a[9] + a[4]*a[1]*a[11] - a[4]*a[3]*a[9] - a[8]*a[1]*a[7] + a[8]*a[3]*a[5]
	o[15] = a[0]*a[5]*a[10] - a[0]*a[6]*a[9] - a[4]*a[1]*a[10] + a[4]*a[2]*a[9] + a[8]*a[1]*a[6] - a[8]*a[2]*a[5]

	d := 1.0 / (a[0]*o[0] + a[1]*o[4] + a[2]*o[8] + a[3]*o[12])
	out_matrix := Mat4{}
	for i := range o {
		out_matrix.Data[i] = o[i] * d
	}
	return out_matrix
}

/**
 * @brief Transforms a point by the matrix. Points are treated as row vectors
 * (x, y, z, 1), so the translation lives in Data[12..14].
 */
func (mt Mat4) TransformPoint(p Vec3) Vec3 {
	d := mt.Data
	x := p.X*d[0] + p.Y*d[4] + p.Z*d[8] + d[12]
	y := p.X*d[1] + p.Y*d[5] + p.Z*d[9] + d[13]
	z := p.X*d[2] + p.Y*d[6] + p.Z*d[10] + d[14]
	w := p.X*d[3] + p.Y*d[7] + p.Z*d[11] + d[15]
	if w != 0 && w != 1 {
		x /= w
		y /= w
		z /= w
	}
	return Vec3{x, y, z}
}

/**
 * @brief Transforms a direction by the upper 3x3 part of the matrix.
 */
func (mt Mat4) TransformVector(v Vec3) Vec3 {
	d := mt.Data
	return Vec3{
		v.X*d[0] + v.Y*d[4] + v.Z*d[8],
		v.X*d[1] + v.Y*d[5] + v.Z*d[9],
		v.X*d[2] + v.Y*d[6] + v.Z*d[10],
	}
}

// ------------------------------------------
// Bounding boxes
// ------------------------------------------

/**
 * @brief Returns an empty 2D bounding box. Extending it by any point yields
 * a box containing exactly that point.
 */
func NewBBox2Empty() BBox2 {
	return BBox2{
		Min: Vec2{m.MaxFloat64, m.MaxFloat64},
		Max: Vec2{-m.MaxFloat64, -m.MaxFloat64},
	}
}

// Reset empties the box.
func (b *BBox2) Reset() {
	*b = NewBBox2Empty()
}

// IsEmpty reports whether the box contains no points.
func (b BBox2) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// ExtendBy grows the box to contain p.
func (b *BBox2) ExtendBy(p Vec2) {
	b.Min.X = m.Min(b.Min.X, p.X)
	b.Min.Y = m.Min(b.Min.Y, p.Y)
	b.Max.X = m.Max(b.Max.X, p.X)
	b.Max.Y = m.Max(b.Max.Y, p.Y)
}

// Size returns the extent of the box along each axis.
func (b BBox2) Size() Vec2 {
	if b.IsEmpty() {
		return Vec2{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b BBox2) Center() Vec2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Contains reports whether p lies inside or on the boundary of the box.
func (b BBox2) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Intersects reports whether the two boxes overlap, including touching boundaries.
func (b BBox2) Intersects(other BBox2) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return b.Min.X <= other.Max.X && other.Min.X <= b.Max.X &&
		b.Min.Y <= other.Max.Y && other.Min.Y <= b.Max.Y
}

/**
 * @brief Returns an empty 3D bounding box.
 */
func NewBBox3Empty() BBox3 {
	return BBox3{
		Min: Vec3{m.MaxFloat64, m.MaxFloat64, m.MaxFloat64},
		Max: Vec3{-m.MaxFloat64, -m.MaxFloat64, -m.MaxFloat64},
	}
}

// NewBBox3FromPoints returns the smallest box containing every point.
func NewBBox3FromPoints(points ...Vec3) BBox3 {
	b := NewBBox3Empty()
	for _, p := range points {
		b.ExtendBy(p)
	}
	return b
}

// Reset empties the box.
func (b *BBox3) Reset() {
	*b = NewBBox3Empty()
}

// IsEmpty reports whether the box contains no points.
func (b BBox3) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// ExtendBy grows the box to contain p.
func (b *BBox3) ExtendBy(p Vec3) {
	b.Min.X = m.Min(b.Min.X, p.X)
	b.Min.Y = m.Min(b.Min.Y, p.Y)
	b.Min.Z = m.Min(b.Min.Z, p.Z)
	b.Max.X = m.Max(b.Max.X, p.X)
	b.Max.Y = m.Max(b.Max.Y, p.Y)
	b.Max.Z = m.Max(b.Max.Z, p.Z)
}

// ExtendByBox grows the box to contain other.
func (b *BBox3) ExtendByBox(other BBox3) {
	if other.IsEmpty() {
		return
	}
	b.ExtendBy(other.Min)
	b.ExtendBy(other.Max)
}

// Expand grows the box by d along every axis in both directions.
func (b BBox3) Expand(d float64) BBox3 {
	if b.IsEmpty() {
		return b
	}
	delta := Vec3{d, d, d}
	return BBox3{Min: b.Min.Sub(delta), Max: b.Max.Add(delta)}
}

// Size returns the extent of the box along each axis.
func (b BBox3) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b BBox3) Center() Vec3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Contains reports whether p lies inside or on the boundary of the box.
func (b BBox3) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether the two boxes overlap, including touching boundaries.
func (b BBox3) Intersects(other BBox3) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return b.Min.X <= other.Max.X && other.Min.X <= b.Max.X &&
		b.Min.Y <= other.Max.Y && other.Min.Y <= b.Max.Y &&
		b.Min.Z <= other.Max.Z && other.Min.Z <= b.Max.Z
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * K_DEG2RAD_MULTIPLIER
}
