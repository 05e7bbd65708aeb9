package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float64
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float64
}

/** @brief a 3x3 matrix, stored row by row. */
type Mat3 struct {
	/** @brief The matrix elements */
	Data [9]float64
}

/** @brief a 4x4 matrix, typically used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float64
}

/**
 * @brief An axis-aligned bounding box in 2D. A box whose Min exceeds its Max
 * on any axis is empty.
 */
type BBox2 struct {
	/** @brief The minimum corner of the box. */
	Min Vec2
	/** @brief The maximum corner of the box. */
	Max Vec2
}

/**
 * @brief An axis-aligned bounding box in 3D. A box whose Min exceeds its Max
 * on any axis is empty.
 */
type BBox3 struct {
	/** @brief The minimum corner of the box. */
	Min Vec3
	/** @brief The maximum corner of the box. */
	Max Vec3
}
