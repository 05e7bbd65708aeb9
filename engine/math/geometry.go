package math

import m "math"

// PrimaryAxesMostOrthogonalToVector returns the two coordinate axes that span
// the plane most nearly perpendicular to v. The axes are ordered so that a
// polygon wound counterclockwise around v stays counterclockwise once its
// points are projected onto (axis0, axis1).
func PrimaryAxesMostOrthogonalToVector(v Vec3) (axis0, axis1 int) {
	ax, ay, az := m.Abs(v.X), m.Abs(v.Y), m.Abs(v.Z)
	switch {
	case ax >= ay && ax >= az:
		if v.X > 0 {
			return 1, 2
		}
		return 2, 1
	case ay >= az:
		if v.Y > 0 {
			return 2, 0
		}
		return 0, 2
	}
	if v.Z > 0 {
		return 0, 1
	}
	return 1, 0
}

// PolygonNormal returns the unnormalized Newell normal of a polygon. Its length
// is twice the area of the polygon.
func PolygonNormal(points []Vec3) Vec3 {
	var n Vec3
	for i := range points {
		p := points[i]
		q := points[(i+1)%len(points)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	return n
}

// PolygonArea returns the area of a planar polygon in 3D.
func PolygonArea(points []Vec3) float64 {
	return PolygonNormal(points).Length() * 0.5
}

// SignedArea2D returns the signed area of a 2D polygon, positive when the
// points wind counterclockwise.
func SignedArea2D(points []Vec2) float64 {
	area := 0.0
	for i := range points {
		p := points[i]
		q := points[(i+1)%len(points)]
		area += p.Cross(q)
	}
	return area * 0.5
}

// ClosestPointOnSegment returns the parameter t in [0, 1] of the point on the
// segment a-b nearest to p.
func ClosestPointOnSegment(a, b, p Vec3) float64 {
	d := b.Sub(a)
	l := d.LengthSquared()
	if l == 0 {
		return 0
	}
	return Clamp(p.Sub(a).Dot(d)/l, 0.0, 1.0)
}

// RelativeEpsilon returns the larger of absolute and relative scaled by the
// magnitude of the largest coordinate among points.
func RelativeEpsilon(absolute, relative float64, points ...Vec3) float64 {
	maxAbs := 0.0
	for _, p := range points {
		maxAbs = m.Max(maxAbs, p.MaxAbs())
	}
	return m.Max(absolute, maxAbs*relative)
}
