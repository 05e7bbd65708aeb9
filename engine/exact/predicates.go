// Package exact implements robust geometric predicates. Each predicate first
// evaluates its determinant in float64 together with a conservative bound on
// the rounding error, and only when the sign is uncertain falls back to exact
// evaluation over math/big. The results are therefore the signs of the exact
// determinants of the input coordinates.
package exact

import (
	m "math"
	"math/big"
	"sync"

	"github.com/golang/geo/r3"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

var (
	initOnce sync.Once

	// epsilon is half an ulp of 1.0, the largest power of two such that
	// 1.0 + epsilon rounds to 1.0.
	epsilon float64

	ccwErrBoundA float64
	o3dErrBoundA float64
	iccErrBoundA float64
	ispErrBoundA float64
)

// Initialize computes the machine epsilon and the error bounds used by the
// float fast paths. It is safe to call any number of times, from any
// goroutine; every predicate calls it on entry.
func Initialize() {
	initOnce.Do(func() {
		eps := 1.0
		check := 1.0
		for {
			last := check
			eps *= 0.5
			check = 1.0 + eps
			if check == 1.0 || check == last {
				break
			}
		}
		epsilon = eps
		ccwErrBoundA = (3.0 + 16.0*eps) * eps
		o3dErrBoundA = (7.0 + 56.0*eps) * eps
		iccErrBoundA = (10.0 + 96.0*eps) * eps
		ispErrBoundA = (16.0 + 224.0*eps) * eps
	})
}

// Epsilon returns the rounding unit computed by Initialize.
func Epsilon() float64 {
	Initialize()
	return epsilon
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

func newBigFloat() *big.Float { return new(big.Float).SetPrec(big.MaxPrec) }

func precise2(p math.Vec2) r3.PreciseVector {
	return r3.NewPreciseVector(p.X, p.Y, 0)
}

func precise3(p math.Vec3) r3.PreciseVector {
	return r3.NewPreciseVector(p.X, p.Y, p.Z)
}

// Orientation2D returns a positive value if a, b and c are in
// counterclockwise order, a negative value if they are in clockwise order
// and zero if they are colinear. Zero is also returned when any two of the
// points coincide.
func Orientation2D(a, b, c math.Vec2) float64 {
	Initialize()
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight
	detSum := m.Abs(detLeft) + m.Abs(detRight)
	if m.Abs(det) > ccwErrBoundA*detSum {
		return sign(det)
	}
	return exactOrientation2D(a, b, c)
}

func exactOrientation2D(a, b, c math.Vec2) float64 {
	ca := precise2(a).Sub(precise2(c))
	cb := precise2(b).Sub(precise2(c))
	return float64(ca.Cross(cb).Z.Sign())
}

// Orientation3D returns a positive value if d lies below the plane through
// a, b and c, where below is the side from which a, b and c do not appear
// counterclockwise. It returns a negative value if d lies above the plane
// and zero if the four points are coplanar.
func Orientation3D(a, b, c, d math.Vec3) float64 {
	Initialize()
	ad := a.Sub(d)
	bd := b.Sub(d)
	cd := c.Sub(d)

	bdxcdy := bd.X * cd.Y
	cdxbdy := cd.X * bd.Y
	cdxady := cd.X * ad.Y
	adxcdy := ad.X * cd.Y
	adxbdy := ad.X * bd.Y
	bdxady := bd.X * ad.Y

	det := ad.Z*(bdxcdy-cdxbdy) + bd.Z*(cdxady-adxcdy) + cd.Z*(adxbdy-bdxady)
	permanent := (m.Abs(bdxcdy)+m.Abs(cdxbdy))*m.Abs(ad.Z) +
		(m.Abs(cdxady)+m.Abs(adxcdy))*m.Abs(bd.Z) +
		(m.Abs(adxbdy)+m.Abs(bdxady))*m.Abs(cd.Z)
	if m.Abs(det) > o3dErrBoundA*permanent {
		return sign(det)
	}
	return exactOrientation3D(a, b, c, d)
}

func exactOrientation3D(a, b, c, d math.Vec3) float64 {
	pd := precise3(d)
	ad := precise3(a).Sub(pd)
	bd := precise3(b).Sub(pd)
	cd := precise3(c).Sub(pd)
	return float64(ad.Dot(bd.Cross(cd)).Sign())
}

// InCircle returns a positive value if d lies strictly inside the circle
// through a, b and c, a negative value if it lies outside and zero if the
// four points are cocircular. a, b and c must be in counterclockwise order;
// otherwise the sign of the result is reversed.
func InCircle(a, b, c, d math.Vec2) float64 {
	Initialize()
	ad := a.Sub(d)
	bd := b.Sub(d)
	cd := c.Sub(d)

	bdxcdy := bd.X * cd.Y
	cdxbdy := cd.X * bd.Y
	aLift := ad.X*ad.X + ad.Y*ad.Y

	cdxady := cd.X * ad.Y
	adxcdy := ad.X * cd.Y
	bLift := bd.X*bd.X + bd.Y*bd.Y

	adxbdy := ad.X * bd.Y
	bdxady := bd.X * ad.Y
	cLift := cd.X*cd.X + cd.Y*cd.Y

	det := aLift*(bdxcdy-cdxbdy) + bLift*(cdxady-adxcdy) + cLift*(adxbdy-bdxady)
	permanent := (m.Abs(bdxcdy)+m.Abs(cdxbdy))*aLift +
		(m.Abs(cdxady)+m.Abs(adxcdy))*bLift +
		(m.Abs(adxbdy)+m.Abs(bdxady))*cLift
	if m.Abs(det) > iccErrBoundA*permanent {
		return sign(det)
	}
	return exactInCircle(a, b, c, d)
}

// lift maps a difference vector in the XY plane onto the paraboloid
// z = x*x + y*y, exactly.
func lift(v r3.PreciseVector) r3.PreciseVector {
	return r3.PreciseVector{X: v.X, Y: v.Y, Z: v.Dot(v)}
}

func exactInCircle(a, b, c, d math.Vec2) float64 {
	pd := precise2(d)
	ad := lift(precise2(a).Sub(pd))
	bd := lift(precise2(b).Sub(pd))
	cd := lift(precise2(c).Sub(pd))
	return float64(ad.Dot(bd.Cross(cd)).Sign())
}

// InSphere returns a positive value if e lies strictly inside the sphere
// through a, b, c and d, a negative value if it lies outside and zero if the
// five points are cospherical. a, b, c and d must be ordered so that
// Orientation3D(a, b, c, d) is positive; otherwise the sign is reversed.
func InSphere(a, b, c, d, e math.Vec3) float64 {
	Initialize()
	ae := a.Sub(e)
	be := b.Sub(e)
	ce := c.Sub(e)
	de := d.Sub(e)

	aLift := ae.LengthSquared()
	bLift := be.LengthSquared()
	cLift := ce.LengthSquared()
	dLift := de.LengthSquared()

	det := (dLift*triple(ae, be, ce) - cLift*triple(de, ae, be)) +
		(bLift*triple(ce, de, ae) - aLift*triple(be, ce, de))
	permanent := dLift*tripleAbs(ae, be, ce) + cLift*tripleAbs(de, ae, be) +
		bLift*tripleAbs(ce, de, ae) + aLift*tripleAbs(be, ce, de)
	if m.Abs(det) > ispErrBoundA*permanent {
		return sign(det)
	}
	return exactInSphere(a, b, c, d, e)
}

// triple returns u . (v x w).
func triple(u, v, w math.Vec3) float64 {
	return u.Dot(v.Cross(w))
}

// tripleAbs bounds |triple(u, v, w)| by summing the magnitudes of its terms.
func tripleAbs(u, v, w math.Vec3) float64 {
	return m.Abs(u.Z)*(m.Abs(v.X*w.Y)+m.Abs(w.X*v.Y)) +
		m.Abs(v.Z)*(m.Abs(w.X*u.Y)+m.Abs(u.X*w.Y)) +
		m.Abs(w.Z)*(m.Abs(u.X*v.Y)+m.Abs(v.X*u.Y))
}

func exactInSphere(a, b, c, d, e math.Vec3) float64 {
	pe := precise3(e)
	ae := precise3(a).Sub(pe)
	be := precise3(b).Sub(pe)
	ce := precise3(c).Sub(pe)
	de := precise3(d).Sub(pe)

	term := func(l, u, v, w r3.PreciseVector) *big.Float {
		return newBigFloat().Mul(l.Norm2(), u.Dot(v.Cross(w)))
	}

	det := newBigFloat().Sub(term(de, ae, be, ce), term(ce, de, ae, be))
	det.Add(det, term(be, ce, de, ae))
	det.Sub(det, term(ae, be, ce, de))
	return float64(det.Sign())
}

// LineSegmentIntersectsPoint2D returns true if c lies exactly on the closed
// segment from a to b.
func LineSegmentIntersectsPoint2D(a, b, c math.Vec2) bool {
	if Orientation2D(a, b, c) != 0 {
		return false
	}
	return ((a.X <= c.X && c.X <= b.X) || (b.X <= c.X && c.X <= a.X)) &&
		((a.Y <= c.Y && c.Y <= b.Y) || (b.Y <= c.Y && c.Y <= a.Y))
}

// LineIntersectsPoint2D returns true if c lies exactly on the line through a
// and b.
func LineIntersectsPoint2D(a, b, c math.Vec2) bool {
	return Orientation2D(a, b, c) == 0
}

// LineSegmentsIntersect2D returns true if segment a1-a2 intersects segment
// b1-b2. Segments that only share an endpoint, or where an endpoint of one
// touches the other, intersect.
func LineSegmentsIntersect2D(a1, a2, b1, b2 math.Vec2) bool {
	if LineSegmentIntersectsPoint2D(a1, a2, b1) ||
		LineSegmentIntersectsPoint2D(a1, a2, b2) ||
		LineSegmentIntersectsPoint2D(b1, b2, a1) ||
		LineSegmentIntersectsPoint2D(b1, b2, a2) {
		return true
	}
	o1 := Orientation2D(b1, b2, a1)
	o2 := Orientation2D(b1, b2, a2)
	o3 := Orientation2D(a1, a2, b1)
	o4 := Orientation2D(a1, a2, b2)
	return ((o1 < 0 && o2 > 0) || (o1 > 0 && o2 < 0)) &&
		((o3 < 0 && o4 > 0) || (o3 > 0 && o4 < 0))
}

// LineSegmentsCross2D returns true if the two segments intersect at a single
// point interior to both of them.
func LineSegmentsCross2D(a1, a2, b1, b2 math.Vec2) bool {
	o1 := Orientation2D(b1, b2, a1)
	o2 := Orientation2D(b1, b2, a2)
	o3 := Orientation2D(a1, a2, b1)
	o4 := Orientation2D(a1, a2, b2)
	return o1*o2 < 0 && o3*o4 < 0
}

// LineSegmentsAreColinear2D returns true if segment a1-a2 is colinear with
// segment b1-b2. This is also true when either segment is degenerate and
// coincident with the other one.
func LineSegmentsAreColinear2D(a1, a2, b1, b2 math.Vec2) bool {
	return LineIntersectsPoint2D(a1, a2, b1) &&
		LineIntersectsPoint2D(a1, a2, b2) &&
		LineIntersectsPoint2D(b1, b2, a1) &&
		LineIntersectsPoint2D(b1, b2, a2)
}
