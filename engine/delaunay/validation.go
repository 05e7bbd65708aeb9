package delaunay

import (
	m "math"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/exact"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// ValidationDetails is the set of reasons triangulator input was rejected.
// The zero value means the input is valid.
type ValidationDetails uint32

const (
	TooFewPoints ValidationDetails = 1 << iota
	CoincidentPoints
	AllPointsColinear
	NaNPoint
	InfinitePoint
	DegenerateEdge
	PointOnEdge
	IntersectingEdges
	DuplicateEdges
	ExteriorNotCounterclockwise
	HoleNotClockwise
	DegeneratePolygon
	InvalidPointIndex
)

var validationNames = []struct {
	flag ValidationDetails
	name string
}{
	{TooFewPoints, "fewer than three points"},
	{CoincidentPoints, "coincident points"},
	{AllPointsColinear, "all points colinear"},
	{NaNPoint, "NaN point"},
	{InfinitePoint, "infinite point"},
	{DegenerateEdge, "degenerate edge"},
	{PointOnEdge, "point on edge"},
	{IntersectingEdges, "intersecting edges"},
	{DuplicateEdges, "duplicate edges"},
	{ExteriorNotCounterclockwise, "exterior not counterclockwise"},
	{HoleNotClockwise, "hole not clockwise"},
	{DegeneratePolygon, "degenerate polygon"},
	{InvalidPointIndex, "invalid point index"},
}

func (d ValidationDetails) IsValid() bool {
	return d == 0
}

func (d ValidationDetails) Has(flag ValidationDetails) bool {
	return d&flag != 0
}

func (d ValidationDetails) String() string {
	if d.IsValid() {
		return "valid"
	}
	var parts []string
	for _, vn := range validationNames {
		if d.Has(vn.flag) {
			parts = append(parts, vn.name)
		}
	}
	return strings.Join(parts, ", ")
}

// validatePoints checks the point set alone.
func validatePoints(points []math.Vec2) ValidationDetails {
	var d ValidationDetails
	if len(points) < 3 {
		d |= TooFewPoints
	}
	for _, p := range points {
		if m.IsNaN(p.X) || m.IsNaN(p.Y) {
			d |= NaNPoint
		} else if m.IsInf(p.X, 0) || m.IsInf(p.Y, 0) {
			d |= InfinitePoint
		}
	}
	if d.Has(NaNPoint | InfinitePoint) {
		// The predicates are undefined on these; skip the geometric checks.
		return d
	}

	sorted := slices.Clone(points)
	slices.SortFunc(sorted, compareVec2)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			d |= CoincidentPoints
			break
		}
	}

	if len(points) > 0 && allColinear(points) {
		d |= AllPointsColinear
	}
	return d
}

func compareVec2(a, b math.Vec2) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}

func allColinear(points []math.Vec2) bool {
	p0 := points[0]
	i := 1
	for i < len(points) && points[i] == p0 {
		i++
	}
	if i >= len(points) {
		return true
	}
	p1 := points[i]
	for _, p := range points[i+1:] {
		if exact.Orientation2D(p0, p1, p) != 0 {
			return false
		}
	}
	return true
}

// validateEdges checks constraint edges against the point set. Points must
// already have passed the NaN and infinity checks.
func validateEdges(points []math.Vec2, edges []IndexEdge) ValidationDetails {
	var d ValidationDetails
	for _, e := range edges {
		if e[0] < 0 || e[0] >= len(points) || e[1] < 0 || e[1] >= len(points) {
			return d | InvalidPointIndex
		}
	}

	for _, e := range edges {
		if e[0] == e[1] || points[e[0]] == points[e[1]] {
			d |= DegenerateEdge
			break
		}
	}
	if d.Has(DegenerateEdge) {
		return d
	}

pointsOnEdges:
	for _, p := range points {
		for _, e := range edges {
			a, b := points[e[0]], points[e[1]]
			if p != a && p != b && exact.LineSegmentIntersectsPoint2D(a, b, p) {
				d |= PointOnEdge
				break pointsOnEdges
			}
		}
	}

intersections:
	for i, e0 := range edges {
		for _, e1 := range edges[i+1:] {
			if e0[0] == e1[0] || e0[0] == e1[1] || e0[1] == e1[0] || e0[1] == e1[1] {
				continue
			}
			if exact.LineSegmentsIntersect2D(points[e0[0]], points[e0[1]], points[e1[0]], points[e1[1]]) {
				d |= IntersectingEdges
				break intersections
			}
		}
	}

	seen := make(map[IndexEdge]struct{}, len(edges))
	for _, e := range edges {
		key := e.canonical()
		if _, ok := seen[key]; ok {
			d |= DuplicateEdges
			break
		}
		seen[key] = struct{}{}
	}
	return d
}

// ringOrientation returns the orientation of a polygon ring, evaluated at
// its leftmost, then lowest, point. It is positive for counterclockwise
// rings and zero for rings that are degenerate there.
func ringOrientation(points []math.Vec2, ring []int) float64 {
	n := len(ring)
	best := 0
	for i := 1; i < n; i++ {
		if compareVec2(points[ring[i]], points[ring[best]]) < 0 {
			best = i
		}
	}
	p0 := points[ring[(best+n-1)%n]]
	p1 := points[ring[best]]
	p2 := points[ring[(best+1)%n]]
	if p0 == p1 || p1 == p2 || p2 == p0 {
		return 0
	}
	return exact.Orientation2D(p0, p1, p2)
}

// validateRing checks one polygon ring for index range, distinct point
// count and winding. wantCCW selects the required winding.
func validateRing(points []math.Vec2, ring []int, wantCCW bool) ValidationDetails {
	for _, i := range ring {
		if i < 0 || i >= len(points) {
			return InvalidPointIndex
		}
	}
	distinct := make(map[math.Vec2]struct{}, len(ring))
	for _, i := range ring {
		distinct[points[i]] = struct{}{}
	}
	if len(distinct) < 3 {
		return DegeneratePolygon
	}
	o := ringOrientation(points, ring)
	switch {
	case o == 0:
		return DegeneratePolygon
	case wantCCW && o < 0:
		return ExteriorNotCounterclockwise
	case !wantCCW && o > 0:
		return HoleNotClockwise
	}
	return 0
}
