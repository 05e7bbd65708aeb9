package delaunay

import (
	m "math"
	"testing"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

func squarePoints() []math.Vec2 {
	return []math.Vec2{v2(0, 0), v2(1, 0), v2(1, 1), v2(0, 1)}
}

func TestPointValidation(t *testing.T) {
	tests := []struct {
		name   string
		points []math.Vec2
		edges  []IndexEdge
		want   ValidationDetails
	}{
		{"valid square", squarePoints(), nil, 0},
		{"valid with constraint", squarePoints(), []IndexEdge{{0, 2}}, 0},
		{"too few points", []math.Vec2{v2(0, 0), v2(1, 0)}, nil, TooFewPoints},
		{"coincident points", []math.Vec2{v2(0, 0), v2(1, 0), v2(0, 1), v2(0, 0)}, nil, CoincidentPoints},
		{"colinear points", []math.Vec2{v2(0, 0), v2(1, 0), v2(2, 0)}, nil, AllPointsColinear},
		{"NaN point", []math.Vec2{v2(0, 0), v2(1, 0), v2(m.NaN(), 0)}, nil, NaNPoint},
		{"infinite point", []math.Vec2{v2(0, 0), v2(1, 0), v2(0, m.Inf(1))}, nil, InfinitePoint},
		{"degenerate edge", squarePoints(), []IndexEdge{{1, 1}}, DegenerateEdge},
		{"invalid index", squarePoints(), []IndexEdge{{0, 7}}, InvalidPointIndex},
		{"point on edge", append(squarePoints(), v2(0.5, 0)), []IndexEdge{{0, 1}}, PointOnEdge},
		{"intersecting edges", squarePoints(), []IndexEdge{{0, 2}, {1, 3}}, IntersectingEdges},
		{"duplicate edges", squarePoints(), []IndexEdge{{0, 1}, {1, 0}}, DuplicateEdges},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, details := NewPointTriangulator(tt.points, tt.edges, core.DefaultConfig().Delaunay).Validate()
			if ok != (tt.want == 0) {
				t.Errorf("ok = %v, details = %s", ok, details)
			}
			if tt.want == 0 && !details.IsValid() {
				t.Errorf("details = %s, want valid", details)
			}
			if tt.want != 0 && !details.Has(tt.want) {
				t.Errorf("details = %s, want %s", details, tt.want)
			}
		})
	}
}

func TestPolygonValidation(t *testing.T) {
	points := []math.Vec2{
		v2(0, 0), v2(3, 0), v2(3, 3), v2(0, 3),
		v2(1, 1), v2(2, 1), v2(2, 2), v2(1, 2),
	}
	tests := []struct {
		name     string
		polygons []Polygon
		want     ValidationDetails
	}{
		{"no polygons", nil, 0},
		{"square", []Polygon{{Outline: []int{0, 1, 2, 3}}}, 0},
		{"square with hole", []Polygon{{Outline: []int{0, 1, 2, 3}, Holes: [][]int{{4, 7, 6, 5}}}}, 0},
		{"clockwise outline", []Polygon{{Outline: []int{3, 2, 1, 0}}}, ExteriorNotCounterclockwise},
		{"counterclockwise hole", []Polygon{{Outline: []int{0, 1, 2, 3}, Holes: [][]int{{4, 5, 6, 7}}}}, HoleNotClockwise},
		{"two points", []Polygon{{Outline: []int{0, 1}}}, DegeneratePolygon},
		{"repeated point", []Polygon{{Outline: []int{0, 1, 0}}}, DegeneratePolygon},
		{"invalid index", []Polygon{{Outline: []int{0, 1, 9}}}, InvalidPointIndex},
		{"polygons sharing an edge", []Polygon{{Outline: []int{0, 1, 2, 3}}, {Outline: []int{0, 5, 3}}}, DuplicateEdges},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, details := NewPolygonTriangulator(points, tt.polygons, nil, core.DefaultConfig().Delaunay).Validate()
			if ok != (tt.want == 0) {
				t.Errorf("ok = %v, details = %s", ok, details)
			}
			if tt.want != 0 && !details.Has(tt.want) {
				t.Errorf("details = %s, want %s", details, tt.want)
			}
		})
	}
}

func TestValidationDetailsString(t *testing.T) {
	if got := ValidationDetails(0).String(); got != "valid" {
		t.Errorf("String() = %q, want valid", got)
	}
	d := CoincidentPoints | HoleNotClockwise
	if got, want := d.String(), "coincident points, hole not clockwise"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
