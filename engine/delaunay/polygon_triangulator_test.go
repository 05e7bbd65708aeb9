package delaunay

import (
	"fmt"
	m "math"
	"testing"

	"github.com/paulmach/orb/geojson"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

func triangulatePolygons(t *testing.T, points []math.Vec2, polygons []Polygon, extra []IndexEdge) *PolygonTriangulator {
	t.Helper()
	tri := NewPolygonTriangulator(points, polygons, extra, core.DefaultConfig().Delaunay)
	if ok, details := tri.Validate(); !ok {
		t.Fatalf("Validate: %s", details)
	}
	if err := tri.Triangulate(); err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	return tri
}

func regularPolygon(n int, radius float64) []math.Vec2 {
	points := make([]math.Vec2, n)
	for i := range points {
		a := 2 * m.Pi * float64(i) / float64(n)
		points[i] = v2(radius*m.Cos(a), radius*m.Sin(a))
	}
	return points
}

func star(n int) []math.Vec2 {
	points := make([]math.Vec2, 2*n)
	for i := range points {
		r := 2.0
		if i%2 == 1 {
			r = 1
		}
		a := m.Pi * float64(i) / float64(n)
		points[i] = v2(r*m.Cos(a), r*m.Sin(a))
	}
	return points
}

func ring(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}

func squareWithHole() ([]math.Vec2, []Polygon) {
	points := []math.Vec2{
		v2(0, 0), v2(3, 0), v2(3, 3), v2(0, 3),
		v2(1, 1), v2(2, 1), v2(2, 2), v2(1, 2),
	}
	return points, []Polygon{{Outline: []int{0, 1, 2, 3}, Holes: [][]int{{4, 7, 6, 5}}}}
}

func TestPolygonTriangulatorCounts(t *testing.T) {
	holePoints, holePolygons := squareWithHole()
	tests := []struct {
		name          string
		points        []math.Vec2
		polygons      []Polygon
		triangles     int
		edges         int
		boundaryEdges int
	}{
		{"square", squarePoints(), []Polygon{{Outline: ring(4)}}, 2, 5, 4},
		{"pentagon", regularPolygon(5, 1), []Polygon{{Outline: ring(5)}}, 3, 7, 5},
		{"star", star(5), []Polygon{{Outline: ring(10)}}, 8, 17, 10},
		{"square with hole", holePoints, holePolygons, 8, 16, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri := triangulatePolygons(t, tt.points, tt.polygons, nil)
			if len(tri.Triangles()) != tt.triangles || len(tri.Edges()) != tt.edges {
				t.Fatalf("got %d triangles and %d edges, want %d and %d",
					len(tri.Triangles()), len(tri.Edges()), tt.triangles, tt.edges)
			}
			for i := 0; i < tt.boundaryEdges; i++ {
				if want := tri.constraints[i]; tri.Edges()[i] != want {
					t.Errorf("edge %d = %v, want boundary edge %v", i, tri.Edges()[i], want)
				}
			}
			for i, tr := range tri.Triangles() {
				for k := 0; k < 3; k++ {
					e := tri.Edges()[tr.Edges[k]].canonical()
					if want := (IndexEdge{tr.Points[k], tr.Points[(k+1)%3]}).canonical(); e != want {
						t.Fatalf("triangle %d edge %d = %v, want %v", i, k, e, want)
					}
				}
			}
		})
	}
}

func TestPolygonTriangulatorExcludesHole(t *testing.T) {
	points, polygons := squareWithHole()
	tri := triangulatePolygons(t, points, polygons, nil)
	hole := map[int]bool{4: true, 5: true, 6: true, 7: true}
	for i, tr := range tri.Triangles() {
		if hole[tr.Points[0]] && hole[tr.Points[1]] && hole[tr.Points[2]] {
			t.Errorf("triangle %d %v lies inside the hole", i, tr.Points)
		}
	}
}

func TestPolygonTriangulatorExtraEdges(t *testing.T) {
	points := append(regularPolygon(6, 2), v2(-0.5, 0), v2(0.5, 0))
	extra := []IndexEdge{{6, 7}}
	tri := triangulatePolygons(t, points, []Polygon{{Outline: ring(6)}}, extra)

	found := false
	for _, e := range tri.Edges() {
		if e.canonical() == (IndexEdge{6, 7}) {
			found = true
		}
	}
	if !found {
		t.Error("extra edge missing from the output")
	}
	// 8 points with a hexagonal hull.
	if got := len(tri.Triangles()); got != 2*8-6-2 {
		t.Errorf("got %d triangles, want %d", got, 2*8-6-2)
	}
}

func TestPolygonTriangulatorEmpty(t *testing.T) {
	tri := NewPolygonTriangulator(nil, nil, nil, core.DefaultConfig().Delaunay)
	if ok, details := tri.Validate(); !ok {
		t.Fatalf("empty input should validate, got %s", details)
	}
	if err := tri.Triangulate(); err != nil {
		t.Fatal(err)
	}
	if len(tri.Triangles()) != 0 || len(tri.Edges()) != 0 {
		t.Errorf("empty input produced %d triangles and %d edges", len(tri.Triangles()), len(tri.Edges()))
	}
}

func TestPolygonTriangulatorRequiresValidate(t *testing.T) {
	errs := recordFatal(t)
	points, polygons := squareWithHole()
	tri := NewPolygonTriangulator(points, polygons, nil, core.DefaultConfig().Delaunay)
	if err := tri.Triangulate(); err == nil {
		t.Error("Triangulate without Validate succeeded")
	}
	if len(*errs) != 1 {
		t.Errorf("fatal handler called %d times, want 1", len(*errs))
	}
}

func TestTriangulationGeoJSON(t *testing.T) {
	points, polygons := squareWithHole()
	tri := triangulatePolygons(t, points, polygons, nil)
	data, err := TriangulationGeoJSON(tri.Points(), tri.Edges(), tri.Triangles(), 8)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatalf("output is not GeoJSON: %v", err)
	}
	if want := len(points) + 16 + 8; len(fc.Features) != want {
		t.Errorf("got %d features, want %d", len(fc.Features), want)
	}
	kinds := map[string]int{}
	for _, f := range fc.Features {
		kinds[f.Properties.MustString("kind")]++
	}
	if kinds["point"] != 8 || kinds["edge"] != 16 || kinds["triangle"] != 8 {
		t.Errorf("feature kinds = %v", kinds)
	}

	if _, err := TriangulationGeoJSON(points, []IndexEdge{{0, 42}}, nil, 0); err == nil {
		t.Error("edge with a missing point should fail")
	}
}

func ExamplePolygonTriangulator() {
	points := []math.Vec2{
		math.NewVec2(0, 0), math.NewVec2(3, 0), math.NewVec2(3, 3), math.NewVec2(0, 3),
		math.NewVec2(1, 1), math.NewVec2(2, 1), math.NewVec2(2, 2), math.NewVec2(1, 2),
	}
	polygons := []Polygon{{Outline: []int{0, 1, 2, 3}, Holes: [][]int{{4, 7, 6, 5}}}}

	tri := NewPolygonTriangulator(points, polygons, nil, core.DefaultConfig().Delaunay)
	if ok, details := tri.Validate(); !ok {
		fmt.Println("invalid:", details)
		return
	}
	if err := tri.Triangulate(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d triangles, %d edges\n", len(tri.Triangles()), len(tri.Edges()))
	// Output: 8 triangles, 16 edges
}

func BenchmarkPolygonTriangulator(b *testing.B) {
	points := regularPolygon(500, 10)
	polygons := []Polygon{{Outline: ring(500)}}
	config := core.DefaultConfig().Delaunay
	for i := 0; i < b.N; i++ {
		tri := NewPolygonTriangulator(points, polygons, nil, config)
		tri.Validate()
		if err := tri.Triangulate(); err != nil {
			b.Fatal(err)
		}
	}
}
