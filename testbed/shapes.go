package testbed

import (
	"fmt"
	m "math"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/delaunay"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/mesh"
)

// Shape is a planar polygon set ready to be handed to a PolygonTriangulator.
type Shape struct {
	Name       string
	Points     []math.Vec2
	Polygons   []delaunay.Polygon
	ExtraEdges []delaunay.IndexEdge
}

// Triangles is the triangle count of a valid triangulation of the shape:
// two less than the point count, plus two for every hole.
func (s Shape) Triangles() int {
	n := 0
	for _, p := range s.Polygons {
		count := len(p.Outline) - 2
		for _, h := range p.Holes {
			count += len(h) + 2
		}
		n += count
	}
	return n
}

func UnitSquare() Shape {
	return Shape{
		Name:     "unit square",
		Points:   []math.Vec2{math.NewVec2(0, 0), math.NewVec2(1, 0), math.NewVec2(1, 1), math.NewVec2(0, 1)},
		Polygons: []delaunay.Polygon{{Outline: []int{0, 1, 2, 3}}},
	}
}

// SquareWithHole is a 4x4 square with a 2x2 square hole in the middle and
// one constrained diagonal across the lower left corner.
func SquareWithHole() Shape {
	return Shape{
		Name: "square with hole",
		Points: []math.Vec2{
			math.NewVec2(0, 0), math.NewVec2(4, 0), math.NewVec2(4, 4), math.NewVec2(0, 4),
			math.NewVec2(1, 1), math.NewVec2(3, 1), math.NewVec2(3, 3), math.NewVec2(1, 3),
		},
		Polygons: []delaunay.Polygon{{
			Outline: []int{0, 1, 2, 3},
			Holes:   [][]int{{4, 7, 6, 5}},
		}},
		ExtraEdges: []delaunay.IndexEdge{{0, 4}},
	}
}

// RegularPolygon returns a counterclockwise regular polygon with n sides
// and circumradius r centered on the origin.
func RegularPolygon(n int, r float64) Shape {
	s := Shape{Name: fmt.Sprintf("regular %d-gon", n)}
	outline := make([]int, n)
	for i := 0; i < n; i++ {
		a := math.DegToRad(360 * float64(i) / float64(n))
		s.Points = append(s.Points, math.NewVec2(r*m.Cos(a), r*m.Sin(a)))
		outline[i] = i
	}
	s.Polygons = []delaunay.Polygon{{Outline: outline}}
	return s
}

// Star returns a concave star with n spikes alternating between the outer
// and inner radius.
func Star(n int, inner, outer float64) Shape {
	s := Shape{Name: fmt.Sprintf("%d-pointed star", n)}
	outline := make([]int, 2*n)
	for i := 0; i < 2*n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.DegToRad(180 * float64(i) / float64(n))
		s.Points = append(s.Points, math.NewVec2(r*m.Cos(a), r*m.Sin(a)))
		outline[i] = i
	}
	s.Polygons = []delaunay.Polygon{{Outline: outline}}
	return s
}

func Shapes() []Shape {
	return []Shape{
		UnitSquare(),
		SquareWithHole(),
		RegularPolygon(7, 1),
		Star(5, 0.4, 1),
	}
}

// cubeFaces lists the corners of each cube face counterclockwise as seen from
// outside. Corner i sits at (i&1, i>>1&1, i>>2&1).
var cubeFaces = [6][4]int{
	{0, 2, 3, 1},
	{4, 5, 7, 6},
	{0, 1, 5, 4},
	{2, 6, 7, 3},
	{0, 4, 6, 2},
	{1, 3, 7, 5},
}

// CubeMesh returns a closed cube of the given edge length with one quad per
// side. Each quad carries its side index as material.
func CubeMesh(size float64) *mesh.Mesh {
	msh := mesh.NewMesh()
	var corners [8]mesh.VertexHandle
	for i := range corners {
		corners[i] = msh.CreateVertex()
		msh.Vertex(corners[i]).SetPosition(math.NewVec3(
			size*float64(i&1), size*float64(i>>1&1), size*float64(i>>2&1)))
	}
	material := mesh.MaterialIndexKey(msh)
	for side, quad := range cubeFaces {
		ring := make([]mesh.VertexHandle, 4)
		for k, c := range quad {
			ring[k] = corners[c]
		}
		f, _ := mesh.CreateFaceAndEdgesFromVertices(msh, ring)
		msh.Face(f).SetInt(material, int32(side))
	}
	return msh
}
