package aabb

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

type cube struct {
	id     int
	center math.Vec3
	half   float64
}

func (c cube) BoundingBox() math.BBox3 {
	return math.NewBBox3FromPoints(c.center).Expand(c.half)
}

func grid(n int) []cube {
	var cubes []cube
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				cubes = append(cubes, cube{
					id:     len(cubes),
					center: math.NewVec3(float64(x), float64(y), float64(z)),
					half:   0.25,
				})
			}
		}
	}
	return cubes
}

func collect(apply func(func(cube) bool) bool) []int {
	var ids []int
	apply(func(c cube) bool {
		ids = append(ids, c.id)
		return false
	})
	slices.Sort(ids)
	return ids
}

func TestBoundingBoxIntersectionMatchesBruteForce(t *testing.T) {
	cubes := grid(6)
	tree := New(cubes)
	if tree.Len() != len(cubes) {
		t.Fatalf("Len() = %d, want %d", tree.Len(), len(cubes))
	}

	queries := []math.BBox3{
		{Min: math.NewVec3(0.5, 0.5, 0.5), Max: math.NewVec3(2.5, 1.5, 3.5)},
		{Min: math.NewVec3(-1, -1, -1), Max: math.NewVec3(0, 0, 0)},
		{Min: math.NewVec3(1.3, 1.3, 1.3), Max: math.NewVec3(1.7, 1.7, 1.7)},
		{Min: math.NewVec3(-10, -10, -10), Max: math.NewVec3(10, 10, 10)},
	}
	for _, q := range queries {
		var want []int
		for _, c := range cubes {
			if c.BoundingBox().Intersects(q) {
				want = append(want, c.id)
			}
		}
		got := collect(func(fn func(cube) bool) bool { return tree.ApplyToBoundingBoxIntersection(q, fn) })
		if !slices.Equal(got, want) {
			t.Errorf("query %+v visited %v, want %v", q, got, want)
		}
	}
}

func TestListenerStopsTraversal(t *testing.T) {
	tree := New(grid(4))
	visits := 0
	stopped := tree.ApplyToBoundingBoxIntersection(tree.BoundingBox(), func(cube) bool {
		visits++
		return visits == 3
	})
	if !stopped || visits != 3 {
		t.Errorf("stopped = %v after %d visits, want true after 3", stopped, visits)
	}
}

func TestTetrahedronIntersection(t *testing.T) {
	tet := [4]math.Vec3{
		math.NewVec3(0, 0, 0),
		math.NewVec3(1, 0, 0),
		math.NewVec3(0, 1, 0),
		math.NewVec3(0, 0, 1),
	}
	tree := New([]cube{
		{id: 0, center: math.NewVec3(0.1, 0.1, 0.1), half: 0.05},
		// inside the bounding box of the tetrahedron, beyond its slanted face
		{id: 1, center: math.NewVec3(0.95, 0.95, 0.95), half: 0.05},
		{id: 2, center: math.NewVec3(3, 0, 0), half: 0.5},
		// straddles the slanted face
		{id: 3, center: math.NewVec3(0.4, 0.4, 0.4), half: 0.1},
	})
	got := collect(func(fn func(cube) bool) bool { return tree.ApplyToTetrahedronIntersection(tet, fn) })
	if want := []int{0, 3}; !slices.Equal(got, want) {
		t.Errorf("visited %v, want %v", got, want)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := New[cube](nil)
	if tree.ApplyToBoundingBoxIntersection(math.NewBBox3FromPoints(math.Vec3{}), func(cube) bool { return true }) {
		t.Error("empty tree reported a hit")
	}
	if !tree.BoundingBox().IsEmpty() {
		t.Error("empty tree has a non-empty bounding box")
	}
}

func BenchmarkBoundingBoxQuery(b *testing.B) {
	tree := New(grid(20))
	q := math.BBox3{Min: math.NewVec3(4.5, 4.5, 4.5), Max: math.NewVec3(6.5, 6.5, 6.5)}
	for i := 0; i < b.N; i++ {
		tree.ApplyToBoundingBoxIntersection(q, func(cube) bool { return false })
	}
}
