package delaunay

import (
	"testing"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
)

func TestMeshIsSingleConnectedRegion(t *testing.T) {
	if !MeshIsSingleConnectedRegion(NewMesh()) {
		t.Error("empty mesh should be connected")
	}

	lone := NewMesh()
	lone.CreateVertex(v2(0, 0))
	if !MeshIsSingleConnectedRegion(lone) {
		t.Error("single vertex should be connected")
	}

	square, _, _ := unitSquareMesh()
	if !MeshIsSingleConnectedRegion(square) {
		t.Error("square should be connected")
	}

	// Two triangles that only share a vertex are not joined through an edge.
	bowtie := NewMesh()
	c := bowtie.CreateVertex(v2(0, 0))
	CreateFaceAndEdges(bowtie, c, bowtie.CreateVertex(v2(1, -1)), bowtie.CreateVertex(v2(1, 1)))
	CreateFaceAndEdges(bowtie, c, bowtie.CreateVertex(v2(-1, 1)), bowtie.CreateVertex(v2(-1, -1)))
	if MeshIsSingleConnectedRegion(bowtie) {
		t.Error("triangles sharing only a vertex should not be connected")
	}

	square.CreateVertex(v2(5, 5))
	if MeshIsSingleConnectedRegion(square) {
		t.Error("isolated vertex should disconnect the mesh")
	}
}

func TestMeshHasConvexPerimeter(t *testing.T) {
	square, _, _ := unitSquareMesh()
	if !MeshHasConvexPerimeter(square) {
		t.Error("square perimeter should be convex")
	}

	// An L shape has one reflex perimeter corner at (1,1).
	m := NewMesh()
	p := []VertexHandle{
		m.CreateVertex(v2(0, 0)), m.CreateVertex(v2(2, 0)), m.CreateVertex(v2(2, 1)),
		m.CreateVertex(v2(1, 1)), m.CreateVertex(v2(1, 2)), m.CreateVertex(v2(0, 2)),
	}
	CreateFaceAndEdges(m, p[0], p[1], p[2])
	CreateFaceAndEdges(m, p[0], p[2], p[3])
	CreateFaceAndEdges(m, p[0], p[3], p[4])
	CreateFaceAndEdges(m, p[0], p[4], p[5])
	requireConsistent(t, m)
	if MeshHasConvexPerimeter(m) {
		t.Error("L shape perimeter should not be convex")
	}
}

func TestConsistencyDetectsClockwiseFace(t *testing.T) {
	m := NewMesh()
	a := m.CreateVertex(v2(0, 0))
	b := m.CreateVertex(v2(0, 1))
	c := m.CreateVertex(v2(1, 0))
	CreateFaceAndEdges(m, a, b, c)
	status := TestMeshConsistency(m)
	if status.IsConsistent() {
		t.Fatal("clockwise face should be inconsistent")
	}
	if got := status.Count(core.FacesWithClockwiseVertices); got != 1 {
		t.Errorf("clockwise count = %d, want 1", got)
	}
}
