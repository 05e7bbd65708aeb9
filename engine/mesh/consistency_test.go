package mesh

import (
	m "math"
	"testing"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
)

type consistencyFixture struct {
	vertices  []VertexHandle
	quad, tri FaceHandle
}

func (fx consistencyFixture) edge(t *testing.T, msh *Mesh, a, b int) EdgeHandle {
	t.Helper()
	e, ok := FindEdgeConnectingVertices(msh, fx.vertices[a], fx.vertices[b])
	if !ok {
		t.Fatalf("no edge between %d and %d", a, b)
	}
	return e
}

// quadAndTriangle returns the unit square 0-1-2-3 with the triangle 1-4-2
// attached to its right side.
func quadAndTriangle() (*Mesh, consistencyFixture) {
	msh := NewMesh()
	var fx consistencyFixture
	for _, p := range [...][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {2, 0.5}} {
		fx.vertices = append(fx.vertices, addVertex(msh, v3(p[0], p[1], 0)))
	}
	v := fx.vertices
	fx.quad, _ = CreateFaceAndEdgesFromVertices(msh, []VertexHandle{v[0], v[1], v[2], v[3]})
	fx.tri, _ = CreateFaceAndEdgesFromVertices(msh, []VertexHandle{v[1], v[4], v[2]})
	return msh, fx
}

func TestMeshConsistencyDetectsBrokenInvariants(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(t *testing.T, msh *Mesh, fx consistencyFixture)
		want    core.Inconsistency
	}{
		{
			"lone vertex",
			func(t *testing.T, msh *Mesh, fx consistencyFixture) {
				addVertex(msh, v3(5, 5, 5))
			},
			core.VerticesWithZeroEdges,
		},
		{
			"missing vertex to edge pointer",
			func(t *testing.T, msh *Mesh, fx consistencyFixture) {
				msh.Vertex(fx.vertices[0]).RemoveAdjacentEdge(fx.edge(t, msh, 0, 1))
			},
			core.EdgeVerticesWithoutBackpointer,
		},
		{
			"missing edge to face pointer",
			func(t *testing.T, msh *Mesh, fx consistencyFixture) {
				msh.Edge(fx.edge(t, msh, 0, 1)).RemoveAdjacentFace(fx.quad)
			},
			core.FaceEdgesWithoutBackpointer,
		},
		{
			"duplicate face",
			func(t *testing.T, msh *Mesh, fx consistencyFixture) {
				v := fx.vertices
				CreateFaceAndEdgesFromVertices(msh, []VertexHandle{v[1], v[4], v[2]})
			},
			core.DuplicateFaces,
		},
		{
			"edges out of ring order",
			func(t *testing.T, msh *Mesh, fx consistencyFixture) {
				face := msh.Face(fx.quad)
				face.edges[0], face.edges[1] = face.edges[1], face.edges[0]
			},
			core.FacesWithMismatchedVertexEdgeOrder,
		},
		{
			"flipped winding",
			func(t *testing.T, msh *Mesh, fx consistencyFixture) {
				v := fx.vertices
				face := msh.Face(fx.tri)
				face.vertices = []VertexHandle{v[1], v[2], v[4]}
				face.edges = []EdgeHandle{fx.edge(t, msh, 1, 2), fx.edge(t, msh, 2, 4), fx.edge(t, msh, 4, 1)}
			},
			core.EdgesWithFacesOnSameSide,
		},
		{
			"NaN position",
			func(t *testing.T, msh *Mesh, fx consistencyFixture) {
				msh.Vertex(fx.vertices[4]).SetPosition(v3(m.NaN(), 0, 0))
			},
			core.NaNVertices,
		},
		{
			"infinite position",
			func(t *testing.T, msh *Mesh, fx consistencyFixture) {
				msh.Vertex(fx.vertices[4]).SetPosition(v3(0, m.Inf(-1), 0))
			},
			core.InfinityVertices,
		},
		{
			"self loop edge",
			func(t *testing.T, msh *Mesh, fx consistencyFixture) {
				v0 := fx.vertices[0]
				e := msh.CreateEdge()
				msh.Edge(e).AddAdjacentVertex(v0)
				msh.Edge(e).AddAdjacentVertex(v0)
				msh.Vertex(v0).AddAdjacentEdge(e)
			},
			core.EdgesWithDuplicateVertices,
		},
		{
			"zero area triangle",
			func(t *testing.T, msh *Mesh, fx consistencyFixture) {
				msh.Vertex(fx.vertices[4]).SetPosition(v3(1, 0.5, 0))
			},
			core.FacesWithZeroArea,
		},
		{
			"self crossing quad",
			func(t *testing.T, msh *Mesh, fx consistencyFixture) {
				msh.Vertex(fx.vertices[3]).SetPosition(v3(1.5, 1, 0))
			},
			core.FacesWithDegenerateProjection,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msh, fx := quadAndTriangle()
			requireConsistent(t, msh)

			tt.corrupt(t, msh, fx)
			status := TestMeshConsistency(msh)
			if status.Count(tt.want) == 0 {
				t.Errorf("%s not reported, status: %s", tt.want, status)
			}
			if IsConsistent(msh) {
				t.Error("IsConsistent = true")
			}
		})
	}
}

func TestProjectedFaceIsDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
		want   bool
	}{
		{"square", []float64{0, 0, 1, 0, 1, 1, 0, 1}, false},
		{"concave", []float64{0, 0, 4, 0, 4, 4, 2, 1, 0, 4}, false},
		{"colinear corner", []float64{0, 0, 1, 0, 2, 0, 2, 2}, false},
		{"bowtie", []float64{0, 0, 4, 0, 0, 2, 1, 3}, true},
		{"fold back", []float64{0, 0, 2, 0, 1, 0, 1, 2}, true},
		{"repeated point", []float64{0, 0, 2, 0, 2, 2, 1, 1, 2, 2, 0, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msh := NewMesh()
			var ring []VertexHandle
			for i := 0; i < len(tt.points); i += 2 {
				ring = append(ring, addVertex(msh, v3(tt.points[i], tt.points[i+1], 0)))
			}
			f := msh.CreateFace()
			for _, v := range ring {
				msh.Face(f).AddAdjacentVertex(v)
			}
			if got := projectedFaceIsDegenerate(msh, f); got != tt.want {
				t.Errorf("projectedFaceIsDegenerate = %v, want %v", got, tt.want)
			}
		})
	}
}
