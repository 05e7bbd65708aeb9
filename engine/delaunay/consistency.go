package delaunay

import (
	m "math"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/exact"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// TestMeshConsistency checks the adjacency and geometry invariants of a
// triangulator mesh. Beyond the checks made for general meshes, every face
// must be a counterclockwise triangle and the two faces of an interior edge
// must lie on opposite sides of it.
func TestMeshConsistency(mesh *Mesh) *core.ConsistencyStatus {
	status := core.NewConsistencyStatus()

	positions := make(map[math.Vec2]struct{}, mesh.VertexCount())
	for _, v := range mesh.Vertices() {
		vertex := mesh.Vertex(v)
		p := vertex.Position
		if m.IsNaN(p.X) || m.IsNaN(p.Y) {
			status.Increment(core.NaNVertices)
		} else if m.IsInf(p.X, 0) || m.IsInf(p.Y, 0) {
			status.Increment(core.InfinityVertices)
		}
		if _, ok := positions[p]; ok {
			status.Increment(core.DuplicateVertices)
		}
		positions[p] = struct{}{}

		switch distinctCount(vertex.edges) {
		case 0:
			status.Increment(core.VerticesWithZeroEdges)
		case 1:
			status.Increment(core.VerticesWithOneEdge)
		}
		if hasDuplicates(vertex.edges) {
			status.Increment(core.VerticesWithDuplicateEdges)
		}
		if len(vertex.faces) == 0 {
			status.Increment(core.VerticesWithoutFaces)
		}
		if hasDuplicates(vertex.faces) {
			status.Increment(core.VerticesWithDuplicateFaces)
		}
		for _, e := range vertex.edges {
			if edge := mesh.Edge(e); edge == nil || !edge.HasAdjacentVertex(v) {
				status.Increment(core.VertexEdgesWithoutBackpointer)
			}
		}
		for _, f := range vertex.faces {
			if face := mesh.Face(f); face == nil || !face.HasAdjacentVertex(v) {
				status.Increment(core.VertexFacesWithoutBackpointer)
			}
		}
	}

	pairs := make(map[IndexEdge]struct{}, mesh.EdgeCount())
	for _, e := range mesh.Edges() {
		edge := mesh.Edge(e)
		if len(edge.vertices) != 2 {
			status.Increment(core.EdgesWithoutTwoVertices)
		} else {
			if edge.vertices[0] == edge.vertices[1] {
				status.Increment(core.EdgesWithDuplicateVertices)
			}
			pair := IndexEdge{int(edge.vertices[0]), int(edge.vertices[1])}.canonical()
			if _, ok := pairs[pair]; ok {
				status.Increment(core.DuplicateEdges)
			}
			pairs[pair] = struct{}{}
		}
		if len(edge.faces) == 0 {
			status.Increment(core.EdgesWithoutFaces)
		}
		if hasDuplicates(edge.faces) {
			status.Increment(core.EdgesWithDuplicateFaces)
		}
		for _, v := range edge.vertices {
			if vertex := mesh.Vertex(v); vertex == nil || !vertex.HasAdjacentEdge(e) {
				status.Increment(core.EdgeVerticesWithoutBackpointer)
			}
		}
		for _, f := range edge.faces {
			if face := mesh.Face(f); face == nil || !face.HasAdjacentEdge(e) {
				status.Increment(core.EdgeFacesWithoutBackpointer)
			}
		}
		if len(edge.vertices) == 2 && len(edge.faces) == 2 && facesOnSameSide(mesh, e) {
			status.Increment(core.EdgesWithFacesOnSameSide)
		}
	}

	rings := make(map[[3]VertexHandle]struct{}, mesh.FaceCount())
	for _, f := range mesh.Faces() {
		face := mesh.Face(f)
		if distinctCount(face.vertices) != 3 {
			status.Increment(core.FacesWithoutThreeVertices)
		}
		if hasDuplicates(face.vertices) {
			status.Increment(core.FacesWithDuplicateVertices)
		}
		if distinctCount(face.edges) != 3 {
			status.Increment(core.FacesWithoutThreeEdges)
		}
		if hasDuplicates(face.edges) {
			status.Increment(core.FacesWithDuplicateEdges)
		}

		valid := true
		for _, v := range face.vertices {
			if vertex := mesh.Vertex(v); vertex == nil || !vertex.HasAdjacentFace(f) {
				status.Increment(core.FaceVerticesWithoutBackpointer)
				valid = valid && vertex != nil
			}
		}
		for _, e := range face.edges {
			if edge := mesh.Edge(e); edge == nil || !edge.HasAdjacentFace(f) {
				status.Increment(core.FaceEdgesWithoutBackpointer)
				valid = valid && edge != nil
			}
		}
		if !valid || len(face.vertices) != 3 || len(face.edges) != 3 {
			continue
		}

		key := sortedTriple(face.vertices)
		if _, ok := rings[key]; ok {
			status.Increment(core.DuplicateFaces)
		}
		rings[key] = struct{}{}

		for k, e := range face.edges {
			edge := mesh.Edge(e)
			if !edge.HasAdjacentVertex(face.vertices[k]) || !edge.HasAdjacentVertex(face.vertices[(k+1)%3]) {
				status.Increment(core.FacesWithMismatchedVertexEdgeOrder)
				break
			}
		}
		a, b, c := facePositions(mesh, f)
		switch o := exact.Orientation2D(a, b, c); {
		case o < 0:
			status.Increment(core.FacesWithClockwiseVertices)
		case o == 0:
			status.Increment(core.FacesWithZeroArea)
		}
	}
	return status
}

// IsConsistent reports whether TestMeshConsistency finds no violations.
func IsConsistent(mesh *Mesh) bool {
	status := TestMeshConsistency(mesh)
	if !status.IsConsistent() {
		core.LogDebug("triangulation mesh is inconsistent: %s", status)
		return false
	}
	return true
}

// facesOnSameSide reports whether the vertices opposite e in its two faces
// are on the same side of it.
func facesOnSameSide(mesh *Mesh, e EdgeHandle) bool {
	edge := mesh.Edge(e)
	var sides [2]float64
	for i, f := range edge.faces {
		face := mesh.Face(f)
		if face == nil || face.EdgeIndex(e) < 0 || len(face.vertices) != 3 {
			return false
		}
		v := VertexOppositeEdge(mesh, f, e)
		if mesh.Vertex(v) == nil {
			return false
		}
		p, q := edgePositions(mesh, e)
		sides[i] = exact.Orientation2D(p, q, mesh.Vertex(v).Position)
	}
	return sides[0] == sides[1] && sides[0] != 0
}

func sortedTriple(v []VertexHandle) [3]VertexHandle {
	t := [3]VertexHandle{v[0], v[1], v[2]}
	if t[1] < t[0] {
		t[0], t[1] = t[1], t[0]
	}
	if t[2] < t[1] {
		t[1], t[2] = t[2], t[1]
	}
	if t[1] < t[0] {
		t[0], t[1] = t[1], t[0]
	}
	return t
}

func distinctCount[H comparable](s []H) int {
	seen := make(map[H]struct{}, len(s))
	for _, h := range s {
		seen[h] = struct{}{}
	}
	return len(seen)
}

func hasDuplicates[H comparable](s []H) bool {
	return distinctCount(s) != len(s)
}
