package mesh

import (
	m "math"

	"golang.org/x/exp/slices"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/exact"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// TestMeshConsistency checks every adjacency and geometry invariant of the
// mesh and returns the count of each kind of violation found. It never
// modifies the mesh.
func TestMeshConsistency(mesh *Mesh) *core.ConsistencyStatus {
	status := core.NewConsistencyStatus()
	testVertices(mesh, status)
	testEdges(mesh, status)
	testFaces(mesh, status)
	return status
}

// IsConsistent reports whether TestMeshConsistency finds no violations. Any
// violations found are logged at debug level.
func IsConsistent(mesh *Mesh) bool {
	status := TestMeshConsistency(mesh)
	if !status.IsConsistent() {
		core.LogDebug("mesh is inconsistent: %s", status)
		return false
	}
	return true
}

func testVertices(mesh *Mesh, status *core.ConsistencyStatus) {
	positions := make(map[math.Vec3]struct{}, mesh.VertexCount())
	for _, v := range mesh.Vertices() {
		vertex := mesh.Vertex(v)
		p := vertex.Position()
		if p.HasNaN() {
			status.Increment(core.NaNVertices)
		} else if m.IsInf(p.X, 0) || m.IsInf(p.Y, 0) || m.IsInf(p.Z, 0) {
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
}

type vertexPair struct {
	a, b VertexHandle
}

func newVertexPair(a, b VertexHandle) vertexPair {
	if b < a {
		a, b = b, a
	}
	return vertexPair{a, b}
}

func testEdges(mesh *Mesh, status *core.ConsistencyStatus) {
	pairs := make(map[vertexPair]struct{}, mesh.EdgeCount())
	for _, e := range mesh.Edges() {
		edge := mesh.Edge(e)
		if len(edge.vertices) != 2 {
			status.Increment(core.EdgesWithoutTwoVertices)
		} else {
			if edge.vertices[0] == edge.vertices[1] {
				status.Increment(core.EdgesWithDuplicateVertices)
			}
			pair := newVertexPair(edge.vertices[0], edge.vertices[1])
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
		if len(edge.faces) == 2 && len(edge.vertices) == 2 && facesTraverseEdgeInSameDirection(mesh, e) {
			status.Increment(core.EdgesWithFacesOnSameSide)
		}
	}
}

// facesTraverseEdgeInSameDirection reports whether both faces of a two face
// edge walk it from the same endpoint, which means their windings disagree.
func facesTraverseEdgeInSameDirection(mesh *Mesh, e EdgeHandle) bool {
	edge := mesh.Edge(e)
	var starts [2]VertexHandle
	for i, f := range edge.faces {
		face := mesh.Face(f)
		if face == nil {
			return false
		}
		k := face.EdgeIndex(e)
		if k < 0 || k >= len(face.vertices) {
			return false
		}
		starts[i] = face.vertices[k]
	}
	return starts[0] == starts[1]
}

func testFaces(mesh *Mesh, status *core.ConsistencyStatus) {
	rings := make(map[string]struct{}, mesh.FaceCount())
	for _, f := range mesh.Faces() {
		face := mesh.Face(f)
		if distinctCount(face.vertices) < 3 {
			status.Increment(core.FacesWithoutThreeVertices)
		}
		if hasDuplicates(face.vertices) {
			status.Increment(core.FacesWithDuplicateVertices)
		}
		if distinctCount(face.edges) < 3 {
			status.Increment(core.FacesWithoutThreeEdges)
		}
		if hasDuplicates(face.edges) {
			status.Increment(core.FacesWithDuplicateEdges)
		}

		key := ringKey(face.vertices)
		if _, ok := rings[key]; ok {
			status.Increment(core.DuplicateFaces)
		}
		rings[key] = struct{}{}

		for _, v := range face.vertices {
			if vertex := mesh.Vertex(v); vertex == nil || !vertex.HasAdjacentFace(f) {
				status.Increment(core.FaceVerticesWithoutBackpointer)
			}
		}
		allEdgesValid := true
		for _, e := range face.edges {
			if edge := mesh.Edge(e); edge == nil || !edge.HasAdjacentFace(f) {
				status.Increment(core.FaceEdgesWithoutBackpointer)
				allEdgesValid = allEdgesValid && edge != nil
			}
		}
		if allEdgesValid && !ringOrderMatches(mesh, face) {
			status.Increment(core.FacesWithMismatchedVertexEdgeOrder)
		}
		if faceVerticesValid(mesh, face) && faceIsFinite(mesh, face) && len(face.vertices) >= 3 {
			if GetFaceArea(mesh, f) == 0 {
				status.Increment(core.FacesWithZeroArea)
			} else if projectedFaceIsDegenerate(mesh, f) {
				status.Increment(core.FacesWithDegenerateProjection)
			}
		}
	}
}

// projectedFaceIsDegenerate projects the face onto the plane of its normal
// and reports whether the projected ring touches itself anywhere other than
// between neighboring edges.
func projectedFaceIsDegenerate(mesh *Mesh, f FaceHandle) bool {
	positions := GetFaceVertexPositions(mesh, f)
	axis0, axis1 := math.PrimaryAxesMostOrthogonalToVector(GetFaceGeometricNormal(mesh, f))
	ring := make([]math.Vec2, len(positions))
	for i, p := range positions {
		ring[i] = p.Project(axis0, axis1)
	}

	n := len(ring)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if ring[i] == ring[j] {
				return true
			}
		}
	}
	for k := 0; k < n; k++ {
		prev, cur, next := ring[(k+n-1)%n], ring[k], ring[(k+1)%n]
		if exact.LineSegmentIntersectsPoint2D(prev, cur, next) || exact.LineSegmentIntersectsPoint2D(cur, next, prev) {
			return true
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if exact.LineSegmentsIntersect2D(ring[i], ring[(i+1)%n], ring[j], ring[(j+1)%n]) {
				return true
			}
		}
	}
	return false
}

// ringOrderMatches reports whether edge k of the face joins vertex k and
// vertex k+1 for every k.
func ringOrderMatches(mesh *Mesh, face *Face) bool {
	n := len(face.vertices)
	if n != len(face.edges) {
		return false
	}
	for k, e := range face.edges {
		edge := mesh.Edge(e)
		if !edge.HasAdjacentVertex(face.vertices[k]) || !edge.HasAdjacentVertex(face.vertices[(k+1)%n]) {
			return false
		}
	}
	return true
}

func faceVerticesValid(mesh *Mesh, face *Face) bool {
	for _, v := range face.vertices {
		if !mesh.IsValidVertex(v) {
			return false
		}
	}
	return true
}

func faceIsFinite(mesh *Mesh, face *Face) bool {
	for _, v := range face.vertices {
		p := mesh.Vertex(v).Position()
		if !math.IsFinite(p.X) || !math.IsFinite(p.Y) || !math.IsFinite(p.Z) {
			return false
		}
	}
	return true
}

// ringKey identifies a face by its vertex set, independent of rotation and
// winding.
func ringKey(ring []VertexHandle) string {
	sorted := slices.Clone(ring)
	slices.Sort(sorted)
	buf := make([]byte, 0, len(sorted)*4)
	for _, v := range sorted {
		buf = append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return string(buf)
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
