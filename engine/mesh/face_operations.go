package mesh

import (
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// GetFaceVertexPositions returns the positions of the face ring.
func GetFaceVertexPositions(m *Mesh, f FaceHandle) []math.Vec3 {
	face := m.Face(f)
	out := make([]math.Vec3, len(face.vertices))
	for i, v := range face.vertices {
		out[i] = m.Vertex(v).Position()
	}
	return out
}

// GetFaceGeometricNormal returns the unit normal implied by the winding of
// the face ring, or the zero vector for a degenerate face.
func GetFaceGeometricNormal(m *Mesh, f FaceHandle) math.Vec3 {
	return math.PolygonNormal(GetFaceVertexPositions(m, f)).Normalized()
}

func GetFaceArea(m *Mesh, f FaceHandle) float64 {
	return math.PolygonArea(GetFaceVertexPositions(m, f))
}

// GetFaceCentroid returns the average of the face ring positions.
func GetFaceCentroid(m *Mesh, f FaceHandle) math.Vec3 {
	positions := GetFaceVertexPositions(m, f)
	var sum math.Vec3
	for _, p := range positions {
		sum = sum.Add(p)
	}
	if len(positions) == 0 {
		return sum
	}
	return sum.MulScalar(1 / float64(len(positions)))
}

func GetFaceBoundingBox(m *Mesh, f FaceHandle) math.BBox3 {
	return math.NewBBox3FromPoints(GetFaceVertexPositions(m, f)...)
}

// DeleteFace unwires f from its vertices and edges and destroys it. With
// deleteOrphans set, edges left without faces and vertices left without
// edges or faces are deleted too.
func DeleteFace(m *Mesh, f FaceHandle, deleteOrphans bool) {
	face := m.Face(f)
	for _, v := range face.vertices {
		m.Vertex(v).RemoveAdjacentFace(f)
	}
	for _, e := range face.edges {
		m.Edge(e).RemoveAdjacentFace(f)
	}
	vertices, edges := face.vertices, face.edges
	face.vertices, face.edges, face.faceVertices = nil, nil, nil
	m.DestroyFace(f)

	if !deleteOrphans {
		return
	}
	for _, e := range edges {
		if m.IsValidEdge(e) && m.Edge(e).AdjacentFaceCount() == 0 {
			DeleteEdge(m, e)
		}
	}
	for _, v := range vertices {
		if m.IsValidVertex(v) && VertexIsOrphaned(m, v) {
			m.DestroyVertex(v)
		}
	}
}

// CreateFaceAndEdgesFromVertices creates a face with the given vertex ring.
// Existing edges between consecutive vertices are reused and missing ones
// are created. The new edges are returned in ring order.
func CreateFaceAndEdgesFromVertices(m *Mesh, ring []VertexHandle) (FaceHandle, []EdgeHandle) {
	f := m.CreateFace()
	face := m.Face(f)
	var created []EdgeHandle
	for i, v0 := range ring {
		v1 := ring[(i+1)%len(ring)]
		e, ok := FindEdgeConnectingVertices(m, v0, v1)
		if !ok {
			e = m.CreateEdge()
			edge := m.Edge(e)
			edge.AddAdjacentVertex(v0)
			edge.AddAdjacentVertex(v1)
			m.Vertex(v0).AddAdjacentEdge(e)
			m.Vertex(v1).AddAdjacentEdge(e)
			created = append(created, e)
		}
		m.Edge(e).AddAdjacentFace(f)
		face.AddAdjacentEdge(e)
		face.AddAdjacentVertex(v0)
		m.Vertex(v0).AddAdjacentFace(f)
	}
	return f, created
}

// CreateTriangularFaceAndEdgesFromVertices creates the triangle v0, v1, v2,
// reusing any existing edges between them.
func CreateTriangularFaceAndEdgesFromVertices(m *Mesh, v0, v1, v2 VertexHandle) FaceHandle {
	f, _ := CreateFaceAndEdgesFromVertices(m, []VertexHandle{v0, v1, v2})
	return f
}

// ReplaceFaceWithTriangles replaces f by the given triangles, which must tile
// it and share its winding. Face attributes are copied to every triangle.
// Corners that f already had keep their attributes; corners at new vertices
// are interpolated from the ring of f. Returns the new faces and any edges
// that had to be created.
func ReplaceFaceWithTriangles(m *Mesh, f FaceHandle, triangles [][3]VertexHandle) ([]FaceHandle, []EdgeHandle) {
	old := m.Face(f)
	ring := append([]VertexHandle(nil), old.vertices...)

	faces := make([]FaceHandle, 0, len(triangles))
	var created []EdgeHandle
	for _, tri := range triangles {
		nf, edges := CreateFaceAndEdgesFromVertices(m, tri[:])
		created = append(created, edges...)
		face := m.Face(nf)
		face.CopyAttributes(&old.AttributePossessor)
		for _, v := range tri {
			if src := old.FindVertexAttributes(v); src != nil {
				face.VertexAttributes(v).CopyAttributes(src)
			} else if !old.HasAdjacentVertex(v) {
				AssignInterpolatedFaceVertexAttributes(m, nf, v, f, ring)
			}
		}
		faces = append(faces, nf)
	}
	DeleteFace(m, f, false)
	return faces, created
}

// TriangulateQuadrilateralFace splits a four sided face along one of its
// diagonals. The shorter diagonal is used unless it would produce a
// degenerate or inverted triangle.
func TriangulateQuadrilateralFace(m *Mesh, f FaceHandle) []FaceHandle {
	face := m.Face(f)
	v := face.vertices
	p := GetFaceVertexPositions(m, f)
	normal := math.PolygonNormal(p)

	// Diagonal 0-2 and diagonal 1-3.
	options := [2][2][3]int{
		{{0, 1, 2}, {0, 2, 3}},
		{{0, 1, 3}, {1, 2, 3}},
	}
	valid := func(option [2][3]int) bool {
		for _, t := range option {
			tn := math.PolygonNormal([]math.Vec3{p[t[0]], p[t[1]], p[t[2]]})
			if tn.Dot(normal) <= 0 {
				return false
			}
		}
		return true
	}
	choice := 0
	if p[1].Distance(p[3]) < p[0].Distance(p[2]) {
		choice = 1
	}
	if !valid(options[choice]) && valid(options[1-choice]) {
		choice = 1 - choice
	}

	triangles := make([][3]VertexHandle, 2)
	for i, t := range options[choice] {
		triangles[i] = [3]VertexHandle{v[t[0]], v[t[1]], v[t[2]]}
	}
	faces, _ := ReplaceFaceWithTriangles(m, f, triangles)
	return faces
}

// FaceIsTriangle reports whether f has exactly three vertices.
func FaceIsTriangle(m *Mesh, f FaceHandle) bool {
	return m.Face(f).AdjacentVertexCount() == 3
}
