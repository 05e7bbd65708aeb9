package mesh

import (
	"golang.org/x/exp/slices"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// GetEdgeVertexPositions returns the positions of both endpoints of e.
func GetEdgeVertexPositions(m *Mesh, e EdgeHandle) (math.Vec3, math.Vec3) {
	edge := m.Edge(e)
	return m.Vertex(edge.vertices[0]).Position(), m.Vertex(edge.vertices[1]).Position()
}

func GetEdgeLength(m *Mesh, e EdgeHandle) float64 {
	p0, p1 := GetEdgeVertexPositions(m, e)
	return p0.Distance(p1)
}

func GetEdgeBoundingBox(m *Mesh, e EdgeHandle) math.BBox3 {
	p0, p1 := GetEdgeVertexPositions(m, e)
	return math.NewBBox3FromPoints(p0, p1)
}

// DeleteEdge deletes e and every face bordering it. The endpoints are kept.
func DeleteEdge(m *Mesh, e EdgeHandle) {
	edge := m.Edge(e)
	for len(edge.faces) > 0 {
		DeleteFace(m, edge.faces[0], false)
	}
	for _, v := range edge.vertices {
		m.Vertex(v).RemoveAdjacentEdge(e)
	}
	edge.vertices = nil
	m.DestroyEdge(e)
}

// SplitEdge inserts a new vertex at position into e. The original edge keeps
// its first endpoint and ends at the new vertex; a new edge runs from the new
// vertex to the original second endpoint. Every adjacent face gets the new
// vertex and edge spliced into its rings. Vertex attributes, edge attributes
// and face corner attributes are interpolated or copied onto the new
// elements.
func SplitEdge(m *Mesh, e EdgeHandle, position math.Vec3) (VertexHandle, EdgeHandle) {
	edge := m.Edge(e)
	v0, v1 := edge.vertices[0], edge.vertices[1]

	nv := m.CreateVertex()
	ne := m.CreateEdge()
	newVertex := m.Vertex(nv)
	newEdge := m.Edge(ne)

	newVertex.SetPosition(position)
	AssignInterpolatedVertexAttributes(m, nv, []VertexHandle{v0, v1})
	newEdge.CopyAttributes(&edge.AttributePossessor)

	edge.ReplaceAdjacentVertex(v1, nv)
	newEdge.AddAdjacentVertex(nv)
	newEdge.AddAdjacentVertex(v1)
	m.Vertex(v1).RemoveAdjacentEdge(e)
	m.Vertex(v1).AddAdjacentEdge(ne)
	newVertex.AddAdjacentEdge(e)
	newVertex.AddAdjacentEdge(ne)

	for _, f := range edge.faces {
		face := m.Face(f)
		k := face.EdgeIndex(e)
		if k < 0 {
			continue
		}
		face.vertices = slices.Insert(face.vertices, k+1, nv)
		if face.vertices[k] == v0 {
			face.edges = slices.Insert(face.edges, k+1, ne)
		} else {
			face.edges = slices.Insert(face.edges, k, ne)
		}
		newEdge.AddAdjacentFace(f)
		newVertex.AddAdjacentFace(f)
		AssignInterpolatedFaceVertexAttributes(m, f, nv, f, []VertexHandle{v0, v1})
	}
	return nv, ne
}
