package mesh

// FindEdgeConnectingVertices returns the edge joining v0 and v1.
func FindEdgeConnectingVertices(m *Mesh, v0, v1 VertexHandle) (EdgeHandle, bool) {
	for _, e := range m.Vertex(v0).AdjacentEdges() {
		if m.Edge(e).HasAdjacentVertex(v1) {
			return e, true
		}
	}
	return InvalidEdge, false
}

// DeleteVertex deletes v together with every face and edge touching it.
func DeleteVertex(m *Mesh, v VertexHandle) {
	vertex := m.Vertex(v)
	for len(vertex.faces) > 0 {
		DeleteFace(m, vertex.faces[0], false)
	}
	for len(vertex.edges) > 0 {
		DeleteEdge(m, vertex.edges[0])
	}
	m.DestroyVertex(v)
}

// VertexIsOrphaned reports whether v has no adjacent edges or faces.
func VertexIsOrphaned(m *Mesh, v VertexHandle) bool {
	vertex := m.Vertex(v)
	return len(vertex.edges) == 0 && len(vertex.faces) == 0
}
