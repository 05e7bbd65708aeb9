package delaunay

import (
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// Direction selects a way around the mesh perimeter.
type Direction int

const (
	Counterclockwise Direction = iota
	Clockwise
)

// FindEdgeConnectingVertices returns the edge joining v0 and v1.
func FindEdgeConnectingVertices(m *Mesh, v0, v1 VertexHandle) (EdgeHandle, bool) {
	for _, e := range m.Vertex(v0).edges {
		if m.Edge(e).HasAdjacentVertex(v1) {
			return e, true
		}
	}
	return InvalidEdge, false
}

// CreateFaceAndEdges creates the counterclockwise triangle v0, v1, v2 and
// any of its edges that do not exist yet.
func CreateFaceAndEdges(m *Mesh, v0, v1, v2 VertexHandle) FaceHandle {
	f := m.CreateFace()
	face := m.Face(f)
	ring := [3]VertexHandle{v0, v1, v2}
	for k, a := range ring {
		b := ring[(k+1)%3]
		e, ok := FindEdgeConnectingVertices(m, a, b)
		if !ok {
			e = m.CreateEdge()
			edge := m.Edge(e)
			edge.AddAdjacentVertex(a)
			edge.AddAdjacentVertex(b)
			m.Vertex(a).AddAdjacentEdge(e)
			m.Vertex(b).AddAdjacentEdge(e)
		}
		m.Edge(e).AddAdjacentFace(f)
		face.AddAdjacentVertex(a)
		face.AddAdjacentEdge(e)
		m.Vertex(a).AddAdjacentFace(f)
	}
	return f
}

// DeleteFace unwires and destroys f. With deleteOrphanedEdges set, edges that
// are left without faces are deleted as well, unless they are constrained.
// Vertices are never deleted.
func DeleteFace(m *Mesh, f FaceHandle, deleteOrphanedEdges bool) {
	face := m.Face(f)
	for _, v := range face.vertices {
		m.Vertex(v).RemoveAdjacentFace(f)
	}
	for _, e := range face.edges {
		edge := m.Edge(e)
		edge.RemoveAdjacentFace(f)
		if deleteOrphanedEdges && len(edge.faces) == 0 && !edge.IsConstrained() {
			deleteEdge(m, e)
		}
	}
	face.vertices, face.edges = nil, nil
	m.DestroyFace(f)
}

func deleteEdge(m *Mesh, e EdgeHandle) {
	edge := m.Edge(e)
	for _, v := range edge.vertices {
		m.Vertex(v).RemoveAdjacentEdge(e)
	}
	edge.vertices = nil
	m.DestroyEdge(e)
}

// NeighboringFaceAcrossEdge returns the face on the other side of e from f,
// or InvalidFace if e is on the perimeter.
func NeighboringFaceAcrossEdge(m *Mesh, f FaceHandle, e EdgeHandle) FaceHandle {
	for _, g := range m.Edge(e).faces {
		if g != f {
			return g
		}
	}
	return InvalidFace
}

// VertexOppositeEdge returns the vertex of triangle f that is not on e.
func VertexOppositeEdge(m *Mesh, f FaceHandle, e EdgeHandle) VertexHandle {
	face := m.Face(f)
	k := face.EdgeIndex(e)
	if k < 0 {
		return InvalidVertex
	}
	return face.vertices[(k+2)%3]
}

// EdgeOppositeVertex returns the edge of triangle f that does not touch v.
func EdgeOppositeVertex(m *Mesh, f FaceHandle, v VertexHandle) EdgeHandle {
	face := m.Face(f)
	k := face.VertexIndex(v)
	if k < 0 {
		return InvalidEdge
	}
	return face.edges[(k+1)%3]
}

// RotateFace shifts the vertex and edge rings of f by one step. The
// triangle is unchanged; only the starting corner moves.
func RotateFace(m *Mesh, f FaceHandle) {
	face := m.Face(f)
	v, e := face.vertices, face.edges
	face.vertices = []VertexHandle{v[1], v[2], v[0]}
	face.edges = []EdgeHandle{e[1], e[2], e[0]}
}

// AdjacentVertexAroundPerimeter returns the neighbor of perimeter vertex v
// along the mesh perimeter in the given direction. Counterclockwise keeps
// the mesh interior on the left.
func AdjacentVertexAroundPerimeter(m *Mesh, v VertexHandle, dir Direction) VertexHandle {
	for _, e := range m.Vertex(v).edges {
		edge := m.Edge(e)
		if len(edge.faces) != 1 {
			continue
		}
		w := edge.OtherVertex(v)
		face := m.Face(edge.faces[0])
		k := face.EdgeIndex(e)
		startsAtV := face.vertices[k] == v
		if (dir == Counterclockwise) == startsAtV {
			return w
		}
	}
	return InvalidVertex
}

// IsPerimeterVertex reports whether v lies on a perimeter edge.
func IsPerimeterVertex(m *Mesh, v VertexHandle) bool {
	for _, e := range m.Vertex(v).edges {
		if len(m.Edge(e).faces) == 1 {
			return true
		}
	}
	return false
}

// SwapEdge replaces the diagonal e of the quadrilateral formed by its two
// triangles with the opposite diagonal. Both faces keep their handles. The
// quadrilateral must be strictly convex.
func SwapEdge(m *Mesh, e EdgeHandle) {
	edge := m.Edge(e)
	f0, f1 := edge.faces[0], edge.faces[1]
	face0, face1 := m.Face(f0), m.Face(f1)

	// face0 is (p, q, a) with e = p->q, face1 is (q, p, d).
	k0 := face0.EdgeIndex(e)
	p, q, a := face0.vertices[k0], face0.vertices[(k0+1)%3], face0.vertices[(k0+2)%3]
	eqa, eap := face0.edges[(k0+1)%3], face0.edges[(k0+2)%3]
	k1 := face1.EdgeIndex(e)
	d := face1.vertices[(k1+2)%3]
	epd, edq := face1.edges[(k1+1)%3], face1.edges[(k1+2)%3]

	m.Vertex(p).RemoveAdjacentEdge(e)
	m.Vertex(q).RemoveAdjacentEdge(e)
	edge.vertices = []VertexHandle{a, d}
	m.Vertex(a).AddAdjacentEdge(e)
	m.Vertex(d).AddAdjacentEdge(e)

	// face0 becomes (a, p, d) and face1 becomes (d, q, a).
	face0.vertices = []VertexHandle{a, p, d}
	face0.edges = []EdgeHandle{eap, epd, e}
	face1.vertices = []VertexHandle{d, q, a}
	face1.edges = []EdgeHandle{edq, eqa, e}

	m.Vertex(p).RemoveAdjacentFace(f1)
	m.Vertex(q).RemoveAdjacentFace(f0)
	m.Vertex(a).AddAdjacentFace(f1)
	m.Vertex(d).AddAdjacentFace(f0)
	replaceHandle(m.Edge(epd).faces, f1, f0)
	replaceHandle(m.Edge(eqa).faces, f0, f1)
}

// SplitEdge inserts a vertex at position on e, replacing each adjacent
// triangle by two. The position must lie on the edge.
func SplitEdge(m *Mesh, e EdgeHandle, position math.Vec2) VertexHandle {
	edge := m.Edge(e)
	type corner struct{ p, q, a VertexHandle }
	var corners []corner
	for _, f := range edge.faces {
		face := m.Face(f)
		k := face.EdgeIndex(e)
		corners = append(corners, corner{face.vertices[k], face.vertices[(k+1)%3], face.vertices[(k+2)%3]})
	}
	for len(edge.faces) > 0 {
		DeleteFace(m, edge.faces[0], false)
	}
	deleteEdge(m, e)

	n := m.CreateVertex(position)
	for _, c := range corners {
		CreateFaceAndEdges(m, c.p, n, c.a)
		CreateFaceAndEdges(m, n, c.q, c.a)
	}
	return n
}

// SplitFace inserts a vertex at position strictly inside triangle f,
// replacing it by three triangles.
func SplitFace(m *Mesh, f FaceHandle, position math.Vec2) VertexHandle {
	face := m.Face(f)
	a, b, c := face.vertices[0], face.vertices[1], face.vertices[2]
	DeleteFace(m, f, false)

	n := m.CreateVertex(position)
	CreateFaceAndEdges(m, a, b, n)
	CreateFaceAndEdges(m, b, c, n)
	CreateFaceAndEdges(m, c, a, n)
	return n
}

// facePositions returns the corner positions of triangle f.
func facePositions(m *Mesh, f FaceHandle) (math.Vec2, math.Vec2, math.Vec2) {
	v := m.Face(f).vertices
	return m.Vertex(v[0]).Position, m.Vertex(v[1]).Position, m.Vertex(v[2]).Position
}

func edgePositions(m *Mesh, e EdgeHandle) (math.Vec2, math.Vec2) {
	v := m.Edge(e).vertices
	return m.Vertex(v[0]).Position, m.Vertex(v[1]).Position
}
