package delaunay

import (
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/exact"
)

// MeshIsDelaunay reports whether no vertex of m lies strictly inside the
// circumcircle of any face. Cocircular vertices are not violations.
//
// Every vertex is tested against every face, so this is meant for tests
// and diagnostics only.
func MeshIsDelaunay(m *Mesh) bool {
	vertices := m.Vertices()
	for _, f := range m.Faces() {
		face := m.Face(f)
		a, b, c := facePositions(m, f)
		for _, v := range vertices {
			if face.HasAdjacentVertex(v) {
				continue
			}
			if exact.InCircle(a, b, c, m.Vertex(v).Position) > 0 {
				return false
			}
		}
	}
	return true
}

// MeshIsSingleConnectedRegion reports whether every face of m can be reached
// from every other through shared edges. Vertices without faces count as
// separate regions. An empty mesh is connected.
func MeshIsSingleConnectedRegion(m *Mesh) bool {
	faces := m.Faces()
	if len(faces) == 0 {
		return vertexGraphIsConnected(m)
	}
	for _, v := range m.Vertices() {
		if len(m.Vertex(v).faces) == 0 {
			return false
		}
	}

	visited := make(map[FaceHandle]bool, len(faces))
	stack := []FaceHandle{faces[0]}
	visited[faces[0]] = true
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range m.Face(f).edges {
			for _, g := range m.Edge(e).faces {
				if !visited[g] {
					visited[g] = true
					stack = append(stack, g)
				}
			}
		}
	}
	return len(visited) == len(faces)
}

func vertexGraphIsConnected(m *Mesh) bool {
	vertices := m.Vertices()
	if len(vertices) == 0 {
		return true
	}
	visited := map[VertexHandle]bool{vertices[0]: true}
	stack := []VertexHandle{vertices[0]}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range m.Vertex(v).edges {
			w := m.Edge(e).OtherVertex(v)
			if w != InvalidVertex && !visited[w] {
				visited[w] = true
				stack = append(stack, w)
			}
		}
	}
	return len(visited) == len(vertices)
}

// MeshHasConvexPerimeter reports whether no perimeter vertex of m is a
// reflex corner. Colinear perimeter vertices are allowed.
func MeshHasConvexPerimeter(m *Mesh) bool {
	for _, v := range m.Vertices() {
		if !IsPerimeterVertex(m, v) {
			continue
		}
		prev := AdjacentVertexAroundPerimeter(m, v, Clockwise)
		next := AdjacentVertexAroundPerimeter(m, v, Counterclockwise)
		if prev == InvalidVertex || next == InvalidVertex {
			return false
		}
		if exact.Orientation2D(m.Vertex(prev).Position, m.Vertex(v).Position, m.Vertex(next).Position) < 0 {
			return false
		}
	}
	return true
}
