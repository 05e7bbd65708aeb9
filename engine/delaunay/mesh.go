// Package delaunay computes constrained Delaunay triangulations of 2D point
// sets and of polygons with holes.
//
// The triangulators work on a small triangle mesh of their own, with the
// same explicit adjacency model as the general mesh package but restricted
// to 2D positions and counterclockwise triangles.
package delaunay

import (
	"golang.org/x/exp/slices"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

type (
	VertexHandle int32
	EdgeHandle   int32
	FaceHandle   int32
)

const (
	InvalidVertex VertexHandle = -1
	InvalidEdge   EdgeHandle   = -1
	InvalidFace   FaceHandle   = -1
)

// NoIndex marks an input or output index that is not assigned.
const NoIndex = -1

type Vertex struct {
	Position math.Vec2
	// InputIndex is the index of the input point the vertex was created for.
	InputIndex int

	edges []EdgeHandle
	faces []FaceHandle
}

func (v *Vertex) AdjacentEdges() []EdgeHandle {
	return v.edges
}

func (v *Vertex) AdjacentFaces() []FaceHandle {
	return v.faces
}

func (v *Vertex) AddAdjacentEdge(e EdgeHandle) {
	v.edges = append(v.edges, e)
}

func (v *Vertex) RemoveAdjacentEdge(e EdgeHandle) {
	v.edges = removeHandle(v.edges, e)
}

func (v *Vertex) HasAdjacentEdge(e EdgeHandle) bool {
	return slices.Contains(v.edges, e)
}

func (v *Vertex) AddAdjacentFace(f FaceHandle) {
	v.faces = append(v.faces, f)
}

func (v *Vertex) RemoveAdjacentFace(f FaceHandle) {
	v.faces = removeHandle(v.faces, f)
}

func (v *Vertex) HasAdjacentFace(f FaceHandle) bool {
	return slices.Contains(v.faces, f)
}

type Edge struct {
	// InputIndex is the index of the constraint edge this edge realizes, or
	// NoIndex for an unconstrained edge.
	InputIndex int
	// OutputIndex is the position of the edge in the triangulator output.
	OutputIndex int

	vertices []VertexHandle
	faces    []FaceHandle
}

// IsConstrained reports whether the edge realizes an input constraint.
func (e *Edge) IsConstrained() bool {
	return e.InputIndex != NoIndex
}

func (e *Edge) AdjacentVertices() []VertexHandle {
	return e.vertices
}

func (e *Edge) AdjacentFaces() []FaceHandle {
	return e.faces
}

func (e *Edge) AddAdjacentVertex(v VertexHandle) {
	if len(e.vertices) >= 2 {
		panic("edge already has two adjacent vertices")
	}
	e.vertices = append(e.vertices, v)
}

func (e *Edge) RemoveAdjacentVertex(v VertexHandle) {
	e.vertices = removeHandle(e.vertices, v)
}

func (e *Edge) HasAdjacentVertex(v VertexHandle) bool {
	return slices.Contains(e.vertices, v)
}

// OtherVertex returns the endpoint of the edge that is not v.
func (e *Edge) OtherVertex(v VertexHandle) VertexHandle {
	if len(e.vertices) != 2 {
		return InvalidVertex
	}
	if e.vertices[0] == v {
		return e.vertices[1]
	}
	return e.vertices[0]
}

func (e *Edge) AddAdjacentFace(f FaceHandle) {
	e.faces = append(e.faces, f)
}

func (e *Edge) RemoveAdjacentFace(f FaceHandle) {
	e.faces = removeHandle(e.faces, f)
}

func (e *Edge) HasAdjacentFace(f FaceHandle) bool {
	return slices.Contains(e.faces, f)
}

// Face is a triangle. Vertices are counterclockwise and edge k joins vertex
// k and vertex k+1.
type Face struct {
	vertices []VertexHandle
	edges    []EdgeHandle
}

func (f *Face) AdjacentVertices() []VertexHandle {
	return f.vertices
}

func (f *Face) AdjacentEdges() []EdgeHandle {
	return f.edges
}

func (f *Face) AddAdjacentVertex(v VertexHandle) {
	f.vertices = append(f.vertices, v)
}

func (f *Face) AddAdjacentEdge(e EdgeHandle) {
	f.edges = append(f.edges, e)
}

func (f *Face) HasAdjacentVertex(v VertexHandle) bool {
	return slices.Contains(f.vertices, v)
}

func (f *Face) HasAdjacentEdge(e EdgeHandle) bool {
	return slices.Contains(f.edges, e)
}

func (f *Face) VertexIndex(v VertexHandle) int {
	return slices.Index(f.vertices, v)
}

func (f *Face) EdgeIndex(e EdgeHandle) int {
	return slices.Index(f.edges, e)
}

func removeHandle[H comparable](s []H, h H) []H {
	if i := slices.Index(s, h); i >= 0 {
		return slices.Delete(s, i, i+1)
	}
	return s
}

func replaceHandle[H comparable](s []H, from, to H) {
	if i := slices.Index(s, from); i >= 0 {
		s[i] = to
	}
}

// Mesh is an arena of 2D vertices, edges and triangles. Handles are never
// reused after their element is destroyed.
type Mesh struct {
	vertices []*Vertex
	edges    []*Edge
	faces    []*Face

	vertexCount int
	edgeCount   int
	faceCount   int
}

func NewMesh() *Mesh {
	return &Mesh{}
}

func (m *Mesh) CreateVertex(position math.Vec2) VertexHandle {
	m.vertices = append(m.vertices, &Vertex{Position: position, InputIndex: NoIndex})
	m.vertexCount++
	return VertexHandle(len(m.vertices) - 1)
}

func (m *Mesh) DestroyVertex(v VertexHandle) {
	if m.vertices[v] != nil {
		m.vertices[v] = nil
		m.vertexCount--
	}
}

func (m *Mesh) Vertex(h VertexHandle) *Vertex {
	if h < 0 || int(h) >= len(m.vertices) {
		return nil
	}
	return m.vertices[h]
}

func (m *Mesh) Vertices() []VertexHandle {
	out := make([]VertexHandle, 0, m.vertexCount)
	for i, v := range m.vertices {
		if v != nil {
			out = append(out, VertexHandle(i))
		}
	}
	return out
}

func (m *Mesh) VertexCount() int {
	return m.vertexCount
}

func (m *Mesh) CreateEdge() EdgeHandle {
	m.edges = append(m.edges, &Edge{InputIndex: NoIndex, OutputIndex: NoIndex})
	m.edgeCount++
	return EdgeHandle(len(m.edges) - 1)
}

func (m *Mesh) DestroyEdge(e EdgeHandle) {
	if m.edges[e] != nil {
		m.edges[e] = nil
		m.edgeCount--
	}
}

func (m *Mesh) Edge(h EdgeHandle) *Edge {
	if h < 0 || int(h) >= len(m.edges) {
		return nil
	}
	return m.edges[h]
}

func (m *Mesh) Edges() []EdgeHandle {
	out := make([]EdgeHandle, 0, m.edgeCount)
	for i, e := range m.edges {
		if e != nil {
			out = append(out, EdgeHandle(i))
		}
	}
	return out
}

func (m *Mesh) EdgeCount() int {
	return m.edgeCount
}

func (m *Mesh) CreateFace() FaceHandle {
	m.faces = append(m.faces, &Face{})
	m.faceCount++
	return FaceHandle(len(m.faces) - 1)
}

func (m *Mesh) DestroyFace(f FaceHandle) {
	if m.faces[f] != nil {
		m.faces[f] = nil
		m.faceCount--
	}
}

func (m *Mesh) Face(h FaceHandle) *Face {
	if h < 0 || int(h) >= len(m.faces) {
		return nil
	}
	return m.faces[h]
}

func (m *Mesh) Faces() []FaceHandle {
	out := make([]FaceHandle, 0, m.faceCount)
	for i, f := range m.faces {
		if f != nil {
			out = append(out, FaceHandle(i))
		}
	}
	return out
}

func (m *Mesh) FaceCount() int {
	return m.faceCount
}

// BuildMesh assembles a mesh from triangulator output. Vertex i of the mesh
// is points[i], edge i is edges[i] and face i is triangles[i].
func BuildMesh(points []math.Vec2, edges []IndexEdge, triangles []Triangle) *Mesh {
	m := NewMesh()
	for i, p := range points {
		v := m.CreateVertex(p)
		m.Vertex(v).InputIndex = i
	}
	for i, ie := range edges {
		e := m.CreateEdge()
		edge := m.Edge(e)
		edge.OutputIndex = i
		for _, p := range ie {
			edge.AddAdjacentVertex(VertexHandle(p))
			m.Vertex(VertexHandle(p)).AddAdjacentEdge(e)
		}
	}
	for _, t := range triangles {
		f := m.CreateFace()
		face := m.Face(f)
		for k := 0; k < 3; k++ {
			v, e := VertexHandle(t.Points[k]), EdgeHandle(t.Edges[k])
			face.AddAdjacentVertex(v)
			face.AddAdjacentEdge(e)
			m.Vertex(v).AddAdjacentFace(f)
			m.Edge(e).AddAdjacentFace(f)
		}
	}
	return m
}
