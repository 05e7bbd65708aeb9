// Package mesh implements a polygon mesh with explicit, ordered adjacency
// between vertices, edges and faces, and a typed attribute system that can
// attach data to the mesh, to any of its elements and to face corners.
//
// Adjacency is never repaired implicitly. Algorithms build it up through the
// Add/Remove functions, passing through inconsistent intermediate states,
// and TestMeshConsistency is the diagnostic that catches mistakes.
package mesh

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

// Vertex is a point of the mesh.
type Vertex struct {
	AttributePossessor
	position math.Vec3
	edges    []EdgeHandle
	faces    []FaceHandle
}

func (v *Vertex) Position() math.Vec3 {
	return v.position
}

func (v *Vertex) SetPosition(p math.Vec3) {
	v.position = p
}

// AdjacentEdges returns the adjacent edges in insertion order. The slice is
// owned by the vertex.
func (v *Vertex) AdjacentEdges() []EdgeHandle {
	return v.edges
}

func (v *Vertex) AdjacentEdgeCount() int {
	return len(v.edges)
}

func (v *Vertex) AddAdjacentEdge(e EdgeHandle) {
	v.edges = append(v.edges, e)
}

// RemoveAdjacentEdge removes the first occurrence of e.
func (v *Vertex) RemoveAdjacentEdge(e EdgeHandle) {
	v.edges = removeHandle(v.edges, e)
}

func (v *Vertex) HasAdjacentEdge(e EdgeHandle) bool {
	return slices.Contains(v.edges, e)
}

func (v *Vertex) AdjacentFaces() []FaceHandle {
	return v.faces
}

func (v *Vertex) AdjacentFaceCount() int {
	return len(v.faces)
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

// Edge connects two vertices and borders any number of faces.
type Edge struct {
	AttributePossessor
	vertices []VertexHandle
	faces    []FaceHandle
}

func (e *Edge) AdjacentVertices() []VertexHandle {
	return e.vertices
}

func (e *Edge) AdjacentVertexCount() int {
	return len(e.vertices)
}

// AddAdjacentVertex appends v. An edge holds at most two vertices; adding a
// third panics.
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

// ReplaceAdjacentVertex substitutes to for the first occurrence of from.
func (e *Edge) ReplaceAdjacentVertex(from, to VertexHandle) {
	if i := slices.Index(e.vertices, from); i >= 0 {
		e.vertices[i] = to
	}
}

// OtherVertex returns the endpoint of the edge that is not v, or
// InvalidVertex when the edge does not have two vertices.
func (e *Edge) OtherVertex(v VertexHandle) VertexHandle {
	if len(e.vertices) != 2 {
		return InvalidVertex
	}
	if e.vertices[0] == v {
		return e.vertices[1]
	}
	return e.vertices[0]
}

func (e *Edge) AdjacentFaces() []FaceHandle {
	return e.faces
}

func (e *Edge) AdjacentFaceCount() int {
	return len(e.faces)
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

type faceVertex struct {
	vertex     VertexHandle
	attributes *AttributePossessor
}

// Face is a polygon. Its vertices wind consistently, and its k-th edge
// connects its k-th and (k+1)-th vertices. Besides its own attributes a face
// carries per-corner attributes keyed by adjacent vertex.
type Face struct {
	AttributePossessor
	vertices     []VertexHandle
	edges        []EdgeHandle
	faceVertices []faceVertex
}

func (f *Face) AdjacentVertices() []VertexHandle {
	return f.vertices
}

func (f *Face) AdjacentVertexCount() int {
	return len(f.vertices)
}

func (f *Face) AddAdjacentVertex(v VertexHandle) {
	f.vertices = append(f.vertices, v)
}

func (f *Face) PrependAdjacentVertex(v VertexHandle) {
	f.vertices = slices.Insert(f.vertices, 0, v)
}

// InsertAdjacentVertex inserts v immediately before the vertex before. If
// before is not adjacent to the face, v is appended.
func (f *Face) InsertAdjacentVertex(v, before VertexHandle) {
	i := slices.Index(f.vertices, before)
	if i < 0 {
		f.vertices = append(f.vertices, v)
		return
	}
	f.vertices = slices.Insert(f.vertices, i, v)
}

// RemoveAdjacentVertex removes v and any corner attributes recorded for it.
func (f *Face) RemoveAdjacentVertex(v VertexHandle) {
	f.vertices = removeHandle(f.vertices, v)
	f.eraseFaceVertex(v)
}

func (f *Face) HasAdjacentVertex(v VertexHandle) bool {
	return slices.Contains(f.vertices, v)
}

// VertexIndex returns the position of v in the vertex ring, or -1.
func (f *Face) VertexIndex(v VertexHandle) int {
	return slices.Index(f.vertices, v)
}

func (f *Face) AdjacentEdges() []EdgeHandle {
	return f.edges
}

func (f *Face) AdjacentEdgeCount() int {
	return len(f.edges)
}

func (f *Face) AddAdjacentEdge(e EdgeHandle) {
	f.edges = append(f.edges, e)
}

// InsertAdjacentEdge inserts e immediately before the edge before. If
// before is not adjacent to the face, e is appended.
func (f *Face) InsertAdjacentEdge(e, before EdgeHandle) {
	i := slices.Index(f.edges, before)
	if i < 0 {
		f.edges = append(f.edges, e)
		return
	}
	f.edges = slices.Insert(f.edges, i, e)
}

func (f *Face) RemoveAdjacentEdge(e EdgeHandle) {
	f.edges = removeHandle(f.edges, e)
}

func (f *Face) HasAdjacentEdge(e EdgeHandle) bool {
	return slices.Contains(f.edges, e)
}

// EdgeIndex returns the position of e in the edge ring, or -1.
func (f *Face) EdgeIndex(e EdgeHandle) int {
	return slices.Index(f.edges, e)
}

// VertexAttributes returns the corner attributes of v, creating an empty set
// on first use. v must be adjacent to the face.
func (f *Face) VertexAttributes(v VertexHandle) *AttributePossessor {
	if p := f.FindVertexAttributes(v); p != nil {
		return p
	}
	p := &AttributePossessor{}
	f.faceVertices = append(f.faceVertices, faceVertex{vertex: v, attributes: p})
	return p
}

// FindVertexAttributes returns the corner attributes of v, or nil if none
// were ever assigned. A nil possessor reads as empty.
func (f *Face) FindVertexAttributes(v VertexHandle) *AttributePossessor {
	for _, fv := range f.faceVertices {
		if fv.vertex == v {
			return fv.attributes
		}
	}
	return nil
}

func (f *Face) HasFaceVertex(v VertexHandle) bool {
	return f.FindVertexAttributes(v) != nil
}

func (f *Face) HasVertexAttribute(v VertexHandle, key AttributeKey) bool {
	return f.FindVertexAttributes(v).HasAttribute(key)
}

func (f *Face) EraseVertexAttribute(v VertexHandle, key AttributeKey) {
	if p := f.FindVertexAttributes(v); p != nil {
		p.EraseAttribute(key)
	}
}

// FaceVertices returns the vertices that carry corner attributes, in the
// order they were first assigned. This is not necessarily ring order.
func (f *Face) FaceVertices() []VertexHandle {
	out := make([]VertexHandle, len(f.faceVertices))
	for i, fv := range f.faceVertices {
		out[i] = fv.vertex
	}
	return out
}

func (f *Face) eraseFaceVertex(v VertexHandle) {
	f.faceVertices = slices.DeleteFunc(f.faceVertices, func(fv faceVertex) bool {
		return fv.vertex == v
	})
}

func removeHandle[H comparable](s []H, h H) []H {
	if i := slices.Index(s, h); i >= 0 {
		return slices.Delete(s, i, i+1)
	}
	return s
}

// Mesh owns its vertices, edges and faces. Elements are addressed by handle;
// a handle stays valid until its element is destroyed and is never reused.
// The mesh itself possesses attributes.
type Mesh struct {
	AttributePossessor
	keys     *AttributeKeyMap
	vertices []*Vertex
	edges    []*Edge
	faces    []*Face

	vertexCount int
	edgeCount   int
	faceCount   int
}

func NewMesh() *Mesh {
	return &Mesh{keys: NewAttributeKeyMap()}
}

// Clear drops every element and attribute key, restoring the state of a new
// mesh.
func (m *Mesh) Clear() {
	*m = Mesh{keys: NewAttributeKeyMap()}
}

// Swap exchanges the contents of two meshes.
func (m *Mesh) Swap(other *Mesh) {
	*m, *other = *other, *m
}

// CreateVertex returns a new vertex with no adjacency or attributes.
func (m *Mesh) CreateVertex() VertexHandle {
	m.vertices = append(m.vertices, &Vertex{})
	m.vertexCount++
	return VertexHandle(len(m.vertices) - 1)
}

// DestroyVertex frees v. The caller must already have unwired it from every
// adjacent edge and face.
func (m *Mesh) DestroyVertex(v VertexHandle) {
	if m.vertices[v] != nil {
		m.vertices[v] = nil
		m.vertexCount--
	}
}

// Vertex returns the vertex for h, or nil if h was destroyed.
func (m *Mesh) Vertex(h VertexHandle) *Vertex {
	if h < 0 || int(h) >= len(m.vertices) {
		return nil
	}
	return m.vertices[h]
}

func (m *Mesh) IsValidVertex(h VertexHandle) bool {
	return m.Vertex(h) != nil
}

// Vertices returns every live vertex in creation order.
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
	m.edges = append(m.edges, &Edge{})
	m.edgeCount++
	return EdgeHandle(len(m.edges) - 1)
}

// DestroyEdge frees e. The caller must already have unwired it.
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

func (m *Mesh) IsValidEdge(h EdgeHandle) bool {
	return m.Edge(h) != nil
}

// Edges returns every live edge in creation order.
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

// DestroyFace frees f. The caller must already have unwired it.
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

func (m *Mesh) IsValidFace(h FaceHandle) bool {
	return m.Face(h) != nil
}

// Faces returns every live face in creation order.
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

// GetAttributeKey returns the key for name on this mesh, creating it on
// first use. Pass AttributeTemporary to keep the attribute out of saved
// files.
func (m *Mesh) GetAttributeKey(name string, t AttributeType, flags ...AttributeFlags) AttributeKey {
	var f AttributeFlags
	for _, fl := range flags {
		f |= fl
	}
	return m.keys.GetAttributeKey(name, t, f)
}

func (m *Mesh) HasAttributeKey(name string) bool {
	return m.keys.HasAttributeKey(name)
}

func (m *Mesh) EraseAttributeKey(name string) {
	m.keys.EraseAttributeKey(name)
}

func (m *Mesh) FindAttributeNameAndKeyFromHandle(h AttributeHandle) (string, AttributeKey, bool) {
	return m.keys.FindAttributeNameAndKeyFromHandle(h)
}

// AttributeKeyMap exposes the mesh key table to readers and writers.
func (m *Mesh) AttributeKeyMap() *AttributeKeyMap {
	return m.keys
}

// Clone returns a deep copy of the mesh. Destroyed slots are compacted away,
// so handles in the copy differ from the original; adjacency and corner
// attributes are remapped accordingly.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{keys: m.keys.clone()}
	c.AttributePossessor.CopyAttributes(&m.AttributePossessor)

	vmap := make(map[VertexHandle]VertexHandle, m.vertexCount)
	emap := make(map[EdgeHandle]EdgeHandle, m.edgeCount)
	fmap := make(map[FaceHandle]FaceHandle, m.faceCount)
	for _, h := range m.Vertices() {
		vmap[h] = c.CreateVertex()
	}
	for _, h := range m.Edges() {
		emap[h] = c.CreateEdge()
	}
	for _, h := range m.Faces() {
		fmap[h] = c.CreateFace()
	}

	for old, h := range vmap {
		src, dst := m.Vertex(old), c.Vertex(h)
		dst.position = src.position
		dst.CopyAttributes(&src.AttributePossessor)
		dst.edges = remapHandles(src.edges, emap)
		dst.faces = remapHandles(src.faces, fmap)
	}
	for old, h := range emap {
		src, dst := m.Edge(old), c.Edge(h)
		dst.CopyAttributes(&src.AttributePossessor)
		dst.vertices = remapHandles(src.vertices, vmap)
		dst.faces = remapHandles(src.faces, fmap)
	}
	for old, h := range fmap {
		src, dst := m.Face(old), c.Face(h)
		dst.CopyAttributes(&src.AttributePossessor)
		dst.vertices = remapHandles(src.vertices, vmap)
		dst.edges = remapHandles(src.edges, emap)
		for _, fv := range src.faceVertices {
			p := &AttributePossessor{}
			p.CopyAttributes(fv.attributes)
			nv, ok := vmap[fv.vertex]
			if !ok {
				nv = InvalidVertex
			}
			dst.faceVertices = append(dst.faceVertices, faceVertex{vertex: nv, attributes: p})
		}
	}
	return c
}

// remapHandles translates handles through remap. Handles of destroyed
// elements have no counterpart and map to -1.
func remapHandles[H ~int32](s []H, remap map[H]H) []H {
	if len(s) == 0 {
		return nil
	}
	out := make([]H, len(s))
	for i, h := range s {
		if nh, ok := remap[h]; ok {
			out[i] = nh
		} else {
			out[i] = -1
		}
	}
	return out
}
