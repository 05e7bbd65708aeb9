package mesh

import (
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// DeleteOrphanedElements deletes edges with no faces and then vertices with
// no edges or faces. It returns how many of each were deleted.
func DeleteOrphanedElements(m *Mesh) (edges, vertices int) {
	for _, e := range m.Edges() {
		if m.Edge(e).AdjacentFaceCount() == 0 {
			DeleteEdge(m, e)
			edges++
		}
	}
	for _, v := range m.Vertices() {
		if VertexIsOrphaned(m, v) {
			m.DestroyVertex(v)
			vertices++
		}
	}
	return edges, vertices
}

// AllFacesAreTriangles reports whether every face has three vertices.
func AllFacesAreTriangles(m *Mesh) bool {
	for _, f := range m.Faces() {
		if !FaceIsTriangle(m, f) {
			return false
		}
	}
	return true
}

// ComputeBoundingBox returns the box around every vertex of the mesh.
func ComputeBoundingBox(m *Mesh) math.BBox3 {
	box := math.NewBBox3Empty()
	for _, v := range m.Vertices() {
		box.ExtendBy(m.Vertex(v).Position())
	}
	return box
}

// Transform applies mat to every vertex position. Normal attributes on
// vertices and face corners are transformed by the inverse transpose and
// renormalized.
func Transform(m *Mesh, mat math.Mat4) {
	normalMatrix := mat.Inverse().Transposed()
	var normalKey AttributeKey
	hasNormals := m.HasAttributeKey(Normal3Attribute)
	if hasNormals {
		normalKey = Normal3Key(m)
	}
	transformNormal := func(p *AttributePossessor) {
		if hasNormals && p.HasAttribute(normalKey) {
			p.SetUnitVec3(normalKey, normalMatrix.TransformVector(p.GetUnitVec3(normalKey)))
		}
	}

	for _, v := range m.Vertices() {
		vertex := m.Vertex(v)
		vertex.SetPosition(mat.TransformPoint(vertex.Position()))
		transformNormal(&vertex.AttributePossessor)
	}
	for _, f := range m.Faces() {
		face := m.Face(f)
		for _, fv := range face.faceVertices {
			transformNormal(fv.attributes)
		}
	}
}

// RemoveAttributeFromMeshAndAllElements erases the attribute stored under
// key from the mesh, every element and every face corner.
func RemoveAttributeFromMeshAndAllElements(m *Mesh, key AttributeKey) {
	m.EraseAttribute(key)
	for _, v := range m.Vertices() {
		m.Vertex(v).EraseAttribute(key)
	}
	for _, e := range m.Edges() {
		m.Edge(e).EraseAttribute(key)
	}
	for _, f := range m.Faces() {
		face := m.Face(f)
		face.EraseAttribute(key)
		for _, fv := range face.faceVertices {
			fv.attributes.EraseAttribute(key)
		}
	}
}
