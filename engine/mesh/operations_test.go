package mesh

import (
	m "math"
	"testing"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

func TestSplitEdgeInterpolatesAttributes(t *testing.T) {
	mesh, f, ring := polygonMesh(v3(0, 0, 0), v3(2, 0, 0), v3(0, 2, 0))
	weight := mesh.GetAttributeKey("weight", AttributeFloat)
	crease := mesh.GetAttributeKey("crease", AttributeBool)
	uv := TexCoord2Key(mesh)

	mesh.Vertex(ring[0]).SetFloat(weight, 0)
	mesh.Vertex(ring[1]).SetFloat(weight, 2)
	e, _ := FindEdgeConnectingVertices(mesh, ring[0], ring[1])
	mesh.Edge(e).SetBool(crease, true)
	face := mesh.Face(f)
	face.VertexAttributes(ring[0]).SetVec2(uv, math.NewVec2(0, 0))
	face.VertexAttributes(ring[1]).SetVec2(uv, math.NewVec2(1, 0))
	face.VertexAttributes(ring[2]).SetVec2(uv, math.NewVec2(0, 1))

	nv, ne := SplitEdge(mesh, e, v3(1, 0, 0))
	requireConsistent(t, mesh)

	if got := mesh.Vertex(nv).GetFloat(weight); got != 1 {
		t.Errorf("interpolated weight = %v, want 1", got)
	}
	if !mesh.Edge(ne).GetBool(crease) {
		t.Error("new edge did not inherit the crease flag")
	}
	if got := face.FindVertexAttributes(nv).GetVec2(uv); !got.Equivalent(math.NewVec2(0.5, 0), 1e-12) {
		t.Errorf("corner uv = %v, want (0.5, 0)", got)
	}
	if got := face.AdjacentVertices(); len(got) != 4 || got[1] != nv {
		t.Errorf("ring = %v, want the new vertex after %d", got, ring[0])
	}
	if !mesh.Edge(e).HasAdjacentVertex(nv) || !mesh.Edge(ne).HasAdjacentVertex(ring[1]) {
		t.Error("split edges have the wrong endpoints")
	}
}

func TestDeleteFace(t *testing.T) {
	mesh, f, _ := unitSquare()
	DeleteFace(mesh, f, false)
	if mesh.FaceCount() != 0 || mesh.EdgeCount() != 4 || mesh.VertexCount() != 4 {
		t.Fatalf("got %d/%d/%d elements", mesh.VertexCount(), mesh.EdgeCount(), mesh.FaceCount())
	}
	edges, vertices := DeleteOrphanedElements(mesh)
	if edges != 4 || vertices != 4 {
		t.Errorf("DeleteOrphanedElements = %d, %d, want 4, 4", edges, vertices)
	}

	mesh, f, _ = unitSquare()
	DeleteFace(mesh, f, true)
	if mesh.FaceCount() != 0 || mesh.EdgeCount() != 0 || mesh.VertexCount() != 0 {
		t.Errorf("orphans left behind: %d/%d/%d", mesh.VertexCount(), mesh.EdgeCount(), mesh.FaceCount())
	}
}

func TestDeleteEdgeDeletesFaces(t *testing.T) {
	mesh, f, ring := unitSquare()
	TriangulateQuadrilateralFace(mesh, f)
	if mesh.FaceCount() != 2 {
		t.Fatalf("got %d faces, want 2", mesh.FaceCount())
	}
	diagonal, ok := FindEdgeConnectingVertices(mesh, ring[0], ring[2])
	if !ok {
		diagonal, _ = FindEdgeConnectingVertices(mesh, ring[1], ring[3])
	}
	DeleteEdge(mesh, diagonal)
	if mesh.FaceCount() != 0 || mesh.EdgeCount() != 4 || mesh.VertexCount() != 4 {
		t.Errorf("got %d/%d/%d elements", mesh.VertexCount(), mesh.EdgeCount(), mesh.FaceCount())
	}
}

func TestDeleteVertex(t *testing.T) {
	mesh, f, ring := unitSquare()
	TriangulateQuadrilateralFace(mesh, f)
	DeleteVertex(mesh, ring[0])
	if mesh.IsValidVertex(ring[0]) {
		t.Fatal("vertex still valid")
	}
	for _, e := range mesh.Edges() {
		if mesh.Edge(e).HasAdjacentVertex(ring[0]) {
			t.Errorf("edge %d still references the deleted vertex", e)
		}
	}
	for _, face := range mesh.Faces() {
		if mesh.Face(face).HasAdjacentVertex(ring[0]) {
			t.Errorf("face %d still references the deleted vertex", face)
		}
	}
}

func TestReplaceFaceWithTrianglesCopiesAttributes(t *testing.T) {
	mesh, f, ring := unitSquare()
	material := MaterialIndexKey(mesh)
	normal := Normal3Key(mesh)
	mesh.Face(f).SetInt(material, 7)
	for _, v := range ring {
		mesh.Face(f).VertexAttributes(v).SetUnitVec3(normal, v3(0, 0, 1))
	}

	faces, created := ReplaceFaceWithTriangles(mesh, f, [][3]VertexHandle{
		{ring[0], ring[1], ring[2]},
		{ring[0], ring[2], ring[3]},
	})
	requireConsistent(t, mesh)

	if len(faces) != 2 || len(created) != 1 {
		t.Fatalf("got %d faces and %d new edges, want 2 and 1", len(faces), len(created))
	}
	if mesh.IsValidFace(f) {
		t.Error("replaced face is still valid")
	}
	if !AllFacesAreTriangles(mesh) {
		t.Error("not every face is a triangle")
	}
	for _, nf := range faces {
		face := mesh.Face(nf)
		if face.GetInt(material) != 7 {
			t.Errorf("face %d material = %d, want 7", nf, face.GetInt(material))
		}
		for _, v := range face.AdjacentVertices() {
			if !face.HasVertexAttribute(v, normal) {
				t.Errorf("face %d corner %d lost its normal", nf, v)
			}
		}
	}
}

func TestTriangulateQuadrilateralFace(t *testing.T) {
	tests := []struct {
		name     string
		points   []math.Vec3
		diagonal [2]int
	}{
		{"kite uses the short diagonal", []math.Vec3{v3(0, 0, 0), v3(2, -1, 0), v3(4, 0, 0), v3(2, 1, 0)}, [2]int{1, 3}},
		{"dart avoids the outside diagonal", []math.Vec3{v3(0, 0, 0), v3(4, -1, 0), v3(3.5, 0, 0), v3(4, 1, 0)}, [2]int{0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh, f, ring := polygonMesh(tt.points...)
			normal := GetFaceGeometricNormal(mesh, f)
			faces := TriangulateQuadrilateralFace(mesh, f)
			requireConsistent(t, mesh)
			if len(faces) != 2 {
				t.Fatalf("got %d faces, want 2", len(faces))
			}
			if _, ok := FindEdgeConnectingVertices(mesh, ring[tt.diagonal[0]], ring[tt.diagonal[1]]); !ok {
				t.Errorf("diagonal %v missing", tt.diagonal)
			}
			for _, nf := range faces {
				if GetFaceGeometricNormal(mesh, nf).Dot(normal) <= 0 {
					t.Errorf("face %d is inverted", nf)
				}
			}
		})
	}
}

func TestFaceGeometry(t *testing.T) {
	mesh, f, _ := polygonMesh(v3(0, 0, 1), v3(2, 0, 1), v3(2, 2, 1), v3(0, 2, 1))
	if got := GetFaceArea(mesh, f); got != 4 {
		t.Errorf("area = %v, want 4", got)
	}
	if got := GetFaceGeometricNormal(mesh, f); got != v3(0, 0, 1) {
		t.Errorf("normal = %v, want +z", got)
	}
	if got := GetFaceCentroid(mesh, f); got != v3(1, 1, 1) {
		t.Errorf("centroid = %v", got)
	}
	box := GetFaceBoundingBox(mesh, f)
	if box.Min != v3(0, 0, 1) || box.Max != v3(2, 2, 1) {
		t.Errorf("bounding box = %+v", box)
	}
	if e := mesh.Face(f).AdjacentEdges()[0]; GetEdgeLength(mesh, e) != 2 {
		t.Errorf("edge length = %v, want 2", GetEdgeLength(mesh, e))
	}
}

func TestTransform(t *testing.T) {
	mesh, _, ring := unitSquare()
	normal := Normal3Key(mesh)
	mesh.Vertex(ring[2]).SetUnitVec3(normal, v3(1, 1, 0))

	Transform(mesh, math.NewMat4Scale(v3(2, 1, 1)).Mul(math.NewMat4Translation(v3(1, 2, 3))))

	if got := mesh.Vertex(ring[2]).Position(); !got.Equivalent(v3(3, 3, 3), 1e-12) {
		t.Errorf("position = %v, want (3, 3, 3)", got)
	}
	want := v3(0.5, 1, 0).MulScalar(1 / m.Sqrt(1.25))
	if got := mesh.Vertex(ring[2]).GetUnitVec3(normal); !got.Equivalent(want, 1e-9) {
		t.Errorf("normal = %v, want %v", got, want)
	}
	box := ComputeBoundingBox(mesh)
	if !box.Min.Equivalent(v3(1, 2, 3), 1e-12) || !box.Max.Equivalent(v3(3, 3, 3), 1e-12) {
		t.Errorf("bounding box = %+v", box)
	}
}
