package mesh

import (
	"fmt"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/delaunay"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// Triangulator replaces every face of a mesh that has more than three
// vertices with triangles.
type Triangulator struct {
	mesh   *Mesh
	config core.DelaunayConfig
}

func NewTriangulator(m *Mesh, config core.DelaunayConfig) *Triangulator {
	return &Triangulator{mesh: m, config: config}
}

// Triangulate retriangulates every face with more than three vertices and
// returns how many faces were replaced. Quadrilaterals are split along a
// diagonal; larger faces are projected onto the plane most nearly
// perpendicular to their normal and triangulated there.
//
// Faces the triangulation engine cannot handle, such as self-intersecting
// rings, are escalated through core.Fatal.
func (t *Triangulator) Triangulate() (int, error) {
	count := 0
	for _, f := range t.mesh.Faces() {
		face := t.mesh.Face(f)
		switch n := face.AdjacentVertexCount(); {
		case n <= 3:
			continue
		case n == 4:
			TriangulateQuadrilateralFace(t.mesh, f)
		default:
			if err := t.triangulatePolygonFace(f); err != nil {
				return count, err
			}
		}
		count++
	}
	if count > 0 {
		core.LogDebug("triangulated %d faces", count)
	}
	return count, nil
}

func (t *Triangulator) triangulatePolygonFace(f FaceHandle) error {
	ring := append([]VertexHandle(nil), t.mesh.Face(f).vertices...)
	axis0, axis1 := math.PrimaryAxesMostOrthogonalToVector(GetFaceGeometricNormal(t.mesh, f))

	points := make([]math.Vec2, len(ring))
	outline := make([]int, len(ring))
	for i, v := range ring {
		points[i] = t.mesh.Vertex(v).Position().Project(axis0, axis1)
		outline[i] = i
	}

	pt := delaunay.NewPolygonTriangulator(points, []delaunay.Polygon{{Outline: outline}}, nil, t.config)
	if ok, details := pt.Validate(); !ok {
		err := fmt.Errorf("%w: face %d with %d vertices: %s", core.ErrUnsupportedFace, f, len(ring), details)
		core.Fatal(err)
		return err
	}
	if err := pt.Triangulate(); err != nil {
		return err
	}

	triangles := make([][3]VertexHandle, 0, len(pt.Triangles()))
	for _, tri := range pt.Triangles() {
		triangles = append(triangles, [3]VertexHandle{ring[tri.Points[0]], ring[tri.Points[1]], ring[tri.Points[2]]})
	}
	ReplaceFaceWithTriangles(t.mesh, f, triangles)
	return nil
}
