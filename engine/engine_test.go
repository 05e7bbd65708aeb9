package engine

import (
	"errors"
	"testing"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/delaunay"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/mesh"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/meshretri"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/testbed"
)

func newInitialized(t *testing.T) *Engine {
	t.Helper()
	e, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Log.Level = "loud"
	if _, err := New(cfg); !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("New = %v, want ErrInvalidConfig", err)
	}
}

func TestEngineStages(t *testing.T) {
	e, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if e.Stage() != EngineStageUninitialized {
		t.Errorf("stage = %s", e.Stage())
	}
	shape := testbed.UnitSquare()
	if _, err := e.TriangulatePolygons(shape.Points, shape.Polygons, nil); !errors.Is(err, core.ErrInvalidStage) {
		t.Errorf("job before Initialize = %v, want ErrInvalidStage", err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); !errors.Is(err, core.ErrInvalidStage) {
		t.Errorf("second Initialize = %v, want ErrInvalidStage", err)
	}
	if _, err := e.TriangulatePolygons(shape.Points, shape.Polygons, nil); err != nil {
		t.Fatal(err)
	}
	if e.Stage() != EngineStageInitialized {
		t.Errorf("stage after job = %s", e.Stage())
	}
	if err := e.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if e.Stage() != EngineStageShutdown {
		t.Errorf("stage = %s", e.Stage())
	}
	if _, err := e.TriangulateMesh(testbed.CubeMesh(1)); !errors.Is(err, core.ErrInvalidStage) {
		t.Errorf("job after Shutdown = %v, want ErrInvalidStage", err)
	}
}

func TestTriangulatePolygons(t *testing.T) {
	e := newInitialized(t)
	for _, s := range testbed.Shapes() {
		t.Run(s.Name, func(t *testing.T) {
			pt, err := e.TriangulatePolygons(s.Points, s.Polygons, s.ExtraEdges)
			if err != nil {
				t.Fatal(err)
			}
			if got := len(pt.Triangles()); got != s.Triangles() {
				t.Errorf("%d triangles, want %d", got, s.Triangles())
			}
		})
	}
}

func TestTriangulatePolygonsRejectsBowtie(t *testing.T) {
	e := newInitialized(t)
	points := []math.Vec2{math.NewVec2(0, 0), math.NewVec2(1, 1), math.NewVec2(1, 0), math.NewVec2(0, 1)}
	_, err := e.TriangulatePolygons(points, []delaunay.Polygon{{Outline: []int{0, 1, 2, 3}}}, nil)
	if !errors.Is(err, core.ErrValidationFailed) {
		t.Errorf("err = %v, want ErrValidationFailed", err)
	}
	if e.Stage() != EngineStageInitialized {
		t.Errorf("stage after failed job = %s", e.Stage())
	}
}

func TestTriangulateMesh(t *testing.T) {
	e := newInitialized(t)
	cube := testbed.CubeMesh(1)
	n, err := e.TriangulateMesh(cube)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 || cube.FaceCount() != 12 || !mesh.AllFacesAreTriangles(cube) {
		t.Errorf("triangulated %d faces into %d", n, cube.FaceCount())
	}
	if !mesh.IsConsistent(cube) {
		t.Error("cube is inconsistent after triangulation")
	}
}

func TestRetriangulateMesh(t *testing.T) {
	e := newInitialized(t)
	msh := mesh.NewMesh()
	ring := make([]mesh.VertexHandle, 3)
	for i, p := range []math.Vec3{math.NewVec3(0, 0, 0), math.NewVec3(4, 0, 0), math.NewVec3(0, 4, 0)} {
		ring[i] = msh.CreateVertex()
		msh.Vertex(ring[i]).SetPosition(p)
	}
	f, _ := mesh.CreateFaceAndEdgesFromVertices(msh, ring)

	r := e.NewRetriangulator(msh)
	segment := meshretri.NewFaceLineSegment(math.NewVec3(2, 0, 0), math.NewVec3(0, 2, 0),
		meshretri.NewUniqueIdentifier(), meshretri.NewUniqueIdentifier())
	if err := r.AddFaceLineSegmentToFace(segment, f); err != nil {
		t.Fatal(err)
	}
	if err := e.RetriangulateMesh(r); err != nil {
		t.Fatal(err)
	}
	if msh.FaceCount() != 3 || !mesh.AllFacesAreTriangles(msh) || !mesh.IsConsistent(msh) {
		t.Errorf("retriangulated into %d faces", msh.FaceCount())
	}
}
