package meshretri

import (
	"testing"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/mesh"
)

func TestRetriangulatorEdgeSortAndWeld(t *testing.T) {
	msh, ring, f := rightTriangle()
	bottom, _ := mesh.FindEdgeConnectingVertices(msh, ring[0], ring[1])
	config := core.DefaultConfig().Retriangulator

	id := NewUniqueIdentifier()
	rf := newRetriangulatorFace(msh, f, config)
	rf.segments = []FaceLineSegment{
		// both ends share an identifier and stay apart
		NewFaceLineSegment(v3(3, 0, 0), v3(1, 0, 0), id, id),
		NewFaceLineSegment(v3(1+1e-7, 0, 0), v3(2, 2, 0), id, NewUniqueIdentifier()),
	}

	re := newRetriangulatorEdge(msh, bottom, config)
	if want := math.RelativeEpsilon(config.AbsoluteTolerance, config.RelativeTolerance, v3(0, 0, 0), v3(4, 0, 0)); re.epsilon != want {
		t.Errorf("epsilon = %g, want %g", re.epsilon, want)
	}
	for _, ep := range []endpoint{{rf, 0, 0}, {rf, 0, 1}, {rf, 1, 0}} {
		ep := ep
		p := ep.segmentPtr().WorldPosition[ep.index]
		re.addEdgePoint(EdgePoint{
			Position:   p,
			T:          re.parameter(p),
			Identifier: ep.segmentPtr().Identifier[ep.index],
			source:     &ep,
		})
	}
	re.sortAndWeld()

	points := re.EdgePoints()
	if len(points) != 2 {
		t.Fatalf("%d edge points after welding, want 2", len(points))
	}
	if points[0].T != 0.25 || points[1].T != 0.75 {
		t.Errorf("parameters %g, %g, want 0.25, 0.75", points[0].T, points[1].T)
	}
	// the second segment was moved onto the surviving point
	if got := rf.segments[1].WorldPosition[0]; got != v3(1, 0, 0) {
		t.Errorf("welded endpoint at %v, want (1, 0, 0)", got)
	}
	if got := rf.segments[0].WorldPosition[0]; got != v3(3, 0, 0) {
		t.Errorf("segment end moved to %v", got)
	}
}

func TestEndpointSameSegment(t *testing.T) {
	a, b := &RetriangulatorFace{}, &RetriangulatorFace{}
	tests := []struct {
		name string
		e, o *endpoint
		want bool
	}{
		{"same segment", &endpoint{a, 1, 0}, &endpoint{a, 1, 1}, true},
		{"other segment", &endpoint{a, 1, 0}, &endpoint{a, 2, 0}, false},
		{"other face", &endpoint{a, 1, 0}, &endpoint{b, 1, 1}, false},
		{"no source", nil, &endpoint{a, 1, 1}, false},
	}
	for _, tt := range tests {
		if got := tt.e.sameSegment(tt.o); got != tt.want {
			t.Errorf("%s: sameSegment = %v, want %v", tt.name, got, tt.want)
		}
	}
}
