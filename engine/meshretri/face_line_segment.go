package meshretri

import (
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/mesh"
)

// IsDegreeZeroDiscontinuityAttribute marks vertices at which the shading
// function is itself discontinuous.
const IsDegreeZeroDiscontinuityAttribute = "isDegreeZeroDiscontinuity"

func IsDegreeZeroDiscontinuityKey(m *mesh.Mesh) mesh.AttributeKey {
	return m.GetAttributeKey(IsDegreeZeroDiscontinuityAttribute, mesh.AttributeBool)
}

// FaceLineSegment is a line segment that lies in the plane of a face. Edge
// holds, for each endpoint, the face edge the endpoint lies on, or
// mesh.InvalidEdge if it is interior to the face or at a face vertex.
type FaceLineSegment struct {
	WorldPosition             [2]math.Vec3
	Identifier                [2]EndpointIdentifier
	Edge                      [2]mesh.EdgeHandle
	IsDegreeZeroDiscontinuity [2]bool
}

func NewFaceLineSegment(p0, p1 math.Vec3, id0, id1 EndpointIdentifier) FaceLineSegment {
	return FaceLineSegment{
		WorldPosition: [2]math.Vec3{p0, p1},
		Identifier:    [2]EndpointIdentifier{id0, id1},
		Edge:          [2]mesh.EdgeHandle{mesh.InvalidEdge, mesh.InvalidEdge},
	}
}

func (s *FaceLineSegment) HasEdge(endpoint int) bool {
	return s.Edge[endpoint] != mesh.InvalidEdge
}

// IsColinearWithExistingMeshEdge reports whether both endpoints lie on the
// same mesh edge.
func (s *FaceLineSegment) IsColinearWithExistingMeshEdge() bool {
	return s.HasEdge(0) && s.Edge[0] == s.Edge[1]
}

// endpoint is a reference to one end of a segment of a face.
type endpoint struct {
	face    *RetriangulatorFace
	segment int
	index   int
}

func (e endpoint) segmentPtr() *FaceLineSegment {
	return &e.face.segments[e.segment]
}

// sameSegment reports whether both endpoints belong to one segment.
func (e *endpoint) sameSegment(other *endpoint) bool {
	return e != nil && other != nil && e.face == other.face && e.segment == other.segment
}

// EdgePoint is a point that some face wants inserted on a mesh edge. T is the
// parameter of the point from the first to the second vertex of the edge.
type EdgePoint struct {
	Position                  math.Vec3
	T                         float64
	Identifier                EndpointIdentifier
	IsDegreeZeroDiscontinuity bool

	// nil for points not contributed by a face segment
	source *endpoint
}
