package meshretri

import (
	"golang.org/x/exp/slices"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/mesh"
)

// RetriangulatorEdge collects the points that faces want inserted on one
// mesh edge.
type RetriangulatorEdge struct {
	edge     mesh.EdgeHandle
	vertices [2]mesh.VertexHandle
	ends     [2]math.Vec3
	epsilon  float64
	points   []EdgePoint
}

func newRetriangulatorEdge(m *mesh.Mesh, e mesh.EdgeHandle, config core.RetriangulatorConfig) *RetriangulatorEdge {
	p0, p1 := mesh.GetEdgeVertexPositions(m, e)
	vertices := m.Edge(e).AdjacentVertices()
	return &RetriangulatorEdge{
		edge:     e,
		vertices: [2]mesh.VertexHandle{vertices[0], vertices[1]},
		ends:     [2]math.Vec3{p0, p1},
		epsilon:  math.RelativeEpsilon(config.AbsoluteTolerance, config.RelativeTolerance, p0, p1),
	}
}

func (re *RetriangulatorEdge) Edge() mesh.EdgeHandle {
	return re.edge
}

func (re *RetriangulatorEdge) EdgePoints() []EdgePoint {
	return re.points
}

// parameter returns the parameter of the point on the edge closest to p.
func (re *RetriangulatorEdge) parameter(p math.Vec3) float64 {
	return math.ClosestPointOnSegment(re.ends[0], re.ends[1], p)
}

func (re *RetriangulatorEdge) addEdgePoint(point EdgePoint) {
	re.points = append(re.points, point)
}

// sortAndWeld orders the points along the edge and merges neighbors that
// share an identifier or a parameter. Merged face endpoints are moved onto
// the surviving point.
func (re *RetriangulatorEdge) sortAndWeld() {
	slices.SortStableFunc(re.points, func(a, b EdgePoint) int {
		switch {
		case a.T < b.T:
			return -1
		case a.T > b.T:
			return 1
		}
		return 0
	})

	// Same identifier anywhere along the edge. The two ends of one segment
	// are never welded to each other.
	seen := make(map[EndpointIdentifier]int)
	kept := re.points[:0]
	for _, p := range re.points {
		if !p.Identifier.IsUndefined() {
			if k, ok := seen[p.Identifier]; ok && !kept[k].source.sameSegment(p.source) {
				re.merge(&kept[k], p)
				continue
			} else if !ok {
				seen[p.Identifier] = len(kept)
			}
		}
		kept = append(kept, p)
	}
	re.points = kept

	// Equal parameters.
	kept = re.points[:0]
	for _, p := range re.points {
		if n := len(kept); n > 0 && (kept[n-1].T == p.T || kept[n-1].Position == p.Position) {
			re.merge(&kept[n-1], p)
			continue
		}
		kept = append(kept, p)
	}
	re.points = kept
}

func (re *RetriangulatorEdge) merge(into *EdgePoint, p EdgePoint) {
	if d := into.Position.Distance(p.Position); d > re.epsilon {
		core.LogWarn("edge %d: welding %s and %s, %g apart, beyond tolerance %g",
			re.edge, into.Identifier, p.Identifier, d, re.epsilon)
	}
	into.IsDegreeZeroDiscontinuity = into.IsDegreeZeroDiscontinuity || p.IsDegreeZeroDiscontinuity
	if p.source != nil {
		s := p.source.segmentPtr()
		s.WorldPosition[p.source.index] = into.Position
		s.Identifier[p.source.index] = into.Identifier
		s.IsDegreeZeroDiscontinuity[p.source.index] = into.IsDegreeZeroDiscontinuity
	}
	if into.source != nil && into.IsDegreeZeroDiscontinuity {
		into.source.segmentPtr().IsDegreeZeroDiscontinuity[into.source.index] = true
	}
}

// splitMeshEdge inserts a vertex for every edge point, walking from the
// first vertex of the edge to the second. It returns the new vertices keyed
// by the identifier of the point they were created for.
func (re *RetriangulatorEdge) splitMeshEdge(m *mesh.Mesh, isDegreeZero mesh.AttributeKey) map[EndpointIdentifier]mesh.VertexHandle {
	created := make(map[EndpointIdentifier]mesh.VertexHandle, len(re.points))
	remaining := re.edge
	last := re.ends[0]
	for _, p := range re.points {
		if p.Position == last || p.Position == re.ends[0] || p.Position == re.ends[1] {
			continue
		}
		nv, ne := mesh.SplitEdge(m, remaining, p.Position)
		m.Vertex(nv).EraseAttribute(isDegreeZero)
		if p.IsDegreeZeroDiscontinuity {
			m.Vertex(nv).SetBool(isDegreeZero, true)
		}
		if !p.Identifier.IsUndefined() {
			created[p.Identifier] = nv
		}
		remaining = ne
		last = p.Position
	}
	return created
}
