package meshretri

import (
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/aabb"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/exact"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/mesh"
)

// identifierSnapFactor scales the face epsilon when an endpoint is moved
// onto the vertex or edge named by its identifier.
const identifierSnapFactor = 10

// RetriangulatorFace holds the segments added to one face, along with the
// face as it was before any edge was split.
type RetriangulatorFace struct {
	face      mesh.FaceHandle
	segments  []FaceLineSegment
	ring      []mesh.VertexHandle
	ringEdges []mesh.EdgeHandle
	positions []math.Vec3
	axis0     int
	axis1     int
	epsilon   float64
}

func newRetriangulatorFace(m *mesh.Mesh, f mesh.FaceHandle, config core.RetriangulatorConfig) *RetriangulatorFace {
	face := m.Face(f)
	rf := &RetriangulatorFace{
		face:      f,
		ring:      append([]mesh.VertexHandle(nil), face.AdjacentVertices()...),
		ringEdges: append([]mesh.EdgeHandle(nil), face.AdjacentEdges()...),
		positions: mesh.GetFaceVertexPositions(m, f),
	}
	rf.axis0, rf.axis1 = math.PrimaryAxesMostOrthogonalToVector(mesh.GetFaceGeometricNormal(m, f))
	rf.epsilon = math.RelativeEpsilon(config.AbsoluteTolerance, config.RelativeTolerance, rf.positions...)
	return rf
}

func (rf *RetriangulatorFace) Face() mesh.FaceHandle {
	return rf.face
}

func (rf *RetriangulatorFace) Segments() []FaceLineSegment {
	return rf.segments
}

func (rf *RetriangulatorFace) Epsilon() float64 {
	return rf.epsilon
}

func (rf *RetriangulatorFace) project(p math.Vec3) math.Vec2 {
	return p.Project(rf.axis0, rf.axis1)
}

func (rf *RetriangulatorFace) ringIndex(v mesh.VertexHandle) int {
	for k, rv := range rf.ring {
		if rv == v {
			return k
		}
	}
	return -1
}

func (rf *RetriangulatorFace) ringEdgeIndex(e mesh.EdgeHandle) int {
	for k, re := range rf.ringEdges {
		if re == e {
			return k
		}
	}
	return -1
}

// edgeItem is a mesh edge stored in the spatial index.
type edgeItem struct {
	edge mesh.EdgeHandle
	box  math.BBox3
}

func (e edgeItem) BoundingBox() math.BBox3 {
	return e.box
}

func newEdgeTree(m *mesh.Mesh) *aabb.Tree[edgeItem] {
	items := make([]edgeItem, 0, m.EdgeCount())
	for _, e := range m.Edges() {
		items = append(items, edgeItem{edge: e, box: mesh.GetEdgeBoundingBox(m, e)})
	}
	return aabb.New(items)
}

// snapEndpoints moves every endpoint that lies near the boundary of the face
// exactly onto it. Endpoints near a face vertex take its position. Endpoints
// near a face edge are projected onto the edge and remember it.
func (rf *RetriangulatorFace) snapEndpoints(m *mesh.Mesh, tree *aabb.Tree[edgeItem]) {
	for i := range rf.segments {
		s := &rf.segments[i]
		for k := 0; k < 2; k++ {
			rf.snapEndpoint(m, tree, s, k)
		}
	}
}

func (rf *RetriangulatorFace) snapEndpoint(m *mesh.Mesh, tree *aabb.Tree[edgeItem], s *FaceLineSegment, k int) {
	p := s.WorldPosition[k]
	hint := s.Edge[k]
	s.Edge[k] = mesh.InvalidEdge

	if v, ok := s.Identifier[k].Vertex(); ok {
		if idx := rf.ringIndex(v); idx >= 0 && rf.positions[idx].Distance(p) <= identifierSnapFactor*rf.epsilon {
			s.WorldPosition[k] = rf.positions[idx]
			return
		}
	}
	if e, ok := s.Identifier[k].Edge(); ok {
		hint = e
	}
	if hint != mesh.InvalidEdge && rf.ringEdgeIndex(hint) >= 0 {
		if rf.snapToEdge(m, s, k, hint, identifierSnapFactor*rf.epsilon) {
			return
		}
	}

	for _, q := range rf.positions {
		if q.Distance(p) <= rf.epsilon {
			s.WorldPosition[k] = q
			return
		}
	}

	best := mesh.InvalidEdge
	bestDistance := rf.epsilon
	query := math.NewBBox3FromPoints(p).Expand(rf.epsilon)
	tree.ApplyToBoundingBoxIntersection(query, func(item edgeItem) bool {
		if rf.ringEdgeIndex(item.edge) < 0 {
			return false
		}
		p0, p1 := mesh.GetEdgeVertexPositions(m, item.edge)
		d := p0.Lerp(p1, math.ClosestPointOnSegment(p0, p1, p)).Distance(p)
		if d <= bestDistance {
			best, bestDistance = item.edge, d
		}
		return false
	})
	if best != mesh.InvalidEdge {
		rf.snapToEdge(m, s, k, best, rf.epsilon)
	}
}

// snapToEdge projects endpoint k onto e if it is within tolerance of it.
// Projections that land within epsilon of an edge vertex snap to the vertex.
func (rf *RetriangulatorFace) snapToEdge(m *mesh.Mesh, s *FaceLineSegment, k int, e mesh.EdgeHandle, tolerance float64) bool {
	p0, p1 := mesh.GetEdgeVertexPositions(m, e)
	p := s.WorldPosition[k]
	q := p0.Lerp(p1, math.ClosestPointOnSegment(p0, p1, p))
	if q.Distance(p) > tolerance {
		return false
	}
	switch {
	case q.Distance(p0) <= rf.epsilon:
		s.WorldPosition[k] = p0
	case q.Distance(p1) <= rf.epsilon:
		s.WorldPosition[k] = p1
	default:
		s.WorldPosition[k] = q
		s.Edge[k] = e
	}
	return true
}

// boundaryEdges returns the ring edges that endpoint k of s lies on.
func (rf *RetriangulatorFace) boundaryEdges(s *FaceLineSegment, k int) []int {
	if s.HasEdge(k) {
		if idx := rf.ringEdgeIndex(s.Edge[k]); idx >= 0 {
			return []int{idx}
		}
	}
	n := len(rf.positions)
	for idx, q := range rf.positions {
		if q == s.WorldPosition[k] {
			return []int{(idx + n - 1) % n, idx}
		}
	}
	return nil
}

// collapseSegments removes segments that are degenerate once projected and
// segments that run along the face boundary, which the face ring already
// represents.
func (rf *RetriangulatorFace) collapseSegments() int {
	kept := rf.segments[:0]
	removed := 0
	for _, s := range rf.segments {
		if rf.isCollapsed(&s) {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	rf.segments = kept
	return removed
}

func (rf *RetriangulatorFace) isCollapsed(s *FaceLineSegment) bool {
	if !s.Identifier[0].IsUndefined() && s.Identifier[0] == s.Identifier[1] {
		return true
	}
	if rf.project(s.WorldPosition[0]) == rf.project(s.WorldPosition[1]) {
		return true
	}
	if s.IsColinearWithExistingMeshEdge() {
		return true
	}
	for _, a := range rf.boundaryEdges(s, 0) {
		for _, b := range rf.boundaryEdges(s, 1) {
			if a == b {
				return true
			}
		}
	}
	return false
}

// splitIntersectingSegments splits segments until no two of them cross or
// touch anywhere other than at shared endpoints. Crossings get a new unique
// endpoint; an endpoint lying on another segment splits that segment at the
// endpoint, keeping its identifier.
func (rf *RetriangulatorFace) splitIntersectingSegments() int {
	splits := 0
	limit := 4*len(rf.segments)*len(rf.segments) + 16
	for splits < limit && rf.splitFirstIntersection() {
		splits++
	}
	if splits == limit {
		core.LogWarn("face %d: gave up splitting segments after %d splits", rf.face, splits)
	}
	return splits
}

func (rf *RetriangulatorFace) splitFirstIntersection() bool {
	for i := 0; i < len(rf.segments); i++ {
		for j := i + 1; j < len(rf.segments); j++ {
			if rf.splitPair(i, j) {
				return true
			}
		}
	}
	return false
}

func (rf *RetriangulatorFace) splitPair(i, j int) bool {
	a, b := rf.segments[i], rf.segments[j]
	a0, a1 := rf.project(a.WorldPosition[0]), rf.project(a.WorldPosition[1])
	b0, b1 := rf.project(b.WorldPosition[0]), rf.project(b.WorldPosition[1])

	for k, bk := range [2]math.Vec2{b0, b1} {
		if bk != a0 && bk != a1 && exact.LineSegmentIntersectsPoint2D(a0, a1, bk) {
			rf.splitSegment(i, b.WorldPosition[k], b.Identifier[k], b.IsDegreeZeroDiscontinuity[k])
			return true
		}
	}
	for k, ak := range [2]math.Vec2{a0, a1} {
		if ak != b0 && ak != b1 && exact.LineSegmentIntersectsPoint2D(b0, b1, ak) {
			rf.splitSegment(j, a.WorldPosition[k], a.Identifier[k], a.IsDegreeZeroDiscontinuity[k])
			return true
		}
	}
	if !exact.LineSegmentsCross2D(a0, a1, b0, b1) {
		return false
	}

	da, db := a1.Sub(a0), b1.Sub(b0)
	t := b0.Sub(a0).Cross(db) / da.Cross(db)
	x := a.WorldPosition[0].Lerp(a.WorldPosition[1], t)
	if xp := rf.project(x); xp == a0 || xp == a1 || xp == b0 || xp == b1 {
		core.LogWarn("face %d: crossing of segments %d and %d rounds onto an endpoint", rf.face, i, j)
		return false
	}
	id := NewUniqueIdentifier()
	rf.splitSegment(i, x, id, false)
	rf.splitSegment(j, x, id, false)
	return true
}

// splitSegment shortens segment i to end at p and appends a new segment from
// p to the old end.
func (rf *RetriangulatorFace) splitSegment(i int, p math.Vec3, id EndpointIdentifier, isDegreeZero bool) {
	s := &rf.segments[i]
	tail := FaceLineSegment{
		WorldPosition:             [2]math.Vec3{p, s.WorldPosition[1]},
		Identifier:                [2]EndpointIdentifier{id, s.Identifier[1]},
		Edge:                      [2]mesh.EdgeHandle{mesh.InvalidEdge, s.Edge[1]},
		IsDegreeZeroDiscontinuity: [2]bool{isDegreeZero, s.IsDegreeZeroDiscontinuity[1]},
	}
	s.WorldPosition[1] = p
	s.Identifier[1] = id
	s.Edge[1] = mesh.InvalidEdge
	s.IsDegreeZeroDiscontinuity[1] = isDegreeZero
	rf.segments = append(rf.segments, tail)
}
