package meshretri

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/delaunay"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/mesh"
)

// Retriangulator splits mesh faces along line segments added to them. Each
// face is retriangulated with its boundary and its segments as constraints.
// Segment endpoints that carry equal identifiers become a single vertex, even
// when they were added to different faces.
type Retriangulator struct {
	mesh         *mesh.Mesh
	config       core.RetriangulatorConfig
	delaunay     core.DelaunayConfig
	newEdgeKey   mesh.AttributeKey
	isDegreeZero mesh.AttributeKey

	faces map[mesh.FaceHandle]*RetriangulatorFace
	order []mesh.FaceHandle
	edges map[mesh.EdgeHandle]*RetriangulatorEdge

	vertexByIdentifier map[EndpointIdentifier]mesh.VertexHandle
}

func NewRetriangulator(m *mesh.Mesh, config *core.Config) *Retriangulator {
	r := &Retriangulator{
		mesh:         m,
		config:       config.Retriangulator,
		delaunay:     config.Delaunay,
		isDegreeZero: IsDegreeZeroDiscontinuityKey(m),
	}
	r.reset()
	return r
}

func (r *Retriangulator) reset() {
	r.faces = make(map[mesh.FaceHandle]*RetriangulatorFace)
	r.order = nil
	r.edges = make(map[mesh.EdgeHandle]*RetriangulatorEdge)
	r.vertexByIdentifier = make(map[EndpointIdentifier]mesh.VertexHandle)
}

func (r *Retriangulator) Mesh() *mesh.Mesh {
	return r.mesh
}

func (r *Retriangulator) AbsoluteTolerance() float64 {
	return r.config.AbsoluteTolerance
}

func (r *Retriangulator) SetAbsoluteTolerance(tolerance float64) {
	r.config.AbsoluteTolerance = tolerance
}

func (r *Retriangulator) RelativeTolerance() float64 {
	return r.config.RelativeTolerance
}

func (r *Retriangulator) SetRelativeTolerance(tolerance float64) {
	r.config.RelativeTolerance = tolerance
}

// SetNewEdgeBooleanAttributeKey makes Retriangulate set the given boolean
// attribute to true on every edge it creates. Pass an undefined key to stop.
func (r *Retriangulator) SetNewEdgeBooleanAttributeKey(key mesh.AttributeKey) {
	if key.IsDefined() && key.Type != mesh.AttributeBool {
		panic(fmt.Sprintf("new edge attribute must be bool, not %s", key.Type))
	}
	r.newEdgeKey = key
}

func (r *Retriangulator) NewEdgeBooleanAttributeKey() mesh.AttributeKey {
	return r.newEdgeKey
}

// AddFaceLineSegmentToFace queues a segment lying in the plane of f. The
// tolerances in effect when a face receives its first segment apply to every
// segment of that face.
func (r *Retriangulator) AddFaceLineSegmentToFace(segment FaceLineSegment, f mesh.FaceHandle) error {
	if !r.mesh.IsValidFace(f) {
		return fmt.Errorf("%w: face %d does not exist", core.ErrUnsupportedFace, f)
	}
	rf, ok := r.faces[f]
	if !ok {
		rf = newRetriangulatorFace(r.mesh, f, r.config)
		r.faces[f] = rf
		r.order = append(r.order, f)
	}
	rf.segments = append(rf.segments, segment)
	return nil
}

// FaceLineSegmentCount returns the number of segments queued for f.
func (r *Retriangulator) FaceLineSegmentCount(f mesh.FaceHandle) int {
	if rf, ok := r.faces[f]; ok {
		return len(rf.segments)
	}
	return 0
}

// Retriangulate splits every face that received segments, and every face
// whose edges had to be split along the way, then forgets all segments.
func (r *Retriangulator) Retriangulate() error {
	defer r.reset()
	if len(r.order) == 0 {
		return nil
	}
	faces := r.orderedFaces()
	r.filter(faces)

	affected := make(map[mesh.FaceHandle]bool)
	for _, rf := range faces {
		affected[rf.face] = true
	}
	for _, e := range r.orderedEdges() {
		for _, f := range r.mesh.Edge(e.edge).AdjacentFaces() {
			affected[f] = true
		}
		for id, v := range e.splitMeshEdge(r.mesh, r.isDegreeZero) {
			r.vertexByIdentifier[id] = v
		}
	}

	handles := make([]mesh.FaceHandle, 0, len(affected))
	for f := range affected {
		handles = append(handles, f)
	}
	slices.Sort(handles)

	split := 0
	for _, f := range handles {
		rf, ok := r.faces[f]
		if !ok {
			rf = newRetriangulatorFace(r.mesh, f, r.config)
		}
		if len(rf.segments) == 0 && r.mesh.Face(f).AdjacentVertexCount() == 3 {
			continue
		}
		if err := r.splitFace(rf); err != nil {
			return err
		}
		split++
	}
	core.LogDebug("retriangulated %d faces, split %d edges", split, len(r.edges))
	return nil
}

func (r *Retriangulator) orderedFaces() []*RetriangulatorFace {
	faces := make([]*RetriangulatorFace, 0, len(r.order))
	for _, f := range r.order {
		faces = append(faces, r.faces[f])
	}
	return faces
}

func (r *Retriangulator) orderedEdges() []*RetriangulatorEdge {
	edges := make([]*RetriangulatorEdge, 0, len(r.edges))
	for _, e := range r.edges {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b *RetriangulatorEdge) int {
		return int(a.edge) - int(b.edge)
	})
	return edges
}

// filter conditions the segments of faces before any mesh element changes:
// it welds endpoints by identifier, snaps them onto the face boundaries,
// drops degenerate segments, splits segments at their intersections and
// gathers the points that must be inserted on mesh edges.
func (r *Retriangulator) filter(faces []*RetriangulatorFace) {
	r.weldIdentifiers(faces)

	tree := newEdgeTree(r.mesh)
	collapsed, splits := 0, 0
	for _, rf := range faces {
		rf.snapEndpoints(r.mesh, tree)
		collapsed += rf.collapseSegments()
		splits += rf.splitIntersectingSegments()
		collapsed += rf.collapseSegments()
	}

	for _, rf := range faces {
		for i := range rf.segments {
			s := &rf.segments[i]
			for k := 0; k < 2; k++ {
				if !s.HasEdge(k) {
					continue
				}
				re, ok := r.edges[s.Edge[k]]
				if !ok {
					re = newRetriangulatorEdge(r.mesh, s.Edge[k], r.config)
					r.edges[s.Edge[k]] = re
				}
				re.addEdgePoint(EdgePoint{
					Position:                  s.WorldPosition[k],
					T:                         re.parameter(s.WorldPosition[k]),
					Identifier:                s.Identifier[k],
					IsDegreeZeroDiscontinuity: s.IsDegreeZeroDiscontinuity[k],
					source:                    &endpoint{face: rf, segment: i, index: k},
				})
			}
		}
	}
	for _, re := range r.edges {
		re.sortAndWeld()
	}
	core.LogDebug("filtered segments of %d faces: %d collapsed, %d splits, %d edges to split",
		len(faces), collapsed, splits, len(r.edges))
}

// weldIdentifiers moves every endpoint onto the first position recorded for
// its identifier.
func (r *Retriangulator) weldIdentifiers(faces []*RetriangulatorFace) {
	first := make(map[EndpointIdentifier]math.Vec3)
	for _, rf := range faces {
		for i := range rf.segments {
			s := &rf.segments[i]
			for k := 0; k < 2; k++ {
				id := s.Identifier[k]
				if id.IsUndefined() {
					continue
				}
				p, ok := first[id]
				if !ok {
					first[id] = s.WorldPosition[k]
					continue
				}
				if d := p.Distance(s.WorldPosition[k]); d > rf.epsilon {
					core.LogWarn("welding %s over a distance of %g", id, d)
				}
				s.WorldPosition[k] = p
			}
		}
	}
}

// facePolygon accumulates the input of the polygon triangulator for one face.
type facePolygon struct {
	rf        *RetriangulatorFace
	points    []math.Vec2
	positions []math.Vec3
	vertices  []mesh.VertexHandle
	index     map[math.Vec2]int
	outline   []int
	edges     []delaunay.IndexEdge
	submitted map[delaunay.IndexEdge]bool
}

func newFacePolygon(rf *RetriangulatorFace) *facePolygon {
	return &facePolygon{
		rf:        rf,
		index:     make(map[math.Vec2]int),
		submitted: make(map[delaunay.IndexEdge]bool),
	}
}

// addPoint returns the index of the point at p, adding it if no point
// projects to the same location.
func (fp *facePolygon) addPoint(p math.Vec3, v mesh.VertexHandle) (int, bool) {
	q := fp.rf.project(p)
	if k, ok := fp.index[q]; ok {
		return k, false
	}
	k := len(fp.points)
	fp.points = append(fp.points, q)
	fp.positions = append(fp.positions, p)
	fp.vertices = append(fp.vertices, v)
	fp.index[q] = k
	return k, true
}

func (fp *facePolygon) lookup(p math.Vec3) (int, bool) {
	k, ok := fp.index[fp.rf.project(p)]
	return k, ok
}

// addOutlinePoint appends k to the outline unless it repeats the previous or
// the first point.
func (fp *facePolygon) addOutlinePoint(k int) {
	if n := len(fp.outline); n > 0 && (k == fp.outline[n-1] || k == fp.outline[0]) {
		return
	}
	fp.outline = append(fp.outline, k)
}

func (fp *facePolygon) closeOutline() {
	for i, k := range fp.outline {
		fp.submitted[canonical(k, fp.outline[(i+1)%len(fp.outline)])] = true
	}
}

func (fp *facePolygon) addEdge(k0, k1 int) {
	if k0 == k1 {
		return
	}
	key := canonical(k0, k1)
	if fp.submitted[key] {
		return
	}
	fp.submitted[key] = true
	fp.edges = append(fp.edges, delaunay.IndexEdge{k0, k1})
}

func canonical(k0, k1 int) delaunay.IndexEdge {
	if k1 < k0 {
		return delaunay.IndexEdge{k1, k0}
	}
	return delaunay.IndexEdge{k0, k1}
}

func (fp *facePolygon) triangulate(config core.DelaunayConfig) ([]delaunay.Triangle, error) {
	pt := delaunay.NewPolygonTriangulator(fp.points, []delaunay.Polygon{{Outline: fp.outline}}, fp.edges, config)
	if ok, details := pt.Validate(); !ok {
		err := fmt.Errorf("%w: face %d with %d points and %d segments: %s",
			core.ErrValidationFailed, fp.rf.face, len(fp.points), len(fp.edges), details)
		core.Fatal(err)
		return nil, err
	}
	if err := pt.Triangulate(); err != nil {
		return nil, err
	}
	return pt.Triangles(), nil
}

// splitFace replaces the face of rf by the constrained triangulation of its
// current ring and its segments.
func (r *Retriangulator) splitFace(rf *RetriangulatorFace) error {
	fp := newFacePolygon(rf)
	for _, v := range r.mesh.Face(rf.face).AdjacentVertices() {
		k, _ := fp.addPoint(r.mesh.Vertex(v).Position(), v)
		fp.addOutlinePoint(k)
	}
	fp.closeOutline()

	for i := range rf.segments {
		s := &rf.segments[i]
		k0 := r.segmentPoint(fp, s, 0)
		k1 := r.segmentPoint(fp, s, 1)
		fp.addEdge(k0, k1)
	}

	triangles, err := fp.triangulate(r.delaunay)
	if err != nil {
		return err
	}
	tris := make([][3]mesh.VertexHandle, 0, len(triangles))
	for _, t := range triangles {
		tris = append(tris, [3]mesh.VertexHandle{
			fp.vertices[t.Points[0]], fp.vertices[t.Points[1]], fp.vertices[t.Points[2]],
		})
	}
	_, created := mesh.ReplaceFaceWithTriangles(r.mesh, rf.face, tris)
	if r.newEdgeKey.IsDefined() {
		for _, e := range created {
			r.mesh.Edge(e).SetBool(r.newEdgeKey, true)
		}
	}
	return nil
}

// segmentPoint returns the point index of endpoint k of s, creating a mesh
// vertex for it if no existing point of the face matches its identifier or
// position.
func (r *Retriangulator) segmentPoint(fp *facePolygon, s *FaceLineSegment, k int) int {
	p := s.WorldPosition[k]
	id := s.Identifier[k]

	idx, ok := -1, false
	if v, found := r.identifiedVertex(id); found {
		idx, ok = fp.lookup(r.mesh.Vertex(v).Position())
	}
	if !ok {
		idx, ok = fp.lookup(p)
	}
	if ok {
		if s.IsDegreeZeroDiscontinuity[k] {
			r.mesh.Vertex(fp.vertices[idx]).SetBool(r.isDegreeZero, true)
		}
		return idx
	}

	v := r.mesh.CreateVertex()
	r.mesh.Vertex(v).SetPosition(p)
	mesh.AssignInterpolatedVertexAttributes(r.mesh, v, fp.rf.ring)
	r.mesh.Vertex(v).EraseAttribute(r.isDegreeZero)
	if s.IsDegreeZeroDiscontinuity[k] {
		r.mesh.Vertex(v).SetBool(r.isDegreeZero, true)
	}
	if !id.IsUndefined() {
		r.vertexByIdentifier[id] = v
	}
	idx, _ = fp.addPoint(p, v)
	return idx
}

func (r *Retriangulator) identifiedVertex(id EndpointIdentifier) (mesh.VertexHandle, bool) {
	if v, ok := r.vertexByIdentifier[id]; ok && r.mesh.IsValidVertex(v) {
		return v, true
	}
	if v, ok := id.Vertex(); ok && r.mesh.IsValidVertex(v) {
		return v, true
	}
	return mesh.InvalidVertex, false
}
