package delaunay

import (
	m "math"

	"golang.org/x/exp/rand"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/containers"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/exact"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

const (
	// maxWalkSteps bounds the visibility walk before point location falls
	// back to scanning every face.
	maxWalkSteps = 1 << 16
	// maxRestorationPasses bounds the sweeps that restore the Delaunay
	// property around a recovered constraint.
	maxRestorationPasses = 1 << 10
)

// PointTriangulator computes the constrained Delaunay triangulation of a set
// of points and a set of constraint edges between them.
//
// Validate must be called, and must succeed, before Triangulate.
type PointTriangulator struct {
	inputPoints []math.Vec2
	inputEdges  []IndexEdge
	config      core.DelaunayConfig

	validated bool
	details   ValidationDetails

	mesh     *Mesh
	vertices []VertexHandle // vertex of each input point
	inserted []VertexHandle
	rng      *rand.Rand
	stats    Statistics

	points    []math.Vec2
	edges     []IndexEdge
	triangles []Triangle
}

// NewPointTriangulator returns a triangulator over points with the given
// constraint edges. The slices are not copied and must not change until
// Triangulate returns.
func NewPointTriangulator(points []math.Vec2, edges []IndexEdge, config core.DelaunayConfig) *PointTriangulator {
	return &PointTriangulator{
		inputPoints: points,
		inputEdges:  edges,
		config:      config,
	}
}

// Validate checks the input and reports why it cannot be triangulated.
func (t *PointTriangulator) Validate() (bool, ValidationDetails) {
	d := validatePoints(t.inputPoints)
	if !d.Has(NaNPoint | InfinitePoint) {
		d |= validateEdges(t.inputPoints, t.inputEdges)
	}
	t.validated = true
	t.details = d
	return d.IsValid(), d
}

// Triangulate builds the triangulation. Input that was not validated, or that
// failed validation, is escalated through core.Fatal.
func (t *PointTriangulator) Triangulate() error {
	if err := checkValidated(t.validated, t.details); err != nil {
		return err
	}

	clock := core.NewClock()
	clock.Start()

	t.mesh = NewMesh()
	t.rng = rand.New(rand.NewSource(t.config.Seed))
	t.stats = Statistics{}
	t.insertPoints()
	t.recoverConstraints()
	t.assembleOutput()

	clock.Stop()
	core.LogDebug("triangulated %d points and %d constraints into %d triangles in %s (%s)",
		len(t.inputPoints), len(t.inputEdges), len(t.triangles), clock.Elapsed(), t.stats)
	return nil
}

func checkValidated(validated bool, details ValidationDetails) error {
	if !validated {
		core.Fatal(core.ErrNotValidated)
		return core.ErrNotValidated
	}
	if !details.IsValid() {
		err := &ValidationError{Details: details}
		core.Fatal(err)
		return err
	}
	return nil
}

// ValidationError is reported when triangulation is attempted on input that
// failed validation. It matches core.ErrValidationFailed.
type ValidationError struct {
	Details ValidationDetails
}

func (e *ValidationError) Error() string {
	return core.ErrValidationFailed.Error() + ": " + e.Details.String()
}

func (e *ValidationError) Unwrap() error {
	return core.ErrValidationFailed
}

// Points returns the output points. No points are added, so these are the
// input points in input order.
func (t *PointTriangulator) Points() []math.Vec2 {
	return t.points
}

// Edges returns the output edges. The first len(constraints) edges are the
// constraint edges in input order.
func (t *PointTriangulator) Edges() []IndexEdge {
	return t.edges
}

func (t *PointTriangulator) Triangles() []Triangle {
	return t.triangles
}

// Mesh returns the working mesh of the last triangulation.
func (t *PointTriangulator) Mesh() *Mesh {
	return t.mesh
}

func (t *PointTriangulator) Statistics() Statistics {
	return t.stats
}

func (t *PointTriangulator) position(v VertexHandle) math.Vec2 {
	return t.mesh.Vertex(v).Position
}

func (t *PointTriangulator) createVertex(i int) VertexHandle {
	v := t.mesh.CreateVertex(t.inputPoints[i])
	t.mesh.Vertex(v).InputIndex = i
	t.vertices[i] = v
	t.inserted = append(t.inserted, v)
	return v
}

func (t *PointTriangulator) insertPoints() {
	n := len(t.inputPoints)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if t.config.Shuffle {
		t.rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	t.vertices = make([]VertexHandle, n)
	t.inserted = t.inserted[:0]

	// The first triangle uses the first two points and the first point that
	// is not colinear with them.
	third := 2
	for exact.Orientation2D(t.inputPoints[order[0]], t.inputPoints[order[1]], t.inputPoints[order[third]]) == 0 {
		third++
	}
	v0, v1, v2 := t.createVertex(order[0]), t.createVertex(order[1]), t.createVertex(order[third])
	if exact.Orientation2D(t.position(v0), t.position(v1), t.position(v2)) < 0 {
		v1, v2 = v2, v1
	}
	CreateFaceAndEdges(t.mesh, v0, v1, v2)
	t.stats.Insertions = 3

	for k, i := range order {
		if k < 2 || k == third {
			continue
		}
		t.insertPoint(i)
	}
}

func (t *PointTriangulator) insertPoint(i int) {
	p := t.inputPoints[i]
	f := t.locate(p)
	face := t.mesh.Face(f)

	var v VertexHandle
	onEdge := InvalidEdge
	for k, e := range face.edges {
		a, b := t.position(face.vertices[k]), t.position(face.vertices[(k+1)%3])
		if exact.LineSegmentIntersectsPoint2D(a, b, p) {
			onEdge = e
			break
		}
	}

	switch {
	case onEdge != InvalidEdge:
		v = SplitEdge(t.mesh, onEdge, p)
		t.stats.EdgeSplits++
	case t.strictlyInside(f, p):
		v = SplitFace(t.mesh, f, p)
		t.stats.FaceSplits++
	default:
		v = t.addVertexOutsidePerimeter(f, p)
		t.stats.HullInsertions++
	}
	t.mesh.Vertex(v).InputIndex = i
	t.vertices[i] = v
	t.inserted = append(t.inserted, v)
	t.stats.Insertions++

	t.restoreDelaunayAroundVertex(v)
}

func (t *PointTriangulator) strictlyInside(f FaceHandle, p math.Vec2) bool {
	a, b, c := facePositions(t.mesh, f)
	return exact.Orientation2D(a, b, p) > 0 && exact.Orientation2D(b, c, p) > 0 && exact.Orientation2D(c, a, p) > 0
}

// walkStart picks the face to begin point location from: one adjacent to
// the nearest of a random sample of the inserted vertices.
func (t *PointTriangulator) walkStart(p math.Vec2) FaceHandle {
	samples := int(m.Cbrt(float64(t.mesh.FaceCount())))
	if samples < 1 {
		samples = 1
	}
	best := t.inserted[t.rng.Intn(len(t.inserted))]
	bestDistance := t.position(best).Sub(p).LengthSquared()
	for i := 1; i < samples; i++ {
		v := t.inserted[t.rng.Intn(len(t.inserted))]
		if d := t.position(v).Sub(p).LengthSquared(); d < bestDistance {
			best, bestDistance = v, d
		}
	}
	faces := t.mesh.Vertex(best).faces
	return faces[t.rng.Intn(len(faces))]
}

// locate returns the face containing p, or, for a point outside the
// triangulation, a face with a perimeter edge that p lies strictly outside
// of. It walks toward p across edges that separate the current face from
// p, testing the edges in a random order.
func (t *PointTriangulator) locate(p math.Vec2) FaceHandle {
	f := t.walkStart(p)
	previous := InvalidEdge
	for step := 0; step < maxWalkSteps; step++ {
		t.stats.WalkSteps++
		face := t.mesh.Face(f)
		offset := t.rng.Intn(3)
		next := InvalidFace
		for i := 0; i < 3; i++ {
			k := (offset + i) % 3
			e := face.edges[k]
			if e == previous {
				continue
			}
			a, b := t.position(face.vertices[k]), t.position(face.vertices[(k+1)%3])
			if exact.Orientation2D(a, b, p) < 0 {
				next = NeighboringFaceAcrossEdge(t.mesh, f, e)
				if next == InvalidFace {
					return f
				}
				previous = e
				break
			}
		}
		if next == InvalidFace {
			return f
		}
		f = next
	}

	t.stats.WalkFallbacks++
	var outside FaceHandle = InvalidFace
	for _, g := range t.mesh.Faces() {
		face := t.mesh.Face(g)
		contains := true
		for k, e := range face.edges {
			a, b := t.position(face.vertices[k]), t.position(face.vertices[(k+1)%3])
			if exact.Orientation2D(a, b, p) < 0 {
				contains = false
				if outside == InvalidFace && len(t.mesh.Edge(e).faces) == 1 {
					outside = g
				}
			}
		}
		if contains {
			return g
		}
	}
	return outside
}

// addVertexOutsidePerimeter connects a point outside the triangulation to
// every perimeter edge it sees. f is the face point location stopped at.
func (t *PointTriangulator) addVertexOutsidePerimeter(f FaceHandle, p math.Vec2) VertexHandle {
	a, b := t.visiblePerimeterEdge(f, p)
	n := t.mesh.CreateVertex(p)
	CreateFaceAndEdges(t.mesh, b, a, n)

	for {
		next := AdjacentVertexAroundPerimeter(t.mesh, b, Counterclockwise)
		if next == InvalidVertex || next == n || exact.Orientation2D(t.position(b), t.position(next), p) >= 0 {
			break
		}
		CreateFaceAndEdges(t.mesh, next, b, n)
		b = next
	}
	for {
		prev := AdjacentVertexAroundPerimeter(t.mesh, a, Clockwise)
		if prev == InvalidVertex || prev == n || exact.Orientation2D(t.position(prev), t.position(a), p) >= 0 {
			break
		}
		CreateFaceAndEdges(t.mesh, a, prev, n)
		a = prev
	}
	return n
}

// visiblePerimeterEdge returns the endpoints, in counterclockwise perimeter
// order, of a perimeter edge that p lies strictly outside of.
func (t *PointTriangulator) visiblePerimeterEdge(f FaceHandle, p math.Vec2) (VertexHandle, VertexHandle) {
	if a, b, ok := t.visibleEdgeOfFace(f, p); ok {
		return a, b
	}
	for _, e := range t.mesh.Edges() {
		edge := t.mesh.Edge(e)
		if len(edge.faces) != 1 {
			continue
		}
		if a, b, ok := t.visibleEdgeOfFace(edge.faces[0], p); ok {
			return a, b
		}
	}
	panic("point outside the triangulation sees no perimeter edge")
}

func (t *PointTriangulator) visibleEdgeOfFace(f FaceHandle, p math.Vec2) (VertexHandle, VertexHandle, bool) {
	face := t.mesh.Face(f)
	for k, e := range face.edges {
		if len(t.mesh.Edge(e).faces) != 1 {
			continue
		}
		a, b := face.vertices[k], face.vertices[(k+1)%3]
		if exact.Orientation2D(t.position(a), t.position(b), p) < 0 {
			return a, b, true
		}
	}
	return InvalidVertex, InvalidVertex, false
}

// edgeShouldSwap reports whether e is an unconstrained interior edge whose
// quadrilateral is strictly convex and which fails the Delaunay test.
// Cocircular quadrilaterals are left alone.
func edgeShouldSwap(mesh *Mesh, e EdgeHandle) bool {
	edge := mesh.Edge(e)
	if edge.IsConstrained() || len(edge.faces) != 2 {
		return false
	}
	a, b, c := facePositions(mesh, edge.faces[0])
	d := mesh.Vertex(VertexOppositeEdge(mesh, edge.faces[1], e)).Position
	if exact.InCircle(a, b, c, d) <= 0 {
		return false
	}
	return quadIsStrictlyConvex(mesh, e)
}

func quadIsStrictlyConvex(mesh *Mesh, e EdgeHandle) bool {
	edge := mesh.Edge(e)
	p, q := edgePositions(mesh, e)
	a := mesh.Vertex(VertexOppositeEdge(mesh, edge.faces[0], e)).Position
	d := mesh.Vertex(VertexOppositeEdge(mesh, edge.faces[1], e)).Position
	return exact.LineSegmentsCross2D(p, q, a, d)
}

// restoreDelaunayAroundVertex flips edges opposite the new vertex v until
// every face around it passes the Delaunay test.
func (t *PointTriangulator) restoreDelaunayAroundVertex(v VertexHandle) {
	queue := containers.NewRingQueue[FaceHandle](8)
	for _, f := range t.mesh.Vertex(v).faces {
		queue.Enqueue(f)
	}
	for !queue.IsEmpty() {
		f, _ := queue.Dequeue()
		face := t.mesh.Face(f)
		if face == nil || !face.HasAdjacentVertex(v) {
			continue
		}
		e := EdgeOppositeVertex(t.mesh, f, v)
		if !edgeShouldSwap(t.mesh, e) {
			continue
		}
		SwapEdge(t.mesh, e)
		t.stats.DelaunayFlips++
		for _, g := range t.mesh.Edge(e).faces {
			queue.Enqueue(g)
		}
	}
}

// recoverConstraints forces every constraint edge into the triangulation
// by flipping the edges that cross it, then restores the Delaunay property
// on the edges the flips created.
func (t *PointTriangulator) recoverConstraints() {
	for i, ie := range t.inputEdges {
		u, v := t.vertices[ie[0]], t.vertices[ie[1]]
		if e, ok := FindEdgeConnectingVertices(t.mesh, u, v); ok {
			t.mesh.Edge(e).InputIndex = i
			continue
		}

		created := t.flipCrossingEdges(u, v)
		e, ok := FindEdgeConnectingVertices(t.mesh, u, v)
		if !ok {
			core.LogError("constraint %d (%d, %d) could not be recovered", i, ie[0], ie[1])
			continue
		}
		t.mesh.Edge(e).InputIndex = i
		t.stats.RecoveredConstraints++
		t.restoreDelaunayOnEdges(created)
	}
}

// crossingEdges returns the edges crossed by the segment from u to v, in
// order from u.
func (t *PointTriangulator) crossingEdges(u, v VertexHandle) []EdgeHandle {
	pu, pv := t.position(u), t.position(v)
	f, e := InvalidFace, InvalidEdge
	for _, g := range t.mesh.Vertex(u).faces {
		o := EdgeOppositeVertex(t.mesh, g, u)
		a, b := edgePositions(t.mesh, o)
		if exact.LineSegmentsCross2D(pu, pv, a, b) {
			f, e = g, o
			break
		}
	}
	var crossing []EdgeHandle
	for e != InvalidEdge {
		crossing = append(crossing, e)
		g := NeighboringFaceAcrossEdge(t.mesh, f, e)
		if g == InvalidFace || VertexOppositeEdge(t.mesh, g, e) == v {
			break
		}
		next := InvalidEdge
		for _, ge := range t.mesh.Face(g).edges {
			if ge == e {
				continue
			}
			a, b := edgePositions(t.mesh, ge)
			if exact.LineSegmentsCross2D(pu, pv, a, b) {
				next = ge
				break
			}
		}
		f, e = g, next
	}
	return crossing
}

// flipCrossingEdges flips edges crossing the segment from u to v until none
// remain. It returns the edges created by the flips, including u-v itself.
func (t *PointTriangulator) flipCrossingEdges(u, v VertexHandle) []EdgeHandle {
	pu, pv := t.position(u), t.position(v)
	crossing := t.crossingEdges(u, v)
	queue := containers.NewRingQueue[EdgeHandle](len(crossing))
	for _, e := range crossing {
		queue.Enqueue(e)
	}

	var created []EdgeHandle
	limit := maxWalkSteps + len(crossing)*len(crossing)
	for !queue.IsEmpty() && limit > 0 {
		limit--
		e, _ := queue.Dequeue()
		if !quadIsStrictlyConvex(t.mesh, e) {
			queue.Enqueue(e)
			continue
		}
		SwapEdge(t.mesh, e)
		t.stats.ConstraintFlips++
		a, d := edgePositions(t.mesh, e)
		if exact.LineSegmentsCross2D(pu, pv, a, d) {
			queue.Enqueue(e)
		} else {
			created = append(created, e)
		}
	}
	if !queue.IsEmpty() {
		core.LogWarn("gave up flipping %d edges crossing a constraint", queue.Len())
	}
	return created
}

func (t *PointTriangulator) restoreDelaunayOnEdges(edges []EdgeHandle) {
	for pass := 0; pass < maxRestorationPasses; pass++ {
		swapped := false
		for _, e := range edges {
			if edgeShouldSwap(t.mesh, e) {
				SwapEdge(t.mesh, e)
				t.stats.DelaunayFlips++
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
	core.LogWarn("delaunay restoration stopped after %d passes", maxRestorationPasses)
}

// assembleOutput lists the constraint edges first, in input order and with
// their input endpoint order, then every other edge in creation order.
func (t *PointTriangulator) assembleOutput() {
	t.points = append([]math.Vec2(nil), t.inputPoints...)

	t.edges = make([]IndexEdge, 0, t.mesh.EdgeCount())
	for i, ie := range t.inputEdges {
		e, _ := FindEdgeConnectingVertices(t.mesh, t.vertices[ie[0]], t.vertices[ie[1]])
		if edge := t.mesh.Edge(e); edge != nil {
			edge.OutputIndex = i
		}
		t.edges = append(t.edges, ie)
	}
	for _, e := range t.mesh.Edges() {
		edge := t.mesh.Edge(e)
		if edge.IsConstrained() {
			continue
		}
		edge.OutputIndex = len(t.edges)
		t.edges = append(t.edges, IndexEdge{
			t.mesh.Vertex(edge.vertices[0]).InputIndex,
			t.mesh.Vertex(edge.vertices[1]).InputIndex,
		})
	}

	t.triangles = make([]Triangle, 0, t.mesh.FaceCount())
	for _, f := range t.mesh.Faces() {
		face := t.mesh.Face(f)
		var tri Triangle
		for k := 0; k < 3; k++ {
			tri.Points[k] = t.mesh.Vertex(face.vertices[k]).InputIndex
			tri.Edges[k] = t.mesh.Edge(face.edges[k]).OutputIndex
		}
		t.triangles = append(t.triangles, tri)
	}
}
