package delaunay

import (
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// Polygon is a counterclockwise outline with optional clockwise holes. Both
// are rings of indices into the triangulator's point list.
type Polygon struct {
	Outline []int
	Holes   [][]int
}

type region int8

const (
	regionUnknown region = iota
	regionInside
	regionOutside
)

// PolygonTriangulator triangulates the interiors of a set of polygons. Extra
// edges, which must lie inside the polygons, are kept as constraints.
type PolygonTriangulator struct {
	inputPoints []math.Vec2
	polygons    []Polygon
	extraEdges  []IndexEdge
	config      core.DelaunayConfig

	validated bool
	details   ValidationDetails

	// polygon ring edges first, then the extra edges
	constraints      []IndexEdge
	polygonEdgeCount int
	triangulator     *PointTriangulator

	edges     []IndexEdge
	triangles []Triangle
}

func NewPolygonTriangulator(points []math.Vec2, polygons []Polygon, extraEdges []IndexEdge, config core.DelaunayConfig) *PolygonTriangulator {
	t := &PolygonTriangulator{
		inputPoints: points,
		polygons:    polygons,
		extraEdges:  extraEdges,
		config:      config,
	}
	for _, polygon := range polygons {
		t.constraints = appendRingEdges(t.constraints, polygon.Outline)
		for _, hole := range polygon.Holes {
			t.constraints = appendRingEdges(t.constraints, hole)
		}
	}
	t.polygonEdgeCount = len(t.constraints)
	t.constraints = append(t.constraints, extraEdges...)
	return t
}

func appendRingEdges(edges []IndexEdge, ring []int) []IndexEdge {
	for k := range ring {
		edges = append(edges, IndexEdge{ring[k], ring[(k+1)%len(ring)]})
	}
	return edges
}

// Validate checks every ring for winding and degeneracy, then checks the
// points and all constraint edges together. An empty polygon list is valid.
func (t *PolygonTriangulator) Validate() (bool, ValidationDetails) {
	var d ValidationDetails
	t.validated = true
	if len(t.polygons) == 0 {
		t.details = d
		return true, d
	}

	d = validatePoints(t.inputPoints)
	if !d.Has(NaNPoint | InfinitePoint) {
		for _, polygon := range t.polygons {
			d |= validateRing(t.inputPoints, polygon.Outline, true)
			for _, hole := range polygon.Holes {
				d |= validateRing(t.inputPoints, hole, false)
			}
		}
		if !d.Has(InvalidPointIndex) {
			d |= validateEdges(t.inputPoints, t.constraints)
		}
	}
	t.details = d
	return d.IsValid(), d
}

// Triangulate builds the triangulation of the polygon interiors. Input that
// was not validated, or that failed validation, is escalated through
// core.Fatal.
func (t *PolygonTriangulator) Triangulate() error {
	if err := checkValidated(t.validated, t.details); err != nil {
		return err
	}
	t.edges, t.triangles = nil, nil
	if len(t.polygons) == 0 {
		return nil
	}

	t.triangulator = NewPointTriangulator(t.inputPoints, t.constraints, t.config)
	t.triangulator.validated = true
	t.triangulator.details = t.details
	if err := t.triangulator.Triangulate(); err != nil {
		return err
	}

	regions := t.classifyFaces()
	t.assembleOutput(regions)
	core.LogDebug("kept %d of %d triangles inside %d polygons",
		len(t.triangles), len(t.triangulator.Triangles()), len(t.polygons))
	return nil
}

func (t *PolygonTriangulator) Points() []math.Vec2 {
	return t.inputPoints
}

// Edges returns the edges of the kept triangles. Polygon ring edges come
// first, in ring order, followed by the extra edges and then the interior
// edges.
func (t *PolygonTriangulator) Edges() []IndexEdge {
	return t.edges
}

func (t *PolygonTriangulator) Triangles() []Triangle {
	return t.triangles
}

func (t *PolygonTriangulator) Statistics() Statistics {
	if t.triangulator == nil {
		return Statistics{}
	}
	return t.triangulator.Statistics()
}

// classifyFaces labels the triangles on the left of each directed polygon
// edge inside and those on the right outside, then floods the labels across
// every edge that is not a polygon edge.
func (t *PolygonTriangulator) classifyFaces() []region {
	mesh := t.triangulator.Mesh()
	regions := make([]region, len(mesh.faces))
	var stack []FaceHandle

	for _, e := range mesh.Edges() {
		edge := mesh.Edge(e)
		if !t.isPolygonEdge(edge) {
			continue
		}
		from := t.constraints[edge.InputIndex][0]
		for _, f := range edge.faces {
			face := mesh.Face(f)
			k := face.EdgeIndex(e)
			r := regionOutside
			if mesh.Vertex(face.vertices[k]).InputIndex == from {
				r = regionInside
			}
			if regions[f] == regionUnknown {
				regions[f] = r
				stack = append(stack, f)
			}
		}
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range mesh.Face(f).edges {
			edge := mesh.Edge(e)
			if t.isPolygonEdge(edge) {
				continue
			}
			g := NeighboringFaceAcrossEdge(mesh, f, e)
			if g != InvalidFace && regions[g] == regionUnknown {
				regions[g] = regions[f]
				stack = append(stack, g)
			}
		}
	}
	return regions
}

func (t *PolygonTriangulator) isPolygonEdge(edge *Edge) bool {
	return edge.IsConstrained() && edge.InputIndex < t.polygonEdgeCount
}

// assembleOutput keeps the inside triangles and renumbers the edges they use,
// preserving the point triangulator's edge order.
func (t *PolygonTriangulator) assembleOutput(regions []region) {
	mesh := t.triangulator.Mesh()
	allEdges := t.triangulator.Edges()

	used := make([]bool, len(allEdges))
	var kept []Triangle
	for i, f := range mesh.Faces() {
		if regions[f] != regionInside {
			continue
		}
		tri := t.triangulator.Triangles()[i]
		for _, e := range tri.Edges {
			used[e] = true
		}
		kept = append(kept, tri)
	}

	remap := make([]int, len(allEdges))
	t.edges = make([]IndexEdge, 0, len(allEdges))
	for i, e := range allEdges {
		remap[i] = NoIndex
		if used[i] {
			remap[i] = len(t.edges)
			t.edges = append(t.edges, e)
		}
	}
	t.triangles = make([]Triangle, 0, len(kept))
	for _, tri := range kept {
		for k := range tri.Edges {
			tri.Edges[k] = remap[tri.Edges[k]]
		}
		t.triangles = append(t.triangles, tri)
	}
}
