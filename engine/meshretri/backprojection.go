package meshretri

import (
	"golang.org/x/exp/slices"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/mesh"
)

// Triangle3 is a triangle given by its corner positions.
type Triangle3 [3]math.Vec3

// RetriangulateBackprojectionFace computes the triangulation of f and its
// queued segments without changing the mesh. The segments of f are consumed
// and take no part in a later Retriangulate.
func (r *Retriangulator) RetriangulateBackprojectionFace(f mesh.FaceHandle) ([]Triangle3, error) {
	rf, ok := r.faces[f]
	if !ok {
		if !r.mesh.IsValidFace(f) {
			return nil, nil
		}
		rf = newRetriangulatorFace(r.mesh, f, r.config)
	}
	delete(r.faces, f)
	r.order = slices.DeleteFunc(r.order, func(h mesh.FaceHandle) bool { return h == f })

	if len(rf.segments) == 0 && len(rf.ring) == 3 {
		return []Triangle3{{rf.positions[0], rf.positions[1], rf.positions[2]}}, nil
	}

	faces := []*RetriangulatorFace{rf}
	r.weldIdentifiers(faces)
	rf.snapEndpoints(r.mesh, newEdgeTree(r.mesh))
	rf.collapseSegments()
	rf.splitIntersectingSegments()
	rf.collapseSegments()

	edges := make(map[mesh.EdgeHandle]*RetriangulatorEdge)
	for i := range rf.segments {
		s := &rf.segments[i]
		for k := 0; k < 2; k++ {
			if !s.HasEdge(k) {
				continue
			}
			re, ok := edges[s.Edge[k]]
			if !ok {
				re = newRetriangulatorEdge(r.mesh, s.Edge[k], r.config)
				edges[s.Edge[k]] = re
			}
			re.addEdgePoint(EdgePoint{
				Position:   s.WorldPosition[k],
				T:          re.parameter(s.WorldPosition[k]),
				Identifier: s.Identifier[k],
				source:     &endpoint{face: rf, segment: i, index: k},
			})
		}
	}

	fp := newFacePolygon(rf)
	for k, v := range rf.ring {
		idx, _ := fp.addPoint(rf.positions[k], v)
		fp.addOutlinePoint(idx)

		re, ok := edges[rf.ringEdges[k]]
		if !ok {
			continue
		}
		re.sortAndWeld()
		points := re.points
		if re.vertices[0] != v {
			points = append([]EdgePoint(nil), points...)
			slices.Reverse(points)
		}
		for _, p := range points {
			idx, _ := fp.addPoint(p.Position, mesh.InvalidVertex)
			fp.addOutlinePoint(idx)
		}
	}
	fp.closeOutline()

	for i := range rf.segments {
		s := &rf.segments[i]
		var ks [2]int
		for k := 0; k < 2; k++ {
			ks[k], _ = fp.addPoint(s.WorldPosition[k], mesh.InvalidVertex)
		}
		fp.addEdge(ks[0], ks[1])
	}

	triangles, err := fp.triangulate(r.delaunay)
	if err != nil {
		return nil, err
	}
	out := make([]Triangle3, 0, len(triangles))
	for _, t := range triangles {
		out = append(out, Triangle3{fp.positions[t.Points[0]], fp.positions[t.Points[1]], fp.positions[t.Points[2]]})
	}
	return out, nil
}
