package delaunay

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// TriangulationGeoJSON encodes triangulator output as a GeoJSON feature
// collection for inspection in GIS tools. Every point, edge and triangle
// becomes a feature whose "kind" and "index" properties identify it;
// triangles also carry their "area" and edges their "constrained" flag when
// constraintCount edges lead the edge list.
func TriangulationGeoJSON(points []math.Vec2, edges []IndexEdge, triangles []Triangle, constraintCount int) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	toPoint := func(i int) orb.Point {
		return orb.Point{points[i].X, points[i].Y}
	}

	for i := range points {
		f := geojson.NewFeature(toPoint(i))
		f.Properties["kind"] = "point"
		f.Properties["index"] = i
		fc.Append(f)
	}
	for i, e := range edges {
		if e[0] < 0 || e[0] >= len(points) || e[1] < 0 || e[1] >= len(points) {
			return nil, fmt.Errorf("edge %d references a missing point", i)
		}
		f := geojson.NewFeature(orb.LineString{toPoint(e[0]), toPoint(e[1])})
		f.Properties["kind"] = "edge"
		f.Properties["index"] = i
		f.Properties["constrained"] = i < constraintCount
		fc.Append(f)
	}
	for i, t := range triangles {
		ring := make(orb.Ring, 0, 4)
		for _, p := range t.Points {
			if p < 0 || p >= len(points) {
				return nil, fmt.Errorf("triangle %d references a missing point", i)
			}
			ring = append(ring, toPoint(p))
		}
		ring = append(ring, ring[0])
		polygon := orb.Polygon{ring}
		f := geojson.NewFeature(polygon)
		f.Properties["kind"] = "triangle"
		f.Properties["index"] = i
		f.Properties["area"] = planar.Area(polygon)
		fc.Append(f)
	}
	return fc.MarshalJSON()
}
