package mesh

import (
	m "math"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// MeanValueCoordinateWeights returns one weight per point of the polygon
// ring, summing to one, that expresses p as a mean value combination of the
// ring. When p coincides with a ring point that point gets the whole weight,
// and when p lies on a ring edge the weight is split linearly between the
// edge's endpoints.
func MeanValueCoordinateWeights(ring []math.Vec3, p math.Vec3) []float64 {
	n := len(ring)
	weights := make([]float64, n)
	if n == 0 {
		return weights
	}

	maxAbs := p.MaxAbs()
	for _, q := range ring {
		maxAbs = m.Max(maxAbs, q.MaxAbs())
	}
	rootEpsilon := m.Sqrt(math.K_DOUBLE_EPSILON)
	epsilon := m.Max(rootEpsilon, maxAbs*rootEpsilon)

	for i, q := range ring {
		if p.Equivalent(q, epsilon) {
			weights[i] = 1
			return weights
		}
	}

	for i := range ring {
		j := (i + 1) % n
		p0, p1 := ring[i], ring[j]
		dp := p1.Sub(p0)
		length := dp.Length()
		if length == 0 {
			continue
		}
		dir := dp.MulScalar(1 / length)
		dot := p.Sub(p0).Dot(dir)
		nearest := p0.Add(dir.MulScalar(dot))
		if p.Equivalent(nearest, epsilon) && dot >= -epsilon && dot <= length+epsilon {
			t := math.Clamp(dot/length, 0.0, 1.0)
			weights[i] += 1 - t
			weights[j] += t
			return weights
		}
	}

	total := 0.0
	for i := range ring {
		prev := ring[(i+n-1)%n].Sub(p)
		cur := ring[i].Sub(p)
		next := ring[(i+1)%n].Sub(p)
		w := (halfAngleTangent(prev, cur) + halfAngleTangent(cur, next)) / cur.Length()
		weights[i] = w
		total += w
	}
	if total == 0 || m.IsNaN(total) || m.IsInf(total, 0) {
		// Degenerate ring; fall back to the nearest point.
		for i := range weights {
			weights[i] = 0
		}
		best := 0
		for i, q := range ring {
			if q.Distance(p) < ring[best].Distance(p) {
				best = i
			}
		}
		weights[best] = 1
		return weights
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}

// halfAngleTangent returns tan(theta/2) for the angle theta between a and b.
func halfAngleTangent(a, b math.Vec3) float64 {
	a = a.Normalized()
	b = b.Normalized()
	dot := math.Clamp(a.Dot(b), -1.0, 1.0)
	return m.Sqrt(1-dot*dot) / (1 + dot)
}

// AssignInterpolatedVertexAttributes sets on target every attribute that all
// of sources have in common, interpolated with mean value weights of the
// target position relative to the source ring.
func AssignInterpolatedVertexAttributes(mesh *Mesh, target VertexHandle, sources []VertexHandle) {
	if len(sources) == 0 {
		return
	}
	ring := make([]math.Vec3, len(sources))
	possessors := make([]*AttributePossessor, len(sources))
	for i, v := range sources {
		vertex := mesh.Vertex(v)
		ring[i] = vertex.Position()
		possessors[i] = &vertex.AttributePossessor
	}
	tv := mesh.Vertex(target)
	weights := MeanValueCoordinateWeights(ring, tv.Position())
	assignSharedAttributes(&tv.AttributePossessor, possessors, weights)
}

// AssignInterpolatedFaceVertexAttributes sets the corner attributes of
// target on targetFace by interpolating the corner attributes that sources
// share on sourceFace. The weights come from the position of target relative
// to the source ring.
func AssignInterpolatedFaceVertexAttributes(mesh *Mesh, targetFace FaceHandle, target VertexHandle,
	sourceFace FaceHandle, sources []VertexHandle) {
	if len(sources) == 0 {
		return
	}
	sf := mesh.Face(sourceFace)
	ring := make([]math.Vec3, len(sources))
	possessors := make([]*AttributePossessor, len(sources))
	for i, v := range sources {
		ring[i] = mesh.Vertex(v).Position()
		possessors[i] = sf.FindVertexAttributes(v)
	}
	if possessors[0].HasNoAttributes() {
		return
	}
	weights := MeanValueCoordinateWeights(ring, mesh.Vertex(target).Position())
	dst := mesh.Face(targetFace).VertexAttributes(target)
	assignSharedAttributes(dst, possessors, weights)
}

func assignSharedAttributes(dst *AttributePossessor, sources []*AttributePossessor, weights []float64) {
	for _, key := range sources[0].AttributeKeys() {
		shared := true
		for _, src := range sources[1:] {
			if !src.HasAttribute(key) {
				shared = false
				break
			}
		}
		if shared {
			assignWeightedAttribute(dst, key, sources, weights)
		}
	}
}

func assignWeightedAttribute(dst *AttributePossessor, key AttributeKey, sources []*AttributePossessor, weights []float64) {
	switch key.Type {
	case AttributeBool:
		sum := 0.0
		for i, src := range sources {
			if src.GetBool(key) {
				sum += weights[i]
			}
		}
		dst.SetBool(key, sum >= 0.5)
	case AttributeInt:
		sum := 0.0
		for i, src := range sources {
			sum += weights[i] * float64(src.GetInt(key))
		}
		dst.SetInt(key, int32(m.Floor(sum+0.5)))
	case AttributeFloat:
		sum := 0.0
		for i, src := range sources {
			sum += weights[i] * src.GetFloat(key)
		}
		dst.SetFloat(key, sum)
	case AttributeVec2:
		var sum math.Vec2
		for i, src := range sources {
			sum = sum.Add(src.GetVec2(key).MulScalar(weights[i]))
		}
		dst.SetVec2(key, sum)
	case AttributeVec3:
		var sum math.Vec3
		for i, src := range sources {
			sum = sum.Add(src.GetVec3(key).MulScalar(weights[i]))
		}
		dst.SetVec3(key, sum)
	case AttributeVec4:
		var sum math.Vec4
		for i, src := range sources {
			sum = sum.Add(src.GetVec4(key).MulScalar(weights[i]))
		}
		dst.SetVec4(key, sum)
	case AttributeUnitVec3:
		var sum math.Vec3
		for i, src := range sources {
			sum = sum.Add(src.GetUnitVec3(key).MulScalar(weights[i]))
		}
		dst.SetUnitVec3(key, sum)
	default:
		// Matrices, strings and boxes do not blend; take the dominant source.
		best := 0
		for i := range weights {
			if weights[i] > weights[best] {
				best = i
			}
		}
		if v, ok := sources[best].Attribute(key); ok {
			dst.SetAttribute(key, v)
		}
	}
}
