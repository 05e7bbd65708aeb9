package mesh

import (
	m "math"
	"testing"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

func squareRing() []math.Vec3 {
	return []math.Vec3{v3(0, 0, 0), v3(1, 0, 0), v3(1, 1, 0), v3(0, 1, 0)}
}

func TestMeanValueCoordinateWeights(t *testing.T) {
	tests := []struct {
		name string
		p    math.Vec3
		want []float64
	}{
		{"at a corner", v3(1, 0, 0), []float64{0, 1, 0, 0}},
		{"on an edge", v3(1, 0.25, 0), []float64{0, 0.75, 0.25, 0}},
		{"at the center", v3(0.5, 0.5, 0), []float64{0.25, 0.25, 0.25, 0.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeanValueCoordinateWeights(squareRing(), tt.p)
			for i := range tt.want {
				if m.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Fatalf("weights = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMeanValueCoordinatesReproduceLinearFunctions(t *testing.T) {
	ring := []math.Vec3{v3(0, 0, 0), v3(3, 0, 0), v3(4, 2, 0), v3(1, 3, 0), v3(-1, 1, 0)}
	for _, p := range []math.Vec3{v3(1, 1, 0), v3(0.3, 0.6, 0), v3(2.5, 1.9, 0)} {
		weights := MeanValueCoordinateWeights(ring, p)
		var sum float64
		var combined math.Vec3
		for i, w := range weights {
			sum += w
			combined = combined.Add(ring[i].MulScalar(w))
		}
		if m.Abs(sum-1) > 1e-12 {
			t.Errorf("weights at %v sum to %v", p, sum)
		}
		if !combined.Equivalent(p, 1e-9) {
			t.Errorf("weights at %v reproduce %v", p, combined)
		}
	}
}

func TestAssignInterpolatedVertexAttributes(t *testing.T) {
	mesh := NewMesh()
	a := addVertex(mesh, v3(0, 0, 0))
	b := addVertex(mesh, v3(4, 0, 0))
	target := addVertex(mesh, v3(1, 0, 0))

	count := mesh.GetAttributeKey("count", AttributeInt)
	flag := mesh.GetAttributeKey("flag", AttributeBool)
	label := mesh.GetAttributeKey("label", AttributeString)
	only := mesh.GetAttributeKey("only", AttributeFloat)

	mesh.Vertex(a).SetInt(count, 0)
	mesh.Vertex(b).SetInt(count, 8)
	mesh.Vertex(a).SetBool(flag, true)
	mesh.Vertex(b).SetBool(flag, false)
	mesh.Vertex(a).SetString(label, "near")
	mesh.Vertex(b).SetString(label, "far")
	mesh.Vertex(a).SetFloat(only, 1)

	AssignInterpolatedVertexAttributes(mesh, target, []VertexHandle{a, b})
	v := mesh.Vertex(target)

	if got := v.GetInt(count); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
	if !v.GetBool(flag) {
		t.Error("flag should follow the heavier source")
	}
	if got := v.GetString(label); got != "near" {
		t.Errorf("label = %q, want the dominant source", got)
	}
	if v.HasAttribute(only) {
		t.Error("attribute missing from one source was interpolated")
	}
}
