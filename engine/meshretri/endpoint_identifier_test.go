package meshretri

import (
	"strings"
	"testing"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/mesh"
)

func TestEndpointIdentifierEquality(t *testing.T) {
	tests := []struct {
		name  string
		a, b  EndpointIdentifier
		equal bool
	}{
		{"vertex", FromVertex(3), FromVertex(3), true},
		{"different vertices", FromVertex(3), FromVertex(4), false},
		{"vertex pair order", FromVertexPair(1, 2), FromVertexPair(2, 1), true},
		{"edge pair order", FromEdgePairAndIndex(5, 2, 1), FromEdgePairAndIndex(2, 5, 1), true},
		{"edge pair and vertex order", FromEdgePairAndVertex(5, 2, 7), FromEdgePairAndVertex(2, 5, 7), true},
		{"kind matters", FromVertexAndIndex(1, 2), FromEdgeAndIndex(1, 2), false},
		{"index matters", FromEdgeAndIndex(1, 2), FromEdgeAndIndex(1, 3), false},
		{"unique", NewUniqueIdentifier(), NewUniqueIdentifier(), false},
		{"undefined", Undefined(), Undefined(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.equal {
				t.Errorf("%s == %s is %v, want %v", tt.a, tt.b, got, tt.equal)
			}
			if tt.equal && (tt.a.Less(tt.b) || tt.b.Less(tt.a)) {
				t.Errorf("equal identifiers %s and %s are ordered", tt.a, tt.b)
			}
			if !tt.equal && tt.a.Less(tt.b) == tt.b.Less(tt.a) {
				t.Errorf("distinct identifiers %s and %s are not ordered", tt.a, tt.b)
			}
		})
	}
}

func TestEndpointIdentifierAccessors(t *testing.T) {
	if v, ok := FromVertex(4).Vertex(); !ok || v != 4 {
		t.Errorf("FromVertex(4).Vertex() = %d, %v", v, ok)
	}
	if v, ok := FromVertexAndIndex(6, 1).Vertex(); !ok || v != 6 {
		t.Errorf("FromVertexAndIndex(6, 1).Vertex() = %d, %v", v, ok)
	}
	if _, ok := FromVertexPair(1, 2).Vertex(); ok {
		t.Error("a vertex pair names no single vertex")
	}
	if e, ok := FromEdgeAndIndex(9, 0).Edge(); !ok || e != 9 {
		t.Errorf("FromEdgeAndIndex(9, 0).Edge() = %d, %v", e, ok)
	}
	if e, ok := FromEdgePairAndIndex(1, 2, 0).Edge(); ok || e != mesh.InvalidEdge {
		t.Error("an edge pair names no single edge")
	}
	if !Undefined().IsUndefined() || FromVertex(0).IsUndefined() {
		t.Error("IsUndefined is wrong")
	}
}

func TestEndpointIdentifierOrder(t *testing.T) {
	ordered := []EndpointIdentifier{
		Undefined(),
		FromVertex(9),
		FromVertexPair(1, 2),
		FromVertexAndIndex(1, 0),
		FromVertexAndIndex(0, 1),
		FromEdgeAndIndex(0, 0),
		FromEdgePairAndVertex(0, 1, 2),
		FromEdgePairAndIndex(0, 1, 2),
		NewUniqueIdentifier(),
	}
	for i := 1; i < len(ordered); i++ {
		if !ordered[i-1].Less(ordered[i]) {
			t.Errorf("%s should sort before %s", ordered[i-1], ordered[i])
		}
	}
}

func TestEndpointIdentifierString(t *testing.T) {
	tests := []struct {
		id   EndpointIdentifier
		want string
	}{
		{Undefined(), "undefined"},
		{FromVertex(3), "vertex(3)"},
		{FromVertexPair(4, 2), "vertex-pair(2, 4)"},
		{FromEdgeAndIndex(7, 1), "edge-index(7, 1)"},
		{FromEdgePairAndIndex(3, 1, 5), "edge-pair-index(1, 3, 5)"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if got := NewUniqueIdentifier().String(); !strings.HasPrefix(got, "unique(") {
		t.Errorf("unique identifier prints as %q", got)
	}
}
