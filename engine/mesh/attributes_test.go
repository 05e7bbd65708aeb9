package mesh

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestAttributeKeyMap(t *testing.T) {
	km := NewAttributeKeyMap()
	a := km.GetAttributeKey("a", AttributeFloat, 0)
	b := km.GetAttributeKey("b", AttributeVec3, AttributeTemporary)

	if again := km.GetAttributeKey("a", AttributeFloat, 0); again != a {
		t.Errorf("second lookup = %+v, want %+v", again, a)
	}
	if a.Handle != 1 || b.Handle != 2 {
		t.Errorf("handles = %d, %d, want 1, 2", a.Handle, b.Handle)
	}
	if got := km.Names(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v", got)
	}
	if got := km.PersistentNames(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("PersistentNames() = %v", got)
	}
	name, key, ok := km.FindAttributeNameAndKeyFromHandle(b.Handle)
	if !ok || name != "b" || key != b {
		t.Errorf("FindAttributeNameAndKeyFromHandle = %q, %+v, %v", name, key, ok)
	}

	km.EraseAttributeKey("a")
	if km.HasAttributeKey("a") {
		t.Error("erased key is still present")
	}
	if _, _, ok := km.FindAttributeNameAndKeyFromHandle(a.Handle); ok {
		t.Error("erased handle still resolves")
	}
	if c := km.GetAttributeKey("c", AttributeInt, 0); c.Handle != 3 {
		t.Errorf("new handle = %d, want 3", c.Handle)
	}
	if km.Len() != 2 {
		t.Errorf("Len() = %d, want 2", km.Len())
	}

	expectPanic(t, "type mismatch", func() { km.GetAttributeKey("b", AttributeFloat, 0) })
	expectPanic(t, "undefined type", func() { km.GetAttributeKey("d", AttributeUndefined, 0) })
}

func TestAttributeDefaults(t *testing.T) {
	m := NewMesh()
	var p AttributePossessor
	tests := []struct {
		name  string
		key   AttributeKey
		check func(AttributeKey) bool
	}{
		{"bool", m.GetAttributeKey("bool", AttributeBool), func(k AttributeKey) bool { return !p.GetBool(k) }},
		{"int", m.GetAttributeKey("int", AttributeInt), func(k AttributeKey) bool { return p.GetInt(k) == 0 }},
		{"float", m.GetAttributeKey("float", AttributeFloat), func(k AttributeKey) bool { return p.GetFloat(k) == 0 }},
		{"vec3", m.GetAttributeKey("vec3", AttributeVec3), func(k AttributeKey) bool { return p.GetVec3(k) == math.Vec3{} }},
		{"mat3", m.GetAttributeKey("mat3", AttributeMat3), func(k AttributeKey) bool { return p.GetMat3(k) == math.NewMat3Identity() }},
		{"mat4", m.GetAttributeKey("mat4", AttributeMat4), func(k AttributeKey) bool { return p.GetMat4(k) == math.NewMat4Identity() }},
		{"string", m.GetAttributeKey("string", AttributeString), func(k AttributeKey) bool { return p.GetString(k) == "" }},
		{"bbox3", m.GetAttributeKey("bbox3", AttributeBBox3), func(k AttributeKey) bool { return p.GetBBox3(k).IsEmpty() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p.HasAttribute(tt.key) {
				t.Fatal("unset attribute reported as present")
			}
			if !tt.check(tt.key) {
				t.Error("unset attribute did not read as the type default")
			}
		})
	}

	var none *AttributePossessor
	if none.HasAttribute(tests[0].key) || !none.HasNoAttributes() || none.AttributeCount() != 0 {
		t.Error("nil possessor should read as empty")
	}
}

func TestAttributeTypeChecks(t *testing.T) {
	m := NewMesh()
	weight := m.GetAttributeKey("weight", AttributeFloat)
	var p AttributePossessor

	expectPanic(t, "mismatched value", func() { p.SetAttribute(weight, IntValue(1)) })
	expectPanic(t, "mismatched read", func() { p.GetInt(weight) })
	expectPanic(t, "undefined key", func() { p.SetAttribute(AttributeKey{}, FloatValue(1)) })
}

func TestUnitVec3IsNormalized(t *testing.T) {
	m := NewMesh()
	n := Normal3Key(m)
	var p AttributePossessor
	p.SetUnitVec3(n, v3(3, 0, 4))
	if got := p.GetUnitVec3(n); !got.Equivalent(v3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("normal = %v, want (0.6, 0, 0.8)", got)
	}
	if !n.IsStandard() || !IsStandardAttributeName(Normal3Attribute) {
		t.Error("normal3 should be a standard attribute")
	}
}

func TestCopyAndReplaceAttributes(t *testing.T) {
	m := NewMesh()
	a := m.GetAttributeKey("a", AttributeInt)
	b := m.GetAttributeKey("b", AttributeInt)
	c := m.GetAttributeKey("c", AttributeInt)

	var src AttributePossessor
	src.SetInt(a, 2)
	src.SetInt(b, 3)

	var merged AttributePossessor
	merged.SetInt(a, 1)
	merged.CopyAttributes(&src)
	if merged.GetInt(a) != 1 || merged.GetInt(b) != 3 {
		t.Errorf("CopyAttributes gave a=%d b=%d, want a=1 b=3", merged.GetInt(a), merged.GetInt(b))
	}

	var replaced AttributePossessor
	replaced.SetInt(a, 1)
	replaced.SetInt(c, 5)
	replaced.ReplaceAttributes(&src)
	if replaced.GetInt(a) != 2 || replaced.GetInt(b) != 3 || replaced.HasAttribute(c) {
		t.Errorf("ReplaceAttributes left keys %v", replaced.AttributeKeys())
	}

	if got := src.AttributeKeys(); !slices.Equal(got, []AttributeKey{a, b}) {
		t.Errorf("AttributeKeys() = %v", got)
	}
}

func TestRemoveAttributeFromMeshAndAllElements(t *testing.T) {
	m, f, ring := unitSquare()
	key := m.GetAttributeKey("tag", AttributeString)
	m.SetString(key, "mesh")
	m.Vertex(ring[0]).SetString(key, "vertex")
	m.Edge(m.Face(f).AdjacentEdges()[0]).SetString(key, "edge")
	m.Face(f).SetString(key, "face")
	m.Face(f).VertexAttributes(ring[1]).SetString(key, "corner")

	RemoveAttributeFromMeshAndAllElements(m, key)

	if m.HasAttribute(key) || m.Vertex(ring[0]).HasAttribute(key) ||
		m.Edge(m.Face(f).AdjacentEdges()[0]).HasAttribute(key) ||
		m.Face(f).HasAttribute(key) || m.Face(f).HasVertexAttribute(ring[1], key) {
		t.Error("attribute survived removal")
	}
}
