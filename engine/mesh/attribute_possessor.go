package mesh

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

type attributeEntry struct {
	key   AttributeKey
	value AttributeValue
}

// AttributePossessor is a sparse map from AttributeKey to value. Reading an
// attribute that is not set returns the default value of the key's type.
// The zero value is an empty possessor, and a nil *AttributePossessor reads
// as empty.
type AttributePossessor struct {
	attributes map[AttributeHandle]attributeEntry
}

func (p *AttributePossessor) lookup(key AttributeKey) (AttributeValue, bool) {
	if p == nil || p.attributes == nil {
		return AttributeValue{}, false
	}
	e, ok := p.attributes[key.Handle]
	if !ok || e.key.Type != key.Type {
		return AttributeValue{}, false
	}
	return e.value, true
}

func (p *AttributePossessor) get(key AttributeKey, want AttributeType) AttributeValue {
	if key.Type != want {
		panic(fmt.Sprintf("attribute key of type %s read as %s", key.Type, want))
	}
	if v, ok := p.lookup(key); ok {
		return v
	}
	return DefaultAttributeValue(want)
}

// SetAttribute stores value under key. The value type must match the key.
func (p *AttributePossessor) SetAttribute(key AttributeKey, value AttributeValue) {
	if !key.IsDefined() {
		panic("attribute set with an undefined key")
	}
	if key.Type != value.kind {
		panic(fmt.Sprintf("attribute key of type %s assigned a %s value", key.Type, value.kind))
	}
	if p.attributes == nil {
		p.attributes = make(map[AttributeHandle]attributeEntry)
	}
	p.attributes[key.Handle] = attributeEntry{key: key, value: value}
}

// Attribute returns the value stored under key and whether it was set.
func (p *AttributePossessor) Attribute(key AttributeKey) (AttributeValue, bool) {
	return p.lookup(key)
}

func (p *AttributePossessor) HasAttribute(key AttributeKey) bool {
	_, ok := p.lookup(key)
	return ok
}

func (p *AttributePossessor) EraseAttribute(key AttributeKey) {
	if p == nil || p.attributes == nil {
		return
	}
	delete(p.attributes, key.Handle)
}

func (p *AttributePossessor) HasNoAttributes() bool {
	return p == nil || len(p.attributes) == 0
}

func (p *AttributePossessor) AttributeCount() int {
	if p == nil {
		return 0
	}
	return len(p.attributes)
}

// AttributeKeys returns the keys of every set attribute in handle order.
func (p *AttributePossessor) AttributeKeys() []AttributeKey {
	if p == nil {
		return nil
	}
	keys := make([]AttributeKey, 0, len(p.attributes))
	for _, e := range p.attributes {
		keys = append(keys, e.key)
	}
	slices.SortFunc(keys, func(a, b AttributeKey) int {
		return int(a.Handle) - int(b.Handle)
	})
	return keys
}

// CopyAttributes copies every attribute of src that p does not already
// have. Existing values on p are left untouched.
func (p *AttributePossessor) CopyAttributes(src *AttributePossessor) {
	if p == src {
		return
	}
	MergeAttributes(p, src)
}

// ReplaceAttributes replaces every attribute of p with those of src.
func (p *AttributePossessor) ReplaceAttributes(src *AttributePossessor) {
	if p == src {
		return
	}
	p.ClearAttributes()
	if src == nil {
		return
	}
	for h, e := range src.attributes {
		if p.attributes == nil {
			p.attributes = make(map[AttributeHandle]attributeEntry, len(src.attributes))
		}
		p.attributes[h] = e
	}
}

func (p *AttributePossessor) ClearAttributes() {
	p.attributes = nil
}

func (p *AttributePossessor) GetBool(key AttributeKey) bool {
	return p.get(key, AttributeBool).Bool()
}

func (p *AttributePossessor) GetInt(key AttributeKey) int32 {
	return p.get(key, AttributeInt).Int()
}

func (p *AttributePossessor) GetFloat(key AttributeKey) float64 {
	return p.get(key, AttributeFloat).Float()
}

func (p *AttributePossessor) GetVec2(key AttributeKey) math.Vec2 {
	return p.get(key, AttributeVec2).Vec2()
}

func (p *AttributePossessor) GetVec3(key AttributeKey) math.Vec3 {
	return p.get(key, AttributeVec3).Vec3()
}

func (p *AttributePossessor) GetVec4(key AttributeKey) math.Vec4 {
	return p.get(key, AttributeVec4).Vec4()
}

func (p *AttributePossessor) GetMat3(key AttributeKey) math.Mat3 {
	return p.get(key, AttributeMat3).Mat3()
}

func (p *AttributePossessor) GetMat4(key AttributeKey) math.Mat4 {
	return p.get(key, AttributeMat4).Mat4()
}

func (p *AttributePossessor) GetString(key AttributeKey) string {
	return p.get(key, AttributeString).Str()
}

func (p *AttributePossessor) GetUnitVec3(key AttributeKey) math.Vec3 {
	return p.get(key, AttributeUnitVec3).Vec3()
}

func (p *AttributePossessor) GetBBox2(key AttributeKey) math.BBox2 {
	return p.get(key, AttributeBBox2).BBox2()
}

func (p *AttributePossessor) GetBBox3(key AttributeKey) math.BBox3 {
	return p.get(key, AttributeBBox3).BBox3()
}

func (p *AttributePossessor) SetBool(key AttributeKey, v bool) {
	p.SetAttribute(key, BoolValue(v))
}

func (p *AttributePossessor) SetInt(key AttributeKey, v int32) {
	p.SetAttribute(key, IntValue(v))
}

func (p *AttributePossessor) SetFloat(key AttributeKey, v float64) {
	p.SetAttribute(key, FloatValue(v))
}

func (p *AttributePossessor) SetVec2(key AttributeKey, v math.Vec2) {
	p.SetAttribute(key, Vec2Value(v))
}

func (p *AttributePossessor) SetVec3(key AttributeKey, v math.Vec3) {
	p.SetAttribute(key, Vec3Value(v))
}

func (p *AttributePossessor) SetVec4(key AttributeKey, v math.Vec4) {
	p.SetAttribute(key, Vec4Value(v))
}

func (p *AttributePossessor) SetMat3(key AttributeKey, v math.Mat3) {
	p.SetAttribute(key, Mat3Value(v))
}

func (p *AttributePossessor) SetMat4(key AttributeKey, v math.Mat4) {
	p.SetAttribute(key, Mat4Value(v))
}

func (p *AttributePossessor) SetString(key AttributeKey, v string) {
	p.SetAttribute(key, StringValue(v))
}

// SetUnitVec3 stores a normalized copy of v.
func (p *AttributePossessor) SetUnitVec3(key AttributeKey, v math.Vec3) {
	p.SetAttribute(key, UnitVec3Value(v))
}

func (p *AttributePossessor) SetBBox2(key AttributeKey, v math.BBox2) {
	p.SetAttribute(key, BBox2Value(v))
}

func (p *AttributePossessor) SetBBox3(key AttributeKey, v math.BBox3) {
	p.SetAttribute(key, BBox3Value(v))
}
