package mesh

import (
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// AttributeValue is a tagged union holding one value of any AttributeType.
type AttributeValue struct {
	kind AttributeType
	data any
}

func BoolValue(v bool) AttributeValue { return AttributeValue{AttributeBool, v} }
func IntValue(v int32) AttributeValue { return AttributeValue{AttributeInt, v} }
func FloatValue(v float64) AttributeValue { return AttributeValue{AttributeFloat, v} }
func Vec2Value(v math.Vec2) AttributeValue { return AttributeValue{AttributeVec2, v} }
func Vec3Value(v math.Vec3) AttributeValue { return AttributeValue{AttributeVec3, v} }
func Vec4Value(v math.Vec4) AttributeValue { return AttributeValue{AttributeVec4, v} }
func Mat3Value(v math.Mat3) AttributeValue { return AttributeValue{AttributeMat3, v} }
func Mat4Value(v math.Mat4) AttributeValue { return AttributeValue{AttributeMat4, v} }
func StringValue(v string) AttributeValue { return AttributeValue{AttributeString, v} }
func BBox2Value(v math.BBox2) AttributeValue { return AttributeValue{AttributeBBox2, v} }
func BBox3Value(v math.BBox3) AttributeValue { return AttributeValue{AttributeBBox3, v} }

// UnitVec3Value normalizes v before storing it.
func UnitVec3Value(v math.Vec3) AttributeValue {
	return AttributeValue{AttributeUnitVec3, v.Normalized()}
}

// Type returns the type of the stored value.
func (v AttributeValue) Type() AttributeType { return v.kind }

func (v AttributeValue) Bool() bool {
	b, _ := v.data.(bool)
	return b
}

func (v AttributeValue) Int() int32 {
	i, _ := v.data.(int32)
	return i
}

func (v AttributeValue) Float() float64 {
	f, _ := v.data.(float64)
	return f
}

func (v AttributeValue) Vec2() math.Vec2 {
	r, _ := v.data.(math.Vec2)
	return r
}

// Vec3 returns the value of a Vec3 or UnitVec3 attribute.
func (v AttributeValue) Vec3() math.Vec3 {
	r, _ := v.data.(math.Vec3)
	return r
}

func (v AttributeValue) Vec4() math.Vec4 {
	r, _ := v.data.(math.Vec4)
	return r
}

func (v AttributeValue) Mat3() math.Mat3 {
	if r, ok := v.data.(math.Mat3); ok {
		return r
	}
	return math.NewMat3Identity()
}

func (v AttributeValue) Mat4() math.Mat4 {
	if r, ok := v.data.(math.Mat4); ok {
		return r
	}
	return math.NewMat4Identity()
}

func (v AttributeValue) Str() string {
	s, _ := v.data.(string)
	return s
}

func (v AttributeValue) BBox2() math.BBox2 {
	if r, ok := v.data.(math.BBox2); ok {
		return r
	}
	return math.NewBBox2Empty()
}

func (v AttributeValue) BBox3() math.BBox3 {
	if r, ok := v.data.(math.BBox3); ok {
		return r
	}
	return math.NewBBox3Empty()
}
