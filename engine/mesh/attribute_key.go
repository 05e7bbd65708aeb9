package mesh

import (
	"fmt"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// AttributeType is the declared type of the values stored under an
// AttributeKey.
type AttributeType uint8

const (
	AttributeUndefined AttributeType = iota
	AttributeBool
	AttributeInt
	AttributeFloat
	AttributeVec2
	AttributeVec3
	AttributeVec4
	AttributeMat3
	AttributeMat4
	AttributeString
	AttributeUnitVec3
	AttributeBBox2
	AttributeBBox3
)

var attributeTypeNames = [...]string{
	AttributeUndefined: "undefined",
	AttributeBool:      "bool",
	AttributeInt:       "int",
	AttributeFloat:     "float",
	AttributeVec2:      "vec2",
	AttributeVec3:      "vec3",
	AttributeVec4:      "vec4",
	AttributeMat3:      "mat3",
	AttributeMat4:      "mat4",
	AttributeString:    "string",
	AttributeUnitVec3:  "unitvec3",
	AttributeBBox2:     "bbox2",
	AttributeBBox3:     "bbox3",
}

func (t AttributeType) String() string {
	if int(t) < len(attributeTypeNames) {
		return attributeTypeNames[t]
	}
	return fmt.Sprintf("AttributeType(%d)", uint8(t))
}

// AttributeFlags qualify how an attribute key is treated outside of the
// mesh itself.
type AttributeFlags uint8

const (
	// AttributeStandard marks one of the well known attribute names.
	AttributeStandard AttributeFlags = 1 << iota
	// AttributeTemporary marks keys that must never be persisted.
	AttributeTemporary
)

// AttributeHandle is the interned integer of an attribute name. Handles
// start at 1; zero means no key.
type AttributeHandle uint32

// AttributeKey identifies an attribute by interned handle and declared type.
type AttributeKey struct {
	Handle AttributeHandle
	Type   AttributeType
	Flags  AttributeFlags
}

// IsDefined reports whether the key was issued by an AttributeKeyMap.
func (k AttributeKey) IsDefined() bool {
	return k.Handle != 0 && k.Type != AttributeUndefined
}

func (k AttributeKey) IsStandard() bool {
	return k.Flags&AttributeStandard != 0
}

func (k AttributeKey) IsTemporary() bool {
	return k.Flags&AttributeTemporary != 0
}

// DefaultAttributeValue returns the value read for an attribute that was
// never set: false, zero, zero vectors, identity matrices, the empty string
// and empty bounding boxes.
func DefaultAttributeValue(t AttributeType) AttributeValue {
	switch t {
	case AttributeBool:
		return BoolValue(false)
	case AttributeInt:
		return IntValue(0)
	case AttributeFloat:
		return FloatValue(0)
	case AttributeVec2:
		return Vec2Value(math.Vec2{})
	case AttributeVec3:
		return Vec3Value(math.Vec3{})
	case AttributeVec4:
		return Vec4Value(math.Vec4{})
	case AttributeMat3:
		return Mat3Value(math.NewMat3Identity())
	case AttributeMat4:
		return Mat4Value(math.NewMat4Identity())
	case AttributeString:
		return StringValue("")
	case AttributeUnitVec3:
		return AttributeValue{kind: AttributeUnitVec3, data: math.Vec3{}}
	case AttributeBBox2:
		return BBox2Value(math.NewBBox2Empty())
	case AttributeBBox3:
		return BBox3Value(math.NewBBox3Empty())
	}
	return AttributeValue{}
}
