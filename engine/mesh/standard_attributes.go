package mesh

// Names of the well known attributes.
const (
	TexCoord2Attribute     = "texCoord2"
	Normal3Attribute       = "normal3"
	Color3Attribute        = "color3"
	MaterialIndexAttribute = "materialIndex"
	TextureIndexAttribute  = "textureIndex"
)

// UndefinedMaterialIndex is the material index of faces with no material.
const UndefinedMaterialIndex int32 = -1

func TexCoord2Key(m *Mesh) AttributeKey {
	return m.GetAttributeKey(TexCoord2Attribute, AttributeVec2, AttributeStandard)
}

func Normal3Key(m *Mesh) AttributeKey {
	return m.GetAttributeKey(Normal3Attribute, AttributeUnitVec3, AttributeStandard)
}

func Color3Key(m *Mesh) AttributeKey {
	return m.GetAttributeKey(Color3Attribute, AttributeVec3, AttributeStandard)
}

func MaterialIndexKey(m *Mesh) AttributeKey {
	return m.GetAttributeKey(MaterialIndexAttribute, AttributeInt, AttributeStandard)
}

func TextureIndexKey(m *Mesh) AttributeKey {
	return m.GetAttributeKey(TextureIndexAttribute, AttributeInt, AttributeStandard)
}

// IsStandardAttributeName reports whether name is one of the well known
// attributes.
func IsStandardAttributeName(name string) bool {
	switch name {
	case TexCoord2Attribute, Normal3Attribute, Color3Attribute,
		MaterialIndexAttribute, TextureIndexAttribute:
		return true
	}
	return false
}
