package mesh

// MergeAttributes copies into target every attribute of source that target
// does not already have. Values already on target are never overwritten.
func MergeAttributes(target, source *AttributePossessor) {
	if source == nil {
		return
	}
	for h, e := range source.attributes {
		if _, ok := target.attributes[h]; ok {
			continue
		}
		if target.attributes == nil {
			target.attributes = make(map[AttributeHandle]attributeEntry, len(source.attributes))
		}
		target.attributes[h] = e
	}
}
