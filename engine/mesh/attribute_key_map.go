package mesh

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type namedAttributeKey struct {
	name string
	key  AttributeKey
}

// AttributeKeyMap interns attribute names. Every Mesh owns one, so handles
// are only meaningful within the mesh that issued them.
type AttributeKeyMap struct {
	byName     map[string]AttributeKey
	byHandle   map[AttributeHandle]string
	nextHandle AttributeHandle
}

func NewAttributeKeyMap() *AttributeKeyMap {
	return &AttributeKeyMap{
		byName:     make(map[string]AttributeKey),
		byHandle:   make(map[AttributeHandle]string),
		nextHandle: 1,
	}
}

// GetAttributeKey returns the key for name, creating it on first use.
// Requesting an existing name with a different type is a programming error
// and panics.
func (km *AttributeKeyMap) GetAttributeKey(name string, t AttributeType, flags AttributeFlags) AttributeKey {
	if key, ok := km.byName[name]; ok {
		if key.Type != t {
			panic(fmt.Sprintf("attribute %q has type %s, requested as %s", name, key.Type, t))
		}
		return key
	}
	if t == AttributeUndefined {
		panic(fmt.Sprintf("attribute %q requested with undefined type", name))
	}
	key := AttributeKey{Handle: km.nextHandle, Type: t, Flags: flags}
	km.nextHandle++
	km.byName[name] = key
	km.byHandle[key.Handle] = name
	return key
}

func (km *AttributeKeyMap) HasAttributeKey(name string) bool {
	_, ok := km.byName[name]
	return ok
}

// EraseAttributeKey forgets name. Its handle is never reissued.
func (km *AttributeKeyMap) EraseAttributeKey(name string) {
	if key, ok := km.byName[name]; ok {
		delete(km.byHandle, key.Handle)
		delete(km.byName, name)
	}
}

// FindAttributeNameAndKeyFromHandle returns the name and key that own handle.
func (km *AttributeKeyMap) FindAttributeNameAndKeyFromHandle(handle AttributeHandle) (string, AttributeKey, bool) {
	name, ok := km.byHandle[handle]
	if !ok {
		return "", AttributeKey{}, false
	}
	return name, km.byName[name], true
}

func (km *AttributeKeyMap) Len() int {
	return len(km.byName)
}

// Names returns every interned name in handle order.
func (km *AttributeKeyMap) Names() []string {
	entries := km.sorted()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// PersistentNames returns the names a writer should save: every key not
// flagged AttributeTemporary, in handle order.
func (km *AttributeKeyMap) PersistentNames() []string {
	var names []string
	for _, e := range km.sorted() {
		if !e.key.IsTemporary() {
			names = append(names, e.name)
		}
	}
	return names
}

// Key returns the key interned for name.
func (km *AttributeKeyMap) Key(name string) (AttributeKey, bool) {
	key, ok := km.byName[name]
	return key, ok
}

func (km *AttributeKeyMap) sorted() []namedAttributeKey {
	entries := make([]namedAttributeKey, 0, len(km.byName))
	for name, key := range km.byName {
		entries = append(entries, namedAttributeKey{name, key})
	}
	slices.SortFunc(entries, func(a, b namedAttributeKey) int {
		return int(a.key.Handle) - int(b.key.Handle)
	})
	return entries
}

func (km *AttributeKeyMap) clone() *AttributeKeyMap {
	c := NewAttributeKeyMap()
	for name, key := range km.byName {
		c.byName[name] = key
		c.byHandle[key.Handle] = name
	}
	c.nextHandle = km.nextHandle
	return c
}
