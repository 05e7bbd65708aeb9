// Package meshretri splits the faces of a mesh along line segments embedded
// in them, such as shadow boundaries or intersection curves.
package meshretri

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/mesh"
)

type IdentifierKind uint8

const (
	KindUndefined IdentifierKind = iota
	KindOneVertex
	KindTwoVertices
	KindVertexAndIndex
	KindEdgeAndIndex
	KindTwoEdgesAndVertex
	KindTwoEdgesAndIndex
	KindUnique
)

func (k IdentifierKind) String() string {
	switch k {
	case KindOneVertex:
		return "vertex"
	case KindTwoVertices:
		return "vertex-pair"
	case KindVertexAndIndex:
		return "vertex-index"
	case KindEdgeAndIndex:
		return "edge-index"
	case KindTwoEdgesAndVertex:
		return "edge-pair-vertex"
	case KindTwoEdgesAndIndex:
		return "edge-pair-index"
	case KindUnique:
		return "unique"
	}
	return "undefined"
}

// EndpointIdentifier names the geometric event that produced a line segment
// endpoint, for example the silhouette of a wedge passing through a vertex.
// Endpoints produced by the same event on different faces carry equal
// identifiers and are welded into a single mesh vertex. Identifiers are
// comparable and can be used as map keys.
type EndpointIdentifier struct {
	kind          IdentifierKind
	id1, id2, id3 int64
	unique        uuid.UUID
}

// Undefined returns an identifier that never welds with anything.
func Undefined() EndpointIdentifier {
	return EndpointIdentifier{}
}

// FromVertex identifies an endpoint that coincides with an existing vertex.
func FromVertex(v mesh.VertexHandle) EndpointIdentifier {
	return EndpointIdentifier{kind: KindOneVertex, id1: int64(v)}
}

// FromVertexPair identifies an endpoint produced by two vertices. The order
// of the vertices does not matter.
func FromVertexPair(v0, v1 mesh.VertexHandle) EndpointIdentifier {
	if v1 < v0 {
		v0, v1 = v1, v0
	}
	return EndpointIdentifier{kind: KindTwoVertices, id1: int64(v0), id2: int64(v1)}
}

func FromVertexAndIndex(v mesh.VertexHandle, index int) EndpointIdentifier {
	return EndpointIdentifier{kind: KindVertexAndIndex, id1: int64(v), id2: int64(index)}
}

// FromEdgeAndIndex identifies an endpoint that lies on the interior of an
// existing edge.
func FromEdgeAndIndex(e mesh.EdgeHandle, index int) EndpointIdentifier {
	return EndpointIdentifier{kind: KindEdgeAndIndex, id1: int64(e), id2: int64(index)}
}

func FromEdgePairAndVertex(e0, e1 mesh.EdgeHandle, v mesh.VertexHandle) EndpointIdentifier {
	if e1 < e0 {
		e0, e1 = e1, e0
	}
	return EndpointIdentifier{kind: KindTwoEdgesAndVertex, id1: int64(e0), id2: int64(e1), id3: int64(v)}
}

func FromEdgePairAndIndex(e0, e1 mesh.EdgeHandle, index int) EndpointIdentifier {
	if e1 < e0 {
		e0, e1 = e1, e0
	}
	return EndpointIdentifier{kind: KindTwoEdgesAndIndex, id1: int64(e0), id2: int64(e1), id3: int64(index)}
}

// NewUniqueIdentifier returns an identifier equal only to itself.
func NewUniqueIdentifier() EndpointIdentifier {
	return EndpointIdentifier{kind: KindUnique, unique: uuid.New()}
}

func (id EndpointIdentifier) Kind() IdentifierKind {
	return id.kind
}

func (id EndpointIdentifier) IsUndefined() bool {
	return id.kind == KindUndefined
}

// Vertex returns the vertex named by the identifier, if it names exactly one.
func (id EndpointIdentifier) Vertex() (mesh.VertexHandle, bool) {
	switch id.kind {
	case KindOneVertex, KindVertexAndIndex:
		return mesh.VertexHandle(id.id1), true
	}
	return mesh.InvalidVertex, false
}

// Edge returns the edge named by the identifier, if it names exactly one.
func (id EndpointIdentifier) Edge() (mesh.EdgeHandle, bool) {
	if id.kind == KindEdgeAndIndex {
		return mesh.EdgeHandle(id.id1), true
	}
	return mesh.InvalidEdge, false
}

// Less orders identifiers by kind and then by their components, most
// significant last.
func (id EndpointIdentifier) Less(other EndpointIdentifier) bool {
	if id.kind != other.kind {
		return id.kind < other.kind
	}
	if id.id3 != other.id3 {
		return id.id3 < other.id3
	}
	if id.id2 != other.id2 {
		return id.id2 < other.id2
	}
	if id.id1 != other.id1 {
		return id.id1 < other.id1
	}
	return bytes.Compare(id.unique[:], other.unique[:]) < 0
}

func (id EndpointIdentifier) String() string {
	switch id.kind {
	case KindUndefined:
		return "undefined"
	case KindOneVertex:
		return fmt.Sprintf("vertex(%d)", id.id1)
	case KindTwoVertices, KindVertexAndIndex, KindEdgeAndIndex:
		return fmt.Sprintf("%s(%d, %d)", id.kind, id.id1, id.id2)
	case KindUnique:
		return fmt.Sprintf("unique(%s)", id.unique)
	}
	return fmt.Sprintf("%s(%d, %d, %d)", id.kind, id.id1, id.id2, id.id3)
}
