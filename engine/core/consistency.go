package core

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Inconsistency names one kind of mesh invariant violation.
type Inconsistency int

const (
	NaNVertices Inconsistency = iota
	InfinityVertices
	DuplicateVertices
	DuplicateEdges
	DuplicateFaces
	VerticesWithZeroEdges
	VerticesWithOneEdge
	VerticesWithDuplicateEdges
	VerticesWithoutFaces
	VerticesWithDuplicateFaces
	EdgesWithoutTwoVertices
	EdgesWithDuplicateVertices
	EdgesWithoutFaces
	EdgesWithDuplicateFaces
	FacesWithoutThreeVertices
	FacesWithDuplicateVertices
	FacesWithoutThreeEdges
	FacesWithDuplicateEdges
	FacesWithZeroArea
	FacesWithClockwiseVertices
	VertexEdgesWithoutBackpointer
	VertexFacesWithoutBackpointer
	EdgeFacesWithoutBackpointer
	EdgeVerticesWithoutBackpointer
	FaceEdgesWithoutBackpointer
	FaceVerticesWithoutBackpointer
	FacesWithMismatchedVertexEdgeOrder
	EdgesWithFacesOnSameSide
	FacesWithDegenerateProjection
)

var inconsistencyNames = map[Inconsistency]string{
	NaNVertices:                        "NaN vertices",
	InfinityVertices:                   "infinity vertices",
	DuplicateVertices:                  "duplicate vertices",
	DuplicateEdges:                     "duplicate edges",
	DuplicateFaces:                     "duplicate faces",
	VerticesWithZeroEdges:              "vertices with zero edges",
	VerticesWithOneEdge:                "vertices with one edge",
	VerticesWithDuplicateEdges:         "vertices with duplicate edges",
	VerticesWithoutFaces:               "vertices without faces",
	VerticesWithDuplicateFaces:         "vertices with duplicate faces",
	EdgesWithoutTwoVertices:            "edges without two vertices",
	EdgesWithDuplicateVertices:         "edges with duplicate vertices",
	EdgesWithoutFaces:                  "edges without faces",
	EdgesWithDuplicateFaces:            "edges with duplicate faces",
	FacesWithoutThreeVertices:          "faces without three vertices",
	FacesWithDuplicateVertices:         "faces with duplicate vertices",
	FacesWithoutThreeEdges:             "faces without three edges",
	FacesWithDuplicateEdges:            "faces with duplicate edges",
	FacesWithZeroArea:                  "faces with zero area",
	FacesWithClockwiseVertices:         "faces with clockwise vertices",
	VertexEdgesWithoutBackpointer:      "vertex edges without backpointer",
	VertexFacesWithoutBackpointer:      "vertex faces without backpointer",
	EdgeFacesWithoutBackpointer:        "edge faces without backpointer",
	EdgeVerticesWithoutBackpointer:     "edge vertices without backpointer",
	FaceEdgesWithoutBackpointer:        "face edges without backpointer",
	FaceVerticesWithoutBackpointer:     "face vertices without backpointer",
	FacesWithMismatchedVertexEdgeOrder: "faces with mismatched vertex edge order",
	EdgesWithFacesOnSameSide:           "edges with faces on same side",
	FacesWithDegenerateProjection:      "faces with degenerate projection",
}

func (i Inconsistency) String() string {
	if name, ok := inconsistencyNames[i]; ok {
		return name
	}
	return fmt.Sprintf("inconsistency(%d)", int(i))
}

// ConsistencyStatus counts each kind of inconsistency found by a
// consistency pass. The zero value reports a consistent mesh.
type ConsistencyStatus struct {
	counts map[Inconsistency]int
}

func NewConsistencyStatus() *ConsistencyStatus {
	return &ConsistencyStatus{counts: make(map[Inconsistency]int)}
}

func (s *ConsistencyStatus) Increment(kind Inconsistency) {
	if s.counts == nil {
		s.counts = make(map[Inconsistency]int)
	}
	s.counts[kind]++
}

func (s *ConsistencyStatus) Count(kind Inconsistency) int {
	return s.counts[kind]
}

func (s *ConsistencyStatus) IsConsistent() bool {
	for _, n := range s.counts {
		if n != 0 {
			return false
		}
	}
	return true
}

// Kinds returns the inconsistencies with a non-zero count in ascending order.
func (s *ConsistencyStatus) Kinds() []Inconsistency {
	kinds := make([]Inconsistency, 0, len(s.counts))
	for k, n := range s.counts {
		if n != 0 {
			kinds = append(kinds, k)
		}
	}
	slices.Sort(kinds)
	return kinds
}

func (s *ConsistencyStatus) String() string {
	if s.IsConsistent() {
		return "consistent"
	}
	parts := make([]string, 0, len(s.counts))
	for _, k := range s.Kinds() {
		parts = append(parts, fmt.Sprintf("%s: %d", k, s.counts[k]))
	}
	return strings.Join(parts, ", ")
}
