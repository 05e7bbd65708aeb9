package delaunay

import (
	"fmt"
)

// IndexEdge is an edge between two points of a triangulator's point list.
type IndexEdge [2]int

func (e IndexEdge) canonical() IndexEdge {
	if e[1] < e[0] {
		return IndexEdge{e[1], e[0]}
	}
	return e
}

// Triangle is an output triangle. Points are counterclockwise indices into
// the output point list, and Edges[k] indexes the output edge that joins
// Points[k] and Points[(k+1)%3].
type Triangle struct {
	Points [3]int
	Edges  [3]int
}

// Statistics counts the work done by one triangulation.
type Statistics struct {
	Insertions           int
	FaceSplits           int
	EdgeSplits           int
	HullInsertions       int
	DelaunayFlips        int
	WalkSteps            int
	WalkFallbacks        int
	ConstraintFlips      int
	RecoveredConstraints int
}

func (s Statistics) String() string {
	return fmt.Sprintf("insertions=%d face_splits=%d edge_splits=%d hull_insertions=%d "+
		"delaunay_flips=%d walk_steps=%d walk_fallbacks=%d constraint_flips=%d recovered_constraints=%d",
		s.Insertions, s.FaceSplits, s.EdgeSplits, s.HullInsertions,
		s.DelaunayFlips, s.WalkSteps, s.WalkFallbacks, s.ConstraintFlips, s.RecoveredConstraints)
}
