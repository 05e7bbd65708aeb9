package aabb

import (
	m "math"

	"golang.org/x/exp/slices"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/containers"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
)

// maxLeafItems is the largest number of items stored in a single leaf.
const maxLeafItems = 4

// Boxed is anything that can report an axis-aligned bounding box.
type Boxed interface {
	BoundingBox() math.BBox3
}

type node struct {
	box math.BBox3
	// children for interior nodes, -1 for leaves
	left, right int
	// item range [start, end) for leaves
	start, end int
}

// Tree is a static bounding volume hierarchy. It is built once and then only
// queried.
type Tree[T Boxed] struct {
	items []T
	boxes []math.BBox3
	nodes []node
}

// New builds a tree over items by recursively splitting at the median of the
// longest axis of the item centers. The items slice is copied.
func New[T Boxed](items []T) *Tree[T] {
	t := &Tree[T]{
		items: append([]T(nil), items...),
		boxes: make([]math.BBox3, len(items)),
	}
	if len(items) == 0 {
		return t
	}
	for i, item := range t.items {
		t.boxes[i] = item.BoundingBox()
	}
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	t.build(order)

	// Reorder items so every leaf covers a contiguous range.
	items2 := make([]T, len(order))
	boxes2 := make([]math.BBox3, len(order))
	for i, k := range order {
		items2[i] = t.items[k]
		boxes2[i] = t.boxes[k]
	}
	t.items, t.boxes = items2, boxes2
	return t
}

func (t *Tree[T]) build(order []int) {
	type span struct{ node, start, end int }
	t.nodes = append(t.nodes, node{})
	// Nodes are built breadth first so siblings end up adjacent.
	pending := containers.NewRingQueue[span](16)
	pending.Enqueue(span{0, 0, len(order)})
	for !pending.IsEmpty() {
		s, _ := pending.Dequeue()

		box := math.NewBBox3Empty()
		centers := math.NewBBox3Empty()
		for _, k := range order[s.start:s.end] {
			box.ExtendByBox(t.boxes[k])
			centers.ExtendBy(t.boxes[k].Center())
		}
		n := &t.nodes[s.node]
		n.box = box
		if s.end-s.start <= maxLeafItems {
			n.left, n.right = -1, -1
			n.start, n.end = s.start, s.end
			continue
		}

		axis := longestAxis(centers.Size())
		sub := order[s.start:s.end]
		slices.SortFunc(sub, func(a, b int) int {
			ca := t.boxes[a].Center().Component(axis)
			cb := t.boxes[b].Center().Component(axis)
			switch {
			case ca < cb:
				return -1
			case ca > cb:
				return 1
			}
			return a - b
		})
		mid := s.start + (s.end-s.start)/2

		left := len(t.nodes)
		right := left + 1
		t.nodes = append(t.nodes, node{}, node{})
		// t.nodes may have moved
		t.nodes[s.node].left, t.nodes[s.node].right = left, right
		pending.Enqueue(span{left, s.start, mid})
		pending.Enqueue(span{right, mid, s.end})
	}
}

func longestAxis(size math.Vec3) int {
	switch {
	case size.X >= size.Y && size.X >= size.Z:
		return 0
	case size.Y >= size.Z:
		return 1
	}
	return 2
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	return len(t.items)
}

// BoundingBox returns the box around every item.
func (t *Tree[T]) BoundingBox() math.BBox3 {
	if len(t.nodes) == 0 {
		return math.NewBBox3Empty()
	}
	return t.nodes[0].box
}

// ApplyToBoundingBoxIntersection calls listener for every item whose bounding
// box intersects box. If listener returns true the traversal stops and
// ApplyToBoundingBoxIntersection returns true.
func (t *Tree[T]) ApplyToBoundingBoxIntersection(box math.BBox3, listener func(T) bool) bool {
	return t.apply(
		func(b math.BBox3) bool { return b.Intersects(box) },
		listener,
	)
}

// ApplyToTetrahedronIntersection calls listener for every item whose bounding
// box intersects the tetrahedron. The tetrahedron may be degenerate.
func (t *Tree[T]) ApplyToTetrahedronIntersection(tet [4]math.Vec3, listener func(T) bool) bool {
	tetBox := math.NewBBox3FromPoints(tet[:]...)
	axes := tetrahedronAxes(tet)
	return t.apply(
		func(b math.BBox3) bool {
			return b.Intersects(tetBox) && boxIntersectsTetrahedron(b, tet, axes)
		},
		listener,
	)
}

func (t *Tree[T]) apply(test func(math.BBox3) bool, listener func(T) bool) bool {
	if len(t.nodes) == 0 {
		return false
	}
	stack := []int{0}
	for len(stack) > 0 {
		n := t.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		if !test(n.box) {
			continue
		}
		if n.left < 0 {
			for i := n.start; i < n.end; i++ {
				if test(t.boxes[i]) && listener(t.items[i]) {
					return true
				}
			}
			continue
		}
		stack = append(stack, n.right, n.left)
	}
	return false
}

var boxAxes = [3]math.Vec3{
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
}

// tetrahedronAxes returns the candidate separating axes between a box and
// the tetrahedron that do not depend on the box: the face normals of the
// tetrahedron and the cross products of its edges with the box edges.
func tetrahedronAxes(tet [4]math.Vec3) []math.Vec3 {
	var axes []math.Vec3
	faces := [4][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	for _, f := range faces {
		n := tet[f[1]].Sub(tet[f[0]]).Cross(tet[f[2]].Sub(tet[f[0]]))
		if n.LengthSquared() > 0 {
			axes = append(axes, n)
		}
	}
	edges := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for _, e := range edges {
		d := tet[e[1]].Sub(tet[e[0]])
		for _, b := range boxAxes {
			if n := d.Cross(b); n.LengthSquared() > 0 {
				axes = append(axes, n)
			}
		}
	}
	return axes
}

// boxIntersectsTetrahedron applies the separating axis test. The box axes are
// covered by the caller's bounding box check.
func boxIntersectsTetrahedron(box math.BBox3, tet [4]math.Vec3, axes []math.Vec3) bool {
	center := box.Center()
	half := box.Size().MulScalar(0.5)
	for _, axis := range axes {
		r := half.X*m.Abs(axis.X) + half.Y*m.Abs(axis.Y) + half.Z*m.Abs(axis.Z)
		c := center.Dot(axis)
		lo, hi := m.Inf(1), m.Inf(-1)
		for _, p := range tet {
			d := p.Dot(axis)
			lo = m.Min(lo, d)
			hi = m.Max(hi, d)
		}
		if lo > c+r || hi < c-r {
			return false
		}
	}
	return true
}
