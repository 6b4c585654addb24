package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree that accepts repeated values. It does no
// rebalancing, so the height D of the tree depends only on the order of
// insertions and can reach n for sorted input.
// For every node, values in its left subtree are strictly less than the
// node's value and values in its right subtree are greater or equal, so
// equal values always go right. FindSecondHighest relies on this.
// Values are compared with cmp.Compare, so NaNs are ordered before all
// other floats instead of breaking the ordering.
// The zero value is an empty tree ready for use. BSTree isn't safe for
// concurrent use.
type BSTree[T constraints.Ordered] struct {
	root *Node[T] //the root of the tree, nil when empty.
	sz   uint
}

// New returns an empty BSTree.
func New[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{}
}

// From builds a BSTree by inserting vs from first to last.
// Time: O(n*D)
func From[T constraints.Ordered](vs ...T) *BSTree[T] {
	u := New[T]()
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Root of the tree, nil if the tree is empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Size returns the number of nodes in the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Clear the tree. All nodes are released with the root.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) *BSTree[T] {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if cmp.Less(v, cur.v) {
			curPtr = &cur.l
		} else {
			curPtr = &cur.r
		}
	}
	*curPtr = &Node[T]{v: v}
	u.sz++
	return u
}

// insert v into the subtree rooting at *curPtr. curPtr is passed by
// reference so that an empty link can be filled directly.
func (u *BSTree[T]) insert(curPtr **Node[T], v T) {
	if cur := *curPtr; cur == nil {
		*curPtr = &Node[T]{v: v}
		u.sz++
	} else if cmp.Less(v, cur.v) {
		u.insert(&cur.l, v)
	} else {
		u.insert(&cur.r, v)
	}
}

// InsertRecursively [Tree.InsertRecursively]. Recursive.
// It is a wrapper for insert.
// Time: O(D); Space: O(D)
func (u *BSTree[T]) InsertRecursively(v T) *BSTree[T] {
	u.insert(&u.root, v)
	return u
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		switch c := cmp.Compare(v, cur.v); {
		case c == 0:
			return cur
		case c < 0:
			cur = cur.l
		default:
			cur = cur.r
		}
	}
	return nil
}

func find[T constraints.Ordered](cur *Node[T], v T) *Node[T] {
	if cur == nil {
		return nil
	}
	switch c := cmp.Compare(v, cur.v); {
	case c == 0:
		return cur
	case c < 0:
		return find(cur.l, v)
	default:
		return find(cur.r, v)
	}
}

// FindRecursively [Tree.FindRecursively]. Recursive.
// Time: O(D); Space: O(D)
func (u *BSTree[T]) FindRecursively(v T) *Node[T] {
	return find(u.root, v)
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// remove v from the subtree rooting at *curPtr recursively. curPtr is
// passed by reference, which is where the replacement of a removed node
// gets attached. Returns false if v doesn't exist in the subtree.
// A node with two children takes the value of its in-order successor, and
// the successor, which has no left child, is then removed from the right
// subtree. Since values left of a node are strictly less, the descent
// towards the successor's value stops exactly at the successor.
func (u *BSTree[T]) remove(curPtr **Node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	switch c := cmp.Compare(v, cur.v); {
	case c < 0:
		return u.remove(&cur.l, v)
	case c > 0:
		return u.remove(&cur.r, v)
	}
	if cur.l == nil {
		*curPtr = cur.r
	} else if cur.r == nil {
		*curPtr = cur.l
	} else {
		cur.v = cur.r.leftmost().v
		return u.remove(&cur.r, cur.v)
	}
	u.sz--
	return true
}

// Remove [Tree.Remove]. Recursive, the depth of recursion is bounded by D.
// It is a wrapper for remove.
// Time: O(D)
func (u *BSTree[T]) Remove(v T) bool {
	return u.remove(&u.root, v)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.leftmost().v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.rightmost().v, true
}

// FindSecondHighest [Tree.FindSecondHighest]
// The rightmost node holds the maximum, and with equal values placed right
// it is also the last inserted copy of it. If it has a left subtree, the
// answer is the maximum there, otherwise it's the rightmost node's parent.
// This is a structural answer: when the maximum is repeated, the result is
// the repeated value, not the greatest value less than the maximum.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) FindSecondHighest() (T, bool) {
	if u.root == nil || u.root.l == nil && u.root.r == nil {
		return *new(T), false
	}
	var parent *Node[T]
	cur := u.root
	for cur.r != nil {
		parent, cur = cur, cur.r
	}
	if cur.l != nil {
		return cur.l.rightmost().v, true
	}
	return parent.v, true
}

// balancedHeight returns the height of the subtree rooting at cur, or -1
// once any subtree below is found unbalanced.
func balancedHeight[T constraints.Ordered](cur *Node[T]) int {
	if cur == nil {
		return 0
	}
	lh := balancedHeight(cur.l)
	if lh < 0 {
		return -1
	}
	rh := balancedHeight(cur.r)
	if rh < 0 || lh-rh > 1 || rh-lh > 1 {
		return -1
	}
	return max(lh, rh) + 1
}

// IsBalanced [Tree.IsBalanced]. Recursive, the depth of recursion is bounded by D.
// An empty tree is balanced.
// Time: O(n)
func (u *BSTree[T]) IsBalanced() bool {
	return balancedHeight(u.root) >= 0
}

// Height [Tree.Height]
// Time: O(n); Space: O(width of the tree)
func (u *BSTree[T]) Height() uint {
	return uint(len(u.levels()))
}

// levels returns the sizes of each level of the tree from the root down.
func (u *BSTree[T]) levels() (sizes []uint) {
	if u.root == nil {
		return
	}
	for cur := []*Node[T]{u.root}; len(cur) > 0; {
		sizes = append(sizes, uint(len(cur)))
		next := make([]*Node[T], 0, 2*len(cur))
		for _, n := range cur {
			if n.l != nil {
				next = append(next, n.l)
			}
			if n.r != nil {
				next = append(next, n.r)
			}
		}
		cur = next
	}
	return
}

// bound is a node with the range its value must fall in.
type bound[T constraints.Ordered] struct {
	n            *Node[T]
	lo, hi       T
	hasLo, hasHi bool
}

// Corrupt [Tree.Corrupt]
// Every node is checked against the range of values its ancestors allow:
// [lo, hi) where lo comes from the nearest ancestor it is right of and hi
// from the nearest ancestor it is left of.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Corrupt() bool {
	if u.root == nil {
		return false
	}
	st := []bound[T]{{n: u.root}}
	for len(st) > 0 {
		b := st[len(st)-1]
		st = st[:len(st)-1]
		if b.hasLo && cmp.Less(b.n.v, b.lo) || b.hasHi && !cmp.Less(b.n.v, b.hi) {
			return true
		}
		if b.n.l != nil {
			st = append(st, bound[T]{b.n.l, b.lo, b.n.v, b.hasLo, true})
		}
		if b.n.r != nil {
			st = append(st, bound[T]{b.n.r, b.n.v, b.hi, true, b.hasHi})
		}
	}
	return false
}
