package Trees

import "golang.org/x/exp/constraints"

// Node in the BSTree. A node exclusively owns its children; no node is
// reachable from two links.
// Nodes are only created by the tree, the exported receivers are read only.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

// Value held by the node.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child, nil if absent.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child, nil if absent.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// leftmost node in the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func (n *Node[T]) leftmost() *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node in the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func (n *Node[T]) rightmost() *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}
