package Trees

import "golang.org/x/exp/constraints"

// Tree represents an unbalanced binary search tree implemented using nodes.
// Values that compare less than a node go to its left, everything else,
// including values equal to the node, goes to its right.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool), and x is the
// zero value of T which shouldn't be used.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T constraints.Ordered] interface {
	//Insert v as a new leaf. Duplicates are accepted and placed right.
	//Returns the tree itself for chaining.
	Insert(v T) *BSTree[T]
	//InsertRecursively is Insert done by recursion. For the same sequence of
	//values both produce the same shape.
	InsertRecursively(v T) *BSTree[T]
	//Find the first node on the search path holding v. nil if there is none.
	Find(v T) *Node[T]
	//FindRecursively is Find done by recursion.
	FindRecursively(v T) *Node[T]
	//Remove one occurrence of v. Returns false and changes nothing if v isn't
	//in the tree.
	Remove(v T) bool
	//DFSPreOrder returns the values in node, left, right order.
	DFSPreOrder() []T
	//DFSInOrder returns the values in left, node, right order, which is
	//non-decreasing.
	DFSInOrder() []T
	//DFSPostOrder returns the values in left, right, node order.
	DFSPostOrder() []T
	//BFS returns the values level by level, left to right within a level.
	BFS() []T
	//IsBalanced reports whether the heights of the two subtrees of every node
	//differ by at most 1.
	IsBalanced() bool
	//FindSecondHighest element of the tree. Undefined if the tree has less
	//than 2 nodes.
	FindSecondHighest() (T, bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Height of the tree, the number of nodes on the longest path from root.
	Height() uint
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering of the tree.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var _ Tree[int] = (*BSTree[int])(nil)
