package Trees

import (
	"slices"

	"github.com/g-m-twostay/go-bst/Queues"
)

// The traversals keep their pending nodes in a slice used as a stack (or in a
// queue for BFS) rather than on the call stack, so a degenerate tree of any
// height can be walked. All of them return a fresh slice of u.Size() values,
// empty for an empty tree.

// DFSPreOrder [Tree.DFSPreOrder]
// Time: O(n); Space: O(D)
func (u *BSTree[T]) DFSPreOrder() []T {
	vs := make([]T, 0, u.sz)
	if u.root == nil {
		return vs
	}
	for st := []*Node[T]{u.root}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		vs = append(vs, cur.v)
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
	}
	return vs
}

// DFSInOrder [Tree.DFSInOrder]
// Time: O(n); Space: O(D)
func (u *BSTree[T]) DFSInOrder() []T {
	vs := make([]T, 0, u.sz)
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		vs = append(vs, cur.v)
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
	return vs
}

// DFSPostOrder [Tree.DFSPostOrder]
// Visits in node, right, left order and reverses the result, which is the
// left, right, node order.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) DFSPostOrder() []T {
	vs := make([]T, 0, u.sz)
	if u.root == nil {
		return vs
	}
	for st := []*Node[T]{u.root}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		vs = append(vs, cur.v)
		if cur.l != nil {
			st = append(st, cur.l)
		}
		if cur.r != nil {
			st = append(st, cur.r)
		}
	}
	slices.Reverse(vs)
	return vs
}

// BFS [Tree.BFS]
// Time: O(n); Space: O(width of the tree)
func (u *BSTree[T]) BFS() []T {
	vs := make([]T, 0, u.sz)
	if u.root == nil {
		return vs
	}
	q := Queues.MakeArrayQueue[*Node[T]](16)
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		vs = append(vs, cur.v)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return vs
}
