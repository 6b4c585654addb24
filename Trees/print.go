package Trees

import (
	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// addChildren of n under branch, left child before right. Children are tagged
// with "L" or "R" so a lone child's side stays visible.
func addChildren[T constraints.Ordered](branch treeprint.Tree, n *Node[T]) {
	for _, c := range [2]struct {
		side  string
		child *Node[T]
	}{{"L", n.l}, {"R", n.r}} {
		if c.child == nil {
			continue
		}
		if c.child.l == nil && c.child.r == nil {
			branch.AddMetaNode(c.side, c.child.v)
		} else {
			addChildren(branch.AddMetaBranch(c.side, c.child.v), c.child)
		}
	}
}

// String renders the shape of the tree, one node per line.
// Recursive.
func (u *BSTree[T]) String() string {
	if u.root == nil {
		return treeprint.New().String()
	}
	t := treeprint.NewWithRoot(u.root.v)
	addChildren(t, u.root)
	return t.String()
}
