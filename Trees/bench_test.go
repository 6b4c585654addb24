package Trees

import (
	"testing"
)

const (
	bAddN = 1 << 16
	bQryN = bAddN / 2
)

var sideEff *Node[int]

func BenchmarkInsert(b *testing.B) {
	p := rg.Perm(bAddN)
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for _, v := range p {
			tree.Insert(v)
		}
	}
}

func BenchmarkInsertRecursively(b *testing.B) {
	p := rg.Perm(bAddN)
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for _, v := range p {
			tree.InsertRecursively(v)
		}
	}
}

func BenchmarkFind(b *testing.B) {
	tree := From(rg.Perm(bAddN)...)
	q := rg.Perm(bAddN)[:bQryN]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range q {
			sideEff = tree.Find(v)
		}
	}
}

func BenchmarkFindRecursively(b *testing.B) {
	tree := From(rg.Perm(bAddN)...)
	q := rg.Perm(bAddN)[:bQryN]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range q {
			sideEff = tree.FindRecursively(v)
		}
	}
}

func BenchmarkRemove(b *testing.B) {
	p := rg.Perm(bAddN)
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree := From(p...)
		b.StartTimer()
		for _, v := range p {
			tree.Remove(v)
		}
	}
}

func BenchmarkTraversals(b *testing.B) {
	tree := From(rg.Perm(bAddN)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.DFSPreOrder()
		tree.DFSInOrder()
		tree.DFSPostOrder()
		tree.BFS()
	}
	b.Log(tree.Height())
}
