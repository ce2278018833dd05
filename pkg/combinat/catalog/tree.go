package catalog

import (
	"github.com/gitrdm/gocombinat/pkg/combinat"
)

// Tree is a binary tree weighted by its leaves. A Tree with both children
// nil is a leaf; internal nodes always have two children.
type Tree struct {
	Left  *Tree
	Right *Tree
}

// IsLeaf reports whether t is a leaf.
func (t *Tree) IsLeaf() bool { return t.Left == nil && t.Right == nil }

// String renders the tree with leaves as "." and nodes as "(left right)".
func (t *Tree) String() string {
	if t.IsLeaf() {
		return "."
	}
	return "(" + t.Left.String() + " " + t.Right.String() + ")"
}

// Leaves counts the leaves of t, which is its weight in the tree grammar.
func (t *Tree) Leaves() int {
	if t.IsLeaf() {
		return 1
	}
	return t.Left.Leaves() + t.Right.Leaves()
}

// BinaryTrees is the class of binary trees weighted by leaf count:
// count(n) is the Catalan number C_{n-1} for n >= 1.
//
// Beyond the root, the grammar carries a bounded variant of the class
// ("SmallTree", 2 to 9 leaves) and a product pairing a tree with a small
// tree ("TreePair"), exercising Bound both as a root and as a product
// child.
func BinaryTrees() Fixture {
	buildNode := func(a, b combinat.Object) combinat.Object {
		return &Tree{Left: a.(*Tree), Right: b.(*Tree)}
	}
	splitNode := func(o combinat.Object) (combinat.Object, combinat.Object) {
		t := o.(*Tree)
		return t.Left, t.Right
	}
	return Fixture{
		Name:        "binary-trees",
		Root:        "Tree",
		Description: "binary trees by leaf count; Catalan numbers",
		rules: func() map[string]combinat.Rule {
			buildPair := func(a, b combinat.Object) combinat.Object {
				return [2]*Tree{a.(*Tree), b.(*Tree)}
			}
			splitPair := func(o combinat.Object) (combinat.Object, combinat.Object) {
				p := o.([2]*Tree)
				return p[0], p[1]
			}
			return map[string]combinat.Rule{
				"Leaf": combinat.Singleton(&Tree{}),
				"Node": combinat.Product("Tree", "Tree", buildNode, splitNode),
				"Tree": combinat.Union("Leaf", "Node", func(o combinat.Object) bool {
					return o.(*Tree).IsLeaf()
				}),
				"SmallTree": combinat.Bound("Tree", 2, 9),
				"TreePair":  combinat.Product("Tree", "SmallTree", buildPair, splitPair),
			}
		},
	}
}
