package combinat

import (
	"strings"
	"testing"
)

// wordRules builds the grammar of all words over {A,B}, weighted by length.
// It is the workhorse fixture of the unit tests: small, recursive, and with
// an obvious canonical order (lexicographic, A before B).
func wordRules() map[string]Rule {
	conc := func(a, b Object) Object { return a.(string) + b.(string) }
	first := func(o Object) (Object, Object) {
		s := o.(string)
		return s[:1], s[1:]
	}
	return map[string]Rule{
		"Vide":  Epsilon(""),
		"Mot":   Union("Vide", "Cas1", func(o Object) bool { return o.(string) == "" }),
		"Cas1":  Union("Au", "Bu", func(o Object) bool { return strings.HasPrefix(o.(string), "A") }),
		"Au":    Product("AtomA", "Mot", conc, first),
		"Bu":    Product("AtomB", "Mot", conc, first),
		"AtomA": Singleton("A"),
		"AtomB": Singleton("B"),
	}
}

// node is the binary-tree object of the unit tests; both children nil means
// leaf.
type node struct {
	left, right *node
}

// treeRules builds Tree = Leaf | Tree x Tree, weighted by leaf count.
func treeRules() map[string]Rule {
	return map[string]Rule{
		"Leaf": Singleton(&node{}),
		"Node": Product("Tree", "Tree",
			func(a, b Object) Object { return &node{left: a.(*node), right: b.(*node)} },
			func(o Object) (Object, Object) {
				t := o.(*node)
				return t.left, t.right
			}),
		"Tree": Union("Leaf", "Node", func(o Object) bool {
			t := o.(*node)
			return t.left == nil && t.right == nil
		}),
	}
}

func sealWords(t *testing.T) *Grammar {
	t.Helper()
	g, err := New(wordRules())
	if err != nil {
		t.Fatalf("sealing word grammar: %v", err)
	}
	return g
}

func sealTrees(t *testing.T) *Grammar {
	t.Helper()
	g, err := New(treeRules())
	if err != nil {
		t.Fatalf("sealing tree grammar: %v", err)
	}
	return g
}
