package combinat

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/shoenig/test/must"
)

// treeString renders a test tree for readable assertions.
func treeString(o Object) string {
	t := o.(*node)
	if t.left == nil && t.right == nil {
		return "."
	}
	return "(" + treeString(t.left) + " " + treeString(t.right) + ")"
}

// Blocks are ordered by increasing left weight: with 3 leaves, the
// leaf-major tree comes after the leaf-minor one.
func TestProductBlockOrder(t *testing.T) {
	g := sealTrees(t)

	l, err := g.List("Tree", 3)
	must.NoError(t, err)
	must.Len(t, 2, l)
	must.Eq(t, "(. (. .))", treeString(l[0]))
	must.Eq(t, "((. .) .)", treeString(l[1]))
}

func TestProductCountConvolution(t *testing.T) {
	g := sealTrees(t)

	// count(n) of Node is the convolution of Tree counts over splits.
	for n := 2; n <= 8; n++ {
		want := new(big.Int)
		for i := 1; i <= n-1; i++ {
			ci, err := g.Count("Tree", i)
			must.NoError(t, err)
			cj, err := g.Count("Tree", n-i)
			must.NoError(t, err)
			want.Add(want, new(big.Int).Mul(ci, cj))
		}
		got, err := g.Count("Node", n)
		must.NoError(t, err)
		must.Eq(t, want.String(), got.String())
	}
}

// Unrank and rank are mutual inverses across every weight and every rank,
// and unrank enumerates exactly the canonical list.
func TestProductRankUnrankRoundTrip(t *testing.T) {
	g := sealTrees(t)

	for n := 1; n <= 7; n++ {
		l, err := g.List("Tree", n)
		must.NoError(t, err)
		c, err := g.Count("Tree", n)
		must.NoError(t, err)
		must.Eq(t, int64(len(l)), c.Int64())

		for r, o := range l {
			got, err := g.Unrank("Tree", n, big.NewInt(int64(r)))
			must.NoError(t, err)
			if !reflect.DeepEqual(o, got) {
				t.Fatalf("unrank(%d,%d): got %s, want %s", n, r, treeString(got), treeString(o))
			}

			rank, err := g.Rank("Tree", o)
			must.NoError(t, err)
			must.Eq(t, int64(r), rank.Int64())
		}
	}
}

func TestProductUnrankOutOfBounds(t *testing.T) {
	g := sealTrees(t)

	c, err := g.Count("Tree", 5)
	must.NoError(t, err)
	_, err = g.Unrank("Tree", 5, c)
	must.ErrorIs(t, err, ErrRankOutOfBounds)

	_, err = g.Unrank("Tree", 5, big.NewInt(-1))
	must.ErrorIs(t, err, ErrRankOutOfBounds)

	// Node has no object of weight 1: every rank is out of bounds.
	_, err = g.Unrank("Node", 1, big.NewInt(0))
	must.ErrorIs(t, err, ErrRankOutOfBounds)
}

func TestProductWeightIsAdditive(t *testing.T) {
	g := sealTrees(t)

	l, err := g.List("Tree", 6)
	must.NoError(t, err)
	for _, o := range l {
		w, err := g.Weight("Tree", o)
		must.NoError(t, err)
		must.Eq(t, 6, w)
	}
}
