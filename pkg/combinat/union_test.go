package combinat

import (
	"math/big"
	"testing"

	"github.com/shoenig/test/must"
)

// A union enumerates its left side first, then its right side.
func TestUnionCanonicalOrder(t *testing.T) {
	g := sealWords(t)

	l1, err := g.List("Mot", 1)
	must.NoError(t, err)
	must.Eq(t, []Object{"A", "B"}, l1)

	l2, err := g.List("Mot", 2)
	must.NoError(t, err)
	must.Eq(t, []Object{"AA", "AB", "BA", "BB"}, l2)
}

func TestUnionCountIsSumOfSides(t *testing.T) {
	g := sealWords(t)

	for n := 0; n <= 6; n++ {
		total, err := g.Count("Cas1", n)
		must.NoError(t, err)
		left, err := g.Count("Au", n)
		must.NoError(t, err)
		right, err := g.Count("Bu", n)
		must.NoError(t, err)
		must.Eq(t, total.String(), new(big.Int).Add(left, right).String())
	}
}

// Ranks on the right side are offset by the left side's count.
func TestUnionRankOffset(t *testing.T) {
	g := sealWords(t)

	r, err := g.Rank("Mot", "BA")
	must.NoError(t, err)
	must.Eq(t, int64(2), r.Int64())

	r, err = g.Rank("Mot", "BB")
	must.NoError(t, err)
	must.Eq(t, int64(3), r.Int64())
}

func TestUnionUnrankDispatch(t *testing.T) {
	g := sealWords(t)

	// Rank 0..1 fall in the A-side block, 2..3 in the B-side block.
	for r, want := range []string{"AA", "AB", "BA", "BB"} {
		o, err := g.Unrank("Mot", 2, big.NewInt(int64(r)))
		must.NoError(t, err)
		must.Eq(t, want, o.(string))
	}

	_, err := g.Unrank("Mot", 2, big.NewInt(4))
	must.ErrorIs(t, err, ErrRankOutOfBounds)
	_, err = g.Unrank("Mot", 2, big.NewInt(-1))
	must.ErrorIs(t, err, ErrRankOutOfBounds)
}

func TestUnionWeightDispatchesOnPredicate(t *testing.T) {
	g := sealWords(t)

	w, err := g.Weight("Mot", "ABBA")
	must.NoError(t, err)
	must.Eq(t, 4, w)

	w, err = g.Weight("Mot", "")
	must.NoError(t, err)
	must.Eq(t, 0, w)
}
