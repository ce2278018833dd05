package combinat

import (
	"fmt"
	"math/big"
)

// unionRule is the disjoint union of two nonterminals. Its canonical order
// lists every object of the left side first, in left order, then every
// object of the right side.
type unionRule struct {
	gram *Grammar
	name string
	val  int
	memo memo

	leftName, rightName string
	left, right         int // arena indices, resolved at seal time

	// belongsLeft reports, for an object of the union, whether the left
	// side produced it. It must be a total, consistent partition of the
	// union's objects; the algebra cannot verify that.
	belongsLeft func(Object) bool
}

// Union returns the disjoint union of the nonterminals left and right.
//
// belongsLeft decides, for any object the union generates, which side it came
// from: it must return true exactly for the objects of left. Weight and Rank
// dispatch on it; an inconsistent predicate silently breaks the rank/unrank
// bijection, which the property "Rank(o) equals o's position in List" detects
// in tests.
func Union(left, right string, belongsLeft func(Object) bool) Rule {
	return &unionRule{
		val:         valuationInf,
		leftName:    left,
		rightName:   right,
		belongsLeft: belongsLeft,
	}
}

func (u *unionRule) children() []string { return []string{u.leftName, u.rightName} }

func (u *unionRule) attach(g *Grammar, name string) error {
	if u.gram != nil {
		return fmt.Errorf("rule %q already sealed into a grammar: %w", name, ErrInvalidGrammar)
	}
	if u.belongsLeft == nil {
		return fmt.Errorf("rule %q: union needs a belongsLeft predicate: %w", name, ErrInvalidGrammar)
	}
	u.gram, u.name = g, name
	u.left = g.index[u.leftName]
	u.right = g.index[u.rightName]
	u.memo = newMemo()
	return nil
}

func (u *unionRule) valuation() int { return u.val }

func (u *unionRule) refreshValuation() bool {
	nv := minValuation(u.gram.at(u.left).valuation(), u.gram.at(u.right).valuation())
	changed := nv != u.val
	u.val = nv
	return changed
}

func (u *unionRule) count(n int) *big.Int {
	if c, ok := u.memo.count[n]; ok {
		return c
	}
	c := new(big.Int).Add(u.gram.at(u.left).count(n), u.gram.at(u.right).count(n))
	u.memo.count[n] = c
	return c
}

func (u *unionRule) list(n int) []Object {
	if l, ok := u.memo.list[n]; ok {
		return l
	}
	left := u.gram.at(u.left).list(n)
	right := u.gram.at(u.right).list(n)
	l := make([]Object, 0, len(left)+len(right))
	l = append(l, left...)
	l = append(l, right...)
	u.memo.list[n] = l
	return l
}

func (u *unionRule) unrank(n int, r *big.Int) (Object, error) {
	key := unrankKey{n: n, r: r.String()}
	if o, ok := u.memo.unrank[key]; ok {
		return o, nil
	}
	if r.Sign() < 0 || r.Cmp(u.count(n)) >= 0 {
		return nil, fmt.Errorf("rule %q: rank %s of %s objects of weight %d: %w",
			u.name, r, u.count(n), n, ErrRankOutOfBounds)
	}
	var (
		o         Object
		err       error
		leftCount = u.gram.at(u.left).count(n)
	)
	if r.Cmp(leftCount) < 0 {
		o, err = u.gram.at(u.left).unrank(n, r)
	} else {
		o, err = u.gram.at(u.right).unrank(n, new(big.Int).Sub(r, leftCount))
	}
	if err != nil {
		return nil, err
	}
	u.memo.unrank[key] = o
	return o, nil
}

func (u *unionRule) rank(o Object) (*big.Int, error) {
	if r, ok := u.memo.getRank(o); ok {
		return r, nil
	}
	var r *big.Int
	if u.belongsLeft(o) {
		lr, err := u.gram.at(u.left).rank(o)
		if err != nil {
			return nil, err
		}
		r = lr
	} else {
		w, err := u.weight(o)
		if err != nil {
			return nil, err
		}
		rr, err := u.gram.at(u.right).rank(o)
		if err != nil {
			return nil, err
		}
		r = new(big.Int).Add(u.gram.at(u.left).count(w), rr)
	}
	u.memo.putRank(o, r)
	return r, nil
}

func (u *unionRule) weight(o Object) (int, error) {
	if w, ok := u.memo.getWeight(o); ok {
		return w, nil
	}
	var (
		w   int
		err error
	)
	if u.belongsLeft(o) {
		w, err = u.gram.at(u.left).weight(o)
	} else {
		w, err = u.gram.at(u.right).weight(o)
	}
	if err != nil {
		return 0, err
	}
	u.memo.putWeight(o, w)
	return w, nil
}
