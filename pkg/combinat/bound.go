package combinat

import (
	"fmt"
	"math/big"
)

// boundRule restricts a nonterminal to objects whose weight lies in a closed
// interval. It keeps no caches of its own; every query delegates to the
// child after the interval check.
type boundRule struct {
	gram *Grammar
	name string
	val  int

	childName string
	child     int
	lo, hi    int
}

// Bound returns the restriction of the nonterminal child to objects of
// weight between lo and hi inclusive. Count and List are zero and empty
// outside the interval; Unrank and Weight fail with ErrWeightOutOfBounds
// there. Rank delegates unchanged.
//
// The interval must satisfy 0 <= lo <= hi; sealing rejects anything else.
func Bound(child string, lo, hi int) Rule {
	return &boundRule{
		val:       valuationInf,
		childName: child,
		lo:        lo,
		hi:        hi,
	}
}

func (b *boundRule) children() []string { return []string{b.childName} }

func (b *boundRule) attach(g *Grammar, name string) error {
	if b.gram != nil {
		return fmt.Errorf("rule %q already sealed into a grammar: %w", name, ErrInvalidGrammar)
	}
	if b.lo < 0 || b.lo > b.hi {
		return fmt.Errorf("rule %q: bound interval [%d,%d] is empty or negative: %w",
			name, b.lo, b.hi, ErrInvalidGrammar)
	}
	b.gram, b.name = g, name
	b.child = g.index[b.childName]
	return nil
}

func (b *boundRule) valuation() int { return b.val }

// refreshValuation keeps Bound inside the fixed point, so a Bound used as a
// child of Union or Product always sees a converged valuation.
func (b *boundRule) refreshValuation() bool {
	nv := maxValuation(b.lo, b.gram.at(b.child).valuation())
	changed := nv != b.val
	b.val = nv
	return changed
}

func (b *boundRule) inInterval(n int) bool { return n >= b.lo && n <= b.hi }

func (b *boundRule) count(n int) *big.Int {
	if !b.inInterval(n) {
		return bigZero
	}
	return b.gram.at(b.child).count(n)
}

func (b *boundRule) list(n int) []Object {
	if !b.inInterval(n) {
		return nil
	}
	return b.gram.at(b.child).list(n)
}

func (b *boundRule) unrank(n int, r *big.Int) (Object, error) {
	if !b.inInterval(n) {
		return nil, fmt.Errorf("rule %q: weight %d outside [%d,%d]: %w",
			b.name, n, b.lo, b.hi, ErrWeightOutOfBounds)
	}
	return b.gram.at(b.child).unrank(n, r)
}

func (b *boundRule) rank(o Object) (*big.Int, error) {
	return b.gram.at(b.child).rank(o)
}

func (b *boundRule) weight(o Object) (int, error) {
	w, err := b.gram.at(b.child).weight(o)
	if err != nil {
		return 0, err
	}
	if !b.inInterval(w) {
		return 0, fmt.Errorf("rule %q: weight %d outside [%d,%d]: %w",
			b.name, w, b.lo, b.hi, ErrWeightOutOfBounds)
	}
	return w, nil
}
