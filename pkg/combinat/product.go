package combinat

import (
	"fmt"
	"math/big"
)

// productRule is the Cartesian product of two nonterminals.
//
// The objects of weight n decompose into blocks by the weight i of the left
// component, i running from val(left) to n-val(right). A block holds
// left.count(i) * right.count(n-i) objects, laid out row-major with the left
// component as the major axis: within the block, rank rel maps to the pair
// (left.unrank(i, rel/s), right.unrank(n-i, rel%s)) where s = right.count(n-i).
// Rank mirrors this exactly; keeping the two directions on the same axis
// order is what makes them mutual inverses.
type productRule struct {
	gram *Grammar
	name string
	val  int
	memo memo

	leftName, rightName string
	left, right         int

	build func(a, b Object) Object
	split func(o Object) (a, b Object)
}

// Product returns the Cartesian product of the nonterminals left and right.
//
// build combines a left and a right component into a product object; split
// is its left inverse, recovering the components of any object build can
// produce. Both must be pure.
func Product(left, right string, build func(a, b Object) Object, split func(o Object) (a, b Object)) Rule {
	return &productRule{
		val:       valuationInf,
		leftName:  left,
		rightName: right,
		build:     build,
		split:     split,
	}
}

func (p *productRule) children() []string { return []string{p.leftName, p.rightName} }

func (p *productRule) attach(g *Grammar, name string) error {
	if p.gram != nil {
		return fmt.Errorf("rule %q already sealed into a grammar: %w", name, ErrInvalidGrammar)
	}
	if p.build == nil || p.split == nil {
		return fmt.Errorf("rule %q: product needs build and split callbacks: %w", name, ErrInvalidGrammar)
	}
	p.gram, p.name = g, name
	p.left = g.index[p.leftName]
	p.right = g.index[p.rightName]
	p.memo = newMemo()
	return nil
}

func (p *productRule) valuation() int { return p.val }

func (p *productRule) refreshValuation() bool {
	nv := addValuations(p.gram.at(p.left).valuation(), p.gram.at(p.right).valuation())
	changed := nv != p.val
	p.val = nv
	return changed
}

func (p *productRule) count(n int) *big.Int {
	if c, ok := p.memo.count[n]; ok {
		return c
	}
	var (
		left  = p.gram.at(p.left)
		right = p.gram.at(p.right)
		c     = new(big.Int)
		term  big.Int
	)
	for i := left.valuation(); i <= n-right.valuation(); i++ {
		c.Add(c, term.Mul(left.count(i), right.count(n-i)))
	}
	p.memo.count[n] = c
	return c
}

func (p *productRule) list(n int) []Object {
	if l, ok := p.memo.list[n]; ok {
		return l
	}
	var (
		left  = p.gram.at(p.left)
		right = p.gram.at(p.right)
		l     = []Object{}
	)
	for i := left.valuation(); i <= n-right.valuation(); i++ {
		for _, a := range left.list(i) {
			for _, b := range right.list(n - i) {
				l = append(l, p.build(a, b))
			}
		}
	}
	p.memo.list[n] = l
	return l
}

func (p *productRule) unrank(n int, r *big.Int) (Object, error) {
	key := unrankKey{n: n, r: r.String()}
	if o, ok := p.memo.unrank[key]; ok {
		return o, nil
	}
	if r.Sign() < 0 {
		return nil, fmt.Errorf("rule %q: negative rank %s: %w", p.name, r, ErrRankOutOfBounds)
	}
	var (
		left  = p.gram.at(p.left)
		right = p.gram.at(p.right)
		begin = new(big.Int) // smallest rank of the current block
		end   = new(big.Int) // largest rank of the current block, plus one
		block big.Int
		sizeL = -1
	)
	for i := left.valuation(); i <= n-right.valuation(); i++ {
		begin.Set(end)
		end.Add(begin, block.Mul(left.count(i), right.count(n-i)))
		if r.Cmp(end) < 0 {
			sizeL = i
			break
		}
	}
	if sizeL < 0 {
		return nil, fmt.Errorf("rule %q: rank %s of %s objects of weight %d: %w",
			p.name, r, p.count(n), n, ErrRankOutOfBounds)
	}
	sizeR := n - sizeL
	rel := new(big.Int).Sub(r, begin)
	// Sub-block size; nonzero whenever a block contains r.
	s := right.count(sizeR)
	q, m := new(big.Int).DivMod(rel, s, new(big.Int))
	a, err := left.unrank(sizeL, q)
	if err != nil {
		return nil, err
	}
	b, err := right.unrank(sizeR, m)
	if err != nil {
		return nil, err
	}
	o := p.build(a, b)
	p.memo.unrank[key] = o
	return o, nil
}

func (p *productRule) rank(o Object) (*big.Int, error) {
	if r, ok := p.memo.getRank(o); ok {
		return r, nil
	}
	var (
		left  = p.gram.at(p.left)
		right = p.gram.at(p.right)
	)
	a, b := p.split(o)
	wa, err := left.weight(a)
	if err != nil {
		return nil, err
	}
	wb, err := right.weight(b)
	if err != nil {
		return nil, err
	}
	w := wa + wb
	// Offset of the block holding every object whose left component
	// weighs wa.
	var (
		r    = new(big.Int)
		term big.Int
	)
	for i := left.valuation(); i < wa; i++ {
		r.Add(r, term.Mul(left.count(i), right.count(w-i)))
	}
	// Row offset within the block, then the column.
	ra, err := left.rank(a)
	if err != nil {
		return nil, err
	}
	r.Add(r, term.Mul(right.count(wb), ra))
	rb, err := right.rank(b)
	if err != nil {
		return nil, err
	}
	r.Add(r, rb)
	p.memo.putRank(o, r)
	return r, nil
}

func (p *productRule) weight(o Object) (int, error) {
	if w, ok := p.memo.getWeight(o); ok {
		return w, nil
	}
	a, b := p.split(o)
	wa, err := p.gram.at(p.left).weight(a)
	if err != nil {
		return 0, err
	}
	wb, err := p.gram.at(p.right).weight(b)
	if err != nil {
		return 0, err
	}
	p.memo.putWeight(o, wa+wb)
	return wa + wb, nil
}
