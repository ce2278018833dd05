// Package combinat provides counting, exhaustive enumeration, ranking and
// uniform random sampling for combinatorial classes described by context-free
// labelled grammars.
//
// A grammar is a mapping from nonterminal names to rules built from five
// combinators:
//   - Epsilon: a single empty object of weight 0
//   - Singleton: a single atom of weight 1
//   - Union: disjoint union of two nonterminals
//   - Product: Cartesian product of two nonterminals
//   - Bound: restriction of a nonterminal to a weight interval
//
// Rules reference their children by nonterminal name, never by value, so
// recursive classes such as Tree = Leaf | Tree x Tree are expressed directly.
// Sealing a grammar with New links the rules, checks every referenced name,
// and runs a Kleene fixed point computing each rule's valuation (the minimum
// weight of any object it generates). Grammars in which some rule generates
// no finite object are rejected.
//
// After sealing, six query operations are available per root nonterminal:
// Count, List, Unrank, Rank, Weight and Random. Count, Rank and Unrank work
// with arbitrary-precision integers, so classes with super-exponential
// counting sequences (Catalan, central binomials) are handled exactly at any
// weight. Unrank and Rank are mutually inverse bijections between the
// objects of a given weight and the interval [0, Count): the canonical order
// lists a union's left side before its right side, and a product
// block-by-block in increasing left weight, row-major with the left
// component as the major axis.
//
// Objects are opaque user values. Beyond the callbacks supplied when building
// Union and Product rules, the algebra only compares them by deep equality
// (Epsilon and Singleton membership, cache hits) and fingerprints them as
// cache keys.
package combinat

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
)

// Object is any value produced by a grammar. The algebra treats objects as
// opaque; they are only examined by the user-supplied callbacks of Union and
// Product rules, by deep equality against the stored object of Epsilon and
// Singleton rules, and by fingerprinting and deep equality when used as cache
// keys.
type Object = any

// valuationInf is the seed valuation of every constructor rule. A rule whose
// valuation is still valuationInf after the fixed point generates no finite
// object and invalidates its grammar.
const valuationInf = math.MaxInt

// addValuations sums two valuations, saturating at valuationInf.
func addValuations(a, b int) int {
	if a == valuationInf || b == valuationInf {
		return valuationInf
	}
	return a + b
}

// minValuation returns the smaller of two valuations.
func minValuation(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// maxValuation returns the larger of two valuations.
func maxValuation(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Rule is one production of a grammar. The five implementations are returned
// by Epsilon, Singleton, Union, Product and Bound; the interface is sealed
// and cannot be implemented outside this package.
//
// A Rule value is single-use: sealing it into a grammar binds it to that
// grammar, and passing the same value to New a second time fails with
// ErrInvalidGrammar.
type Rule interface {
	// children reports the nonterminal names this rule references.
	children() []string

	// attach binds the rule to its sealed grammar, resolving child names
	// to arena indices. Fails if the rule is already bound or malformed.
	attach(g *Grammar, name string) error

	// valuation is the minimum weight of any object this rule generates,
	// under the current fixed-point assignment.
	valuation() int

	// refreshValuation recomputes the valuation from the children's
	// current valuations and reports whether it changed.
	refreshValuation() bool

	count(n int) *big.Int
	list(n int) []Object
	unrank(n int, r *big.Int) (Object, error)
	rank(o Object) (*big.Int, error)
	weight(o Object) (int, error)
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// epsilonRule generates exactly one empty object of weight 0.
type epsilonRule struct {
	gram  *Grammar
	name  string
	empty Object
}

// Epsilon returns a rule generating the single object empty at weight 0.
//
// Membership for Weight and Rank is decided by deep equality against empty,
// so an "empty" value that is not a zero value (an empty string, a sentinel
// struct) works as expected.
func Epsilon(empty Object) Rule {
	return &epsilonRule{empty: empty}
}

func (e *epsilonRule) children() []string { return nil }

func (e *epsilonRule) attach(g *Grammar, name string) error {
	if e.gram != nil {
		return fmt.Errorf("rule %q already sealed into a grammar: %w", name, ErrInvalidGrammar)
	}
	e.gram, e.name = g, name
	return nil
}

func (e *epsilonRule) valuation() int         { return 0 }
func (e *epsilonRule) refreshValuation() bool { return false }

func (e *epsilonRule) count(n int) *big.Int {
	if n == 0 {
		return bigOne
	}
	return bigZero
}

func (e *epsilonRule) list(n int) []Object {
	if n == 0 {
		return []Object{e.empty}
	}
	return nil
}

func (e *epsilonRule) unrank(n int, r *big.Int) (Object, error) {
	if r.Sign() != 0 {
		return nil, fmt.Errorf("rule %q: rank %s of epsilon class: %w", e.name, r, ErrRankOutOfBounds)
	}
	if n != 0 {
		return nil, fmt.Errorf("rule %q: weight %d, epsilon objects have weight 0: %w", e.name, n, ErrWeightMismatch)
	}
	return e.empty, nil
}

func (e *epsilonRule) rank(o Object) (*big.Int, error) {
	if _, err := e.weight(o); err != nil {
		return nil, err
	}
	return bigZero, nil
}

func (e *epsilonRule) weight(o Object) (int, error) {
	if !reflect.DeepEqual(o, e.empty) {
		return 0, fmt.Errorf("rule %q: object %v is not the empty object: %w", e.name, o, ErrNotInClass)
	}
	return 0, nil
}

// singletonRule generates exactly one atom of weight 1.
type singletonRule struct {
	gram *Grammar
	name string
	atom Object
}

// Singleton returns a rule generating the single object atom at weight 1.
func Singleton(atom Object) Rule {
	return &singletonRule{atom: atom}
}

func (s *singletonRule) children() []string { return nil }

func (s *singletonRule) attach(g *Grammar, name string) error {
	if s.gram != nil {
		return fmt.Errorf("rule %q already sealed into a grammar: %w", name, ErrInvalidGrammar)
	}
	s.gram, s.name = g, name
	return nil
}

func (s *singletonRule) valuation() int         { return 1 }
func (s *singletonRule) refreshValuation() bool { return false }

func (s *singletonRule) count(n int) *big.Int {
	if n == 1 {
		return bigOne
	}
	return bigZero
}

func (s *singletonRule) list(n int) []Object {
	if n == 1 {
		return []Object{s.atom}
	}
	return nil
}

func (s *singletonRule) unrank(n int, r *big.Int) (Object, error) {
	if r.Sign() != 0 {
		return nil, fmt.Errorf("rule %q: rank %s of singleton class: %w", s.name, r, ErrRankOutOfBounds)
	}
	if n != 1 {
		return nil, fmt.Errorf("rule %q: weight %d, atoms have weight 1: %w", s.name, n, ErrWeightMismatch)
	}
	return s.atom, nil
}

func (s *singletonRule) rank(o Object) (*big.Int, error) {
	if _, err := s.weight(o); err != nil {
		return nil, err
	}
	return bigZero, nil
}

func (s *singletonRule) weight(o Object) (int, error) {
	if !reflect.DeepEqual(o, s.atom) {
		return 0, fmt.Errorf("rule %q: object %v is not the atom: %w", s.name, o, ErrNotInClass)
	}
	return 1, nil
}
