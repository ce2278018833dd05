package combinat

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/big"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Grammar is a sealed mapping from nonterminal names to rules. It is
// immutable after New returns; queries only append to the rules' internal
// caches, and are therefore not safe for concurrent use without external
// synchronisation.
type Grammar struct {
	rules []Rule // arena, indexed by the resolved child indices of the rules
	index map[string]int
	names []string // arena index back to name

	log     hclog.Logger
	randSrc io.Reader
}

// Option configures a Grammar at seal time.
type Option func(*Grammar)

// WithLogger installs a logger used by the sealer and the valuation solver.
// Query paths never log. The default is a null logger.
func WithLogger(l hclog.Logger) Option {
	return func(g *Grammar) { g.log = l }
}

// WithRandSource installs the entropy source consumed by Random. The default
// is crypto/rand.Reader; tests substitute a deterministic reader.
func WithRandSource(r io.Reader) Option {
	return func(g *Grammar) { g.randSrc = r }
}

// Validate checks that every nonterminal referenced by a rule exists in the
// mapping. All missing references are reported together; each wraps
// ErrUnknownName. It does not check the partition contract of unions, which
// the algebra cannot verify.
func Validate(rules map[string]Rule) error {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	var merr *multierror.Error
	for _, name := range names {
		for _, child := range rules[name].children() {
			if _, ok := rules[child]; !ok {
				merr = multierror.Append(merr, fmt.Errorf(
					"rule %q references %q: %w", name, child, ErrUnknownName))
			}
		}
	}
	return merr.ErrorOrNil()
}

// New seals a grammar: it validates every referenced name, links each rule
// into the arena, and solves the valuation fixed point. On any failure the
// grammar is unusable and New returns a nil Grammar.
//
// The rules map is captured by the grammar and must not be reused: each Rule
// value can be sealed exactly once.
func New(rules map[string]Rule, opts ...Option) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("grammar has no rules: %w", ErrInvalidGrammar)
	}
	g := &Grammar{
		index:   make(map[string]int, len(rules)),
		log:     hclog.NewNullLogger(),
		randSrc: crand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := Validate(rules); err != nil {
		return nil, err
	}

	for name := range rules {
		g.names = append(g.names, name)
	}
	sort.Strings(g.names)
	for i, name := range g.names {
		g.index[name] = i
	}
	g.rules = make([]Rule, len(g.names))
	for i, name := range g.names {
		g.rules[i] = rules[name]
	}
	for i, name := range g.names {
		if err := g.rules[i].attach(g, name); err != nil {
			return nil, err
		}
	}

	if err := g.solveValuations(); err != nil {
		return nil, err
	}
	g.log.Debug("grammar sealed", "rules", len(g.rules))
	return g, nil
}

// at returns the rule at an arena index.
func (g *Grammar) at(i int) Rule { return g.rules[i] }

func (g *Grammar) rule(root string) (Rule, error) {
	i, ok := g.index[root]
	if !ok {
		return nil, fmt.Errorf("no rule named %q: %w", root, ErrUnknownName)
	}
	return g.rules[i], nil
}

// Names returns the nonterminal names of the grammar in sorted order.
func (g *Grammar) Names() []string {
	names := make([]string, len(g.names))
	copy(names, g.names)
	return names
}

// Valuation returns the minimum weight of any object the root generates.
func (g *Grammar) Valuation(root string) (int, error) {
	r, err := g.rule(root)
	if err != nil {
		return 0, err
	}
	return r.valuation(), nil
}

// Count returns the number of objects of weight n the root generates. The
// result is shared with the grammar's cache and must not be mutated.
func (g *Grammar) Count(root string, n int) (*big.Int, error) {
	r, err := g.rule(root)
	if err != nil {
		return nil, err
	}
	return r.count(n), nil
}

// List enumerates the objects of weight n in canonical order. The slice is
// shared with the grammar's cache and must not be mutated.
func (g *Grammar) List(root string, n int) ([]Object, error) {
	r, err := g.rule(root)
	if err != nil {
		return nil, err
	}
	return r.list(n), nil
}

// Unrank returns the object of weight n at position rank in canonical
// order. Unrank and Rank are mutual inverses on every legal input.
func (g *Grammar) Unrank(root string, n int, rank *big.Int) (Object, error) {
	r, err := g.rule(root)
	if err != nil {
		return nil, err
	}
	return r.unrank(n, rank)
}

// Rank returns the position of o within the canonical enumeration of the
// objects of o's weight.
func (g *Grammar) Rank(root string, o Object) (*big.Int, error) {
	r, err := g.rule(root)
	if err != nil {
		return nil, err
	}
	return r.rank(o)
}

// Weight returns the weight of o, computed by traversing the grammar with
// the rules' deconstructors.
func (g *Grammar) Weight(root string, o Object) (int, error) {
	r, err := g.rule(root)
	if err != nil {
		return 0, err
	}
	return r.weight(o)
}

// Random draws a uniformly random object of weight n, consuming entropy from
// the grammar's random source. An empty class fails with ErrEmptyClass
// before any entropy is read.
func (g *Grammar) Random(root string, n int) (Object, error) {
	r, err := g.rule(root)
	if err != nil {
		return nil, err
	}
	c := r.count(n)
	if c.Sign() == 0 {
		return nil, fmt.Errorf("rule %q has no object of weight %d: %w", root, n, ErrEmptyClass)
	}
	k, err := crand.Int(g.randSrc, c)
	if err != nil {
		return nil, fmt.Errorf("drawing a rank below %s: %w", c, err)
	}
	return r.unrank(n, k)
}
