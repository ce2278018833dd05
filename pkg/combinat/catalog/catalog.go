// Package catalog ships ready-made grammars for well-known combinatorial
// classes: binary words, Fibonacci words, Dyck words, words without a triple
// letter, palindromes over two and three letters, balanced words, and binary
// trees. They serve as conformance fixtures for the algebra's laws and as
// demo material for the CLI and examples.
//
// Fixtures carry unsealed rule builders, not sealed grammars: every call to
// Seal builds a fresh rule set, because a Rule value can be sealed into one
// grammar only.
package catalog

import (
	"fmt"
	"strings"

	"github.com/gitrdm/gocombinat/pkg/combinat"
)

// Fixture describes one catalog grammar.
type Fixture struct {
	// Name identifies the fixture to the CLI and tests.
	Name string

	// Root is the start nonterminal queries should use.
	Root string

	// Description is a one-line human summary.
	Description string

	// Words is true when the fixture's objects are plain strings, which
	// the CLI can parse back for rank queries.
	Words bool

	rules func() map[string]combinat.Rule
}

// Seal builds a fresh copy of the fixture's rules and seals them into a
// grammar.
func (f Fixture) Seal(opts ...combinat.Option) (*combinat.Grammar, error) {
	return combinat.New(f.rules(), opts...)
}

// MustSeal is Seal for the catalog's own fixtures, which are known valid.
func (f Fixture) MustSeal(opts ...combinat.Option) *combinat.Grammar {
	g, err := f.Seal(opts...)
	if err != nil {
		panic(fmt.Sprintf("catalog fixture %q: %v", f.Name, err))
	}
	return g
}

// All returns every catalog fixture, in presentation order.
func All() []Fixture {
	return []Fixture{
		BinaryWords(),
		FibonacciWords(),
		DyckWords(),
		NoTripleWords(),
		Palindromes(),
		Palindromes3(),
		BalancedWords(),
		BinaryTrees(),
	}
}

// Lookup finds a fixture by name.
func Lookup(name string) (Fixture, bool) {
	for _, f := range All() {
		if f.Name == name {
			return f, true
		}
	}
	return Fixture{}, false
}

// Callback helpers shared by the word grammars. Objects are strings; the
// deconstructors undo the concatenations performed by the constructors.

func conc(a, b combinat.Object) combinat.Object {
	return a.(string) + b.(string)
}

// first splits off the leading letter.
func first(o combinat.Object) (combinat.Object, combinat.Object) {
	s := o.(string)
	return s[:1], s[1:]
}

// last splits off the trailing letter.
func last(o combinat.Object) (combinat.Object, combinat.Object) {
	s := o.(string)
	return s[:len(s)-1], s[len(s)-1:]
}

func isEmpty(o combinat.Object) bool {
	return o.(string) == ""
}

func beginsWith(prefix string) func(combinat.Object) bool {
	return func(o combinat.Object) bool {
		return strings.HasPrefix(o.(string), prefix)
	}
}

// BinaryWords is the class of all words over {A,B}, weighted by length:
// count(n) = 2^n.
func BinaryWords() Fixture {
	return Fixture{
		Name:        "binary-words",
		Root:        "Mot",
		Description: "all words over {A,B}; 2^n words of length n",
		Words:       true,
		rules: func() map[string]combinat.Rule {
			return map[string]combinat.Rule{
				"Vide":  combinat.Epsilon(""),
				"Mot":   combinat.Union("Vide", "Cas1", isEmpty),
				"Cas1":  combinat.Union("Au", "Bu", beginsWith("A")),
				"Au":    combinat.Product("AtomA", "Mot", conc, first),
				"Bu":    combinat.Product("AtomB", "Mot", conc, first),
				"AtomA": combinat.Singleton("A"),
				"AtomB": combinat.Singleton("B"),
			}
		},
	}
}

// FibonacciWords is the class of words over {A,B} with no "BB" factor;
// count(n) is the Fibonacci number F(n+2).
func FibonacciWords() Fixture {
	return Fixture{
		Name:        "fibonacci-words",
		Root:        "Fib",
		Description: "words over {A,B} avoiding BB; Fibonacci counts",
		Words:       true,
		rules: func() map[string]combinat.Rule {
			return map[string]combinat.Rule{
				"Vide":   combinat.Epsilon(""),
				"Fib":    combinat.Union("Vide", "Cas1", isEmpty),
				"Cas1":   combinat.Union("CasAu", "Cas2", beginsWith("A")),
				"Cas2":   combinat.Union("AtomB", "CasBAu", func(o combinat.Object) bool { return o.(string) == "B" }),
				"AtomA":  combinat.Singleton("A"),
				"AtomB":  combinat.Singleton("B"),
				"CasAu":  combinat.Product("AtomA", "Fib", conc, first),
				"CasBAu": combinat.Product("AtomB", "CasAu", conc, first),
			}
		},
	}
}

// splitAtClose cuts a word of the form "(" D ")" D' right before the ")"
// matching the leading "(", returning the "(" D prefix and the ")" D'
// suffix.
func splitAtClose(o combinat.Object) (combinat.Object, combinat.Object) {
	s := o.(string)
	depth := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '(' {
			depth++
		} else {
			depth--
		}
		if depth == 0 {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// DyckWords is the class of balanced parenthesis words; count(2k) is the
// Catalan number C_k and count is zero at odd weights.
func DyckWords() Fixture {
	return Fixture{
		Name:        "dyck-words",
		Root:        "Dyck",
		Description: "balanced parenthesis words; Catalan counts at even lengths",
		Words:       true,
		rules: func() map[string]combinat.Rule {
			return map[string]combinat.Rule{
				"Vide":  combinat.Epsilon(""),
				"Dyck":  combinat.Union("Vide", "(D)D", isEmpty),
				"(D)D":  combinat.Product("(D", ")D", conc, splitAtClose),
				"(D":    combinat.Product("Atom(", "Dyck", conc, first),
				")D":    combinat.Product("Atom)", "Dyck", conc, first),
				"Atom(": combinat.Singleton("("),
				"Atom)": combinat.Singleton(")"),
			}
		},
	}
}

// startsWithSingle reports whether the word starts with letter and does not
// immediately repeat it.
func startsWithSingle(letter string) func(combinat.Object) bool {
	return func(o combinat.Object) bool {
		s := o.(string)
		if !strings.HasPrefix(s, letter) {
			return false
		}
		if len(s) > 1 {
			return s[1:2] != letter
		}
		return true
	}
}

// NoTripleWords is the class of words over {A,B} without three equal
// consecutive letters: counts 1, 2, 4, 6, 10, 16, 26, ...
func NoTripleWords() Fixture {
	return Fixture{
		Name:        "no-triple-words",
		Root:        "Non_Triple",
		Description: "words over {A,B} with no three equal letters in a row",
		Words:       true,
		rules: func() map[string]combinat.Rule {
			return map[string]combinat.Rule{
				"Vide":       combinat.Epsilon(""),
				"Non_Triple": combinat.Union("Vide", "Cas1", isEmpty),
				"Cas1":       combinat.Union("CasA", "CasB", beginsWith("A")),
				"AtomA":      combinat.Singleton("A"),
				"AtomB":      combinat.Singleton("B"),
				"Au":         combinat.Product("AtomA", "restB", conc, first),
				"AAu":        combinat.Product("AtomA", "Au", conc, first),
				"restB":      combinat.Union("Vide", "CasB", isEmpty),
				"CasB":       combinat.Union("Bu", "BBu", startsWithSingle("B")),
				"Bu":         combinat.Product("AtomB", "restA", conc, first),
				"BBu":        combinat.Product("AtomB", "Bu", conc, first),
				"restA":      combinat.Union("Vide", "CasA", isEmpty),
				"CasA":       combinat.Union("Au", "AAu", startsWithSingle("A")),
			}
		},
	}
}

// wrappedIn reports whether the word has length at least two and starts
// with letter; in the palindrome grammars this identifies the words of the
// form letter+P+letter.
func wrappedIn(letter string) func(combinat.Object) bool {
	return func(o combinat.Object) bool {
		s := o.(string)
		return len(s) > 1 && strings.HasPrefix(s, letter)
	}
}

// Palindromes is the class of palindromic words over {A,B}:
// count(n) = 2^ceil(n/2).
func Palindromes() Fixture {
	return Fixture{
		Name:        "palindromes",
		Root:        "Pal",
		Description: "palindromes over {A,B}",
		Words:       true,
		rules: func() map[string]combinat.Rule {
			return map[string]combinat.Rule{
				"Vide":  combinat.Epsilon(""),
				"Pal":   combinat.Union("Vide", "Cas1", isEmpty),
				"Cas1":  combinat.Union("AuA", "Cas2", wrappedIn("A")),
				"Cas2":  combinat.Union("BuB", "Cas3", wrappedIn("B")),
				"Cas3":  combinat.Union("AtomA", "AtomB", beginsWith("A")),
				"AuA":   combinat.Product("Au", "AtomA", conc, last),
				"AtomA": combinat.Singleton("A"),
				"Au":    combinat.Product("AtomA", "Pal", conc, first),
				"BuB":   combinat.Product("Bu", "AtomB", conc, last),
				"AtomB": combinat.Singleton("B"),
				"Bu":    combinat.Product("AtomB", "Pal", conc, first),
			}
		},
	}
}

// Palindromes3 is the class of palindromic words over {A,B,C}:
// count(n) = 3^ceil(n/2).
func Palindromes3() Fixture {
	return Fixture{
		Name:        "palindromes-abc",
		Root:        "Pal",
		Description: "palindromes over {A,B,C}",
		Words:       true,
		rules: func() map[string]combinat.Rule {
			return map[string]combinat.Rule{
				"Vide":  combinat.Epsilon(""),
				"Pal":   combinat.Union("Vide", "Cas1", isEmpty),
				"Cas1":  combinat.Union("AuA", "Cas2", wrappedIn("A")),
				"Cas2":  combinat.Union("BuB", "Cas3", wrappedIn("B")),
				"Cas3":  combinat.Union("CuC", "Cas4", wrappedIn("C")),
				"Cas4":  combinat.Union("AtomA", "Cas5", beginsWith("A")),
				"Cas5":  combinat.Union("AtomB", "AtomC", beginsWith("B")),
				"AuA":   combinat.Product("Au", "AtomA", conc, last),
				"AtomA": combinat.Singleton("A"),
				"Au":    combinat.Product("AtomA", "Pal", conc, first),
				"BuB":   combinat.Product("Bu", "AtomB", conc, last),
				"AtomB": combinat.Singleton("B"),
				"Bu":    combinat.Product("AtomB", "Pal", conc, first),
				"CuC":   combinat.Product("Cu", "AtomC", conc, last),
				"AtomC": combinat.Singleton("C"),
				"Cu":    combinat.Product("AtomC", "Pal", conc, first),
			}
		},
	}
}

// splitFirstBalance cuts the word after its shortest nonempty prefix with
// equally many As and Bs. In the balanced-word grammar every product's left
// factor is such a prefix, so this deconstructs all of them.
func splitFirstBalance(o combinat.Object) (combinat.Object, combinat.Object) {
	s := o.(string)
	as, bs := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == 'A' {
			as++
		} else {
			bs++
		}
		if as == bs {
			return s[:i+1], s[i+1:]
		}
	}
	return s, ""
}

// BalancedWords is the class of words over {A,B} with as many As as Bs;
// count(2k) is the central binomial coefficient C(2k,k), zero at odd
// weights.
//
// The grammar uses the first-return decomposition: a nonempty balanced word
// is its shortest nonempty balanced prefix followed by a balanced word, and
// that prefix is A t B or B t A with t balanced and never dipping below the
// leading letter. This keeps every word to a single derivation.
func BalancedWords() Fixture {
	return Fixture{
		Name:        "balanced-words",
		Root:        "Bal",
		Description: "words over {A,B} with equally many As and Bs",
		Words:       true,
		rules: func() map[string]combinat.Rule {
			return map[string]combinat.Rule{
				"Vide":     combinat.Epsilon(""),
				"AtomA":    combinat.Singleton("A"),
				"AtomB":    combinat.Singleton("B"),
				"Bal":      combinat.Union("Vide", "BalNE", isEmpty),
				"BalNE":    combinat.Union("PosS", "NegS", beginsWith("A")),
				"PosS":     combinat.Product("PosBlock", "Bal", conc, splitFirstBalance),
				"NegS":     combinat.Product("NegBlock", "Bal", conc, splitFirstBalance),
				"PosBlock": combinat.Product("AtomA", "PosTail", conc, first),
				"PosTail":  combinat.Product("Pos", "AtomB", conc, last),
				"NegBlock": combinat.Product("AtomB", "NegTail", conc, first),
				"NegTail":  combinat.Product("Neg", "AtomA", conc, last),
				"Pos":      combinat.Union("Vide", "PosNE", isEmpty),
				"PosNE":    combinat.Product("PosBlock", "Pos", conc, splitFirstBalance),
				"Neg":      combinat.Union("Vide", "NegNE", isEmpty),
				"NegNE":    combinat.Product("NegBlock", "Neg", conc, splitFirstBalance),
			}
		},
	}
}
