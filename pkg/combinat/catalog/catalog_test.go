package catalog

import (
	"strings"
	"testing"

	"github.com/shoenig/test/must"
)

// The counting sequences of the catalog, weights 0 through 8. Binary words
// double, Fibonacci words follow F(n+2), Dyck words and binary trees are
// Catalan, no-triple words satisfy a(n) = a(n-1) + a(n-2) scaled by parity,
// palindromes are 2^ceil(n/2) resp. 3^ceil(n/2), and balanced words are the
// central binomial coefficients at even weights.
func TestCountingSequences(t *testing.T) {
	want := map[string][]int64{
		"binary-words":    {1, 2, 4, 8, 16, 32, 64, 128, 256},
		"fibonacci-words": {1, 2, 3, 5, 8, 13, 21, 34, 55},
		"dyck-words":      {1, 0, 1, 0, 2, 0, 5, 0, 14},
		"no-triple-words": {1, 2, 4, 6, 10, 16, 26, 42, 68},
		"palindromes":     {1, 2, 2, 4, 4, 8, 8, 16, 16},
		"palindromes-abc": {1, 3, 3, 9, 9, 27, 27, 81, 81},
		"balanced-words":  {1, 0, 2, 0, 6, 0, 20, 0, 70},
		"binary-trees":    {0, 1, 1, 2, 5, 14, 42, 132, 429},
	}

	for _, f := range All() {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			seq, ok := want[f.Name]
			must.True(t, ok, must.Sprintf("no expected sequence for %q", f.Name))

			g, err := f.Seal()
			must.NoError(t, err)
			for n, wc := range seq {
				c, err := g.Count(f.Root, n)
				must.NoError(t, err)
				must.Eq(t, wc, c.Int64(), must.Sprintf("count(%d)", n))
			}
		})
	}
}

func TestBinaryWordOrder(t *testing.T) {
	f := BinaryWords()
	g := f.MustSeal()

	l, err := g.List(f.Root, 3)
	must.NoError(t, err)
	must.Eq(t, 8, len(l))
	words := make([]string, len(l))
	for i, o := range l {
		words[i] = o.(string)
	}
	must.Eq(t, []string{"AAA", "AAB", "ABA", "ABB", "BAA", "BAB", "BBA", "BBB"}, words)

	r, err := g.Rank(f.Root, "ABABAA")
	must.NoError(t, err)
	must.Eq(t, int64(20), r.Int64())
}

func TestFibonacciWordsAvoidBB(t *testing.T) {
	f := FibonacciWords()
	g := f.MustSeal()

	l, err := g.List(f.Root, 2)
	must.NoError(t, err)
	words := make([]string, len(l))
	for i, o := range l {
		words[i] = o.(string)
	}
	must.Eq(t, []string{"AA", "AB", "BA"}, words)

	for n := 0; n <= 8; n++ {
		l, err := g.List(f.Root, n)
		must.NoError(t, err)
		for _, o := range l {
			must.False(t, strings.Contains(o.(string), "BB"),
				must.Sprintf("%q contains BB", o))
		}
	}
}

func TestDyckWordsAreBalanced(t *testing.T) {
	f := DyckWords()
	g := f.MustSeal()

	l, err := g.List(f.Root, 4)
	must.NoError(t, err)
	words := make([]string, len(l))
	for i, o := range l {
		words[i] = o.(string)
	}
	must.Eq(t, []string{"()()", "(())"}, words)

	for n := 0; n <= 8; n += 2 {
		l, err := g.List(f.Root, n)
		must.NoError(t, err)
		for _, o := range l {
			must.True(t, isDyck(o.(string)), must.Sprintf("%q is not Dyck", o))
		}
	}
}

func TestNoTripleWordsHaveNoTriple(t *testing.T) {
	f := NoTripleWords()
	g := f.MustSeal()

	for n := 0; n <= 8; n++ {
		l, err := g.List(f.Root, n)
		must.NoError(t, err)
		for _, o := range l {
			s := o.(string)
			must.False(t, strings.Contains(s, "AAA") || strings.Contains(s, "BBB"),
				must.Sprintf("%q has a triple letter", s))
		}
	}
}

func TestPalindromesReadBothWays(t *testing.T) {
	for _, f := range []Fixture{Palindromes(), Palindromes3()} {
		g := f.MustSeal()
		for n := 0; n <= 8; n++ {
			l, err := g.List(f.Root, n)
			must.NoError(t, err)
			for _, o := range l {
				must.True(t, isPalindrome(o.(string)),
					must.Sprintf("%q is not a palindrome", o))
			}
		}
	}
}

func TestBalancedWordsAreBalanced(t *testing.T) {
	f := BalancedWords()
	g := f.MustSeal()

	for n := 0; n <= 8; n++ {
		l, err := g.List(f.Root, n)
		must.NoError(t, err)
		for _, o := range l {
			s := o.(string)
			as := 0
			for i := 0; i < len(s); i++ {
				if s[i] == 'A' {
					as++
				}
			}
			must.Eq(t, len(s)-as, as, must.Sprintf("%q is unbalanced", s))
		}
	}
}

func TestLookup(t *testing.T) {
	f, ok := Lookup("binary-trees")
	must.True(t, ok)
	must.Eq(t, "Tree", f.Root)

	_, ok = Lookup("no-such-grammar")
	must.False(t, ok)
}


func isDyck(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '(' {
			depth++
		} else {
			depth--
		}
		if depth < 0 {
			return false
		}
	}
	return depth == 0
}

func isPalindrome(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}
