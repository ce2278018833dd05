package combinat

import "errors"

// Error kinds reported by the algebra. Every failure of sealing or of a rule
// wraps one of these sentinels; match with errors.Is. A read error of the
// random source is returned by Random wrapped as it is.
var (
	// ErrRankOutOfBounds is returned by Unrank when the rank is negative
	// or at least Count(n).
	ErrRankOutOfBounds = errors.New("rank out of bounds")

	// ErrWeightMismatch is returned by Unrank on an atom rule when the
	// requested weight is not the atom's weight.
	ErrWeightMismatch = errors.New("weight does not match atom weight")

	// ErrWeightOutOfBounds is returned by Unrank and Weight on a Bound
	// rule when the weight falls outside the bounding interval.
	ErrWeightOutOfBounds = errors.New("weight outside bound interval")

	// ErrNotInClass is returned by Weight and Rank when the object is not
	// generated by the rule.
	ErrNotInClass = errors.New("object not in class")

	// ErrInvalidGrammar is returned by New when the grammar cannot be
	// sealed: a rule generates no finite object, a rule value is reused,
	// or a rule is malformed.
	ErrInvalidGrammar = errors.New("invalid grammar")

	// ErrUnknownName is returned when a rule references a nonterminal
	// absent from the grammar, or a query names an unknown root.
	ErrUnknownName = errors.New("unknown nonterminal name")

	// ErrEmptyClass is returned by Random when no object of the requested
	// weight exists.
	ErrEmptyClass = errors.New("no object of this weight")
)
