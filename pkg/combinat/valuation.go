package combinat

import (
	"fmt"
	"strings"
)

// solveValuations runs the Kleene fixed point assigning every rule its
// valuation, the minimum weight of any object it generates.
//
// Constructor rules are seeded at valuationInf; atoms are constant at their
// weight. Each pass recomputes every rule from the current assignment (min
// for unions, saturating sum for products, max(lo, child) for bounds) until
// a full pass changes nothing. Valuations only ever decrease and are bounded
// below by zero, so the iteration converges in at most one pass per
// productive rule.
//
// A rule still at valuationInf after convergence generates no finite object;
// such rules make the whole grammar invalid, because any enumeration loop
// over them would be unbounded.
func (g *Grammar) solveValuations() error {
	for pass := 1; ; pass++ {
		changed := false
		for _, r := range g.rules {
			if r.refreshValuation() {
				changed = true
			}
		}
		g.log.Debug("valuation pass", "pass", pass, "changed", changed)
		if !changed {
			break
		}
	}

	var unproductive []string
	for i, r := range g.rules {
		if r.valuation() == valuationInf {
			unproductive = append(unproductive, g.names[i])
		}
	}
	if len(unproductive) > 0 {
		g.log.Error("grammar has unproductive rules", "rules", unproductive)
		return fmt.Errorf("rules %s generate no finite object: %w",
			strings.Join(unproductive, ", "), ErrInvalidGrammar)
	}

	if g.log.IsDebug() {
		for i, r := range g.rules {
			g.log.Debug("valuation", "rule", g.names[i], "valuation", r.valuation())
		}
	}
	return nil
}
