package combinat

import (
	"math/big"
	"reflect"

	"github.com/mitchellh/hashstructure"
)

// memo holds the per-rule caches of the constructor rules. All caches are
// grow-only: an entry, once written, is never changed or evicted, and cached
// values are shared with callers as immutable.
//
// Weight-indexed caches key directly on the weight. Object-indexed caches
// (weight, rank) key on a structural fingerprint of the object; the original
// object is stored alongside the value and compared on every hit, so a
// fingerprint collision degrades to a recomputation instead of a wrong
// answer. The fingerprint covers exported struct fields only: objects that
// differ only in unexported fields (for instance structs whose fields are all
// unexported) share one fingerprint, the first of them stored keeps the slot,
// and the others are recomputed on every query and never cached.
type memo struct {
	count  map[int]*big.Int
	list   map[int][]Object
	unrank map[unrankKey]Object
	weight map[uint64]weightEntry
	rank   map[uint64]rankEntry
}

type unrankKey struct {
	n int
	r string // decimal form of the rank
}

type weightEntry struct {
	obj Object
	w   int
}

type rankEntry struct {
	obj Object
	r   *big.Int
}

func newMemo() memo {
	return memo{
		count:  make(map[int]*big.Int),
		list:   make(map[int][]Object),
		unrank: make(map[unrankKey]Object),
		weight: make(map[uint64]weightEntry),
		rank:   make(map[uint64]rankEntry),
	}
}

// fingerprint hashes an arbitrary object value for use as a cache key. The
// second result is false for values hashstructure cannot traverse (functions,
// channels); such objects are simply not cached.
func fingerprint(o Object) (uint64, bool) {
	h, err := hashstructure.Hash(o, nil)
	if err != nil {
		return 0, false
	}
	return h, true
}

func (m *memo) getWeight(o Object) (int, bool) {
	h, ok := fingerprint(o)
	if !ok {
		return 0, false
	}
	e, ok := m.weight[h]
	if !ok || !reflect.DeepEqual(e.obj, o) {
		return 0, false
	}
	return e.w, true
}

func (m *memo) putWeight(o Object, w int) {
	h, ok := fingerprint(o)
	if !ok {
		return
	}
	if _, taken := m.weight[h]; taken {
		return
	}
	m.weight[h] = weightEntry{obj: o, w: w}
}

func (m *memo) getRank(o Object) (*big.Int, bool) {
	h, ok := fingerprint(o)
	if !ok {
		return nil, false
	}
	e, ok := m.rank[h]
	if !ok || !reflect.DeepEqual(e.obj, o) {
		return nil, false
	}
	return e.r, true
}

func (m *memo) putRank(o Object, r *big.Int) {
	h, ok := fingerprint(o)
	if !ok {
		return
	}
	if _, taken := m.rank[h]; taken {
		return
	}
	m.rank[h] = rankEntry{obj: o, r: r}
}
