package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// GetKeysSorted is GetKeys with a deterministic order
func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Mod returns the non-negative remainder of a divided by n.
func Mod[A constraints.Integer](a A, n A) A {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

// Tally counts occurrences while remembering first-seen order, so callers
// can break ties deterministically.
type Tally[A comparable] struct {
	Counts map[A]int
	Order  []A
}

func NewTally[A comparable]() *Tally[A] {
	return &Tally[A]{Counts: make(map[A]int)}
}

func (t *Tally[A]) Add(v A) {
	if _, ok := t.Counts[v]; !ok {
		t.Order = append(t.Order, v)
	}
	t.Counts[v]++
}

// Max returns the value with the highest count. Ties go to whichever value
// was added first.
func (t *Tally[A]) Max() (A, int, bool) {
	var best A
	bestCount := 0
	for _, v := range t.Order {
		if c := t.Counts[v]; c > bestCount {
			best = v
			bestCount = c
		}
	}
	return best, bestCount, bestCount > 0
}
