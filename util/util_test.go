package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModIsNeverNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(-12, 12))
	assert.Equal(10, Mod(-26, 12))
	assert.Equal(2, Mod(14, 12))
}

func TestTallyPrefersFirstSeenOnTie(t *testing.T) {
	tally := NewTally[string]()
	for _, v := range []string{"Am", "C", "C", "Am", "G"} {
		tally.Add(v)
	}
	best, count, ok := tally.Max()

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal("Am", best)
	assert.Equal(2, count)
	assert.Equal([]string{"Am", "C", "G"}, tally.Order)
}

func TestTallyEmpty(t *testing.T) {
	_, _, ok := NewTally[string]().Max()
	assert.False(t, ok)
}

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"G": 1, "C": 2, "D": 3}
	assert.Equal(t, []string{"C", "D", "G"}, GetKeysSorted(m))
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(6), Sum([]int{1, 2, 3}))
	assert.Equal(t, uint64(0), Sum([]int64(nil)))
}
