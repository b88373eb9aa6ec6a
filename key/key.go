// Package key guesses the tonic of a chord sheet.
package key

import (
	"github.com/jsphweid/songsheet/chord"
	"github.com/jsphweid/songsheet/constants"
	"github.com/jsphweid/songsheet/util"
)

// Detect returns the most frequent chord annotation in text, taken as the
// tonic. Chords are counted exactly as written, so "C#" and "Db" are
// different chords. Ties go to the chord that appears first. With no chords
// at all the answer is C.
//
// This is a heuristic: the most common chord is usually, not always, home.
func Detect(text string) string {
	tally := util.NewTally[string]()
	for _, s := range chord.Extract(text) {
		tally.Add(s.Raw)
	}
	best, _, ok := tally.Max()
	if !ok {
		return constants.DefaultKey
	}
	return best
}
