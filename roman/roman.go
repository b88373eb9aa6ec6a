// Package roman writes chords as scale degrees relative to a key.
//
// Degrees are always counted on the major scale of the key's tonic letter,
// even when the key is minor: Am in A minor is "i" but C in A minor is
// "bIII", not "III".
package roman

import (
	"fmt"
	"strings"

	"github.com/jsphweid/songsheet/chord"
	"github.com/jsphweid/songsheet/pitch"
)

type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
)

func (q Quality) String() string {
	switch q {
	case Minor:
		return "minor"
	case Diminished:
		return "diminished"
	default:
		return "major"
	}
}

// Degree is a chord expressed against a key.
type Degree struct {
	Ordinal    int // 1-7
	Accidental string
	Quality    Quality
	// the suffix reads as minor: it has an "m" that is not part of "maj"
	Lowercase bool
	// what is left of the chord suffix once the quality marker is removed
	Suffix string
}

var numerals = [8]string{"", "I", "II", "III", "IV", "V", "VI", "VII"}

// semitones above the tonic -> major scale degree
var diatonic = map[int]int{0: 1, 2: 2, 4: 3, 5: 4, 7: 5, 9: 6, 11: 7}

type chromaticDegree struct {
	accidental string
	ordinal    int
}

var chromatic = map[int]chromaticDegree{
	1:  {"b", 2},
	3:  {"b", 3},
	6:  {"#", 4},
	8:  {"b", 6},
	10: {"b", 7},
}

func (d Degree) String() string {
	n := numerals[d.Ordinal]
	if d.Lowercase {
		n = strings.ToLower(n)
	}
	if d.Quality == Diminished {
		n += "°"
	}
	return d.Accidental + n + d.Suffix
}

func degreeOf(interval int) (int, string) {
	if ord, ok := diatonic[interval]; ok {
		return ord, ""
	}
	if c, ok := chromatic[interval]; ok {
		return c.ordinal, c.accidental
	}
	// the two tables cover all twelve intervals
	panic(fmt.Sprintf("roman: interval %d has no scale degree", interval))
}

// qualityOf reads the quality markers off suffix. Case comes from the "m"
// alone, so "dim" is lowercase while a bare "°" keeps the numeral upper.
func qualityOf(suffix string) (q Quality, lower bool, rest string) {
	lower = strings.Contains(suffix, "m") && !strings.Contains(suffix, "maj")
	switch {
	case strings.Contains(suffix, "dim") || strings.Contains(suffix, "°"):
		suffix = strings.Replace(suffix, "dim", "", 1)
		suffix = strings.Replace(suffix, "°", "", 1)
		return Diminished, lower, suffix
	case lower && strings.HasPrefix(suffix, "min"):
		return Minor, lower, strings.TrimPrefix(suffix, "min")
	case lower:
		return Minor, lower, strings.Replace(suffix, "m", "", 1)
	}
	return Major, lower, suffix
}

// Analyze places the chord (the part before any slash) in key. ok is false
// when either root is not a recognizable note.
func Analyze(symbol, key string) (Degree, bool) {
	upper, _, _ := chord.SplitSlash(symbol)
	root, suffix, ok := pitch.ParseRoot(upper)
	if !ok {
		return Degree{}, false
	}
	pc, ok := pitch.ClassOf(root)
	if !ok {
		return Degree{}, false
	}
	tonic, ok := pitch.ClassOf(key)
	if !ok {
		return Degree{}, false
	}

	ord, acc := degreeOf(pc.Interval(tonic))
	q, lower, rest := qualityOf(suffix)
	return Degree{Ordinal: ord, Accidental: acc, Quality: q, Lowercase: lower, Suffix: rest}, true
}

// Numeral converts a chord symbol to roman numeral notation, e.g. "Am7" in C
// is "vi7" and "D/F#" in G is "V/VII". Symbols it cannot place come back
// unchanged.
func Numeral(symbol, key string) string {
	d, ok := Analyze(symbol, key)
	if !ok {
		return symbol
	}
	if _, bass, slash := chord.SplitSlash(symbol); slash {
		return d.String() + "/" + Numeral(bass, key)
	}
	return d.String()
}

// Text rewrites every chord of a sheet as a numeral.
func Text(text, key string) string {
	return chord.Rewrite(text, func(raw string) string {
		return Numeral(raw, key)
	})
}
