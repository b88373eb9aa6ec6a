// Package pitch maps note names to the twelve equal-tempered pitch classes
// and back, and decides between sharp and flat spellings.
package pitch

import "github.com/jsphweid/songsheet/util"

// Class is a pitch class, 0 = C ascending by semitone.
type Class int

const NumClasses = 12

var sharpNames = [NumClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatNames = [NumClasses]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// sharps are folded onto the flat table before lookup
var enharmonic = map[string]string{
	"C#": "Db",
	"D#": "Eb",
	"F#": "Gb",
	"G#": "Ab",
	"A#": "Bb",
}

var flatIndex = map[string]Class{
	"C": 0, "Db": 1, "D": 2, "Eb": 3, "E": 4, "F": 5,
	"Gb": 6, "G": 7, "Ab": 8, "A": 9, "Bb": 10, "B": 11,
}

// Add shifts c by n semitones and wraps into [0, 11].
func (c Class) Add(n int) Class {
	return Class(util.Mod(int(c)+n, NumClasses))
}

// Interval is the upward distance in semitones from other to c.
func (c Class) Interval(other Class) int {
	return util.Mod(int(c)-int(other), NumClasses)
}

// ParseRoot splits a leading note spelling (A-G plus an optional # or b)
// from whatever follows it. It does not check the spelling exists.
func ParseRoot(s string) (root, rest string, ok bool) {
	if s == "" || s[0] < 'A' || s[0] > 'G' {
		return "", s, false
	}
	n := 1
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		n = 2
	}
	return s[:n], s[n:], true
}

// ClassOf resolves the root at the start of name. Any suffix is ignored.
// Spellings outside the two name tables (Cb, E#, ...) are not recognized.
func ClassOf(name string) (Class, bool) {
	root, _, ok := ParseRoot(name)
	if !ok {
		return 0, false
	}
	if flat, ok := enharmonic[root]; ok {
		root = flat
	}
	pc, ok := flatIndex[root]
	return pc, ok
}

// NameOf spells pc from the flat or sharp table.
func NameOf(pc Class, useFlats bool) string {
	i := util.Mod(int(pc), NumClasses)
	if useFlats {
		return flatNames[i]
	}
	return sharpNames[i]
}
