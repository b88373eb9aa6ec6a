// Package solfege names notes with fixed-do syllables.
package solfege

import (
	"github.com/jsphweid/songsheet/chord"
	"github.com/jsphweid/songsheet/pitch"
)

var syllables = map[string]string{
	"C":  "Do",
	"Db": "Reb",
	"D":  "Re",
	"Eb": "Mib",
	"E":  "Mi",
	"F":  "Fa",
	"Gb": "Solb",
	"G":  "Sol",
	"Ab": "Lab",
	"A":  "La",
	"Bb": "Sib",
	"B":  "Si",
}

// Translate replaces the root of note (and of its bass, for slash chords)
// with a syllable. Spellings are looked up as written; one missing from the
// table, such as F#, keeps its accidental after the letter's syllable, so
// "D/F#" reads "Re/Fa#" rather than leaving F# untouched.
// Anything without a note letter passes through.
func Translate(note string) string {
	if upper, bass, ok := chord.SplitSlash(note); ok {
		return Translate(upper) + "/" + Translate(bass)
	}
	root, rest, ok := pitch.ParseRoot(note)
	if !ok {
		return note
	}
	if s, ok := syllables[root]; ok {
		return s + rest
	}
	return syllables[root[:1]] + root[1:] + rest
}

// Text rewrites every chord of a sheet in solfege.
func Text(text string) string {
	return chord.Rewrite(text, Translate)
}
