// Package transpose shifts the chords of a sheet by a number of semitones.
package transpose

import (
	"github.com/jsphweid/songsheet/chord"
	"github.com/jsphweid/songsheet/pitch"
)

// Text transposes every chord annotation in text. Prose, brackets and
// unrecognized chords are copied unchanged. An empty keyHint lets each note
// pick its own spelling.
func Text(text string, semitones int, keyHint string) string {
	if semitones == 0 {
		return text
	}
	return chord.Rewrite(text, func(raw string) string {
		return Chord(raw, semitones, keyHint)
	})
}

// Chord transposes a single chord symbol, bass included.
func Chord(token string, semitones int, keyHint string) string {
	if semitones == 0 {
		return token
	}
	if _, ok := chord.Split(token); !ok {
		return token
	}
	upper, bass, slash := chord.SplitSlash(token)
	if !slash {
		return shift(token, semitones, keyHint)
	}
	return shift(upper, semitones, keyHint) + "/" + shift(bass, semitones, keyHint)
}

// shift moves the leading root of s and keeps the rest of s as written.
func shift(s string, semitones int, keyHint string) string {
	root, rest, ok := pitch.ParseRoot(s)
	if !ok {
		return s
	}
	pc, ok := pitch.ClassOf(root)
	if !ok {
		return s
	}
	return pitch.NameOf(pc.Add(semitones), pitch.UseFlats(root, keyHint)) + rest
}

// Interval returns the upward shift in semitones from one key to another,
// for callers that think in keys rather than offsets.
func Interval(from, to string) (int, bool) {
	a, ok := pitch.ClassOf(from)
	if !ok {
		return 0, false
	}
	b, ok := pitch.ClassOf(to)
	if !ok {
		return 0, false
	}
	return b.Interval(a), true
}
