// Package notation is the single entry point to the chord engine. Every
// caller, CLI or HTTP, goes through these functions so that they all agree
// on spelling, key detection and numeral rules.
//
// All functions are pure and safe to call from many goroutines at once.
package notation

import (
	"strings"

	"github.com/jsphweid/songsheet/chord"
	"github.com/jsphweid/songsheet/key"
	"github.com/jsphweid/songsheet/model"
	"github.com/jsphweid/songsheet/roman"
	"github.com/jsphweid/songsheet/solfege"
	"github.com/jsphweid/songsheet/transpose"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey cleans up a key typed by a person: surrounding space is
// dropped and compatibility forms (full-width letters) are folded.
func NormalizeKey(k string) string {
	return strings.TrimSpace(norm.NFKC.String(k))
}

// Transpose shifts every chord in text by semitones. keyHint may be empty.
func Transpose(text string, semitones int, keyHint string) string {
	return transpose.Text(text, semitones, NormalizeKey(keyHint))
}

// TransposeTo moves a sheet from one key to another.
func TransposeTo(text, from, to string) string {
	to = NormalizeKey(to)
	n, ok := transpose.Interval(NormalizeKey(from), to)
	if !ok {
		return text
	}
	return transpose.Text(text, n, to)
}

func DetectKey(text string) string {
	return key.Detect(text)
}

func EstimateKey(text string) []model.KeyCandidate {
	return key.Estimate(text)
}

func ToRomanNumeral(symbol, k string) string {
	return roman.Numeral(symbol, NormalizeKey(k))
}

func RomanText(text, k string) string {
	return roman.Text(text, NormalizeKey(k))
}

func ToSolfege(note string) string {
	return solfege.Translate(note)
}

func SolfegeText(text string) string {
	return solfege.Text(text)
}

// ExtractChords lists the raw chord annotations in order, duplicates kept.
func ExtractChords(text string) []string {
	return chord.Chords(text)
}

// Analyze runs every read-only transform over a sheet in one pass. When k
// is empty the detected key is used for the numerals.
func Analyze(text, k string) model.Analysis {
	chords := chord.Chords(text)
	detected := key.Detect(text)
	ref := NormalizeKey(k)
	if ref == "" {
		ref = detected
	}

	a := model.Analysis{
		Chords:     chords,
		Key:        detected,
		Numerals:   make([]string, len(chords)),
		Solfege:    make([]string, len(chords)),
		Candidates: key.Estimate(text),
	}
	for i, c := range chords {
		a.Numerals[i] = roman.Numeral(c, ref)
		a.Solfege[i] = solfege.Translate(c)
	}
	return a
}
