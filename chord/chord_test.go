package chord

import (
	"testing"

	"github.com/jsphweid/songsheet/model"
	"github.com/stretchr/testify/assert"
)

func TestCreateChordKeySortsNotes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("48-52-55", CreateChordKey([]uint8{55, 48, 52}))
	assert.Equal("60", CreateChordKey([]uint8{60}))
	assert.Equal("", CreateChordKey(nil))
}

func TestExtractPreservesOrderAndDuplicates(t *testing.T) {
	assert.Equal(t, []string{"C", "G", "C"}, Chords("[C]a[G]b[C]c"))
}

func TestExtractSpans(t *testing.T) {
	text := "[G]Amazing [D/F#]grace"
	spans := Extract(text)

	assert := assert.New(t)
	assert.Equal([]model.Span{
		{Raw: "G", Start: 1, End: 2},
		{Raw: "D/F#", Start: 12, End: 16},
	}, spans)
	for _, s := range spans {
		assert.Equal(s.Raw, text[s.Start:s.End])
		assert.Equal(byte('['), text[s.Start-1])
		assert.Equal(byte(']'), text[s.End])
	}
}

func TestExtractSkipsMalformedBrackets(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"no chords", "just words", []string{}},
		{"unterminated", "[G words", []string{}},
		{"empty brackets", "[] words", []string{}},
		{"nested", "[a[C]b]", []string{"C"}},
		{"stray closer", "]G[Am]", []string{"Am"}},
		{"unicode prose", "[Em]ça [C]va °", []string{"Em", "C"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Chords(c.text))
		})
	}
}

func TestReassembleIdentityIsByteExact(t *testing.T) {
	texts := []string{
		"",
		"[C]Amazing grace, how [G]sweet\n[Am]the [F]sound",
		"unterminated [G and [] and [a[C]b]",
		"[Bb]día [Ebmaj7]niño 😀 [x]",
	}
	for _, text := range texts {
		got := Reassemble(Annotate(text), func(raw string) string { return raw })
		assert.Equal(t, text, got)
	}
}

func TestRewriteOnlyTouchesPayloads(t *testing.T) {
	got := Rewrite("[C]one [G]two", func(raw string) string { return raw + "!" })
	assert.Equal(t, "[C!]one [G!]two", got)
}

func TestSplit(t *testing.T) {
	cases := []struct {
		token string
		want  model.ChordToken
	}{
		{"C", model.ChordToken{Raw: "C", Root: "C"}},
		{"Am7", model.ChordToken{Raw: "Am7", Root: "A", Quality: "m7"}},
		{"Bbmaj7", model.ChordToken{Raw: "Bbmaj7", Root: "Bb", Quality: "maj7"}},
		{"D/F#", model.ChordToken{Raw: "D/F#", Root: "D", Bass: "F#"}},
		{"Gsus4/Am", model.ChordToken{Raw: "Gsus4/Am", Root: "G", Quality: "sus4", Bass: "A"}},
		{"C6/9", model.ChordToken{Raw: "C6/9", Root: "C", Quality: "6"}},
		{"C/G/B", model.ChordToken{Raw: "C/G/B", Root: "C", Quality: "/G/B"}},
	}
	for _, c := range cases {
		t.Run(c.token, func(t *testing.T) {
			got, ok := Split(c.token)
			assert.True(t, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestSplitUnknownRoot(t *testing.T) {
	for _, token := range []string{"N.C.", "x", "Intro", "Cb", "/G"} {
		t.Run(token, func(t *testing.T) {
			got, ok := Split(token)
			assert.False(t, ok)
			assert.Equal(t, token, got.Raw)
		})
	}
}
