package transpose

import (
	"fmt"
	"testing"

	"github.com/jsphweid/songsheet/chord"
	"github.com/jsphweid/songsheet/pitch"
	"github.com/stretchr/testify/assert"
)

const amazingGrace = "[G]Amazing [G7]grace, how [C]sweet the [G]sound\n" +
	"That [G]saved a [Em]wretch like [D/F#]me\n"

func TestZeroIsIdentity(t *testing.T) {
	texts := []string{
		"",
		amazingGrace,
		"[Cb] [E#] [x] [] [G",
		"no chords at all",
	}
	for _, text := range texts {
		assert.Equal(t, text, Text(text, 0, ""))
		assert.Equal(t, text, Text(text, 0, "F"))
	}
}

func TestTextKeepsProse(t *testing.T) {
	got := Text(amazingGrace, 2, "")
	want := "[A]Amazing [A7]grace, how [D]sweet the [A]sound\n" +
		"That [A]saved a [F#m]wretch like [E/G#]me\n"
	assert.Equal(t, want, got)
}

func TestSlashChordSpelling(t *testing.T) {
	cases := []struct {
		name      string
		semitones int
		hint      string
		want      string
	}{
		{"no hint follows each note", 2, "", "[E/G#]"},
		{"flat key hint", 2, "F", "[E/Ab]"},
		{"flat minor key hint", 2, "Bbm", "[E/Ab]"},
		{"sharp key hint", 2, "A", "[E/G#]"},
		{"down a whole step", -2, "", "[C/E]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Text("[D/F#]", c.semitones, c.hint))
		})
	}
}

func TestChordSpellingWithoutHint(t *testing.T) {
	cases := []struct {
		token     string
		semitones int
		want      string
	}{
		{"F", 1, "Gb"},
		{"Bb", 2, "C"},
		{"A", 1, "A#"},
		{"Eb", -1, "D"},
		{"C", -1, "B"},
		{"C", -13, "B"},
		{"C", 25, "C#"},
		{"Am7", 3, "Cm7"},
		{"Bbmaj7", -2, "Abmaj7"},
		{"Dsus4", 4, "F#sus4"},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s%+d", c.token, c.semitones), func(t *testing.T) {
			assert.Equal(t, c.want, Chord(c.token, c.semitones, ""))
		})
	}
}

func TestHintOverridesNoteSpelling(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Bb", Chord("A", 1, "Eb"))
	assert.Equal("A#", Chord("A", 1, "E"))
	assert.Equal("F#", Chord("F", 1, "D"))
}

func TestUnknownTokensRoundTrip(t *testing.T) {
	for _, token := range []string{"N.C.", "x", "Intro", "Cb", "H7", "x/G", "[", "riff 2x"} {
		t.Run(token, func(t *testing.T) {
			assert.Equal(t, token, Chord(token, 5, ""))
			text := "[" + token + "]la"
			if len(chord.Extract(text)) == 1 {
				assert.Equal(t, text, Text(text, 5, "F"))
			}
		})
	}
}

func TestUnknownBassIsKept(t *testing.T) {
	assert.Equal(t, "[D/x]", Text("[C/x]", 2, ""))
	assert.Equal(t, "[D6/9]", Text("[C6/9]", 2, ""))
}

func TestComposesWithSameHint(t *testing.T) {
	text := "[C]a [C#m7]b [Db/F]c [Ebmaj7]d [F#sus4]e [Bb/Ab]f [N.C.]g"
	for _, hint := range []string{"F", "E", "Bbm"} {
		for a := 1; a < 12; a++ {
			for b := 1; b < 12; b++ {
				once := Text(text, a+b, hint)
				twice := Text(Text(text, a, hint), b, hint)
				assert.Equal(t, once, twice, "hint=%s a=%d b=%d", hint, a, b)
			}
		}
	}
}

func TestComposesUpToPitchClassWithoutHint(t *testing.T) {
	text := "[C][C#m7][Db][Ebmaj7][F#sus4][Bb][F][G#]"
	for a := -11; a < 12; a++ {
		for b := -11; b < 12; b++ {
			once := chord.Chords(Text(text, a+b, ""))
			twice := chord.Chords(Text(Text(text, a, ""), b, ""))
			for i := range once {
				x, okX := pitch.ClassOf(once[i])
				y, okY := pitch.ClassOf(twice[i])
				assert.True(t, okX && okY)
				assert.Equal(t, x, y, "a=%d b=%d chord %d", a, b, i)
			}
		}
	}
}

func TestEnharmonicInputsLandOnSameClass(t *testing.T) {
	for n := -12; n <= 12; n++ {
		sharp, _ := pitch.ClassOf(Chord("C#", n, ""))
		flat, _ := pitch.ClassOf(Chord("Db", n, ""))
		assert.Equal(t, sharp, flat, "offset %d", n)
	}
}

func TestInterval(t *testing.T) {
	assert := assert.New(t)

	n, ok := Interval("G", "A")
	assert.True(ok)
	assert.Equal(2, n)

	n, ok = Interval("A", "G")
	assert.True(ok)
	assert.Equal(10, n)

	n, ok = Interval("Bbm", "Gm")
	assert.True(ok)
	assert.Equal(9, n)

	_, ok = Interval("x", "C")
	assert.False(ok)
}
