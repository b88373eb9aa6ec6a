package midi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jsphweid/songsheet/constants"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoicing(t *testing.T) {
	cases := map[string][]uint8{
		"C":     {60, 64, 67},
		"Am7":   {69, 72, 76, 79},
		"D/F#":  {54, 62, 66, 69},
		"Bdim":  {71, 74, 77},
		"Gsus4": {67, 72, 74},
		"E5":    {64, 71},
	}
	for symbol, want := range cases {
		t.Run(symbol, func(t *testing.T) {
			got, err := Voicing(symbol, 4)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestVoicingUnknownChord(t *testing.T) {
	_, err := Voicing("N.C.", 4)
	assert.ErrorIs(t, err, ErrUnknownChord)
}

func TestRenderAndReadBack(t *testing.T) {
	s, err := Render("[C]Amazing [N.C.]grace [G7]how [Am]sweet", Options{Name: "hymn", Octave: 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s))

	back, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]string{"C", "G7", "Am"}, Markers(back))
	assert.Equal([][]uint8{
		{60, 64, 67},
		{67, 71, 74, 77},
		{69, 72, 76},
	}, Chords(back))
}

func TestRenderWithoutChords(t *testing.T) {
	_, err := Render("just words [N.C.]", Options{})
	assert.ErrorIs(t, err, ErrNoChords)
}

func TestRenderRejectsLongChords(t *testing.T) {
	_, err := Render("[C]", Options{BeatsPerChord: constants.MaxBeatsPerChord + 1})
	assert.ErrorIs(t, err, ErrBadOptions)

	_, err = Render("[C]", Options{BeatsPerChord: 1 << 30})
	assert.ErrorIs(t, err, ErrBadOptions)

	s, err := Render("[C]", Options{BeatsPerChord: constants.MaxBeatsPerChord})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, Markers(s))
}

func TestReadMidiFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := Render("[F][Bb]", Options{Octave: 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s))
	require.NoError(t, afero.WriteFile(fs, "chart.mid", buf.Bytes(), 0644))

	back, err := ReadMidiFile(fs, "chart.mid")
	require.NoError(t, err)
	assert.Equal(t, []string{"F", "Bb"}, Markers(back))

	_, err = ReadMidiFile(fs, "missing.mid")
	assert.Error(t, err)
}

func TestReadGarbage(t *testing.T) {
	_, err := Read(strings.NewReader("definitely not a midi file"))
	assert.Error(t, err)
}
