package midi

import (
	"errors"
	"fmt"

	"github.com/jsphweid/songsheet/chord"
	"github.com/jsphweid/songsheet/pitch"
)

var ErrUnknownChord = errors.New("unknown chord")

// Voicing returns MIDI keys for a chord in root position, with C4 = 60.
// A slash bass is added an octave below the root. Keys outside 0-127 are
// dropped.
func Voicing(symbol string, octave int) ([]uint8, error) {
	tok, ok := chord.Split(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChord, symbol)
	}
	root, _ := pitch.ClassOf(tok.Root)
	base := (octave+1)*12 + int(root)

	var notes []uint8
	if tok.HasBass() {
		bass, _ := pitch.ClassOf(tok.Bass)
		if n := octave*12 + int(bass); n >= 0 && n <= 127 {
			notes = append(notes, uint8(n))
		}
	}
	for _, iv := range chord.Intervals(tok.Quality) {
		if n := base + iv; n >= 0 && n <= 127 {
			notes = append(notes, uint8(n))
		}
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: %q has no notes in octave %d", ErrUnknownChord, symbol, octave)
	}
	return notes, nil
}
