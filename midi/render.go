package midi

import (
	"errors"
	"fmt"

	"github.com/jsphweid/songsheet/chord"
	"github.com/jsphweid/songsheet/constants"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	ErrNoChords   = errors.New("sheet has no playable chords")
	ErrBadOptions = errors.New("bad render options")
)

type Options struct {
	Name          string
	Tempo         float64
	Octave        int
	BeatsPerChord int
	Velocity      uint8
}

func (o Options) withDefaults() Options {
	if o.Tempo <= 0 {
		o.Tempo = constants.DefaultTempo
	}
	if o.BeatsPerChord <= 0 {
		o.BeatsPerChord = constants.DefaultBeatsPerChord
	}
	if o.Velocity == 0 {
		o.Velocity = constants.DefaultVelocity
	}
	return o
}

// Render turns the chords of a sheet into a single-track rehearsal file:
// every chord is held for BeatsPerChord beats and announced by a marker
// with its symbol. Chords that cannot be voiced become rests.
func Render(text string, opts Options) (*smf.SMF, error) {
	opts = opts.withDefaults()
	if opts.BeatsPerChord > constants.MaxBeatsPerChord {
		return nil, fmt.Errorf("%w: %d beats per chord, at most %d", ErrBadOptions, opts.BeatsPerChord, constants.MaxBeatsPerChord)
	}

	s := smf.New()
	clock := smf.MetricTicks(constants.TicksPerQuarter)
	s.TimeFormat = clock
	length := uint32(clock.Ticks4th()) * uint32(opts.BeatsPerChord)

	var tr smf.Track
	if opts.Name != "" {
		tr.Add(0, smf.MetaTrackSequenceName(opts.Name))
	}
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(opts.Tempo))

	var delta uint32
	played := 0
	for _, span := range chord.Extract(text) {
		notes, err := Voicing(span.Raw, opts.Octave)
		if err != nil {
			delta += length
			continue
		}
		played++

		tr.Add(delta, smf.MetaMarker(span.Raw))
		for _, n := range notes {
			tr.Add(0, midi.NoteOn(0, n, opts.Velocity))
		}
		for i, n := range notes {
			d := uint32(0)
			if i == 0 {
				d = length
			}
			tr.Add(d, midi.NoteOff(0, n))
		}
		delta = 0
	}
	if played == 0 {
		return nil, ErrNoChords
	}
	tr.Close(delta)

	s.Tracks = append(s.Tracks, tr)
	return s, nil
}
