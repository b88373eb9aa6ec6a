package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Read parses a standard MIDI file. The smf reader can panic on corrupt
// input, so panics come back as errors.
func Read(r io.Reader) (s *smf.SMF, e error) {
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = fmt.Errorf("parsing midi file: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

func ReadMidiFile(fsys afero.Fs, path string) (*smf.SMF, error) {
	dat, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	return Read(bytes.NewReader(dat))
}

func Write(w io.Writer, s *smf.SMF) error {
	if s == nil {
		return errors.New("writing midi file: nil SMF")
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing midi file: %w", err)
	}
	return nil
}

// Markers lists the marker texts of every track in order. Rendered charts
// carry one marker per chord.
func Markers(s *smf.SMF) []string {
	var res []string
	for _, track := range s.Tracks {
		for _, ev := range track {
			var text string
			if ev.Message.GetMetaMarker(&text) {
				res = append(res, text)
			}
		}
	}
	return res
}

// Chords groups note-on keys by the marker that precedes them.
func Chords(s *smf.SMF) [][]uint8 {
	var res [][]uint8
	for _, track := range s.Tracks {
		for _, ev := range track {
			var text string
			var channel, key, velocity uint8
			switch {
			case ev.Message.GetMetaMarker(&text):
				res = append(res, nil)
			case ev.Message.GetNoteOn(&channel, &key, &velocity) && len(res) > 0:
				res[len(res)-1] = append(res[len(res)-1], key)
			}
		}
	}
	return res
}
