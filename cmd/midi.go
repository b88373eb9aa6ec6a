package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"github.com/jsphweid/songsheet/midi"
	"github.com/jsphweid/songsheet/notation"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var midiFlags struct {
	out       string
	semitones int
	key       string
	tempo     float64
	octave    int
	beats     int
}

func init() {
	f := midiCmd.Flags()
	f.StringVarP(&midiFlags.out, "out", "o", "", "output .mid file")
	f.IntVarP(&midiFlags.semitones, "semitones", "s", 0, "transpose before rendering")
	f.StringVarP(&midiFlags.key, "key", "k", "", "key hint for the transposition")
	f.Float64Var(&midiFlags.tempo, "tempo", 0, "beats per minute, config value when 0")
	f.IntVar(&midiFlags.octave, "octave", -1, "octave of the chord roots, config value when negative")
	f.IntVar(&midiFlags.beats, "beats", 0, "beats per chord, config value when 0")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi [file|-]",
	Short: "Renders the chords of a sheet to a MIDI file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readSheet(cmd, args)
		if err != nil {
			return err
		}
		out := midiFlags.out
		if out == "" {
			if len(args) == 0 || args[0] == "-" {
				return errors.New("--out is required when reading stdin")
			}
			out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".mid"
		}

		s, err := midi.Render(notation.Transpose(text, midiFlags.semitones, midiFlags.key), midiOptions(out))
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := midi.Write(&buf, s); err != nil {
			return err
		}
		return afero.WriteFile(appFs, out, buf.Bytes(), 0644)
	},
}

func midiOptions(out string) midi.Options {
	opts := midi.Options{
		Name:          strings.TrimSuffix(filepath.Base(out), filepath.Ext(out)),
		Tempo:         cfg.Midi.Tempo,
		Octave:        cfg.Midi.Octave,
		BeatsPerChord: cfg.Midi.BeatsPerChord,
	}
	if midiFlags.tempo > 0 {
		opts.Tempo = midiFlags.tempo
	}
	if midiFlags.octave >= 0 {
		opts.Octave = midiFlags.octave
	}
	if midiFlags.beats > 0 {
		opts.BeatsPerChord = midiFlags.beats
	}
	return opts
}
