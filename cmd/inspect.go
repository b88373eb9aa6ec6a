package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsphweid/songsheet/chord"
	"github.com/jsphweid/songsheet/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file|->",
	Short: "Inspects a sheet or a rendered chart",
	Long: `Prints every chord annotation of a sheet with its byte offsets and how
it splits into root, quality and bass, followed by its voicing. For a .mid file the chord markers are
listed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && strings.EqualFold(filepath.Ext(args[0]), ".mid") {
			return inspectMidi(cmd, args[0])
		}
		text, err := readSheet(cmd, args)
		if err != nil {
			return err
		}
		inspectSheet(cmd, text)
		return nil
	},
}

func inspectSheet(cmd *cobra.Command, text string) {
	out := cmd.OutOrStdout()
	for _, span := range chord.Extract(text) {
		tok, ok := chord.Split(span.Raw)
		if !ok {
			fmt.Fprintf(out, "%d-%d\t%s\t(not a chord)\n", span.Start, span.End, span.Raw)
			continue
		}
		notes, _ := midi.Voicing(span.Raw, cfg.Midi.Octave)
		fmt.Fprintf(out, "%d-%d\t%s\troot=%s quality=%q bass=%s notes=%s\n",
			span.Start, span.End, span.Raw, tok.Root, tok.Quality, tok.Bass, chord.CreateChordKey(notes))
	}
}

func inspectMidi(cmd *cobra.Command, path string) error {
	s, err := midi.ReadMidiFile(appFs, path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tracks: %d\n", len(s.Tracks))
	for i, m := range midi.Markers(s) {
		fmt.Fprintf(out, "%d\t%s\n", i+1, m)
	}
	return nil
}
