package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/songsheet/notation"
	"github.com/spf13/cobra"
)

var chordsUnique bool

func init() {
	chordsCmd.Flags().BoolVarP(&chordsUnique, "unique", "u", false, "list each chord once, in order of first use")
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords [file|-]",
	Short: "Lists the chords of a sheet",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readSheet(cmd, args)
		if err != nil {
			return err
		}
		chords := notation.ExtractChords(text)
		if chordsUnique {
			chords = uniqueChords(chords)
		}
		if len(chords) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(chords, " "))
		}
		return nil
	},
}

func uniqueChords(chords []string) []string {
	seen := make(map[string]bool)
	res := make([]string, 0, len(chords))
	for _, c := range chords {
		if !seen[c] {
			seen[c] = true
			res = append(res, c)
		}
	}
	return res
}
