package cmd

import (
	"fmt"

	"github.com/jsphweid/songsheet/constants"
	"github.com/jsphweid/songsheet/notation"
	"github.com/spf13/cobra"
)

var romanFlags struct {
	key   string
	chord string
	out   string
}

func init() {
	f := romanCmd.Flags()
	f.StringVarP(&romanFlags.key, "key", "k", "", "reference key, detected from the sheet when empty")
	f.StringVarP(&romanFlags.chord, "chord", "c", "", "convert a single chord instead of a sheet")
	f.StringVarP(&romanFlags.out, "out", "o", "", "output file")
	rootCmd.AddCommand(romanCmd)
}

var romanCmd = &cobra.Command{
	Use:   "roman [file|-]",
	Short: "Rewrites chords as roman numerals",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if romanFlags.chord != "" {
			k := romanFlags.key
			if k == "" {
				k = constants.DefaultKey
			}
			fmt.Fprintln(cmd.OutOrStdout(), notation.ToRomanNumeral(romanFlags.chord, k))
			return nil
		}
		text, err := readSheet(cmd, args)
		if err != nil {
			return err
		}
		k := romanFlags.key
		if k == "" {
			k = notation.DetectKey(text)
		}
		return writeSheet(cmd, romanFlags.out, notation.RomanText(text, k))
	},
}
