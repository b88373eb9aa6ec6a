package cmd

import (
	"fmt"

	"github.com/jsphweid/songsheet/notation"
	"github.com/spf13/cobra"
)

var solfegeFlags struct {
	note string
	out  string
}

func init() {
	f := solfegeCmd.Flags()
	f.StringVarP(&solfegeFlags.note, "note", "n", "", "translate a single note or chord")
	f.StringVarP(&solfegeFlags.out, "out", "o", "", "output file")
	rootCmd.AddCommand(solfegeCmd)
}

var solfegeCmd = &cobra.Command{
	Use:   "solfege [file|-]",
	Short: "Rewrites chord roots as fixed-do syllables",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if solfegeFlags.note != "" {
			fmt.Fprintln(cmd.OutOrStdout(), notation.ToSolfege(solfegeFlags.note))
			return nil
		}
		text, err := readSheet(cmd, args)
		if err != nil {
			return err
		}
		return writeSheet(cmd, solfegeFlags.out, notation.SolfegeText(text))
	},
}
