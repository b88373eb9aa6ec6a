package cmd

import (
	"fmt"

	"github.com/jsphweid/songsheet/notation"
	"github.com/spf13/cobra"
)

var keyEstimate bool

func init() {
	keyCmd.Flags().BoolVarP(&keyEstimate, "estimate", "e", false, "also rank all 24 keys by profile correlation")
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key [file|-]",
	Short: "Detects the key of a sheet",
	Long: `Prints the most frequent chord of the sheet, which is taken as its
key. With --estimate the ranked profile candidates follow.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readSheet(cmd, args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, notation.DetectKey(text))
		if !keyEstimate {
			return nil
		}
		for _, c := range notation.EstimateKey(text) {
			fmt.Fprintf(out, "%-4s %.3f\n", c.Key, c.Score)
		}
		return nil
	},
}
