package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/jsphweid/songsheet/file"
	"github.com/jsphweid/songsheet/logging"
	"github.com/jsphweid/songsheet/model"
	"github.com/jsphweid/songsheet/notation"
	"github.com/jsphweid/songsheet/util"
	"github.com/spf13/cobra"
)

var reportMax int

func init() {
	reportCmd.Flags().IntVar(&reportMax, "max", 0, "stop after this many sheets")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <dir>",
	Short: "Summarizes a directory of sheets",
	Long:  `Prints size, chord count and detected key for every sheet under a directory.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := analyzeSheets(args[0])
		if err != nil {
			return err
		}
		printReport(cmd, stats)
		return nil
	},
}

func analyzeSheets(dir string) ([]model.SheetStats, error) {
	paths, err := file.GatherAllSheetPaths(appFs, dir, reportMax)
	if err != nil {
		return nil, err
	}

	var res []model.SheetStats
	for _, path := range paths {
		text, err := file.ReadSheet(appFs, path)
		if err != nil {
			logging.Error(err, "Skipping sheet", logging.Fields{"file": path})
			continue
		}
		size, err := file.Size(appFs, path)
		if err != nil {
			logging.Error(err, "Skipping sheet", logging.Fields{"file": path})
			continue
		}
		chords := notation.ExtractChords(text)
		res = append(res, model.SheetStats{
			Path:        path,
			Bytes:       size,
			NumChords:   len(chords),
			Distinct:    len(uniqueChords(chords)),
			DetectedKey: notation.DetectKey(text),
		})
	}
	return res, nil
}

func printReport(cmd *cobra.Command, stats []model.SheetStats) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SHEET\tSIZE\tCHORDS\tDISTINCT\tKEY")

	sizes := make([]int64, len(stats))
	chords := make([]int, len(stats))
	for i, s := range stats {
		sizes[i] = s.Bytes
		chords[i] = s.NumChords
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			s.Path, humanize.Bytes(uint64(s.Bytes)), humanize.Comma(int64(s.NumChords)), s.Distinct, s.DetectedKey)
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s sheets, %s, %s chords\n",
		humanize.Comma(int64(len(stats))), humanize.Bytes(util.Sum(sizes)), humanize.Comma(int64(util.Sum(chords))))
}
