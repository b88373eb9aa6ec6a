package cmd

import (
	"errors"
	"fmt"

	"github.com/jsphweid/songsheet/batch"
	"github.com/jsphweid/songsheet/file"
	"github.com/jsphweid/songsheet/logging"
	"github.com/jsphweid/songsheet/notation"
	"github.com/spf13/cobra"
)

var transposeFlags struct {
	semitones int
	key       string
	to        string
	out       string
	dir       string
	maxFiles  int
}

func init() {
	f := transposeCmd.Flags()
	f.IntVarP(&transposeFlags.semitones, "semitones", "s", 0, "semitones to shift, may be negative")
	f.StringVarP(&transposeFlags.key, "key", "k", "", "key the result is in, decides sharps or flats")
	f.StringVar(&transposeFlags.to, "to", "", "target key; shifts from --key (or the detected key) to this one")
	f.StringVarP(&transposeFlags.out, "out", "o", "", "output file, or output directory with --dir")
	f.StringVar(&transposeFlags.dir, "dir", "", "transpose every sheet under this directory")
	f.IntVar(&transposeFlags.maxFiles, "max", 0, "stop after this many sheets with --dir")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [file|-]",
	Short: "Shifts every chord in a sheet",
	Long: `Shifts every [chord] in a sheet by --semitones, or from one key to
another with --to. Lyrics and everything outside brackets are untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if transposeFlags.dir != "" {
			return transposeDir(cmd)
		}
		text, err := readSheet(cmd, args)
		if err != nil {
			return err
		}
		return writeSheet(cmd, transposeFlags.out, transposeSheet(text))
	},
}

func transposeSheet(text string) string {
	if transposeFlags.to != "" {
		from := transposeFlags.key
		if from == "" {
			from = notation.DetectKey(text)
		}
		return notation.TransposeTo(text, from, transposeFlags.to)
	}
	return notation.Transpose(text, transposeFlags.semitones, transposeFlags.key)
}

func transposeDir(cmd *cobra.Command) error {
	if transposeFlags.out == "" {
		return errors.New("--dir needs --out")
	}
	if transposeFlags.to != "" {
		return errors.New("--to is not supported with --dir, use --semitones")
	}
	paths, err := file.GatherAllSheetPaths(appFs, transposeFlags.dir, transposeFlags.maxFiles)
	if err != nil {
		return err
	}
	logging.Info("Transposing sheets", logging.Fields{"dir": transposeFlags.dir, "count": len(paths)})

	results := batch.ProcessAllSheets(cmd.Context(), appFs, file.CreateFileNumMap(paths), batch.Options{
		Semitones: transposeFlags.semitones,
		KeyHint:   transposeFlags.key,
		Root:      transposeFlags.dir,
		OutDir:    transposeFlags.out,
		Workers:   cfg.Workers,
	})

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d chords)\n", res.Path, res.OutPath, res.Chords)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d sheets failed", failed, len(results))
	}
	return nil
}
