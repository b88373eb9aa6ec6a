// Package batch transposes whole directories of sheets in parallel.
package batch

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jsphweid/songsheet/chord"
	"github.com/jsphweid/songsheet/file"
	"github.com/jsphweid/songsheet/logging"
	"github.com/jsphweid/songsheet/model"
	"github.com/jsphweid/songsheet/notation"
	"github.com/jsphweid/songsheet/util"
	"github.com/remeh/sizedwaitgroup"
	"github.com/spf13/afero"
)

type Options struct {
	Semitones int
	KeyHint   string
	// outputs mirror the layout under Root inside OutDir
	Root    string
	OutDir  string
	Workers int
	Logger  logging.Logger
}

type Result struct {
	FileNum model.FileNum
	Path    string
	OutPath string
	Chords  int
	Err     error
}

func (o Options) outPath(path string) string {
	if o.Root == "" {
		return filepath.Join(o.OutDir, filepath.Base(path))
	}
	rel, err := filepath.Rel(o.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(path)
	}
	return filepath.Join(o.OutDir, rel)
}

func processSheet(fsys afero.Fs, num model.FileNum, path string, opts Options) Result {
	res := Result{FileNum: num, Path: path, OutPath: opts.outPath(path)}
	text, err := file.ReadSheet(fsys, path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Chords = len(chord.Extract(text))
	res.Err = file.WriteSheet(fsys, res.OutPath, notation.Transpose(text, opts.Semitones, opts.KeyHint))
	return res
}

// ProcessAllSheets transposes every sheet in m into opts.OutDir. Results
// come back in file number order. Sheets not started before ctx is done
// carry ctx's error.
func ProcessAllSheets(ctx context.Context, fsys afero.Fs, m model.FileNumToSheetPath, opts Options) []Result {
	log := opts.Logger
	if log == nil {
		log = logging.GetGlobalLogger()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	nums := util.GetKeysSorted(m)
	results := make([]Result, len(nums))
	wg := sizedwaitgroup.New(workers)

	for i, num := range nums {
		err := ctx.Err()
		if err == nil {
			err = wg.AddWithContext(ctx)
		}
		if err != nil {
			for j := i; j < len(nums); j++ {
				results[j] = Result{FileNum: nums[j], Path: m[nums[j]], Err: err}
			}
			break
		}
		go func(i int, num model.FileNum) {
			defer wg.Done()
			results[i] = processSheet(fsys, num, m[num], opts)
			fields := logging.Fields{"file": m[num], "n": i + 1, "of": len(nums)}
			if results[i].Err != nil {
				log.Error(results[i].Err, "Skipping sheet", fields)
				return
			}
			log.Debug("Transposed sheet", fields)
		}(i, num)
	}
	wg.Wait()
	return results
}
