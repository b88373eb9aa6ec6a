package file

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jsphweid/songsheet/constants"
	"github.com/jsphweid/songsheet/model"
	"github.com/spf13/afero"
)

func CreateFileNumMap(paths []string) model.FileNumToSheetPath {
	res := make(model.FileNumToSheetPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

func IsSheet(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range constants.SheetExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// GatherAllSheetPaths walks dir for chord sheets in lexical order. maxNum of
// 0 means no limit.
func GatherAllSheetPaths(fsys afero.Fs, dir string, maxNum int) ([]string, error) {
	var res []string
	walk := func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !IsSheet(path) {
			return nil
		}
		if maxNum == 0 || len(res) < maxNum {
			res = append(res, path)
		}
		return nil
	}
	if err := afero.Walk(fsys, dir, walk); err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	sort.Strings(res)
	return res, nil
}

func ReadSheet(fsys afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("reading sheet: %w", err)
	}
	return string(data), nil
}

// WriteSheet writes text to path, creating parent directories.
func WriteSheet(fsys afero.Fs, path, text string) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fsys, path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing sheet: %w", err)
	}
	return nil
}

func Size(fsys afero.Fs, path string) (int64, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
