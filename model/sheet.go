package model

type FileNum = uint32
type FileNumToSheetPath = map[FileNum]string

// SheetStats summarizes the chords found in one sheet.
type SheetStats struct {
	Path        string
	Bytes       int64
	NumChords   int
	Distinct    int
	DetectedKey string
}
