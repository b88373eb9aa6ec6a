package chord

import (
	"fmt"
	"sort"
	"strings"
)

// CreateChordKey builds a stable key for a set of notes, lowest first.
// notes is sorted in place.
func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	var res strings.Builder
	for i, note := range notes {
		res.WriteString(fmt.Sprintf("%v", note))
		if i < len(notes)-1 {
			res.WriteString("-")
		}
	}
	return res.String()
}
