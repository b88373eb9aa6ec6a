package chord

import "strings"

type Triad int

const (
	Major Triad = iota
	Minor
	Diminished
	Augmented
	Sus2
	Sus4
	Power
)

var triadIntervals = map[Triad][]int{
	Major:      {0, 4, 7},
	Minor:      {0, 3, 7},
	Diminished: {0, 3, 6},
	Augmented:  {0, 4, 8},
	Sus2:       {0, 2, 7},
	Sus4:       {0, 5, 7},
	Power:      {0, 7},
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// TriadOf reads the basic triad from a quality suffix such as "m7" or
// "sus4". Unknown suffixes are major.
func TriadOf(quality string) Triad {
	q := quality
	switch {
	case q == "5":
		return Power
	case containsAny(q, "dim", "°", "ø", "m7b5"):
		return Diminished
	case strings.Contains(q, "aug") || strings.HasPrefix(q, "+"):
		return Augmented
	case strings.Contains(q, "sus2"):
		return Sus2
	case strings.Contains(q, "sus"):
		return Sus4
	case strings.HasPrefix(q, "min") || strings.HasPrefix(q, "-"):
		return Minor
	case strings.HasPrefix(q, "m") && !strings.HasPrefix(q, "maj"):
		return Minor
	}
	return Major
}

// Intervals lists the chord tones of a quality in semitones above the root.
func Intervals(quality string) []int {
	q := quality
	triad := TriadOf(q)
	res := append([]int(nil), triadIntervals[triad]...)
	if triad == Power {
		return res
	}

	switch {
	case triad == Diminished && containsAny(q, "dim7", "°7"):
		res = append(res, 9)
	case strings.Contains(q, "maj") && containsAny(q, "7", "9", "11", "13"):
		res = append(res, 11)
	case containsAny(q, "7", "ø") || (!strings.Contains(q, "add") && containsAny(q, "9", "11", "13")):
		res = append(res, 10)
	case strings.Contains(q, "6"):
		res = append(res, 9)
	}

	if strings.Contains(q, "9") {
		res = append(res, 14)
	}
	if strings.Contains(q, "11") {
		res = append(res, 17)
	}
	if strings.Contains(q, "13") {
		res = append(res, 21)
	}
	return res
}
