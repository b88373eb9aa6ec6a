package key

import (
	"math"
	"sort"

	"github.com/jsphweid/songsheet/chord"
	"github.com/jsphweid/songsheet/model"
	"github.com/jsphweid/songsheet/pitch"
	"gonum.org/v1/gonum/stat"
)

// Krumhansl-Kessler probe tone ratings, tonic first
var (
	majorProfile = [pitch.NumClasses]float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
	minorProfile = [pitch.NumClasses]float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}
)

var majorKeyNames = [pitch.NumClasses]string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

var minorKeyNames = [pitch.NumClasses]string{"Cm", "C#m", "Dm", "Ebm", "Em", "Fm", "F#m", "Gm", "G#m", "Am", "Bbm", "Bm"}

// Histogram counts every chord tone in text by pitch class. A slash bass
// counts once more for its own class.
func Histogram(text string) []float64 {
	h := make([]float64, pitch.NumClasses)
	for _, s := range chord.Extract(text) {
		tok, ok := chord.Split(s.Raw)
		if !ok {
			continue
		}
		root, _ := pitch.ClassOf(tok.Root)
		for _, iv := range chord.Intervals(tok.Quality) {
			h[root.Add(iv)]++
		}
		if tok.HasBass() {
			bass, _ := pitch.ClassOf(tok.Bass)
			h[bass]++
		}
	}
	return h
}

func rotate(profile [pitch.NumClasses]float64, tonic pitch.Class) []float64 {
	res := make([]float64, pitch.NumClasses)
	for pc := 0; pc < pitch.NumClasses; pc++ {
		res[pc] = profile[pitch.Class(pc).Interval(tonic)]
	}
	return res
}

// Estimate ranks all 24 major and minor keys by how well the chord tones of
// text correlate with each key profile, best first. It returns nil when
// there is nothing to correlate. Detect stays the canonical answer; this is
// a second opinion.
func Estimate(text string) []model.KeyCandidate {
	h := Histogram(text)
	if stat.Variance(h, nil) == 0 {
		return nil
	}

	res := make([]model.KeyCandidate, 0, 2*pitch.NumClasses)
	for i := 0; i < pitch.NumClasses; i++ {
		tonic := pitch.Class(i)
		res = append(res,
			model.KeyCandidate{Key: majorKeyNames[i], Score: score(h, rotate(majorProfile, tonic))},
			model.KeyCandidate{Key: minorKeyNames[i], Score: score(h, rotate(minorProfile, tonic))},
		)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Score > res[j].Score
	})
	return res
}

func score(h, profile []float64) float64 {
	r := stat.Correlation(h, profile, nil)
	if math.IsNaN(r) {
		return 0
	}
	return r
}
