package pitch

// keys and roots that are written with flats
var flatPreferring = map[string]bool{
	"F": true, "Bb": true, "Eb": true, "Ab": true, "Db": true, "Gb": true,
	"Dm": true, "Gm": true, "Cm": true, "Fm": true, "Bbm": true, "Ebm": true,
}

// PrefersFlats reports whether name is one of the flat-preferring keys.
// The match is exact: "A#" is not "Bb".
func PrefersFlats(name string) bool {
	return flatPreferring[name]
}

// UseFlats picks the spelling for a transposed note. A non-empty key hint
// decides for every note; without one each note follows its own original
// root.
func UseFlats(originalRoot, keyHint string) bool {
	if keyHint != "" {
		return PrefersFlats(keyHint)
	}
	return PrefersFlats(originalRoot)
}
