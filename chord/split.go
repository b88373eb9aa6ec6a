package chord

import (
	"strings"

	"github.com/jsphweid/songsheet/model"
	"github.com/jsphweid/songsheet/pitch"
)

// SplitSlash separates "X/Y" into its two halves. Symbols with no slash or
// more than one are not slash chords.
func SplitSlash(token string) (upper, bass string, ok bool) {
	if strings.Count(token, "/") != 1 {
		return token, "", false
	}
	i := strings.IndexByte(token, '/')
	return token[:i], token[i+1:], true
}

// Split breaks a chord symbol into root, quality and bass. ok is false when
// the symbol has no recognizable root; such tokens are left alone by every
// transform. An unrecognizable bass is dropped from the token but does not
// fail the split.
func Split(token string) (model.ChordToken, bool) {
	c := model.ChordToken{Raw: token}
	upper, bass, slash := SplitSlash(token)

	root, quality, ok := pitch.ParseRoot(upper)
	if !ok {
		return c, false
	}
	if _, ok := pitch.ClassOf(root); !ok {
		return c, false
	}
	c.Root = root
	c.Quality = quality

	if slash {
		// the quality of the bass side is discarded
		if bassRoot, _, ok := pitch.ParseRoot(bass); ok {
			if _, ok := pitch.ClassOf(bassRoot); ok {
				c.Bass = bassRoot
			}
		}
	}
	return c, true
}
