package model

// Span is one bracketed chord annotation. Start and End are byte offsets of
// the payload, so text[Start:End] == Raw and the brackets sit just outside.
type Span struct {
	Raw   string
	Start int
	End   int
}

// AnnotatedText is a sheet plus its chord spans in order of appearance.
type AnnotatedText struct {
	Text  string
	Spans []Span
}

// ChordToken is a split chord symbol. Bass is empty unless the symbol is a
// slash chord with a recognizable bass note.
type ChordToken struct {
	Raw     string
	Root    string
	Quality string
	Bass    string
}

func (c ChordToken) HasBass() bool {
	return c.Bass != ""
}
