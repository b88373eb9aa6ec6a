package chord

import (
	"regexp"
	"strings"

	"github.com/jsphweid/songsheet/model"
)

// a bracketed payload with no brackets inside it
var annotation = regexp.MustCompile(`\[([^\[\]]+)\]`)

// Extract finds every chord annotation in text, left to right.
// An unterminated "[" never matches and stays part of the prose.
func Extract(text string) []model.Span {
	matches := annotation.FindAllStringSubmatchIndex(text, -1)
	spans := make([]model.Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, model.Span{
			Raw:   text[m[2]:m[3]],
			Start: m[2],
			End:   m[3],
		})
	}
	return spans
}

// Chords returns the raw annotations in order, duplicates included.
func Chords(text string) []string {
	spans := Extract(text)
	res := make([]string, len(spans))
	for i, s := range spans {
		res[i] = s.Raw
	}
	return res
}

func Annotate(text string) model.AnnotatedText {
	return model.AnnotatedText{Text: text, Spans: Extract(text)}
}

// Reassemble rebuilds the text, passing each payload through fn. Everything
// outside the payloads, brackets included, is copied as is.
func Reassemble(at model.AnnotatedText, fn func(raw string) string) string {
	if len(at.Spans) == 0 {
		return at.Text
	}
	var b strings.Builder
	b.Grow(len(at.Text))
	prev := 0
	for _, s := range at.Spans {
		b.WriteString(at.Text[prev:s.Start])
		b.WriteString(fn(s.Raw))
		prev = s.End
	}
	b.WriteString(at.Text[prev:])
	return b.String()
}

// Rewrite is Annotate followed by Reassemble.
func Rewrite(text string, fn func(raw string) string) string {
	return Reassemble(Annotate(text), fn)
}
