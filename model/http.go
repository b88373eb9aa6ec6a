package model

type TransposeRequestBody struct {
	Text      string `json:"text"`
	Semitones int    `json:"semitones"`
	Key       string `json:"key,omitempty"`
}

type TextResponse struct {
	Text string `json:"text"`
}

type KeyRequestBody struct {
	Text     string `json:"text"`
	Estimate bool   `json:"estimate,omitempty"`
}

type KeyCandidate struct {
	Key   string  `json:"key"`
	Score float64 `json:"score"`
}

type KeyResponse struct {
	Key        string         `json:"key"`
	Candidates []KeyCandidate `json:"candidates,omitempty"`
}

// RomanRequestBody converts either a single chord or a whole sheet.
type RomanRequestBody struct {
	Chord string `json:"chord,omitempty"`
	Text  string `json:"text,omitempty"`
	Key   string `json:"key"`
}

type SolfegeRequestBody struct {
	Note string `json:"note,omitempty"`
	Text string `json:"text,omitempty"`
}

type ResultResponse struct {
	Result string `json:"result"`
}

type ChordsRequestBody struct {
	Text string `json:"text"`
}

type ChordsResponse struct {
	Chords []string `json:"chords"`
}

type AnalyzeRequestBody struct {
	Text string `json:"text"`
	Key  string `json:"key,omitempty"`
}

type Analysis struct {
	Chords     []string       `json:"chords"`
	Key        string         `json:"key"`
	Numerals   []string       `json:"numerals"`
	Solfege    []string       `json:"solfege"`
	Candidates []KeyCandidate `json:"candidates"`
}

type MidiRequestBody struct {
	Text          string  `json:"text"`
	Semitones     int     `json:"semitones,omitempty"`
	Key           string  `json:"key,omitempty"`
	Tempo         float64 `json:"tempo,omitempty"`
	Octave        int     `json:"octave,omitempty"`
	BeatsPerChord int     `json:"beats_per_chord,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
