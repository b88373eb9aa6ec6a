package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jsphweid/songsheet/config"
	"github.com/jsphweid/songsheet/constants"
	"github.com/jsphweid/songsheet/midi"
	"github.com/jsphweid/songsheet/model"
	"github.com/jsphweid/songsheet/notation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// decodeBody reads a JSON request body into v. On failure the error
// response is already written.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body is over %d bytes", tooBig.Limit))
			return false
		}
		writeError(w, http.StatusBadRequest, "Could not parse request body: "+err.Error())
		return false
	}
	return true
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequestBody
	if !decodeBody(w, r, &input) {
		return
	}
	writeJSON(w, http.StatusOK, model.TextResponse{
		Text: notation.Transpose(input.Text, input.Semitones, input.Key),
	})
}

func HandleKey(w http.ResponseWriter, r *http.Request) {
	var input model.KeyRequestBody
	if !decodeBody(w, r, &input) {
		return
	}
	res := model.KeyResponse{Key: notation.DetectKey(input.Text)}
	if input.Estimate {
		res.Candidates = notation.EstimateKey(input.Text)
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleRoman converts the single chord when one is given, otherwise the
// whole text. Without a key a chord is read in C and a text in its
// detected key.
func HandleRoman(w http.ResponseWriter, r *http.Request) {
	var input model.RomanRequestBody
	if !decodeBody(w, r, &input) {
		return
	}
	switch {
	case input.Chord != "":
		k := input.Key
		if k == "" {
			k = constants.DefaultKey
		}
		writeJSON(w, http.StatusOK, model.ResultResponse{Result: notation.ToRomanNumeral(input.Chord, k)})
	case input.Text != "":
		k := input.Key
		if k == "" {
			k = notation.DetectKey(input.Text)
		}
		writeJSON(w, http.StatusOK, model.ResultResponse{Result: notation.RomanText(input.Text, k)})
	default:
		writeError(w, http.StatusBadRequest, "one of chord or text is required")
	}
}

func HandleSolfege(w http.ResponseWriter, r *http.Request) {
	var input model.SolfegeRequestBody
	if !decodeBody(w, r, &input) {
		return
	}
	switch {
	case input.Note != "":
		writeJSON(w, http.StatusOK, model.ResultResponse{Result: notation.ToSolfege(input.Note)})
	case input.Text != "":
		writeJSON(w, http.StatusOK, model.ResultResponse{Result: notation.SolfegeText(input.Text)})
	default:
		writeError(w, http.StatusBadRequest, "one of note or text is required")
	}
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	var input model.ChordsRequestBody
	if !decodeBody(w, r, &input) {
		return
	}
	chords := notation.ExtractChords(input.Text)
	if chords == nil {
		chords = []string{}
	}
	writeJSON(w, http.StatusOK, model.ChordsResponse{Chords: chords})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if !decodeBody(w, r, &input) {
		return
	}
	writeJSON(w, http.StatusOK, notation.Analyze(input.Text, input.Key))
}

// HandleMidi renders the posted sheet as a MIDI file. Zero values in the
// request fall back to defaults.
func HandleMidi(defaults config.MidiConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.MidiRequestBody
		if !decodeBody(w, r, &input) {
			return
		}
		opts := midi.Options{
			Name:          "chart",
			Tempo:         defaults.Tempo,
			Octave:        defaults.Octave,
			BeatsPerChord: defaults.BeatsPerChord,
		}
		if input.Tempo > 0 {
			opts.Tempo = input.Tempo
		}
		if input.Octave > 0 {
			opts.Octave = input.Octave
		}
		if input.BeatsPerChord > 0 {
			opts.BeatsPerChord = input.BeatsPerChord
		}

		s, err := midi.Render(notation.Transpose(input.Text, input.Semitones, input.Key), opts)
		switch {
		case errors.Is(err, midi.ErrBadOptions):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		var buf bytes.Buffer
		if err := midi.Write(&buf, s); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "audio/midi")
		w.Header().Set("Content-Disposition", `attachment; filename="chart.mid"`)
		w.Write(buf.Bytes())
	}
}
