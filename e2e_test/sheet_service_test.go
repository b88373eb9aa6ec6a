//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/songsheet/cmd"
	"github.com/jsphweid/songsheet/config"
	"github.com/jsphweid/songsheet/logging"
	"github.com/jsphweid/songsheet/midi"
	"github.com/jsphweid/songsheet/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const amazingGrace = `{title: Amazing Grace}
A[G]mazing [G7]grace how [C]sweet the [G]sound
That [G]saved a [Em]wretch like [D]me
I [G]once was [G7]lost but [C]now am [G]found
Was [Em]blind but [D]now I [G]see`

var server *httptest.Server

func TestMain(m *testing.M) {
	server = httptest.NewServer(cmd.NewRouter(config.Default(), &logging.NoOpLogger{}))
	exitVal := m.Run()
	server.Close()
	os.Exit(exitVal)
}

func post(t *testing.T, path string, body any) *http.Response {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestTransposeThenAnalyzeE2E(t *testing.T) {
	resp := post(t, "/transpose", model.TransposeRequestBody{Text: amazingGrace, Semitones: 3, Key: "Bb"})
	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)

	var transposed model.TextResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&transposed))
	assert.Contains(transposed.Text, "A[Bb]mazing [Bb7]grace how [Eb]sweet the [Bb]sound")

	resp = post(t, "/analyze", model.AnalyzeRequestBody{Text: transposed.Text})
	var analysis model.Analysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&analysis))
	assert.Equal("Bb", analysis.Key)
	assert.Equal([]string{"I", "I7", "IV", "I"}, analysis.Numerals[:4])
	assert.Equal("Sib", analysis.Solfege[0])
}

func TestMidiE2E(t *testing.T) {
	resp := post(t, "/midi", model.MidiRequestBody{Text: amazingGrace, Tempo: 72})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	dat, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	s, err := midi.Read(bytes.NewReader(dat))
	require.NoError(t, err)

	markers := midi.Markers(s)
	assert.Len(t, markers, 14)
	assert.Equal(t, "G", markers[0])
}
