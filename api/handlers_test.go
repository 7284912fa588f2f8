package api

import (
	"encoding/json"
	"github.com/stretchr/testify/require"
	"medscribe.com/mre/pipeline"
	"medscribe.com/mre/types"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testTranscript = `Doctor: Good morning, Mrs. Jones. What brings you in today?
Patient: I've been having neck pain and back pain since the accident.
Patient: I now only have occasional back pain. Will it get worse?`

func newTestHandlers(t *testing.T) *Handlers {
	engine, err := pipeline.NewEngine(pipeline.EngineParams{ResourceFolder: "../resources"})
	require.NoError(t, err)
	return &Handlers{Engine: engine}
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestGenerateRecord(t *testing.T) {
	handlers := newTestHandlers(t)

	body, err := json.Marshal(map[string]string{
		"transcript":   testTranscript,
		"patient_name": "Janet Jones",
	})
	require.NoError(t, err)

	rec := postJSON(t, handlers.GenerateRecord, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var response types.EngineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Equal(t, "Janet Jones", *response.MedicalRecord.PatientName)
	require.Contains(t, response.MedicalRecord.Symptoms, "Neck pain")
	require.Nil(t, response.Entities)
}

func TestExtractEntities(t *testing.T) {
	handlers := newTestHandlers(t)

	body, err := json.Marshal(map[string]string{"transcript": testTranscript})
	require.NoError(t, err)

	rec := postJSON(t, handlers.ExtractEntities, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Entities []types.EntityDetail `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotEmpty(t, response.Entities)
	for _, entity := range response.Entities {
		require.NotEmpty(t, entity.Spans)
		require.True(t, entity.MentionCount >= 1)
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	handlers := newTestHandlers(t)

	body, err := json.Marshal(map[string]string{"transcript": testTranscript})
	require.NoError(t, err)

	rec := postJSON(t, handlers.AnalyzeSentiment, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.SentimentResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Equal(t, "Anxious", result.Label)
	require.Equal(t, "Seeking reassurance", result.Intent)
}

func TestGenerateSoapNote(t *testing.T) {
	handlers := newTestHandlers(t)

	body, err := json.Marshal(map[string]string{"transcript": testTranscript})
	require.NoError(t, err)

	rec := postJSON(t, handlers.GenerateSoapNote, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var note types.SoapNote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	require.Contains(t, note.Subjective, "neck pain")
	require.NotEmpty(t, note.Plan)
}

func TestRejectsNonPost(t *testing.T) {
	handlers := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/record", nil)
	rec := httptest.NewRecorder()
	handlers.GenerateRecord(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRejectsMalformedBody(t *testing.T) {
	handlers := newTestHandlers(t)

	rec := postJSON(t, handlers.GenerateRecord, "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRejectsEmptyTranscript(t *testing.T) {
	handlers := newTestHandlers(t)

	rec := postJSON(t, handlers.GenerateRecord, `{"transcript": "  "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Contains(t, payload["error"], "transcript")
}
