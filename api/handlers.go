package api

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"medscribe.com/mre/pipeline"
	"medscribe.com/mre/transcript"
	"medscribe.com/mre/types"
	"net/http"
)

type apiRequest struct {
	Tid         string               `json:"tid"`
	Transcript  string               `json:"transcript"`
	PatientName string               `json:"patient_name"`
	ModelSpans  []types.RawModelSpan `json:"model_spans"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handlers exposes the engine over HTTP. Each endpoint takes the same
// request body and differs only in which slice of the response it returns.
type Handlers struct {
	Engine *pipeline.Engine
}

func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("/record", h.GenerateRecord)
	mux.HandleFunc("/entities", h.ExtractEntities)
	mux.HandleFunc("/sentiment", h.AnalyzeSentiment)
	mux.HandleFunc("/soap", h.GenerateSoapNote)
}

func (h *Handlers) GenerateRecord(w http.ResponseWriter, r *http.Request) {
	response, ok := h.process(w, r, "api_record", false)
	if !ok {
		return
	}
	writeJSON(w, r, response)
}

func (h *Handlers) ExtractEntities(w http.ResponseWriter, r *http.Request) {
	response, ok := h.process(w, r, "api_entities", true)
	if !ok {
		return
	}
	writeJSON(w, r, struct {
		Entities []types.EntityDetail `json:"entities"`
	}{Entities: response.Entities})
}

func (h *Handlers) AnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	response, ok := h.process(w, r, "api_sentiment", false)
	if !ok {
		return
	}
	writeJSON(w, r, response.Sentiment)
}

func (h *Handlers) GenerateSoapNote(w http.ResponseWriter, r *http.Request) {
	response, ok := h.process(w, r, "api_soap", false)
	if !ok {
		return
	}
	writeJSON(w, r, response.SoapNote)
}

func (h *Handlers) process(w http.ResponseWriter, r *http.Request, defaultTid string, includeEntities bool) (types.EngineResponse, bool) {
	w.Header().Set("Content-Type", "application/json")
	reqLogger := makeRequestLogger(r)

	if r.Method != http.MethodPost {
		reqLogger.Err(nil).Int("status", http.StatusMethodNotAllowed).Msg("Only 'POST' method is allowed here")
		writeError(w, http.StatusMethodNotAllowed, "only POST is allowed")
		return types.EngineResponse{}, false
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		reqLogger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not read request body")
		writeError(w, http.StatusBadRequest, "could not read request body")
		return types.EngineResponse{}, false
	}

	var parsed apiRequest
	if err := json.Unmarshal(body, &parsed); err != nil {
		reqLogger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not parse request body")
		writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return types.EngineResponse{}, false
	}
	if len(parsed.Tid) == 0 {
		parsed.Tid = defaultTid
	}

	reqLogger.Info().Str("tid", parsed.Tid).Msg("Starting pipeline for request from API")
	response, err := h.Engine.Process(pipeline.Request{
		Tid:             parsed.Tid,
		Text:            parsed.Transcript,
		PatientName:     parsed.PatientName,
		ModelSpans:      parsed.ModelSpans,
		IncludeEntities: includeEntities,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, transcript.ErrEmptyTranscript) {
			status = http.StatusBadRequest
		}
		reqLogger.Err(err).Int("status", status).Str("tid", parsed.Tid).Msg("Failed to process transcript")
		writeError(w, status, err.Error())
		return types.EngineResponse{}, false
	}

	reqLogger.Info().Int("status", http.StatusOK).Str("tid", parsed.Tid).Msg("Finished processing request")
	return response, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload interface{}) {
	buf, err := json.Marshal(payload)
	if err != nil {
		reqLogger := makeRequestLogger(r)
		reqLogger.Err(err).Msg("Failed to marshal response")
		writeError(w, http.StatusInternalServerError, "failed to marshal response")
		return
	}
	_, _ = w.Write(buf)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	buf, _ := json.Marshal(errorResponse{Error: message})
	_, _ = w.Write(buf)
}
