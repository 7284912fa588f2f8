package pipeline

import (
	"encoding/json"
	"medscribe.com/mre/infer"
	"medscribe.com/mre/logger"
	"medscribe.com/mre/normalizer"
	"medscribe.com/mre/pattern"
	"medscribe.com/mre/report"
	"medscribe.com/mre/resolver"
	"medscribe.com/mre/sentiment"
	"medscribe.com/mre/transcript"
	"medscribe.com/mre/types"
	"sort"
)

type EngineParams struct {
	ResourceFolder string `json:"resource_folder"`
}

// Pipeline is the channel form consumed by the worker: one request in,
// one serialized response out.
type Pipeline func(request Request) <-chan string

// Engine bundles the immutable rule tables with the processing stages.
// Safe for concurrent use; nothing here mutates after NewEngine returns.
type Engine struct {
	match          pattern.Matcher
	classify       sentiment.Classifier
	labels         normalizer.LabelMap
	recencyMarkers map[string]bool
}

func NewEngine(params EngineParams) (*Engine, error) {
	mreLogger := logger.NewLogger("Medical record engine")
	errLogger := mreLogger.With().Caller().Logger()
	mreLogger.Info().
		Interface("params", params).
		Msg("Starting medical record engine (see parameters in 'params' field)")

	cfg, err := types.LoadConfiguration(params.ResourceFolder)
	if err != nil {
		errLogger.Err(err).
			Str("resource_folder", params.ResourceFolder).
			Msg("Failed to load engine configuration")
		return nil, err
	}

	patternParams, err := pattern.LoadParams(params.ResourceFolder, cfg)
	if err != nil {
		errLogger.Err(err).
			Str("resource_folder", params.ResourceFolder).
			Msg("Failed to load pattern tables")
		return nil, err
	}

	sentimentParams, err := sentiment.LoadParams(params.ResourceFolder, cfg)
	if err != nil {
		errLogger.Err(err).
			Str("resource_folder", params.ResourceFolder).
			Msg("Failed to load sentiment lexicons")
		return nil, err
	}

	labels, err := normalizer.LoadLabelMap(params.ResourceFolder, cfg)
	if err != nil {
		errLogger.Err(err).
			Str("resource_folder", params.ResourceFolder).
			Msg("Failed to load model label map")
		return nil, err
	}

	return &Engine{
		match:          pattern.NewMatcher(patternParams),
		classify:       sentiment.NewClassifier(sentimentParams),
		labels:         labels,
		recencyMarkers: patternParams.RecencyMarkers,
	}, nil
}

// Process runs one transcript through every stage. The only error it can
// return is an unparseable transcript; missing evidence comes back as
// absent fields in a complete response shape.
func (engine *Engine) Process(request Request) (types.EngineResponse, error) {
	utterances, err := transcript.Segment(request.Text)
	if err != nil {
		return types.EngineResponse{}, err
	}

	candidates := normalizer.Normalize(request.ModelSpans, utterances, engine.labels)
	candidates = append(candidates, engine.match(utterances)...)

	// detection order is positional order over the merged sources
	sort.SliceStable(candidates, func(i, j int) bool {
		return types.SpanSortFunction(candidates[i].GetSpan(), candidates[j].GetSpan())
	})

	resolution := resolver.Resolve(candidates)
	fields := infer.InferFields(utterances, resolution, request.PatientName, engine.recencyMarkers)
	record := report.BuildReport(resolution, fields)
	sentimentResult := engine.classify(utterances)

	response := types.EngineResponse{
		MedicalRecord: record,
		Sentiment:     sentimentResult,
		SoapNote:      report.BuildSoapNote(record, sentimentResult),
	}
	if request.IncludeEntities {
		response.Entities = entityDetails(resolution)
	}
	return response, nil
}

// Pipeline wraps Process in the worker's channel convention and folds
// failures into an error payload instead of a broken channel.
func (engine *Engine) Pipeline() Pipeline {
	mreLogger := logger.NewLogger("Medical record pipeline")

	return func(request Request) <-chan string {
		responseChan := make(chan string)
		pplnLog := mreLogger.With().Str("tid", request.Tid).Logger()
		pplnLog.Info().Msg("Started medical record pipeline")

		go func() {
			response, err := engine.Process(request)
			if err != nil {
				pplnLog.Err(err).Msg("Failed to process transcript")
				responseChan <- marshalError(err)
				return
			}

			buf, err := json.Marshal(response)
			if err != nil {
				pplnLog.Err(err).Msg("Failed to marshal response")
				responseChan <- marshalError(err)
				return
			}

			pplnLog.Info().Msg("Finished medical record pipeline")
			responseChan <- string(buf)
		}()

		return responseChan
	}
}

func marshalError(err error) string {
	buf, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: err.Error()})
	return string(buf)
}
