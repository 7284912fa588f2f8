package sentiment

import (
	"medscribe.com/mre/types"
	"medscribe.com/mre/utils"
	"path"
)

// Params holds the immutable sentiment and intent lexicons. Loaded once at
// process start and shared read-only across requests.
type Params struct {
	Anxious   map[string]bool
	Reassured map[string]bool
	Neutral   map[string]bool

	SeekingReassurance []string
	ReportingSymptoms  []string
	ExpressingConcern  []string

	Version int
}

func LoadParams(resourceFolder string, cfg types.Configuration) (Params, error) {
	var params Params
	var err error

	params.Anxious, err = utils.ReadSet(path.Join(resourceFolder, cfg.Sentiment.Anxious))
	if err != nil {
		return Params{}, err
	}
	params.Reassured, err = utils.ReadSet(path.Join(resourceFolder, cfg.Sentiment.Reassured))
	if err != nil {
		return Params{}, err
	}
	params.Neutral, err = utils.ReadSet(path.Join(resourceFolder, cfg.Sentiment.Neutral))
	if err != nil {
		return Params{}, err
	}
	params.SeekingReassurance, err = utils.ReadList(path.Join(resourceFolder, cfg.Sentiment.SeekingReassurance))
	if err != nil {
		return Params{}, err
	}
	params.ReportingSymptoms, err = utils.ReadList(path.Join(resourceFolder, cfg.Sentiment.ReportingSymptoms))
	if err != nil {
		return Params{}, err
	}
	params.ExpressingConcern, err = utils.ReadList(path.Join(resourceFolder, cfg.Sentiment.ExpressingConcern))
	if err != nil {
		return Params{}, err
	}

	params.Version = cfg.Version
	return params, nil
}
