package pattern

import (
	"medscribe.com/mre/types"
	"medscribe.com/mre/utils"
	"path"
)

// Params holds the static, versioned pattern tables. Loaded once at process
// start and never mutated afterwards.
type Params struct {
	SymptomNouns   map[string]bool
	SymptomPhrases []string
	BodyParts      map[string]bool
	TreatmentNouns []string
	SessionNouns   map[string]bool
	ConditionNouns []string
	DurationUnits  map[string]bool
	RecencyMarkers map[string]bool
	Version        int
}

func LoadParams(resourceFolder string, cfg types.Configuration) (Params, error) {
	var res Params
	var err error

	res.Version = cfg.Version

	res.SymptomNouns, err = utils.ReadSet(path.Join(resourceFolder, cfg.Pattern.SymptomNouns))
	if err != nil {
		return res, err
	}

	res.SymptomPhrases, err = utils.ReadList(path.Join(resourceFolder, cfg.Pattern.SymptomPhrases))
	if err != nil {
		return res, err
	}

	res.BodyParts, err = utils.ReadSet(path.Join(resourceFolder, cfg.Pattern.BodyParts))
	if err != nil {
		return res, err
	}

	res.TreatmentNouns, err = utils.ReadList(path.Join(resourceFolder, cfg.Pattern.TreatmentNouns))
	if err != nil {
		return res, err
	}

	res.SessionNouns, err = utils.ReadSet(path.Join(resourceFolder, cfg.Pattern.SessionNouns))
	if err != nil {
		return res, err
	}

	res.ConditionNouns, err = utils.ReadList(path.Join(resourceFolder, cfg.Pattern.ConditionNouns))
	if err != nil {
		return res, err
	}

	res.DurationUnits, err = utils.ReadSet(path.Join(resourceFolder, cfg.Pattern.DurationUnits))
	if err != nil {
		return res, err
	}

	res.RecencyMarkers, err = utils.ReadSet(path.Join(resourceFolder, cfg.Pattern.RecencyMarkers))
	if err != nil {
		return res, err
	}

	return res, nil
}
