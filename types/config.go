package types

import (
	"gopkg.in/yaml.v3"
	"io/ioutil"
	"path"
)

// Configuration describes where the engine's static rule tables live
// inside the resource folder. Loaded once at process start; the engine
// cannot run without it.
type Configuration struct {
	Version   int            `yaml:"version" json:"version"`
	LabelMap  string         `yaml:"label_map" json:"label_map"`
	Pattern   PatternFiles   `yaml:"pattern_tables" json:"pattern_tables"`
	Sentiment SentimentFiles `yaml:"sentiment_lexicons" json:"sentiment_lexicons"`
}

type PatternFiles struct {
	SymptomNouns   string `yaml:"symptom_nouns" json:"symptom_nouns"`
	SymptomPhrases string `yaml:"symptom_phrases" json:"symptom_phrases"`
	BodyParts      string `yaml:"body_parts" json:"body_parts"`
	TreatmentNouns string `yaml:"treatment_nouns" json:"treatment_nouns"`
	SessionNouns   string `yaml:"session_nouns" json:"session_nouns"`
	ConditionNouns string `yaml:"condition_nouns" json:"condition_nouns"`
	DurationUnits  string `yaml:"duration_units" json:"duration_units"`
	RecencyMarkers string `yaml:"recency_markers" json:"recency_markers"`
}

type SentimentFiles struct {
	Anxious            string `yaml:"anxious" json:"anxious"`
	Reassured          string `yaml:"reassured" json:"reassured"`
	Neutral            string `yaml:"neutral" json:"neutral"`
	SeekingReassurance string `yaml:"seeking_reassurance" json:"seeking_reassurance"`
	ReportingSymptoms  string `yaml:"reporting_symptoms" json:"reporting_symptoms"`
	ExpressingConcern  string `yaml:"expressing_concern" json:"expressing_concern"`
}

const configurationFileName = "engine.yaml"

func LoadConfiguration(resourceFolder string) (Configuration, error) {
	var cfg Configuration

	buf, err := ioutil.ReadFile(path.Join(resourceFolder, configurationFileName))
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
