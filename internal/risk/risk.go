package risk

import "strings"

// Level is the derived severity of a single check-in.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// Fever thresholds in °F.
const (
	HighTemperature   = 102.0
	MediumTemperature = 100.4
)

// highRiskSymptoms are matched as lowercase substrings of the symptom text.
var highRiskSymptoms = []string{
	"difficulty breathing",
	"chest pain",
	"persistent high fever",
}

// Classify derives the risk level from a check-in's temperature and symptom
// text. Rules apply in priority order, first match wins:
//
//  1. High   — temperature >= 102.0 or any high-risk symptom present
//  2. Medium — temperature >= 100.4
//  3. Low    — otherwise
//
// The symptom match is case-insensitive. Classify never fails; empty symptom
// text is fine.
func Classify(temperature float64, symptoms string) Level {
	if temperature >= HighTemperature {
		return LevelHigh
	}
	lowered := strings.ToLower(symptoms)
	for _, s := range highRiskSymptoms {
		if strings.Contains(lowered, s) {
			return LevelHigh
		}
	}
	if temperature >= MediumTemperature {
		return LevelMedium
	}
	return LevelLow
}
