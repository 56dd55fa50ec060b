package domain

import "time"

// Situation names a wearing occasion offered by the quiz. Picking one
// overwrites the whole accord selection with its preset.
type Situation string

const (
	SituationDaily    Situation = "daily"
	SituationFormal   Situation = "formal"
	SituationDate     Situation = "date"
	SituationParty    Situation = "party"
	SituationExercise Situation = "exercise"
)

//nolint:gochecknoglobals // static lookup tables
var situationPresets = map[Situation][]string{
	SituationDaily:    {"fresh", "citrus"},
	SituationFormal:   {"woody", "musky"},
	SituationDate:     {"floral", "sweet"},
	SituationParty:    {"musky", "amber"},
	SituationExercise: {"fresh", "aquatic"},
}

// Each weekday carries one signature accord for the birthday step.
//
//nolint:gochecknoglobals // static lookup tables
var weekdayAccords = map[time.Weekday]string{
	time.Monday:    "fresh",
	time.Tuesday:   "spicy",
	time.Wednesday: "floral",
	time.Thursday:  "oriental",
	time.Friday:    "fruity",
	time.Saturday:  "woody",
	time.Sunday:    "powdery",
}

// SituationPreset returns the accord preset for a situation. The second
// result is false for unknown situations.
func SituationPreset(s Situation) ([]string, bool) {
	preset, ok := situationPresets[s]
	if !ok {
		return nil, false
	}
	return cloneList(preset), true
}

// WeekdayAccord returns the signature accord for a weekday.
func WeekdayAccord(day time.Weekday) (string, bool) {
	accord, ok := weekdayAccords[day]
	return accord, ok
}

// Situations lists the configured situations in quiz display order.
func Situations() []Situation {
	return []Situation{
		SituationDaily,
		SituationFormal,
		SituationDate,
		SituationParty,
		SituationExercise,
	}
}
