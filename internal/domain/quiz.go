package domain

import (
	"errors"
	"fmt"
	"time"
)

// MaxQuizAccords caps the accord multi-select step. A sixth selection is
// rejected silently rather than erroring, matching the disabled-option UI.
const MaxQuizAccords = 5

// QuizStep indexes one step of the recommendation quiz.
type QuizStep int

const (
	StepWelcome QuizStep = iota
	StepGender
	StepSituation
	StepAccords
	StepNotes
	StepBirthday
	StepBrand

	quizStepCount
)

// String returns the step name.
func (s QuizStep) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepGender:
		return "gender"
	case StepSituation:
		return "situation"
	case StepAccords:
		return "accords"
	case StepNotes:
		return "notes"
	case StepBirthday:
		return "birthday"
	case StepBrand:
		return "brand"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// ErrQuizNotFinished is returned by Submit before the last step is reached.
var ErrQuizNotFinished = errors.New("quiz not finished")

// Quiz guides the user through the fixed step sequence
// welcome -> gender -> situation -> accords -> notes -> birthday -> brand,
// accumulating answers into a single FilterSet submitted once at the end.
type Quiz struct {
	step   QuizStep
	filter FilterSet
}

// NewQuiz starts a quiz at the welcome step with an empty answer set.
func NewQuiz() *Quiz {
	return &Quiz{step: StepWelcome}
}

// Step returns the current step.
func (q *Quiz) Step() QuizStep {
	return q.step
}

// Answers returns a snapshot of the accumulated filter.
func (q *Quiz) Answers() FilterSet {
	return q.filter.Clone()
}

// Next advances one step. Returns false at the last step.
func (q *Quiz) Next() bool {
	if q.step >= quizStepCount-1 {
		return false
	}
	q.step++
	return true
}

// Previous moves one step back. At the first step it returns false, meaning
// the caller should exit the quiz entirely rather than transition.
func (q *Quiz) Previous() bool {
	if q.step <= StepWelcome {
		return false
	}
	q.step--
	return true
}

// SelectGender records the gender preference.
func (q *Quiz) SelectGender(gender Gender) {
	q.filter.Gender = gender
}

// SelectSituation overwrites the entire accord selection with the preset for
// the situation. This is destructive: previously picked accords are dropped,
// not merged. Unknown situations are rejected.
func (q *Quiz) SelectSituation(s Situation) error {
	preset, ok := SituationPreset(s)
	if !ok {
		return fmt.Errorf("unknown situation: %s", s)
	}
	q.filter.Accords = preset
	return nil
}

// SituationSelected reports whether the situation reads back as currently
// selected: only while its preset equals the active accords, compared
// order-insensitively.
func (q *Quiz) SituationSelected(s Situation) bool {
	preset, ok := SituationPreset(s)
	if !ok {
		return false
	}
	return equalUnordered(preset, q.filter.Accords)
}

// ToggleAccord toggles one accord in the multi-select step. Adding beyond
// MaxQuizAccords is rejected silently and false is returned so the option can
// render disabled.
func (q *Quiz) ToggleAccord(accord string) bool {
	if containsValue(q.filter.Accords, accord) {
		q.filter.Accords = removeValue(q.filter.Accords, accord)
		return true
	}
	if len(q.filter.Accords) >= MaxQuizAccords {
		return false
	}
	q.filter.Accords = append(q.filter.Accords, accord)
	return true
}

// CanSelectAccord reports whether another accord may still be added.
func (q *Quiz) CanSelectAccord(accord string) bool {
	return containsValue(q.filter.Accords, accord) ||
		len(q.filter.Accords) < MaxQuizAccords
}

// ToggleNote toggles one note in the given layer.
func (q *Quiz) ToggleNote(field ListField, note string) {
	switch field {
	case FieldTopNotes, FieldMiddleNotes, FieldBaseNotes:
	default:
		return
	}

	current := q.filter.List(field)
	if containsValue(current, note) {
		q.filter.setList(field, removeValue(current, note))
		return
	}
	q.filter.setList(field, append(cloneList(current), note))
}

// SelectBirthday overwrites the accord selection wholesale with the signature
// accord of the given weekday.
func (q *Quiz) SelectBirthday(day time.Weekday) {
	accord, ok := WeekdayAccord(day)
	if !ok {
		return
	}
	q.filter.Accords = []string{accord}
}

// SelectBrand records a single brand preference. An empty brand means
// explicit no-preference.
func (q *Quiz) SelectBrand(brand string) {
	if brand == "" {
		q.filter.Brands = nil
		return
	}
	q.filter.Brands = []string{brand}
}

// Submit packages the accumulated answers as the one-shot suggestion filter.
// Only valid at the last step.
func (q *Quiz) Submit() (FilterSet, error) {
	if q.step != quizStepCount-1 {
		return FilterSet{}, ErrQuizNotFinished
	}
	return q.filter.Clone(), nil
}
