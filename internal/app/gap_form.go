package app

import (
	"strings"

	"feedback-coach/internal/domain"
)

// GapField names one of the five inputs of the analysis page.
type GapField string

const (
	FieldSubject      GapField = "subject"
	FieldTask         GapField = "task"
	FieldStandard     GapField = "standard"
	FieldBehavior     GapField = "behavior"
	FieldConsequences GapField = "consequences"
)

// GapForm collects the gap description and holds the last AI narrative.
type GapForm struct {
	input   domain.GapInput
	result  *domain.AIReply
	loading bool
}

type GapView struct {
	Input     domain.GapInput `json:"input"`
	CanSubmit bool            `json:"canSubmit"`
	Loading   bool            `json:"loading"`
	Result    *domain.AIReply `json:"result,omitempty"`
}

func NewGapForm() *GapForm {
	return &GapForm{}
}

func (f *GapForm) Set(input domain.GapInput) {
	f.input = input
}

func (f *GapForm) Update(field GapField, value string) error {
	switch field {
	case FieldSubject:
		f.input.Subject = value
	case FieldTask:
		f.input.Task = value
	case FieldStandard:
		f.input.Standard = value
	case FieldBehavior:
		f.input.Behavior = value
	case FieldConsequences:
		f.input.Consequences = value
	default:
		return domain.ErrUnknownField
	}
	return nil
}

// CanSubmit reports whether the analysis trigger is enabled.
func (f *GapForm) CanSubmit() bool {
	return !f.loading && strings.TrimSpace(f.input.Standard) != "" && strings.TrimSpace(f.input.Behavior) != ""
}

// Begin marks a request in flight and returns the input to send.
func (f *GapForm) Begin() (domain.GapInput, error) {
	if f.loading {
		return domain.GapInput{}, domain.ErrRequestInFlight
	}
	if !f.CanSubmit() {
		return domain.GapInput{}, domain.ErrGapIncomplete
	}
	f.loading = true
	return f.input, nil
}

// Complete replaces any prior result with reply.
func (f *GapForm) Complete(reply domain.AIReply) {
	f.loading = false
	f.result = &reply
}

func (f *GapForm) View() GapView {
	return GapView{
		Input:     f.input,
		CanSubmit: f.CanSubmit(),
		Loading:   f.loading,
		Result:    f.result,
	}
}
