package app

import (
	"strings"

	"feedback-coach/internal/domain"
)

// StageWalker steps through the GROW stages of the discussion page.
type StageWalker struct {
	stages      []domain.GrowStep
	active      int
	context     string
	suggestions *domain.AIReply
	loading     bool
	seq         uint64
}

// QuestionTicket identifies one question request. A reply is applied only if
// the walker has not moved since the ticket was issued.
type QuestionTicket struct {
	StageTitle string
	Context    string
	seq        uint64
}

type StageView struct {
	Stage       domain.GrowStep `json:"stage"`
	Index       int             `json:"index"`
	Total       int             `json:"total"`
	IsLast      bool            `json:"isLast"`
	Context     string          `json:"context"`
	CanSuggest  bool            `json:"canSuggest"`
	Loading     bool            `json:"loading"`
	Suggestions *domain.AIReply `json:"suggestions,omitempty"`
}

func NewStageWalker(stages []domain.GrowStep) *StageWalker {
	return &StageWalker{stages: stages}
}

func (w *StageWalker) Active() (domain.GrowStep, bool) {
	if len(w.stages) == 0 {
		return domain.GrowStep{}, false
	}
	return w.stages[w.active], true
}

// Select jumps to any stage.
func (w *StageWalker) Select(id string) error {
	for i, s := range w.stages {
		if s.ID == id {
			w.active = i
			w.reset()
			return nil
		}
	}
	return domain.ErrUnknownStage
}

// Advance moves one stage forward; it reports false at the last stage.
func (w *StageWalker) Advance() bool {
	if w.active >= len(w.stages)-1 {
		return false
	}
	w.active++
	w.reset()
	return true
}

// reset clears suggestions and context and orphans any outstanding ticket.
func (w *StageWalker) reset() {
	w.suggestions = nil
	w.context = ""
	w.loading = false
	w.seq++
}

func (w *StageWalker) SetContext(text string) {
	w.context = text
}

func (w *StageWalker) CanSuggest() bool {
	return !w.loading && strings.TrimSpace(w.context) != "" && len(w.stages) > 0
}

func (w *StageWalker) BeginQuestions() (QuestionTicket, error) {
	if w.loading {
		return QuestionTicket{}, domain.ErrRequestInFlight
	}
	stage, ok := w.Active()
	if !ok || strings.TrimSpace(w.context) == "" {
		return QuestionTicket{}, domain.ErrEmptyContext
	}
	w.loading = true
	return QuestionTicket{StageTitle: stage.Title, Context: w.context, seq: w.seq}, nil
}

// CompleteQuestions applies reply if ticket is still current.
func (w *StageWalker) CompleteQuestions(ticket QuestionTicket, reply domain.AIReply) bool {
	if ticket.seq != w.seq {
		return false
	}
	w.loading = false
	w.suggestions = &reply
	return true
}

func (w *StageWalker) View() StageView {
	stage, _ := w.Active()
	return StageView{
		Stage:       stage,
		Index:       w.active,
		Total:       len(w.stages),
		IsLast:      w.active >= len(w.stages)-1,
		Context:     w.context,
		CanSuggest:  w.CanSuggest(),
		Loading:     w.loading,
		Suggestions: w.suggestions,
	}
}
