package app

import (
	"strings"

	"feedback-coach/internal/domain"
)

// CoachPanel is the floating assistant that rewrites feedback drafts.
type CoachPanel struct {
	open     bool
	draft    string
	response *domain.AIReply
	loading  bool
}

type CoachView struct {
	Open      bool            `json:"open"`
	Draft     string          `json:"draft"`
	CanSubmit bool            `json:"canSubmit"`
	Loading   bool            `json:"loading"`
	Response  *domain.AIReply `json:"response,omitempty"`
}

func NewCoachPanel() *CoachPanel {
	return &CoachPanel{}
}

func (p *CoachPanel) Toggle() {
	p.open = !p.open
}

func (p *CoachPanel) SetDraft(text string) {
	p.draft = text
}

func (p *CoachPanel) CanSubmit() bool {
	return !p.loading && strings.TrimSpace(p.draft) != ""
}

// Begin clears the previous response and returns the draft to refine.
func (p *CoachPanel) Begin() (string, error) {
	if p.loading {
		return "", domain.ErrRequestInFlight
	}
	if strings.TrimSpace(p.draft) == "" {
		return "", domain.ErrEmptyDraft
	}
	p.loading = true
	p.response = nil
	return p.draft, nil
}

func (p *CoachPanel) Complete(reply domain.AIReply) {
	p.loading = false
	p.response = &reply
}

func (p *CoachPanel) View() CoachView {
	return CoachView{
		Open:      p.open,
		Draft:     p.draft,
		CanSubmit: p.CanSubmit(),
		Loading:   p.loading,
		Response:  p.response,
	}
}
