package app

import (
	"context"
	"sync"

	"feedback-coach/internal/domain"
)

// Gateway turns a structured request into generated text.
// A non-nil error is one of the typed AI failures.
type Gateway interface {
	RefineFeedback(ctx context.Context, sessionID, draft string) (string, error)
	SuggestQuestions(ctx context.Context, sessionID, stage, situation string) (string, error)
	AnalyzeGap(ctx context.Context, sessionID string, input domain.GapInput) (string, error)
}

// ReplyFunc folds a gateway result into a displayable reply.
type ReplyFunc func(text string, err error) domain.AIReply

// Workspace is the state of one client: the active route plus every page.
// Leaving a route remounts its page, so that page starts over on return and
// any reply still in flight for it is dropped.
type Workspace struct {
	sessionID string
	catalog   domain.Catalog
	gateway   Gateway
	toReply   ReplyFunc

	mu        sync.Mutex
	nav       *Navigator
	quiz      *QuizEngine
	gap       *GapForm
	checklist *Checklist
	walker    *StageWalker
	deck      *TheoryDeck
	coach     *CoachPanel
	observer  func()
}

// WorkspaceView is a full snapshot sent to the client after every change.
type WorkspaceView struct {
	SessionID  string        `json:"sessionId"`
	Nav        NavView       `json:"nav"`
	Evaluate   QuizView      `json:"evaluate"`
	Analyze    GapView       `json:"analyze"`
	Planning   ChecklistView `json:"planning"`
	Discussion StageView     `json:"discussion"`
	Theory     TheoryView    `json:"theory"`
	Coach      CoachView     `json:"coach"`
}

func NewWorkspace(sessionID string, catalog domain.Catalog, gateway Gateway, toReply ReplyFunc) *Workspace {
	w := &Workspace{
		sessionID: sessionID,
		catalog:   catalog,
		gateway:   gateway,
		toReply:   toReply,
		nav:       NewNavigator(),
		coach:     NewCoachPanel(),
	}
	for _, r := range domain.Routes {
		w.mountLocked(r)
	}
	return w
}

func (w *Workspace) SessionID() string {
	return w.sessionID
}

// Observe registers fn to run once an AI request has begun, after the page
// entered its loading state and before the gateway is called.
func (w *Workspace) Observe(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observer = fn
}

func (w *Workspace) notify(fn func()) {
	if fn != nil {
		fn()
	}
}

func (w *Workspace) mountLocked(route domain.Route) {
	switch route {
	case domain.RouteEvaluate:
		w.quiz = NewQuizEngine(w.catalog.Quiz)
	case domain.RouteAnalyze:
		w.gap = NewGapForm()
	case domain.RoutePlanning:
		w.checklist = NewChecklist(w.catalog.Factors)
	case domain.RouteDiscussion:
		w.walker = NewStageWalker(w.catalog.Stages)
	case domain.RouteTheory:
		w.deck = NewTheoryDeck(w.catalog.Cards)
	}
}

func (w *Workspace) View() WorkspaceView {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

func (w *Workspace) viewLocked() WorkspaceView {
	return WorkspaceView{
		SessionID:  w.sessionID,
		Nav:        w.nav.View(),
		Evaluate:   w.quiz.View(),
		Analyze:    w.gap.View(),
		Planning:   w.checklist.View(),
		Discussion: w.walker.View(),
		Theory:     w.deck.View(),
		Coach:      w.coach.View(),
	}
}

// Navigate switches route and remounts the page that was left.
func (w *Workspace) Navigate(route domain.Route) domain.Route {
	w.mu.Lock()
	defer w.mu.Unlock()
	left, changed := w.nav.Navigate(route)
	if changed {
		w.mountLocked(left)
	}
	return w.nav.Current()
}

// HashChanged applies a fragment observed outside the app.
func (w *Workspace) HashChanged(fragment string) domain.Route {
	return w.Navigate(domain.ParseRoute(fragment))
}

func (w *Workspace) ToggleMenu() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nav.ToggleMenu()
}

func (w *Workspace) SubmitQuizAnswer(label domain.Label) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.quiz.SubmitAnswer(label)
}

func (w *Workspace) AdvanceQuiz() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.quiz.Advance()
}

func (w *Workspace) SetGapInput(input domain.GapInput) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gap.Set(input)
}

func (w *Workspace) UpdateGapField(field GapField, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gap.Update(field, value)
}

// AnalyzeGap sends the gap description to the gateway and blocks until the
// reply is stored (or dropped because the form was remounted meanwhile).
func (w *Workspace) AnalyzeGap(ctx context.Context) error {
	w.mu.Lock()
	form := w.gap
	input, err := form.Begin()
	observer := w.observer
	w.mu.Unlock()
	if err != nil {
		return err
	}
	w.notify(observer)

	reply := w.toReply(w.gateway.AnalyzeGap(ctx, w.sessionID, input))

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.gap == form {
		form.Complete(reply)
	}
	return nil
}

func (w *Workspace) ToggleFactor(key string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.checklist.Toggle(key)
}

func (w *Workspace) MissingFactors() []domain.AchieveFactor {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.checklist.Missing()
}

func (w *Workspace) SelectStage(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.walker.Select(id)
}

func (w *Workspace) AdvanceStage() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.walker.Advance()
}

func (w *Workspace) SetStageContext(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.walker.SetContext(text)
}

// SuggestQuestions asks the gateway for coaching questions for the active stage.
func (w *Workspace) SuggestQuestions(ctx context.Context) error {
	w.mu.Lock()
	walker := w.walker
	ticket, err := walker.BeginQuestions()
	observer := w.observer
	w.mu.Unlock()
	if err != nil {
		return err
	}
	w.notify(observer)

	reply := w.toReply(w.gateway.SuggestQuestions(ctx, w.sessionID, ticket.StageTitle, ticket.Context))

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.walker == walker {
		walker.CompleteQuestions(ticket, reply)
	}
	return nil
}

func (w *Workspace) AnswerCard(cardID, option int) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.deck.Answer(cardID, option)
}

func (w *Workspace) RetryCard(cardID int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.deck.Retry(cardID)
}

func (w *Workspace) ToggleCoach() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.coach.Toggle()
}

func (w *Workspace) SetCoachDraft(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.coach.SetDraft(text)
}

// RefineDraft sends the coach panel draft to the gateway.
func (w *Workspace) RefineDraft(ctx context.Context) error {
	w.mu.Lock()
	draft, err := w.coach.Begin()
	observer := w.observer
	w.mu.Unlock()
	if err != nil {
		return err
	}
	w.notify(observer)

	reply := w.toReply(w.gateway.RefineFeedback(ctx, w.sessionID, draft))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.coach.Complete(reply)
	return nil
}
