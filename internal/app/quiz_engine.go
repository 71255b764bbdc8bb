package app

import "feedback-coach/internal/domain"

// QuizEngine walks the fact-vs-opinion questions one at a time.
// It is not safe for concurrent use; Workspace serializes access.
type QuizEngine struct {
	questions       []domain.QuizQuestion
	active          int
	score           int
	selected        domain.Label
	showExplanation bool
	completed       bool
}

// QuizView is the render-ready state of the evaluate page.
type QuizView struct {
	Index           int                  `json:"index"`
	Total           int                  `json:"total"`
	Score           int                  `json:"score"`
	Question        *domain.QuizQuestion `json:"question,omitempty"`
	Selected        domain.Label         `json:"selected,omitempty"`
	Correct         *bool                `json:"correct,omitempty"`
	ShowExplanation bool                 `json:"showExplanation"`
	Completed       bool                 `json:"completed"`
}

func NewQuizEngine(questions []domain.QuizQuestion) *QuizEngine {
	return &QuizEngine{
		questions: questions,
		completed: len(questions) == 0,
	}
}

// Current returns the active question; false once the quiz is completed.
func (q *QuizEngine) Current() (domain.QuizQuestion, bool) {
	if q.completed {
		return domain.QuizQuestion{}, false
	}
	return q.questions[q.active], true
}

// SubmitAnswer classifies the active statement and reveals its explanation.
// The score only moves on a match, and only once per question.
func (q *QuizEngine) SubmitAnswer(label domain.Label) (bool, error) {
	if !label.Valid() {
		return false, domain.ErrInvalidLabel
	}
	if q.completed {
		return false, domain.ErrQuizCompleted
	}
	if q.showExplanation {
		return false, domain.ErrAlreadyAnswered
	}

	q.selected = label
	q.showExplanation = true
	correct := label == q.questions[q.active].Label
	if correct {
		q.score++
	}
	return correct, nil
}

// Advance moves to the next question or, at the last one, into the completed state.
func (q *QuizEngine) Advance() error {
	if q.completed {
		return domain.ErrQuizCompleted
	}
	if !q.showExplanation {
		return domain.ErrNotAnswered
	}
	if q.active < len(q.questions)-1 {
		q.active++
		q.selected = ""
		q.showExplanation = false
		return nil
	}
	q.completed = true
	return nil
}

func (q *QuizEngine) Score() int      { return q.score }
func (q *QuizEngine) Total() int      { return len(q.questions) }
func (q *QuizEngine) Completed() bool { return q.completed }

func (q *QuizEngine) View() QuizView {
	view := QuizView{
		Index:           q.active,
		Total:           len(q.questions),
		Score:           q.score,
		Selected:        q.selected,
		ShowExplanation: q.showExplanation,
		Completed:       q.completed,
	}
	if current, ok := q.Current(); ok {
		view.Question = &current
		if q.showExplanation {
			correct := q.selected == current.Label
			view.Correct = &correct
		}
	}
	return view
}
