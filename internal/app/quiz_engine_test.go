package app

import (
	"errors"
	"testing"

	"feedback-coach/internal/domain"
)

func fourQuestions() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{ID: 1, Statement: "came at 9:15", Label: domain.LabelObservation},
		{ID: 2, Statement: "does not care", Label: domain.LabelInference},
		{ID: 3, Statement: "three empty tables", Label: domain.LabelObservation},
		{ID: 4, Statement: "lazy", Label: domain.LabelInference},
	}
}

func TestQuizOneCorrectOfFour(t *testing.T) {
	quiz := NewQuizEngine(fourQuestions())

	answers := []domain.Label{
		domain.LabelObservation, // correct
		domain.LabelObservation,
		domain.LabelInference,
		domain.LabelObservation,
	}
	for i, label := range answers {
		correct, err := quiz.SubmitAnswer(label)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if correct != (i == 0) {
			t.Fatalf("answer %d: unexpected correctness %v", i, correct)
		}
		if err := quiz.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	if !quiz.Completed() {
		t.Fatalf("expected quiz completed")
	}
	view := quiz.View()
	if view.Score != 1 || view.Total != 4 {
		t.Fatalf("expected 1 of 4, got %d of %d", view.Score, view.Total)
	}
	if view.Question != nil {
		t.Fatalf("expected no active question after completion")
	}
}

func TestQuizReanswerDoesNotChangeScore(t *testing.T) {
	quiz := NewQuizEngine(fourQuestions())

	if _, err := quiz.SubmitAnswer(domain.LabelObservation); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := quiz.SubmitAnswer(domain.LabelObservation); !errors.Is(err, domain.ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}
	if quiz.Score() != 1 {
		t.Fatalf("expected score 1, got %d", quiz.Score())
	}
	if quiz.View().Selected != domain.LabelObservation {
		t.Fatalf("expected original selection kept")
	}
}

func TestQuizAdvanceRequiresAnswer(t *testing.T) {
	quiz := NewQuizEngine(fourQuestions())
	if err := quiz.Advance(); !errors.Is(err, domain.ErrNotAnswered) {
		t.Fatalf("expected ErrNotAnswered, got %v", err)
	}
}

func TestQuizAdvanceClearsSelection(t *testing.T) {
	quiz := NewQuizEngine(fourQuestions())
	_, _ = quiz.SubmitAnswer(domain.LabelInference)
	if err := quiz.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	view := quiz.View()
	if view.Index != 1 || view.ShowExplanation || view.Selected != "" || view.Correct != nil {
		t.Fatalf("expected fresh second question, got %+v", view)
	}
}

func TestQuizRejectsActionsAfterCompletion(t *testing.T) {
	quiz := NewQuizEngine(fourQuestions()[:1])
	_, _ = quiz.SubmitAnswer(domain.LabelObservation)
	_ = quiz.Advance()

	if _, err := quiz.SubmitAnswer(domain.LabelObservation); !errors.Is(err, domain.ErrQuizCompleted) {
		t.Fatalf("expected ErrQuizCompleted, got %v", err)
	}
	if err := quiz.Advance(); !errors.Is(err, domain.ErrQuizCompleted) {
		t.Fatalf("expected ErrQuizCompleted, got %v", err)
	}
	if quiz.Score() > quiz.Total() {
		t.Fatalf("score %d exceeds total %d", quiz.Score(), quiz.Total())
	}
}

func TestQuizInvalidLabel(t *testing.T) {
	quiz := NewQuizEngine(fourQuestions())
	if _, err := quiz.SubmitAnswer("Opinion"); !errors.Is(err, domain.ErrInvalidLabel) {
		t.Fatalf("expected ErrInvalidLabel, got %v", err)
	}
	if quiz.View().ShowExplanation {
		t.Fatalf("invalid label must not reveal the explanation")
	}
}

func TestQuizEmptyCatalogStartsCompleted(t *testing.T) {
	quiz := NewQuizEngine(nil)
	if !quiz.Completed() || quiz.Score() != 0 {
		t.Fatalf("expected completed empty quiz, got %+v", quiz.View())
	}
}
