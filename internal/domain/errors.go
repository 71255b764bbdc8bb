package domain

import "errors"

var (
	// ErrCatalogNotFound indicates the catalog content could not be loaded.
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrInvalidLabel is returned for a quiz answer that is neither observation nor inference.
	ErrInvalidLabel = errors.New("invalid answer label")
	// ErrAlreadyAnswered is returned when the current question already shows its explanation.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrNotAnswered is returned when advancing past a question that has no answer yet.
	ErrNotAnswered = errors.New("question not answered")
	// ErrQuizCompleted is returned for any quiz action after the summary is reached.
	ErrQuizCompleted = errors.New("quiz completed")

	ErrUnknownFactor = errors.New("unknown factor")
	ErrUnknownStage  = errors.New("unknown stage")
	ErrUnknownCard   = errors.New("unknown card")
	ErrUnknownField  = errors.New("unknown field")

	// ErrOptionOutOfRange is returned when a theory answer index is not one of the card's options.
	ErrOptionOutOfRange = errors.New("option out of range")
	// ErrCardAnswered is returned when a card that already holds an answer is answered again.
	ErrCardAnswered = errors.New("card already answered")
	// ErrRetryUnavailable is returned when retrying a card that is unanswered or answered correctly.
	ErrRetryUnavailable = errors.New("retry available only after an incorrect answer")

	// ErrGapIncomplete is returned when the standard or observed behavior is blank.
	ErrGapIncomplete = errors.New("standard and behavior are required")
	ErrEmptyContext  = errors.New("context is empty")
	ErrEmptyDraft    = errors.New("draft is empty")
	// ErrRequestInFlight blocks a second AI request from the same control.
	ErrRequestInFlight = errors.New("request already in flight")
)
