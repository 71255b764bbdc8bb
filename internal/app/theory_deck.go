package app

import "feedback-coach/internal/domain"

// CardState is the answer state of one theory card.
type CardState string

const (
	CardUnanswered CardState = "unanswered"
	CardCorrect    CardState = "correct"
	CardIncorrect  CardState = "incorrect"
)

// TheoryDeck tracks the comprehension check of each flashcard independently.
type TheoryDeck struct {
	cards   []domain.TheoryCard
	answers map[int]int
}

type CardView struct {
	Card     domain.TheoryCard `json:"card"`
	State    CardState         `json:"state"`
	Selected *int              `json:"selected,omitempty"`
	CanRetry bool              `json:"canRetry"`
}

type TheoryView struct {
	Cards []CardView `json:"cards"`
}

func NewTheoryDeck(cards []domain.TheoryCard) *TheoryDeck {
	return &TheoryDeck{cards: cards, answers: make(map[int]int)}
}

func (d *TheoryDeck) card(id int) (domain.TheoryCard, bool) {
	for _, c := range d.cards {
		if c.ID == id {
			return c, true
		}
	}
	return domain.TheoryCard{}, false
}

// Answer records option for cardID and reports whether it is correct.
func (d *TheoryDeck) Answer(cardID, option int) (bool, error) {
	card, ok := d.card(cardID)
	if !ok {
		return false, domain.ErrUnknownCard
	}
	if option < 0 || option >= len(card.Options) {
		return false, domain.ErrOptionOutOfRange
	}
	if _, answered := d.answers[cardID]; answered {
		return false, domain.ErrCardAnswered
	}
	d.answers[cardID] = option
	return option == card.CorrectIndex, nil
}

// Retry resets an incorrectly answered card. Correct answers stay.
func (d *TheoryDeck) Retry(cardID int) error {
	if _, ok := d.card(cardID); !ok {
		return domain.ErrUnknownCard
	}
	if d.State(cardID) != CardIncorrect {
		return domain.ErrRetryUnavailable
	}
	delete(d.answers, cardID)
	return nil
}

func (d *TheoryDeck) State(cardID int) CardState {
	card, ok := d.card(cardID)
	if !ok {
		return CardUnanswered
	}
	option, answered := d.answers[cardID]
	switch {
	case !answered:
		return CardUnanswered
	case option == card.CorrectIndex:
		return CardCorrect
	default:
		return CardIncorrect
	}
}

func (d *TheoryDeck) View() TheoryView {
	cards := make([]CardView, 0, len(d.cards))
	for _, c := range d.cards {
		view := CardView{Card: c, State: d.State(c.ID)}
		if option, ok := d.answers[c.ID]; ok {
			view.Selected = &option
		}
		view.CanRetry = view.State == CardIncorrect
		cards = append(cards, view)
	}
	return TheoryView{Cards: cards}
}
