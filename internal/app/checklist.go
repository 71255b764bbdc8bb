package app

import "feedback-coach/internal/domain"

// FactorState is the presence of one ACHIEVE factor.
type FactorState int

const (
	FactorPresent FactorState = iota
	FactorMissing
)

// Checklist tracks which root-cause factors the employee lacks.
// Every factor starts present; any combination of flags is valid.
type Checklist struct {
	factors []domain.AchieveFactor
	states  map[string]FactorState
}

type ChecklistItem struct {
	Factor  domain.AchieveFactor `json:"factor"`
	Present bool                 `json:"present"`
	Problem bool                 `json:"problem"`
}

type ChecklistView struct {
	Items   []ChecklistItem        `json:"items"`
	Actions []domain.AchieveFactor `json:"actions"`
}

func NewChecklist(factors []domain.AchieveFactor) *Checklist {
	states := make(map[string]FactorState, len(factors))
	for _, f := range factors {
		states[f.Key] = FactorPresent
	}
	return &Checklist{factors: factors, states: states}
}

// Toggle flips exactly one factor between present and missing.
func (c *Checklist) Toggle(key string) error {
	state, ok := c.states[key]
	if !ok {
		return domain.ErrUnknownFactor
	}
	if state == FactorPresent {
		c.states[key] = FactorMissing
	} else {
		c.states[key] = FactorPresent
	}
	return nil
}

func (c *Checklist) Present(key string) bool {
	return c.states[key] == FactorPresent
}

// Missing returns the factors flagged missing, in catalog order.
func (c *Checklist) Missing() []domain.AchieveFactor {
	missing := make([]domain.AchieveFactor, 0)
	for _, f := range c.factors {
		if c.states[f.Key] == FactorMissing {
			missing = append(missing, f)
		}
	}
	return missing
}

func (c *Checklist) View() ChecklistView {
	items := make([]ChecklistItem, 0, len(c.factors))
	for _, f := range c.factors {
		present := c.states[f.Key] == FactorPresent
		items = append(items, ChecklistItem{Factor: f, Present: present, Problem: !present})
	}
	return ChecklistView{Items: items, Actions: c.Missing()}
}
