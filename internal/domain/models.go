package domain

// Label is the ground-truth classification of a quiz statement.
type Label string

const (
	LabelObservation Label = "Observation"
	LabelInference   Label = "Inference"
)

// Valid reports whether l is one of the two known labels.
func (l Label) Valid() bool {
	return l == LabelObservation || l == LabelInference
}

// QuizQuestion is one fact-vs-opinion test item.
type QuizQuestion struct {
	ID          int    `json:"id"`
	Statement   string `json:"statement"`
	Label       Label  `json:"type"`
	Explanation string `json:"explanation"`
}

// AchieveFactor is one precondition an employee needs to perform well.
type AchieveFactor struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Question string `json:"question"`
	Solution string `json:"solution"`
}

// GrowStep is one stage of a GROW coaching conversation.
type GrowStep struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Questions   []string `json:"questions"`
}

// TheoryCard is a flashcard with a single embedded comprehension question.
type TheoryCard struct {
	ID           int      `json:"id"`
	Category     string   `json:"category"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// Catalog bundles the static content that drives every page.
type Catalog struct {
	ID      string          `json:"id"`
	Quiz    []QuizQuestion  `json:"quiz"`
	Factors []AchieveFactor `json:"factors"`
	Stages  []GrowStep      `json:"stages"`
	Cards   []TheoryCard    `json:"cards"`
}

// GapInput is the structured gap description collected on the analysis page.
type GapInput struct {
	Subject      string `json:"subject"`
	Task         string `json:"task"`
	Standard     string `json:"standard"`
	Behavior     string `json:"behavior"`
	Consequences string `json:"consequences"`
}

// AIFailure describes why the AI gateway produced no content.
type AIFailure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// AIReply is either generated text or a typed failure, never both.
type AIReply struct {
	Text  string     `json:"text,omitempty"`
	Error *AIFailure `json:"error,omitempty"`
}

// OK reports whether the reply carries generated content.
func (r AIReply) OK() bool {
	return r.Error == nil
}
