package domain

// Difficulty is the user's self-assessed difficulty of a question.
// The empty value means "not rated yet" and is a valid stored state.
type Difficulty string

const (
	DifficultyUnset  Difficulty = ""
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyUnset, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is a catalog entry: a LeetCode-style problem identified by its
// global number. Catalog questions are immutable within a server run.
type Question struct {
	Number  int
	Problem string
}

// QuestionState is the per-question mutable progress record. A question
// with no stored state has the zero state: not done, unrated, no tags.
type QuestionState struct {
	Number     int
	Done       bool
	Difficulty Difficulty
	Tags       []string
}

// ZeroState returns the default state for a question that has never been
// written. Absence of a row is a valid state, never an error.
func ZeroState(number int) QuestionState {
	return QuestionState{Number: number, Difficulty: DifficultyUnset, Tags: []string{}}
}

// QuestionStateUpdate holds a partial update of a question's state.
// Nil fields are left unchanged.
type QuestionStateUpdate struct {
	Done       *bool
	Difficulty *Difficulty
}

// QuestionRecord is a catalog question joined with its current state,
// as returned by every read and write operation.
type QuestionRecord struct {
	Number     int
	Problem    string
	Done       bool
	Difficulty Difficulty
	Tags       []string
}
