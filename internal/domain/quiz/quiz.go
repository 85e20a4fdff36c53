// Package quiz scores the trade-fit quiz and ranks its results.
package quiz

import (
	"errors"

	"github.com/okian/tradecalc/internal/domain/handoff"
)

// Trade keys, in ranking tie-break order.
const (
	HVAC        = "hvac"
	Electrician = "electrician"
	Plumber     = "plumber"
	Welder      = "welder"
	Carpenter   = "carpenter"
	CDL         = "cdl"
	Mechanic    = "mechanic"
)

var keys = []string{HVAC, Electrician, Plumber, Welder, Carpenter, CDL, Mechanic}

// Keys returns the trade keys in their fixed order.
func Keys() []string {
	return append([]string(nil), keys...)
}

// Session errors.
var (
	ErrNoSelection     = errors.New("no option selected for the current question")
	ErrAtFirstQuestion = errors.New("already at the first question")
	ErrSubmitted       = errors.New("quiz already submitted")
	ErrInvalidOption   = errors.New("option index out of range")
)

// Answers maps a question index to the selected option index.
type Answers map[int]int

// Scores maps every trade key to its accumulated points.
type Scores map[string]int

// Score sums the points of every selected option. Every trade key is present;
// answers pointing outside the question table are ignored.
func Score(a Answers) Scores {
	s := make(Scores, len(keys))
	for _, k := range keys {
		s[k] = 0
	}
	for qi, oi := range a {
		if qi < 0 || qi >= len(questions) {
			continue
		}
		opts := questions[qi].Options
		if oi < 0 || oi >= len(opts) {
			continue
		}
		for k, pts := range opts[oi].Points {
			s[k] += pts
		}
	}
	return s
}

// Session walks one user through the questions. It is not safe for
// concurrent use.
type Session struct {
	current   int
	answers   Answers
	submitted bool
}

// NewSession starts at the first question with nothing selected.
func NewSession() *Session {
	return &Session{answers: Answers{}}
}

// Select records option for the current question, replacing any earlier choice.
func (s *Session) Select(option int) error {
	if s.submitted {
		return ErrSubmitted
	}
	if option < 0 || option >= len(questions[s.current].Options) {
		return ErrInvalidOption
	}
	s.answers[s.current] = option
	return nil
}

// Next advances to the following question. On the last question it submits
// the quiz and returns the results message; otherwise the message is nil.
func (s *Session) Next() (*handoff.QuizResults, error) {
	if s.submitted {
		return nil, ErrSubmitted
	}
	if _, ok := s.answers[s.current]; !ok {
		return nil, ErrNoSelection
	}
	if s.current == len(questions)-1 {
		s.submitted = true
		return handoff.NewQuizResults(Score(s.answers)), nil
	}
	s.current++
	return nil, nil
}

// Previous steps back one question. Selections are kept.
func (s *Session) Previous() error {
	if s.submitted {
		return ErrSubmitted
	}
	if s.current == 0 {
		return ErrAtFirstQuestion
	}
	s.current--
	return nil
}

// Current is the index of the question being shown.
func (s *Session) Current() int { return s.current }

// Question is the question being shown.
func (s *Session) Question() Question {
	q, _ := QuestionAt(s.current)
	return q
}

// Selected returns the option chosen for the current question, if any.
func (s *Session) Selected() (int, bool) {
	o, ok := s.answers[s.current]
	return o, ok
}

// Answers returns a copy of all selections so far.
func (s *Session) Answers() Answers {
	cp := make(Answers, len(s.answers))
	for k, v := range s.answers {
		cp[k] = v
	}
	return cp
}

// Scores is the running total for the current selections.
func (s *Session) Scores() Scores { return Score(s.answers) }

// Progress is the percentage shown for the current question, counting it as reached.
func (s *Session) Progress() float64 {
	return float64(s.current+1) / float64(len(questions)) * 100
}

// Submitted reports whether the last question has been passed.
func (s *Session) Submitted() bool { return s.submitted }

// Snapshot is a read-only view of a session.
type Snapshot struct {
	Current   int      `json:"current"`
	Total     int      `json:"total"`
	Question  Question `json:"question"`
	Selected  *int     `json:"selected"`
	Progress  float64  `json:"progress"`
	Submitted bool     `json:"submitted"`
	Answered  int      `json:"answered"`
}

// Snapshot captures the session state for display.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Current:   s.current,
		Total:     len(questions),
		Question:  s.Question(),
		Progress:  s.Progress(),
		Submitted: s.submitted,
		Answered:  len(s.answers),
	}
	if o, ok := s.answers[s.current]; ok {
		snap.Selected = &o
	}
	return snap
}
