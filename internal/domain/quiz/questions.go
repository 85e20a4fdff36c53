package quiz

// Option is one answer and the points it awards. Trades it does not name get 0.
type Option struct {
	Label  string         `json:"label"`
	Points map[string]int `json:"points"`
}

// Question is one quiz step.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"question"`
	Options []Option `json:"options"`
}

var questions = []Question{
	{
		ID:   0,
		Text: "Do you prefer working indoors or outdoors?",
		Options: []Option{
			{Label: "Mostly indoors, climate controlled", Points: map[string]int{HVAC: 2, Electrician: 2, Plumber: 1}},
			{Label: "Mix of both, doesn't matter much", Points: map[string]int{Carpenter: 1, Welder: 1, Mechanic: 1}},
			{Label: "Outdoors, I like being outside", Points: map[string]int{Carpenter: 2, Welder: 1}},
			{Label: "On the road, traveling", Points: map[string]int{CDL: 3}},
		},
	},
	{
		ID:   1,
		Text: "How comfortable are you with heights or tight spaces?",
		Options: []Option{
			{Label: "Heights are fine, tight spaces not so much", Points: map[string]int{Electrician: 2, Carpenter: 1}},
			{Label: "Tight spaces are okay, heights not really", Points: map[string]int{Plumber: 2, HVAC: 1}},
			{Label: "Both are fine", Points: map[string]int{Electrician: 1, HVAC: 1}},
			{Label: "Rather avoid both", Points: map[string]int{Mechanic: 2, CDL: 1, Welder: 1}},
		},
	},
	{
		ID:   2,
		Text: "Which type of work sounds most interesting?",
		Options: []Option{
			{Label: "Working with electricity and wiring", Points: map[string]int{Electrician: 3}},
			{Label: "Heating, cooling, and air systems", Points: map[string]int{HVAC: 3}},
			{Label: "Pipes, water systems, and fixtures", Points: map[string]int{Plumber: 3}},
			{Label: "Metal, fabrication, and welding", Points: map[string]int{Welder: 3}},
			{Label: "Building structures and woodwork", Points: map[string]int{Carpenter: 3}},
			{Label: "Engines, vehicles, and mechanics", Points: map[string]int{Mechanic: 3}},
			{Label: "Driving trucks or heavy equipment", Points: map[string]int{CDL: 3}},
		},
	},
	{
		ID:   3,
		Text: "What's your ideal schedule?",
		Options: []Option{
			{Label: "Steady 9-5, Monday to Friday", Points: map[string]int{Electrician: 1, Carpenter: 1}},
			{Label: "Flexible hours, some weekends okay", Points: map[string]int{HVAC: 2, Plumber: 2, Mechanic: 2}},
			{Label: "Long shifts but more days off", Points: map[string]int{Welder: 1, CDL: 2}},
			{Label: "Irregular, travel-heavy schedule", Points: map[string]int{CDL: 3}},
		},
	},
	{
		ID:   4,
		Text: "How do you feel about customer interaction?",
		Options: []Option{
			{Label: "Love it, I'm good with people", Points: map[string]int{HVAC: 2, Plumber: 2}},
			{Label: "Some is fine, but I prefer focusing on the work", Points: map[string]int{Electrician: 1, Mechanic: 1}},
			{Label: "Minimal interaction preferred", Points: map[string]int{Welder: 2, Carpenter: 1}},
			{Label: "Mostly solo, just me and the road/job", Points: map[string]int{CDL: 2, Welder: 1}},
		},
	},
	{
		ID:   5,
		Text: "How comfortable are you with math and measurements?",
		Options: []Option{
			{Label: "Very comfortable, I like precision", Points: map[string]int{Electrician: 2, Carpenter: 2}},
			{Label: "Pretty good, can handle it", Points: map[string]int{HVAC: 1, Plumber: 1, Mechanic: 1}},
			{Label: "Basic stuff is fine", Points: map[string]int{Welder: 1, CDL: 1}},
		},
	},
	{
		ID:   6,
		Text: "What's your approach to problem-solving?",
		Options: []Option{
			{Label: "I like diagnosing and troubleshooting technical issues", Points: map[string]int{Electrician: 2, HVAC: 2, Mechanic: 2}},
			{Label: "I prefer following proven processes", Points: map[string]int{Plumber: 1, Carpenter: 1}},
			{Label: "I'm creative and like figuring out custom solutions", Points: map[string]int{Welder: 2, Carpenter: 2}},
			{Label: "I keep things simple and efficient", Points: map[string]int{CDL: 2}},
		},
	},
	{
		ID:   7,
		Text: "How do you feel about working in extreme temperatures?",
		Options: []Option{
			{Label: "I can handle heat or cold", Points: map[string]int{HVAC: 2, Welder: 2, Carpenter: 1}},
			{Label: "Prefer climate-controlled environments", Points: map[string]int{Electrician: 1, Mechanic: 1}},
			{Label: "Heat is fine, cold not so much", Points: map[string]int{Welder: 1}},
			{Label: "Doesn't matter, I adapt", Points: map[string]int{CDL: 1, Plumber: 1}},
		},
	},
	{
		ID:   8,
		Text: "What's most important to you right now?",
		Options: []Option{
			{Label: "Making good money fast", Points: map[string]int{CDL: 2, Welder: 1}},
			{Label: "Learning a solid trade with growth potential", Points: map[string]int{Electrician: 2, HVAC: 2, Plumber: 2}},
			{Label: "Job security and steady work", Points: map[string]int{Mechanic: 2, Carpenter: 1}},
			{Label: "Freedom and flexibility", Points: map[string]int{CDL: 2}},
		},
	},
	{
		ID:   9,
		Text: "Do you see yourself eventually running your own business?",
		Options: []Option{
			{Label: "Yes, that's the goal", Points: map[string]int{Electrician: 2, HVAC: 2, Plumber: 2, Carpenter: 2}},
			{Label: "Maybe, I'm open to it", Points: map[string]int{Mechanic: 1, Welder: 1}},
			{Label: "Not really, I prefer working for a company", Points: map[string]int{CDL: 1}},
		},
	},
}

// Len is the number of questions.
func Len() int { return len(questions) }

// Questions returns a deep copy of the question table.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = copyQuestion(q)
	}
	return out
}

// QuestionAt returns question i, or false when i is out of range.
func QuestionAt(i int) (Question, bool) {
	if i < 0 || i >= len(questions) {
		return Question{}, false
	}
	return copyQuestion(questions[i]), true
}

func copyQuestion(q Question) Question {
	opts := make([]Option, len(q.Options))
	for i, o := range q.Options {
		pts := make(map[string]int, len(o.Points))
		for k, v := range o.Points {
			pts[k] = v
		}
		opts[i] = Option{Label: o.Label, Points: pts}
	}
	q.Options = opts
	return q
}
