package session

// Checker is anything that can grade a candidate answer, typically an
// *exam.Question.
type Checker interface {
	CheckAnswer(candidate string) bool
}

// Result is the outcome of grading a session against an ordered list of questions.
type Result struct {
	Correct  int    `json:"correct"`
	Answered int    `json:"answered"`
	Total    int    `json:"total"`
	Marks    []bool `json:"marks"`
}

// Score grades answers[i] against questions[i]. Unanswered questions count as wrong.
func Score[C Checker](questions []C, s *Session) Result {
	res := Result{Total: len(questions), Marks: make([]bool, len(questions))}
	for i, q := range questions {
		if i >= len(s.answers) {
			continue
		}
		res.Answered++
		if q.CheckAnswer(s.answers[i]) {
			res.Correct++
			res.Marks[i] = true
		}
	}
	return res
}
