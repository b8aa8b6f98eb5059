package session

import "slices"

// NoAnswer is returned by Answer for positions with nothing recorded.
const NoAnswer = "(no answer)"

// Session records progress through an exam: the index of the next
// question and the answers given so far. A Session is owned by a single
// caller and is not safe for concurrent use.
type Session struct {
	position int
	answers  []string
}

func New() *Session { return &Session{} }

// AnswerQuestion records answer at the current position and advances.
// Past the recorded end the answer is appended; otherwise it overwrites
// the existing entry without shifting later ones.
func (s *Session) AnswerQuestion(answer string) {
	if s.position >= len(s.answers) {
		s.answers = append(s.answers, answer)
	} else {
		s.answers[s.position] = answer
	}
	s.position++
}

// Answer returns the answer stored at index, or NoAnswer.
func (s *Session) Answer(index int) string {
	if index >= 0 && index < len(s.answers) {
		return s.answers[index]
	}
	return NoAnswer
}

func (s *Session) CurrentIndex() int { return s.position }

// Answers returns a copy of the recorded answers.
func (s *Session) Answers() []string { return slices.Clone(s.answers) }

// Save captures the current progress.
func (s *Session) Save() Snapshot {
	return Snapshot{position: s.position, answers: slices.Clone(s.answers)}
}

// Restore replaces position and answers with copies of snap's.
func (s *Session) Restore(snap Snapshot) {
	s.position = snap.position
	s.answers = slices.Clone(snap.answers)
}
