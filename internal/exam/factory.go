package exam

import "github.com/mind-engage/mindengage-quiz/internal/grading"

const multipleChoiceSuffix = " (A/B/C/D)"

// NewMultipleChoice builds a question whose text lists the choice letters
// and whose key is compared exactly.
func NewMultipleChoice(text, key string) *Question {
	return NewQuestion(text+multipleChoiceSuffix, key, grading.ExactMatch{})
}

// NewTrueFalse builds a question answered with "true" or "false" in any
// case or punctuation.
func NewTrueFalse(text, key string) *Question {
	return NewQuestion(text+" (true/false)", key, grading.Normalized{})
}
