package exam

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mind-engage/mindengage-quiz/internal/grading"
)

// ErrUnsupportedOperation is returned when a structural operation is
// invoked on a leaf.
var ErrUnsupportedOperation = errors.New("unsupported operation on question")

var errNilComponent = errors.New("nil component")

// Component is a node of an exam tree: either *Question or *Section.
// The set of implementations is closed.
type Component interface {
	// Display writes the node and everything below it, indented two
	// spaces per depth level.
	Display(w io.Writer, depth int) error
	// Add appends a child. Questions return ErrUnsupportedOperation.
	Add(c Component) error
	// Iterator returns a fresh cursor over direct children.
	// Questions return ErrUnsupportedOperation.
	Iterator() (*Iterator, error)

	component()
}

// Question is a leaf. It is immutable after construction.
type Question struct {
	text   string
	key    string
	grader grading.Strategy
}

// NewQuestion binds text, answer key and grading strategy.
// A nil grader falls back to exact matching.
func NewQuestion(text, key string, grader grading.Strategy) *Question {
	if grader == nil {
		grader = grading.ExactMatch{}
	}
	return &Question{text: text, key: key, grader: grader}
}

func (q *Question) Text() string { return q.text }
func (q *Question) Key() string  { return q.key }

// CheckAnswer grades candidate against the stored key.
func (q *Question) CheckAnswer(candidate string) bool {
	return q.grader.Grade(candidate, q.key)
}

func (q *Question) Display(w io.Writer, depth int) error {
	_, err := fmt.Fprintf(w, "%sQuestion: %s\n", indent(depth), q.text)
	return err
}

func (q *Question) Add(Component) error { return ErrUnsupportedOperation }

func (q *Question) Iterator() (*Iterator, error) { return nil, ErrUnsupportedOperation }

func (*Question) component() {}

// Section groups questions and nested sections. Children keep insertion order.
type Section struct {
	title    string
	children []Component
}

func NewSection(title string) *Section {
	return &Section{title: title}
}

func (s *Section) Title() string { return s.title }

// Len reports the number of direct children.
func (s *Section) Len() int { return len(s.children) }

func (s *Section) Add(c Component) error {
	switch n := c.(type) {
	case *Question:
		if n == nil {
			return errNilComponent
		}
	case *Section:
		if n == nil {
			return errNilComponent
		}
	default:
		return errNilComponent
	}
	s.children = append(s.children, c)
	return nil
}

func (s *Section) Display(w io.Writer, depth int) error {
	if _, err := fmt.Fprintf(w, "%s--- SECTION: %s ---\n", indent(depth), s.title); err != nil {
		return err
	}
	for _, c := range s.children {
		if err := c.Display(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (s *Section) Iterator() (*Iterator, error) {
	return &Iterator{items: s.children}, nil
}

func (*Section) component() {}

func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("  ", depth)
}
