package exam

import (
	"errors"
	"fmt"

	"github.com/mind-engage/mindengage-quiz/internal/grading"
)

var ErrUnknownStrategy = errors.New("unknown grading strategy")

// Builder assembles an exam tree from a flat sequence of calls.
//
// AddSection appends to the current scope but never enters the new
// section, so every section and question lands directly under the root.
type Builder struct {
	root       *Section
	scope      Component
	strategies *grading.Registry
	err        error
}

func NewBuilder(title string) *Builder {
	root := NewSection(title)
	return &Builder{root: root, scope: root}
}

// WithStrategies makes AddQuestionWith resolve names in r instead of the
// built-in registry.
func (b *Builder) WithStrategies(r *grading.Registry) *Builder {
	b.strategies = r
	return b
}

// AddSection appends an empty section to the current scope.
func (b *Builder) AddSection(name string) *Builder {
	b.add(NewSection(name))
	return b
}

// AddQuestion appends a multiple-choice question to the current scope.
func (b *Builder) AddQuestion(text, key string) *Builder {
	b.add(NewMultipleChoice(text, key))
	return b
}

// AddTrueFalse appends a true/false question to the current scope.
func (b *Builder) AddTrueFalse(text, key string) *Builder {
	b.add(NewTrueFalse(text, key))
	return b
}

// AddQuestionWith appends a free-answer question graded by the named
// strategy. An unknown name is reported by Err and nothing is added.
func (b *Builder) AddQuestionWith(text, key, strategy string) *Builder {
	lookup := grading.Lookup
	if b.strategies != nil {
		lookup = b.strategies.Lookup
	}
	s, ok := lookup(strategy)
	if !ok {
		if b.err == nil {
			b.err = fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
		}
		return b
	}
	b.add(NewQuestion(text, key, s))
	return b
}

// Build returns the root section. It can be called repeatedly and does not
// reset the builder.
func (b *Builder) Build() *Section { return b.root }

// Err returns the first error raised while adding to the scope.
func (b *Builder) Err() error { return b.err }

func (b *Builder) add(c Component) {
	if b.err != nil {
		return
	}
	b.err = b.scope.Add(c)
}
