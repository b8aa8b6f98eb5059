package exam

import "errors"

// ErrIteratorExhausted is returned by Next once every child has been visited.
var ErrIteratorExhausted = errors.New("iterator exhausted")

// Iterator is a single-pass, forward-only cursor over a section's direct
// children. The section must not be mutated while an iterator is in use.
type Iterator struct {
	items []Component
	pos   int
}

func (it *Iterator) HasNext() bool { return it.pos < len(it.items) }

func (it *Iterator) Next() (Component, error) {
	if !it.HasNext() {
		return nil, ErrIteratorExhausted
	}
	c := it.items[it.pos]
	it.pos++
	return c, nil
}
