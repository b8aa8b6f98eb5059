package session

import (
	"encoding/json"
	"errors"
	"slices"
)

// Snapshot is an immutable copy of a session's progress. It shares no
// memory with the session that produced it or any session restored from it.
type Snapshot struct {
	position int
	answers  []string
}

// NewSnapshot builds a snapshot from raw fields, e.g. when loading one
// back from a checkpoint journal.
func NewSnapshot(position int, answers []string) (Snapshot, error) {
	if position < 0 {
		return Snapshot{}, errors.New("negative position")
	}
	return Snapshot{position: position, answers: slices.Clone(answers)}, nil
}

func (s Snapshot) Position() int { return s.position }

// Answers returns a copy of the captured answers.
func (s Snapshot) Answers() []string { return slices.Clone(s.answers) }

type snapshotJSON struct {
	Position int      `json:"position"`
	Answers  []string `json:"answers"`
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	answers := s.answers
	if answers == nil {
		answers = []string{}
	}
	return json.Marshal(snapshotJSON{Position: s.position, Answers: answers})
}

func (s *Snapshot) UnmarshalJSON(b []byte) error {
	var v snapshotJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	snap, err := NewSnapshot(v.Position, v.Answers)
	if err != nil {
		return err
	}
	*s = snap
	return nil
}
