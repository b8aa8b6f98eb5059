package http

import (
	"bytes"
	"net/http"

	"github.com/mind-engage/mindengage-quiz/internal/exam"
	"github.com/mind-engage/mindengage-quiz/internal/timer"
)

// GET /exam
func DisplayExamHandler(root *exam.Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := root.Display(&buf, 0); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	}
}

type componentSummary struct {
	Kind     string `json:"kind"` // section|question
	Title    string `json:"title,omitempty"`
	Text     string `json:"text,omitempty"`
	Children int    `json:"children,omitempty"`
}

// GET /exam/sections lists the top-level children of the exam.
func ListTopLevelHandler(root *exam.Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := root.Iterator()
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		out := []componentSummary{}
		for it.HasNext() {
			c, err := it.Next()
			if err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
			switch n := c.(type) {
			case *exam.Section:
				out = append(out, componentSummary{Kind: "section", Title: n.Title(), Children: n.Len()})
			case *exam.Question:
				out = append(out, componentSummary{Kind: "question", Text: n.Text()})
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /timer
func TimerHandler(t *timer.Timer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"remaining_seconds": t.RemainingSeconds()})
	}
}
