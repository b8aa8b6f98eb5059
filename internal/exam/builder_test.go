package exam_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mind-engage/mindengage-quiz/internal/exam"
	"github.com/mind-engage/mindengage-quiz/internal/grading"
)

func TestBuilderFlatComposition(t *testing.T) {
	b := exam.NewBuilder("Prova Final")
	root := b.
		AddSection("Logica").
		AddQuestion("Quanto e 2+2?", "4").
		AddQuestion("Quanto e 3*3?", "9").
		AddSection("Orientacao a Objetos").
		AddQuestion("O que e polimorfismo?", "Muitas formas").
		Build()
	if err := b.Err(); err != nil {
		t.Fatal(err)
	}

	if root.Title() != "Prova Final" {
		t.Fatalf("title = %q", root.Title())
	}
	if root.Len() != 5 {
		t.Fatalf("direct children = %d, want 5", root.Len())
	}

	it, _ := root.Iterator()
	var kinds []string
	for it.HasNext() {
		c, _ := it.Next()
		switch n := c.(type) {
		case *exam.Section:
			if n.Len() != 0 {
				t.Fatalf("section %q should stay empty, has %d children", n.Title(), n.Len())
			}
			kinds = append(kinds, "S:"+n.Title())
		case *exam.Question:
			kinds = append(kinds, "Q:"+n.Text())
		}
	}
	want := []string{
		"S:Logica",
		"Q:Quanto e 2+2? (A/B/C/D)",
		"Q:Quanto e 3*3? (A/B/C/D)",
		"S:Orientacao a Objetos",
		"Q:O que e polimorfismo? (A/B/C/D)",
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("child %d = %q, want %q", i, kinds[i], want[i])
		}
	}
}

func TestBuilderBuildRepeatable(t *testing.T) {
	b := exam.NewBuilder("t").AddQuestion("q1", "a")
	first := b.Build()
	second := b.AddQuestion("q2", "b").Build()
	if first != second {
		t.Fatal("Build should return the same root")
	}
	if second.Len() != 2 {
		t.Fatalf("len = %d, want 2", second.Len())
	}
}

func TestBuilderDisplay(t *testing.T) {
	root := exam.NewBuilder("P").AddSection("S").AddQuestion("q", "k").Build()
	var buf bytes.Buffer
	if err := root.Display(&buf, 0); err != nil {
		t.Fatal(err)
	}
	want := "--- SECTION: P ---\n  --- SECTION: S ---\n  Question: q (A/B/C/D)\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWalkAndQuestions(t *testing.T) {
	inner := exam.NewSection("inner")
	_ = inner.Add(exam.NewQuestion("q2", "2", nil))
	root := exam.NewSection("root")
	_ = root.Add(exam.NewQuestion("q1", "1", nil))
	_ = root.Add(inner)
	_ = root.Add(exam.NewQuestion("q3", "3", nil))

	qs := exam.Questions(root)
	if len(qs) != 3 {
		t.Fatalf("questions = %d, want 3", len(qs))
	}
	for i, want := range []string{"q1", "q2", "q3"} {
		if qs[i].Text() != want {
			t.Fatalf("question %d = %q, want %q", i, qs[i].Text(), want)
		}
	}

	var depths []int
	exam.Walk(root, 0, func(_ exam.Component, d int) bool {
		depths = append(depths, d)
		return true
	})
	if len(depths) != 5 || depths[2] != 1 || depths[3] != 2 {
		t.Fatalf("depths = %v", depths)
	}

	visited := 0
	exam.Walk(root, 0, func(exam.Component, int) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Fatalf("walk did not stop early: visited %d", visited)
	}
}

func TestBuilderNamedStrategies(t *testing.T) {
	b := exam.NewBuilder("P").
		AddQuestionWith("Valor de pi com duas casas?", "3.14159;tol=0.01", "numeric").
		AddQuestionWith("O que e polimorfismo?", "Muitas formas", "fuzzy").
		AddTrueFalse("Go tem generics?", "true")
	if err := b.Err(); err != nil {
		t.Fatal(err)
	}
	qs := exam.Questions(b.Build())
	if len(qs) != 3 {
		t.Fatalf("questions = %d, want 3", len(qs))
	}
	if qs[0].Text() != "Valor de pi com duas casas?" {
		t.Fatalf("free-answer text changed: %q", qs[0].Text())
	}
	checks := []struct {
		q      *exam.Question
		answer string
		want   bool
	}{
		{qs[0], "3.14", true},
		{qs[0], "3.2", false},
		{qs[1], "muitas forma", true},
		{qs[1], "poucas formas", false},
		{qs[2], "True", true},
		{qs[2], "false", false},
	}
	for _, c := range checks {
		if got := c.q.CheckAnswer(c.answer); got != c.want {
			t.Errorf("%q.CheckAnswer(%q) = %v, want %v", c.q.Text(), c.answer, got, c.want)
		}
	}
}

func TestBuilderCustomRegistry(t *testing.T) {
	root := exam.NewBuilder("P").
		WithStrategies(grading.NewRegistry(grading.WithMaxEditDistance(3))).
		AddQuestionWith("q", "abc", "fuzzy").
		Build()
	if !exam.Questions(root)[0].CheckAnswer("abcxyz") {
		t.Fatal("registry options not used")
	}
}

func TestBuilderUnknownStrategy(t *testing.T) {
	b := exam.NewBuilder("P").
		AddQuestionWith("q", "k", "telepathy").
		AddQuestion("later", "x")
	if !errors.Is(b.Err(), exam.ErrUnknownStrategy) {
		t.Fatalf("err = %v, want ErrUnknownStrategy", b.Err())
	}
	if b.Build().Len() != 0 {
		t.Fatalf("nothing should be added after an error, got %d", b.Build().Len())
	}
}
