package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mind-engage/mindengage-quiz/internal/exam"
	"github.com/mind-engage/mindengage-quiz/internal/session"
	"github.com/mind-engage/mindengage-quiz/internal/timer"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer) error {
	fmt.Fprintf(w, "Remaining time: %ds\n", timer.Default().RemainingSeconds())

	b := exam.NewBuilder("Prova Final").
		AddSection("Logica").
		AddQuestion("Quanto e 2+2?", "4").
		AddQuestion("Quanto e 3*3?", "9").
		AddSection("Orientacao a Objetos").
		AddQuestion("O que e polimorfismo?", "Muitas formas")
	if err := b.Err(); err != nil {
		return err
	}
	root := b.Build()
	if err := root.Display(w, 0); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nTop-level items:")
	it, err := root.Iterator()
	if err != nil {
		return err
	}
	for it.HasNext() {
		c, err := it.Next()
		if err != nil {
			return err
		}
		if err := c.Display(w, 0); err != nil {
			return err
		}
	}

	s := session.New()
	s.AnswerQuestion("4")
	s.AnswerQuestion("10")

	fmt.Fprintln(w, "\n[saving checkpoint]")
	checkpoint := s.Save()

	fmt.Fprintln(w, "[restoring checkpoint]")
	s.Restore(checkpoint)
	fmt.Fprintf(w, "Restored to index: %d\n", s.CurrentIndex())

	fmt.Fprintln(w, "Recorded answers:")
	for i := 0; i < s.CurrentIndex(); i++ {
		fmt.Fprintln(w, s.Answer(i))
	}
	return nil
}
