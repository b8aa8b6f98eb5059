package checkpoint_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mind-engage/mindengage-quiz/internal/checkpoint"
	"github.com/mind-engage/mindengage-quiz/internal/db"
	"github.com/mind-engage/mindengage-quiz/internal/session"
)

func newSQLStore(t *testing.T) checkpoint.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	h, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return checkpoint.NewSQLStore(h)
}

func stores(t *testing.T) map[string]checkpoint.Store {
	return map[string]checkpoint.Store{
		"memory": checkpoint.NewMemoryStore(),
		"sqlite": newSQLStore(t),
	}
}

func TestStoreJournal(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := session.New()
			s.AnswerQuestion("4")
			first, err := st.Put(ctx, "sess-1", "after q1", s.Save())
			if err != nil {
				t.Fatal(err)
			}
			s.AnswerQuestion("10")
			second, err := st.Put(ctx, "sess-1", "", s.Save())
			if err != nil {
				t.Fatal(err)
			}
			if _, err := st.Put(ctx, "sess-2", "", session.New().Save()); err != nil {
				t.Fatal(err)
			}

			if first.Seq != 1 || second.Seq != 2 {
				t.Fatalf("seq = %d, %d", first.Seq, second.Seq)
			}

			got, err := st.Get(ctx, first.ID)
			if err != nil {
				t.Fatal(err)
			}
			if got.Label != "after q1" || got.SessionID != "sess-1" {
				t.Fatalf("record = %+v", got)
			}
			if got.Snapshot.Position() != 1 || got.Snapshot.Answers()[0] != "4" {
				t.Fatalf("snapshot = %d %v", got.Snapshot.Position(), got.Snapshot.Answers())
			}

			list, err := st.List(ctx, "sess-1")
			if err != nil {
				t.Fatal(err)
			}
			if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
				t.Fatalf("list = %+v", list)
			}

			latest, err := st.Latest(ctx, "sess-1")
			if err != nil {
				t.Fatal(err)
			}
			if latest.ID != second.ID || latest.Snapshot.Position() != 2 {
				t.Fatalf("latest = %+v", latest)
			}

			// a loaded snapshot restores exactly what was saved
			s.AnswerQuestion("X")
			s.Restore(latest.Snapshot)
			if s.CurrentIndex() != 2 || s.Answer(1) != "10" || s.Answer(2) != session.NoAnswer {
				t.Fatalf("restored = %d %v", s.CurrentIndex(), s.Answers())
			}
		})
	}
}

func TestStoreNotFound(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, err := st.Get(ctx, "missing"); !errors.Is(err, checkpoint.ErrNotFound) {
				t.Fatalf("Get: err = %v", err)
			}
			if _, err := st.Latest(ctx, "nobody"); !errors.Is(err, checkpoint.ErrNotFound) {
				t.Fatalf("Latest: err = %v", err)
			}
			list, err := st.List(ctx, "nobody")
			if err != nil || len(list) != 0 {
				t.Fatalf("List = %v, %v", list, err)
			}
		})
	}
}
