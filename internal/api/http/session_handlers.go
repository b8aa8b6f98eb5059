package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	auth "github.com/mind-engage/mindengage-quiz/internal/auth/middleware"
	"github.com/mind-engage/mindengage-quiz/internal/checkpoint"
	"github.com/mind-engage/mindengage-quiz/internal/exam"
	"github.com/mind-engage/mindengage-quiz/internal/rbac"
	"github.com/mind-engage/mindengage-quiz/internal/session"
)

// POST /sessions
func StartSessionHandler(reg *SessionRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := reg.Start(auth.SubjectFromContext(r.Context()))
		writeJSON(w, http.StatusCreated, v)
	}
}

// GET /sessions/{sessionID}
func GetSessionHandler(reg *SessionRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := reg.With(chi.URLParam(r, "sessionID"), readGuard(r, nil))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /sessions/{sessionID}/answers  {"answer": "..."}
func AnswerHandler(reg *SessionRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answer *string `json:"answer"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answer == nil {
			http.Error(w, "answer required", 400)
			return
		}
		v, err := reg.With(chi.URLParam(r, "sessionID"), ownerGuard(r, func(s *session.Session) error {
			s.AnswerQuestion(*req.Answer)
			return nil
		}))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /sessions/{sessionID}/checkpoints  {"label": "..."}
func SaveCheckpointHandler(reg *SessionRegistry, store checkpoint.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Label string `json:"label"`
		}
		if err := decodeOptional(r.Body, &req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		id := chi.URLParam(r, "sessionID")
		var rec checkpoint.Record
		_, err := reg.With(id, ownerGuard(r, func(s *session.Session) error {
			var err error
			rec, err = store.Put(r.Context(), id, req.Label, s.Save())
			return err
		}))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

// GET /sessions/{sessionID}/checkpoints
func ListCheckpointsHandler(reg *SessionRegistry, store checkpoint.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		var list []checkpoint.Record
		_, err := reg.With(id, readGuard(r, func(*session.Session) error {
			var err error
			list, err = store.List(r.Context(), id)
			return err
		}))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// POST /sessions/{sessionID}/restore  {"checkpoint_id": "..."}; empty id restores the latest.
func RestoreHandler(reg *SessionRegistry, store checkpoint.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			CheckpointID string `json:"checkpoint_id"`
		}
		if err := decodeOptional(r.Body, &req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		id := chi.URLParam(r, "sessionID")
		v, err := reg.With(id, ownerGuard(r, func(s *session.Session) error {
			var (
				rec checkpoint.Record
				err error
			)
			if req.CheckpointID == "" {
				rec, err = store.Latest(r.Context(), id)
			} else {
				rec, err = store.Get(r.Context(), req.CheckpointID)
			}
			if err != nil {
				return err
			}
			if rec.SessionID != id {
				return checkpoint.ErrNotFound
			}
			s.Restore(rec.Snapshot)
			log.Printf("session %s restored to checkpoint %s (index %d)", id, rec.ID, rec.Snapshot.Position())
			return nil
		}))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// GET /sessions/{sessionID}/score
func ScoreHandler(reg *SessionRegistry, root *exam.Section) http.HandlerFunc {
	questions := exam.Questions(root)
	return func(w http.ResponseWriter, r *http.Request) {
		var res session.Result
		_, err := reg.With(chi.URLParam(r, "sessionID"), readGuard(r, func(s *session.Session) error {
			res = session.Score(questions, s)
			return nil
		}))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// ---- helpers ----

// ownerGuard lets only the session's owner through.
func ownerGuard(r *http.Request, fn func(*session.Session) error) func(string, *session.Session) error {
	sub := auth.SubjectFromContext(r.Context())
	return func(owner string, s *session.Session) error {
		if owner != sub {
			return errSessionNotFound
		}
		return fn(s)
	}
}

// readGuard also admits roles allowed to view every session.
func readGuard(r *http.Request, fn func(*session.Session) error) func(string, *session.Session) error {
	sub := auth.SubjectFromContext(r.Context())
	viewAll := rbac.Can(r.Context(), "session:view-all")
	return func(owner string, s *session.Session) error {
		if owner != sub && !viewAll {
			return errSessionNotFound
		}
		if fn == nil {
			return nil
		}
		return fn(s)
	}
}

func decodeOptional(body io.Reader, v any) error {
	err := json.NewDecoder(body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errSessionNotFound), errors.Is(err, checkpoint.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("request failed: %v", err)
		http.Error(w, fmt.Sprintf("internal error: %v", err), http.StatusInternalServerError)
	}
}
