package rbac_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mind-engage/mindengage-quiz/internal/rbac"
)

func TestChecker(t *testing.T) {
	c := rbac.NewChecker(map[string][]string{
		"r": {"session:*", "exam:view"},
	})
	cases := []struct {
		role, perm string
		want       bool
	}{
		{"r", "session:start", true},
		{"r", "exam:view", true},
		{"r", "exam:grade", false},
		{"nobody", "exam:view", false},
	}
	for _, tc := range cases {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Errorf("Has(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
	if !c.Any("r", "exam:grade", "exam:view") {
		t.Fatal("Any should match second permission")
	}

	def := rbac.NewChecker(nil)
	if !def.Has("admin", "anything:at-all") {
		t.Fatal("admin wildcard")
	}
	if def.Has("candidate", "session:view-all") {
		t.Fatal("candidate must not view all sessions")
	}
}

func TestRequire(t *testing.T) {
	h := rbac.Require("session:start")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	for role, want := range map[string]int{
		"":          http.StatusForbidden,
		"proctor":   http.StatusForbidden,
		"candidate": http.StatusNoContent,
		"admin":     http.StatusNoContent,
	} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(rbac.WithRole(req.Context(), role))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Errorf("role %q: status %d, want %d", role, rec.Code, want)
		}
	}

	if !rbac.Can(rbac.WithRole(context.Background(), "proctor"), "session:view-all") {
		t.Fatal("proctor should view all sessions")
	}
}
