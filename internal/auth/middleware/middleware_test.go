package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	auth "github.com/mind-engage/mindengage-quiz/internal/auth/middleware"
	"github.com/mind-engage/mindengage-quiz/internal/rbac"
)

func TestIssueAndParse(t *testing.T) {
	a := auth.NewAuthService("test-secret")
	tok, err := a.IssueJWT("maria", auth.RoleCandidate)
	if err != nil {
		t.Fatal(err)
	}
	c, err := a.Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if c.Sub != "maria" || c.Role != auth.RoleCandidate {
		t.Fatalf("claims = %+v", c)
	}

	other := auth.NewAuthService("other-secret")
	if _, err := other.Parse(tok); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	creds := auth.Credentials{AdminUser: "admin", AdminPassHash: string(hash), AllowCandidates: true}

	if role, ok := creds.Authenticate("admin", "s3cret"); !ok || role != auth.RoleAdmin {
		t.Fatalf("admin login = %q %v", role, ok)
	}
	if _, ok := creds.Authenticate("admin", "admin"); ok {
		t.Fatal("admin must use the hashed password")
	}
	if role, ok := creds.Authenticate("joao", "joao"); !ok || role != auth.RoleCandidate {
		t.Fatalf("candidate login = %q %v", role, ok)
	}
	if _, ok := creds.Authenticate("joao", "x"); ok {
		t.Fatal("candidate with wrong password accepted")
	}
	creds.AllowCandidates = false
	if _, ok := creds.Authenticate("joao", "joao"); ok {
		t.Fatal("candidate login accepted while disabled")
	}
	if _, ok := creds.Authenticate("", ""); ok {
		t.Fatal("empty username accepted")
	}
}

func TestLoginHandler(t *testing.T) {
	a := auth.NewAuthService("k")
	h := auth.LoginHandler(a, auth.Credentials{AllowCandidates: true})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"ana","password":"ana"}`)))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "access_token") {
		t.Fatalf("login: %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"ana","password":"x"}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json: %d", rec.Code)
	}
}

func TestJWTMiddleware(t *testing.T) {
	a := auth.NewAuthService("k")
	var gotSub, gotRole string
	h := auth.JWTMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = auth.SubjectFromContext(r.Context())
		gotRole = rbac.RoleFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing bearer: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: %d", rec.Code)
	}

	tok, _ := a.IssueJWT("ana", auth.RoleProctor)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || gotSub != "ana" || gotRole != auth.RoleProctor {
		t.Fatalf("valid token: %d sub=%q role=%q", rec.Code, gotSub, gotRole)
	}
}
