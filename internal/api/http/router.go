package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	auth "github.com/mind-engage/mindengage-quiz/internal/auth/middleware"
	"github.com/mind-engage/mindengage-quiz/internal/checkpoint"
	"github.com/mind-engage/mindengage-quiz/internal/exam"
	"github.com/mind-engage/mindengage-quiz/internal/rbac"
	"github.com/mind-engage/mindengage-quiz/internal/timer"
)

type Deps struct {
	Exam        *exam.Section
	Sessions    *SessionRegistry
	Checkpoints checkpoint.Store
	Timer       *timer.Timer
	Auth        *auth.AuthService
	Credentials auth.Credentials
	// LocalLogin mounts POST /auth/login.
	LocalLogin  bool
	CORSOrigins []string
}

func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if d.LocalLogin {
		r.Post("/auth/login", auth.LoginHandler(d.Auth, d.Credentials))
	}

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(d.Auth))

		pr.With(rbac.Require("exam:view")).Get("/exam", DisplayExamHandler(d.Exam))
		pr.With(rbac.Require("exam:view")).Get("/exam/sections", ListTopLevelHandler(d.Exam))
		pr.With(rbac.Require("timer:view")).Get("/timer", TimerHandler(d.Timer))

		pr.With(rbac.Require("session:start")).
			Post("/sessions", StartSessionHandler(d.Sessions))
		pr.Route("/sessions/{sessionID}", func(sr chi.Router) {
			sr.With(rbac.RequireAny("session:view-own", "session:view-all")).
				Get("/", GetSessionHandler(d.Sessions))
			sr.With(rbac.Require("session:answer")).
				Post("/answers", AnswerHandler(d.Sessions))
			sr.With(rbac.Require("session:checkpoint")).
				Post("/checkpoints", SaveCheckpointHandler(d.Sessions, d.Checkpoints))
			sr.With(rbac.RequireAny("session:view-own", "session:view-all")).
				Get("/checkpoints", ListCheckpointsHandler(d.Sessions, d.Checkpoints))
			sr.With(rbac.Require("session:restore")).
				Post("/restore", RestoreHandler(d.Sessions, d.Checkpoints))
			sr.With(rbac.Require("exam:grade")).
				Get("/score", ScoreHandler(d.Sessions, d.Exam))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	return r
}
