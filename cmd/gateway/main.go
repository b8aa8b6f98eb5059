package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/mind-engage/mindengage-quiz/internal/api/http"
	auth "github.com/mind-engage/mindengage-quiz/internal/auth/middleware"
	"github.com/mind-engage/mindengage-quiz/internal/checkpoint"
	"github.com/mind-engage/mindengage-quiz/internal/config"
	"github.com/mind-engage/mindengage-quiz/internal/db"
	"github.com/mind-engage/mindengage-quiz/internal/exam"
	"github.com/mind-engage/mindengage-quiz/internal/grading"
	"github.com/mind-engage/mindengage-quiz/internal/timer"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer dbh.Close()

	// --- Exam ---
	root, err := buildExam(cfg)
	if err != nil {
		log.Fatalf("build exam: %v", err)
	}

	// --- Timer + sessions ---
	if !timer.Configure(cfg.ExamDuration) {
		log.Printf("exam timer already running; EXAM_DURATION_SEC ignored")
	}
	sessions := api.NewSessionRegistry(cfg.ExamDuration)
	go sessions.PruneEvery(context.Background(), time.Minute)

	r := api.NewRouter(api.Deps{
		Exam:        root,
		Sessions:    sessions,
		Checkpoints: checkpoint.NewSQLStore(dbh),
		Timer:       timer.Default(),
		Auth:        auth.NewAuthService(cfg.AuthSecret),
		Credentials: auth.Credentials{
			AdminUser:       cfg.AdminUser,
			AdminPassHash:   cfg.AdminPassHash,
			AllowCandidates: cfg.Mode == config.ModeOffline,
		},
		LocalLogin:  cfg.EnableLocalAuth,
		CORSOrigins: cfg.CORSOrigins(),
	})

	log.Printf("listening on %s (mode=%s, db=%s, exam=%q)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, cfg.ExamTitle)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func buildExam(cfg config.Config) (*exam.Section, error) {
	strategies := grading.NewRegistry(
		grading.WithMaxEditDistance(cfg.FuzzyMaxEdit),
		grading.WithNumericTolerance(cfg.NumericTolerance),
	)
	b := exam.NewBuilder(cfg.ExamTitle).
		WithStrategies(strategies).
		AddSection("Logica").
		AddQuestion("Quanto e 2+2?", "4").
		AddQuestion("Quanto e 3*3?", "9").
		AddQuestionWith("Quanto e 22/7 com duas casas?", "3.14", "numeric").
		AddSection("Orientacao a Objetos").
		AddQuestion("O que e polimorfismo?", "Muitas formas").
		AddQuestionWith("Como se chama um objeto criado a partir de uma classe?", "instancia", "fuzzy").
		AddTrueFalse("Uma interface pode ter varias implementacoes?", "true").
		AddQuestionWith("Escreva o nome do padrao que salva e restaura estado.", "Memento", "normalized")
	return b.Build(), b.Err()
}
