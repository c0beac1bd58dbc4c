// @title         interview-service API
// @version       1.0
// @description   Сервис проведения технического интервью: разбор резюме, вопросы с таймером, оценка ответов и список кандидатов для рекрутера.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "github.com/artem13815/interview/docs"

	// internal imports
	"github.com/artem13815/interview/api/http"
	"github.com/artem13815/interview/api/http/handlers"
	"github.com/artem13815/interview/pkg/assessment"
	"github.com/artem13815/interview/pkg/candidate"
	"github.com/artem13815/interview/pkg/checkpoint"
	"github.com/artem13815/interview/pkg/config"
	"github.com/artem13815/interview/pkg/health"
	"github.com/artem13815/interview/pkg/health/checkers"
	"github.com/artem13815/interview/pkg/logger"
	"github.com/artem13815/interview/pkg/question"
	pgrepo "github.com/artem13815/interview/pkg/repository/postgres"
	redisrepo "github.com/artem13815/interview/pkg/repository/redis"
	"github.com/artem13815/interview/pkg/resume"
	"github.com/artem13815/interview/pkg/storage/postgres"
	"github.com/artem13815/interview/pkg/storage/redis"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bank := question.NewStaticBank()
	if cfg.QuestionsFile != "" {
		bank, err = question.LoadFile(cfg.QuestionsFile)
		if err != nil {
			log.Fatal("load question bank", zap.String("file", cfg.QuestionsFile), zap.Error(err))
		}
	}

	var (
		kv         checkpoint.KV
		store      candidate.Store
		resumeRepo resume.Repository
		probes     []health.Checker
	)

	// PostgreSQL is optional: without it candidates live in the checkpoint store
	// and resume metadata is not kept.
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
		if err != nil {
			log.Fatal("postgres connect", zap.Error(err))
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			log.Fatal("postgres migrate", zap.Error(err))
		}
		store = pgrepo.NewCandidateRepository(pool)
		resumeRepo = pgrepo.NewResumeRepository(pool)
		kv = pgrepo.NewKVRepository(pool)
		probes = append(probes, checkers.NewPostgresChecker(pool))
	}

	switch {
	case cfg.RedisAddr != "":
		client, err := redis.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("redis connect", zap.Error(err))
		}
		defer client.Close()
		kv = redisrepo.NewKVRepository(client)
		probes = append(probes, checkers.NewRedisChecker(client))
	case kv != nil:
		// Postgres already serves as the checkpoint store.
	case cfg.StateDir != "":
		fileKV, err := checkpoint.NewFileKV(cfg.StateDir)
		if err != nil {
			log.Fatal("open state dir", zap.String("dir", cfg.StateDir), zap.Error(err))
		}
		kv = fileKV
		probes = append(probes, checkers.NewKVChecker("state", fileKV))
	default:
		log.Warn("no durable store configured, interviews are kept in memory only")
		kv = checkpoint.NewMemoryKV()
	}

	cp := checkpoint.New(kv, log)
	if store == nil {
		kvStore, err := candidate.NewKVStore(ctx, cp)
		if err != nil {
			log.Fatal("open candidate store", zap.Error(err))
		}
		store = kvStore
	}

	interviews := assessment.NewService(bank, store, cp, assessment.Config{TickInterval: cfg.TickInterval}, log)
	defer interviews.Close()

	app := fiber.New(fiber.Config{
		AppName:   "interview-service",
		BodyLimit: (cfg.MaxUploadMB + 1) << 20,
	})

	// Register routes
	http.Register(app,
		handlers.NewHealthHandler(health.NewService(probes...)),
		handlers.NewResumesHandler(resume.NewExtractionService(log), resumeRepo, cfg.UploadDir, int64(cfg.MaxUploadMB)<<20, log),
		handlers.NewInterviewsHandler(interviews),
		handlers.NewCandidatesHandler(store),
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Warn("http shutdown", zap.Error(err))
		}
	}()

	log.Info("HTTP server listening",
		zap.String("port", cfg.Port),
		zap.Int("questions", len(bank.Questions())),
		zap.Duration("tick", cfg.TickInterval),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
}
