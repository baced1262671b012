package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/in-nis/bogyul-back/internal/api"
	"github.com/in-nis/bogyul-back/internal/auth"
	"github.com/in-nis/bogyul-back/internal/config"
	"github.com/in-nis/bogyul-back/internal/cron"
	"github.com/in-nis/bogyul-back/internal/db"
	"github.com/in-nis/bogyul-back/internal/logger"
	"github.com/in-nis/bogyul-back/internal/records"
	"github.com/in-nis/bogyul-back/internal/schedule"
	"github.com/in-nis/bogyul-back/internal/storage/firebase"
	"github.com/in-nis/bogyul-back/internal/storage/memory"
)

type backend interface {
	records.Store
	auth.Users
}

func openStore(ctx context.Context, cfg *config.Config, zl *zap.Logger) (backend, error) {
	switch cfg.StorageDriver {
	case "postgres":
		gdb, err := db.InitDB(cfg.DBUrl, zl)
		if err != nil {
			return nil, err
		}
		return db.NewStore(gdb), nil
	case "firebase":
		return firebase.New(ctx, cfg.FirebaseCredentials, cfg.FirebaseDatabaseURL, cfg.FirebaseRecordsPath)
	case "memory":
		zl.Warn("using in-memory store, records are lost on restart")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system env")
	}

	cfg := config.Load()

	zl, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := openStore(context.Background(), cfg, zl)
	if err != nil {
		zl.Fatal("failed to open store", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}

	engine := schedule.NewEngine(schedule.DefaultCatalog())
	svc := records.NewService(store, engine, zl)

	// Start cron jobs
	jobs, err := cron.StartJobs(cfg.RetentionSchedule, cfg.Retention(), svc, zl)
	if err != nil {
		zl.Fatal("failed to schedule jobs", zap.Error(err))
	}

	r := api.SetupRouter(cfg, api.NewHandler(svc, store, zl), zl)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zl.Info("Server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down")

	if jobs != nil {
		<-jobs.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("forced shutdown", zap.Error(err))
	}
}
