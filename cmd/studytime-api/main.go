package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/studytime-api/api/swagger"
	"github.com/noah-isme/studytime-api/internal/handler"
	"github.com/noah-isme/studytime-api/internal/repository"
	"github.com/noah-isme/studytime-api/internal/scheduler"
	"github.com/noah-isme/studytime-api/internal/service"
	"github.com/noah-isme/studytime-api/pkg/cache"
	"github.com/noah-isme/studytime-api/pkg/config"
	"github.com/noah-isme/studytime-api/pkg/database"
	"github.com/noah-isme/studytime-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/studytime-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/studytime-api/pkg/middleware/requestid"
	"github.com/noah-isme/studytime-api/pkg/storage"
)

// @title StudyTime API
// @version 1.0.0
// @description Study schedule generator with calendar management and exports
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The API degrades to uncached operation when Redis is unreachable.
		logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	}

	cacheRepo := repository.NewCacheRepository(redisClient)
	defer cacheRepo.Close() //nolint:errcheck

	exportStorage, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Fatal("failed to prepare export storage", zap.Error(err))
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	cacheEnabled := cfg.Cache.Enabled && redisClient != nil
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.DefaultTTL, logr, cacheEnabled)

	courseRepo := repository.NewCourseRepository(db)
	jobRepo := repository.NewJobRepository(db)
	commuteRepo := repository.NewCommuteRepository(db)
	breakRepo := repository.NewBreakRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)
	eventRepo := repository.NewEventRepository(db)

	engine := scheduler.NewEngine(logr)

	calendarSvc := service.NewCalendarService(courseRepo, jobRepo, commuteRepo, breakRepo, cacheSvc, validate, logr)
	taskSvc := service.NewTaskService(taskRepo, cacheSvc, validate, logr)
	prefSvc := service.NewPreferenceService(prefRepo, cacheSvc, validate, logr)
	scheduleSvc := service.NewScheduleService(service.ScheduleServiceParams{
		Engine:      engine,
		Courses:     courseRepo,
		Tasks:       taskRepo,
		Breaks:      breakRepo,
		Jobs:        jobRepo,
		Commutes:    commuteRepo,
		Preferences: prefRepo,
		Events:      eventRepo,
		Cache:       cacheSvc,
		Metrics:     metrics,
		Validator:   validate,
		Logger:      logr,
		CacheTTL:    cfg.Cache.DefaultTTL,
	})
	statsSvc := service.NewStatsService(courseRepo, breakRepo, jobRepo, commuteRepo, taskRepo, cacheSvc, logr, cfg.Cache.DefaultTTL)
	exportSvc := service.NewExportService(eventRepo, exportStorage, service.ExportConfig{
		ResultTTL: cfg.Exports.ResultTTL,
		Workers:   cfg.Exports.WorkerConcurrency,
	}, validate, logr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exportSvc.Start(ctx)
	defer exportSvc.Stop()

	go func() {
		ticker := time.NewTicker(cfg.Exports.CleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				exportSvc.Cleanup()
			}
		}
	}()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, handler.Handlers{
		Calendar:   handler.NewCalendarHandler(calendarSvc),
		Tasks:      handler.NewTaskHandler(taskSvc),
		Preference: handler.NewPreferenceHandler(prefSvc),
		Schedule:   handler.NewScheduleHandler(scheduleSvc),
		Stats:      handler.NewStatsHandler(statsSvc),
		Export:     handler.NewExportHandler(exportSvc),
		Metrics:    handler.NewMetricsHandler(metrics),
	}, metrics)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
