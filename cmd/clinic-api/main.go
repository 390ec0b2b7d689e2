package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/equinoterapia/clinica-api/api/swagger"
	"github.com/equinoterapia/clinica-api/internal/handler"
	"github.com/equinoterapia/clinica-api/internal/middleware"
	"github.com/equinoterapia/clinica-api/internal/models"
	"github.com/equinoterapia/clinica-api/internal/repository"
	"github.com/equinoterapia/clinica-api/internal/schedule"
	"github.com/equinoterapia/clinica-api/internal/service"
	"github.com/equinoterapia/clinica-api/pkg/cache"
	"github.com/equinoterapia/clinica-api/pkg/config"
	"github.com/equinoterapia/clinica-api/pkg/database"
	"github.com/equinoterapia/clinica-api/pkg/export"
	"github.com/equinoterapia/clinica-api/pkg/jobs"
	"github.com/equinoterapia/clinica-api/pkg/logger"
	corsmiddleware "github.com/equinoterapia/clinica-api/pkg/middleware/cors"
	reqidmiddleware "github.com/equinoterapia/clinica-api/pkg/middleware/requestid"
)

// @title Clinica Equinoterapia API
// @version 0.1.0
// @description Scheduling service for equine therapy sessions
// @BasePath /api/v1
// @schemes http

type redisPinger struct {
	client *redis.Client
}

func (r redisPinger) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, continuing without cache", "error", err)
			redisClient = nil
		}
	}

	patientRepo := repository.NewPatientRepository(db)
	professionalRepo := repository.NewProfessionalRepository(db)
	horseRepo := repository.NewHorseRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	workHourRepo := repository.NewWorkHourRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	registrySvc := service.NewRegistryService(patientRepo, professionalRepo, horseRepo, logr)
	if err := registrySvc.Load(ctx); err != nil {
		logr.Sugar().Fatalw("failed to load registry", "error", err)
	}

	initialSessions, err := sessionRepo.List(ctx, models.SessionFilter{})
	if err != nil {
		logr.Sugar().Fatalw("failed to load sessions", "error", err)
	}
	initialWorkHours, err := workHourRepo.List(ctx, 0, "")
	if err != nil {
		logr.Sugar().Fatalw("failed to load work hours", "error", err)
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	store := schedule.NewStore(initialSessions)
	metricsSvc.SetSessionCount(store.Len())

	var scheduleSvc *service.ScheduleService
	var workHourSvc *service.WorkHourService
	if cfg.Schedule.MirrorEnabled {
		queue := jobs.NewQueue(service.MirrorQueueName, service.NewMirrorHandler(sessionRepo, workHourRepo, logr), jobs.QueueConfig{
			Workers:    cfg.Schedule.MirrorWorkers,
			MaxRetries: cfg.Schedule.MirrorRetries,
			RetryDelay: cfg.Schedule.MirrorRetryGap,
			Logger:     logr,
		})
		queue.Start(ctx)
		defer queue.Stop()
		scheduleSvc = service.NewScheduleService(store, registrySvc, cfg.Schedule.HorseDailyCap, queue, cacheRepo, metricsSvc, validate, logr)
		workHourSvc = service.NewWorkHourService(initialWorkHours, registrySvc, queue, validate, logr)
	} else {
		scheduleSvc = service.NewScheduleService(store, registrySvc, cfg.Schedule.HorseDailyCap, nil, cacheRepo, metricsSvc, validate, logr)
		workHourSvc = service.NewWorkHourService(initialWorkHours, registrySvc, nil, validate, logr)
	}
	calendarSvc := service.NewCalendarService(scheduleSvc, cacheRepo, cfg.Cache.TTL, metricsSvc, logr)

	sessionHandler := handler.NewSessionHandler(scheduleSvc)
	calendarHandler := handler.NewCalendarHandler(calendarSvc, export.NewCSVExporter(), export.NewPDFExporter())
	registryHandler := handler.NewRegistryHandler(registrySvc)
	workHourHandler := handler.NewWorkHourHandler(workHourSvc)

	var metricsHandler *handler.MetricsHandler
	if redisClient != nil {
		metricsHandler = handler.NewMetricsHandler(metricsSvc, db, redisPinger{client: redisClient})
	} else {
		metricsHandler = handler.NewMetricsHandler(metricsSvc, db, nil)
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/sessions", sessionHandler.List)
		api.POST("/sessions", sessionHandler.Create)
		api.POST("/sessions/batch", sessionHandler.BatchCreate)
		api.GET("/sessions/:id", sessionHandler.Get)
		api.PUT("/sessions/:id", sessionHandler.Update)
		api.DELETE("/sessions/:id", sessionHandler.Delete)

		api.GET("/calendar", calendarHandler.View)
		api.GET("/calendar/navigate", calendarHandler.Navigate)
		api.GET("/calendar/click", calendarHandler.Click)
		api.GET("/timeslots", calendarHandler.TimeSlots)
		api.GET("/agenda/export", calendarHandler.ExportAgenda)

		api.GET("/patients", registryHandler.ListPatients)
		api.GET("/professionals", registryHandler.ListProfessionals)
		api.GET("/horses", registryHandler.ListHorses)
		api.PATCH("/horses/:id/availability", registryHandler.SetHorseAvailability)

		api.GET("/work-hours", workHourHandler.List)
		api.POST("/work-hours", workHourHandler.Create)
		api.POST("/work-hours/batch", workHourHandler.BatchCreate)
		api.GET("/work-hours/summary", workHourHandler.Summary)
		api.GET("/work-hours/export", workHourHandler.Export)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}
