package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/pta-api/api/swagger"
	"github.com/noah-isme/pta-api/internal/handler"
	internalmiddleware "github.com/noah-isme/pta-api/internal/middleware"
	"github.com/noah-isme/pta-api/internal/repository"
	"github.com/noah-isme/pta-api/internal/router"
	"github.com/noah-isme/pta-api/internal/service"
	"github.com/noah-isme/pta-api/pkg/cache"
	"github.com/noah-isme/pta-api/pkg/config"
	"github.com/noah-isme/pta-api/pkg/database"
	"github.com/noah-isme/pta-api/pkg/jobs"
	"github.com/noah-isme/pta-api/pkg/logger"
	"github.com/noah-isme/pta-api/pkg/mail"
	corsmiddleware "github.com/noah-isme/pta-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/pta-api/pkg/middleware/requestid"
)

const shutdownTimeout = 10 * time.Second

// @title Parent Teacher Connect API
// @version 1.0.0
// @description Accounts, subjects, enrollments, announcements, messages and student records for parents, teachers and students.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db.DB); err != nil {
			logr.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	metricsSvc := service.NewMetricsService()

	var redisClient redis.Cmdable
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			defer client.Close()
			redisClient = client
		}
	}
	cacheSvc := service.NewCacheService(repository.NewCacheRepository(redisClient), metricsSvc, cfg.Cache.TTL, logr, redisClient != nil)

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	detailRepo := repository.NewStudentDetailRepository(db)

	var notifier service.AnnouncementNotifier
	if cfg.Notifications.Enabled {
		var mailer mail.Mailer = mail.NewLogMailer(logr)
		if cfg.Notifications.SendgridAPIKey != "" {
			mailer = mail.NewSendgridMailer(cfg.Notifications.SendgridAPIKey, mail.Address{
				Name:  cfg.Notifications.FromName,
				Email: cfg.Notifications.FromAddress,
			}, cfg.AppName)
		}
		worker := service.NewNotificationWorker(userRepo, mailer, metricsSvc, logr)
		queue := jobs.NewQueue("notifications", worker.Handle, jobs.QueueConfig{
			Workers:    cfg.Notifications.Workers,
			MaxRetries: cfg.Notifications.Retries,
			Logger:     logr,
		})
		queue.Start(ctx)
		defer queue.Stop()
		notifier = service.NewNotificationService(queue, logr)
	}

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	subjectSvc := service.NewSubjectService(subjectRepo, enrollmentRepo, userRepo, cacheSvc, validate, logr)
	announcementSvc := service.NewAnnouncementService(announcementRepo, subjectRepo, notifier, cacheSvc, validate, logr)
	messageSvc := service.NewMessageService(messageRepo, userRepo, validate, logr)
	detailSvc := service.NewStudentDetailService(detailRepo, userRepo, validate, logr)
	reportSvc := service.NewReportService(userRepo, subjectRepo, detailRepo, announcementRepo, nil, nil, validate, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))
	r.Use(internalmiddleware.WithResponseMeta())

	router.Register(r, router.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		Subjects:      handler.NewSubjectHandler(subjectSvc),
		Announcements: handler.NewAnnouncementHandler(announcementSvc),
		Messages:      handler.NewMessageHandler(messageSvc),
		Details:       handler.NewStudentDetailHandler(detailSvc),
		Reports:       handler.NewReportHandler(reportSvc),
		Metrics:       handler.NewMetricsHandler(metricsSvc, db),
	}, router.Options{
		AuthRequired: cfg.Auth.Required,
		Tokens:       authSvc,
		EnableDocs:   cfg.Env != config.EnvProduction,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
