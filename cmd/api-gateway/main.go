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
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/walkin-drive-api/api/swagger"
	"github.com/noah-isme/walkin-drive-api/internal/handler"
	"github.com/noah-isme/walkin-drive-api/internal/realtime"
	"github.com/noah-isme/walkin-drive-api/internal/repository"
	"github.com/noah-isme/walkin-drive-api/internal/service"
	"github.com/noah-isme/walkin-drive-api/internal/store"
	"github.com/noah-isme/walkin-drive-api/pkg/cache"
	"github.com/noah-isme/walkin-drive-api/pkg/config"
	"github.com/noah-isme/walkin-drive-api/pkg/database"
	"github.com/noah-isme/walkin-drive-api/pkg/logger"
)

// @title Walk-in Drive API
// @version 1.0.0
// @description Interview drive management portal: candidate registration, round queues, panel feedback, and live cache-invalidation events.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	bus := realtime.NewBus(cfg.Realtime.BusBufferSize, logr, metrics)
	hub := realtime.NewHub(cfg.Realtime.MaxClients, cfg.Realtime.SendBufferSize, logr, metrics)
	go bus.Run(hub.Broadcast)

	ctx := context.Background()

	deps, cleanup, err := buildServices(ctx, cfg, logr, bus, metrics)
	if err != nil {
		logr.Sugar().Fatalw("failed to build services", "error", err)
	}
	defer cleanup()

	seedDefaults(ctx, cfg.Seed, deps.Users, deps.Permissions, logr)

	deps.Env = cfg.Env
	deps.APIPrefix = cfg.APIPrefix
	deps.AllowedOrigins = cfg.CORS.AllowedOrigins
	deps.WebhookSecret = cfg.Webhook.Secret
	deps.Logger = logr
	deps.Metrics = metrics
	deps.Hub = hub

	router := handler.NewRouter(deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting",
			"addr", srv.Addr,
			"env", cfg.Env,
			"db_enabled", cfg.Database.Enabled,
			"redis_enabled", cfg.Redis.Enabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}

	// Drain pending events into the hub before stopping it.
	bus.Close()
	hub.Stop()

	logr.Sugar().Infow("server stopped")
}

// buildServices wires the domain services against either the sqlx
// repositories or the in-memory store, depending on DB_ENABLED. The
// returned cleanup closes whatever connections were opened.
func buildServices(ctx context.Context, cfg *config.Config, logr *zap.Logger, events service.EventPublisher, metrics *service.MetricsService) (handler.Deps, func(), error) {
	validate := validator.New()
	closers := make([]func(), 0, 2)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var cacheSvc *service.CacheService
	if cfg.Redis.Enabled {
		client, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			return handler.Deps{}, cleanup, fmt.Errorf("redis: %w", err)
		}
		closers = append(closers, func() {
			if err := client.Close(); err != nil {
				logr.Sugar().Warnw("redis close failed", "error", err)
			}
		})
		cacheRepo := repository.NewCacheRepository(client, logr)
		cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Queue.BoardCacheTTL, logr, true)
	}

	authCfg := service.AuthConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL,
		Issuer: cfg.JWT.Issuer,
	}

	var deps handler.Deps

	if cfg.Database.Enabled {
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return handler.Deps{}, cleanup, fmt.Errorf("database: %w", err)
		}
		closers = append(closers, func() {
			if err := db.Close(); err != nil {
				logr.Sugar().Warnw("database close failed", "error", err)
			}
		})

		candidates := repository.NewCandidateRepository(db)
		panels := repository.NewPanelRepository(db)
		rooms := repository.NewRoomRepository(db)
		feedback := repository.NewFeedbackRepository(db)
		surveys := repository.NewCandidateFeedbackRepository(db)
		users := repository.NewUserRepository(db)
		rolePerms := repository.NewRolePermissionRepository(db)

		deps.Auth = service.NewAuthService(users, validate, logr, authCfg)
		deps.Candidates = service.NewCandidateService(candidates, validate, logr, events, cacheSvc)
		deps.Panels = service.NewPanelService(panels, candidates, validate, logr, events, cacheSvc)
		deps.Rooms = service.NewRoomService(rooms, panels, validate, logr, events)
		deps.Feedback = service.NewFeedbackService(feedback, candidates, panels, validate, logr, events, cacheSvc)
		deps.Surveys = service.NewCandidateFeedbackService(surveys, candidates, validate, logr, events)
		deps.Users = service.NewUserService(users, validate, logr, events)
		deps.Permissions = service.NewPermissionService(rolePerms, validate, logr, events)
		deps.Queue = service.NewQueueService(candidates, cacheSvc, logr, cfg.Queue.BoardCacheTTL)
		deps.Exports = service.NewExportService(candidates, logr, cfg.Export.PDFTitle)
		deps.Accounts = users

		return deps, cleanup, nil
	}

	st := store.New()

	deps.Auth = service.NewAuthService(st.Users, validate, logr, authCfg)
	deps.Candidates = service.NewCandidateService(st.Candidates, validate, logr, events, cacheSvc)
	deps.Panels = service.NewPanelService(st.Panels, st.Candidates, validate, logr, events, cacheSvc)
	deps.Rooms = service.NewRoomService(st.Rooms, st.Panels, validate, logr, events)
	deps.Feedback = service.NewFeedbackService(st.Feedback, st.Candidates, st.Panels, validate, logr, events, cacheSvc)
	deps.Surveys = service.NewCandidateFeedbackService(st.CandidateFeedback, st.Candidates, validate, logr, events)
	deps.Users = service.NewUserService(st.Users, validate, logr, events)
	deps.Permissions = service.NewPermissionService(st.RolePermissions, validate, logr, events)
	deps.Queue = service.NewQueueService(st.Candidates, cacheSvc, logr, cfg.Queue.BoardCacheTTL)
	deps.Exports = service.NewExportService(st.Candidates, logr, cfg.Export.PDFTitle)
	deps.Accounts = st.Users

	return deps, cleanup, nil
}
