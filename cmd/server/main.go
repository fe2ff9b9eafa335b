package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marga120/mds-application-sub000/internal/api"
	v1 "github.com/marga120/mds-application-sub000/internal/api/v1"
	"github.com/marga120/mds-application-sub000/internal/cache"
	"github.com/marga120/mds-application-sub000/internal/collaborator"
	"github.com/marga120/mds-application-sub000/internal/config"
	"github.com/marga120/mds-application-sub000/internal/domain/review"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/panelsync"
	"github.com/marga120/mds-application-sub000/internal/pubsub"
	pubsubMemory "github.com/marga120/mds-application-sub000/internal/pubsub/memory"
	"github.com/marga120/mds-application-sub000/internal/rbac"
	"github.com/marga120/mds-application-sub000/internal/repository"
	"github.com/marga120/mds-application-sub000/internal/sentry"
	"github.com/marga120/mds-application-sub000/internal/service"
	"github.com/marga120/mds-application-sub000/internal/validator"
	"go.uber.org/fx"
)

// @title Admissions Review Coordination API
// @version 1.0
// @description Review-surface backend for the admissions dashboard
// @BasePath /v1

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.NewInMemoryCache,

			// Collaborator client and repositories
			collaborator.NewClient,
			repository.NewReviewRepository,
			repository.NewAuditRepository,
			repository.NewAcademicRepository,
			repository.NewSessionRepository,

			// Review state store and permission gate
			review.NewStore,
			rbac.NewGate,

			// Cross-panel broadcast
			pubsubMemory.NewPubSub,
			panelsync.NewSynchronizer,

			// Services
			service.NewServiceParams,
			service.NewAuditService,
			service.NewReviewService,
			service.NewCredentialService,
			service.NewSessionService,

			// Handlers
			v1.NewHealthHandler,
			v1.NewReviewHandler,
			v1.NewAuditHandler,
			v1.NewAcademicHandler,
			v1.NewPermissionHandler,
			newHandlers,

			// Router
			api.NewRouter,
		),
		sentry.Module(),
		fx.Invoke(startServer),
	)

	app.Run()
}

func newHandlers(
	health *v1.HealthHandler,
	review *v1.ReviewHandler,
	audit *v1.AuditHandler,
	academic *v1.AcademicHandler,
	permission *v1.PermissionHandler,
) api.Handlers {
	return api.Handlers{
		Health:     health,
		Review:     review,
		Audit:      audit,
		Academic:   academic,
		Permission: permission,
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	sync *panelsync.Synchronizer,
	pubSub pubsub.PubSub,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := sync.Start(context.Background()); err != nil {
				return err
			}

			go func() {
				log.Infof("Starting server on %s", cfg.Server.Address)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server")
			if err := pubSub.Close(); err != nil {
				log.Errorw("failed to close pubsub", "error", err)
			}
			return server.Shutdown(ctx)
		},
	})
}
