package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/marga120/mds-application-sub000/internal/api/v1"
	"github.com/marga120/mds-application-sub000/internal/config"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/rest/middleware"
	"github.com/marga120/mds-application-sub000/internal/service"
	"github.com/marga120/mds-application-sub000/internal/types"
)

type Handlers struct {
	Health     *v1.HealthHandler
	Review     *v1.ReviewHandler
	Audit      *v1.AuditHandler
	Academic   *v1.AcademicHandler
	Permission *v1.PermissionHandler
}

func NewRouter(cfg *config.Configuration, handlers Handlers, sessionService service.SessionService, log *logger.Logger) *gin.Engine {
	// local mode keeps gin's debug output
	if cfg.Deployment.Mode == types.ModeAPI {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.SentryMiddleware(cfg))
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	// v1 routes resolve the acting role once per request
	v1Group := router.Group("/v1")
	v1Group.Use(middleware.SessionMiddleware(sessionService, log))
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	reviews := router.Group("/reviews")
	{
		reviews.POST("/:id/open", handlers.Review.Open)
		reviews.GET("/current", handlers.Review.Current)
		reviews.POST("/current/propose", handlers.Review.Propose)
		reviews.POST("/current/commit", handlers.Review.Commit)
		reviews.PUT("/current/prerequisites", handlers.Review.UpdatePrerequisites)
		reviews.PUT("/current/scholarship", handlers.Review.UpdateScholarship)
		reviews.PUT("/current/english-status", handlers.Review.UpdateEnglishStatus)
		reviews.PUT("/current/gpa", handlers.Review.UpdateGPA)
		reviews.GET("/current/history", handlers.Audit.Recent)
	}

	applicants := router.Group("/applicants")
	{
		applicants.GET("/:id/credential-summary", handlers.Academic.CredentialSummary)
	}

	router.GET("/permissions", handlers.Permission.Resolve)
}
