package service

import (
	"github.com/marga120/mds-application-sub000/internal/cache"
	"github.com/marga120/mds-application-sub000/internal/config"
	"github.com/marga120/mds-application-sub000/internal/domain/academic"
	"github.com/marga120/mds-application-sub000/internal/domain/audit"
	"github.com/marga120/mds-application-sub000/internal/domain/review"
	"github.com/marga120/mds-application-sub000/internal/domain/session"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/panelsync"
	"github.com/marga120/mds-application-sub000/internal/rbac"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// The in-memory authoritative copy of the open applicant's fields
	Store *review.Store

	// Permission gate
	Gate *rbac.Gate

	// Cross-panel broadcast
	Sync *panelsync.Synchronizer

	// Cache
	Cache cache.Cache

	// Repositories (all backed by the external admissions system)
	ReviewRepo   review.Repository
	AuditRepo    audit.Repository
	AcademicRepo academic.Repository
	SessionRepo  session.Repository
}

// NewServiceParams wires the common service dependencies.
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	store *review.Store,
	gate *rbac.Gate,
	sync *panelsync.Synchronizer,
	cache cache.Cache,
	reviewRepo review.Repository,
	auditRepo audit.Repository,
	academicRepo academic.Repository,
	sessionRepo session.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		Store:        store,
		Gate:         gate,
		Sync:         sync,
		Cache:        cache,
		ReviewRepo:   reviewRepo,
		AuditRepo:    auditRepo,
		AcademicRepo: academicRepo,
		SessionRepo:  sessionRepo,
	}
}
