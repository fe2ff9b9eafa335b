package repository

import (
	"github.com/marga120/mds-application-sub000/internal/collaborator"
	"github.com/marga120/mds-application-sub000/internal/domain/academic"
	"github.com/marga120/mds-application-sub000/internal/domain/audit"
	"github.com/marga120/mds-application-sub000/internal/domain/review"
	"github.com/marga120/mds-application-sub000/internal/domain/session"
	"github.com/marga120/mds-application-sub000/internal/logger"
)

// All repositories are backed by the external admissions record system; this
// layer owns no persistence of its own.

func NewReviewRepository(client *collaborator.Client, logger *logger.Logger) review.Repository {
	return newReviewRepository(client, logger)
}

func NewAuditRepository(client *collaborator.Client, logger *logger.Logger) audit.Repository {
	return newAuditRepository(client, logger)
}

func NewAcademicRepository(client *collaborator.Client, logger *logger.Logger) academic.Repository {
	return newAcademicRepository(client, logger)
}

func NewSessionRepository(client *collaborator.Client, logger *logger.Logger) session.Repository {
	return newSessionRepository(client, logger)
}
