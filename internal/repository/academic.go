package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/marga120/mds-application-sub000/internal/collaborator"
	"github.com/marga120/mds-application-sub000/internal/domain/academic"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/samber/lo"
)

type academicRepository struct {
	client *collaborator.Client
	logger *logger.Logger
}

func newAcademicRepository(client *collaborator.Client, logger *logger.Logger) academic.Repository {
	return &academicRepository{client: client, logger: logger}
}

type academicRecordPayload struct {
	InstitutionNumber int     `json:"institution_number"`
	CredentialReceive *string `json:"credential_receive"`
	ProgramStudy      *string `json:"program_study"`
	DateConfer        *string `json:"date_confer"`
	GPA               *string `json:"gpa"`
}

// conferDateLayouts are tried in order; anything unparseable is treated as an
// absent date rather than an error, so ranking can degrade instead of fail.
var conferDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

func (r *academicRepository) List(ctx context.Context, applicantID string) ([]*academic.AcademicRecord, error) {
	var payload []academicRecordPayload
	path := fmt.Sprintf("/applicants/%s/academic-records", applicantID)
	if err := r.client.Get(ctx, path, &payload); err != nil {
		return nil, err
	}

	return lo.Map(payload, func(p academicRecordPayload, _ int) *academic.AcademicRecord {
		return &academic.AcademicRecord{
			InstitutionNumber: p.InstitutionNumber,
			CredentialReceive: p.CredentialReceive,
			ProgramStudy:      p.ProgramStudy,
			DateConfer:        r.parseConferDate(applicantID, p.DateConfer),
			GPA:               p.GPA,
		}
	}), nil
}

func (r *academicRepository) parseConferDate(applicantID string, raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}

	for _, layout := range conferDateLayouts {
		if parsed, err := time.Parse(layout, *raw); err == nil {
			return &parsed
		}
	}

	r.logger.Debugw("treating malformed conferral date as absent",
		"applicant_id", applicantID,
		"date_confer", *raw,
	)
	return nil
}
