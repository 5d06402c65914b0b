// Package posting creates job postings on behalf of recruiters. A posting
// always belongs to the company the recruiter is bound to; callers never
// name a company directly.
package posting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"careerbridge/pkg/domain"
	"careerbridge/pkg/serrors"
	"careerbridge/pkg/storage"
)

type posting struct {
	storage storage.Storage
}

// New creates a new Posting service backed by the provided storage.
func New(storage storage.Storage) Posting {
	return &posting{storage: storage}
}

// Create stores a posting plus its skill links in one transaction.
func (p posting) Create(ctx context.Context,
	recruiterID domain.UserID,
	req JobRequest) (*domain.Job, error) {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return nil, serrors.With(serrors.ErrBadRequest, "title is required")
	case strings.TrimSpace(req.PositionType) == "":
		return nil, serrors.With(serrors.ErrBadRequest, "position type is required")
	case strings.TrimSpace(req.WorkplaceType) == "":
		return nil, serrors.With(serrors.ErrBadRequest, "workplace type is required")
	case req.ApplicationDeadline.Before(time.Now()):
		return nil, serrors.With(serrors.ErrBadRequest, "application deadline must be in the future")
	}

	recruiter, err := p.storage.RecruiterByUserID(ctx, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("could not look up recruiter: %w", err)
	}
	if recruiter == nil {
		return nil, serrors.With(serrors.ErrNotFound, "recruiter not found")
	}

	var job *domain.Job
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		job, err = tx.StoreJob(ctx, domain.Job{
			CompanyID:           recruiter.Company.ID,
			Title:               req.Title,
			AboutRole:           req.AboutRole,
			Requirements:        req.Requirements,
			Benefits:            req.Benefits,
			Responsibilities:    req.Responsibilities,
			Compensation:        req.Compensation,
			PositionType:        req.PositionType,
			WorkplaceType:       req.WorkplaceType,
			ClassLevel:          req.ClassLevel,
			ApplicationDeadline: req.ApplicationDeadline,
		}, req.Skills)
		if err != nil {
			return fmt.Errorf("could not store job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create posting: %w", err)
	}

	return job, nil
}

// Get fetches a posting by id, returning a not-found error when absent.
func (p posting) Get(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	job, err := p.storage.JobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	return job, nil
}
