// Package lifecycle drives the application state machine:
//
//	APPLIED -> UNDER_REVIEW -> INTERVIEW -> OFFER | REJECTED
//	APPLIED | UNDER_REVIEW | INTERVIEW -> WITHDRAWN
//
// Recruiter-initiated transitions enqueue a notification job inside the same
// transaction as the status write, so an email is dispatched exactly when the
// transition commits. Delivery happens in the background worker and can never
// roll a committed transition back.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careerbridge/internal/config"
	"careerbridge/pkg/domain"
	"careerbridge/pkg/metrics"
	"careerbridge/pkg/serrors"
	"careerbridge/pkg/storage"

	"github.com/google/uuid"
)

// Options configure notification enqueueing.
type Options struct {
	// NotifierMaxAttempts is the maximum number of delivery attempts the
	// background worker should make before discarding a notification.
	NotifierMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		NotifierMaxAttempts: cfg.Notifier.MaxAttempts,
	}
}

type lifecycle struct {
	options Options
	storage storage.Storage
}

// New creates a new Lifecycle service backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Lifecycle {
	return &lifecycle{
		options: options,
		storage: storage,
	}
}

// Apply submits an application. The existence read and the insert share a
// transaction; under concurrency the partial unique index is the backstop and
// surfaces as the same conflict.
func (l lifecycle) Apply(ctx context.Context,
	applicantID domain.UserID,
	jobID domain.JobID) (*domain.Application, error) {
	job, err := l.storage.JobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("could not look up job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}
	if time.Now().After(job.ApplicationDeadline) {
		return nil, serrors.With(serrors.ErrBadRequest, "application deadline has passed")
	}

	var app *domain.Application
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		applied, err := tx.HasApplied(ctx, applicantID, jobID)
		if err != nil {
			return fmt.Errorf("could not check existing application: %w", err)
		}
		if applied {
			return serrors.With(serrors.ErrConflict, "already applied to this job")
		}

		app, err = tx.StoreApplication(ctx, domain.Application{
			ApplicantID: applicantID,
			JobID:       jobID,
			Status:      domain.ApplicationStatusApplied,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.With(serrors.ErrConflict, "already applied to this job")
			}

			return fmt.Errorf("could not store application: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not apply: %w", err)
	}

	metrics.ApplicationsSubmitted.Inc()

	return app, nil
}

// Withdraw moves the applicant's own application to WITHDRAWN. Zero affected
// rows collapses "does not exist", "not yours" and "already settled" into a
// single not-found answer.
func (l lifecycle) Withdraw(ctx context.Context,
	applicantID domain.UserID,
	applicationID domain.ApplicationID) error {
	affected, err := l.storage.WithdrawApplication(ctx, applicationID, applicantID)
	if err != nil {
		return fmt.Errorf("could not withdraw application: %w", err)
	}
	if !affected {
		return serrors.With(serrors.ErrNotFound, "application not found")
	}

	metrics.StatusTransitions.WithLabelValues(string(domain.ApplicationStatusWithdrawn)).Inc()

	return nil
}

// HasApplied reports whether a live application exists for the pair.
func (l lifecycle) HasApplied(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) (bool, error) {
	applied, err := l.storage.HasApplied(ctx, applicantID, jobID)
	if err != nil {
		return false, fmt.Errorf("could not check application: %w", err)
	}

	return applied, nil
}

// Applications lists the applicant's applications, optionally filtered.
func (l lifecycle) Applications(ctx context.Context,
	applicantID domain.UserID,
	status domain.ApplicationStatus) ([]storage.ApplicationSummary, error) {
	if status != "" && !status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown application status %q", status)
	}

	summaries, err := l.storage.ApplicationsByApplicant(ctx, applicantID, status)
	if err != nil {
		return nil, fmt.Errorf("could not list applications: %w", err)
	}

	return summaries, nil
}

// transition runs a recruiter-initiated status change plus its notification
// enqueue in one transaction. The status update refuses terminal rows, so a
// settled application never produces a second email.
func (l lifecycle) transition(ctx context.Context,
	recruiterID domain.UserID,
	jobID domain.JobID,
	applicantID domain.UserID,
	status domain.ApplicationStatus,
	kind NotificationKind) error {
	recruiter, err := l.storage.RecruiterByUserID(ctx, recruiterID)
	if err != nil {
		return fmt.Errorf("could not look up recruiter: %w", err)
	}
	if recruiter == nil {
		return serrors.With(serrors.ErrNotFound, "recruiter not found")
	}

	job, err := l.storage.JobByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("could not look up job: %w", err)
	}
	// jobs of other companies look exactly like missing jobs
	if job == nil || job.CompanyID != recruiter.Company.ID {
		return serrors.With(serrors.ErrNotFound, "job not found")
	}

	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		affected, err := tx.UpdateApplicationStatus(ctx, jobID, applicantID, status)
		if err != nil {
			return fmt.Errorf("could not update application status: %w", err)
		}
		if !affected {
			return serrors.With(serrors.ErrNotFound, "application not found")
		}

		if _, err := tx.AddJob(ctx, NotificationArgs{
			JobID:            uuid.UUID(jobID),
			ApplicantID:      uuid.UUID(applicantID),
			NotificationKind: kind,
			maxAttempts:      l.options.NotifierMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not enqueue notification: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not transition application: %w", err)
	}

	metrics.StatusTransitions.WithLabelValues(string(status)).Inc()

	return nil
}

// Reject declines the application and enqueues the rejection email.
func (l lifecycle) Reject(ctx context.Context,
	recruiterID domain.UserID,
	jobID domain.JobID,
	applicantID domain.UserID) error {
	return l.transition(ctx, recruiterID, jobID, applicantID,
		domain.ApplicationStatusRejected, NotificationRejection)
}

// ScheduleInterview invites the applicant and enqueues the invitation email.
func (l lifecycle) ScheduleInterview(ctx context.Context,
	recruiterID domain.UserID,
	jobID domain.JobID,
	applicantID domain.UserID) error {
	return l.transition(ctx, recruiterID, jobID, applicantID,
		domain.ApplicationStatusInterview, NotificationInterview)
}

// SaveJob bookmarks a job.
func (l lifecycle) SaveJob(ctx context.Context,
	applicantID domain.UserID,
	jobID domain.JobID) (*domain.SavedJob, error) {
	job, err := l.storage.JobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("could not look up job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	saved, err := l.storage.StoreSavedJob(ctx, applicantID, jobID)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.With(serrors.ErrConflict, "job already saved")
		}

		return nil, fmt.Errorf("could not save job: %w", err)
	}

	return saved, nil
}

// UnsaveJob removes a bookmark.
func (l lifecycle) UnsaveJob(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) error {
	affected, err := l.storage.DeleteSavedJob(ctx, applicantID, jobID)
	if err != nil {
		return fmt.Errorf("could not unsave job: %w", err)
	}
	if !affected {
		return serrors.With(serrors.ErrNotFound, "saved job not found")
	}

	return nil
}

// IsJobSaved reports whether the bookmark exists.
func (l lifecycle) IsJobSaved(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) (bool, error) {
	saved, err := l.storage.JobSaved(ctx, applicantID, jobID)
	if err != nil {
		return false, fmt.Errorf("could not check saved job: %w", err)
	}

	return saved, nil
}

// SavedJobs lists the applicant's bookmarks.
func (l lifecycle) SavedJobs(ctx context.Context,
	applicantID domain.UserID) ([]storage.SavedJobSummary, error) {
	list, err := l.storage.SavedJobsByApplicant(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("could not list saved jobs: %w", err)
	}

	return list, nil
}
