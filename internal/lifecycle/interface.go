package lifecycle

import (
	"context"

	"careerbridge/pkg/domain"
	"careerbridge/pkg/storage"
)

//go:generate mockgen -package mocklifecycle -source=interface.go -destination=mock/mocklifecycle.go *
type Lifecycle interface {
	// Apply submits an application for a job. A second live application for
	// the same job is a conflict; a withdrawn one does not block re-applying.
	Apply(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) (*domain.Application, error)
	// Withdraw moves the applicant's own application to WITHDRAWN. Missing,
	// foreign and already-terminal applications are indistinguishable.
	Withdraw(ctx context.Context, applicantID domain.UserID, applicationID domain.ApplicationID) error
	// HasApplied reports whether a live application exists for the pair.
	HasApplied(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) (bool, error)
	// Applications lists the applicant's applications newest first, optionally
	// filtered by status.
	Applications(ctx context.Context,
		applicantID domain.UserID,
		status domain.ApplicationStatus) ([]storage.ApplicationSummary, error)

	// Reject declines the application for (job, applicant) on behalf of a
	// recruiter of the job's company and enqueues a rejection email.
	Reject(ctx context.Context, recruiterID domain.UserID, jobID domain.JobID, applicantID domain.UserID) error
	// ScheduleInterview invites the applicant to interview and enqueues an
	// invitation email.
	ScheduleInterview(ctx context.Context,
		recruiterID domain.UserID,
		jobID domain.JobID,
		applicantID domain.UserID) error

	// SaveJob bookmarks a job for later. Saving twice is a conflict.
	SaveJob(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) (*domain.SavedJob, error)
	// UnsaveJob removes a bookmark.
	UnsaveJob(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) error
	// IsJobSaved reports whether the bookmark exists.
	IsJobSaved(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) (bool, error)
	// SavedJobs lists the applicant's bookmarks newest first.
	SavedJobs(ctx context.Context, applicantID domain.UserID) ([]storage.SavedJobSummary, error)
}
