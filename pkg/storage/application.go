package storage

import (
	"context"
	"time"

	"careerbridge/pkg/domain"
)

// ApplicationSummary is one row of an applicant's application list, joined
// with the job and company it targets.
type ApplicationSummary struct {
	Application domain.Application

	JobTitle      string
	PositionType  string
	WorkplaceType string
	Compensation  string
	Deadline      time.Time

	CompanyName string
	Industry    string
}

// SavedJobSummary is one row of an applicant's saved-jobs list.
type SavedJobSummary struct {
	SavedJob domain.SavedJob

	JobTitle      string
	PositionType  string
	WorkplaceType string
	Compensation  string
	Deadline      time.Time

	CompanyName string
	Industry    string
}

// NotificationDetails carries everything needed to address and render a
// status-change email: the applicant's name and address plus the job title
// and company name the application targets.
type NotificationDetails struct {
	ApplicantName  string
	ApplicantEmail string
	JobTitle       string
	CompanyName    string
}

// ApplicationStorage defines persistence operations for applications and
// saved-job bookmarks.
type ApplicationStorage interface {
	// HasApplied reports whether a non-withdrawn application exists for the
	// (applicant, job) pair.
	HasApplied(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) (bool, error)
	// StoreApplication inserts a new application and returns the stored row.
	// A second non-withdrawn application for the same pair surfaces as
	// ErrDuplicate via the partial unique index.
	StoreApplication(ctx context.Context, app domain.Application) (*domain.Application, error)
	// WithdrawApplication moves the application to WITHDRAWN when it is owned
	// by the applicant and not already terminal. Reports whether a row was
	// affected; ownership and existence are deliberately indistinguishable.
	WithdrawApplication(ctx context.Context, id domain.ApplicationID, applicantID domain.UserID) (bool, error)
	// UpdateApplicationStatus transitions the application matching the
	// (job, applicant) pair to status, guarded so terminal states are never
	// re-entered. Reports whether a row was affected.
	UpdateApplicationStatus(ctx context.Context, jobID domain.JobID, applicantID domain.UserID, status domain.ApplicationStatus) (bool, error)
	// ApplicationsByApplicant lists the applicant's applications newest
	// first, optionally filtered by status (empty = all).
	ApplicationsByApplicant(ctx context.Context, applicantID domain.UserID, status domain.ApplicationStatus) ([]ApplicationSummary, error)

	// StoreSavedJob inserts a bookmark. A duplicate pair surfaces as ErrDuplicate.
	StoreSavedJob(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) (*domain.SavedJob, error)
	// DeleteSavedJob removes a bookmark, reporting whether a row existed.
	DeleteSavedJob(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) (bool, error)
	// JobSaved reports whether the bookmark exists.
	JobSaved(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) (bool, error)
	// SavedJobsByApplicant lists the applicant's bookmarks newest first.
	SavedJobsByApplicant(ctx context.Context, applicantID domain.UserID) ([]SavedJobSummary, error)

	// NotificationDetails resolves the email payload for the application
	// matching the (job, applicant) pair. Returns nil when no such
	// application exists.
	NotificationDetails(ctx context.Context, jobID domain.JobID, applicantID domain.UserID) (*NotificationDetails, error)
}
