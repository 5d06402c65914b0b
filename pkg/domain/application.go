package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationID uniquely identifies a job application.
type ApplicationID uuid.UUID

// ApplicationStatus represents the lifecycle state of an application.
//
// The permitted transitions are:
//
//	APPLIED -> UNDER_REVIEW -> INTERVIEW -> OFFER | REJECTED
//	APPLIED | UNDER_REVIEW | INTERVIEW -> WITHDRAWN (applicant-initiated)
//
// WITHDRAWN, OFFER and REJECTED are terminal; no transition leaves them.
type ApplicationStatus string

const (
	// ApplicationStatusApplied is the initial state set when an applicant applies.
	ApplicationStatusApplied ApplicationStatus = "APPLIED"
	// ApplicationStatusUnderReview indicates a recruiter has started reviewing.
	ApplicationStatusUnderReview ApplicationStatus = "UNDER_REVIEW"
	// ApplicationStatusInterview indicates the applicant was invited to interview.
	ApplicationStatusInterview ApplicationStatus = "INTERVIEW"
	// ApplicationStatusOffer is a terminal state: an offer was extended.
	ApplicationStatusOffer ApplicationStatus = "OFFER"
	// ApplicationStatusRejected is a terminal state: the application was declined.
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
	// ApplicationStatusWithdrawn is a terminal state reached only by applicant action.
	ApplicationStatusWithdrawn ApplicationStatus = "WITHDRAWN"
)

// Terminal reports whether no further transition is permitted out of s.
func (s ApplicationStatus) Terminal() bool {
	switch s {
	case ApplicationStatusOffer, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	default:
		return false
	}
}

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusUnderReview, ApplicationStatusInterview,
		ApplicationStatusOffer, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	default:
		return false
	}
}

// TerminalStatuses returns the set of terminal statuses as strings, in the
// form the store layer needs for NOT IN guards.
func TerminalStatuses() []string {
	return []string{
		string(ApplicationStatusOffer),
		string(ApplicationStatusRejected),
		string(ApplicationStatusWithdrawn),
	}
}

// Application is the join entity between an applicant and a job. At most one
// non-withdrawn application may exist per (applicant, job) pair.
type Application struct {
	ID          ApplicationID `json:"id"`
	ApplicantID UserID        `json:"applicantId"`
	JobID       JobID         `json:"jobId"`

	Status ApplicationStatus `json:"status"`

	AppliedAt time.Time `json:"appliedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SavedJobID uniquely identifies a saved-job bookmark.
type SavedJobID uuid.UUID

// SavedJob is the bookmark relation between an applicant and a job.
// At most one row exists per (applicant, job) pair.
type SavedJob struct {
	ID          SavedJobID `json:"id"`
	ApplicantID UserID     `json:"applicantId"`
	JobID       JobID      `json:"jobId"`

	CreatedAt time.Time `json:"createdAt"`
}
