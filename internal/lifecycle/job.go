package lifecycle

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// NotificationKind selects the email template a notification job renders.
type NotificationKind string

const (
	// NotificationRejection is sent when a recruiter declines an application.
	NotificationRejection NotificationKind = "REJECTION"
	// NotificationInterview is sent when a recruiter schedules an interview.
	NotificationInterview NotificationKind = "INTERVIEW"
)

// NotificationArgs contains the arguments for a status-notification job
// submitted to River. The job is inserted in the same transaction as the
// status transition, so it exists if and only if the transition committed.
// The payload carries only identifiers; the worker re-reads names and
// addresses at dispatch time.
type NotificationArgs struct {
	JobID            uuid.UUID        `json:"jobId"`
	ApplicantID      uuid.UUID        `json:"applicantId"`
	NotificationKind NotificationKind `json:"kind"`

	// maxAttempts configures the maximum number of times River should retry
	// delivery before discarding the notification.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the
// notification worker.
func (args NotificationArgs) Kind() string { return "StatusNotificationJob" }

// InsertOpts returns the River options controlling how the job is enqueued.
func (args NotificationArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
