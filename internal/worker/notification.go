package worker

import (
	"context"
	"fmt"

	"careerbridge/internal/lifecycle"
	"careerbridge/internal/mail"
	"careerbridge/pkg/domain"
	"careerbridge/pkg/logger"
	"careerbridge/pkg/metrics"
	"careerbridge/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NotificationWorker is a River worker that delivers status-change emails.
// The job row was inserted in the same transaction as the status transition,
// so by the time Work runs the transition is committed. Delivery failures are
// logged and returned so River retries them up to the job's MaxAttempts;
// they never affect the committed transition.
type NotificationWorker struct {
	river.WorkerDefaults[lifecycle.NotificationArgs]

	// storage resolves the recipient and job details at dispatch time, so
	// renamed jobs or updated email addresses are picked up.
	storage storage.Storage
	// mailer performs the actual delivery.
	mailer mail.Mailer
}

// NewNotificationWorker constructs a NotificationWorker using the provided
// storage and mailer.
func NewNotificationWorker(storage storage.Storage, mailer mail.Mailer) *NotificationWorker {
	return &NotificationWorker{
		storage: storage,
		mailer:  mailer,
	}
}

// Work delivers a single notification email.
func (n *NotificationWorker) Work(ctx context.Context, job *river.Job[lifecycle.NotificationArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("kind", string(job.Args.NotificationKind)),
		zap.String("applicantID", job.Args.ApplicantID.String()))

	details, err := n.storage.NotificationDetails(ctx,
		domain.JobID(job.Args.JobID),
		domain.UserID(job.Args.ApplicantID))
	if err != nil {
		logger.Error(ctx, "error resolving notification details", zap.Error(err))

		return fmt.Errorf("could not resolve notification details: %w", err)
	}
	// the application disappeared between commit and dispatch; nothing to send
	if details == nil {
		return river.JobCancel(fmt.Errorf("application no longer exists")) //nolint: wrapcheck
	}

	var email mail.Email
	switch job.Args.NotificationKind {
	case lifecycle.NotificationRejection:
		email = mail.RenderRejection(details.ApplicantName, details.ApplicantEmail,
			details.JobTitle, details.CompanyName)
	case lifecycle.NotificationInterview:
		email = mail.RenderInterview(details.ApplicantName, details.ApplicantEmail,
			details.JobTitle, details.CompanyName)
	default:
		return river.JobCancel(fmt.Errorf("unknown notification kind %q", job.Args.NotificationKind)) //nolint: wrapcheck
	}

	if err := n.mailer.Send(ctx, email); err != nil {
		metrics.NotificationsSent.WithLabelValues(string(job.Args.NotificationKind), "error").Inc()
		logger.Error(ctx, "error sending notification email", zap.Error(err))

		return fmt.Errorf("could not send notification email: %w", err)
	}

	metrics.NotificationsSent.WithLabelValues(string(job.Args.NotificationKind), "ok").Inc()
	logger.Info(ctx, "notification email sent")

	return nil
}
