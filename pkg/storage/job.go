package storage

import (
	"context"

	"careerbridge/pkg/domain"
)

// JobStorage defines persistence operations for job postings.
type JobStorage interface {
	// StoreJob inserts a posting together with its skill requirements,
	// finding-or-creating each skill by name. Returns the stored row.
	StoreJob(ctx context.Context, job domain.Job, skillNames []string) (*domain.Job, error)
	// JobByID fetches a posting by id. Returns nil when not found.
	JobByID(ctx context.Context, id domain.JobID) (*domain.Job, error)
}
