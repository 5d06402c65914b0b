package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// QueueStorage defines the minimal interface for enqueueing background jobs,
// used here as the transactional outbox for notification dispatch: the job
// insert participates in the surrounding transaction, so a notification is
// enqueued if and only if the state transition commits.
type QueueStorage interface {
	// AddJob enqueues a new job with the given arguments. It is atomic with
	// respect to any surrounding transaction. The bool result reports whether
	// a job was actually inserted (false when deduplicated as a unique job).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
