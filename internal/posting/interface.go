package posting

import (
	"context"
	"time"

	"careerbridge/pkg/domain"
)

// JobRequest is the payload for creating a job posting.
type JobRequest struct {
	Title            string
	AboutRole        string
	Requirements     string
	Benefits         string
	Responsibilities string
	Compensation     string

	PositionType  string
	WorkplaceType string
	ClassLevel    string

	ApplicationDeadline time.Time
	Skills              []string
}

//go:generate mockgen -package mockposting -source=interface.go -destination=mock/mockposting.go *
type Posting interface {
	// Create stores a job posting owned by the recruiter's company together
	// with its skill requirements.
	Create(ctx context.Context, recruiterID domain.UserID, req JobRequest) (*domain.Job, error)
	// Get fetches a posting by id.
	Get(ctx context.Context, id domain.JobID) (*domain.Job, error)
}
