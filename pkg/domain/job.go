package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobID uniquely identifies a job posting.
type JobID uuid.UUID

// Job is a posting owned by a company. Skill requirements live in a
// many-to-many relation keyed by skill name.
type Job struct {
	ID        JobID     `json:"id"`
	CompanyID CompanyID `json:"companyId"`

	Title            string `json:"title"`
	AboutRole        string `json:"aboutRole"`
	Requirements     string `json:"requirements"`
	Benefits         string `json:"benefits"`
	Responsibilities string `json:"responsibilities"`
	Compensation     string `json:"compensation"`

	PositionType  string `json:"positionType"`
	WorkplaceType string `json:"workplaceType"`
	ClassLevel    string `json:"classLevel"`

	ApplicationDeadline time.Time `json:"applicationDeadline"`
	CreatedAt           time.Time `json:"createdAt"`
}
