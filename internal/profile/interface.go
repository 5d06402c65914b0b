package profile

import (
	"context"

	"careerbridge/pkg/domain"
	"careerbridge/pkg/storage"
)

// RegisterRequest is the payload for creating an applicant account.
type RegisterRequest struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Credential  string
	ResumeLink  string
}

// BasicInfo is the partial identity patch of a sync request. Only non-nil
// fields are applied.
type BasicInfo struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Email       *string
	ResumeLink  *string
}

// SyncRequest replaces parts of an applicant profile. The slice sections
// follow replace-all semantics: nil leaves the section untouched, an empty
// slice deletes everything in it.
type SyncRequest struct {
	BasicInfo  BasicInfo
	Skills     []string
	Experience []domain.Experience
	Education  []domain.Education
}

//go:generate mockgen -package mockprofile -source=interface.go -destination=mock/mockprofile.go *
type Profile interface {
	// Register creates an applicant account and returns the composed profile.
	Register(ctx context.Context, req RegisterRequest) (*storage.ApplicantProfile, error)
	// Sync applies a partial basic-info patch and replaces the provided
	// profile sections atomically, then returns the profile as stored.
	Sync(ctx context.Context, userID domain.UserID, req SyncRequest) (*storage.ApplicantProfile, error)
	// Get fetches the composed applicant profile.
	Get(ctx context.Context, userID domain.UserID) (*storage.ApplicantProfile, error)
}
