package storage

import (
	"context"

	"careerbridge/pkg/domain"
)

// ApplicantUpdates describes the optional basic-info fields that can be
// patched on an applicant's identity row. Only non-nil fields are applied.
type ApplicantUpdates struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Email       *string
	ResumeLink  *string
}

// Empty reports whether the patch carries no fields at all.
func (u ApplicantUpdates) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.PhoneNumber == nil &&
		u.Email == nil && u.ResumeLink == nil
}

// ApplicantProfile is the composed read model returned after a profile sync:
// basic info plus the full owned child sets.
type ApplicantProfile struct {
	User       domain.User
	ResumeLink string

	Skills     []string
	Experience []domain.Experience
	Education  []domain.Education
}

// ApplicantStorage defines persistence operations for applicant profiles.
// The Replace* operations implement replace-all semantics: they delete the
// full existing child set for the applicant and insert the provided set, so
// an empty slice means "remove everything".
type ApplicantStorage interface {
	// StoreApplicant inserts the applicant extension row for an existing user.
	StoreApplicant(ctx context.Context, applicant domain.Applicant) error
	// UpdateApplicantInfo applies a partial basic-info patch. It reports
	// whether a row was updated.
	UpdateApplicantInfo(ctx context.Context, id domain.UserID, updates ApplicantUpdates) (bool, error)
	// ReplaceSkills replaces the applicant's skill links with the given skill
	// names, finding-or-creating each skill by its natural key.
	ReplaceSkills(ctx context.Context, id domain.UserID, names []string) error
	// ReplaceExperience replaces all experience rows for the applicant.
	ReplaceExperience(ctx context.Context, id domain.UserID, entries []domain.Experience) error
	// ReplaceEducation replaces all education rows for the applicant.
	ReplaceEducation(ctx context.Context, id domain.UserID, entries []domain.Education) error
	// ApplicantProfile fetches the composed profile. Returns nil when the
	// user is not an applicant.
	ApplicantProfile(ctx context.Context, id domain.UserID) (*ApplicantProfile, error)
}
