package onboarding

import (
	"context"

	"careerbridge/pkg/domain"
	"careerbridge/pkg/storage"
)

// CompanyInput carries the organization details supplied at registration.
type CompanyInput struct {
	Name     string
	Overview string
	Industry string
	SizeTier string
}

// AddressInput carries the optional company address supplied at registration.
type AddressInput struct {
	Street  string
	City    string
	County  string
	State   string
	Country string
}

// OnboardRequest is the full payload for registering a recruiter together
// with their organization.
type OnboardRequest struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Credential  string

	Company CompanyInput
	Address *AddressInput
}

//go:generate mockgen -package mockonboarding -source=interface.go -destination=mock/mockonboarding.go *
type Onboarding interface {
	// OnboardCompany registers a recruiter, finds-or-creates their company
	// and binds them to it, all in one transaction. Returns the composed
	// recruiter profile as stored.
	OnboardCompany(ctx context.Context, req OnboardRequest) (*storage.RecruiterProfile, error)
	// Profile fetches the composed recruiter profile for a user.
	Profile(ctx context.Context, userID domain.UserID) (*storage.RecruiterProfile, error)
}
