package storage

import (
	"context"
	"time"

	"careerbridge/pkg/domain"
)

// RecruiterProfile is the composed read model for a recruiter: the identity
// row joined with the bound company and, when one exists, the company's
// address. Decoded once at the store boundary.
type RecruiterProfile struct {
	User    domain.User
	Company domain.Company
	// Address is nil when the company has no linked address.
	Address *domain.Address

	BoundAt time.Time
}

// CompanyStorage defines persistence operations for companies, addresses and
// the recruiter link relation.
type CompanyStorage interface {
	// CompanyByName fetches a company by case-insensitive exact name match.
	// Returns nil when no company matches.
	CompanyByName(ctx context.Context, name string) (*domain.Company, error)
	// StoreCompany inserts a new company and returns the stored row.
	StoreCompany(ctx context.Context, company domain.Company) (*domain.Company, error)
	// StoreCompanyAddress inserts an address and links it to the company.
	StoreCompanyAddress(ctx context.Context, companyID domain.CompanyID, address domain.Address) (*domain.Address, error)
	// StoreRecruiter inserts the recruiter link binding a user to a company.
	StoreRecruiter(ctx context.Context, userID domain.UserID, companyID domain.CompanyID) error
	// RecruiterByUserID fetches the composed recruiter profile for a user.
	// Returns nil when the user is not a recruiter.
	RecruiterByUserID(ctx context.Context, userID domain.UserID) (*RecruiterProfile, error)
}
