package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompanyID uniquely identifies a company.
type CompanyID uuid.UUID

// Company is the organization record recruiters are bound to. Company names
// are soft-unique: onboarding matches case-insensitively and reuses an
// existing company rather than creating a duplicate.
type Company struct {
	ID CompanyID `json:"id"`

	Name     string `json:"name"`
	Overview string `json:"overview"`
	Industry string `json:"industry"`
	// SizeTier is a coarse headcount bracket such as "11-50".
	SizeTier string `json:"sizeTier"`

	CreatedAt time.Time `json:"createdAt"`
}

// AddressID uniquely identifies a postal address.
type AddressID uuid.UUID

// Address is a postal location owned by exactly one company. It is created
// only when a new company is created; when onboarding reuses an existing
// company, the first registrant's address wins.
type Address struct {
	ID AddressID `json:"id"`

	Street  string `json:"street"`
	City    string `json:"city"`
	County  string `json:"county"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Recruiter links a user to a company. Many recruiters may share a company;
// a recruiter belongs to one company at a time.
type Recruiter struct {
	UserID    UserID    `json:"userId"`
	CompanyID CompanyID `json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
}
