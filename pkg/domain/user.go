package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// Role distinguishes the two kinds of identities the platform knows about.
type Role string

const (
	// RoleApplicant marks a user who browses and applies to jobs.
	RoleApplicant Role = "APPLICANT"
	// RoleRecruiter marks a user bound to a company who manages postings.
	RoleRecruiter Role = "RECRUITER"
)

// User is the identity record shared by applicants and recruiters.
// A user is created once per email; the unique-email invariant is enforced
// by the store before insert.
type User struct {
	ID UserID `json:"id"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	// CredentialHash is the hashed credential produced by the external
	// credential component. Never the plaintext.
	CredentialHash string `json:"-"`
	Role           Role   `json:"role"`

	// DateOfBirth is optional; zero value means unknown.
	DateOfBirth time.Time `json:"dateOfBirth,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
