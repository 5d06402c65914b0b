// Package profile manages applicant accounts and their owned profile
// sections. Skills, experience and education are replaced wholesale inside
// one transaction; a failed replacement leaves the previous profile intact.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careerbridge/pkg/credentials"
	"careerbridge/pkg/domain"
	"careerbridge/pkg/serrors"
	"careerbridge/pkg/storage"
)

type profile struct {
	storage storage.Storage
	hasher  credentials.Hasher
}

// New creates a new Profile service backed by the provided storage and
// credential hasher.
func New(storage storage.Storage, hasher credentials.Hasher) Profile {
	return &profile{
		storage: storage,
		hasher:  hasher,
	}
}

// Register creates an applicant account: the identity row and the applicant
// extension land in one transaction.
func (p profile) Register(ctx context.Context, req RegisterRequest) (*storage.ApplicantProfile, error) {
	switch {
	case strings.TrimSpace(req.FirstName) == "":
		return nil, serrors.With(serrors.ErrBadRequest, "first name is required")
	case strings.TrimSpace(req.LastName) == "":
		return nil, serrors.With(serrors.ErrBadRequest, "last name is required")
	case strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@"):
		return nil, serrors.With(serrors.ErrBadRequest, "a valid email is required")
	case req.Credential == "":
		return nil, serrors.With(serrors.ErrBadRequest, "credential is required")
	}

	hash, err := p.hasher.Hash(req.Credential)
	if err != nil {
		return nil, fmt.Errorf("could not hash credential: %w", err)
	}

	var userID domain.UserID
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.UserByEmail(ctx, req.Email)
		if err != nil {
			return fmt.Errorf("could not check email: %w", err)
		}
		if existing != nil {
			return serrors.With(serrors.ErrConflict, "email already registered")
		}

		user, err := tx.StoreUser(ctx, domain.User{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			PhoneNumber:    req.PhoneNumber,
			Email:          req.Email,
			CredentialHash: hash,
			Role:           domain.RoleApplicant,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.With(serrors.ErrConflict, "email already registered")
			}

			return fmt.Errorf("could not store user: %w", err)
		}
		userID = user.ID

		if err := tx.StoreApplicant(ctx, domain.Applicant{
			UserID:     user.ID,
			ResumeLink: req.ResumeLink,
		}); err != nil {
			return fmt.Errorf("could not store applicant: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not register applicant: %w", err)
	}

	return p.Get(ctx, userID)
}

func (b BasicInfo) updates() storage.ApplicantUpdates {
	return storage.ApplicantUpdates{
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		PhoneNumber: b.PhoneNumber,
		Email:       b.Email,
		ResumeLink:  b.ResumeLink,
	}
}

func validateExperience(entries []domain.Experience) error {
	for i := range entries {
		if strings.TrimSpace(entries[i].Employer) == "" || strings.TrimSpace(entries[i].Title) == "" {
			return serrors.With(serrors.ErrBadRequest, "experience entries need an employer and a title")
		}
		if entries[i].StartDate.IsZero() {
			return serrors.With(serrors.ErrBadRequest, "experience entries need a start date")
		}
		// an ongoing role has no end date, whatever the input claims
		if entries[i].Current {
			entries[i].EndDate = nil
		}
	}

	return nil
}

func validateEducation(entries []domain.Education) error {
	for i := range entries {
		if strings.TrimSpace(entries[i].Institution) == "" || strings.TrimSpace(entries[i].Degree) == "" {
			return serrors.With(serrors.ErrBadRequest, "education entries need an institution and a degree")
		}
		if entries[i].StartDate.IsZero() {
			return serrors.With(serrors.ErrBadRequest, "education entries need a start date")
		}
	}

	return nil
}

// Sync applies the patch and section replacements in one transaction and
// returns the composed profile read inside that same transaction.
func (p profile) Sync(ctx context.Context,
	userID domain.UserID,
	req SyncRequest) (*storage.ApplicantProfile, error) {
	if req.BasicInfo.Email != nil && !strings.Contains(*req.BasicInfo.Email, "@") {
		return nil, serrors.With(serrors.ErrBadRequest, "a valid email is required")
	}
	if err := validateExperience(req.Experience); err != nil {
		return nil, err
	}
	if err := validateEducation(req.Education); err != nil {
		return nil, err
	}

	var result *storage.ApplicantProfile
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updates := req.BasicInfo.updates()
		if !updates.Empty() {
			affected, err := tx.UpdateApplicantInfo(ctx, userID, updates)
			if err != nil {
				if errors.Is(err, storage.ErrDuplicate) {
					return serrors.With(serrors.ErrConflict, "email already registered")
				}

				return fmt.Errorf("could not update basic info: %w", err)
			}
			if !affected {
				return serrors.With(serrors.ErrNotFound, "applicant not found")
			}
		}

		if req.Skills != nil {
			if err := tx.ReplaceSkills(ctx, userID, req.Skills); err != nil {
				return fmt.Errorf("could not replace skills: %w", err)
			}
		}
		if req.Experience != nil {
			if err := tx.ReplaceExperience(ctx, userID, req.Experience); err != nil {
				return fmt.Errorf("could not replace experience: %w", err)
			}
		}
		if req.Education != nil {
			if err := tx.ReplaceEducation(ctx, userID, req.Education); err != nil {
				return fmt.Errorf("could not replace education: %w", err)
			}
		}

		res, err := tx.ApplicantProfile(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not read profile: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "applicant not found")
		}
		result = res

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not sync profile: %w", err)
	}

	return result, nil
}

// Get fetches the composed applicant profile, returning a not-found error
// when the user has no applicant record.
func (p profile) Get(ctx context.Context, userID domain.UserID) (*storage.ApplicantProfile, error) {
	res, err := p.storage.ApplicantProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get applicant profile: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "applicant not found")
	}

	return res, nil
}
