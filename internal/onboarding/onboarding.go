// Package onboarding registers recruiters together with their organizations.
// The whole registration is a single transaction: either the user, the
// company binding and the optional address all land, or none of them do.
package onboarding

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

// onboarding is the concrete implementation of the Onboarding interface.
type onboarding struct {
	storage storage.Storage
	hasher  credentials.Hasher
}

// New creates a new Onboarding service backed by the provided storage and
// credential hasher.
func New(storage storage.Storage, hasher credentials.Hasher) Onboarding {
	return &onboarding{
		storage: storage,
		hasher:  hasher,
	}
}

func (o onboarding) validate(req OnboardRequest) error {
	switch {
	case strings.TrimSpace(req.FirstName) == "":
		return serrors.With(serrors.ErrBadRequest, "first name is required")
	case strings.TrimSpace(req.LastName) == "":
		return serrors.With(serrors.ErrBadRequest, "last name is required")
	case strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@"):
		return serrors.With(serrors.ErrBadRequest, "a valid email is required")
	case req.Credential == "":
		return serrors.With(serrors.ErrBadRequest, "credential is required")
	case strings.TrimSpace(req.Company.Name) == "":
		return serrors.With(serrors.ErrBadRequest, "company name is required")
	}

	return nil
}

// OnboardCompany registers a recruiter and binds them to a company. Company
// matching is case-insensitive on the exact name: when a company already
// exists it is reused and the submitted overview, size and address are
// ignored, so the first registrant's details win.
func (o onboarding) OnboardCompany(ctx context.Context, req OnboardRequest) (*storage.RecruiterProfile, error) {
	if err := o.validate(req); err != nil {
		return nil, err
	}

	hash, err := o.hasher.Hash(req.Credential)
	if err != nil {
		return nil, fmt.Errorf("could not hash credential: %w", err)
	}

	var userID domain.UserID
	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
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
			Role:           domain.RoleRecruiter,
		})
		if err != nil {
			// the unique index backstops the read above under concurrency
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.With(serrors.ErrConflict, "email already registered")
			}

			return fmt.Errorf("could not store user: %w", err)
		}
		userID = user.ID

		company, err := tx.CompanyByName(ctx, req.Company.Name)
		if err != nil {
			return fmt.Errorf("could not look up company: %w", err)
		}
		if company == nil {
			company, err = tx.StoreCompany(ctx, domain.Company{
				Name:     req.Company.Name,
				Overview: req.Company.Overview,
				Industry: req.Company.Industry,
				SizeTier: req.Company.SizeTier,
			})
			if err != nil {
				// a concurrent registrant created the company between the
				// lookup and the insert; the lower-name index catches it
				if errors.Is(err, storage.ErrDuplicate) {
					return serrors.With(serrors.ErrConflict, "company was just registered, retry")
				}

				return fmt.Errorf("could not store company: %w", err)
			}

			if req.Address != nil {
				if _, err := tx.StoreCompanyAddress(ctx, company.ID, domain.Address{
					Street:  req.Address.Street,
					City:    req.Address.City,
					County:  req.Address.County,
					State:   req.Address.State,
					Country: req.Address.Country,
				}); err != nil {
					return fmt.Errorf("could not store company address: %w", err)
				}
			}
		}

		if err := tx.StoreRecruiter(ctx, user.ID, company.ID); err != nil {
			return fmt.Errorf("could not bind recruiter to company: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not onboard company: %w", err)
	}

	return o.Profile(ctx, userID)
}

// Profile fetches the composed recruiter profile, returning a not-found
// error when the user is not a recruiter.
func (o onboarding) Profile(ctx context.Context, userID domain.UserID) (*storage.RecruiterProfile, error) {
	profile, err := o.storage.RecruiterByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get recruiter profile: %w", err)
	}
	if profile == nil {
		return nil, serrors.With(serrors.ErrNotFound, "recruiter not found")
	}

	return profile, nil
}
