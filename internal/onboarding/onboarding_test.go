package onboarding_test

import (
	"context"
	"errors"
	"testing"

	"careerbridge/internal/onboarding"
	"careerbridge/pkg/credentials"
	"careerbridge/pkg/domain"
	"careerbridge/pkg/serrors"
	"careerbridge/pkg/storage"
	mockstorage "careerbridge/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func validRequest() onboarding.OnboardRequest {
	return onboarding.OnboardRequest{
		FirstName:  "Grace",
		LastName:   "Hopper",
		Email:      "grace@example.com",
		Credential: "correct horse battery staple",
		Company:    onboarding.CompanyInput{Name: "Acme Corp", Industry: "software"},
	}
}

func newTestOnboarding(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, onboarding.Onboarding) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	o := onboarding.New(st, credentials.NewBcrypt(4))

	return ctrl, st, o
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestOnboarding_OnboardCompany_NewCompany(t *testing.T) {
	ctrl, st, o := newTestOnboarding(t)

	req := validRequest()
	req.Address = &onboarding.AddressInput{City: "Portland", Country: "US"}
	userID := domain.UserID(uuid.New())
	companyID := domain.CompanyID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserByEmail(gomock.Any(), req.Email).Return(nil, nil)
		tx.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user domain.User) (*domain.User, error) {
				if user.Role != domain.RoleRecruiter {
					t.Fatalf("expected RECRUITER role, got %s", user.Role)
				}
				if user.CredentialHash == req.Credential || user.CredentialHash == "" {
					t.Fatalf("expected hashed credential")
				}
				user.ID = userID

				return &user, nil
			},
		)
		tx.EXPECT().CompanyByName(gomock.Any(), req.Company.Name).Return(nil, nil)
		tx.EXPECT().StoreCompany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, company domain.Company) (*domain.Company, error) {
				company.ID = companyID

				return &company, nil
			},
		)
		tx.EXPECT().StoreCompanyAddress(gomock.Any(), companyID, gomock.Any()).Return(&domain.Address{}, nil)
		tx.EXPECT().StoreRecruiter(gomock.Any(), userID, companyID).Return(nil)
	})
	st.EXPECT().RecruiterByUserID(gomock.Any(), userID).Return(&storage.RecruiterProfile{
		User:    domain.User{ID: userID, Email: req.Email},
		Company: domain.Company{ID: companyID, Name: req.Company.Name},
	}, nil)

	profile, err := o.OnboardCompany(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Company.Name != req.Company.Name {
		t.Fatalf("expected company %q, got %q", req.Company.Name, profile.Company.Name)
	}
}

func TestOnboarding_OnboardCompany_ExistingCompanyReused(t *testing.T) {
	ctrl, st, o := newTestOnboarding(t)

	req := validRequest()
	// the address is ignored when the company already exists
	req.Address = &onboarding.AddressInput{City: "Berlin", Country: "DE"}
	userID := domain.UserID(uuid.New())
	companyID := domain.CompanyID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserByEmail(gomock.Any(), req.Email).Return(nil, nil)
		tx.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user domain.User) (*domain.User, error) {
				user.ID = userID

				return &user, nil
			},
		)
		tx.EXPECT().CompanyByName(gomock.Any(), req.Company.Name).
			Return(&domain.Company{ID: companyID, Name: req.Company.Name}, nil)
		tx.EXPECT().StoreCompany(gomock.Any(), gomock.Any()).Times(0)
		tx.EXPECT().StoreCompanyAddress(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		tx.EXPECT().StoreRecruiter(gomock.Any(), userID, companyID).Return(nil)
	})
	st.EXPECT().RecruiterByUserID(gomock.Any(), userID).Return(&storage.RecruiterProfile{
		User:    domain.User{ID: userID},
		Company: domain.Company{ID: companyID, Name: req.Company.Name},
	}, nil)

	if _, err := o.OnboardCompany(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOnboarding_OnboardCompany_EmailTaken(t *testing.T) {
	ctrl, st, o := newTestOnboarding(t)
	req := validRequest()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserByEmail(gomock.Any(), req.Email).Return(&domain.User{Email: req.Email}, nil)
	})

	_, err := o.OnboardCompany(context.Background(), req)
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestOnboarding_OnboardCompany_DuplicateRace(t *testing.T) {
	ctrl, st, o := newTestOnboarding(t)
	req := validRequest()

	// the pre-insert read saw nothing but the unique index fired
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserByEmail(gomock.Any(), req.Email).Return(nil, nil)
		tx.EXPECT().StoreUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)
	})

	_, err := o.OnboardCompany(context.Background(), req)
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestOnboarding_OnboardCompany_CompanyNameRace(t *testing.T) {
	ctrl, st, o := newTestOnboarding(t)
	req := validRequest()
	userID := domain.UserID(uuid.New())

	// the lookup saw nothing but a concurrent registrant hit the
	// lower-name index first
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserByEmail(gomock.Any(), req.Email).Return(nil, nil)
		tx.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user domain.User) (*domain.User, error) {
				user.ID = userID

				return &user, nil
			},
		)
		tx.EXPECT().CompanyByName(gomock.Any(), req.Company.Name).Return(nil, nil)
		tx.EXPECT().StoreCompany(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)
		tx.EXPECT().StoreRecruiter(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	})

	_, err := o.OnboardCompany(context.Background(), req)
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestOnboarding_OnboardCompany_Validation(t *testing.T) {
	_, st, o := newTestOnboarding(t)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

	bad := []func(*onboarding.OnboardRequest){
		func(r *onboarding.OnboardRequest) { r.FirstName = " " },
		func(r *onboarding.OnboardRequest) { r.LastName = "" },
		func(r *onboarding.OnboardRequest) { r.Email = "not-an-email" },
		func(r *onboarding.OnboardRequest) { r.Credential = "" },
		func(r *onboarding.OnboardRequest) { r.Company.Name = "  " },
	}
	for _, mutate := range bad {
		req := validRequest()
		mutate(&req)
		if _, err := o.OnboardCompany(context.Background(), req); !errors.Is(err, serrors.ErrBadRequest) {
			t.Fatalf("expected ErrBadRequest for %+v, got %v", req, err)
		}
	}
}

func TestOnboarding_Profile(t *testing.T) {
	_, st, o := newTestOnboarding(t)
	userID := domain.UserID(uuid.New())

	// found
	st.EXPECT().RecruiterByUserID(gomock.Any(), userID).Return(&storage.RecruiterProfile{
		User: domain.User{ID: userID},
	}, nil)
	profile, err := o.Profile(context.Background(), userID)
	if err != nil || profile == nil {
		t.Fatalf("unexpected: profile=%+v err=%v", profile, err)
	}

	// not found
	st.EXPECT().RecruiterByUserID(gomock.Any(), userID).Return(nil, nil)
	_, err = o.Profile(context.Background(), userID)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// storage error
	st.EXPECT().RecruiterByUserID(gomock.Any(), userID).Return(nil, errors.New("boom"))
	if _, err := o.Profile(context.Background(), userID); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
