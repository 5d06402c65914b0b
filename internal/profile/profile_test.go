package profile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerbridge/internal/profile"
	"careerbridge/pkg/credentials"
	"careerbridge/pkg/domain"
	"careerbridge/pkg/serrors"
	"careerbridge/pkg/storage"
	mockstorage "careerbridge/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newTestProfile(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, profile.Profile) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	p := profile.New(st, credentials.NewBcrypt(4))

	return ctrl, st, p
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

func strPtr(s string) *string { return &s }

func TestProfile_Register(t *testing.T) {
	ctrl, st, p := newTestProfile(t)

	req := profile.RegisterRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		Credential: "engine-of-difference",
		ResumeLink: "https://example.com/ada.pdf",
	}
	userID := domain.UserID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserByEmail(gomock.Any(), req.Email).Return(nil, nil)
		tx.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user domain.User) (*domain.User, error) {
				if user.Role != domain.RoleApplicant {
					t.Fatalf("expected APPLICANT role, got %s", user.Role)
				}
				user.ID = userID

				return &user, nil
			},
		)
		tx.EXPECT().StoreApplicant(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, applicant domain.Applicant) error {
				if applicant.UserID != userID || applicant.ResumeLink != req.ResumeLink {
					t.Fatalf("unexpected applicant: %+v", applicant)
				}

				return nil
			},
		)
	})
	st.EXPECT().ApplicantProfile(gomock.Any(), userID).Return(&storage.ApplicantProfile{
		User:       domain.User{ID: userID, Email: req.Email},
		ResumeLink: req.ResumeLink,
	}, nil)

	got, err := p.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.User.ID != userID {
		t.Fatalf("expected user %s, got %s", uuid.UUID(userID), uuid.UUID(got.User.ID))
	}
}

func TestProfile_Register_EmailTaken(t *testing.T) {
	ctrl, st, p := newTestProfile(t)
	req := profile.RegisterRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		Credential: "engine-of-difference",
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserByEmail(gomock.Any(), req.Email).Return(&domain.User{Email: req.Email}, nil)
	})

	if _, err := p.Register(context.Background(), req); !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestProfile_Sync_FullReplace(t *testing.T) {
	ctrl, st, p := newTestProfile(t)
	userID := domain.UserID(uuid.New())

	end := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	req := profile.SyncRequest{
		BasicInfo: profile.BasicInfo{FirstName: strPtr("Ada"), ResumeLink: strPtr("https://example.com/cv")},
		Skills:    []string{"go", "postgres"},
		Experience: []domain.Experience{
			{Employer: "Analytical Engines", Title: "Programmer", StartDate: end.AddDate(-2, 0, 0), Current: true, EndDate: &end},
		},
		Education: []domain.Education{
			{Institution: "University of London", Degree: "Mathematics", StartDate: end.AddDate(-6, 0, 0)},
		},
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateApplicantInfo(gomock.Any(), userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.UserID, updates storage.ApplicantUpdates) (bool, error) {
				if updates.FirstName == nil || *updates.FirstName != "Ada" {
					t.Fatalf("expected first name patch, got %+v", updates)
				}
				if updates.LastName != nil || updates.Email != nil {
					t.Fatalf("expected untouched fields to stay nil: %+v", updates)
				}

				return true, nil
			},
		)
		tx.EXPECT().ReplaceSkills(gomock.Any(), userID, []string{"go", "postgres"}).Return(nil)
		tx.EXPECT().ReplaceExperience(gomock.Any(), userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.UserID, entries []domain.Experience) error {
				// a current role must not carry an end date
				if entries[0].EndDate != nil {
					t.Fatalf("expected end date to be cleared for current role")
				}

				return nil
			},
		)
		tx.EXPECT().ReplaceEducation(gomock.Any(), userID, req.Education).Return(nil)
		tx.EXPECT().ApplicantProfile(gomock.Any(), userID).Return(&storage.ApplicantProfile{
			User:   domain.User{ID: userID, FirstName: "Ada"},
			Skills: []string{"go", "postgres"},
		}, nil)
	})

	got, err := p.Sync(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %+v", got.Skills)
	}
}

func TestProfile_Sync_NilSectionsUntouched(t *testing.T) {
	ctrl, st, p := newTestProfile(t)
	userID := domain.UserID(uuid.New())

	// only a basic-info patch: no Replace* calls at all
	req := profile.SyncRequest{BasicInfo: profile.BasicInfo{PhoneNumber: strPtr("+15550100")}}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateApplicantInfo(gomock.Any(), userID, gomock.Any()).Return(true, nil)
		tx.EXPECT().ReplaceSkills(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		tx.EXPECT().ReplaceExperience(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		tx.EXPECT().ReplaceEducation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		tx.EXPECT().ApplicantProfile(gomock.Any(), userID).Return(&storage.ApplicantProfile{
			User: domain.User{ID: userID},
		}, nil)
	})

	if _, err := p.Sync(context.Background(), userID, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProfile_Sync_EmptySliceDeletesAll(t *testing.T) {
	ctrl, st, p := newTestProfile(t)
	userID := domain.UserID(uuid.New())

	req := profile.SyncRequest{Skills: []string{}}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		// no basic-info patch, but the empty skill set is still a replacement
		tx.EXPECT().UpdateApplicantInfo(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		tx.EXPECT().ReplaceSkills(gomock.Any(), userID, []string{}).Return(nil)
		tx.EXPECT().ApplicantProfile(gomock.Any(), userID).Return(&storage.ApplicantProfile{
			User: domain.User{ID: userID},
		}, nil)
	})

	if _, err := p.Sync(context.Background(), userID, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProfile_Sync_Validation(t *testing.T) {
	_, st, p := newTestProfile(t)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)
	userID := domain.UserID(uuid.New())

	cases := []profile.SyncRequest{
		{BasicInfo: profile.BasicInfo{Email: strPtr("not-an-email")}},
		{Experience: []domain.Experience{{Title: "Programmer", StartDate: time.Now()}}},
		{Experience: []domain.Experience{{Employer: "Acme", Title: "Programmer"}}},
		{Education: []domain.Education{{Degree: "Mathematics", StartDate: time.Now()}}},
	}
	for i, req := range cases {
		if _, err := p.Sync(context.Background(), userID, req); !errors.Is(err, serrors.ErrBadRequest) {
			t.Fatalf("case %d: expected ErrBadRequest, got %v", i, err)
		}
	}
}

func TestProfile_Sync_UnknownApplicant(t *testing.T) {
	ctrl, st, p := newTestProfile(t)
	userID := domain.UserID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateApplicantInfo(gomock.Any(), userID, gomock.Any()).Return(false, nil)
	})

	_, err := p.Sync(context.Background(), userID, profile.SyncRequest{
		BasicInfo: profile.BasicInfo{FirstName: strPtr("Ada")},
	})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfile_Sync_EmailConflict(t *testing.T) {
	ctrl, st, p := newTestProfile(t)
	userID := domain.UserID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateApplicantInfo(gomock.Any(), userID, gomock.Any()).Return(false, storage.ErrDuplicate)
	})

	_, err := p.Sync(context.Background(), userID, profile.SyncRequest{
		BasicInfo: profile.BasicInfo{Email: strPtr("taken@example.com")},
	})
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestProfile_Get(t *testing.T) {
	_, st, p := newTestProfile(t)
	userID := domain.UserID(uuid.New())

	st.EXPECT().ApplicantProfile(gomock.Any(), userID).Return(nil, nil)
	if _, err := p.Get(context.Background(), userID); !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	st.EXPECT().ApplicantProfile(gomock.Any(), userID).Return(nil, errors.New("boom"))
	if _, err := p.Get(context.Background(), userID); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
