package posting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerbridge/internal/posting"
	"careerbridge/pkg/domain"
	"careerbridge/pkg/serrors"
	"careerbridge/pkg/storage"
	mockstorage "careerbridge/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newTestPosting(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, posting.Posting) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	p := posting.New(st)

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

func validJobRequest() posting.JobRequest {
	return posting.JobRequest{
		Title:               "Backend Engineer",
		PositionType:        "FULL_TIME",
		WorkplaceType:       "REMOTE",
		ApplicationDeadline: time.Now().Add(30 * 24 * time.Hour),
		Skills:              []string{"go", "postgres"},
	}
}

func TestPosting_Create(t *testing.T) {
	ctrl, st, p := newTestPosting(t)

	recruiterID := domain.UserID(uuid.New())
	companyID := domain.CompanyID(uuid.New())
	req := validJobRequest()

	st.EXPECT().RecruiterByUserID(gomock.Any(), recruiterID).Return(&storage.RecruiterProfile{
		User:    domain.User{ID: recruiterID},
		Company: domain.Company{ID: companyID},
	}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreJob(gomock.Any(), gomock.Any(), req.Skills).DoAndReturn(
			func(_ context.Context, job domain.Job, _ []string) (*domain.Job, error) {
				// the posting always lands under the recruiter's company
				if job.CompanyID != companyID {
					t.Fatalf("expected company %s, got %s", uuid.UUID(companyID), uuid.UUID(job.CompanyID))
				}
				job.ID = domain.JobID(uuid.New())

				return &job, nil
			},
		)
	})

	job, err := p.Create(context.Background(), recruiterID, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Title != req.Title {
		t.Fatalf("expected title %q, got %q", req.Title, job.Title)
	}
}

func TestPosting_Create_NotARecruiter(t *testing.T) {
	_, st, p := newTestPosting(t)
	recruiterID := domain.UserID(uuid.New())

	st.EXPECT().RecruiterByUserID(gomock.Any(), recruiterID).Return(nil, nil)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

	_, err := p.Create(context.Background(), recruiterID, validJobRequest())
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPosting_Create_Validation(t *testing.T) {
	_, st, p := newTestPosting(t)
	st.EXPECT().RecruiterByUserID(gomock.Any(), gomock.Any()).Times(0)

	bad := []func(*posting.JobRequest){
		func(r *posting.JobRequest) { r.Title = " " },
		func(r *posting.JobRequest) { r.PositionType = "" },
		func(r *posting.JobRequest) { r.WorkplaceType = "" },
		func(r *posting.JobRequest) { r.ApplicationDeadline = time.Now().Add(-time.Minute) },
	}
	for _, mutate := range bad {
		req := validJobRequest()
		mutate(&req)
		if _, err := p.Create(context.Background(), domain.UserID(uuid.New()), req); !errors.Is(err, serrors.ErrBadRequest) {
			t.Fatalf("expected ErrBadRequest for %+v, got %v", req, err)
		}
	}
}

func TestPosting_Get(t *testing.T) {
	_, st, p := newTestPosting(t)
	jobID := domain.JobID(uuid.New())

	st.EXPECT().JobByID(gomock.Any(), jobID).Return(&domain.Job{ID: jobID, Title: "Backend Engineer"}, nil)
	job, err := p.Get(context.Background(), jobID)
	if err != nil || job == nil {
		t.Fatalf("unexpected: job=%+v err=%v", job, err)
	}

	st.EXPECT().JobByID(gomock.Any(), jobID).Return(nil, nil)
	if _, err := p.Get(context.Background(), jobID); !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	st.EXPECT().JobByID(gomock.Any(), jobID).Return(nil, errors.New("boom"))
	if _, err := p.Get(context.Background(), jobID); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
