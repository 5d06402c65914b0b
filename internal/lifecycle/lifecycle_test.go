package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerbridge/internal/lifecycle"
	"careerbridge/pkg/domain"
	"careerbridge/pkg/serrors"
	"careerbridge/pkg/storage"
	mockstorage "careerbridge/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/mock/gomock"
)

func newTestLifecycle(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, lifecycle.Lifecycle) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	l := lifecycle.New(st, lifecycle.Options{NotifierMaxAttempts: 3})

	return ctrl, st, l
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

func openJob(companyID domain.CompanyID) *domain.Job {
	return &domain.Job{
		ID:                  domain.JobID(uuid.New()),
		CompanyID:           companyID,
		Title:               "Backend Engineer",
		ApplicationDeadline: time.Now().Add(24 * time.Hour),
	}
}

func TestLifecycle_Apply(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)

	applicantID := domain.UserID(uuid.New())
	job := openJob(domain.CompanyID(uuid.New()))

	st.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().HasApplied(gomock.Any(), applicantID, job.ID).Return(false, nil)
		tx.EXPECT().StoreApplication(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, app domain.Application) (*domain.Application, error) {
				if app.Status != domain.ApplicationStatusApplied {
					t.Fatalf("expected APPLIED, got %s", app.Status)
				}
				app.ID = domain.ApplicationID(uuid.New())

				return &app, nil
			},
		)
	})

	app, err := l.Apply(context.Background(), applicantID, job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != domain.ApplicationStatusApplied {
		t.Fatalf("expected APPLIED, got %s", app.Status)
	}
}

func TestLifecycle_Apply_JobMissing(t *testing.T) {
	_, st, l := newTestLifecycle(t)
	jobID := domain.JobID(uuid.New())

	st.EXPECT().JobByID(gomock.Any(), jobID).Return(nil, nil)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

	_, err := l.Apply(context.Background(), domain.UserID(uuid.New()), jobID)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLifecycle_Apply_DeadlinePassed(t *testing.T) {
	_, st, l := newTestLifecycle(t)
	job := openJob(domain.CompanyID(uuid.New()))
	job.ApplicationDeadline = time.Now().Add(-time.Hour)

	st.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

	_, err := l.Apply(context.Background(), domain.UserID(uuid.New()), job.ID)
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestLifecycle_Apply_AlreadyApplied(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)
	applicantID := domain.UserID(uuid.New())
	job := openJob(domain.CompanyID(uuid.New()))

	// live application found
	st.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().HasApplied(gomock.Any(), applicantID, job.ID).Return(true, nil)
	})
	if _, err := l.Apply(context.Background(), applicantID, job.ID); !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// concurrent insert caught by the partial unique index
	st.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().HasApplied(gomock.Any(), applicantID, job.ID).Return(false, nil)
		tx.EXPECT().StoreApplication(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)
	})
	if _, err := l.Apply(context.Background(), applicantID, job.ID); !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLifecycle_Withdraw(t *testing.T) {
	_, st, l := newTestLifecycle(t)
	applicantID := domain.UserID(uuid.New())
	appID := domain.ApplicationID(uuid.New())

	st.EXPECT().WithdrawApplication(gomock.Any(), appID, applicantID).Return(true, nil)
	if err := l.Withdraw(context.Background(), applicantID, appID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// not yours, already settled and missing all collapse to not found
	st.EXPECT().WithdrawApplication(gomock.Any(), appID, applicantID).Return(false, nil)
	err := l.Withdraw(context.Background(), applicantID, appID)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLifecycle_Applications_UnknownStatus(t *testing.T) {
	_, st, l := newTestLifecycle(t)
	st.EXPECT().ApplicationsByApplicant(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := l.Applications(context.Background(), domain.UserID(uuid.New()), "SHORTLISTED")
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestLifecycle_Reject_EnqueuesNotification(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)

	recruiterID := domain.UserID(uuid.New())
	applicantID := domain.UserID(uuid.New())
	companyID := domain.CompanyID(uuid.New())
	job := openJob(companyID)

	st.EXPECT().RecruiterByUserID(gomock.Any(), recruiterID).Return(&storage.RecruiterProfile{
		User:    domain.User{ID: recruiterID},
		Company: domain.Company{ID: companyID},
	}, nil)
	st.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateApplicationStatus(gomock.Any(), job.ID, applicantID, domain.ApplicationStatusRejected).
			Return(true, nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				notif, ok := args.(lifecycle.NotificationArgs)
				if !ok {
					t.Fatalf("unexpected job args type: %T", args)
				}
				if notif.NotificationKind != lifecycle.NotificationRejection {
					t.Fatalf("expected REJECTION, got %s", notif.NotificationKind)
				}
				if notif.JobID != uuid.UUID(job.ID) || notif.ApplicantID != uuid.UUID(applicantID) {
					t.Fatalf("unexpected notification payload: %+v", notif)
				}
				if notif.InsertOpts().MaxAttempts != 3 {
					t.Fatalf("expected 3 max attempts, got %d", notif.InsertOpts().MaxAttempts)
				}

				return true, nil
			},
		)
	})

	if err := l.Reject(context.Background(), recruiterID, job.ID, applicantID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLifecycle_ScheduleInterview_ForeignJobLooksMissing(t *testing.T) {
	_, st, l := newTestLifecycle(t)

	recruiterID := domain.UserID(uuid.New())
	job := openJob(domain.CompanyID(uuid.New()))

	// the recruiter belongs to a different company than the job
	st.EXPECT().RecruiterByUserID(gomock.Any(), recruiterID).Return(&storage.RecruiterProfile{
		User:    domain.User{ID: recruiterID},
		Company: domain.Company{ID: domain.CompanyID(uuid.New())},
	}, nil)
	st.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

	err := l.ScheduleInterview(context.Background(), recruiterID, job.ID, domain.UserID(uuid.New()))
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLifecycle_Reject_SettledApplication(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)

	recruiterID := domain.UserID(uuid.New())
	applicantID := domain.UserID(uuid.New())
	companyID := domain.CompanyID(uuid.New())
	job := openJob(companyID)

	st.EXPECT().RecruiterByUserID(gomock.Any(), recruiterID).Return(&storage.RecruiterProfile{
		Company: domain.Company{ID: companyID},
	}, nil)
	st.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	// the guarded update refuses terminal rows, so no job is enqueued
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateApplicationStatus(gomock.Any(), job.ID, applicantID, domain.ApplicationStatusRejected).
			Return(false, nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	})

	err := l.Reject(context.Background(), recruiterID, job.ID, applicantID)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLifecycle_SaveJob(t *testing.T) {
	_, st, l := newTestLifecycle(t)
	applicantID := domain.UserID(uuid.New())
	job := openJob(domain.CompanyID(uuid.New()))

	// success
	st.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	st.EXPECT().StoreSavedJob(gomock.Any(), applicantID, job.ID).Return(&domain.SavedJob{JobID: job.ID}, nil)
	saved, err := l.SaveJob(context.Background(), applicantID, job.ID)
	if err != nil || saved == nil {
		t.Fatalf("unexpected: saved=%+v err=%v", saved, err)
	}

	// already saved
	st.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	st.EXPECT().StoreSavedJob(gomock.Any(), applicantID, job.ID).Return(nil, storage.ErrDuplicate)
	if _, err := l.SaveJob(context.Background(), applicantID, job.ID); !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// job missing
	st.EXPECT().JobByID(gomock.Any(), job.ID).Return(nil, nil)
	if _, err := l.SaveJob(context.Background(), applicantID, job.ID); !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLifecycle_UnsaveJob(t *testing.T) {
	_, st, l := newTestLifecycle(t)
	applicantID := domain.UserID(uuid.New())
	jobID := domain.JobID(uuid.New())

	st.EXPECT().DeleteSavedJob(gomock.Any(), applicantID, jobID).Return(true, nil)
	if err := l.UnsaveJob(context.Background(), applicantID, jobID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st.EXPECT().DeleteSavedJob(gomock.Any(), applicantID, jobID).Return(false, nil)
	if err := l.UnsaveJob(context.Background(), applicantID, jobID); !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
