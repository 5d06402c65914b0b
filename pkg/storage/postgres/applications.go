package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"careerbridge/pkg/domain"
	"careerbridge/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	applicationsTable = "applications"
	savedJobsTable    = "saved_jobs"
)

// HasApplied reports whether a non-withdrawn application exists for the
// (applicant, job) pair.
func (p *PgSQL) HasApplied(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) (bool, error) {
	var one int
	found, err := p.Builder.From(applicationsTable).
		Select(goqu.L("1")).
		Where(
			goqu.I("applicant_id").Eq(uuid.UUID(applicantID)),
			goqu.I("job_id").Eq(uuid.UUID(jobID)),
			goqu.I("status").Neq(string(domain.ApplicationStatusWithdrawn)),
		).
		Limit(1).
		Executor().ScanValContext(ctx, &one)
	if err != nil {
		return false, fmt.Errorf("could not check application existence: %w", err)
	}

	return found, nil
}

// StoreApplication inserts a new application. A second live application for
// the same (applicant, job) pair trips the partial unique index and surfaces
// as storage.ErrDuplicate.
func (p *PgSQL) StoreApplication(ctx context.Context, app domain.Application) (*domain.Application, error) {
	var pgApp PgApplication
	pgApp.FromDomain(app)

	var row PgApplication
	found, err := p.Builder.Insert(applicationsTable).
		Rows(pgApp).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store application into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store application into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// WithdrawApplication moves the application to WITHDRAWN. The WHERE clause
// carries the full rule: the row must belong to the applicant and must not
// already be terminal, so a zero-row update covers missing, foreign and
// already-settled applications alike.
func (p *PgSQL) WithdrawApplication(ctx context.Context,
	id domain.ApplicationID,
	applicantID domain.UserID) (bool, error) {
	res, err := p.Builder.Update(applicationsTable).
		Set(goqu.Record{
			"status":     string(domain.ApplicationStatusWithdrawn),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("applicant_id").Eq(uuid.UUID(applicantID)),
			goqu.I("status").NotIn(terminalStatusStrings()),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not withdraw application in pg: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return rows > 0, nil
}

// UpdateApplicationStatus transitions the application matching the
// (job, applicant) pair, refusing to touch rows already in a terminal state.
func (p *PgSQL) UpdateApplicationStatus(ctx context.Context,
	jobID domain.JobID,
	applicantID domain.UserID,
	status domain.ApplicationStatus) (bool, error) {
	res, err := p.Builder.Update(applicationsTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("job_id").Eq(uuid.UUID(jobID)),
			goqu.I("applicant_id").Eq(uuid.UUID(applicantID)),
			goqu.I("status").NotIn(terminalStatusStrings()),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update application status in pg: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return rows > 0, nil
}

func terminalStatusStrings() []string {
	statuses := domain.TerminalStatuses()
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}

	return out
}

type applicationSummaryRow struct {
	ID          uuid.UUID    `db:"id"`
	ApplicantID uuid.UUID    `db:"applicant_id"`
	JobID       uuid.UUID    `db:"job_id"`
	Status      string       `db:"status"`
	AppliedAt   time.Time    `db:"applied_at"`
	UpdatedAt   sql.NullTime `db:"updated_at"`

	JobTitle      string    `db:"job_title"`
	PositionType  string    `db:"position_type"`
	WorkplaceType string    `db:"workplace_type"`
	Compensation  string    `db:"compensation"`
	Deadline      time.Time `db:"deadline"`

	CompanyName string `db:"company_name"`
	Industry    string `db:"industry"`
}

// ApplicationsByApplicant lists the applicant's applications newest first,
// joined with the job and company they target. An empty status means all.
func (p *PgSQL) ApplicationsByApplicant(ctx context.Context,
	applicantID domain.UserID,
	status domain.ApplicationStatus) ([]storage.ApplicationSummary, error) {
	ds := p.Builder.From(goqu.T(applicationsTable).As("ap")).
		Join(goqu.T(jobsTable).As("j"), goqu.On(goqu.I("j.id").Eq(goqu.I("ap.job_id")))).
		Join(goqu.T(companiesTable).As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("j.company_id")))).
		Select(
			goqu.I("ap.id").As("id"),
			goqu.I("ap.applicant_id").As("applicant_id"),
			goqu.I("ap.job_id").As("job_id"),
			goqu.I("ap.status").As("status"),
			goqu.I("ap.applied_at").As("applied_at"),
			goqu.I("ap.updated_at").As("updated_at"),
			goqu.I("j.title").As("job_title"),
			goqu.I("j.position_type").As("position_type"),
			goqu.I("j.workplace_type").As("workplace_type"),
			goqu.I("j.compensation").As("compensation"),
			goqu.I("j.application_deadline").As("deadline"),
			goqu.I("c.name").As("company_name"),
			goqu.I("c.industry").As("industry"),
		).
		Where(goqu.I("ap.applicant_id").Eq(uuid.UUID(applicantID))).
		Order(goqu.I("ap.applied_at").Desc())
	if status != "" {
		ds = ds.Where(goqu.I("ap.status").Eq(string(status)))
	}

	var rows []applicationSummaryRow
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch applications: %w", err)
	}

	summaries := make([]storage.ApplicationSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, storage.ApplicationSummary{
			Application: domain.Application{
				ID:          domain.ApplicationID(row.ID),
				ApplicantID: domain.UserID(row.ApplicantID),
				JobID:       domain.JobID(row.JobID),
				Status:      domain.ApplicationStatus(row.Status),
				AppliedAt:   row.AppliedAt,
				UpdatedAt:   row.UpdatedAt.Time,
			},
			JobTitle:      row.JobTitle,
			PositionType:  row.PositionType,
			WorkplaceType: row.WorkplaceType,
			Compensation:  row.Compensation,
			Deadline:      row.Deadline,
			CompanyName:   row.CompanyName,
			Industry:      row.Industry,
		})
	}

	return summaries, nil
}

// StoreSavedJob inserts a bookmark. Duplicate pairs surface as ErrDuplicate.
func (p *PgSQL) StoreSavedJob(ctx context.Context,
	applicantID domain.UserID,
	jobID domain.JobID) (*domain.SavedJob, error) {
	var row PgSavedJob
	found, err := p.Builder.Insert(savedJobsTable).
		Rows(PgSavedJob{
			ApplicantID: uuid.UUID(applicantID),
			JobID:       uuid.UUID(jobID),
		}).
		Returning(&PgSavedJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store saved job into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store saved job into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// DeleteSavedJob removes a bookmark, reporting whether one existed.
func (p *PgSQL) DeleteSavedJob(ctx context.Context,
	applicantID domain.UserID,
	jobID domain.JobID) (bool, error) {
	res, err := p.Builder.Delete(savedJobsTable).
		Where(
			goqu.I("applicant_id").Eq(uuid.UUID(applicantID)),
			goqu.I("job_id").Eq(uuid.UUID(jobID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete saved job from pg: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return rows > 0, nil
}

// JobSaved reports whether the bookmark exists.
func (p *PgSQL) JobSaved(ctx context.Context, applicantID domain.UserID, jobID domain.JobID) (bool, error) {
	var one int
	found, err := p.Builder.From(savedJobsTable).
		Select(goqu.L("1")).
		Where(
			goqu.I("applicant_id").Eq(uuid.UUID(applicantID)),
			goqu.I("job_id").Eq(uuid.UUID(jobID)),
		).
		Limit(1).
		Executor().ScanValContext(ctx, &one)
	if err != nil {
		return false, fmt.Errorf("could not check saved job existence: %w", err)
	}

	return found, nil
}

type savedJobSummaryRow struct {
	ID          uuid.UUID `db:"id"`
	ApplicantID uuid.UUID `db:"applicant_id"`
	JobID       uuid.UUID `db:"job_id"`
	CreatedAt   time.Time `db:"created_at"`

	JobTitle      string    `db:"job_title"`
	PositionType  string    `db:"position_type"`
	WorkplaceType string    `db:"workplace_type"`
	Compensation  string    `db:"compensation"`
	Deadline      time.Time `db:"deadline"`

	CompanyName string `db:"company_name"`
	Industry    string `db:"industry"`
}

// SavedJobsByApplicant lists the applicant's bookmarks newest first.
func (p *PgSQL) SavedJobsByApplicant(ctx context.Context,
	applicantID domain.UserID) ([]storage.SavedJobSummary, error) {
	var rows []savedJobSummaryRow
	if err := p.Builder.From(goqu.T(savedJobsTable).As("sj")).
		Join(goqu.T(jobsTable).As("j"), goqu.On(goqu.I("j.id").Eq(goqu.I("sj.job_id")))).
		Join(goqu.T(companiesTable).As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("j.company_id")))).
		Select(
			goqu.I("sj.id").As("id"),
			goqu.I("sj.applicant_id").As("applicant_id"),
			goqu.I("sj.job_id").As("job_id"),
			goqu.I("sj.created_at").As("created_at"),
			goqu.I("j.title").As("job_title"),
			goqu.I("j.position_type").As("position_type"),
			goqu.I("j.workplace_type").As("workplace_type"),
			goqu.I("j.compensation").As("compensation"),
			goqu.I("j.application_deadline").As("deadline"),
			goqu.I("c.name").As("company_name"),
			goqu.I("c.industry").As("industry"),
		).
		Where(goqu.I("sj.applicant_id").Eq(uuid.UUID(applicantID))).
		Order(goqu.I("sj.created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch saved jobs: %w", err)
	}

	summaries := make([]storage.SavedJobSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, storage.SavedJobSummary{
			SavedJob: domain.SavedJob{
				ID:          domain.SavedJobID(row.ID),
				ApplicantID: domain.UserID(row.ApplicantID),
				JobID:       domain.JobID(row.JobID),
				CreatedAt:   row.CreatedAt,
			},
			JobTitle:      row.JobTitle,
			PositionType:  row.PositionType,
			WorkplaceType: row.WorkplaceType,
			Compensation:  row.Compensation,
			Deadline:      row.Deadline,
			CompanyName:   row.CompanyName,
			Industry:      row.Industry,
		})
	}

	return summaries, nil
}

// NotificationDetails resolves the email payload for the application matching
// the (job, applicant) pair. Returns nil when no such application exists.
func (p *PgSQL) NotificationDetails(ctx context.Context,
	jobID domain.JobID,
	applicantID domain.UserID) (*storage.NotificationDetails, error) {
	var row struct {
		FirstName   string `db:"first_name"`
		LastName    string `db:"last_name"`
		Email       string `db:"email"`
		JobTitle    string `db:"job_title"`
		CompanyName string `db:"company_name"`
	}
	found, err := p.Builder.From(goqu.T(applicationsTable).As("ap")).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("ap.applicant_id")))).
		Join(goqu.T(jobsTable).As("j"), goqu.On(goqu.I("j.id").Eq(goqu.I("ap.job_id")))).
		Join(goqu.T(companiesTable).As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("j.company_id")))).
		Select(
			goqu.I("u.first_name").As("first_name"),
			goqu.I("u.last_name").As("last_name"),
			goqu.I("u.email").As("email"),
			goqu.I("j.title").As("job_title"),
			goqu.I("c.name").As("company_name"),
		).
		Where(
			goqu.I("ap.job_id").Eq(uuid.UUID(jobID)),
			goqu.I("ap.applicant_id").Eq(uuid.UUID(applicantID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch notification details: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &storage.NotificationDetails{
		ApplicantName:  row.FirstName + " " + row.LastName,
		ApplicantEmail: row.Email,
		JobTitle:       row.JobTitle,
		CompanyName:    row.CompanyName,
	}, nil
}
