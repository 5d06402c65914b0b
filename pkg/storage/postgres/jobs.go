package postgres

import (
	"context"
	"fmt"

	"careerbridge/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	jobsTable      = "jobs"
	jobSkillsTable = "job_skills"
)

// StoreJob inserts a job posting together with its skill requirements. Skill
// names go through the same find-or-create path as applicant skills.
func (p *PgSQL) StoreJob(ctx context.Context, job domain.Job, skillNames []string) (*domain.Job, error) {
	var pgJob PgJob
	pgJob.FromDomain(job)

	var row PgJob
	found, err := p.Builder.Insert(jobsTable).
		Rows(pgJob).
		Returning(&PgJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store job into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store job into pg: no row returned")
	}

	for _, name := range skillNames {
		skillID, err := p.upsertSkill(ctx, name)
		if err != nil {
			return nil, err
		}

		if _, err := p.Builder.Insert(jobSkillsTable).
			Rows(goqu.Record{
				"job_id":   row.ID,
				"skill_id": skillID,
			}).
			Executor().ExecContext(ctx); err != nil {
			return nil, fmt.Errorf("could not link job skill in pg: %w", err)
		}
	}

	return row.ToDomain(), nil
}

// JobByID fetches a posting by id, returning nil when no row matches.
func (p *PgSQL) JobByID(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	var row PgJob
	found, err := p.Builder.From(jobsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch job by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
