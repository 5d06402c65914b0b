package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"careerbridge/pkg/domain"
	"careerbridge/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	applicantsTable      = "applicants"
	skillsTable          = "skills"
	applicantSkillsTable = "applicant_skills"
	experiencesTable     = "experiences"
	educationsTable      = "educations"
)

// StoreApplicant inserts the applicant extension row for an existing user.
func (p *PgSQL) StoreApplicant(ctx context.Context, applicant domain.Applicant) error {
	if _, err := p.Builder.Insert(applicantsTable).
		Rows(PgApplicant{
			UserID:     uuid.UUID(applicant.UserID),
			ResumeLink: applicant.ResumeLink,
		}).
		Executor().ExecContext(ctx); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicate
		}

		return fmt.Errorf("could not store applicant into pg: %w", err)
	}

	return nil
}

// UpdateApplicantInfo applies a partial basic-info patch. The identity fields
// live on the users table while resume_link lives on applicants, so the patch
// fans out to at most two updates. Reports whether any row was touched.
func (p *PgSQL) UpdateApplicantInfo(ctx context.Context,
	id domain.UserID,
	updates storage.ApplicantUpdates) (bool, error) {
	affected := false

	userPatch := goqu.Record{}
	if updates.FirstName != nil {
		userPatch["first_name"] = *updates.FirstName
	}
	if updates.LastName != nil {
		userPatch["last_name"] = *updates.LastName
	}
	if updates.PhoneNumber != nil {
		userPatch["phone_number"] = *updates.PhoneNumber
	}
	if updates.Email != nil {
		userPatch["email"] = *updates.Email
	}

	if len(userPatch) > 0 {
		userPatch["updated_at"] = goqu.L("CURRENT_TIMESTAMP")

		res, err := p.Builder.Update(usersTable).
			Set(userPatch).
			Where(goqu.I("id").Eq(uuid.UUID(id))).
			Executor().ExecContext(ctx)
		if err != nil {
			if isUniqueViolation(err) {
				return false, storage.ErrDuplicate
			}

			return false, fmt.Errorf("could not update user info in pg: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return false, fmt.Errorf("could not get affected rows: %w", err)
		}
		affected = affected || rows > 0
	}

	if updates.ResumeLink != nil {
		res, err := p.Builder.Update(applicantsTable).
			Set(goqu.Record{"resume_link": *updates.ResumeLink}).
			Where(goqu.I("user_id").Eq(uuid.UUID(id))).
			Executor().ExecContext(ctx)
		if err != nil {
			return false, fmt.Errorf("could not update resume link in pg: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return false, fmt.Errorf("could not get affected rows: %w", err)
		}
		affected = affected || rows > 0
	}

	return affected, nil
}

// ReplaceSkills replaces the applicant's skill links with the given skill
// names. Skills are global rows keyed by name: each name is found-or-created,
// then linked. An empty slice clears all links.
func (p *PgSQL) ReplaceSkills(ctx context.Context, id domain.UserID, names []string) error {
	if _, err := p.Builder.Delete(applicantSkillsTable).
		Where(goqu.I("applicant_id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete applicant skills from pg: %w", err)
	}

	for _, name := range names {
		skillID, err := p.upsertSkill(ctx, name)
		if err != nil {
			return err
		}

		if _, err := p.Builder.Insert(applicantSkillsTable).
			Rows(goqu.Record{
				"applicant_id": uuid.UUID(id),
				"skill_id":     skillID,
			}).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not link applicant skill in pg: %w", err)
		}
	}

	return nil
}

// upsertSkill finds-or-creates a skill row by name and returns its id. The
// no-op DO UPDATE makes RETURNING yield the id on the conflict path too.
func (p *PgSQL) upsertSkill(ctx context.Context, name string) (uuid.UUID, error) {
	var skillID uuid.UUID
	found, err := p.Builder.Insert(skillsTable).
		Rows(goqu.Record{"name": name}).
		OnConflict(goqu.DoUpdate("name", goqu.Record{"name": goqu.L("EXCLUDED.name")})).
		Returning("id").
		Executor().ScanValContext(ctx, &skillID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("could not upsert skill into pg: %w", err)
	}
	if !found {
		return uuid.Nil, fmt.Errorf("could not upsert skill into pg: no id returned")
	}

	return skillID, nil
}

// ReplaceExperience replaces all experience rows for the applicant. An empty
// slice deletes everything.
func (p *PgSQL) ReplaceExperience(ctx context.Context, id domain.UserID, entries []domain.Experience) error {
	if _, err := p.Builder.Delete(experiencesTable).
		Where(goqu.I("applicant_id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete experiences from pg: %w", err)
	}

	if len(entries) == 0 {
		return nil
	}

	rows := make([]PgExperience, 0, len(entries))
	for _, entry := range entries {
		row := PgExperience{
			ApplicantID: uuid.UUID(id),
			Employer:    entry.Employer,
			Title:       entry.Title,
			Location:    entry.Location,
			StartDate:   entry.StartDate,
			Current:     entry.Current,
			Description: entry.Description,
		}
		if entry.EndDate != nil {
			row.EndDate = sql.NullTime{Time: *entry.EndDate, Valid: true}
		}
		rows = append(rows, row)
	}

	if _, err := p.Builder.Insert(experiencesTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store experiences into pg: %w", err)
	}

	return nil
}

// ReplaceEducation replaces all education rows for the applicant. An empty
// slice deletes everything.
func (p *PgSQL) ReplaceEducation(ctx context.Context, id domain.UserID, entries []domain.Education) error {
	if _, err := p.Builder.Delete(educationsTable).
		Where(goqu.I("applicant_id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete educations from pg: %w", err)
	}

	if len(entries) == 0 {
		return nil
	}

	rows := make([]PgEducation, 0, len(entries))
	for _, entry := range entries {
		row := PgEducation{
			ApplicantID: uuid.UUID(id),
			Institution: entry.Institution,
			Degree:      entry.Degree,
			Field:       entry.Field,
			StartDate:   entry.StartDate,
			GPA:         entry.GPA,
		}
		if entry.EndDate != nil {
			row.EndDate = sql.NullTime{Time: *entry.EndDate, Valid: true}
		}
		rows = append(rows, row)
	}

	if _, err := p.Builder.Insert(educationsTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store educations into pg: %w", err)
	}

	return nil
}

// ApplicantProfile fetches the composed profile read model. Returns nil when
// the user has no applicant row.
func (p *PgSQL) ApplicantProfile(ctx context.Context, id domain.UserID) (*storage.ApplicantProfile, error) {
	var userRow PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &userRow)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil
	}

	var applicantRow PgApplicant
	found, err = p.Builder.From(applicantsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &applicantRow)
	if err != nil {
		return nil, fmt.Errorf("could not fetch applicant: %w", err)
	}
	if !found {
		return nil, nil
	}

	var skills []string
	if err := p.Builder.From(goqu.T(applicantSkillsTable).As("as")).
		Join(goqu.T(skillsTable).As("s"), goqu.On(goqu.I("s.id").Eq(goqu.I("as.skill_id")))).
		Select(goqu.I("s.name")).
		Where(goqu.I("as.applicant_id").Eq(uuid.UUID(id))).
		Order(goqu.I("s.name").Asc()).
		Executor().ScanValsContext(ctx, &skills); err != nil {
		return nil, fmt.Errorf("could not fetch applicant skills: %w", err)
	}

	var experienceRows []PgExperience
	if err := p.Builder.From(experiencesTable).
		Where(goqu.I("applicant_id").Eq(uuid.UUID(id))).
		Order(goqu.I("start_date").Desc()).
		Executor().ScanStructsContext(ctx, &experienceRows); err != nil {
		return nil, fmt.Errorf("could not fetch experiences: %w", err)
	}

	var educationRows []PgEducation
	if err := p.Builder.From(educationsTable).
		Where(goqu.I("applicant_id").Eq(uuid.UUID(id))).
		Order(goqu.I("start_date").Desc()).
		Executor().ScanStructsContext(ctx, &educationRows); err != nil {
		return nil, fmt.Errorf("could not fetch educations: %w", err)
	}

	profile := &storage.ApplicantProfile{
		User:       *userRow.ToDomain(),
		ResumeLink: applicantRow.ResumeLink,
		Skills:     skills,
	}
	for _, row := range experienceRows {
		profile.Experience = append(profile.Experience, row.ToDomain())
	}
	for _, row := range educationRows {
		profile.Education = append(profile.Education, row.ToDomain())
	}

	return profile, nil
}
