package postgres

import (
	"database/sql"
	"time"

	"careerbridge/pkg/domain"

	"github.com/google/uuid"
)

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	FirstName      string         `db:"first_name"`
	LastName       string         `db:"last_name"`
	PhoneNumber    string         `db:"phone_number"`
	Email          string         `db:"email"`
	CredentialHash string         `db:"credential_hash"`
	Role           string         `db:"role"`
	DateOfBirth    sql.NullTime   `db:"date_of_birth"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:             domain.UserID(p.ID),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		PhoneNumber:    p.PhoneNumber,
		Email:          p.Email,
		CredentialHash: p.CredentialHash,
		Role:           domain.Role(p.Role),
		DateOfBirth:    p.DateOfBirth.Time,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:             uuid.UUID(user.ID),
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		PhoneNumber:    user.PhoneNumber,
		Email:          user.Email,
		CredentialHash: user.CredentialHash,
		Role:           string(user.Role),
		DateOfBirth: sql.NullTime{
			Time:  user.DateOfBirth,
			Valid: !user.DateOfBirth.IsZero(),
		},
		CreatedAt: user.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  user.UpdatedAt,
			Valid: !user.UpdatedAt.IsZero(),
		},
	}
}

type PgCompany struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name     string `db:"name"`
	Overview string `db:"overview"`
	Industry string `db:"industry"`
	SizeTier string `db:"size_tier"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgCompany) ToDomain() *domain.Company {
	return &domain.Company{
		ID:        domain.CompanyID(p.ID),
		Name:      p.Name,
		Overview:  p.Overview,
		Industry:  p.Industry,
		SizeTier:  p.SizeTier,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgCompany) FromDomain(company domain.Company) {
	*p = PgCompany{
		ID:        uuid.UUID(company.ID),
		Name:      company.Name,
		Overview:  company.Overview,
		Industry:  company.Industry,
		SizeTier:  company.SizeTier,
		CreatedAt: company.CreatedAt,
	}
}

type PgAddress struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Street  string `db:"street"`
	City    string `db:"city"`
	County  string `db:"county"`
	State   string `db:"state"`
	Country string `db:"country"`
}

func (p *PgAddress) ToDomain() *domain.Address {
	return &domain.Address{
		ID:      domain.AddressID(p.ID),
		Street:  p.Street,
		City:    p.City,
		County:  p.County,
		State:   p.State,
		Country: p.Country,
	}
}

func (p *PgAddress) FromDomain(address domain.Address) {
	*p = PgAddress{
		ID:      uuid.UUID(address.ID),
		Street:  address.Street,
		City:    address.City,
		County:  address.County,
		State:   address.State,
		Country: address.Country,
	}
}

type PgApplicant struct {
	UserID     uuid.UUID `db:"user_id"`
	ResumeLink string    `db:"resume_link"`
	CreatedAt  time.Time `db:"created_at" goqu:"skipinsert"`
}

type PgExperience struct {
	ID          uuid.UUID    `db:"id" goqu:"skipinsert"`
	ApplicantID uuid.UUID    `db:"applicant_id"`
	Employer    string       `db:"employer"`
	Title       string       `db:"title"`
	Location    string       `db:"location"`
	StartDate   time.Time    `db:"start_date"`
	EndDate     sql.NullTime `db:"end_date"`
	Current     bool         `db:"current"`
	Description string       `db:"description"`
}

func (p *PgExperience) ToDomain() domain.Experience {
	exp := domain.Experience{
		Employer:    p.Employer,
		Title:       p.Title,
		Location:    p.Location,
		StartDate:   p.StartDate,
		Current:     p.Current,
		Description: p.Description,
	}
	if p.EndDate.Valid {
		end := p.EndDate.Time
		exp.EndDate = &end
	}

	return exp
}

type PgEducation struct {
	ID          uuid.UUID    `db:"id" goqu:"skipinsert"`
	ApplicantID uuid.UUID    `db:"applicant_id"`
	Institution string       `db:"institution"`
	Degree      string       `db:"degree"`
	Field       string       `db:"field"`
	StartDate   time.Time    `db:"start_date"`
	EndDate     sql.NullTime `db:"end_date"`
	GPA         string       `db:"gpa"`
}

func (p *PgEducation) ToDomain() domain.Education {
	edu := domain.Education{
		Institution: p.Institution,
		Degree:      p.Degree,
		Field:       p.Field,
		StartDate:   p.StartDate,
		GPA:         p.GPA,
	}
	if p.EndDate.Valid {
		end := p.EndDate.Time
		edu.EndDate = &end
	}

	return edu
}

type PgJob struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	CompanyID uuid.UUID `db:"company_id"`

	Title            string `db:"title"`
	AboutRole        string `db:"about_role"`
	Requirements     string `db:"requirements"`
	Benefits         string `db:"benefits"`
	Responsibilities string `db:"responsibilities"`
	Compensation     string `db:"compensation"`

	PositionType  string `db:"position_type"`
	WorkplaceType string `db:"workplace_type"`
	ClassLevel    string `db:"class_level"`

	ApplicationDeadline time.Time `db:"application_deadline"`
	CreatedAt           time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgJob) ToDomain() *domain.Job {
	return &domain.Job{
		ID:                  domain.JobID(p.ID),
		CompanyID:           domain.CompanyID(p.CompanyID),
		Title:               p.Title,
		AboutRole:           p.AboutRole,
		Requirements:        p.Requirements,
		Benefits:            p.Benefits,
		Responsibilities:    p.Responsibilities,
		Compensation:        p.Compensation,
		PositionType:        p.PositionType,
		WorkplaceType:       p.WorkplaceType,
		ClassLevel:          p.ClassLevel,
		ApplicationDeadline: p.ApplicationDeadline,
		CreatedAt:           p.CreatedAt,
	}
}

func (p *PgJob) FromDomain(job domain.Job) {
	*p = PgJob{
		ID:                  uuid.UUID(job.ID),
		CompanyID:           uuid.UUID(job.CompanyID),
		Title:               job.Title,
		AboutRole:           job.AboutRole,
		Requirements:        job.Requirements,
		Benefits:            job.Benefits,
		Responsibilities:    job.Responsibilities,
		Compensation:        job.Compensation,
		PositionType:        job.PositionType,
		WorkplaceType:       job.WorkplaceType,
		ClassLevel:          job.ClassLevel,
		ApplicationDeadline: job.ApplicationDeadline,
		CreatedAt:           job.CreatedAt,
	}
}

type PgApplication struct {
	ID          uuid.UUID `db:"id" goqu:"skipinsert"`
	ApplicantID uuid.UUID `db:"applicant_id"`
	JobID       uuid.UUID `db:"job_id"`

	Status string `db:"status"`

	AppliedAt time.Time    `db:"applied_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgApplication) ToDomain() *domain.Application {
	return &domain.Application{
		ID:          domain.ApplicationID(p.ID),
		ApplicantID: domain.UserID(p.ApplicantID),
		JobID:       domain.JobID(p.JobID),
		Status:      domain.ApplicationStatus(p.Status),
		AppliedAt:   p.AppliedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgApplication) FromDomain(app domain.Application) {
	*p = PgApplication{
		ID:          uuid.UUID(app.ID),
		ApplicantID: uuid.UUID(app.ApplicantID),
		JobID:       uuid.UUID(app.JobID),
		Status:      string(app.Status),
		AppliedAt:   app.AppliedAt,
		UpdatedAt: sql.NullTime{
			Time:  app.UpdatedAt,
			Valid: !app.UpdatedAt.IsZero(),
		},
	}
}

type PgSavedJob struct {
	ID          uuid.UUID `db:"id" goqu:"skipinsert"`
	ApplicantID uuid.UUID `db:"applicant_id"`
	JobID       uuid.UUID `db:"job_id"`
	CreatedAt   time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSavedJob) ToDomain() *domain.SavedJob {
	return &domain.SavedJob{
		ID:          domain.SavedJobID(p.ID),
		ApplicantID: domain.UserID(p.ApplicantID),
		JobID:       domain.JobID(p.JobID),
		CreatedAt:   p.CreatedAt,
	}
}
