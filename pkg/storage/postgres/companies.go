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
	companiesTable        = "companies"
	addressesTable        = "addresses"
	companyAddressesTable = "company_addresses"
	recruitersTable       = "recruiters"
)

// CompanyByName fetches a company by case-insensitive exact name match,
// returning nil when no company matches.
func (p *PgSQL) CompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	var row PgCompany
	found, err := p.Builder.From(companiesTable).
		Where(goqu.L("LOWER(name) = LOWER(?)", name)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch company by name: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreCompany inserts a new company and returns the stored row. A name
// already taken (case-insensitively, via the lower-name unique index)
// surfaces as ErrDuplicate.
func (p *PgSQL) StoreCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	var pgCompany PgCompany
	pgCompany.FromDomain(company)

	var row PgCompany
	found, err := p.Builder.Insert(companiesTable).
		Rows(pgCompany).
		Returning(&PgCompany{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store company into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store company into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// StoreCompanyAddress inserts an address and links it to the company through
// the join relation. Addresses only ever come into existence this way.
func (p *PgSQL) StoreCompanyAddress(ctx context.Context,
	companyID domain.CompanyID,
	address domain.Address) (*domain.Address, error) {
	var pgAddress PgAddress
	pgAddress.FromDomain(address)

	var row PgAddress
	found, err := p.Builder.Insert(addressesTable).
		Rows(pgAddress).
		Returning(&PgAddress{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store address into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store address into pg: no row returned")
	}

	if _, err := p.Builder.Insert(companyAddressesTable).
		Rows(goqu.Record{
			"company_id": uuid.UUID(companyID),
			"address_id": row.ID,
		}).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not link company address in pg: %w", err)
	}

	return row.ToDomain(), nil
}

// StoreRecruiter inserts the recruiter link binding a user to a company.
func (p *PgSQL) StoreRecruiter(ctx context.Context, userID domain.UserID, companyID domain.CompanyID) error {
	if _, err := p.Builder.Insert(recruitersTable).
		Rows(goqu.Record{
			"user_id":    uuid.UUID(userID),
			"company_id": uuid.UUID(companyID),
		}).
		Executor().ExecContext(ctx); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicate
		}

		return fmt.Errorf("could not store recruiter into pg: %w", err)
	}

	return nil
}

type recruiterProfileRow struct {
	UserID         uuid.UUID    `db:"user_id"`
	FirstName      string       `db:"first_name"`
	LastName       string       `db:"last_name"`
	PhoneNumber    string       `db:"phone_number"`
	Email          string       `db:"email"`
	Role           string       `db:"role"`
	UserCreatedAt  time.Time    `db:"user_created_at"`
	BoundAt        time.Time    `db:"bound_at"`

	CompanyID        uuid.UUID `db:"company_id"`
	CompanyName      string    `db:"company_name"`
	CompanyOverview  string    `db:"company_overview"`
	CompanyIndustry  string    `db:"company_industry"`
	CompanySizeTier  string    `db:"company_size_tier"`

	AddressID      uuid.NullUUID  `db:"address_id"`
	AddressStreet  sql.NullString `db:"address_street"`
	AddressCity    sql.NullString `db:"address_city"`
	AddressCounty  sql.NullString `db:"address_county"`
	AddressState   sql.NullString `db:"address_state"`
	AddressCountry sql.NullString `db:"address_country"`
}

// RecruiterByUserID fetches the composed recruiter profile (user + company +
// address, when linked). Returns nil when the user is not a recruiter.
func (p *PgSQL) RecruiterByUserID(ctx context.Context, userID domain.UserID) (*storage.RecruiterProfile, error) {
	var row recruiterProfileRow
	found, err := p.Builder.From(goqu.T(recruitersTable).As("r")).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.user_id")))).
		Join(goqu.T(companiesTable).As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("r.company_id")))).
		LeftJoin(goqu.T(companyAddressesTable).As("ca"), goqu.On(goqu.I("ca.company_id").Eq(goqu.I("c.id")))).
		LeftJoin(goqu.T(addressesTable).As("a"), goqu.On(goqu.I("a.id").Eq(goqu.I("ca.address_id")))).
		Select(
			goqu.I("u.id").As("user_id"),
			goqu.I("u.first_name").As("first_name"),
			goqu.I("u.last_name").As("last_name"),
			goqu.I("u.phone_number").As("phone_number"),
			goqu.I("u.email").As("email"),
			goqu.I("u.role").As("role"),
			goqu.I("u.created_at").As("user_created_at"),
			goqu.I("r.created_at").As("bound_at"),
			goqu.I("c.id").As("company_id"),
			goqu.I("c.name").As("company_name"),
			goqu.I("c.overview").As("company_overview"),
			goqu.I("c.industry").As("company_industry"),
			goqu.I("c.size_tier").As("company_size_tier"),
			goqu.I("a.id").As("address_id"),
			goqu.I("a.street").As("address_street"),
			goqu.I("a.city").As("address_city"),
			goqu.I("a.county").As("address_county"),
			goqu.I("a.state").As("address_state"),
			goqu.I("a.country").As("address_country"),
		).
		Where(goqu.I("r.user_id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch recruiter profile: %w", err)
	}
	if !found {
		return nil, nil
	}

	profile := &storage.RecruiterProfile{
		User: domain.User{
			ID:          domain.UserID(row.UserID),
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			PhoneNumber: row.PhoneNumber,
			Email:       row.Email,
			Role:        domain.Role(row.Role),
			CreatedAt:   row.UserCreatedAt,
		},
		Company: domain.Company{
			ID:       domain.CompanyID(row.CompanyID),
			Name:     row.CompanyName,
			Overview: row.CompanyOverview,
			Industry: row.CompanyIndustry,
			SizeTier: row.CompanySizeTier,
		},
		BoundAt: row.BoundAt,
	}
	if row.AddressID.Valid {
		profile.Address = &domain.Address{
			ID:      domain.AddressID(row.AddressID.UUID),
			Street:  row.AddressStreet.String,
			City:    row.AddressCity.String,
			County:  row.AddressCounty.String,
			State:   row.AddressState.String,
			Country: row.AddressCountry.String,
		}
	}

	return profile, nil
}
