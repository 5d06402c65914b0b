package postgres_test

import (
	"context"
	"testing"
	"time"

	"careerbridge/pkg/domain"
	"careerbridge/pkg/storage"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPgSQL_UpdateApplicantInfo(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := seedApplicant(t, pg, "ada@example.com")

	affected, err := pg.UpdateApplicantInfo(ctx, user.ID, storage.ApplicantUpdates{
		FirstName:  strPtr("Augusta"),
		ResumeLink: strPtr("https://example.com/new.pdf"),
	})
	require.NoError(t, err)
	require.True(t, affected)

	profile, err := pg.ApplicantProfile(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.Equal(t, "Augusta", profile.User.FirstName)
	require.Equal(t, "Lovelace", profile.User.LastName)
	require.Equal(t, "https://example.com/new.pdf", profile.ResumeLink)
	require.False(t, profile.User.UpdatedAt.IsZero())

	// patching a missing applicant reports no rows
	affected, err = pg.UpdateApplicantInfo(ctx, domain.UserID{}, storage.ApplicantUpdates{
		FirstName: strPtr("Nobody"),
	})
	require.NoError(t, err)
	require.False(t, affected)
}

func TestPgSQL_UpdateApplicantInfo_DuplicateEmail(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	first := seedApplicant(t, pg, "first@example.com")
	_ = seedApplicant(t, pg, "second@example.com")

	_, err := pg.UpdateApplicantInfo(ctx, first.ID, storage.ApplicantUpdates{
		Email: strPtr("second@example.com"),
	})
	require.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestPgSQL_ReplaceSkills(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	first := seedApplicant(t, pg, "ada@example.com")
	second := seedApplicant(t, pg, "grace@example.com")

	require.NoError(t, pg.ReplaceSkills(ctx, first.ID, []string{"go", "sql"}))
	// shared skill names must reuse the same global skill rows
	require.NoError(t, pg.ReplaceSkills(ctx, second.ID, []string{"go", "cobol"}))

	profile, err := pg.ApplicantProfile(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"go", "sql"}, profile.Skills)

	// replace with a new set
	require.NoError(t, pg.ReplaceSkills(ctx, first.ID, []string{"rust"}))
	profile, err = pg.ApplicantProfile(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"rust"}, profile.Skills)

	// empty set clears all links without touching the other applicant
	require.NoError(t, pg.ReplaceSkills(ctx, first.ID, nil))
	profile, err = pg.ApplicantProfile(ctx, first.ID)
	require.NoError(t, err)
	require.Empty(t, profile.Skills)

	profile, err = pg.ApplicantProfile(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"cobol", "go"}, profile.Skills)
}

func TestPgSQL_ReplaceExperienceAndEducation(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := seedApplicant(t, pg, "ada@example.com")

	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, pg.ReplaceExperience(ctx, user.ID, []domain.Experience{
		{
			Employer:  "Analytical Engines Ltd",
			Title:     "Programmer",
			StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   &end,
		},
		{
			Employer:  "Babbage & Co",
			Title:     "Senior Programmer",
			StartDate: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
			Current:   true,
		},
	}))

	require.NoError(t, pg.ReplaceEducation(ctx, user.ID, []domain.Education{
		{
			Institution: "University of London",
			Degree:      "BSc",
			Field:       "Mathematics",
			StartDate:   time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC),
			GPA:         "4.0",
		},
	}))

	profile, err := pg.ApplicantProfile(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, profile.Experience, 2)
	// newest first
	require.Equal(t, "Babbage & Co", profile.Experience[0].Employer)
	require.True(t, profile.Experience[0].Current)
	require.Nil(t, profile.Experience[0].EndDate)
	require.NotNil(t, profile.Experience[1].EndDate)
	require.Len(t, profile.Education, 1)
	require.Equal(t, "University of London", profile.Education[0].Institution)

	// empty replacement wipes the sets
	require.NoError(t, pg.ReplaceExperience(ctx, user.ID, []domain.Experience{}))
	require.NoError(t, pg.ReplaceEducation(ctx, user.ID, []domain.Education{}))

	profile, err = pg.ApplicantProfile(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, profile.Experience)
	require.Empty(t, profile.Education)
}

func TestPgSQL_ApplicantProfile_NotAnApplicant(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user, err := pg.StoreUser(ctx, domain.User{
		FirstName:      "Riley",
		LastName:       "Chen",
		Email:          "riley@example.com",
		CredentialHash: "$2a$10$hash",
		Role:           domain.RoleRecruiter,
	})
	require.NoError(t, err)

	profile, err := pg.ApplicantProfile(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, profile)
}
