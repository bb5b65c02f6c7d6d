package application

import (
	"context"
	"testing"

	appDomain "fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/apperr"
	guarantorDomain "fund-management-backend/internal/domain/guarantor"
	"fund-management-backend/internal/domain/uow"
	userDomain "fund-management-backend/internal/domain/user"
	"fund-management-backend/internal/testutil/appmock"
	"fund-management-backend/internal/testutil/configmock"
	"fund-management-backend/internal/testutil/depositmock"
	"fund-management-backend/internal/testutil/guarantormock"
	"fund-management-backend/internal/testutil/usermock"
	"fund-management-backend/internal/testutil/uowmock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func fixtureUoW() (*uowmock.UoW, *appmock.Repo, *guarantormock.Repo) {
	apps := &appmock.Repo{
		CountByUserFn: func(ctx context.Context, userID string) (int64, error) { return 0, nil },
	}
	guarantors := &guarantormock.Repo{}
	users := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			return &userDomain.User{
				UserID:   userID,
				FullName: "Backer " + userID,
				Email:    userID + "@example.com",
				Role:     userDomain.RoleMember,
				IsActive: true,
			}, nil
		},
	}
	deposits := &depositmock.Repo{
		SumCompletedByUserFn: func(ctx context.Context, userID string) (float64, error) { return 600, nil },
	}
	u := &uowmock.UoW{Repos: uow.Repos{
		Users:        users,
		Deposits:     deposits,
		Applications: apps,
		Guarantors:   guarantors,
		Config:       &configmock.Repo{},
	}}
	return u, apps, guarantors
}

func TestCreate_SplitsGuaranteeEqually(t *testing.T) {
	u, apps, guarantors := fixtureUoW()

	var created *appDomain.Application
	apps.CreateFn = func(ctx context.Context, a *appDomain.Application) error { created = a; return nil }
	var batch []*guarantorDomain.Guarantor
	guarantors.CreateBatchFn = func(ctx context.Context, gs []*guarantorDomain.Guarantor) error { batch = gs; return nil }

	uc := NewUsecase(u)
	out, err := uc.Create(context.Background(), CreateInput{
		UserID:         "applicant",
		Amount:         1000,
		Purpose:        "equipment",
		DurationMonths: 12,
		Guarantors:     []string{"g1", "g2"},
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, appDomain.StatusPending, out.Status)
	assert.False(t, out.RequiresHigherApproval)
	assert.Equal(t, 100.0, out.PriorityScore)

	require.Len(t, batch, 2)
	assert.Equal(t, 500.0, batch[0].GuaranteedAmount)
	assert.Equal(t, 500.0, batch[1].GuaranteedAmount)
	assert.Equal(t, guarantorDomain.StatusPending, batch[0].Status)
	assert.Equal(t, created.ApplicationID, batch[0].ApplicationID)
}

func TestCreate_RepeatApplicantScoresLower(t *testing.T) {
	u, apps, _ := fixtureUoW()
	apps.CountByUserFn = func(ctx context.Context, userID string) (int64, error) { return 2, nil }

	uc := NewUsecase(u)
	out, err := uc.Create(context.Background(), CreateInput{
		UserID: "applicant", Amount: 1000, Purpose: "stock", DurationMonths: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, out.PriorityScore)
	assert.Equal(t, int64(2), out.PreviousFinancesCount)
}

func TestCreate_LargeAmountEntersHigherApprovalTrack(t *testing.T) {
	u, _, _ := fixtureUoW()
	uc := NewUsecase(u)

	// default coordinator limit is 5000
	out, err := uc.Create(context.Background(), CreateInput{
		UserID: "applicant", Amount: 7500, Purpose: "vehicle", DurationMonths: 24,
	})
	require.NoError(t, err)
	assert.Equal(t, appDomain.StatusRequiresHigherApproval, out.Status)
	assert.True(t, out.RequiresHigherApproval)
}

func TestCreate_RejectsUnderfundedGuarantor(t *testing.T) {
	u, apps, guarantors := fixtureUoW()
	u.Repos.Deposits = &depositmock.Repo{
		SumCompletedByUserFn: func(ctx context.Context, userID string) (float64, error) { return 300, nil },
	}
	apps.CreateFn = func(ctx context.Context, a *appDomain.Application) error {
		t.Fatal("application must not be created when a guarantor is ineligible")
		return nil
	}
	guarantors.CreateBatchFn = func(ctx context.Context, gs []*guarantorDomain.Guarantor) error {
		t.Fatal("guarantors must not be created when one is ineligible")
		return nil
	}

	uc := NewUsecase(u)
	_, err := uc.Create(context.Background(), CreateInput{
		UserID: "applicant", Amount: 600, Purpose: "stock", DurationMonths: 6,
		Guarantors: []string{"g1"},
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "not eligible to be a guarantor")
}

func TestCreate_UnknownGuarantor(t *testing.T) {
	u, _, _ := fixtureUoW()
	u.Repos.Users = &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	uc := NewUsecase(u)
	_, err := uc.Create(context.Background(), CreateInput{
		UserID: "applicant", Amount: 600, Purpose: "stock", DurationMonths: 6,
		Guarantors: []string{"ghost"},
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "guarantor user not found")
}

func TestCreate_InputValidation(t *testing.T) {
	u, _, _ := fixtureUoW()
	uc := NewUsecase(u)
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
		want string
	}{
		{"zero amount", CreateInput{UserID: "u", Amount: 0, Purpose: "x", DurationMonths: 6}, "amount must be positive"},
		{"over max", CreateInput{UserID: "u", Amount: 200000, Purpose: "x", DurationMonths: 6}, "exceeds maximum loan amount"},
		{"no purpose", CreateInput{UserID: "u", Amount: 100, DurationMonths: 6}, "purpose is required"},
		{"zero duration", CreateInput{UserID: "u", Amount: 100, Purpose: "x"}, "duration must be positive"},
		{"over max duration", CreateInput{UserID: "u", Amount: 100, Purpose: "x", DurationMonths: 61}, "exceeds maximum"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.in)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindValidation))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestListForReviewer_CoordinatorIsCountryScoped(t *testing.T) {
	u, apps, guarantors := fixtureUoW()
	var askedCountry string
	apps.ListByCountryFn = func(ctx context.Context, country string) ([]appDomain.Application, error) {
		askedCountry = country
		return []appDomain.Application{{ApplicationID: "a1", UserID: "m1"}}, nil
	}
	guarantors.ListByApplicationFn = func(ctx context.Context, applicationID string) ([]guarantorDomain.Guarantor, error) {
		return nil, nil
	}

	uc := NewUsecase(u)
	rows, err := uc.ListForReviewer(context.Background(), &userDomain.User{
		UserID: "cc", Role: userDomain.RoleCountryCoordinator, Country: "Kenya",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kenya", askedCountry)
	require.Len(t, rows, 1)
}

func TestListForReviewer_MemberForbidden(t *testing.T) {
	u, _, _ := fixtureUoW()
	uc := NewUsecase(u)

	_, err := uc.ListForReviewer(context.Background(), &userDomain.User{
		UserID: "m", Role: userDomain.RoleMember,
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindPermission))
}
