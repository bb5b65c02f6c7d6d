package sysconfig

import (
	"context"
	"testing"

	"fund-management-backend/internal/domain/apperr"
	domain "fund-management-backend/internal/domain/sysconfig"
	userDomain "fund-management-backend/internal/domain/user"
	"fund-management-backend/internal/testutil/configmock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generalAdmin() *userDomain.User {
	return &userDomain.User{UserID: "ga1", Role: userDomain.RoleGeneralAdmin, IsActive: true}
}

func validInput() UpdateInput {
	return UpdateInput{
		MinimumDepositForGuarantor: 750,
		PriorityWeight:             120,
		MaxLoanAmount:              80000,
		MaxLoanDurationMonths:      48,
		CountryCoordinatorLimit:    4000,
		FundAdminLimit:             40000,
	}
}

func TestUpdate_AppliesAllTunables(t *testing.T) {
	var persisted *domain.Config
	repo := &configmock.Repo{
		UpdateFn: func(ctx context.Context, c *domain.Config) error { persisted = c; return nil },
	}
	uc := NewUsecase(repo)

	out, err := uc.Update(context.Background(), generalAdmin(), validInput())
	require.NoError(t, err)
	require.NotNil(t, persisted)

	assert.Equal(t, 750.0, out.MinimumDepositForGuarantor)
	assert.Equal(t, 120.0, out.PriorityWeight)
	assert.Equal(t, 48, out.MaxLoanDurationMonths)
	assert.Equal(t, "ga1", out.UpdatedBy)
}

func TestUpdate_OnlyGeneralAdmin(t *testing.T) {
	uc := NewUsecase(&configmock.Repo{})

	for _, role := range []userDomain.Role{userDomain.RoleMember, userDomain.RoleCountryCoordinator, userDomain.RoleFundAdmin} {
		_, err := uc.Update(context.Background(), &userDomain.User{UserID: "x", Role: role}, validInput())
		require.Error(t, err, string(role))
		assert.True(t, apperr.Is(err, apperr.KindPermission))
	}
}

func TestUpdate_RejectsInvertedLimits(t *testing.T) {
	uc := NewUsecase(&configmock.Repo{})

	in := validInput()
	in.CountryCoordinatorLimit = 50000
	in.FundAdminLimit = 4000
	_, err := uc.Update(context.Background(), generalAdmin(), in)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestUpdate_RejectsNonPositiveValues(t *testing.T) {
	uc := NewUsecase(&configmock.Repo{})

	in := validInput()
	in.PriorityWeight = 0
	_, err := uc.Update(context.Background(), generalAdmin(), in)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestGet_ServesDefaultsLazily(t *testing.T) {
	uc := NewUsecase(&configmock.Repo{})

	cfg, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMinimumDepositForGuarantor, cfg.MinimumDepositForGuarantor)
	assert.Equal(t, domain.DefaultCountryCoordinatorLimit, cfg.CountryCoordinatorLimit)
}
