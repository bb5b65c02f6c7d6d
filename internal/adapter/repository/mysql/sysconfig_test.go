package mysql

import (
	"context"
	"testing"

	sysconfigDomain "fund-management-backend/internal/domain/sysconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSysConfigRepository_GetServesDefaults(t *testing.T) {
	db := openTestDB(t)
	repo := NewSysConfigRepository(db)
	ctx := context.Background()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, sysconfigDomain.DefaultMinimumDepositForGuarantor, got.MinimumDepositForGuarantor)
	assert.Equal(t, sysconfigDomain.DefaultPriorityWeight, got.PriorityWeight)
	assert.Equal(t, sysconfigDomain.DefaultMaxLoanDurationMonths, got.MaxLoanDurationMonths)
	assert.Equal(t, sysconfigDomain.DefaultCountryCoordinatorLimit, got.CountryCoordinatorLimit)

	var n int64
	require.NoError(t, db.Model(&sysconfigDomain.Config{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestSysConfigRepository_UpdatePersists(t *testing.T) {
	db := openTestDB(t)
	repo := NewSysConfigRepository(db)
	ctx := context.Background()

	cfg, err := repo.Get(ctx)
	require.NoError(t, err)

	cfg.MinimumDepositForGuarantor = 750
	cfg.CountryCoordinatorLimit = 6000
	cfg.UpdatedBy = "ga1"
	require.NoError(t, repo.Update(ctx, cfg))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 750.0, got.MinimumDepositForGuarantor)
	assert.Equal(t, 6000.0, got.CountryCoordinatorLimit)
	assert.Equal(t, "ga1", got.UpdatedBy)
	// untouched fields keep their defaults
	assert.Equal(t, sysconfigDomain.DefaultMaxLoanAmount, got.MaxLoanAmount)

	var n int64
	require.NoError(t, db.Model(&sysconfigDomain.Config{}).Count(&n).Error)
	assert.Equal(t, int64(1), n, "update never forks the singleton")
}
