package mysql

import (
	"context"
	"errors"
	"testing"

	userDomain "fund-management-backend/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_UpdateRole(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "u1", "Kenya")

	require.NoError(t, repo.UpdateRole(ctx, "u1", userDomain.RoleCountryCoordinator))

	got, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, userDomain.RoleCountryCoordinator, got.Role)

	err = repo.UpdateRole(ctx, "ghost", userDomain.RoleMember)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "zero rows affected means unknown user")
}

func TestUserRepository_Distributions(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "u1", "Kenya")
	seedUser(t, db, "u2", "Kenya")
	seedUser(t, db, "u3", "Uganda")
	require.NoError(t, repo.UpdateRole(ctx, "u3", userDomain.RoleFundAdmin))

	roles, err := repo.RoleDistribution(ctx)
	require.NoError(t, err)
	byRole := map[string]int64{}
	for _, r := range roles {
		byRole[r.Role] = r.Count
	}
	assert.Equal(t, int64(2), byRole["member"])
	assert.Equal(t, int64(1), byRole["fund_admin"])

	countries, err := repo.CountryDistribution(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, countries)
	assert.Equal(t, "Kenya", countries[0].Country, "largest country first")
	assert.Equal(t, int64(2), countries[0].Count)

	n, err := repo.CountByCountryRole(ctx, "Kenya", userDomain.RoleMember)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	ids, err := repo.ListUserIDsByCountry(ctx, "Uganda")
	require.NoError(t, err)
	assert.Equal(t, []string{"u3"}, ids)
}
