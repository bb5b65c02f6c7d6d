package mysql

import (
	"context"
	"errors"
	"testing"

	appDomain "fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/uow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormUoW_WithinTxCommits(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		return r.Applications.Create(ctx, &appDomain.Application{
			ApplicationID: "app1",
			UserID:        "u1",
			Amount:        500,
			Status:        appDomain.StatusPending,
		})
	})
	require.NoError(t, err)

	got, err := NewApplicationRepository(db).GetByApplicationID(ctx, "app1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
}

func TestGormUoW_WithinTxRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Applications.Create(ctx, &appDomain.Application{
			ApplicationID: "app1",
			UserID:        "u1",
			Amount:        500,
			Status:        appDomain.StatusPending,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewApplicationRepository(db).GetByApplicationID(ctx, "app1")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "write must not survive the rollback")
}
