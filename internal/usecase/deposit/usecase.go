package deposit

import (
	"context"
	"time"

	"fund-management-backend/internal/domain/apperr"
	domain "fund-management-backend/internal/domain/deposit"
	fundpoolDomain "fund-management-backend/internal/domain/fundpool"
	"fund-management-backend/internal/domain/uow"
	"fund-management-backend/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Create records a completed deposit and moves the fund pool in the same
// transaction. Deposits are immutable once created.
func (u *Usecase) Create(ctx context.Context, userID string, amount float64, description string) (*domain.Deposit, error) {
	if amount <= 0 {
		return nil, apperr.Validationf("amount must be positive")
	}

	d := &domain.Deposit{
		DepositID:   id.NewID32(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Status:      domain.StatusCompleted,
		CreatedAt:   time.Now().UTC(),
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Deposits.Create(ctx, d); err != nil {
			return err
		}
		_, err := r.FundPool.ApplyDelta(ctx, fundpoolDomain.Delta{Deposits: amount}, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (u *Usecase) ListOwn(ctx context.Context, userID string) ([]domain.Deposit, error) {
	var out []domain.Deposit
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		out, err = r.Deposits.ListByUser(ctx, userID)
		return err
	})
	return out, err
}

func (u *Usecase) ListAll(ctx context.Context) ([]domain.WithUser, error) {
	var out []domain.WithUser
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		out, err = r.Deposits.ListAllWithUsers(ctx)
		return err
	})
	return out, err
}
