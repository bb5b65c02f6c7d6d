// Package schedule exposes the repayment schedule read side.
package schedule

import (
	"context"

	domain "fund-management-backend/internal/domain/schedule"
	"fund-management-backend/internal/domain/uow"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

func (u *Usecase) ListOwn(ctx context.Context, userID string) ([]domain.Installment, error) {
	var out []domain.Installment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		out, err = r.Schedules.ListByUser(ctx, userID)
		return err
	})
	return out, err
}

func (u *Usecase) ListByApplication(ctx context.Context, applicationID string) ([]domain.Installment, error) {
	var out []domain.Installment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		out, err = r.Schedules.ListByApplication(ctx, applicationID)
		return err
	})
	return out, err
}
