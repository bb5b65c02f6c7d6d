package fundpool

import (
	"context"
	"time"

	domain "fund-management-backend/internal/domain/fundpool"
	"fund-management-backend/internal/domain/uow"

	"go.uber.org/zap"
)

type Usecase struct {
	uow uow.UnitOfWork
	log *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{uow: tx, log: log}
}

func (u *Usecase) Get(ctx context.Context) (*domain.FundPool, error) {
	var out *domain.FundPool
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		out, err = r.FundPool.Get(ctx)
		return err
	})
	return out, err
}

// Recalculate rebuilds the ledger from source records: completed deposits,
// disbursement amounts, and paid installments. This is the authoritative
// repair path for any drift left by missed incremental updates.
func (u *Usecase) Recalculate(ctx context.Context, actor string) (*domain.FundPool, error) {
	var out *domain.FundPool
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		deposits, err := r.Deposits.SumCompleted(ctx)
		if err != nil {
			return err
		}
		disbursed, err := r.Disbursements.SumAll(ctx)
		if err != nil {
			return err
		}
		repaid, err := r.Schedules.SumPaid(ctx)
		if err != nil {
			return err
		}

		pool := &domain.FundPool{
			TotalDeposits:  deposits,
			TotalDisbursed: disbursed,
			TotalRepaid:    repaid,
			LastUpdated:    time.Now().UTC(),
			UpdatedBy:      actor,
		}
		pool.Recompute()
		if err := r.FundPool.Replace(ctx, pool); err != nil {
			return err
		}
		out = pool
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("fund pool recalculated",
		zap.Float64("total_deposits", out.TotalDeposits),
		zap.Float64("total_disbursed", out.TotalDisbursed),
		zap.Float64("total_repaid", out.TotalRepaid),
		zap.Float64("available_balance", out.AvailableBalance),
		zap.String("actor", actor))
	return out, nil
}
