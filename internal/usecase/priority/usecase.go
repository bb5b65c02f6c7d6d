// Package priority computes an applicant's scheduling priority from their
// prior-application count. First-time applicants score highest; every prior
// application costs 10 points down to a floor of 1.
package priority

import (
	"context"

	"fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/sysconfig"

	"go.uber.org/zap"
)

type Usecase struct {
	apps application.Repository
	cfg  sysconfig.Repository
	log  *zap.Logger
}

func NewUsecase(apps application.Repository, cfg sysconfig.Repository, log *zap.Logger) *Usecase {
	return &Usecase{apps: apps, cfg: cfg, log: log}
}

// Score applies the weight curve. Exported so backfill and creation compute
// identical values.
func Score(weight float64, priorCount int64) float64 {
	if priorCount == 0 {
		return weight
	}
	score := weight - float64(priorCount)*10
	if score < 1 {
		return 1
	}
	return score
}

// Compute returns (priority_score, previous_finances_count) for the user's
// next application. Pure read; no side effects.
func (u *Usecase) Compute(ctx context.Context, userID string) (float64, int64, error) {
	priorCount, err := u.apps.CountByUser(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	cfg, err := u.cfg.Get(ctx)
	if err != nil {
		return 0, 0, err
	}
	return Score(cfg.PriorityWeight, priorCount), priorCount, nil
}

// Backfill stamps priority fields on legacy applications that predate the
// priority engine. Prior count excludes the application being backfilled, so
// recomputed values match what creation would have produced.
func (u *Usecase) Backfill(ctx context.Context) (int, error) {
	cfg, err := u.cfg.Get(ctx)
	if err != nil {
		return 0, err
	}
	missing, err := u.apps.ListMissingPriority(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range missing {
		a := &missing[i]
		// recompute as creation time would have: only applications that
		// already existed then count as prior
		priorCount, err := u.apps.CountByUserBefore(ctx, a.UserID, a.CreatedAt)
		if err != nil {
			return updated, err
		}
		a.PriorityScore = Score(cfg.PriorityWeight, priorCount)
		a.PreviousFinancesCount = priorCount
		if err := u.apps.Save(ctx, a); err != nil {
			return updated, err
		}
		updated++
	}
	if updated > 0 {
		u.log.Info("backfilled application priority", zap.Int("updated", updated))
	}
	return updated, nil
}
