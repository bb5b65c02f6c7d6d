package disbursement

import (
	"context"
	"errors"
	"time"

	appDomain "fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/apperr"
	disbDomain "fund-management-backend/internal/domain/disbursement"
	fundpoolDomain "fund-management-backend/internal/domain/fundpool"
	guarantorDomain "fund-management-backend/internal/domain/guarantor"
	scheduleDomain "fund-management-backend/internal/domain/schedule"
	"fund-management-backend/internal/domain/uow"
	userDomain "fund-management-backend/internal/domain/user"
	"fund-management-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Usecase struct {
	uow uow.UnitOfWork
	log *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{uow: tx, log: log}
}

type DisburseInput struct {
	ApplicationID   string
	Actor           *userDomain.User
	Notes           string
	ReferenceNumber string
	Method          string
}

// Result carries everything the payout produced: the disbursement record,
// the generated schedule, and the ledger state after the movement.
type Result struct {
	Disbursement *disbDomain.Disbursement     `json:"disbursement"`
	Schedules    []scheduleDomain.Installment `json:"payment_schedules"`
	FundPool     *fundpoolDomain.FundPool     `json:"fund_pool"`
}

// Disburse converts an approved application into a payout: preconditions are
// checked in a fixed order (existence, state, duplicate, guarantor gate,
// funds), then the disbursement, status flip, schedule, and fund-pool delta
// are applied inside one transaction with the application row locked. The
// pool is written last so a failure leaves the financially-visible ledger
// untouched.
func (u *Usecase) Disburse(ctx context.Context, in DisburseInput) (*Result, error) {
	cap, err := userDomain.CapabilityFor(in.Actor.Role)
	if err != nil {
		return nil, apperr.Permissionf("unknown role %q", in.Actor.Role)
	}
	if !cap.CanDisburse() {
		return nil, apperr.Permissionf("role %s may not disburse funds", in.Actor.Role)
	}

	var out *Result
	err = u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *appDomain.Application) error {
		if a.Status != appDomain.StatusApproved {
			return apperr.InvalidStatef("application is %s; only approved applications can be disbursed", a.Status)
		}

		if _, err := r.Disbursements.GetByApplicationID(ctx, a.ApplicationID); err == nil {
			return apperr.Conflictf("application has already been disbursed")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		gs, err := r.Guarantors.ListByApplication(ctx, a.ApplicationID)
		if err != nil {
			return err
		}
		if ready, reason := guarantorDomain.Readiness(gs); !ready {
			return apperr.Blockedf("%s", reason)
		}

		amount := a.DisbursableAmount()
		pool, err := r.FundPool.Get(ctx)
		if err != nil {
			return err
		}
		if pool.AvailableBalance < amount {
			return apperr.InsufficientFundsf("available balance %.2f cannot cover disbursement of %.2f",
				pool.AvailableBalance, amount)
		}

		ref := in.ReferenceNumber
		if ref == "" {
			ref = id.NewDisbursementRef()
		}
		now := time.Now().UTC()
		d := &disbDomain.Disbursement{
			DisbursementID:  id.NewID32(),
			ApplicationID:   a.ApplicationID,
			Amount:          amount,
			ReferenceNumber: ref,
			Method:          in.Method,
			Notes:           in.Notes,
			Status:          "disbursed",
			DisbursedBy:     in.Actor.UserID,
			DisbursedAt:     now,
		}
		if err := r.Disbursements.Create(ctx, d); err != nil {
			return err
		}

		a.Status = appDomain.StatusDisbursed
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		rows := Amortize(a.ApplicationID, a.UserID, amount, a.DurationMonths, AnnualInterestRate, now)
		if err := r.Schedules.CreateBatch(ctx, rows); err != nil {
			return err
		}

		updated, err := r.FundPool.ApplyDelta(ctx, fundpoolDomain.Delta{Disbursements: amount}, in.Actor.UserID)
		if err != nil {
			return err
		}

		schedules := make([]scheduleDomain.Installment, len(rows))
		for i, row := range rows {
			schedules[i] = *row
		}
		out = &Result{Disbursement: d, Schedules: schedules, FundPool: updated}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("application not found")
		}
		return nil, err
	}

	u.log.Info("disbursed application",
		zap.String("application_id", in.ApplicationID),
		zap.Float64("amount", out.Disbursement.Amount),
		zap.String("reference", out.Disbursement.ReferenceNumber),
		zap.String("actor", in.Actor.UserID))
	return out, nil
}

// ReadyItem is an approved application annotated with its guarantor gate.
type ReadyItem struct {
	appDomain.Application
	ReadyForDisbursement bool   `json:"ready_for_disbursement"`
	ReadinessReason      string `json:"readiness_reason"`
}

// ReadyForDisbursement lists approved applications with their readiness
// verdicts, priority-sorted.
func (u *Usecase) ReadyForDisbursement(ctx context.Context) ([]ReadyItem, error) {
	var out []ReadyItem
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		apps, err := r.Applications.ListByStatus(ctx, appDomain.StatusApproved)
		if err != nil {
			return err
		}
		out = make([]ReadyItem, len(apps))
		for i := range apps {
			gs, err := r.Guarantors.ListByApplication(ctx, apps[i].ApplicationID)
			if err != nil {
				return err
			}
			ready, reason := guarantorDomain.Readiness(gs)
			out[i] = ReadyItem{Application: apps[i], ReadyForDisbursement: ready, ReadinessReason: reason}
		}
		return nil
	})
	return out, err
}

// ListAll is the admin listing of every disbursement, newest first.
func (u *Usecase) ListAll(ctx context.Context) ([]disbDomain.Disbursement, error) {
	var out []disbDomain.Disbursement
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		out, err = r.Disbursements.ListAll(ctx)
		return err
	})
	return out, err
}
