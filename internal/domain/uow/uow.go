package uow

import (
	"context"

	"fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/approval"
	"fund-management-backend/internal/domain/deposit"
	"fund-management-backend/internal/domain/disbursement"
	"fund-management-backend/internal/domain/fundpool"
	"fund-management-backend/internal/domain/guarantor"
	"fund-management-backend/internal/domain/schedule"
	"fund-management-backend/internal/domain/sysconfig"
	"fund-management-backend/internal/domain/user"
)

// Repos is the full repository set bound to one transaction.
type Repos struct {
	Users         user.Repository
	Deposits      deposit.Repository
	Applications  application.Repository
	Guarantors    guarantor.Repository
	Approvals     approval.Repository
	Disbursements disbursement.Repository
	Schedules     schedule.Repository
	FundPool      fundpool.Repository
	Config        sysconfig.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside one transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinApplicationTx locks the application row first, then passes it in.
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
}
