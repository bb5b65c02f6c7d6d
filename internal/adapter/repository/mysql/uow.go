package mysql

import (
	"context"

	"fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:         &UserRepository{db: tx},
		Deposits:      &DepositRepository{db: tx},
		Applications:  &ApplicationRepository{db: tx},
		Guarantors:    &GuarantorRepository{db: tx},
		Approvals:     &ApprovalHistoryRepository{db: tx},
		Disbursements: &DisbursementRepository{db: tx},
		Schedules:     &ScheduleRepository{db: tx},
		FundPool:      &FundPoolRepository{db: tx},
		Config:        &SysConfigRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the application row up-front to prevent races
		a, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}
