package mysql

import (
	"context"
	"time"

	fundpoolDomain "fund-management-backend/internal/domain/fundpool"

	"gorm.io/gorm"
)

// The ledger lives in a single row with id=1.
const fundPoolRowID = 1

type FundPoolRepository struct{ db *gorm.DB }

func NewFundPoolRepository(db *gorm.DB) *FundPoolRepository { return &FundPoolRepository{db: db} }

func (r *FundPoolRepository) Get(ctx context.Context) (*fundpoolDomain.FundPool, error) {
	var out fundpoolDomain.FundPool
	res := r.db.WithContext(ctx).
		Where(fundpoolDomain.FundPool{ID: fundPoolRowID}).
		Attrs(fundpoolDomain.FundPool{LastUpdated: time.Now().UTC()}).
		FirstOrCreate(&out)
	return &out, res.Error
}

// ApplyDelta increments the totals in one UPDATE statement. The arithmetic
// runs inside the database, so concurrent callers cannot lose updates the way
// a read-compute-write sequence would.
func (r *FundPoolRepository) ApplyDelta(ctx context.Context, d fundpoolDomain.Delta, actor string) (*fundpoolDomain.FundPool, error) {
	if _, err := r.Get(ctx); err != nil { // make sure the row exists
		return nil, err
	}

	updates := map[string]any{
		"total_deposits":  gorm.Expr("total_deposits + ?", d.Deposits),
		"total_disbursed": gorm.Expr("total_disbursed + ?", d.Disbursements),
		"total_repaid":    gorm.Expr("total_repaid + ?", d.Repayments),
		// available_balance = total_deposits + total_repaid - total_disbursed
		"available_balance": gorm.Expr("available_balance + ? + ? - ?", d.Deposits, d.Repayments, d.Disbursements),
		// total_receivables = total_disbursed - total_repaid
		"total_receivables": gorm.Expr("total_receivables + ? - ?", d.Disbursements, d.Repayments),
		"last_updated":      time.Now().UTC(),
		"updated_by":        actor,
	}
	res := r.db.WithContext(ctx).
		Model(&fundpoolDomain.FundPool{}).
		Where("id = ?", fundPoolRowID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}

	var out fundpoolDomain.FundPool
	if err := r.db.WithContext(ctx).First(&out, fundPoolRowID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *FundPoolRepository) Replace(ctx context.Context, p *fundpoolDomain.FundPool) error {
	if _, err := r.Get(ctx); err != nil {
		return err
	}
	p.ID = fundPoolRowID
	return r.db.WithContext(ctx).Save(p).Error
}
