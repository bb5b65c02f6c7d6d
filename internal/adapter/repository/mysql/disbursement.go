package mysql

import (
	"context"

	disbDomain "fund-management-backend/internal/domain/disbursement"

	"gorm.io/gorm"
)

type DisbursementRepository struct{ db *gorm.DB }

func NewDisbursementRepository(db *gorm.DB) *DisbursementRepository {
	return &DisbursementRepository{db: db}
}

func (r *DisbursementRepository) Create(ctx context.Context, d *disbDomain.Disbursement) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DisbursementRepository) GetByApplicationID(ctx context.Context, applicationID string) (*disbDomain.Disbursement, error) {
	var out disbDomain.Disbursement
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *DisbursementRepository) ListAll(ctx context.Context) ([]disbDomain.Disbursement, error) {
	var out []disbDomain.Disbursement
	res := r.db.WithContext(ctx).Order("disbursed_at DESC").Find(&out)
	return out, res.Error
}

func (r *DisbursementRepository) SumAll(ctx context.Context) (float64, error) {
	var total float64
	res := r.db.WithContext(ctx).
		Model(&disbDomain.Disbursement{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, res.Error
}
