package mysql

import (
	"context"

	guarantorDomain "fund-management-backend/internal/domain/guarantor"

	"gorm.io/gorm"
)

type GuarantorRepository struct{ db *gorm.DB }

func NewGuarantorRepository(db *gorm.DB) *GuarantorRepository {
	return &GuarantorRepository{db: db}
}

func (r *GuarantorRepository) CreateBatch(ctx context.Context, gs []*guarantorDomain.Guarantor) error {
	if len(gs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(gs).Error
}

func (r *GuarantorRepository) GetByGuarantorID(ctx context.Context, guarantorID string) (*guarantorDomain.Guarantor, error) {
	var out guarantorDomain.Guarantor
	res := r.db.WithContext(ctx).Where("guarantor_id = ?", guarantorID).First(&out)
	return &out, res.Error
}

func (r *GuarantorRepository) Save(ctx context.Context, g *guarantorDomain.Guarantor) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GuarantorRepository) ListByApplication(ctx context.Context, applicationID string) ([]guarantorDomain.Guarantor, error) {
	var out []guarantorDomain.Guarantor
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&out)
	return out, res.Error
}

func (r *GuarantorRepository) ListByUser(ctx context.Context, userID string) ([]guarantorDomain.Guarantor, error) {
	var out []guarantorDomain.Guarantor
	res := r.db.WithContext(ctx).
		Where("guarantor_user_id = ?", userID).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}

func (r *GuarantorRepository) ListAll(ctx context.Context) ([]guarantorDomain.Guarantor, error) {
	var out []guarantorDomain.Guarantor
	res := r.db.WithContext(ctx).Order("created_at DESC").Find(&out)
	return out, res.Error
}

func (r *GuarantorRepository) CountPendingByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&guarantorDomain.Guarantor{}).
		Where("guarantor_user_id = ? AND status = ?", userID, guarantorDomain.StatusPending).
		Count(&n)
	return n, res.Error
}

func (r *GuarantorRepository) StatusDistribution(ctx context.Context) ([]guarantorDomain.StatusCount, error) {
	var out []guarantorDomain.StatusCount
	res := r.db.WithContext(ctx).
		Model(&guarantorDomain.Guarantor{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&out)
	return out, res.Error
}
