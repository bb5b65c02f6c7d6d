package mysql

import (
	"context"

	depositDomain "fund-management-backend/internal/domain/deposit"
	userDomain "fund-management-backend/internal/domain/user"

	"gorm.io/gorm"
)

type DepositRepository struct{ db *gorm.DB }

func NewDepositRepository(db *gorm.DB) *DepositRepository { return &DepositRepository{db: db} }

func (r *DepositRepository) Create(ctx context.Context, d *depositDomain.Deposit) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DepositRepository) ListByUser(ctx context.Context, userID string) ([]depositDomain.Deposit, error) {
	var out []depositDomain.Deposit
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}

func (r *DepositRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]depositDomain.Deposit, error) {
	var out []depositDomain.Deposit
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *DepositRepository) ListAllWithUsers(ctx context.Context) ([]depositDomain.WithUser, error) {
	var out []depositDomain.WithUser
	res := r.db.WithContext(ctx).
		Model(&depositDomain.Deposit{}).
		Select("deposits.*, users.full_name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN users ON users.user_id = deposits.user_id").
		Order("deposits.created_at DESC").
		Scan(&out)
	return out, res.Error
}

func (r *DepositRepository) SumCompletedByUser(ctx context.Context, userID string) (float64, error) {
	var total float64
	res := r.db.WithContext(ctx).
		Model(&depositDomain.Deposit{}).
		Where("user_id = ? AND status = ?", userID, depositDomain.StatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, res.Error
}

func (r *DepositRepository) SumCompleted(ctx context.Context) (float64, error) {
	var total float64
	res := r.db.WithContext(ctx).
		Model(&depositDomain.Deposit{}).
		Where("status = ?", depositDomain.StatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, res.Error
}

func (r *DepositRepository) SumCompletedByCountry(ctx context.Context, country string) (float64, error) {
	var total float64
	sub := r.db.Model(&userDomain.User{}).Select("user_id").Where("country = ?", country)
	res := r.db.WithContext(ctx).
		Model(&depositDomain.Deposit{}).
		Where("status = ? AND user_id IN (?)", depositDomain.StatusCompleted, sub).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, res.Error
}
