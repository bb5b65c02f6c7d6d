package mysql

import (
	"context"

	scheduleDomain "fund-management-backend/internal/domain/schedule"

	"gorm.io/gorm"
)

type ScheduleRepository struct{ db *gorm.DB }

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository { return &ScheduleRepository{db: db} }

func (r *ScheduleRepository) CreateBatch(ctx context.Context, rows []*scheduleDomain.Installment) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(rows).Error
}

func (r *ScheduleRepository) ListByUser(ctx context.Context, userID string) ([]scheduleDomain.Installment, error) {
	var out []scheduleDomain.Installment
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&out)
	return out, res.Error
}

func (r *ScheduleRepository) ListByApplication(ctx context.Context, applicationID string) ([]scheduleDomain.Installment, error) {
	var out []scheduleDomain.Installment
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("installment_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *ScheduleRepository) SumPaid(ctx context.Context) (float64, error) {
	var total float64
	res := r.db.WithContext(ctx).
		Model(&scheduleDomain.Installment{}).
		Where("status = ?", scheduleDomain.StatusPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total)
	return total, res.Error
}

func (r *ScheduleRepository) SumPendingByUser(ctx context.Context, userID string) (float64, error) {
	var total float64
	res := r.db.WithContext(ctx).
		Model(&scheduleDomain.Installment{}).
		Where("user_id = ? AND status IN ?", userID,
			[]scheduleDomain.Status{scheduleDomain.StatusScheduled, scheduleDomain.StatusPending, scheduleDomain.StatusOverdue, scheduleDomain.StatusPartial}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total)
	return total, res.Error
}
