package mysql

import (
	"context"

	approvalDomain "fund-management-backend/internal/domain/approval"

	"gorm.io/gorm"
)

type ApprovalHistoryRepository struct{ db *gorm.DB }

func NewApprovalHistoryRepository(db *gorm.DB) *ApprovalHistoryRepository {
	return &ApprovalHistoryRepository{db: db}
}

func (r *ApprovalHistoryRepository) Create(ctx context.Context, h *approvalDomain.History) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *ApprovalHistoryRepository) ListByApplication(ctx context.Context, applicationID string) ([]approvalDomain.History, error) {
	var out []approvalDomain.History
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&out)
	return out, res.Error
}
