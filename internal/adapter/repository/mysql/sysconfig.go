package mysql

import (
	"context"

	sysconfigDomain "fund-management-backend/internal/domain/sysconfig"

	"gorm.io/gorm"
)

const sysConfigRowID = 1

type SysConfigRepository struct{ db *gorm.DB }

func NewSysConfigRepository(db *gorm.DB) *SysConfigRepository {
	return &SysConfigRepository{db: db}
}

func (r *SysConfigRepository) Get(ctx context.Context) (*sysconfigDomain.Config, error) {
	defaults := sysconfigDomain.DefaultConfig()
	var out sysconfigDomain.Config
	res := r.db.WithContext(ctx).
		Where(sysconfigDomain.Config{ID: sysConfigRowID}).
		Attrs(*defaults).
		FirstOrCreate(&out)
	return &out, res.Error
}

func (r *SysConfigRepository) Update(ctx context.Context, c *sysconfigDomain.Config) error {
	if _, err := r.Get(ctx); err != nil {
		return err
	}
	c.ID = sysConfigRowID
	return r.db.WithContext(ctx).Save(c).Error
}
