package mysql

import (
	"context"

	userDomain "fund-management-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) ListAll(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Order("created_at DESC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) ListActiveMembers(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", userDomain.RoleMember, true).
		Find(&out)
	return out, res.Error
}

func (r *UserRepository) ListUserIDsByCountry(ctx context.Context, country string) ([]string, error) {
	var out []string
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("country = ?", country).
		Pluck("user_id", &out)
	return out, res.Error
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID string, role userDomain.Role) error {
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("user_id = ?", userID).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&userDomain.User{}).Count(&n)
	return n, res.Error
}

func (r *UserRepository) CountByCountryRole(ctx context.Context, country string, role userDomain.Role) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("country = ? AND role = ?", country, role).
		Count(&n)
	return n, res.Error
}

func (r *UserRepository) RoleDistribution(ctx context.Context) ([]userDomain.RoleCount, error) {
	var out []userDomain.RoleCount
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&out)
	return out, res.Error
}

func (r *UserRepository) CountryDistribution(ctx context.Context, limit int) ([]userDomain.CountryCount, error) {
	var out []userDomain.CountryCount
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Select("country, COUNT(*) AS count").
		Group("country").
		Order("count DESC").
		Limit(limit).
		Scan(&out)
	return out, res.Error
}
