package mysql

import (
	"context"
	"time"

	appDomain "fund-management-backend/internal/domain/application"
	userDomain "fund-management-backend/internal/domain/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// priorityOrder is the sort key for every approval queue: higher score first,
// ties broken oldest-first.
const priorityOrder = "priority_score DESC, created_at ASC"

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).Order(priorityOrder).Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListByCountry(ctx context.Context, country string) ([]appDomain.Application, error) {
	var out []appDomain.Application
	sub := r.db.Model(&userDomain.User{}).Select("user_id").Where("country = ?", country)
	res := r.db.WithContext(ctx).
		Where("user_id IN (?)", sub).
		Order(priorityOrder).
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) queueQuery(ctx context.Context, f appDomain.QueueFilter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Where("status IN ?", f.Statuses).
		Order(priorityOrder)
	if f.MaxAmount != nil {
		// the disbursable amount: an approved override supersedes the request
		q = q.Where("COALESCE(approved_amount, amount) <= ?", *f.MaxAmount)
	}
	if f.Country != nil {
		sub := r.db.Model(&userDomain.User{}).Select("user_id").Where("country = ?", *f.Country)
		q = q.Where("user_id IN (?)", sub)
	}
	return q
}

func (r *ApplicationRepository) ListQueue(ctx context.Context, f appDomain.QueueFilter) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.queueQuery(ctx, f).Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListQueueLimit(ctx context.Context, f appDomain.QueueFilter, limit int) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.queueQuery(ctx, f).Limit(limit).Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListByStatus(ctx context.Context, status appDomain.Status) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order(priorityOrder).
		Find(&out)
	return out, res.Error
}

// ListMissingPriority returns legacy rows whose priority was never stamped.
// A real score is never below 1, so zero means unset.
func (r *ApplicationRepository) ListMissingPriority(ctx context.Context) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("priority_score IS NULL OR priority_score = 0").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Where("user_id = ?", userID).
		Count(&n)
	return n, res.Error
}

func (r *ApplicationRepository) CountByUserBefore(ctx context.Context, userID string, before time.Time) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Where("user_id = ? AND created_at < ?", userID, before).
		Count(&n)
	return n, res.Error
}

func (r *ApplicationRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&appDomain.Application{}).Count(&n)
	return n, res.Error
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context, status appDomain.Status) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Where("status = ?", status).
		Count(&n)
	return n, res.Error
}

func (r *ApplicationRepository) CountByCountryStatus(ctx context.Context, country string, statuses []appDomain.Status) (int64, error) {
	var n int64
	sub := r.db.Model(&userDomain.User{}).Select("user_id").Where("country = ?", country)
	res := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Where("status IN ? AND user_id IN (?)", statuses, sub).
		Count(&n)
	return n, res.Error
}

func (r *ApplicationRepository) StatusStats(ctx context.Context) ([]appDomain.StatusStat, error) {
	var out []appDomain.StatusStat
	res := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Group("status").
		Scan(&out)
	return out, res.Error
}

func (r *ApplicationRepository) PriorityStats(ctx context.Context) (*appDomain.PriorityStats, error) {
	var out appDomain.PriorityStats
	res := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Select("COALESCE(AVG(priority_score), 0) AS avg, COALESCE(MAX(priority_score), 0) AS max, COALESCE(MIN(priority_score), 0) AS min").
		Scan(&out)
	return &out, res.Error
}
