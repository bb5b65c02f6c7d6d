// Package appmock is a function-backed mock of application.Repository.
// Only the methods a test assigns are live; the rest return ErrNotStubbed.
package appmock

import (
	"context"
	"errors"
	"time"

	domain "fund-management-backend/internal/domain/application"
)

var ErrNotStubbed = errors.New("appmock: method not stubbed")

type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn          func(ctx context.Context, id string) (*domain.Application, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, id string) (*domain.Application, error)
	SaveFn                        func(ctx context.Context, a *domain.Application) error
	ListByUserFn                  func(ctx context.Context, userID string) ([]domain.Application, error)
	ListRecentByUserFn            func(ctx context.Context, userID string, limit int) ([]domain.Application, error)
	ListAllFn                     func(ctx context.Context) ([]domain.Application, error)
	ListByCountryFn               func(ctx context.Context, country string) ([]domain.Application, error)
	ListQueueFn                   func(ctx context.Context, f domain.QueueFilter) ([]domain.Application, error)
	ListQueueLimitFn              func(ctx context.Context, f domain.QueueFilter, limit int) ([]domain.Application, error)
	ListByStatusFn                func(ctx context.Context, status domain.Status) ([]domain.Application, error)
	ListMissingPriorityFn         func(ctx context.Context) ([]domain.Application, error)
	CountByUserFn                 func(ctx context.Context, userID string) (int64, error)
	CountByUserBeforeFn           func(ctx context.Context, userID string, before time.Time) (int64, error)
	CountAllFn                    func(ctx context.Context) (int64, error)
	CountByStatusFn               func(ctx context.Context, status domain.Status) (int64, error)
	CountByCountryStatusFn        func(ctx context.Context, country string, statuses []domain.Status) (int64, error)
	StatusStatsFn                 func(ctx context.Context) ([]domain.StatusStat, error)
	PriorityStatsFn               func(ctx context.Context) (*domain.PriorityStats, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, id string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, id)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, id string) (*domain.Application, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, id)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]domain.Application, error) {
	if m.ListRecentByUserFn != nil {
		return m.ListRecentByUserFn(ctx, userID, limit)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Application, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListByCountry(ctx context.Context, country string) ([]domain.Application, error) {
	if m.ListByCountryFn != nil {
		return m.ListByCountryFn(ctx, country)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListQueue(ctx context.Context, f domain.QueueFilter) ([]domain.Application, error) {
	if m.ListQueueFn != nil {
		return m.ListQueueFn(ctx, f)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListQueueLimit(ctx context.Context, f domain.QueueFilter, limit int) ([]domain.Application, error) {
	if m.ListQueueLimitFn != nil {
		return m.ListQueueLimitFn(ctx, f, limit)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Application, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListMissingPriority(ctx context.Context) ([]domain.Application, error) {
	if m.ListMissingPriorityFn != nil {
		return m.ListMissingPriorityFn(ctx)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) CountByUser(ctx context.Context, userID string) (int64, error) {
	if m.CountByUserFn != nil {
		return m.CountByUserFn(ctx, userID)
	}
	return 0, ErrNotStubbed
}

func (m *Repo) CountByUserBefore(ctx context.Context, userID string, before time.Time) (int64, error) {
	if m.CountByUserBeforeFn != nil {
		return m.CountByUserBeforeFn(ctx, userID, before)
	}
	return 0, ErrNotStubbed
}

func (m *Repo) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFn != nil {
		return m.CountAllFn(ctx)
	}
	return 0, ErrNotStubbed
}

func (m *Repo) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, status)
	}
	return 0, ErrNotStubbed
}

func (m *Repo) CountByCountryStatus(ctx context.Context, country string, statuses []domain.Status) (int64, error) {
	if m.CountByCountryStatusFn != nil {
		return m.CountByCountryStatusFn(ctx, country, statuses)
	}
	return 0, ErrNotStubbed
}

func (m *Repo) StatusStats(ctx context.Context) ([]domain.StatusStat, error) {
	if m.StatusStatsFn != nil {
		return m.StatusStatsFn(ctx)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) PriorityStats(ctx context.Context) (*domain.PriorityStats, error) {
	if m.PriorityStatsFn != nil {
		return m.PriorityStatsFn(ctx)
	}
	return nil, ErrNotStubbed
}
